package model

// ChatRequest is the browser-side payload for the chatbot widget.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the bot's reply back to the widget.
type ChatResponse struct {
	Response string `json:"response"`
}
