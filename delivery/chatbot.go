package delivery

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yesyese/Visitor-Portal/delivery/model"
)

const chatFallbackReply = "I'm sorry, but I'm having trouble connecting. Please try again later."

// chatHandler bridges the browser chat widget to the district chatbot. It is
// the only JSON endpoint the pages call; everything else is form posts.
func (h *HTTPEndpoint) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid chat request")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.app.GetGateway().Chat(r.Context(), req.Message)
	if err != nil {
		h.app.GetLogger().WithField("error", err).Warn("chatbot request failed")
		// The widget shows the canned apology instead of an error state.
		writeJSON(w, http.StatusOK, model.ChatResponse{Response: chatFallbackReply})
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{Response: reply})
}
