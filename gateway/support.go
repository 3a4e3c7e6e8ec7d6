package gateway

import (
	"context"
	"net/http"
)

// SubmitComplaint files a grievance for the credential's owner. The remote
// endpoint takes only the subject text.
func (c *Client) SubmitComplaint(ctx context.Context, token, subject string) error {
	body := map[string]string{"Subject": subject}
	return c.do(ctx, http.MethodPost, "/complaint", token, body, nil)
}

func (c *Client) FAQ(ctx context.Context) ([]FAQEntry, error) {
	var entries []FAQEntry
	if err := c.do(ctx, http.MethodGet, "/support/faq", "", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) ContactSupport(ctx context.Context, req ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/support/contact", "", req, nil)
}

// Chat forwards one message to the district chatbot and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	body := map[string]string{"message": message}
	var resp struct {
		Response string `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/chatbot", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
