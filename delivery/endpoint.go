package delivery

import (
	"net/http"
)

// jwksHandler serves the public session-verification keys.
func (h *HTTPEndpoint) jwksHandler(w http.ResponseWriter, _ *http.Request) {
	set, err := h.app.GetPublicJWKS()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "could not load key set")
		return
	}
	writeJSON(w, http.StatusOK, set)
}
