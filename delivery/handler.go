package delivery

import (
	"encoding/json"
	"net/http"
)

// HTTPEndpoint holds a reference to the core application dependencies.
type HTTPEndpoint struct {
	app AppDependencies
}

// homeHandler sends visitors to the registration wizard, like the original
// portal's root route.
func (h *HTTPEndpoint) homeHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

func (h *HTTPEndpoint) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// notFoundHandler renders the shared error page for unknown routes.
func (h *HTTPEndpoint) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := struct {
		Title   string
		Message string
	}{
		Title:   "Page not found",
		Message: "The page you are looking for does not exist.",
	}
	if err := errorTemplate.ExecuteTemplate(w, "error.html", data); err != nil {
		h.app.GetLogger().WithField("error", err).Error("failed to execute template")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
