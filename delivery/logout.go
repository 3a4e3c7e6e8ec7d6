package delivery

import (
	"net/http"
)

// logoutHandler clears the session cookies. The remote API holds no session
// state for us to revoke; forgetting the credential is the whole logout.
func (h *HTTPEndpoint) logoutHandler(w http.ResponseWriter, r *http.Request) {
	h.app.GetSessions().Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
