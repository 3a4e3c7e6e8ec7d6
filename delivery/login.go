package delivery

import (
	"net/http"

	"github.com/yesyese/Visitor-Portal/gateway"
)

// loginPageData holds data for the login template.
type loginPageData struct {
	Error    string
	Notice   string
	Email    string
	ReturnTo string
}

func renderLoginForm(w http.ResponseWriter, data loginPageData) {
	if err := loginTemplate.ExecuteTemplate(w, "login.html", data); err != nil {
		http.Error(w, "Failed to render the page", http.StatusInternalServerError)
	}
}

// loginHandler handles the GET request for the login page. A visitor who is
// already signed in goes straight to the dashboard.
func (h *HTTPEndpoint) loginHandler(w http.ResponseWriter, r *http.Request) {
	if h.app.GetSessions().IsPresent(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := loginPageData{ReturnTo: r.URL.Query().Get("return_to")}
	switch {
	case r.URL.Query().Get("registered") == "1":
		data.Notice = "Registration complete. Please sign in."
	case r.URL.Query().Get("recovered") == "1":
		data.Notice = "Your password has been reset. Please sign in."
	}
	renderLoginForm(w, data)
}

// loginSubmitHandler handles the POST request from the login form. On success
// the returned credential goes into the session store and the user lands on
// the dashboard.
func (h *HTTPEndpoint) loginSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	email := r.Form.Get("email")
	password := r.Form.Get("password")
	returnTo := r.Form.Get("return_to")

	if email == "" || password == "" {
		renderLoginForm(w, loginPageData{
			Error:    "Please enter both username and password.",
			Email:    email,
			ReturnTo: returnTo,
		})
		return
	}

	credential, err := h.app.GetGateway().Login(r.Context(), email, password)
	if err != nil {
		h.app.GetLogger().WithField("error", err).Warn("login failed")
		renderLoginForm(w, loginPageData{
			Error:    gateway.Message(err),
			Email:    email,
			ReturnTo: returnTo,
		})
		return
	}

	if err := h.app.GetSessions().Set(w, credential); err != nil {
		h.app.GetLogger().WithField("error", err).Error("failed to store session")
		renderLoginForm(w, loginPageData{Error: "Login failed. Please try again.", Email: email})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
