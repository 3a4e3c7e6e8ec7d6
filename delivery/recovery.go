package delivery

import (
	"net/http"

	"github.com/yesyese/Visitor-Portal/flow"
	"github.com/yesyese/Visitor-Portal/gateway"
)

// recoveryPageData holds data for the password-recovery template.
type recoveryPageData struct {
	Flow   *flow.Recovery
	Step   int
	Email  string
	Error  string
	Notice string
}

func renderRecoveryForm(w http.ResponseWriter, data recoveryPageData) {
	state, email := data.Flow.Snapshot()
	data.Step = int(state) + 1
	data.Email = email
	if err := recoveryTemplate.ExecuteTemplate(w, "recovery.html", data); err != nil {
		http.Error(w, "Failed to render the page", http.StatusInternalServerError)
	}
}

func (h *HTTPEndpoint) lookupRecovery(w http.ResponseWriter, r *http.Request) (*flow.Recovery, bool) {
	rec, ok := h.app.GetRecoveries().Recovery(r.URL.Query().Get("flow"))
	if !ok {
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return nil, false
	}
	return rec, true
}

// recoveryHandler starts or resumes the forgot-password sub-flow.
func (h *HTTPEndpoint) recoveryHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.app.GetRecoveries().Recovery(r.URL.Query().Get("flow"))
	if !ok {
		rec = flow.NewRecovery()
		h.app.GetRecoveries().Put(rec.ID, rec)
		http.Redirect(w, r, "/forgot-password?flow="+rec.ID, http.StatusSeeOther)
		return
	}
	renderRecoveryForm(w, recoveryPageData{Flow: rec})
}

func (h *HTTPEndpoint) recoveryRequestHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.lookupRecovery(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	if err := rec.RequestCode(r.Context(), h.app.GetGateway(), r.Form.Get("email")); err != nil {
		renderRecoveryForm(w, recoveryPageData{Flow: rec, Error: gateway.Message(err)})
		return
	}
	_, email := rec.Snapshot()
	renderRecoveryForm(w, recoveryPageData{
		Flow:   rec,
		Notice: "A reset code has been sent to '" + email + "'.",
	})
}

func (h *HTTPEndpoint) recoveryVerifyHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.lookupRecovery(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	if err := rec.VerifyCode(r.Context(), h.app.GetGateway(), r.Form.Get("otp")); err != nil {
		renderRecoveryForm(w, recoveryPageData{Flow: rec, Error: gateway.Message(err)})
		return
	}
	renderRecoveryForm(w, recoveryPageData{Flow: rec, Notice: "Code verified. Choose a new password."})
}

func (h *HTTPEndpoint) recoveryResendHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.lookupRecovery(w, r)
	if !ok {
		return
	}

	data := recoveryPageData{Flow: rec}
	if err := rec.ResendCode(r.Context(), h.app.GetGateway()); err != nil {
		data.Error = gateway.Message(err)
	} else {
		_, email := rec.Snapshot()
		data.Notice = "A reset code has been sent to '" + email + "'."
	}
	renderRecoveryForm(w, data)
}

// recoveryResetHandler finishes the sub-flow. Completion returns control to
// the login page with a success message; it does not authenticate.
func (h *HTTPEndpoint) recoveryResetHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.lookupRecovery(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	err := rec.SetPassword(r.Context(), h.app.GetGateway(), r.Form.Get("password"), r.Form.Get("confirm_password"))
	if err != nil {
		renderRecoveryForm(w, recoveryPageData{Flow: rec, Error: gateway.Message(err)})
		return
	}

	h.app.GetRecoveries().Remove(rec.ID)
	http.Redirect(w, r, "/login?recovered=1", http.StatusSeeOther)
}
