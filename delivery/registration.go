package delivery

import (
	"errors"
	"net/http"

	"github.com/yesyese/Visitor-Portal/flow"
	"github.com/yesyese/Visitor-Portal/gateway"
)

// registrationPageData holds the data passed to the registration template.
// Step mirrors the wizard state as the 1-based indicator the page shows.
type registrationPageData struct {
	Flow              *flow.Registration
	Step              int
	Error             string
	Notice            string
	AlreadyRegistered bool
	Form              flow.Draft
}

// renderRegistrationForm renders the wizard at its current step, reading the
// flow through a snapshot so a concurrent post on the same flow ID cannot
// tear the view.
func renderRegistrationForm(w http.ResponseWriter, data registrationPageData) {
	state, draft := data.Flow.Snapshot()
	data.Step = int(state) + 1
	if (data.Form == flow.Draft{}) {
		data.Form = draft
	}
	if err := registrationTemplate.ExecuteTemplate(w, "registration.html", data); err != nil {
		http.Error(w, "Failed to render the page", http.StatusInternalServerError)
	}
}

// lookupRegistration resolves the flow query parameter. A missing or expired
// flow starts the wizard over.
func (h *HTTPEndpoint) lookupRegistration(w http.ResponseWriter, r *http.Request) (*flow.Registration, bool) {
	reg, ok := h.app.GetRegistrations().Registration(r.URL.Query().Get("flow"))
	if !ok {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return nil, false
	}
	return reg, true
}

// registrationHandler handles the GET request for the registration wizard.
// Without a live flow it creates one and redirects so the flow ID is in the
// URL for the form posts.
func (h *HTTPEndpoint) registrationHandler(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.app.GetRegistrations().Registration(r.URL.Query().Get("flow"))
	if !ok {
		reg = flow.NewRegistration()
		h.app.GetRegistrations().Put(reg.ID, reg)
		http.Redirect(w, r, "/register?flow="+reg.ID, http.StatusSeeOther)
		return
	}
	renderRegistrationForm(w, registrationPageData{Flow: reg})
}

// registrationProfileHandler handles the first wizard step: collect the
// profile and trigger the OTP email.
func (h *HTTPEndpoint) registrationProfileHandler(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.lookupRegistration(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	draft := flow.Draft{
		Name:             r.Form.Get("name"),
		Email:            r.Form.Get("email"),
		MobileNo:         r.Form.Get("mobile_no"),
		PassportNumber:   r.Form.Get("passport_number"),
		Nationality:      r.Form.Get("nationality"),
		PassportValidity: r.Form.Get("passport_validity"),
	}

	err := reg.SubmitProfile(r.Context(), h.app.GetGateway(), draft)
	if err != nil {
		data := registrationPageData{Flow: reg, Form: draft}
		if errors.Is(err, flow.ErrAlreadyRegistered) {
			data.AlreadyRegistered = true
		} else {
			data.Error = gateway.Message(err)
		}
		renderRegistrationForm(w, data)
		return
	}

	renderRegistrationForm(w, registrationPageData{
		Flow:   reg,
		Notice: "OTP has been sent to '" + draft.Email + "' successfully.",
	})
}

// registrationVerifyHandler handles the second wizard step.
func (h *HTTPEndpoint) registrationVerifyHandler(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.lookupRegistration(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	if err := reg.VerifyCode(r.Context(), h.app.GetGateway(), r.Form.Get("otp")); err != nil {
		renderRegistrationForm(w, registrationPageData{Flow: reg, Error: gateway.Message(err)})
		return
	}

	renderRegistrationForm(w, registrationPageData{
		Flow:   reg,
		Notice: "OTP has been verified successfully.",
	})
}

// registrationResendHandler re-sends the OTP without advancing the wizard.
func (h *HTTPEndpoint) registrationResendHandler(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.lookupRegistration(w, r)
	if !ok {
		return
	}

	data := registrationPageData{Flow: reg}
	if err := reg.ResendCode(r.Context(), h.app.GetGateway()); err != nil {
		data.Error = gateway.Message(err)
	} else {
		_, draft := reg.Snapshot()
		data.Notice = "OTP has been sent to '" + draft.Email + "' successfully."
	}
	renderRegistrationForm(w, data)
}

// registrationPasswordHandler handles the final wizard step and hands a
// completed registration over to the login flow.
func (h *HTTPEndpoint) registrationPasswordHandler(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.lookupRegistration(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	err := reg.SetPassword(r.Context(), h.app.GetGateway(), r.Form.Get("password"), r.Form.Get("confirm_password"))
	if err != nil {
		renderRegistrationForm(w, registrationPageData{Flow: reg, Error: gateway.Message(err)})
		return
	}

	h.app.GetRegistrations().Remove(reg.ID)
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}
