package delivery

import (
	"net/http"
	"strings"

	"github.com/yesyese/Visitor-Portal/gateway"
)

type formCPageData struct {
	Form  gateway.FormCApplication
	Error string
}

type formCStatusPageData struct {
	Status string
	Name   string
}

// formCHandler shows either the submission form (prefilled from the visitor's
// profile) or the read-only status view once the application is in.
func (h *HTTPEndpoint) formCHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())
	log := h.app.GetLogger().WithField("page", "form_c")

	data := formCPageData{}
	user, err := h.app.GetGateway().CurrentUser(r.Context(), credential)
	if err != nil {
		log.WithField("error", err).Warn("failed to fetch current user")
	} else {
		if strings.EqualFold(user.FormCStatus, gateway.StatusSubmitted) {
			h.renderFormCStatus(w, formCStatusPageData{Status: user.FormCStatus, Name: user.Name})
			return
		}
		data.Form = gateway.FormCApplication{
			FullName:         user.Name,
			Nationality:      user.Nationality,
			PassportNumber:   user.PassportNumber,
			PassportValidity: user.PassportValidity,
		}
	}

	h.renderFormC(w, data)
}

func (h *HTTPEndpoint) formCSubmitHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())

	application := gateway.FormCApplication{
		FullName:         strings.TrimSpace(r.FormValue("full_name")),
		Nationality:      strings.TrimSpace(r.FormValue("nationality")),
		Gender:           strings.TrimSpace(r.FormValue("gender")),
		PassportNumber:   strings.TrimSpace(r.FormValue("passport_number")),
		PassportValidity: strings.TrimSpace(r.FormValue("passport_validity")),
		VisaNumber:       strings.TrimSpace(r.FormValue("visa_number")),
		VisaExpiry:       strings.TrimSpace(r.FormValue("visa_expiry")),
		VisaType:         strings.TrimSpace(r.FormValue("visa_type")),
		DateOfVisit:      strings.TrimSpace(r.FormValue("date_of_visit")),
		Occupation:       strings.TrimSpace(r.FormValue("occupation")),
		Employer:         strings.TrimSpace(r.FormValue("employer")),
		IndianAddress:    strings.TrimSpace(r.FormValue("indian_address")),
	}

	if missing := missingFormCFields(application); missing != "" {
		h.renderFormC(w, formCPageData{
			Form:  application,
			Error: "Please fill in the required field: " + missing + ".",
		})
		return
	}

	if err := h.app.GetGateway().SubmitFormC(r.Context(), credential, application); err != nil {
		h.renderFormC(w, formCPageData{Form: application, Error: gateway.Message(err)})
		return
	}

	h.renderFormCStatus(w, formCStatusPageData{Status: gateway.StatusSubmitted, Name: application.FullName})
}

// missingFormCFields returns the label of the first unfilled required field,
// or "" when the application is complete. Occupation and Employer are
// optional.
func missingFormCFields(a gateway.FormCApplication) string {
	required := []struct {
		label string
		value string
	}{
		{"full name", a.FullName},
		{"nationality", a.Nationality},
		{"gender", a.Gender},
		{"passport number", a.PassportNumber},
		{"passport validity", a.PassportValidity},
		{"visa number", a.VisaNumber},
		{"visa expiry", a.VisaExpiry},
		{"visa type", a.VisaType},
		{"date of visit", a.DateOfVisit},
		{"address in India", a.IndianAddress},
	}
	for _, f := range required {
		if f.value == "" {
			return f.label
		}
	}
	return ""
}

func (h *HTTPEndpoint) renderFormC(w http.ResponseWriter, data formCPageData) {
	if err := formCTemplate.ExecuteTemplate(w, "formc.html", data); err != nil {
		h.app.GetLogger().WithField("error", err).Error("failed to execute template")
		http.Error(w, "Could not render the Form C page.", http.StatusInternalServerError)
	}
}

func (h *HTTPEndpoint) renderFormCStatus(w http.ResponseWriter, data formCStatusPageData) {
	if err := formCStatusTemplate.ExecuteTemplate(w, "formc_status.html", data); err != nil {
		h.app.GetLogger().WithField("error", err).Error("failed to execute template")
		http.Error(w, "Could not render the Form C page.", http.StatusInternalServerError)
	}
}
