package delivery

import (
	"net/http"
	"strings"

	"github.com/yesyese/Visitor-Portal/gateway"
)

// emergencyContact is a static help-page entry; these numbers do not come from
// the district service.
type emergencyContact struct {
	Name   string
	Number string
}

var emergencyContacts = []emergencyContact{
	{Name: "Police", Number: "100"},
	{Name: "Ambulance", Number: "108"},
	{Name: "Fire", Number: "101"},
	{Name: "Puttaparthi Police Station", Number: "08555-287333"},
	{Name: "Sri Sathya Sai General Hospital", Number: "08555-287235"},
}

var defaultFAQs = []gateway.FAQEntry{
	{Question: "How do I register as a foreign visitor?", Answer: "Create an account with your passport details, verify the OTP sent to your email and set a password. After logging in, submit your Form C from the dashboard."},
	{Question: "What is Form C and who needs to submit it?", Answer: "Form C is the arrival report every foreign national staying in India must file. Submit it through this portal within 24 hours of arrival."},
	{Question: "My OTP never arrived. What should I do?", Answer: "Check your spam folder first, then use the resend option on the verification step. OTPs expire after a short window."},
	{Question: "Can I update my passport details after registering?", Answer: "Core passport details are locked once your Form C is submitted. Contact support to request a correction."},
	{Question: "Who do I contact in an emergency?", Answer: "Dial 100 for police or 108 for an ambulance. The help page lists local station numbers as well."},
}

type helpPageData struct {
	FAQs     []gateway.FAQEntry
	Contacts []emergencyContact
	Error    string
	Notice   string
}

func (h *HTTPEndpoint) renderHelp(w http.ResponseWriter, r *http.Request, data helpPageData) {
	log := h.app.GetLogger().WithField("page", "help")

	if data.FAQs == nil {
		faqs, err := h.app.GetGateway().FAQ(r.Context())
		if err != nil || len(faqs) == 0 {
			if err != nil {
				log.WithField("error", err).Warn("failed to fetch faq")
			}
			faqs = defaultFAQs
		}
		data.FAQs = faqs
	}
	data.Contacts = emergencyContacts

	if err := helpTemplate.ExecuteTemplate(w, "help.html", data); err != nil {
		log.WithField("error", err).Error("failed to execute template")
		http.Error(w, "Could not render the help page.", http.StatusInternalServerError)
	}
}

func (h *HTTPEndpoint) helpHandler(w http.ResponseWriter, r *http.Request) {
	h.renderHelp(w, r, helpPageData{})
}

// complaintHandler files a complaint against the current session. Failures
// stay on the help page; an expired credential asks the visitor to log in
// again instead of bouncing them off the page.
func (h *HTTPEndpoint) complaintHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())

	subject := strings.TrimSpace(r.FormValue("subject"))
	if subject == "" {
		h.renderHelp(w, r, helpPageData{Error: "Please describe your complaint before submitting."})
		return
	}

	if err := h.app.GetGateway().SubmitComplaint(r.Context(), credential, subject); err != nil {
		msg := gateway.Message(err)
		switch {
		case gateway.IsUnauthorized(err):
			msg = "Please login again to submit a complaint."
		case gateway.IsNetwork(err) || gateway.IsTimeout(err):
			msg = "Network error. Please check your connection and try again."
		}
		h.renderHelp(w, r, helpPageData{Error: msg})
		return
	}

	h.renderHelp(w, r, helpPageData{Notice: "Your complaint has been submitted. We will get back to you soon."})
}

func (h *HTTPEndpoint) contactHandler(w http.ResponseWriter, r *http.Request) {
	req := gateway.ContactRequest{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		h.renderHelp(w, r, helpPageData{Error: "Please fill in your name, email and message."})
		return
	}

	if err := h.app.GetGateway().ContactSupport(r.Context(), req); err != nil {
		h.renderHelp(w, r, helpPageData{Error: gateway.Message(err)})
		return
	}

	h.renderHelp(w, r, helpPageData{Notice: "Your message has been sent to the support team."})
}
