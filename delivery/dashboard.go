package delivery

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/yesyese/Visitor-Portal/gateway"
)

// defaultFestivals backs the dashboard sidebar when the per-user dashboard
// fetch fails or returns nothing.
var defaultFestivals = []gateway.Festival{
	{Name: "Guru Purnima", Month: "July"},
	{Name: "Sri Sathya Sai's Birthday", Month: "November 23rd"},
	{Name: "Dasara (Dussehra)", Month: "September/October"},
}

// dashboardPageData holds the data passed to the dashboard template.
type dashboardPageData struct {
	User          *gateway.VisitorProfile
	ShowFormC     bool
	Notifications []gateway.Notification
	Unread        int
	Festivals     []gateway.Festival
}

// formCActionVisible reports whether the Form C entry point should render.
// A profile without a status is treated as pending; only a recorded
// non-pending status hides the card.
func formCActionVisible(status string) bool {
	return status == "" || strings.EqualFold(status, gateway.StatusPending)
}

// dashboardHandler renders the landing page. Every fetch failure is
// page-local: the dashboard renders with placeholders and never forces a
// logout.
func (h *HTTPEndpoint) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	credential, ok := h.app.CredentialFromContext(r.Context())
	if !ok {
		// Should not happen behind the guard; treat it like a missing session.
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	log := h.app.GetLogger().WithField("page", "dashboard")
	gw := h.app.GetGateway()

	data := dashboardPageData{Festivals: defaultFestivals}

	user, err := gw.CurrentUser(r.Context(), credential)
	if err != nil {
		log.WithField("error", err).Warn("failed to fetch current user")
		// No profile means no recorded submission; keep the card visible.
		data.ShowFormC = true
	} else {
		data.User = user
		data.ShowFormC = formCActionVisible(user.FormCStatus)
	}

	notifications, err := gw.Notifications(r.Context(), credential)
	if err != nil {
		log.WithField("error", err).Warn("failed to fetch notifications")
	} else {
		data.Notifications = notifications
		data.Unread = lo.CountBy(notifications, func(n gateway.Notification) bool {
			return !n.Read
		})
	}

	if dashboard, err := gw.Dashboard(r.Context(), credential); err == nil && len(dashboard.UpcomingFestivals) > 0 {
		data.Festivals = dashboard.UpcomingFestivals
	}

	if err := dashboardTemplate.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		log.WithField("error", err).Error("failed to execute template")
		http.Error(w, "Could not render the dashboard.", http.StatusInternalServerError)
	}
}
