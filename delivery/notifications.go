package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Notification actions always land back on the dashboard; a failed action is
// logged but otherwise silent, matching the fire-and-forget bell menu.

func (h *HTTPEndpoint) notificationReadHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())
	id := chi.URLParam(r, "notificationID")

	if err := h.app.GetGateway().MarkNotificationRead(r.Context(), credential, id); err != nil {
		h.app.GetLogger().WithField("error", err).Warn("failed to mark notification read")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *HTTPEndpoint) notificationReadAllHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())

	if err := h.app.GetGateway().MarkAllNotificationsRead(r.Context(), credential); err != nil {
		h.app.GetLogger().WithField("error", err).Warn("failed to mark all notifications read")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *HTTPEndpoint) notificationDeleteHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())
	id := chi.URLParam(r, "notificationID")

	if err := h.app.GetGateway().DeleteNotification(r.Context(), credential, id); err != nil {
		h.app.GetLogger().WithField("error", err).Warn("failed to delete notification")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
