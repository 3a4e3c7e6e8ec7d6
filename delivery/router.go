package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every page route and JSON endpoint of the portal.
func NewRouter(deps AppDependencies, staticDir string) http.Handler {
	r := chi.NewRouter()

	// Create an instance of our handler struct, passing the app dependencies.
	h := &HTTPEndpoint{
		app: deps,
	}

	// --- Global Middleware ---
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Static File Server ---
	fileServer := http.FileServer(http.Dir(staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// --- Operational Endpoints ---
	r.Get("/healthz", h.healthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/.well-known/jwks.json", h.jwksHandler)

	// --- Public Routes ---
	r.Get("/", h.homeHandler)
	r.NotFound(h.notFoundHandler)

	// --- Registration Wizard ---
	r.Group(func(r chi.Router) {
		r.Get("/register", h.registrationHandler)
		r.Post("/register", h.registrationProfileHandler)
		r.Post("/register/verify", h.registrationVerifyHandler)
		r.Post("/register/resend", h.registrationResendHandler)
		r.Post("/register/password", h.registrationPasswordHandler)
	})

	// --- Login & Password Recovery ---
	r.Group(func(r chi.Router) {
		r.Get("/login", h.loginHandler)
		r.Post("/login", h.loginSubmitHandler)
		r.Get("/forgot-password", h.recoveryHandler)
		r.Post("/forgot-password", h.recoveryRequestHandler)
		r.Post("/forgot-password/verify", h.recoveryVerifyHandler)
		r.Post("/forgot-password/resend", h.recoveryResendHandler)
		r.Post("/forgot-password/reset", h.recoveryResetHandler)
		r.Get("/logout", h.logoutHandler)
	})

	// --- Protected Routes ---
	r.Group(func(r chi.Router) {
		r.Use(deps.RequireSession)
		r.Get("/dashboard", h.dashboardHandler)
		r.Get("/explore", h.exploreHandler)
		r.Get("/help", h.helpHandler)
		r.Post("/help/complaint", h.complaintHandler)
		r.Post("/help/contact", h.contactHandler)
		r.Get("/form-c", h.formCHandler)
		r.Post("/form-c", h.formCSubmitHandler)
		r.Post("/chat", h.chatHandler)
		r.Post("/notifications/{notificationID}/read", h.notificationReadHandler)
		r.Post("/notifications/read-all", h.notificationReadAllHandler)
		r.Post("/notifications/{notificationID}/delete", h.notificationDeleteHandler)
		r.Post("/files/upload", h.fileUploadHandler)
		r.Get("/files/{fileID}/download", h.fileDownloadHandler)
		r.Post("/files/{fileID}/delete", h.fileDeleteHandler)
	})

	return r
}
