package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yesyese/Visitor-Portal/config"
	"github.com/yesyese/Visitor-Portal/delivery"
	"github.com/yesyese/Visitor-Portal/flow"
	"github.com/yesyese/Visitor-Portal/gateway"
)

// App holds the portal's dependencies and state: the gateway to the remote
// visitor-portal API, the session manager, the wizard flow stores, and the
// router.
type App struct {
	cfg           config.Config
	gateway       *gateway.Client
	sessions      *SessionManager
	registrations *flow.Store
	recoveries    *flow.Store
	log           *logrus.Logger
	Router        http.Handler
}

// New creates an App instance, configures dependencies, and sets up the
// router.
func New(cfg config.Config) (*App, error) {
	// Centralize template parsing at startup.
	delivery.ParseAllTemplates(cfg.TemplatesDir)

	sessions, err := NewSessionManager(cfg.SessionKeysFile, cfg.CookieSecure)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:           cfg,
		gateway:       gateway.New(cfg.APIBaseURL, cfg.APITimeout),
		sessions:      sessions,
		registrations: flow.NewStore(cfg.FlowTTL),
		recoveries:    flow.NewStore(cfg.FlowTTL),
		log:           logrus.StandardLogger(),
	}

	app.Router = delivery.NewRouter(app, cfg.StaticDir)

	return app, nil
}

// Start runs the HTTP server on the configured address.
func (a *App) Start() error {
	a.log.WithField("addr", a.cfg.ListenAddr).Info("server listening")
	return http.ListenAndServe(a.cfg.ListenAddr, a.Router)
}

// Accessors backing the delivery layer's AppDependencies contract.

func (a *App) GetGateway() *gateway.Client { return a.gateway }

func (a *App) GetSessions() delivery.SessionStore { return a.sessions }

func (a *App) GetRegistrations() *flow.Store { return a.registrations }

func (a *App) GetRecoveries() *flow.Store { return a.recoveries }

func (a *App) GetLogger() *logrus.Logger { return a.log }

// GetPublicJWKS exposes the session verification keys.
func (a *App) GetPublicJWKS() (interface{}, error) { return a.sessions.PublicJWKS() }
