package delivery

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yesyese/Visitor-Portal/flow"
	"github.com/yesyese/Visitor-Portal/gateway"
)

// SessionStore is the session contract the handlers rely on: set on login,
// cleared on logout, read everywhere else.
type SessionStore interface {
	Set(w http.ResponseWriter, credential string) error
	Clear(w http.ResponseWriter)
	Token(r *http.Request) (string, bool)
	IsPresent(r *http.Request) bool
}

// AppDependencies defines the contract that the delivery layer (HTTP
// handlers) expects from the core application layer.
type AppDependencies interface {
	// GetGateway provides access to the remote visitor-portal API client.
	GetGateway() *gateway.Client

	// GetSessions provides the session store.
	GetSessions() SessionStore

	// GetRegistrations and GetRecoveries hold in-progress wizard flows.
	GetRegistrations() *flow.Store
	GetRecoveries() *flow.Store

	// RequireSession provides the middleware to protect routes.
	RequireSession(next http.Handler) http.Handler

	// CredentialFromContext retrieves the credential the guard stored.
	CredentialFromContext(ctx context.Context) (string, bool)

	GetLogger() *logrus.Logger

	// GetPublicJWKS exposes the session verification keys.
	GetPublicJWKS() (interface{}, error)
}
