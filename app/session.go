package app

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// The browser build kept the credential in two localStorage slots
// ("userToken" and "isLoggedIn"); the server-rendered portal mirrors them as
// two cookies so a page reload restores the session without re-login.
const (
	sessionCookieName  = "visitor_session"
	loggedInCookieName = "visitor_logged_in"
)

// SessionManager stores and restores the remote API's bearer credential.
// The credential is wrapped in a locally-signed JWT before it goes into the
// cookie. Deliberately no expiry: a credential, once set, is considered valid
// until explicit logout. The manager never inspects remote responses to
// auto-clear.
type SessionManager struct {
	signer *sessionSigner
	secure bool
}

func NewSessionManager(keysFile string, secure bool) (*SessionManager, error) {
	signer, err := newSessionSigner(keysFile)
	if err != nil {
		return nil, err
	}
	return &SessionManager{signer: signer, secure: secure}, nil
}

// Set wraps the credential and mirrors it into the two session cookies.
func (m *SessionManager) Set(w http.ResponseWriter, credential string) error {
	claims := jwt.MapClaims{
		"tok": credential,
		"iat": time.Now().Unix(),
	}
	signed, err := m.signer.Sign(claims)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     loggedInCookieName,
		Value:    "true",
		Path:     "/",
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires both cookies.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	for _, name := range []string{sessionCookieName, loggedInCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// Token unwraps the credential from the request's session cookie. A missing
// or tampered cookie reads as "no session".
func (m *SessionManager) Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	claims, err := m.signer.Parse(cookie.Value)
	if err != nil {
		return "", false
	}
	credential, ok := claims["tok"].(string)
	if !ok || credential == "" {
		return "", false
	}
	return credential, true
}

// IsPresent reports whether a credential is available. Presence is the only
// check the route guard performs.
func (m *SessionManager) IsPresent(r *http.Request) bool {
	_, ok := m.Token(r)
	return ok
}

// PublicJWKS serializes the public signing keys for the well-known endpoint.
func (m *SessionManager) PublicJWKS() (interface{}, error) {
	return m.signer.PublicJWKS()
}
