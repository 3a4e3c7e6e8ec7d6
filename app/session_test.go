package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestSessionManager(t *testing.T) *SessionManager {
	t.Helper()
	// No key file: the manager generates an ephemeral signing key.
	m, err := NewSessionManager("", false)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return m
}

func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionRoundTrip(t *testing.T) {
	m := newTestSessionManager(t)
	rec := httptest.NewRecorder()

	if err := m.Set(rec, "remote-bearer-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cookies := rec.Result().Cookies()
	names := map[string]string{}
	for _, c := range cookies {
		names[c.Name] = c.Value
	}
	if _, ok := names["visitor_session"]; !ok {
		t.Fatal("session cookie not set")
	}
	if names["visitor_logged_in"] != "true" {
		t.Fatalf("logged-in cookie = %q, want true", names["visitor_logged_in"])
	}

	req := requestWithCookies(rec)
	token, ok := m.Token(req)
	if !ok {
		t.Fatal("credential not restored from cookie")
	}
	if token != "remote-bearer-token" {
		t.Fatalf("credential = %q", token)
	}
	if !m.IsPresent(req) {
		t.Fatal("IsPresent = false for a live session")
	}
}

func TestSessionCookieIsNotThePlainCredential(t *testing.T) {
	m := newTestSessionManager(t)
	rec := httptest.NewRecorder()

	if err := m.Set(rec, "remote-bearer-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "visitor_session" && strings.Contains(c.Value, "remote-bearer-token") {
			t.Fatal("session cookie carries the raw credential")
		}
	}
}

func TestSessionMissingCookie(t *testing.T) {
	m := newTestSessionManager(t)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	if _, ok := m.Token(req); ok {
		t.Fatal("credential resolved without a cookie")
	}
	if m.IsPresent(req) {
		t.Fatal("IsPresent = true without a cookie")
	}
}

func TestSessionTamperedCookie(t *testing.T) {
	m := newTestSessionManager(t)
	rec := httptest.NewRecorder()
	if err := m.Set(rec, "remote-bearer-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "visitor_session" {
			c.Value = c.Value + "tampered"
		}
		req.AddCookie(c)
	}

	if _, ok := m.Token(req); ok {
		t.Fatal("tampered cookie accepted")
	}
}

func TestSessionForeignSignerRejected(t *testing.T) {
	issuer := newTestSessionManager(t)
	verifier := newTestSessionManager(t)

	rec := httptest.NewRecorder()
	if err := issuer.Set(rec, "remote-bearer-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	req := requestWithCookies(rec)
	if _, ok := verifier.Token(req); ok {
		t.Fatal("cookie signed by a different key accepted")
	}
}

func TestSessionClear(t *testing.T) {
	m := newTestSessionManager(t)
	rec := httptest.NewRecorder()
	m.Clear(rec)

	cleared := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	if !cleared["visitor_session"] || !cleared["visitor_logged_in"] {
		t.Fatalf("cleared cookies = %v, want both session cookies expired", cleared)
	}
}

func TestPublicJWKSHasNoPrivateMaterial(t *testing.T) {
	m := newTestSessionManager(t)

	set, err := m.PublicJWKS()
	if err != nil {
		t.Fatalf("PublicJWKS: %v", err)
	}
	if set == nil {
		t.Fatal("PublicJWKS returned nil")
	}
}
