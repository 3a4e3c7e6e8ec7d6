package delivery_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/yesyese/Visitor-Portal/app"
	"github.com/yesyese/Visitor-Portal/config"
)

// portal spins up the full application against a fake upstream API and
// returns both, plus a session cookie jar helper.
type portal struct {
	app      *app.App
	upstream *upstream
}

// upstream is a scriptable stand-in for the remote visitor-portal API.
type upstream struct {
	mux  *http.ServeMux
	srv  *httptest.Server
	hits int
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{mux: http.NewServeMux()}
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits++
		u.mux.ServeHTTP(w, r)
	})
	u.srv = httptest.NewServer(wrapped)
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) handle(pattern string, handler http.HandlerFunc) {
	u.mux.HandleFunc(pattern, handler)
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	up := newUpstream(t)

	cfg := config.Config{
		ListenAddr:      ":0",
		APIBaseURL:      up.srv.URL,
		APITimeout:      2 * time.Second,
		SessionKeysFile: "",
		FlowTTL:         time.Minute,
		CookieSecure:    false,
		TemplatesDir:    "../templates",
		StaticDir:       "../static",
	}

	application, err := app.New(cfg)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return &portal{app: application, upstream: up}
}

// login performs the full login round and returns the session cookies.
func (p *portal) login(t *testing.T) []*http.Cookie {
	t.Helper()
	p.upstream.handle("/foreign-users/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "bearer-123"})
	})

	form := url.Values{"email": {"jane@example.com"}, "password": {"secret99"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("login redirect = %q, want /dashboard", loc)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no cookies")
	}
	return cookies
}

func get(p *portal, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	p.app.Router.ServeHTTP(rec, req)
	return rec
}

func TestGuardRedirectsWithoutSession(t *testing.T) {
	p := newPortal(t)

	for _, path := range []string{"/dashboard", "/explore", "/help", "/form-c"} {
		rec := get(p, path, nil)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s status = %d, want 303", path, rec.Code)
		}
		want := "/login?return_to=" + url.QueryEscape(path)
		if loc := rec.Header().Get("Location"); loc != want {
			t.Fatalf("%s redirect = %q, want %q", path, loc, want)
		}
	}
	if p.upstream.hits != 0 {
		t.Fatalf("guarded requests hit the upstream %d times", p.upstream.hits)
	}
}

func TestLoginMissingFieldsSkipsUpstream(t *testing.T) {
	p := newPortal(t)

	form := url.Values{"email": {"jane@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	p.app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please enter both username and password.") {
		t.Fatal("missing-field error not rendered")
	}
	if p.upstream.hits != 0 {
		t.Fatal("incomplete login reached the upstream")
	}
}

func TestLoginAndDashboard(t *testing.T) {
	p := newPortal(t)
	p.upstream.handle("/foreign-users/me", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer bearer-123" {
			t.Errorf("auth header = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"name":          "Jane Traveler",
			"email":         "jane@example.com",
			"form_c_status": "pending",
		})
	})
	p.upstream.handle("/notifications", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "n1", "title": "Welcome", "read": false},
			{"id": "n2", "title": "Reminder", "read": true},
		})
	})

	cookies := p.login(t)
	rec := get(p, "/dashboard", cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Jane Traveler") {
		t.Fatal("profile name not rendered")
	}
	if !strings.Contains(body, "Submit Form C") {
		t.Fatal("pending status did not surface the Form C card")
	}
}

func TestDashboardHidesFormCWhenSubmitted(t *testing.T) {
	p := newPortal(t)
	p.upstream.handle("/foreign-users/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"name":          "Jane Traveler",
			"form_c_status": "submitted",
		})
	})

	cookies := p.login(t)
	rec := get(p, "/dashboard", cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Submit Form C") {
		t.Fatal("submitted status still shows the Form C card")
	}
}

func TestDashboardShowsFormCWhenStatusMissing(t *testing.T) {
	p := newPortal(t)
	p.upstream.handle("/foreign-users/me", func(w http.ResponseWriter, r *http.Request) {
		// A profile the service has not stamped with a status yet.
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "Jane Traveler"})
	})

	cookies := p.login(t)
	rec := get(p, "/dashboard", cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Submit Form C") {
		t.Fatal("missing status must read as pending and surface the Form C card")
	}
}

func TestDashboardSurvivesUpstreamFailure(t *testing.T) {
	p := newPortal(t)
	// No /foreign-users/me handler: the mux answers 404.

	cookies := p.login(t)
	rec := get(p, "/dashboard", cookies)

	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, want 200 despite upstream failure", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Profile details are unavailable") {
		t.Fatal("placeholder copy not rendered")
	}
	if !strings.Contains(body, "Submit Form C") {
		t.Fatal("unknown submission state must keep the Form C card visible")
	}
}

func TestLoginPageRedirectsActiveSession(t *testing.T) {
	p := newPortal(t)
	cookies := p.login(t)

	rec := get(p, "/login", cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirect = %q, want /dashboard", loc)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	p := newPortal(t)
	cookies := p.login(t)

	rec := get(p, "/logout", cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("logout status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("logout redirect = %q, want /login", loc)
	}

	cleared := 0
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared++
		}
	}
	if cleared < 2 {
		t.Fatalf("logout expired %d cookies, want both session cookies", cleared)
	}
}

func TestChatBridge(t *testing.T) {
	p := newPortal(t)
	p.upstream.handle("/chatbot", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "echo: " + req.Message})
	})

	cookies := p.login(t)
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	p.app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("chat status = %d, want 200", rec.Code)
	}
	var resp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding chat response: %v", err)
	}
	if resp.Response != "echo: hello" {
		t.Fatalf("chat response = %q", resp.Response)
	}
}

func TestChatFallbackOnUpstreamFailure(t *testing.T) {
	p := newPortal(t)
	// No /chatbot handler: the upstream answers 404.

	cookies := p.login(t)
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	p.app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("chat status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "having trouble connecting") {
		t.Fatalf("fallback reply not returned: %s", rec.Body.String())
	}
}

func TestRegistrationWizardFlow(t *testing.T) {
	p := newPortal(t)
	p.upstream.handle("/foreign-users/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	p.upstream.handle("/foreign-users/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	p.upstream.handle("/foreign-users/set-password", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Entering the wizard creates a flow and redirects with its id.
	rec := get(p, "/register", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("register status = %d, want 303", rec.Code)
	}
	flowURL := rec.Header().Get("Location")
	if !strings.HasPrefix(flowURL, "/register?flow=") {
		t.Fatalf("register redirect = %q", flowURL)
	}
	flowID := strings.TrimPrefix(flowURL, "/register?flow=")

	post := func(path string, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		p.app.Router.ServeHTTP(rec, req)
		return rec
	}

	rec = post("/register?flow="+flowID, url.Values{
		"name":              {"Jane Traveler"},
		"email":             {"jane@example.com"},
		"mobile_no":         {"+441234567890"},
		"passport_number":   {"X1234567"},
		"nationality":       {"British"},
		"passport_validity": {"2030-01-01"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("profile step status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "OTP has been sent") {
		t.Fatal("OTP notice not rendered")
	}

	rec = post("/register/verify?flow="+flowID, url.Values{"otp": {"123456"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("verify step status = %d, want 200", rec.Code)
	}

	rec = post("/register/password?flow="+flowID, url.Values{
		"password":         {"secret99"},
		"confirm_password": {"secret99"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("password step status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?registered=1" {
		t.Fatalf("completion redirect = %q, want /login?registered=1", loc)
	}

	// The flow is gone once the wizard completes.
	rec = post("/register/password?flow="+flowID, url.Values{
		"password":         {"secret99"},
		"confirm_password": {"secret99"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("stale flow status = %d, want redirect", rec.Code)
	}
}

func TestUnknownRouteRendersErrorPage(t *testing.T) {
	p := newPortal(t)

	rec := get(p, "/no-such-page", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Fatal("error page not rendered")
	}
}
