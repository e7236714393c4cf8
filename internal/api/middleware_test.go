package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alamosclean/pkg/config"
)

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	// No token means the user repository is never consulted.
	h := SessionAuth(config.Config{SessionSecret: "secret"}, nil)(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	if called {
		t.Fatalf("next handler must not run without a session")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Unconfigured token disables the group outright.
	h := AdminAuth(config.Config{})(next)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings/1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", rec.Code)
	}

	h = AdminAuth(config.Config{AdminToken: "opensesame"})(next)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings/1", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong token, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/bookings/1", nil)
	req.Header.Set("X-Admin-Token", "opensesame")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
}

func TestSessionTokenExtraction(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := SessionToken(r); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	if got := SessionToken(r); got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	if got := SessionToken(r); got != "header-token" {
		t.Fatalf("expected bearer token, got %q", got)
	}
}
