package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"alamosclean/internal/user"
	"alamosclean/pkg/config"
)

const SessionCookieName = "session"

// SessionToken pulls the raw session token from the request: the HttpOnly
// cookie set at login, or an Authorization bearer header for non-browser
// clients.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}

// ResolveUser validates the request's session token and loads the account.
// Returns nil for missing/invalid tokens and for deactivated accounts.
func ResolveUser(r *http.Request, cfg config.Config, users *user.Repository) *user.User {
	token := SessionToken(r)
	if token == "" {
		return nil
	}
	id, err := user.VerifySessionToken(token, cfg.SessionSecret, time.Now())
	if err != nil {
		return nil
	}
	u, err := users.FindByID(r.Context(), id)
	if err != nil || !u.Active {
		return nil
	}
	return u
}

// SessionAuth rejects requests without a valid session and attaches the
// account to the request context.
func SessionAuth(cfg config.Config, users *user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := ResolveUser(r, cfg, users)
			if u == nil {
				WriteError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// AdminAuth gates the operational endpoints behind a shared token header.
// An empty configured token disables the whole group.
func AdminAuth(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.AdminToken == "" {
				WriteError(w, http.StatusNotFound, "not found")
				return
			}
			given := strings.TrimSpace(r.Header.Get("X-Admin-Token"))
			if subtle.ConstantTimeCompare([]byte(given), []byte(cfg.AdminToken)) != 1 {
				WriteError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
