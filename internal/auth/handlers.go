package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"alamosclean/internal/api"
	"alamosclean/internal/user"
	"alamosclean/pkg/config"
	"alamosclean/pkg/logging"
)

type Handlers struct {
	Cfg   config.Config
	Users *user.Repository
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (h Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	// Required fields, checked in a fixed order so the first missing one is named.
	required := []struct{ name, value string }{
		{"username", req.Username},
		{"email", req.Email},
		{"password", req.Password},
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			api.WriteError(w, http.StatusBadRequest, "the field "+f.name+" is required")
			return
		}
	}

	hash, err := user.HashPassword(req.Password)
	if err != nil {
		logging.ErrorLogger.Errorf("register: hash password: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	u, err := h.Users.Create(r.Context(), user.CreateParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameExists):
			api.WriteError(w, http.StatusBadRequest, "username already exists")
		case errors.Is(err, user.ErrEmailExists):
			api.WriteError(w, http.StatusBadRequest, "email already registered")
		default:
			logging.ErrorLogger.Errorf("register: create user: %v", err)
			api.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	api.WriteSuccess(w, "user registered successfully", map[string]any{
		"user_id": u.ID,
	})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := h.Users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		logging.ErrorLogger.Errorf("login: find user: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !user.CheckPassword(u.PasswordHash, req.Password) {
		api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !u.Active {
		api.WriteError(w, http.StatusUnauthorized, "inactive user")
		return
	}

	ttl := time.Duration(h.Cfg.SessionTTLHours) * time.Hour
	token, err := user.MintSessionToken(u.ID, h.Cfg.SessionSecret, ttl, time.Now())
	if err != nil {
		logging.ErrorLogger.Errorf("login: mint session token: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     api.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cfg.AppEnv == "prod",
	})

	api.WriteSuccess(w, "login successful", map[string]any{
		"user": u,
	})
}

func (h Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if api.ResolveUser(r, h.Cfg, h.Users) == nil {
		api.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     api.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cfg.AppEnv == "prod",
	})
	api.WriteSuccess(w, "logout successful", nil)
}

// Session is a probe, not a protected resource: it answers 200 either way and
// reports whether the caller holds a live session.
func (h Handlers) Session(w http.ResponseWriter, r *http.Request) {
	u := api.ResolveUser(r, h.Cfg, h.Users)
	if u == nil {
		api.WriteSuccess(w, "", map[string]any{
			"authenticated": false,
			"user":          nil,
		})
		return
	}
	api.WriteSuccess(w, "", map[string]any{
		"authenticated": true,
		"user":          u,
	})
}
