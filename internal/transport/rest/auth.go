package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/alphalearn-backend/internal/config"
	"github.com/heartmarshall/alphalearn-backend/internal/domain"
	"github.com/heartmarshall/alphalearn-backend/internal/service/auth"
	"github.com/heartmarshall/alphalearn-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

// AuthHandler serves registration, login and session identity endpoints.
type AuthHandler struct {
	svc    authService
	cookie config.AuthConfig
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler. Cookie name, lifetime and the Secure
// flag come from cfg.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cfg, log: logger.With("handler", "auth")}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type checkAuthResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username,omitempty"`
}

const msgCredentialsRequired = "Username and password are required."

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	user, err := h.svc.Register(r.Context(), auth.RegisterInput{Username: req.Username, Password: req.Password})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			writeError(w, http.StatusConflict, fmt.Sprintf("User %s is already registered.", strings.TrimSpace(req.Username)))
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "user registered", slog.String("user_id", user.ID.String()))
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Registration successful!"})
}

// Login handles POST /api/login. On success the session token is set as an
// HttpOnly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(res.Token, int(h.cookie.AccessTokenTTL.Seconds())))
	writeJSON(w, http.StatusOK, loginResponse{
		Message:  fmt.Sprintf("Welcome back, %s!", res.Identity.Username),
		Username: res.Identity.Username,
	})
}

// Logout handles POST /api/logout. It always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully."})
}

// CheckAuth handles GET /api/check_auth.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeJSON(w, http.StatusOK, checkAuthResponse{IsAuthenticated: false})
		return
	}
	writeJSON(w, http.StatusOK, checkAuthResponse{
		IsAuthenticated: true,
		Username:        ctxutil.UsernameFromCtx(r.Context()),
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
