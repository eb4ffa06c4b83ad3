package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/alphalearn-backend/internal/auth"
	"github.com/heartmarshall/alphalearn-backend/pkg/ctxutil"
)

const testCookie = "alphalearn_session"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type seen struct {
	userID   uuid.UUID
	hasUser  bool
	username string
}

func captureHandler(s *seen) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.userID, s.hasUser = ctxutil.UserIDFromCtx(r.Context())
		s.username = ctxutil.UsernameFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_CookieToken(t *testing.T) {
	userID := uuid.New()
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(_ context.Context, token string) (auth.Identity, error) {
			if token != "cookie-token" {
				t.Errorf("token = %q, want cookie-token", token)
			}
			return auth.Identity{UserID: userID, Username: "alice"}, nil
		},
	}

	var s seen
	h := Auth(validator, testCookie, discardLogger())(captureHandler(&s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !s.hasUser || s.userID != userID {
		t.Fatalf("user = %v (%v), want %v", s.userID, s.hasUser, userID)
	}
	if s.username != "alice" {
		t.Errorf("username = %q, want alice", s.username)
	}
}

func TestAuth_BearerToken(t *testing.T) {
	userID := uuid.New()
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(_ context.Context, token string) (auth.Identity, error) {
			return auth.Identity{UserID: userID, Username: "bob"}, nil
		},
	}

	var s seen
	h := Auth(validator, testCookie, discardLogger())(captureHandler(&s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !s.hasUser {
		t.Fatal("expected authenticated request")
	}
	if got := validator.ValidateTokenCalls()[0].Token; got != "header-token" {
		t.Errorf("token = %q, want header-token", got)
	}
}

func TestAuth_CookieTakesPrecedence(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(_ context.Context, token string) (auth.Identity, error) {
			return auth.Identity{UserID: uuid.New(), Username: "alice"}, nil
		},
	}

	h := Auth(validator, testCookie, discardLogger())(captureHandler(&seen{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got := validator.ValidateTokenCalls()[0].Token; got != "from-cookie" {
		t.Errorf("token = %q, want from-cookie", got)
	}
}

func TestAuth_NoToken_Anonymous(t *testing.T) {
	validator := &tokenValidatorMock{}

	var s seen
	h := Auth(validator, testCookie, discardLogger())(captureHandler(&s))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if s.hasUser {
		t.Error("expected anonymous request")
	}
	if len(validator.ValidateTokenCalls()) != 0 {
		t.Error("validator should not be called without a token")
	}
}

func TestAuth_InvalidToken_Anonymous(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(context.Context, string) (auth.Identity, error) {
			return auth.Identity{}, errors.New("expired")
		},
	}

	var s seen
	h := Auth(validator, testCookie, discardLogger())(captureHandler(&s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if s.hasUser {
		t.Error("invalid token must not authenticate")
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc", "abc"},
		{"lowercase scheme", "bearer abc", "abc"},
		{"basic scheme", "Basic abc", ""},
		{"missing value", "Bearer", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if got := extractToken(req, testCookie); got != tt.want {
				t.Errorf("extractToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireAuth(next)

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Authentication required.") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(ctxutil.WithUserID(req.Context(), uuid.New()))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})
}
