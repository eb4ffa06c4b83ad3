package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/alphalearn-backend/internal/transport/middleware"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Auth     *AuthHandler
	Words    *WordHandler
	Sessions *SessionHandler
	Health   *HealthHandler
}

// NewRouter registers all routes. authLimit wraps the credential endpoints;
// global middleware is applied by the caller around the returned handler.
func NewRouter(h Handlers, authLimit middleware.Middleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", Index).Methods(http.MethodGet)
	r.HandleFunc("/health/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/register", authLimit(http.HandlerFunc(h.Auth.Register))).Methods(http.MethodPost)
	api.Handle("/login", authLimit(http.HandlerFunc(h.Auth.Login))).Methods(http.MethodPost)
	api.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/check_auth", h.Auth.CheckAuth).Methods(http.MethodGet)

	api.Handle("/words/{level}", protected(h.Words.GetWords)).Methods(http.MethodGet)
	api.Handle("/sessions", protected(h.Sessions.Create)).Methods(http.MethodPost)
	api.Handle("/sessions", protected(h.Sessions.List)).Methods(http.MethodGet)
	api.Handle("/sessions/{id}", protected(h.Sessions.Get)).Methods(http.MethodGet)
	api.Handle("/track", protected(h.Sessions.Track)).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func protected(fn http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(fn)
}
