package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
	"github.com/heartmarshall/alphalearn-backend/internal/service/learning"
	"github.com/heartmarshall/alphalearn-backend/pkg/ctxutil"
)

const (
	dateFormatted = "2006-01-02 15:04"
	msgNoSession  = "Session not found or access denied."
)

type learningService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, input learning.CreateSessionInput) (uuid.UUID, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error)
	GetTrackingStats(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error)
}

// SessionHandler serves session history and tracking endpoints. All routes
// expect RequireAuth in front.
type SessionHandler struct {
	svc learningService
	log *slog.Logger
}

func NewSessionHandler(svc learningService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "sessions")}
}

type createSessionRequest struct {
	Mode         string            `json:"mode"`
	ScorePercent int               `json:"scorePercent"`
	Words        []wordResponse    `json:"words"`
	Quiz         []json.RawMessage `json:"quiz"`
}

type createSessionResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type sessionSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Mode          string    `json:"mode"`
	ScorePercent  int       `json:"scorePercent"`
	DateFormatted string    `json:"dateFormatted"`
}

type sessionDetailResponse struct {
	ID           uuid.UUID         `json:"id"`
	Mode         string            `json:"mode"`
	ScorePercent int               `json:"scorePercent"`
	DateISO      string            `json:"dateISO"`
	Words        []wordResponse    `json:"words"`
	Quiz         []json.RawMessage `json:"quiz"`
}

type tierStatsResponse struct {
	Average int `json:"average"`
	Count   int `json:"count"`
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	var req createSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, domain.NewValidationError("body", "malformed JSON"))
		return
	}

	words := make([]domain.WordRecord, len(req.Words))
	for i, wr := range req.Words {
		words[i] = domain.WordRecord{Letter: wr.Letter, Word: wr.Word, Meaning: wr.Meaning, Example: wr.Example}
	}

	id, err := h.svc.CreateSession(r.Context(), userID, learning.CreateSessionInput{
		Mode:         req.Mode,
		ScorePercent: req.ScorePercent,
		Words:        words,
		Quiz:         req.Quiz,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{Message: "Session saved successfully.", ID: id})
}

// List handles GET /api/sessions, newest first.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	sessions, err := h.svc.ListSessions(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]sessionSummaryResponse, len(sessions))
	for i, s := range sessions {
		out[i] = sessionSummaryResponse{
			ID:            s.ID,
			Mode:          s.Mode.String(),
			ScorePercent:  s.ScorePercent,
			DateFormatted: s.CreatedAt.UTC().Format(dateFormatted),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/sessions/{id}. Unknown, malformed and foreign ids all
// answer the same 404.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, msgNoSession)
		return
	}

	s, err := h.svc.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNoSession)
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	quiz := s.Quiz
	if quiz == nil {
		quiz = []json.RawMessage{}
	}
	writeJSON(w, http.StatusOK, sessionDetailResponse{
		ID:           s.ID,
		Mode:         s.Mode.String(),
		ScorePercent: s.ScorePercent,
		DateISO:      s.CreatedAt.UTC().Format(time.RFC3339),
		Words:        toWordResponses(s.Words),
		Quiz:         quiz,
	})
}

// Track handles GET /api/track.
func (h *SessionHandler) Track(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	stats, err := h.svc.GetTrackingStats(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make(map[string]tierStatsResponse, len(domain.Tiers))
	for _, t := range domain.Tiers {
		st := stats[t]
		out[t.String()] = tierStatsResponse{Average: st.Average, Count: st.Count}
	}
	writeJSON(w, http.StatusOK, out)
}
