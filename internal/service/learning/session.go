package learning

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

// CreateSession stores the session header, its words and its quiz in one
// transaction and returns the new session id.
func (s *Service) CreateSession(ctx context.Context, userID uuid.UUID, input CreateSessionInput) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	quiz := input.Quiz
	if quiz == nil {
		quiz = []json.RawMessage{}
	}

	session := &domain.Session{
		ID:           uuid.New(),
		UserID:       userID,
		Mode:         domain.Tier(input.Mode),
		ScorePercent: input.ScorePercent,
		CreatedAt:    time.Now().UTC(),
		Words:        input.Words,
		Quiz:         quiz,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sessions.Create(txCtx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		if err := s.sessions.AddWords(txCtx, session.ID, session.Words); err != nil {
			return fmt.Errorf("add words: %w", err)
		}
		if err := s.sessions.SaveQuiz(txCtx, session.ID, session.Quiz); err != nil {
			return fmt.Errorf("save quiz: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("learning.CreateSession: %w", err)
	}

	s.log.InfoContext(ctx, "session saved",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.String("mode", session.Mode.String()),
		slog.Int("score_percent", session.ScorePercent),
		slog.Int("words", len(session.Words)),
	)

	return session.ID, nil
}

// ListSessions returns the user's sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error) {
	list, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("learning.ListSessions: %w", err)
	}
	if list == nil {
		list = []domain.SessionSummary{}
	}
	return list, nil
}

// GetSession returns the full session if it belongs to userID. A session owned
// by someone else is indistinguishable from a missing one.
func (s *Service) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("learning.GetSession: %w", err)
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("learning.GetSession: session %s: %w", sessionID, domain.ErrNotFound)
	}
	return session, nil
}

// GetTrackingStats returns per-tier averages and counts. All tiers are present.
func (s *Service) GetTrackingStats(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error) {
	stats, err := s.sessions.StatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("learning.GetTrackingStats: %w", err)
	}

	out := domain.NewTrackingStats()
	for tier, st := range stats {
		if tier.IsValid() {
			out[tier] = st
		}
	}
	return out, nil
}
