package learning

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

// sessionRepo defines the session persistence needed by the learning service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	AddWords(ctx context.Context, sessionID uuid.UUID, words []domain.WordRecord) error
	SaveQuiz(ctx context.Context, sessionID uuid.UUID, quiz []json.RawMessage) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error)
	StatsByUser(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error)
}

// txManager defines the transaction manager interface needed by the learning service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records completed learning sessions and reports on them.
type Service struct {
	log      *slog.Logger
	sessions sessionRepo
	tx       txManager
}

// NewService creates a new learning service instance.
func NewService(logger *slog.Logger, sessions sessionRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "learning"),
		sessions: sessions,
		tx:       tx,
	}
}
