package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and a placeholder hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpl",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSession inserts a session header only (no words, no quiz) created at the
// given time. Useful for list ordering and stats tests.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, mode domain.Tier, score int, createdAt time.Time) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO learning_sessions (id, user_id, mode, score_percent, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, userID, string(mode), score, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO session_quizzes (session_id, quiz) VALUES ($1, $2)`,
		id, "[]",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession quiz: %v", err)
	}

	return id
}
