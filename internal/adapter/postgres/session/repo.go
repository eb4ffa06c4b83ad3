// Package session implements the learning session repository using PostgreSQL.
// Listing and stats are built with squirrel; the rest is plain SQL.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/alphalearn-backend/internal/adapter/postgres"
	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides learning session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO learning_sessions (id, user_id, mode, score_percent, created_at)
VALUES ($1, $2, $3, $4, $5)`

const insertWordSQL = `
INSERT INTO session_words (session_id, position, letter, word, meaning, example)
VALUES ($1, $2, $3, $4, $5, $6)`

const insertQuizSQL = `
INSERT INTO session_quizzes (session_id, quiz)
VALUES ($1, $2)`

const getByIDSQL = `
SELECT id, user_id, mode, score_percent, created_at
FROM learning_sessions
WHERE id = $1 AND user_id = $2`

const getWordsSQL = `
SELECT letter, word, meaning, example
FROM session_words
WHERE session_id = $1
ORDER BY position`

const getQuizSQL = `
SELECT quiz::text
FROM session_quizzes
WHERE session_id = $1`

// ---------------------------------------------------------------------------
// Writes (expected to run inside TxManager.RunInTx)
// ---------------------------------------------------------------------------

// Create inserts the session header.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL, s.ID, s.UserID, string(s.Mode), s.ScorePercent, s.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "session", s.ID)
	}
	return nil
}

// AddWords inserts the session's words, keeping their order in position.
func (r *Repo) AddWords(ctx context.Context, sessionID uuid.UUID, words []domain.WordRecord) error {
	if len(words) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for i, w := range words {
		batch.Queue(insertWordSQL, sessionID, i, w.Letter, w.Word, w.Meaning, w.Example)
	}

	br := q.SendBatch(ctx, batch)
	for range words {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "session_words", sessionID)
		}
	}
	if err := br.Close(); err != nil {
		return postgres.MapError(err, "session_words", sessionID)
	}
	return nil
}

// SaveQuiz stores the quiz payload as a JSON array.
func (r *Repo) SaveQuiz(ctx context.Context, sessionID uuid.UUID, quiz []json.RawMessage) error {
	if quiz == nil {
		quiz = []json.RawMessage{}
	}
	payload, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("session %s: encode quiz: %w", sessionID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, insertQuizSQL, sessionID, string(payload)); err != nil {
		return postgres.MapError(err, "session_quiz", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// ListByUser returns the user's session summaries, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionSummary, error) {
	query, args, err := psql.
		Select("id", "mode", "score_percent", "created_at").
		From("learning_sessions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "sessions of user", userID)
	}
	defer rows.Close()

	summaries := []domain.SessionSummary{}
	for rows.Next() {
		var (
			s    domain.SessionSummary
			mode string
		)
		if err := rows.Scan(&s.ID, &mode, &s.ScorePercent, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		s.Mode = domain.Tier(mode)
		s.CreatedAt = s.CreatedAt.UTC()
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "sessions of user", userID)
	}

	return summaries, nil
}

// GetByID returns the full session owned by userID. A session that is missing
// or owned by someone else yields domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		s    domain.Session
		mode string
	)
	err := q.QueryRow(ctx, getByIDSQL, sessionID, userID).
		Scan(&s.ID, &s.UserID, &mode, &s.ScorePercent, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	s.Mode = domain.Tier(mode)
	s.CreatedAt = s.CreatedAt.UTC()

	words, err := r.getWords(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	s.Words = words

	quiz, err := r.getQuiz(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	s.Quiz = quiz

	return &s, nil
}

func (r *Repo) getWords(ctx context.Context, q postgres.Querier, sessionID uuid.UUID) ([]domain.WordRecord, error) {
	rows, err := q.Query(ctx, getWordsSQL, sessionID)
	if err != nil {
		return nil, postgres.MapError(err, "session_words", sessionID)
	}
	defer rows.Close()

	words := []domain.WordRecord{}
	for rows.Next() {
		var w domain.WordRecord
		if err := rows.Scan(&w.Letter, &w.Word, &w.Meaning, &w.Example); err != nil {
			return nil, fmt.Errorf("scan session word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "session_words", sessionID)
	}
	return words, nil
}

func (r *Repo) getQuiz(ctx context.Context, q postgres.Querier, sessionID uuid.UUID) ([]json.RawMessage, error) {
	var raw string
	err := q.QueryRow(ctx, getQuizSQL, sessionID).Scan(&raw)
	if err != nil {
		if postgres.IsNoRows(err) {
			return []json.RawMessage{}, nil
		}
		return nil, postgres.MapError(err, "session_quiz", sessionID)
	}

	quiz := []json.RawMessage{}
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, fmt.Errorf("session %s: decode quiz: %w", sessionID, err)
	}
	return quiz, nil
}

// StatsByUser returns the average score and count per tier in one grouped
// query. Tiers without sessions are present with zero values.
func (r *Repo) StatsByUser(ctx context.Context, userID uuid.UUID) (domain.TrackingStats, error) {
	query, args, err := psql.
		Select("mode", "AVG(score_percent)::float8", "COUNT(*)").
		From("learning_sessions").
		Where(sq.Eq{"user_id": userID}).
		GroupBy("mode").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "stats of user", userID)
	}
	defer rows.Close()

	stats := domain.NewTrackingStats()
	for rows.Next() {
		var (
			mode  string
			avg   float64
			count int
		)
		if err := rows.Scan(&mode, &avg, &count); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		tier := domain.Tier(mode)
		if !tier.IsValid() {
			continue
		}
		stats[tier] = domain.TierStats{Average: domain.RoundAverage(avg), Count: count}
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "stats of user", userID)
	}

	return stats, nil
}
