package domain

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
)

// Session is one completed learning and quiz run. It is written once and never
// updated.
type Session struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Mode         Tier
	ScorePercent int
	CreatedAt    time.Time
	Words        []WordRecord
	// Quiz is owned by the client and stored verbatim.
	Quiz []json.RawMessage
}

// SessionSummary is a list row for the session history.
type SessionSummary struct {
	ID           uuid.UUID
	Mode         Tier
	ScorePercent int
	CreatedAt    time.Time
}

// TierStats aggregates a user's sessions in one tier.
type TierStats struct {
	Average int
	Count   int
}

// TrackingStats holds stats for every tier; tiers without sessions are zero.
type TrackingStats map[Tier]TierStats

// NewTrackingStats returns stats with all tiers present and zeroed.
func NewTrackingStats() TrackingStats {
	stats := make(TrackingStats, len(Tiers))
	for _, t := range Tiers {
		stats[t] = TierStats{}
	}
	return stats
}

// RoundAverage rounds a mean score to the nearest integer, halves to even.
func RoundAverage(avg float64) int {
	return int(math.RoundToEven(avg))
}
