package wordset

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
	"github.com/heartmarshall/alphalearn-backend/internal/provider"
)

const defaultConcurrency = 8

// candidateSource lists words beginning with a letter within a tier.
type candidateSource interface {
	Candidates(ctx context.Context, letter string, tier domain.Tier) []string
}

// dictionary resolves a word into its meaning and example.
type dictionary interface {
	Lookup(ctx context.Context, word string) (*provider.Definition, error)
}

// Service builds alphabet word sets.
type Service struct {
	log         *slog.Logger
	candidates  candidateSource
	dict        dictionary
	concurrency int
}

// NewService creates a new word set service. concurrency bounds the number of
// letters resolved at the same time; values outside [1, 26] fall back to 8.
func NewService(logger *slog.Logger, candidates candidateSource, dict dictionary, concurrency int) *Service {
	if concurrency < 1 || concurrency > len(domain.Alphabet) {
		concurrency = defaultConcurrency
	}
	return &Service{
		log:         logger.With("service", "wordset"),
		candidates:  candidates,
		dict:        dict,
		concurrency: concurrency,
	}
}

// BuildWordSet resolves one word per letter A-Z for tier. Letters that could
// not be resolved are omitted; the rest are returned in alphabetical order.
// External failures are absorbed. When ctx reaches its deadline the letters
// resolved so far are returned; the only error is ctx cancellation.
func (s *Service) BuildWordSet(ctx context.Context, tier domain.Tier) ([]domain.WordRecord, error) {
	var (
		slots [len(domain.Alphabet)]*domain.WordRecord
		g     errgroup.Group
	)
	g.SetLimit(s.concurrency)

	for i := range len(domain.Alphabet) {
		letter := domain.Alphabet[i]
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slots[i] = s.resolveLetter(ctx, letter, tier)
			return nil
		})
	}

	// Tasks only fail with ctx.Err, so Wait's error is re-read from ctx.
	_ = g.Wait()
	switch err := ctx.Err(); {
	case errors.Is(err, context.DeadlineExceeded):
		s.log.WarnContext(ctx, "word set build deadline reached", slog.String("tier", tier.String()))
	case err != nil:
		return nil, err
	}

	words := make([]domain.WordRecord, 0, len(slots))
	for _, rec := range slots {
		if rec != nil {
			words = append(words, *rec)
		}
	}

	if missing := len(slots) - len(words); missing > 0 {
		s.log.WarnContext(ctx, "word set incomplete",
			slog.String("tier", tier.String()),
			slog.Int("missing", missing),
		)
	}

	return words, nil
}

// resolveLetter probes at most MaxCandidateProbes candidates, then the static
// fallback word. Returns nil when every lookup failed.
func (s *Service) resolveLetter(ctx context.Context, letter byte, tier domain.Tier) *domain.WordRecord {
	l := string(letter)

	candidates := s.candidates.Candidates(ctx, l, tier)
	if len(candidates) > domain.MaxCandidateProbes {
		candidates = candidates[:domain.MaxCandidateProbes]
	}

	for _, word := range candidates {
		if ctx.Err() != nil {
			return nil
		}
		if strings.TrimSpace(word) == "" {
			continue
		}
		if rec := s.lookup(ctx, l, word); rec != nil {
			return rec
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	fallback, ok := domain.FallbackWord(letter)
	if !ok {
		return nil
	}
	s.log.DebugContext(ctx, "using fallback word", slog.String("letter", l), slog.String("word", fallback))

	rec := s.lookup(ctx, l, fallback)
	if rec == nil {
		s.log.WarnContext(ctx, "letter omitted", slog.String("letter", l))
	}
	return rec
}

func (s *Service) lookup(ctx context.Context, letter, word string) *domain.WordRecord {
	def, err := s.dict.Lookup(ctx, word)
	if err != nil {
		s.log.DebugContext(ctx, "lookup failed",
			slog.String("letter", letter),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &domain.WordRecord{
		Letter:  letter,
		Word:    def.Word,
		Meaning: def.Meaning,
		Example: def.Example,
	}
}
