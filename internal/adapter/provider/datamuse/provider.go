package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

const defaultTimeout = 5 * time.Second

// Provider lists candidate words from the Datamuse API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProviderWithURL creates a Provider with a custom base URL and per-call timeout.
func NewProviderWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "datamuse"),
	}
}

// Candidates returns words starting with letter, capped by the tier's
// frequency ceiling, in the order the service returned them.
// Failures are logged and yield an empty slice.
func (p *Provider) Candidates(ctx context.Context, letter string, tier domain.Tier) []string {
	words, err := p.fetch(ctx, letter, tier)
	if err != nil {
		p.log.WarnContext(ctx, "datamuse candidates failed",
			slog.String("letter", letter),
			slog.String("tier", tier.String()),
			slog.String("error", err.Error()),
		)
		return []string{}
	}
	return words
}

func (p *Provider) fetch(ctx context.Context, letter string, tier domain.Tier) ([]string, error) {
	q := url.Values{}
	q.Set("sp", strings.ToLower(letter)+"*")
	q.Set("md", "f")
	q.Set("max", strconv.Itoa(tier.MaxFrequency()))
	reqURL := p.baseURL + "/words?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("datamuse: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datamuse: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse: unexpected status %d", resp.StatusCode)
	}

	var items []apiWord
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("datamuse: decode json: %w", err)
	}

	words := make([]string, 0, len(items))
	for _, it := range items {
		words = append(words, it.Word)
	}

	p.log.DebugContext(ctx, "datamuse response",
		slog.String("letter", letter),
		slog.Int("candidates", len(words)),
	)

	return words, nil
}
