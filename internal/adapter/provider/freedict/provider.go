package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
	"github.com/heartmarshall/alphalearn-backend/internal/provider"
)

const defaultTimeout = 5 * time.Second

// Provider fetches definitions from the FreeDictionary API.
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
		log:        logger.With("adapter", "freedict"),
	}
}

// Lookup fetches the first definition and the first available example for word.
// Every failure is reported as provider.ErrLookupFailed; no partial result is returned.
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.Definition, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w: %w", provider.ErrLookupFailed, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request %q: %w: %w", word, provider.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: %q: unexpected status %d: %w", word, resp.StatusCode, provider.ErrLookupFailed)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w: %w", provider.ErrLookupFailed, err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w: %w", provider.ErrLookupFailed, err)
	}

	def, err := mapAPIResponse(word, entries)
	if err != nil {
		return nil, fmt.Errorf("freedict: %q: %w", word, err)
	}

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Bool("has_example", def.Example != domain.NoExampleSentence),
	)

	return def, nil
}

// mapAPIResponse takes the meaning from the first definition of the first
// meaning of the first entry, and the example from the first definition of
// that entry carrying one.
func mapAPIResponse(word string, entries []apiEntry) (*provider.Definition, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries: %w", provider.ErrLookupFailed)
	}
	entry := entries[0]
	if len(entry.Meanings) == 0 {
		return nil, fmt.Errorf("no meanings: %w", provider.ErrLookupFailed)
	}
	if len(entry.Meanings[0].Definitions) == 0 {
		return nil, fmt.Errorf("no definitions: %w", provider.ErrLookupFailed)
	}

	example := domain.NoExampleSentence
found:
	for _, meaning := range entry.Meanings {
		for _, d := range meaning.Definitions {
			if d.Example != "" {
				example = d.Example
				break found
			}
		}
	}

	return &provider.Definition{
		Word:    domain.Capitalize(word),
		Meaning: entry.Meanings[0].Definitions[0].Definition,
		Example: example,
	}, nil
}
