package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

type wordSetBuilder interface {
	BuildWordSet(ctx context.Context, tier domain.Tier) ([]domain.WordRecord, error)
}

// WordHandler serves the A-Z word set.
type WordHandler struct {
	builder wordSetBuilder
	timeout time.Duration
	log     *slog.Logger
}

// NewWordHandler creates a WordHandler. timeout bounds each build; zero
// leaves it to the request context.
func NewWordHandler(builder wordSetBuilder, timeout time.Duration, logger *slog.Logger) *WordHandler {
	return &WordHandler{builder: builder, timeout: timeout, log: logger.With("handler", "words")}
}

type wordResponse struct {
	Letter  string `json:"letter"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
}

func toWordResponses(words []domain.WordRecord) []wordResponse {
	out := make([]wordResponse, len(words))
	for i, w := range words {
		out[i] = wordResponse{Letter: w.Letter, Word: w.Word, Meaning: w.Meaning, Example: w.Example}
	}
	return out
}

// GetWords handles GET /api/words/{level}. Unknown levels fall back to beginner.
// Letters still unresolved at the build deadline are left out.
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	tier := domain.ParseTier(mux.Vars(r)["level"])

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	words, err := h.builder.BuildWordSet(ctx, tier)
	if err != nil {
		// Client went away; nobody is reading the response.
		h.log.InfoContext(r.Context(), "word set build abandoned", slog.String("tier", tier.String()))
		return
	}

	writeJSON(w, http.StatusOK, toWordResponses(words))
}
