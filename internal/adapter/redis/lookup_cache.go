package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/alphalearn-backend/internal/provider"
)

const keyPrefix = "alphalearn:lookup:"

type lookuper interface {
	Lookup(ctx context.Context, word string) (*provider.Definition, error)
}

type cachedDefinition struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
}

// LookupCache wraps a dictionary lookup with a Redis read-through cache.
// Only successful lookups are stored. Redis errors never fail a lookup;
// they are logged and the underlying client is used directly.
type LookupCache struct {
	next   lookuper
	client *goredis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewLookupCache creates a LookupCache in front of next.
func NewLookupCache(next lookuper, client *goredis.Client, ttl time.Duration, logger *slog.Logger) *LookupCache {
	return &LookupCache{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    logger.With("adapter", "redis_lookup_cache"),
	}
}

// Lookup returns a cached definition for word or delegates to the wrapped client.
func (c *LookupCache) Lookup(ctx context.Context, word string) (*provider.Definition, error) {
	key := cacheKey(word)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cd cachedDefinition
		if jsonErr := json.Unmarshal(raw, &cd); jsonErr == nil {
			c.log.DebugContext(ctx, "lookup cache hit", slog.String("word", word))
			return &provider.Definition{Word: cd.Word, Meaning: cd.Meaning, Example: cd.Example}, nil
		}
		c.log.WarnContext(ctx, "lookup cache entry corrupt", slog.String("key", key))
	case errors.Is(err, goredis.Nil):
	default:
		c.log.WarnContext(ctx, "lookup cache get failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	def, err := c.next.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedDefinition{Word: def.Word, Meaning: def.Meaning, Example: def.Example})
	if err == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.log.WarnContext(ctx, "lookup cache set failed", slog.String("key", key), slog.String("error", setErr.Error()))
		}
	}

	return def, nil
}

func cacheKey(word string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(word))
}
