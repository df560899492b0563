package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache TTLs: analyses go stale quickly (live counters), suggestion lists
// are cheap to keep longer.
const (
	AnalysisCacheTTL   = 5 * time.Minute
	SuggestionCacheTTL = 15 * time.Minute
)

// CacheService provides a Redis cache-aside layer for analysis results and
// search suggestions.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, the returned service has a nil client and every
// operation becomes a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetAnalysis retrieves a cached analysis payload. Returns nil when absent
// or when caching is disabled.
func (c *CacheService) GetAnalysis(ctx context.Context, channelID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, analysisKey(channelID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetAnalysis stores an analysis payload.
func (c *CacheService) SetAnalysis(ctx context.Context, channelID string, data any) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, analysisKey(channelID), b, AnalysisCacheTTL).Err()
}

// GetSuggestions retrieves a cached suggestion list for a query.
func (c *CacheService) GetSuggestions(ctx context.Context, query string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, suggestionKey(query)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetSuggestions stores a suggestion list for a query.
func (c *CacheService) SetSuggestions(ctx context.Context, query string, data any) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, suggestionKey(query), b, SuggestionCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func analysisKey(channelID string) string {
	return fmt.Sprintf("analysis:%s", channelID)
}

func suggestionKey(query string) string {
	return fmt.Sprintf("suggest:%s", query)
}
