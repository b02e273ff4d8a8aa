package reviews

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/pkg/logger"
)

const keyPrefix = "reviews:stats:"

// RedisProvider reads review aggregates written to Redis by the review
// pipeline, one JSON document per coffee or product id.
type RedisProvider struct {
	client *redis.Client
}

// NewRedisProvider creates a provider over an existing client.
func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

// StatsFor fetches aggregates for the given ids in one MGET. Ids without an
// aggregate are simply absent from the returned map; documents that fail to
// decode are skipped with a warning.
func (p *RedisProvider) StatsFor(ctx context.Context, ids []string) (map[string]domain.ReviewStats, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyPrefix + id
	}

	values, err := p.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review stats: %w", err)
	}

	stats := make(map[string]domain.ReviewStats)
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var s domain.ReviewStats
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			logger.Warn(ctx).
				Err(err).
				Str("id", ids[i]).
				Msg("Skipping malformed review stats document")
			continue
		}
		stats[ids[i]] = s
	}
	return stats, nil
}
