package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/healthtrack/symptom-tracker/internal/api/metrics"
	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

const analyticsTTL = 5 * time.Minute

// AnalyticsCache stores per-user monthly log counts.
// Key format: analytics:<user_id>:<year>
type AnalyticsCache struct {
	client *redis.Client
}

func NewAnalyticsCache(client *redis.Client) *AnalyticsCache {
	return &AnalyticsCache{client: client}
}

func key(userID string, year int) string {
	return fmt.Sprintf("analytics:%s:%d", userID, year)
}

// Get returns the cached counts for a user and year. The second return value
// is false on a cache miss.
func (c *AnalyticsCache) Get(ctx context.Context, userID string, year int) ([]domain.MonthlyCount, bool, error) {
	raw, err := c.client.Get(ctx, key(userID, year)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.AnalyticsCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("analytics cache get: %w", err)
	}

	var counts []domain.MonthlyCount
	if err := json.Unmarshal(raw, &counts); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		metrics.AnalyticsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.AnalyticsCacheTotal.WithLabelValues("hit").Inc()
	return counts, true, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, userID string, year int, counts []domain.MonthlyCount) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("analytics cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, key(userID, year), raw, analyticsTTL).Err(); err != nil {
		return fmt.Errorf("analytics cache set: %w", err)
	}
	return nil
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, userID string, year int) error {
	if err := c.client.Del(ctx, key(userID, year)).Err(); err != nil {
		return fmt.Errorf("analytics cache del: %w", err)
	}
	return nil
}
