package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sopejohn/freshmart/models"
)

const summaryKey = "analytics:summary"

// AnalyticsCache is a cache-aside store for the dashboard summary. A nil
// client disables caching entirely.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalyticsCache(client *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{client: client, ttl: ttl}
}

func (c *AnalyticsCache) GetSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, summaryKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary models.AnalyticsSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *AnalyticsCache) SetSummary(ctx context.Context, summary *models.AnalyticsSummary) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey, data, c.ttl).Err()
}
