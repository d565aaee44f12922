package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	"github.com/go-redis/redis/v8"
)

// periodStatusTTL bounds staleness if an invalidation is ever lost.
const periodStatusTTL = 10 * time.Minute

// RedisPeriodStatusCache caches fiscal period statuses in redis so the
// period-lock check on every journal write avoids a database round trip.
type RedisPeriodStatusCache struct {
	client *redis.Client
}

func NewRedisPeriodStatusCache(client *redis.Client) portsrepo.PeriodStatusCache {
	return &RedisPeriodStatusCache{client: client}
}

var _ portsrepo.PeriodStatusCache = (*RedisPeriodStatusCache)(nil)

func periodStatusKey(churchID string, year int, month int) string {
	return fmt.Sprintf("fiscal_period:%s:%d-%02d", churchID, year, month)
}

func (c *RedisPeriodStatusCache) GetPeriodStatus(ctx context.Context, churchID string, year int, month int) (domain.PeriodStatus, bool, error) {
	val, err := c.client.Get(ctx, periodStatusKey(churchID, year, month)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	status := domain.PeriodStatus(val)
	if !status.IsValid() {
		return "", false, nil
	}
	return status, true, nil
}

func (c *RedisPeriodStatusCache) SetPeriodStatus(ctx context.Context, churchID string, year int, month int, status domain.PeriodStatus) error {
	return c.client.Set(ctx, periodStatusKey(churchID, year, month), string(status), periodStatusTTL).Err()
}

func (c *RedisPeriodStatusCache) InvalidatePeriodStatus(ctx context.Context, churchID string, year int, month int) error {
	return c.client.Del(ctx, periodStatusKey(churchID, year, month)).Err()
}
