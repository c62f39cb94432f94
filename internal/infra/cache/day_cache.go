package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// DayCache keeps formatted day listings in Redis for a short TTL. Failures
// are logged and treated as misses; the calendar stays the source of truth.
type DayCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDayCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *DayCache {
	return &DayCache{rdb: rdb, ttl: ttl, logger: logger}
}

// NewRedisClient connects and pings with a short timeout.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func dayKey(salonID uint, date string) string {
	return fmt.Sprintf("salon:%d:day:%s", salonID, date)
}

func (c *DayCache) Get(ctx context.Context, salonID uint, date string) (*domain.DayListing, bool) {
	data, err := c.rdb.Get(ctx, dayKey(salonID, date)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("day cache get failed", zap.String("date", date), zap.Error(err))
		return nil, false
	}

	var listing domain.DayListing
	if err := json.Unmarshal(data, &listing); err != nil {
		c.logger.Warn("day cache entry unreadable", zap.String("date", date), zap.Error(err))
		return nil, false
	}
	return &listing, true
}

func (c *DayCache) Set(ctx context.Context, salonID uint, date string, listing *domain.DayListing) {
	data, err := json.Marshal(listing)
	if err != nil {
		c.logger.Warn("day cache marshal failed", zap.String("date", date), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, dayKey(salonID, date), data, c.ttl).Err(); err != nil {
		c.logger.Warn("day cache set failed", zap.String("date", date), zap.Error(err))
	}
}

// Invalidate drops every cached day of the salon.
func (c *DayCache) Invalidate(ctx context.Context, salonID uint) {
	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("salon:%d:day:*", salonID), 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("day cache scan failed", zap.Uint("salon_id", salonID), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("day cache invalidate failed", zap.Uint("salon_id", salonID), zap.Error(err))
	}
}

var _ domain.DayCache = (*DayCache)(nil)
