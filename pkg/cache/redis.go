package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cinema-chain/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to redis using the app config. Returns nil when
// no address is configured or the server is unreachable; callers degrade
// gracefully by serving availability reads from the store.
func NewRedisClient(config utils.RedisConfig, log *zap.Logger) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, availability cache disabled",
			zap.String("addr", config.Addr),
			zap.Error(err),
		)
		return nil
	}

	return client
}

// AvailabilityCache is a TTL-bounded read cache for remaining seat counts.
// Mutations must call Invalidate so a cached value is never staler than
// one in-flight transaction plus the TTL.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "availability")),
	}
}

func (c *AvailabilityCache) key(screeningID string) string {
	return fmt.Sprintf("availability:%s", screeningID)
}

// Get returns the cached count, or ok=false on miss or disabled cache.
func (c *AvailabilityCache) Get(ctx context.Context, screeningID string) (int, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}

	val, err := c.client.Get(ctx, c.key(screeningID)).Result()
	if err != nil {
		return 0, false
	}

	seats, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}

	return seats, true
}

func (c *AvailabilityCache) Set(ctx context.Context, screeningID string, seats int) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, c.key(screeningID), strconv.Itoa(seats), c.ttl).Err(); err != nil {
		c.log.Warn("Failed to cache availability",
			zap.String("screening_id", screeningID),
			zap.Error(err),
		)
	}
}

// Invalidate drops the cached count after a committed mutation.
func (c *AvailabilityCache) Invalidate(ctx context.Context, screeningID string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, c.key(screeningID)).Err(); err != nil {
		c.log.Warn("Failed to invalidate availability cache",
			zap.String("screening_id", screeningID),
			zap.Error(err),
		)
	}
}
