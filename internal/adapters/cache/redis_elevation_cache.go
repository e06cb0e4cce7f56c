package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flight-route-service/internal/domain"
)

// RedisElevationCache is a Redis-backed cache for ground-elevation
// lookups. Elevation data is static, so entries carry a long TTL and
// keys are coordinates rounded to four decimal places (about 20 m).
type RedisElevationCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisElevationCache(client *redis.Client, ttl time.Duration) *RedisElevationCache {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisElevationCache{Client: client, TTL: ttl}
}

func elevationKey(p domain.Coordinates) string {
	return fmt.Sprintf("elev:%.4f:%.4f", p.Lat, p.Lon)
}

// Get returns the cached elevation for a point, reporting a miss via
// the second return.
func (c *RedisElevationCache) Get(ctx context.Context, p domain.Coordinates) (float64, bool, error) {
	if c.Client == nil {
		return 0, false, errors.New("elevation cache: client is nil")
	}

	v, err := c.Client.Get(ctx, elevationKey(p)).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get elevation cache: %w", err)
	}

	return v, true, nil
}

// Put stores a resolved elevation for a point.
func (c *RedisElevationCache) Put(ctx context.Context, p domain.Coordinates, elevationFt float64) error {
	if c.Client == nil {
		return errors.New("elevation cache: client is nil")
	}

	if err := c.Client.Set(ctx, elevationKey(p), elevationFt, c.TTL).Err(); err != nil {
		return fmt.Errorf("put elevation cache: %w", err)
	}

	return nil
}
