package cache

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"flight-route-service/internal/domain"
)

func newTestCache(t *testing.T) (*RedisElevationCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisElevationCache(client, time.Hour), mr
}

func TestGetMissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	p := domain.Coordinates{Lat: 46.2044, Lon: 6.1432}

	if _, hit, err := c.Get(ctx, p); err != nil || hit {
		t.Fatalf("expected clean miss, got hit=%v err=%v", hit, err)
	}

	if err := c.Put(ctx, p, 1411.5); err != nil {
		t.Fatalf("put: %v", err)
	}

	v, hit, err := c.Get(ctx, p)
	if err != nil || !hit {
		t.Fatalf("expected hit, got hit=%v err=%v", hit, err)
	}
	if math.Abs(v-1411.5) > 1e-9 {
		t.Fatalf("cached value = %f, want 1411.5", v)
	}
}

func TestKeyRounding(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, domain.Coordinates{Lat: 46.20441, Lon: 6.14322}, 100); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Within rounding distance of the stored point.
	if _, hit, _ := c.Get(ctx, domain.Coordinates{Lat: 46.20439, Lon: 6.14318}); !hit {
		t.Fatal("expected hit for a point rounding to the same key")
	}
	// A different point misses.
	if _, hit, _ := c.Get(ctx, domain.Coordinates{Lat: 46.21, Lon: 6.15}); hit {
		t.Fatal("expected miss for a distinct point")
	}
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	p := domain.Coordinates{Lat: 47.0, Lon: 8.0}

	if err := c.Put(ctx, p, 2500); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, hit, err := c.Get(ctx, p); err != nil || hit {
		t.Fatalf("expected entry to expire, got hit=%v err=%v", hit, err)
	}
}

func TestNilClient(t *testing.T) {
	c := NewRedisElevationCache(nil, 0)
	ctx := context.Background()
	p := domain.Coordinates{Lat: 0, Lon: 0}

	if _, _, err := c.Get(ctx, p); err == nil {
		t.Error("expected error from Get with nil client")
	}
	if err := c.Put(ctx, p, 1); err == nil {
		t.Error("expected error from Put with nil client")
	}
}
