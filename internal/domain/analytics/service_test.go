package analytics

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/your-org/restaurant-backend/internal/infrastructure/database/redis"
)

func TestInvalidateStatsWithoutCache(t *testing.T) {
	svc := NewService(nil, nil, nil)

	assert.NotPanics(t, func() {
		svc.InvalidateStats(context.Background(), 1)
	})
}

func TestInvalidateStatsSwallowsCacheErrors(t *testing.T) {
	// Eviction is best-effort: an unreachable Redis must not surface to
	// the mutating handler that triggered it.
	cache := &redis.Client{
		Redis: goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"}),
	}
	svc := NewService(nil, nil, cache)

	assert.NotPanics(t, func() {
		svc.InvalidateStats(context.Background(), 1)
	})
}
