package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

// countingProgressRepository counts Load calls reaching the backing store.
type countingProgressRepository struct {
	*InMemoryProgressRepository
	loads int
}

func (r *countingProgressRepository) Load(ctx context.Context, userID string) (domain.UserProgress, error) {
	r.loads++
	return r.InMemoryProgressRepository.Load(ctx, userID)
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		addr = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       2,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCachedProgressRepository_Integration(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	backing := &countingProgressRepository{InMemoryProgressRepository: NewInMemoryProgressRepository()}
	repo := NewCachedProgressRepository(backing, rdb, zap.NewNop().Sugar())

	require.NoError(t, backing.Save(ctx, "user-1", domain.NewUserProgress("2026-01-03")))

	t.Run("Success: Second read is served from cache", func(t *testing.T) {
		first, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		second, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
		assert.Equal(t, 1, backing.loads)
	})

	t.Run("Success: Save writes the new snapshot through", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "user-1", domain.NewUserProgress("2026-01-03", "2026-01-04")))

		cached, err := rdb.Get(ctx, "progress:user-1").Bytes()
		require.NoError(t, err)
		assert.JSONEq(t, `{"completed_days":["2026-01-03","2026-01-04"]}`, string(cached))

		got, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-01-03", "2026-01-04"}, got.IDs())
		assert.Equal(t, 1, backing.loads)
	})

	t.Run("Edge: Corrupted entry falls back to the store", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "progress:user-1", "not-json", 0).Err())

		got, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Len())
		assert.Equal(t, 2, backing.loads)
	})
}

func TestCachedProgressRepository_RedisDown(t *testing.T) {
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	backing := NewInMemoryProgressRepository()
	repo := NewCachedProgressRepository(backing, rdb, zap.NewNop().Sugar())

	t.Run("Success: Save reaches the store when the cache is unreachable", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "user-1", domain.NewUserProgress("2026-01-03")))

		stored, err := backing.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, stored.Has("2026-01-03"))
	})

	t.Run("Success: Load falls back to the store", func(t *testing.T) {
		got, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-01-03"}, got.IDs())
	})
}
