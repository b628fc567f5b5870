package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

var _ domain.ProgressRepository = (*CachedProgressRepository)(nil)

const progressCacheTTL = 30 * time.Minute

// CachedProgressRepository is a read-through redis cache in front of another
// ProgressRepository. Redis failures degrade to the underlying store.
type CachedProgressRepository struct {
	next   domain.ProgressRepository
	cache  *redis.Client
	logger *zap.SugaredLogger
}

func NewCachedProgressRepository(next domain.ProgressRepository, cache *redis.Client, logger *zap.SugaredLogger) *CachedProgressRepository {
	return &CachedProgressRepository{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (r *CachedProgressRepository) cacheKey(userID string) string {
	return fmt.Sprintf("progress:%s", userID)
}

func (r *CachedProgressRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		r.logger.Warnw("cache invalidate failed", "user_id", userID, "error", err)
	}
}

func (r *CachedProgressRepository) Load(ctx context.Context, userID string) (domain.UserProgress, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		var progress domain.UserProgress
		if err := json.Unmarshal(val, &progress); err == nil {
			return progress, nil
		}

		r.logger.Warnw("corrupted cache entry, cleaning up key", "user_id", userID)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warnw("cache read failed", "user_id", userID, "error", err)
	}

	progress, err := r.next.Load(ctx, userID)
	if err != nil {
		return domain.UserProgress{}, err
	}

	if data, err := json.Marshal(progress); err == nil {
		if setErr := r.cache.Set(ctx, key, data, progressCacheTTL).Err(); setErr != nil {
			r.logger.Warnw("cache set failed", "user_id", userID, "error", setErr)
		}
	}

	return progress, nil
}

// Save writes through so the cache never holds an older snapshot than the
// store. If the write fails the entry is dropped instead.
func (r *CachedProgressRepository) Save(ctx context.Context, userID string, progress domain.UserProgress) error {
	if err := r.next.Save(ctx, userID, progress); err != nil {
		return err
	}

	data, err := json.Marshal(progress)
	if err == nil {
		err = r.cache.Set(ctx, r.cacheKey(userID), data, progressCacheTTL).Err()
	}
	if err != nil {
		r.logger.Warnw("cache write-through failed, invalidating", "user_id", userID, "error", err)
		r.invalidate(ctx, userID)
	}
	return nil
}
