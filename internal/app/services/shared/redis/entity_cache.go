package redis

import (
	"context"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// deletedMarker is what Invalidate leaves behind. Load reports it as a miss,
// and Fill never replaces it.
const deletedMarker = "null"

// EntityCache keeps single entities by key. Every failure is logged and treated
// as a miss, so callers always fall back to the store.
//
// Writers (Store, Invalidate) always overwrite the key. Readers filling the
// cache after a store read use Fill, which only sets an absent key, so a read
// that raced an update or delete cannot put the old entity back.
type EntityCache struct {
	Repository contracts.RedisRepository
	TTL        time.Duration
	Log        *zap.Logger
}

func NewEntityCache(repository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) *EntityCache {
	return &EntityCache{
		Repository: repository,
		TTL:        ttl,
		Log:        logger,
	}
}

// Load decodes the cached value into dest and reports whether it was found.
func (c *EntityCache) Load(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.Repository == nil {
		return false
	}

	data, err := c.Repository.Get(ctx, key)
	if err != nil {
		c.Log.Warn("EntityCache.Load error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return false
	}
	if data == "" || data == deletedMarker {
		return false
	}

	err = json.Unmarshal([]byte(data), dest)
	if err != nil {
		c.Log.Warn("EntityCache.Load error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Fill caches a value read from the store unless the key is already set.
func (c *EntityCache) Fill(ctx context.Context, key string, value interface{}) {
	if c == nil || c.Repository == nil {
		return
	}

	_, err := c.Repository.TrySetNX(ctx, key, value, c.TTL)
	if err != nil {
		c.Log.Warn("EntityCache.Fill error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}

// Store overwrites the key with a value that was just written to the store.
func (c *EntityCache) Store(ctx context.Context, key string, value interface{}) {
	if c == nil || c.Repository == nil {
		return
	}

	err := c.Repository.Set(ctx, key, value, c.TTL)
	if err != nil {
		c.Log.Warn("EntityCache.Store error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		c.Invalidate(ctx, key)
	}
}

// Invalidate replaces the key with the deleted marker for one TTL. When even
// that fails the key is dropped.
func (c *EntityCache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.Repository == nil {
		return
	}

	err := c.Repository.Set(ctx, key, nil, c.TTL)
	if err == nil {
		return
	}
	c.Log.Warn("EntityCache.Invalidate error marking data in Redis",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Error(err),
	)

	err = c.Repository.Delete(ctx, key)
	if err != nil {
		c.Log.Warn("EntityCache.Invalidate error deleting data from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}
