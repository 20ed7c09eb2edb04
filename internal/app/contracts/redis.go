package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get returns an empty string without error when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// TrySetNX sets the key only when it does not exist yet and reports whether it did.
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	Ping(ctx context.Context) error
}
