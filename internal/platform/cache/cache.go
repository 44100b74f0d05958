package cache

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
)

// Cache is a byte-level snapshot store with a per-store TTL. Both the
// in-process Store and RedisStore satisfy it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) ([]byte, error)) ([]byte, error)
}

// Load reads key through c, calling loader on a miss. Values are stored as
// JSON so callers never share mutable state with the cache.
func Load[T any](ctx context.Context, c Cache, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if c == nil {
		return loader(ctx)
	}

	raw, err := c.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		return sonic.Marshal(value)
	})
	if err != nil {
		return zero, err
	}

	var out T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		_ = c.Delete(ctx, key)
		return loader(ctx)
	}
	return out, nil
}

// Lookup wraps a by-ID read so a cached miss is distinguishable from a
// cache miss.
type Lookup[T any] struct {
	Value  T    `json:"value"`
	Exists bool `json:"exists"`
}
