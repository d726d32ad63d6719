package cache

import (
	"context"
	"fmt"
)

type noopCache struct{}

// NewNoop returns a cache that stores nothing; every Get misses with Nil.
func NewNoop() RedisCache {
	return noopCache{}
}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

func (noopCache) Get(_ context.Context, key string, _ any) error {
	return fmt.Errorf("failed to get cache value %s: %w", key, Nil)
}

func (noopCache) Delete(_ context.Context, _ string) error {
	return nil
}

func (noopCache) Clear(_ context.Context, _ string) error {
	return nil
}
