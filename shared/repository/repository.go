package repository

import (
	"context"
	"coworking/infras/otel"
	"coworking/shared/constant"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Filter selects items in GetAll and Count.
type Filter[T any] func(item T) bool

// Repository is an in-memory keyed collection that remembers insertion order.
type Repository[K comparable, T any] struct {
	mu      sync.RWMutex
	otel    otel.Otel
	entitas string
	keys    []K
	items   map[K]T
}

func NewRepository[K comparable, T any](entitasName string, otl otel.Otel) *Repository[K, T] {
	return &Repository[K, T]{
		otel:    otl,
		entitas: entitasName,
		items:   make(map[K]T),
	}
}

func (repo *Repository[K, T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, op)
}

// Insert stores item under key. It reports false, leaving the collection untouched, when key is taken.
func (repo *Repository[K, T]) Insert(ctx context.Context, key K, item T) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.items[key]; ok {
		return false
	}

	repo.keys = append(repo.keys, key)
	repo.items[key] = item

	return true
}

func (repo *Repository[K, T]) Get(ctx context.Context, key K) (T, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	item, ok := repo.items[key]

	return item, ok
}

func (repo *Repository[K, T]) Exist(ctx context.Context, key K) bool {
	_, ok := repo.Get(ctx, key)

	return ok
}

// Update replaces the item stored under key, keeping its position. It reports false when key is absent.
func (repo *Repository[K, T]) Update(ctx context.Context, key K, item T) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.items[key]; !ok {
		return false
	}

	repo.items[key] = item

	return true
}

func (repo *Repository[K, T]) Delete(ctx context.Context, key K) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.items[key]; !ok {
		return false
	}

	delete(repo.items, key)

	if idx := slices.Index(repo.keys, key); idx >= 0 {
		repo.keys = slices.Delete(repo.keys, idx, idx+1)
	}

	return true
}

// GetAll returns a snapshot, in insertion order, of the items accepted by every filter.
func (repo *Repository[K, T]) GetAll(ctx context.Context, filters ...Filter[T]) []T {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]T, 0, len(repo.keys))

	for _, key := range repo.keys {
		item := repo.items[key]
		if matches(item, filters) {
			result = append(result, item)
		}
	}

	return result
}

func (repo *Repository[K, T]) Count(ctx context.Context, filters ...Filter[T]) int {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0

	for _, item := range repo.items {
		if matches(item, filters) {
			count++
		}
	}

	return count
}

func matches[T any](item T, filters []Filter[T]) bool {
	for _, filter := range filters {
		if !filter(item) {
			return false
		}
	}

	return true
}

// Sequence hands out monotonically increasing identifiers starting at 1. Identifiers are never reused.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
