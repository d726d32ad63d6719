package repository_test

import (
	"context"
	"coworking/infras/otel/mocks"
	"coworking/shared/repository"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID   int64
	Name string
}

func newRepo() *repository.Repository[int64, item] {
	return repository.NewRepository[int64, item]("item", mocks.NewOtel())
}

func TestRepository_InsertOrderAndFilters(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	assert.True(t, repo.Insert(ctx, 3, item{ID: 3, Name: "c"}))
	assert.True(t, repo.Insert(ctx, 1, item{ID: 1, Name: "a"}))
	assert.True(t, repo.Insert(ctx, 2, item{ID: 2, Name: "b"}))
	assert.False(t, repo.Insert(ctx, 1, item{ID: 1, Name: "dup"}))

	all := repo.GetAll(ctx)
	assert.Equal(t, []item{{3, "c"}, {1, "a"}, {2, "b"}}, all)

	notA := func(i item) bool { return i.Name != "a" }
	assert.Equal(t, []item{{3, "c"}, {2, "b"}}, repo.GetAll(ctx, notA))
	assert.Equal(t, 2, repo.Count(ctx, notA))
	assert.Equal(t, 3, repo.Count(ctx))
}

func TestRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	repo.Insert(ctx, 1, item{ID: 1, Name: "a"})
	repo.Insert(ctx, 2, item{ID: 2, Name: "b"})

	assert.True(t, repo.Update(ctx, 1, item{ID: 1, Name: "renamed"}))
	assert.False(t, repo.Update(ctx, 9, item{ID: 9}))

	got, ok := repo.Get(ctx, 1)
	assert.True(t, ok)
	assert.Equal(t, "renamed", got.Name)

	assert.True(t, repo.Delete(ctx, 1))
	assert.False(t, repo.Delete(ctx, 1))
	assert.False(t, repo.Exist(ctx, 1))
	assert.Equal(t, []item{{2, "b"}}, repo.GetAll(ctx))
}

func TestSequence_Monotonic(t *testing.T) {
	var seq repository.Sequence

	var wg sync.WaitGroup
	seen := sync.Map{}

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, loaded := seen.LoadOrStore(seq.Next(), true)
			assert.False(t, loaded)
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(51), seq.Next())
}
