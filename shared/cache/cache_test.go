package cache_test

import (
	"context"
	"coworking/infras/otel/mocks"
	"coworking/shared/cache"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_TracesFailures(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	recorder := mocks.NewRecorder()
	c := cache.New(client, recorder)
	ctx := context.Background()

	tests := []struct {
		span string
		call func() error
	}{
		{span: "cache.Save", call: func() error { return c.Save(ctx, "booking:slots:1:2024-06-22", []string{"x"}, 60) }},
		{span: "cache.Delete", call: func() error { return c.Delete(ctx, "booking:slots:1:2024-06-22") }},
		{span: "cache.Clear", call: func() error { return c.Clear(ctx, "booking:slots:1:*") }},
	}

	for _, tt := range tests {
		t.Run(tt.span, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)

			traced := recorder.Errors(tt.span)
			require.Len(t, traced, 1)
			assert.Equal(t, err, traced[0])
		})
	}
}
