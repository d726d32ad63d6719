package middleware_test

import (
	"context"
	"coworking/config"
	"coworking/infras/otel/mocks"
	"coworking/shared/cache"
	cacheMocks "coworking/shared/cache/mocks"
	"coworking/shared/constant"
	"coworking/transport/http/middleware"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/resources", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
	req.Header.Set(constant.RequestHeaderUserAgent, "test")

	return req
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.1:test"

	tests := []struct {
		name          string
		enable        bool
		setup         func(m *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled",
			enable:   false,
			setup:    func(_ *cacheMocks.MockRedisCache) {},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "first request",
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			wantCode:      http.StatusNoContent,
			wantRemaining: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), key, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache unavailable",
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(mockCache)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable), mockCache)

			rec := httptest.NewRecorder()
			app.RateLimit()(ok).ServeHTTP(rec, newRequest())

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewNoop())

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeySessionID).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest())

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

	req := newRequest()
	req.Header.Set(constant.RequestHeaderRequestID, "abc")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc", seen)
}

func TestTracing(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewNoop())

	rec := httptest.NewRecorder()
	app.Tracing(ok).ServeHTTP(rec, newRequest())

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
