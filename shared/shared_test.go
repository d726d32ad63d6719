package shared_test

import (
	"context"
	"coworking/shared"
	"coworking/shared/cache/mocks"
	"coworking/shared/constant"
	"coworking/shared/failure"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:slots", shared.BuildCacheKey("booking:slots"))
	assert.Equal(t, "booking:slots:3:2024-06-22", shared.BuildCacheKey("booking:slots", int64(3), "2024-06-22"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:slots:3:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:slots:3")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:slots:4:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:slots:4")
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "plain", input: "42", want: 42},
		{name: "padded", input: " 7 ", want: 7},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "text", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseID(tt.input)
			if tt.wantErr {
				assert.True(t, failure.HasCode(err, http.StatusBadRequest))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	username, admin := shared.CurrentUser(context.Background())
	assert.Empty(t, username)
	assert.False(t, admin)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "alice")
	ctx = context.WithValue(ctx, constant.ContextKeyUserAdmin, true)

	username, admin = shared.CurrentUser(ctx)
	assert.Equal(t, "alice", username)
	assert.True(t, admin)
}
