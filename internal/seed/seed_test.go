package seed_test

import (
	"context"
	"coworking/config"
	"coworking/infras/otel/mocks"
	bookingRepo "coworking/internal/domains/booking/repository"
	bookingService "coworking/internal/domains/booking/service"
	resourceRepo "coworking/internal/domains/resource/repository"
	resourceService "coworking/internal/domains/resource/service"
	userRepo "coworking/internal/domains/user/repository"
	userService "coworking/internal/domains/user/service"
	"coworking/internal/seed"
	"coworking/shared/cache"
	"coworking/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	otel := mocks.NewOtel()

	bookings := bookingRepo.New(otel)
	resources := resourceRepo.New(otel)
	users := userRepo.New(otel)

	userSvc := userService.New(users, otel)
	bookingSvc := bookingService.New(bookings, resources, users, &config.Config{}, cache.NewNoop(), otel)
	resourceSvc := resourceService.New(resources, bookingSvc, otel)

	seeder := seed.New(userSvc, resourceSvc, bookingSvc)
	require.NoError(t, seeder.Run(ctx))

	admin, err := userSvc.Authenticate(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.True(t, admin.Admin)

	john, ok := userSvc.Get(ctx, "John Doe")
	require.True(t, ok)
	assert.False(t, john.Admin)

	assert.Len(t, resourceSvc.Sorted(ctx), 4)
	assert.Len(t, bookingSvc.All(ctx), 3)
	assert.Len(t, bookingSvc.ListByUser(ctx, "John Doe"), 2)

	err = seeder.Run(ctx)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err), "seeding twice collides with existing accounts")
}
