// Package seed loads the demo accounts, resources and bookings the application starts with.
package seed

import (
	"context"
	bookingService "coworking/internal/domains/booking/service"
	resourceDto "coworking/internal/domains/resource/model/dto"
	resourceService "coworking/internal/domains/resource/service"
	userDto "coworking/internal/domains/user/model/dto"
	userService "coworking/internal/domains/user/service"
	"coworking/shared/datetime"
	"fmt"

	"github.com/rs/zerolog/log"
)

var users = []userDto.RegisterRequest{
	{Username: "admin", Password: "admin"},
	{Username: "John Doe", Password: "123456"},
	{Username: "Kate Smith", Password: "123456"},
}

var resources = []resourceDto.CreateResourceRequest{
	{Name: "Workstation 42", Type: "WORKSPACE"},
	{Name: "Conference room A", Type: "CONFERENCE_ROOM"},
	{Name: "Workplace 84", Type: "WORKSPACE"},
	{Name: "Meeting room", Type: "CONFERENCE_ROOM"},
}

type booking struct {
	resource int // index into resources
	username string
	start    string
	end      string
}

var bookings = []booking{
	{resource: 0, username: "John Doe", start: "2024-06-22 12:00", end: "2024-06-22 13:00"},
	{resource: 1, username: "John Doe", start: "2024-06-22 14:14", end: "2024-06-22 15:15"},
	{resource: 2, username: "Kate Smith", start: "2023-06-22 18:42", end: "2023-06-22 18:59"},
}

type Seeder struct {
	users     userService.User
	resources resourceService.Resource
	bookings  bookingService.Booking
}

func New(users userService.User, resources resourceService.Resource, bookings bookingService.Booking) *Seeder {
	return &Seeder{
		users:     users,
		resources: resources,
		bookings:  bookings,
	}
}

// Run registers the demo data. The first account, admin, becomes the administrator when the registry is empty.
func (s *Seeder) Run(ctx context.Context) error {
	for _, req := range users {
		if _, err := s.users.Register(ctx, req); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", req.Username, err)
		}
	}

	ids := make([]int64, len(resources))

	for i, req := range resources {
		resource, err := s.resources.Add(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to seed resource %q: %w", req.Name, err)
		}

		ids[i] = resource.ID
	}

	for _, b := range bookings {
		start, err := datetime.ParseDateTime(b.start)
		if err != nil {
			return fmt.Errorf("failed to parse seed start %q: %w", b.start, err)
		}

		end, err := datetime.ParseDateTime(b.end)
		if err != nil {
			return fmt.Errorf("failed to parse seed end %q: %w", b.end, err)
		}

		if _, err = s.bookings.Create(ctx, ids[b.resource], b.username, start, end); err != nil {
			return fmt.Errorf("failed to seed booking for %q: %w", b.username, err)
		}
	}

	log.Info().Int("users", len(users)).Int("resources", len(resources)).Int("bookings", len(bookings)).Msg("seed data loaded")

	return nil
}
