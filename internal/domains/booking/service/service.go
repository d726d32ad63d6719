package service

import (
	"cmp"
	"context"
	"coworking/config"
	"coworking/infras/otel"
	"coworking/internal/domains/booking/model"
	"coworking/internal/domains/booking/repository"
	resourceRepo "coworking/internal/domains/resource/repository"
	userRepo "coworking/internal/domains/user/repository"
	"coworking/shared"
	"coworking/shared/cache"
	"coworking/shared/constant"
	"coworking/shared/datetime"
	"coworking/shared/failure"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheSlots = "booking:slots"
)

// Booking is the ledger: it owns every booking and decides whether an interval is free.
type Booking interface {
	Create(ctx context.Context, resourceID int64, username string, start, end time.Time) (model.Booking, error)
	Book(ctx context.Context, resourceID int64, username string, start, end time.Time) (model.Booking, error)
	Delete(ctx context.Context, id int64) bool
	Cancel(ctx context.Context, id int64, username string, admin bool) error
	Get(ctx context.Context, id int64) (model.Booking, error)
	All(ctx context.Context) []model.Booking
	IsAvailable(ctx context.Context, resourceID int64, start, end time.Time) bool
	AvailableSlots(ctx context.Context, resourceID int64, date time.Time) []model.Slot
	ListByUser(ctx context.Context, username string) []model.Booking
	ListByResource(ctx context.Context, resourceID int64) []model.Booking
	SortedByDate(ctx context.Context) []model.Booking
	SortedByUser(ctx context.Context) []model.Booking
	SortedByResource(ctx context.Context) []model.Booking
	WithResourceUnbooked(ctx context.Context, resourceID int64, fn func() error) error
}

type serviceImpl struct {
	// mu serializes mutations against availability checks and slot derivation.
	mu           sync.RWMutex
	repo         repository.Booking
	resourceRepo resourceRepo.Resource
	userRepo     userRepo.User
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	resourceRepo resourceRepo.Resource,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		userRepo:     userRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create stores the booking without checking availability.
func (s *serviceImpl) Create(ctx context.Context, resourceID int64, username string, start, end time.Time) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.checkRequest(ctx, resourceID, username, start, end); err != nil {
		return res, err
	}

	return s.insert(ctx, resourceID, username, start, end), nil
}

// Book stores the booking only if the interval is free, holding the ledger lock across the check and the insert.
func (s *serviceImpl) Book(ctx context.Context, resourceID int64, username string, start, end time.Time) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"resource.id": resourceID,
		"username":    username,
		"start":       start,
		"end":         end,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.checkRequest(ctx, resourceID, username, start, end); err != nil {
		return res, err
	}

	if !s.isAvailable(ctx, resourceID, start, end) {
		log.Warn().Int64("resource", resourceID).Str("username", username).
			Time("start", start).Time("end", end).Msg("interval already booked")

		return res, failure.Conflict(fmt.Sprintf("resource %d is already booked between %s and %s", //nolint:wrapcheck
			resourceID, datetime.FormatDateTime(start), datetime.FormatDateTime(end)))
	}

	return s.insert(ctx, resourceID, username, start, end), nil
}

func (s *serviceImpl) checkRequest(ctx context.Context, resourceID int64, username string, start, end time.Time) error {
	if !end.After(start) {
		return failure.InvalidInterval() //nolint:wrapcheck
	}

	if _, ok := s.resourceRepo.Get(ctx, resourceID); !ok {
		return failure.NotFound(fmt.Sprintf("resource %d not found", resourceID)) //nolint:wrapcheck
	}

	if !s.userRepo.Exist(ctx, username) {
		return failure.NotFound(fmt.Sprintf("user %q not found", username)) //nolint:wrapcheck
	}

	return nil
}

// insert must be called with mu held.
func (s *serviceImpl) insert(ctx context.Context, resourceID int64, username string, start, end time.Time) model.Booking {
	booking := s.repo.Insert(ctx, model.Booking{
		ResourceID: resourceID,
		Username:   username,
		StartTime:  start,
		EndTime:    end,
	})

	s.invalidateSlots(ctx, resourceID)

	log.Info().Int64("id", booking.ID).Int64("resource", resourceID).Str("username", username).
		Time("start", start).Time("end", end).Msg("booking created")

	return booking
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return false
	}

	return s.remove(ctx, booking)
}

// WithResourceUnbooked runs fn under the ledger lock when no booking references resourceID.
func (s *serviceImpl) WithResourceUnbooked(ctx context.Context, resourceID int64, fn func() error) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.WithResourceUnbooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if count := s.repo.Count(ctx, repository.ByResource(resourceID)); count > 0 {
		return failure.Conflict(fmt.Sprintf("resource %d has %d booking(s)", resourceID, count)) //nolint:wrapcheck
	}

	return fn()
}

// Cancel deletes the booking on behalf of username. Only the owner or an admin may cancel.
func (s *serviceImpl) Cancel(ctx context.Context, id int64, username string, admin bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return failure.NotFound(fmt.Sprintf("booking %d not found", id)) //nolint:wrapcheck
	}

	if !admin && booking.Username != username {
		log.Warn().Int64("id", id).Str("username", username).Msg("refusing to cancel foreign booking")

		return failure.Forbidden(fmt.Sprintf("booking %d belongs to another user", id)) //nolint:wrapcheck
	}

	s.remove(ctx, booking)

	return nil
}

// remove must be called with mu held.
func (s *serviceImpl) remove(ctx context.Context, booking model.Booking) bool {
	if !s.repo.Delete(ctx, booking.ID) {
		return false
	}

	s.invalidateSlots(ctx, booking.ResourceID)

	log.Info().Int64("id", booking.ID).Int64("resource", booking.ResourceID).Msg("booking deleted")

	return true
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (model.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()

	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return booking, failure.NotFound(fmt.Sprintf("booking %d not found", id)) //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) All(ctx context.Context) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.All")
	defer scope.End()

	return s.repo.GetAll(ctx)
}

func (s *serviceImpl) IsAvailable(ctx context.Context, resourceID int64, start, end time.Time) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.IsAvailable")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isAvailable(ctx, resourceID, start, end)
}

func (s *serviceImpl) isAvailable(ctx context.Context, resourceID int64, start, end time.Time) bool {
	for _, booking := range s.repo.GetAll(ctx, repository.ByResource(resourceID)) {
		if booking.Blocks(start, end) {
			return false
		}
	}

	return true
}

// AvailableSlots lists the free intervals of the resource between opening and closing time on date.
//
// The boundaries of the bookings starting on date cut the business day into candidate intervals;
// each candidate that no booking of the resource blocks is a slot.
func (s *serviceImpl) AvailableSlots(ctx context.Context, resourceID int64, date time.Time) []model.Slot {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AvailableSlots")
	defer scope.End()

	scope.SetAttribute("resource.id", resourceID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	cacheKey := shared.BuildCacheKey(cacheSlots, resourceID, datetime.FormatDate(date))

	var slots []model.Slot
	if err := s.cache.Get(ctx, cacheKey, &slots); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return slots
	}

	slots = s.computeSlots(ctx, resourceID, date)

	if err := s.cache.Save(ctx, cacheKey, slots, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save slots to cache")
	}

	return slots
}

func (s *serviceImpl) computeSlots(ctx context.Context, resourceID int64, date time.Time) []model.Slot {
	bookings := s.repo.GetAll(ctx, repository.ByResource(resourceID), repository.StartingOn(date))

	boundaries := make([]time.Time, 0, len(bookings)*2)
	for _, booking := range bookings {
		boundaries = append(boundaries, booking.StartTime, booking.EndTime)
	}

	slices.SortFunc(boundaries, time.Time.Compare)

	slots := make([]model.Slot, 0, len(boundaries)+1)
	cursor := model.Opening(date)
	closing := model.Closing(date)

	for _, boundary := range boundaries {
		// overlapping bookings yield boundaries behind the cursor
		if boundary.After(cursor) {
			if s.isAvailable(ctx, resourceID, cursor, boundary) {
				slots = append(slots, model.Slot{Start: cursor, End: boundary})
			}

			cursor = boundary
		}
	}

	if cursor.Before(closing) && s.isAvailable(ctx, resourceID, cursor, closing) {
		slots = append(slots, model.Slot{Start: cursor, End: closing})
	}

	return slots
}

func (s *serviceImpl) invalidateSlots(ctx context.Context, resourceID int64) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheSlots, resourceID))
}

func (s *serviceImpl) ListByUser(ctx context.Context, username string) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByUser")
	defer scope.End()

	return s.repo.GetAll(ctx, repository.ByUser(username))
}

func (s *serviceImpl) ListByResource(ctx context.Context, resourceID int64) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByResource")
	defer scope.End()

	return s.repo.GetAll(ctx, repository.ByResource(resourceID))
}

func (s *serviceImpl) SortedByDate(ctx context.Context) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SortedByDate")
	defer scope.End()

	bookings := s.repo.GetAll(ctx)
	slices.SortStableFunc(bookings, byStart)

	return bookings
}

func (s *serviceImpl) SortedByUser(ctx context.Context) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SortedByUser")
	defer scope.End()

	bookings := s.repo.GetAll(ctx)
	slices.SortStableFunc(bookings, func(a, b model.Booking) int {
		return cmp.Or(cmp.Compare(a.Username, b.Username), byStart(a, b))
	})

	return bookings
}

// SortedByResource orders by resource name, then username, then start. Missing resources sort as an empty name.
func (s *serviceImpl) SortedByResource(ctx context.Context) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SortedByResource")
	defer scope.End()

	names := make(map[int64]string)
	for _, resource := range s.resourceRepo.GetAll(ctx) {
		names[resource.ID] = resource.Name
	}

	bookings := s.repo.GetAll(ctx)
	slices.SortStableFunc(bookings, func(a, b model.Booking) int {
		return cmp.Or(
			cmp.Compare(names[a.ResourceID], names[b.ResourceID]),
			cmp.Compare(a.Username, b.Username),
			byStart(a, b),
		)
	})

	return bookings
}

func byStart(a, b model.Booking) int {
	return a.StartTime.Compare(b.StartTime)
}
