package repository

import (
	"context"
	"coworking/infras/otel"
	"coworking/internal/domains/booking/model"
	"coworking/shared/datetime"
	gRepo "coworking/shared/repository"
	"time"
)

// Booking is the authoritative store of the ledger. Identifiers are assigned on insert and never reused.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) model.Booking
	Get(ctx context.Context, id int64) (model.Booking, bool)
	GetAll(ctx context.Context, filters ...gRepo.Filter[model.Booking]) []model.Booking
	Count(ctx context.Context, filters ...gRepo.Filter[model.Booking]) int
	Delete(ctx context.Context, id int64) bool
}

type repositoryImpl struct {
	*gRepo.Repository[int64, model.Booking]
	seq gRepo.Sequence
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[int64, model.Booking](model.EntityName, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) model.Booking {
	booking.ID = r.seq.Next()

	r.Repository.Insert(ctx, booking.ID, booking)

	return booking
}

func ByResource(resourceID int64) gRepo.Filter[model.Booking] {
	return func(b model.Booking) bool {
		return b.ResourceID == resourceID
	}
}

func ByUser(username string) gRepo.Filter[model.Booking] {
	return func(b model.Booking) bool {
		return b.Username == username
	}
}

// StartingOn matches bookings whose start falls on the calendar day of date.
func StartingOn(date time.Time) gRepo.Filter[model.Booking] {
	return func(b model.Booking) bool {
		return datetime.SameDate(b.StartTime, date)
	}
}
