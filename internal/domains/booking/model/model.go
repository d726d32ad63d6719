package model

import (
	"coworking/shared/datetime"
	"time"
)

const (
	EntityName = "booking"

	OpeningHour = 9
	ClosingHour = 19
)

// Booking reserves one resource for one user. The resource and the user are referenced by key only.
type Booking struct {
	ID         int64     `json:"id"`
	ResourceID int64     `json:"resource_id"`
	Username   string    `json:"username"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// Blocks reports whether the booking rules out the candidate interval [start, end] on the same resource.
//
// The candidate is rejected when its start or end lies strictly inside the booking, when it starts
// exactly when the booking starts, when it ends exactly when the booking ends, or when it strictly
// encloses the booking. A candidate starting at the booking's end, or ending at its start, is allowed.
func (b Booking) Blocks(start, end time.Time) bool {
	switch {
	case start.After(b.StartTime) && start.Before(b.EndTime):
		return true
	case end.After(b.StartTime) && end.Before(b.EndTime):
		return true
	case start.Equal(b.StartTime):
		return true
	case end.Equal(b.EndTime):
		return true
	case start.Before(b.StartTime) && end.After(b.EndTime):
		return true
	default:
		return false
	}
}

// Opening returns the start of business hours on date.
func Opening(date time.Time) time.Time {
	return datetime.At(date, OpeningHour, 0)
}

// Closing returns the end of business hours on date.
func Closing(date time.Time) time.Time {
	return datetime.At(date, ClosingHour, 0)
}

// Slot is a free interval of business hours.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// String renders the slot as "c HH:MM до HH:MM".
func (s Slot) String() string {
	return "c " + datetime.FormatClock(s.Start) + " до " + datetime.FormatClock(s.End)
}
