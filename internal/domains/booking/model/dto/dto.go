package dto

import (
	"coworking/internal/domains/booking/model"
	resourceModel "coworking/internal/domains/resource/model"
	"coworking/shared/datetime"
	"coworking/shared/failure"
	"fmt"
	"time"
)

// Latest start time of day accepted for a new booking, in minutes since midnight.
const latestStartClock = 18*60 + 30

type CreateBookingRequest struct {
	ResourceID int64  `json:"resource_id" validate:"required,gt=0"`
	Date       string `json:"date"        validate:"required,date"`
	StartTime  string `json:"start_time"  validate:"required,clock"`
	EndTime    string `json:"end_time"    validate:"required,clock"`
}

// ParseDate checks that the requested day is today or later.
func ParseDate(value string, today time.Time) (time.Time, error) {
	date, err := datetime.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("date must be in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if date.Before(datetime.Date(today)) {
		return time.Time{}, failure.BadRequestFromString("date must be today or later") //nolint:wrapcheck
	}

	return date, nil
}

// ParseStart places an HH:MM start on date and checks it against business hours.
func ParseStart(date time.Time, value string) (time.Time, error) {
	start, err := datetime.ParseClock(date, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("start time must be in HH:MM format") //nolint:wrapcheck
	}

	clock := datetime.Clock(start)
	if clock < model.OpeningHour*60 || clock > latestStartClock {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("start time must be between %02d:00 and 18:30", model.OpeningHour)) //nolint:wrapcheck
	}

	return start, nil
}

// ParseEnd places an HH:MM end on the day of start and checks it against start and closing time.
func ParseEnd(start time.Time, value string) (time.Time, error) {
	end, err := datetime.ParseClock(start, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("end time must be in HH:MM format") //nolint:wrapcheck
	}

	if !end.After(start) {
		return time.Time{}, failure.InvalidInterval() //nolint:wrapcheck
	}

	if end.After(model.Closing(start)) {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("end time must not be later than %02d:00", model.ClosingHour)) //nolint:wrapcheck
	}

	return end, nil
}

// ToInterval turns the request into a booking interval, applying the business-hour rules.
func (c *CreateBookingRequest) ToInterval(today time.Time) (start, end time.Time, err error) {
	date, err := ParseDate(c.Date, today)
	if err != nil {
		return start, end, err
	}

	start, err = ParseStart(date, c.StartTime)
	if err != nil {
		return start, end, err
	}

	end, err = ParseEnd(start, c.EndTime)
	if err != nil {
		return start, end, err
	}

	return start, end, nil
}

type BookingResponse struct {
	ID           int64  `json:"id"`
	ResourceID   int64  `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	ResourceType string `json:"resource_type"`
	Username     string `json:"username"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// FromModel fills the response. A resource that no longer exists leaves the name fields empty.
func (r *BookingResponse) FromModel(m model.Booking, resource resourceModel.Resource) {
	r.ID = m.ID
	r.ResourceID = m.ResourceID
	r.ResourceName = resource.Name

	if resource.Type != "" {
		r.ResourceType = resource.Type.DisplayName()
	}

	r.Username = m.Username
	r.StartTime = datetime.FormatDateTime(m.StartTime)
	r.EndTime = datetime.FormatDateTime(m.EndTime)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

// FromModels fills the response, resolving each booking's resource through lookup.
func (r *GetBookingsResponse) FromModels(models []model.Booking, lookup func(id int64) resourceModel.Resource) {
	r.TotalData = len(models)
	r.Bookings = make([]BookingResponse, len(models))

	for i, m := range models {
		r.Bookings[i].FromModel(m, lookup(m.ResourceID))
	}
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

func (r *SlotResponse) FromModel(m model.Slot) {
	r.Start = datetime.FormatClock(m.Start)
	r.End = datetime.FormatClock(m.End)
	r.Label = m.String()
}

type GetSlotsResponse struct {
	ResourceID int64          `json:"resource_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func (r *GetSlotsResponse) FromModels(resourceID int64, date time.Time, slots []model.Slot) {
	r.ResourceID = resourceID
	r.Date = datetime.FormatDate(date)
	r.Slots = make([]SlotResponse, len(slots))

	for i, slot := range slots {
		r.Slots[i].FromModel(slot)
	}
}

type AvailabilityResponse struct {
	ResourceID int64  `json:"resource_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Available  bool   `json:"available"`
}
