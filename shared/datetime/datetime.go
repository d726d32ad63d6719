package datetime

import (
	"coworking/shared/constant"
	"time"
)

var now = time.Now

// Now returns the current wall-clock time expressed in UTC without shifting the clock reading.
func Now() time.Time {
	return wall(now())
}

// SetNow replaces the clock source and returns a function restoring the previous one.
func SetNow(fn func() time.Time) func() {
	previous := now
	now = fn

	return func() {
		now = previous
	}
}

// Today returns the current civil date at midnight.
func Today() time.Time {
	return Date(Now())
}

// Date truncates t to midnight of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// At returns the instant hour:minute on the calendar day of day.
func At(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()

	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateLayout, value, time.UTC)
}

// ParseDateTime parses a "YYYY-MM-DD HH:MM" timestamp.
func ParseDateTime(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateTimeLayout, value, time.UTC)
}

// ParseClock parses an HH:MM time of day and places it on day.
func ParseClock(day time.Time, value string) (time.Time, error) {
	clock, err := time.ParseInLocation(constant.TimeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	return At(day, clock.Hour(), clock.Minute()), nil
}

// Clock returns the minutes elapsed since midnight of t.
func Clock(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func FormatDate(t time.Time) string {
	return t.Format(constant.DateLayout)
}

func FormatClock(t time.Time) string {
	return t.Format(constant.TimeLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(constant.DateTimeLayout)
}

func wall(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
