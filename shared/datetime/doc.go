// Package datetime provides civil date and time helpers for the application.
//
// Bookings carry wall-clock timestamps without a zone. Every value built here
// lives in time.UTC so comparisons never involve a zone conversion.
//
// Usage Examples:
//
//  1. Current wall-clock time:
//     now := datetime.Now()
//
//  2. Parsing user input:
//     day, err := datetime.ParseDate("2024-06-22")
//     start, err := datetime.ParseClock(day, "12:00")
//
//  3. Building an instant on a day:
//     open := datetime.At(day, 9, 0)
//
//  4. Tests can pin the clock:
//     restore := datetime.SetNow(func() time.Time { return fixed })
//     defer restore()
package datetime
