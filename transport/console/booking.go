package console

import (
	"context"
	"coworking/internal/domains/booking/model"
	"coworking/internal/domains/booking/model/dto"
	resourceModel "coworking/internal/domains/resource/model"
	"coworking/shared/datetime"
	"coworking/shared/failure"
	"net/http"
	"time"
)

func (c *Console) book(ctx context.Context) error {
	ctx, scope := c.scope(ctx, "book")
	defer scope.End()

	resource, err := c.askResource(ctx, "Enter the ID of the resource to book:")
	if err != nil {
		return err
	}

	c.printf("You are booking '%s'.\n", resource.Name)

	date, err := c.askDate()
	if err != nil {
		return err
	}

	if !c.printSlots(ctx, resource.ID, date) {
		return nil
	}

	for {
		c.printf("Resources can be booked between %02d:00 and %02d:00.\n", model.OpeningHour, model.ClosingHour)

		start, err := c.askStart(date)
		if err != nil {
			return err
		}

		end, err := c.askEnd(start)
		if err != nil {
			return err
		}

		booking, err := c.bookings.Book(ctx, resource.ID, c.current.Username, start, end)

		switch {
		case err == nil:
			c.printf("You booked '%s' on %s.\nStart: %s\nEnd: %s\n\n",
				resource.Name, datetime.FormatDate(booking.StartTime),
				datetime.FormatClock(booking.StartTime), datetime.FormatClock(booking.EndTime))

			return nil
		case failure.HasCode(err, http.StatusConflict):
			c.println("The resource is taken at that time. Please choose another time.")

			if !c.printSlots(ctx, resource.ID, date) {
				return nil
			}
		default:
			c.println(err.Error())

			return nil
		}
	}
}

func (c *Console) askResource(ctx context.Context, prompt string) (resourceModel.Resource, error) {
	for {
		id, err := c.askID(prompt)
		if err != nil {
			return resourceModel.Resource{}, err
		}

		if resource, ok := c.resources.Get(ctx, id); ok {
			return resource, nil
		}

		c.println("Resource not found, please try again.")
	}
}

func (c *Console) askDate() (time.Time, error) {
	for {
		line, err := c.ask("Which date do you want to book? (YYYY-MM-DD)")
		if err != nil {
			return time.Time{}, err
		}

		date, err := dto.ParseDate(line, datetime.Today())
		if err == nil {
			return date, nil
		}

		c.println(err.Error())
	}
}

func (c *Console) askStart(date time.Time) (time.Time, error) {
	for {
		line, err := c.ask("Enter start time (HH:MM):")
		if err != nil {
			return time.Time{}, err
		}

		start, err := dto.ParseStart(date, line)
		if err == nil {
			return start, nil
		}

		c.println(err.Error())
	}
}

func (c *Console) askEnd(start time.Time) (time.Time, error) {
	for {
		line, err := c.ask("Enter end time (HH:MM):")
		if err != nil {
			return time.Time{}, err
		}

		end, err := dto.ParseEnd(start, line)
		if err == nil {
			return end, nil
		}

		c.println(err.Error())
	}
}

// printSlots shows the free slots of the day and reports whether there is any.
func (c *Console) printSlots(ctx context.Context, resourceID int64, date time.Time) bool {
	slots := c.bookings.AvailableSlots(ctx, resourceID, date)
	if len(slots) == 0 {
		c.println("No slots are available on that date.")
		c.println()

		return false
	}

	c.println("Available slots on that date:")

	for _, slot := range slots {
		c.println(slot.String())
	}

	return true
}

func (c *Console) myBookings(ctx context.Context) {
	ctx, scope := c.scope(ctx, "myBookings")
	defer scope.End()

	c.printBookings(ctx, c.bookings.ListByUser(ctx, c.current.Username))
}

func (c *Console) cancel(ctx context.Context) error {
	ctx, scope := c.scope(ctx, "cancel")
	defer scope.End()

	c.printBookings(ctx, c.bookings.ListByUser(ctx, c.current.Username))

	id, err := c.askID("Enter the ID of the booking to cancel:")
	if err != nil {
		return err
	}

	err = c.bookings.Cancel(ctx, id, c.current.Username, c.current.Admin)

	switch {
	case err == nil:
		c.println("Booking cancelled.")
	case failure.HasCode(err, http.StatusForbidden):
		c.println("You can only cancel your own bookings.")
	default:
		c.println("Booking not found.")
	}

	return nil
}

func (c *Console) allBookings(ctx context.Context) error {
	ctx, scope := c.scope(ctx, "allBookings")
	defer scope.End()

	c.println("1. Sort by date")
	c.println("2. Sort by user")
	c.println("3. Sort by resource")

	choice, err := c.choice()
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		c.printBookings(ctx, c.bookings.SortedByDate(ctx))
	case 2:
		c.printBookings(ctx, c.bookings.SortedByUser(ctx))
	case 3:
		c.printBookings(ctx, c.bookings.SortedByResource(ctx))
	default:
		c.println(msgInvalidChoice)
	}

	return nil
}
