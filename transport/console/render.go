package console

import (
	"context"
	bookingModel "coworking/internal/domains/booking/model"
	"coworking/internal/domains/booking/model/dto"
	resourceModel "coworking/internal/domains/resource/model"
	"fmt"
	"text/tabwriter"
)

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.Debug)
}

func (c *Console) printResources(resources []resourceModel.Resource) {
	c.println("All workspaces and conference rooms:")

	w := c.table()
	fmt.Fprintln(w, "ID\tName\tType\t")

	for _, r := range resources {
		fmt.Fprintf(w, "%d\t%s\t%s\t\n", r.ID, r.Name, r.Type.DisplayName())
	}

	_ = w.Flush()

	c.println()
}

func (c *Console) printBookings(ctx context.Context, bookings []bookingModel.Booking) {
	if len(bookings) == 0 {
		c.println("No active bookings.")
		c.println(separator)

		return
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tResource\tType\tUser\tStart\tEnd\t")

	for _, b := range bookings {
		resource, _ := c.resources.Get(ctx, b.ResourceID)

		var row dto.BookingResponse
		row.FromModel(b, resource)

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			row.ID, row.ResourceName, row.ResourceType, row.Username, row.StartTime, row.EndTime)
	}

	_ = w.Flush()

	c.println()
}
