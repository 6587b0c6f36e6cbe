package cli

import (
	"context"
	"time"

	"sharemycar/internal/service"
)

func (c *CLI) returnMenu(ctx context.Context) error {
	for {
		choice, err := c.choose("Return Processing:", []string{
			"Process vehicle return",
			"View return history",
			"Back to main menu",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := c.processReturn(ctx); err != nil {
				return err
			}
		case 1:
			history, err := c.returns.History(ctx)
			if err != nil {
				c.reportError("view return history", err)
				continue
			}
			renderReturns(c.out, history)
		case 2:
			return nil
		}
	}
}

func (c *CLI) processReturn(ctx context.Context) error {
	bookings, err := c.bookings.ListActive(ctx)
	if err != nil {
		c.reportError("list active bookings", err)
		return nil
	}
	renderBookings(c.out, bookings)
	if len(bookings) == 0 {
		return nil
	}

	bookingID, err := c.int64Value("Enter booking ID: ")
	if err != nil {
		return err
	}
	actualKm, err := c.int64Value("Enter actual kilometers driven: ")
	if err != nil {
		return err
	}

	result, svcErr := c.returns.Settle(ctx, service.SettleReturnRequest{
		BookingID:  bookingID,
		ActualKm:   actualKm,
		ReturnDate: time.Now(),
	})
	if svcErr != nil {
		c.reportError("process return", svcErr)
		return nil
	}

	ret := result.Return
	c.printf("Return processed successfully!\n")
	c.printf("  Return date: %s\n", ret.ReturnDate)
	c.printf("  Days late: %d\n", ret.DaysLate)
	c.printf("  Late fee: %s\n", money(ret.LateFee))
	c.printf("  Cleaning fee: %s\n", money(ret.CleaningFee))
	c.printf("  Maintenance cost: %s\n", money(ret.MaintenanceCost))
	c.printf("  Total cost: %s\n", money(ret.TotalCost))
	c.printf("  Vehicle mileage is now %d km\n", result.NewMileage)
	if result.MaintenanceTriggered {
		c.printf("  Maintenance performed: %s (%s)\n",
			result.MaintenanceRecord.Description, money(result.MaintenanceRecord.Cost))
	}
	return nil
}
