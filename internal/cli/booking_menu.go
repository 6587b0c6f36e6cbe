package cli

import (
	"context"
	"time"

	"sharemycar/internal/domain"
	"sharemycar/internal/service"
)

func (c *CLI) bookingMenu(ctx context.Context) error {
	for {
		choice, err := c.choose("Booking Management:", []string{
			"Create new booking",
			"View active bookings",
			"View booking details",
			"Back to main menu",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := c.createBooking(ctx); err != nil {
				return err
			}
		case 1:
			bookings, err := c.bookings.ListActive(ctx)
			if err != nil {
				c.reportError("view active bookings", err)
				continue
			}
			renderBookings(c.out, bookings)
		case 2:
			if err := c.viewBooking(ctx); err != nil {
				return err
			}
		case 3:
			return nil
		}
	}
}

func (c *CLI) createBooking(ctx context.Context) error {
	// Show the fleet first so the user can pick an available vehicle.
	if err := c.showVehicles(ctx); err != nil {
		return err
	}

	customer, err := c.requiredString("Enter customer name: ")
	if err != nil {
		return err
	}
	vehicleID, err := c.int64Value("Enter vehicle ID: ")
	if err != nil {
		return err
	}
	duration, err := c.int64Value("Enter rental duration (days): ")
	if err != nil {
		return err
	}
	estimatedKm, err := c.int64Value("Enter estimated kilometers: ")
	if err != nil {
		return err
	}

	confirmation, svcErr := c.bookings.Create(ctx, service.CreateBookingRequest{
		CustomerName: customer,
		VehicleID:    vehicleID,
		StartDate:    time.Now(),
		DurationDays: duration,
		EstimatedKm:  estimatedKm,
	})
	if svcErr != nil {
		c.reportError("create booking", svcErr)
		return nil
	}

	c.printf("Booking created successfully!\n")
	c.printf("  Booking ID: %d\n", confirmation.Booking.ID)
	c.printf("  Due date: %s\n", confirmation.Booking.DueDate)
	c.printf("  Total cost: %s\n", money(confirmation.TotalCost))
	c.printf("  - Rental cost: %s\n", money(confirmation.RentalCost))
	c.printf("  - Maintenance cost: %s\n", money(confirmation.MaintenanceCost))
	return nil
}

func (c *CLI) viewBooking(ctx context.Context) error {
	id, err := c.int64Value("Enter booking ID: ")
	if err != nil {
		return err
	}
	booking, svcErr := c.bookings.GetByID(ctx, id)
	if svcErr != nil {
		c.reportError("view booking", svcErr)
		return nil
	}
	renderBookings(c.out, []domain.Booking{*booking})
	return nil
}
