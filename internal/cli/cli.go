// Package cli implements the interactive menu surface. It owns all prompting
// and rendering; every business rule lives in the service layer.
package cli

import (
	"context"
	"errors"
	"io"

	"sharemycar/internal/logger"
	"sharemycar/internal/service"
)

type CLI struct {
	prompter
	vehicles    service.VehicleService
	bookings    service.BookingService
	returns     service.ReturnService
	maintenance service.MaintenanceService
	ledger      service.LedgerService
	metrics     service.MetricsService
}

func New(
	in io.Reader,
	out io.Writer,
	vehicles service.VehicleService,
	bookings service.BookingService,
	returns service.ReturnService,
	maintenance service.MaintenanceService,
	ledger service.LedgerService,
	metrics service.MetricsService,
) *CLI {
	return &CLI{
		prompter:    newPrompter(in, out),
		vehicles:    vehicles,
		bookings:    bookings,
		returns:     returns,
		maintenance: maintenance,
		ledger:      ledger,
		metrics:     metrics,
	}
}

// Run drives the main menu until the user exits or stdin closes.
func (c *CLI) Run(ctx context.Context) error {
	c.printf("Welcome to ShareMyCar!\n")
	for {
		choice, err := c.choose("Select a section:", []string{
			"Vehicle Inventory Management",
			"Booking Functionality",
			"Return Processing",
			"Financial Metrics",
			"Exit",
		})
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = c.vehicleMenu(ctx)
		case 1:
			err = c.bookingMenu(ctx)
		case 2:
			err = c.returnMenu(ctx)
		case 3:
			err = c.metricsMenu(ctx)
		case 4:
			c.printf("Goodbye!\n")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// reportError surfaces an operation failure and keeps the menu loop alive.
func (c *CLI) reportError(action string, err error) {
	logger.Warn("operation failed", "action", action, "error", err)
	c.printf("Error: %v\n", err)
}
