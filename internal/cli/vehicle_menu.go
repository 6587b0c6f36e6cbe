package cli

import (
	"context"
	"time"

	"sharemycar/internal/service"
)

func (c *CLI) vehicleMenu(ctx context.Context) error {
	for {
		choice, err := c.choose("Vehicle Management:", []string{
			"View all vehicles",
			"Add vehicle",
			"Set vehicle availability",
			"View maintenance history",
			"Schedule maintenance",
			"Complete maintenance",
			"Back to main menu",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := c.showVehicles(ctx); err != nil {
				return err
			}
		case 1:
			if err := c.addVehicle(ctx); err != nil {
				return err
			}
		case 2:
			if err := c.setAvailability(ctx); err != nil {
				return err
			}
		case 3:
			history, err := c.maintenance.History(ctx)
			if err != nil {
				c.reportError("view maintenance history", err)
				continue
			}
			renderMaintenance(c.out, history)
		case 4:
			if err := c.scheduleMaintenance(ctx); err != nil {
				return err
			}
		case 5:
			if err := c.completeMaintenance(ctx); err != nil {
				return err
			}
		case 6:
			return nil
		}
	}
}

func (c *CLI) showVehicles(ctx context.Context) error {
	vehicles, err := c.vehicles.List(ctx)
	if err != nil {
		c.reportError("view vehicles", err)
		return nil
	}
	renderVehicles(c.out, vehicles)
	return nil
}

func (c *CLI) addVehicle(ctx context.Context) error {
	brand, err := c.requiredString("Enter vehicle brand: ")
	if err != nil {
		return err
	}
	model, err := c.requiredString("Enter vehicle model: ")
	if err != nil {
		return err
	}
	mileage, err := c.int64Value("Enter current mileage: ")
	if err != nil {
		return err
	}
	price, err := c.int64Value("Enter daily rental price: ")
	if err != nil {
		return err
	}
	costPerKm, err := c.float64Value("Enter maintenance cost per kilometer: ")
	if err != nil {
		return err
	}
	available, err := c.confirm("Is the vehicle available for rent?", true)
	if err != nil {
		return err
	}

	vehicle, svcErr := c.vehicles.Add(ctx, service.AddVehicleRequest{
		Brand:                brand,
		Model:                model,
		Mileage:              mileage,
		DailyRentalPrice:     price,
		MaintenanceCostPerKm: costPerKm,
		IsAvailable:          available,
	})
	if svcErr != nil {
		c.reportError("add vehicle", svcErr)
		return nil
	}
	c.printf("Vehicle %d added successfully!\n", vehicle.ID)
	return nil
}

func (c *CLI) setAvailability(ctx context.Context) error {
	id, err := c.int64Value("Enter vehicle ID: ")
	if err != nil {
		return err
	}
	available, err := c.confirm("Is the vehicle available for rent?", true)
	if err != nil {
		return err
	}
	if svcErr := c.vehicles.SetAvailability(ctx, id, available); svcErr != nil {
		c.reportError("set availability", svcErr)
		return nil
	}
	c.printf("Vehicle %d availability updated.\n", id)
	return nil
}

func (c *CLI) scheduleMaintenance(ctx context.Context) error {
	id, err := c.int64Value("Enter vehicle ID: ")
	if err != nil {
		return err
	}
	description, err := c.requiredString("Enter maintenance description: ")
	if err != nil {
		return err
	}
	cost, err := c.float64Value("Enter estimated cost: ")
	if err != nil {
		return err
	}

	record, svcErr := c.maintenance.Schedule(ctx, id, description, cost, time.Now())
	if svcErr != nil {
		c.reportError("schedule maintenance", svcErr)
		return nil
	}
	c.printf("Maintenance %d scheduled; vehicle %d is now unavailable.\n", record.ID, id)
	return nil
}

func (c *CLI) completeMaintenance(ctx context.Context) error {
	id, err := c.int64Value("Enter maintenance record ID: ")
	if err != nil {
		return err
	}
	if svcErr := c.maintenance.Complete(ctx, id); svcErr != nil {
		c.reportError("complete maintenance", svcErr)
		return nil
	}
	c.printf("Maintenance record %d completed.\n", id)
	return nil
}
