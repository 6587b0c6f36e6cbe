package cli

import (
	"context"

	"sharemycar/internal/domain"
)

func (c *CLI) metricsMenu(ctx context.Context) error {
	for {
		choice, err := c.choose("Financial Metrics:", []string{
			"Revenue summary",
			"Operational costs",
			"Profit",
			"Fleet mileage statistics",
			"Detailed financial report",
			"Per-vehicle report",
			"Transaction history",
			"Transaction summary",
			"Back to main menu",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			rng, err := c.dateRange()
			if err != nil {
				return err
			}
			revenue, svcErr := c.metrics.Revenue(ctx, rng)
			if svcErr != nil {
				c.reportError("revenue summary", svcErr)
				continue
			}
			c.renderRevenue(revenue)
		case 1:
			rng, err := c.dateRange()
			if err != nil {
				return err
			}
			costs, svcErr := c.metrics.OperationalCosts(ctx, rng)
			if svcErr != nil {
				c.reportError("operational costs", svcErr)
				continue
			}
			c.renderCosts(costs)
		case 2:
			rng, err := c.dateRange()
			if err != nil {
				return err
			}
			profit, svcErr := c.metrics.Profit(ctx, rng)
			if svcErr != nil {
				c.reportError("profit", svcErr)
				continue
			}
			c.renderProfit(profit)
		case 3:
			mileage, svcErr := c.metrics.VehicleMileage(ctx)
			if svcErr != nil {
				c.reportError("fleet mileage", svcErr)
				continue
			}
			c.renderMileage(mileage)
		case 4:
			rng, err := c.dateRange()
			if err != nil {
				return err
			}
			report, svcErr := c.metrics.DetailedReport(ctx, rng)
			if svcErr != nil {
				c.reportError("detailed report", svcErr)
				continue
			}
			c.renderRevenue(&report.Revenue)
			c.renderCosts(&report.OperationalCosts)
			c.renderProfit(&report.Profit)
			c.renderMileage(&report.Mileage)
		case 5:
			if err := c.vehicleReport(ctx); err != nil {
				return err
			}
		case 6:
			rng, err := c.dateRange()
			if err != nil {
				return err
			}
			history, svcErr := c.ledger.History(ctx, rng)
			if svcErr != nil {
				c.reportError("transaction history", svcErr)
				continue
			}
			renderLedger(c.out, history)
		case 7:
			rng, err := c.dateRange()
			if err != nil {
				return err
			}
			summary, svcErr := c.ledger.Summary(ctx, rng)
			if svcErr != nil {
				c.reportError("transaction summary", svcErr)
				continue
			}
			c.printf("\nTransaction Summary\n")
			c.printf("  Transactions: %d\n", summary.TotalTransactions)
			c.printf("  Total revenue: %s\n", money(summary.TotalRevenue))
			c.printf("  Cleaning fees: %s\n", money(summary.TotalCleaningFees))
			c.printf("  Maintenance costs: %s\n", money(summary.TotalMaintenanceCosts))
			c.printf("  Late fees: %s\n", money(summary.TotalLateFees))
		case 8:
			return nil
		}
	}
}

// dateRange prompts for an optional reporting window; empty answers mean
// all-time.
func (c *CLI) dateRange() (domain.DateRange, error) {
	start, err := c.optionalDate("Start date (YYYY-MM-DD, empty for all-time): ")
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := c.optionalDate("End date (YYYY-MM-DD, empty for all-time): ")
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{Start: start, End: end}, nil
}

func (c *CLI) vehicleReport(ctx context.Context) error {
	id, err := c.int64Value("Enter vehicle ID: ")
	if err != nil {
		return err
	}
	rng, err := c.dateRange()
	if err != nil {
		return err
	}
	report, svcErr := c.metrics.VehicleReport(ctx, id, rng)
	if svcErr != nil {
		c.reportError("vehicle report", svcErr)
		return nil
	}

	c.printf("\nVehicle %d: %s %s\n", id, report.Brand, report.Model)
	c.printf("  Current mileage: %d km\n", report.Mileage)
	c.printf("  Transactions: %d\n", report.TotalTransactions)
	c.printf("  Revenue: %s\n", money(report.TotalRevenue))
	c.printf("  Costs: %s\n", money(report.TotalCosts))
	c.printf("  Net profit: %s\n", money(report.NetProfit))
	return nil
}

func (c *CLI) renderRevenue(m *domain.RevenueMetrics) {
	c.printf("\nRevenue\n")
	c.printf("  Total revenue: %s\n", money(m.TotalRevenue))
	c.printf("  Transactions: %d\n", m.TotalTransactions)
	c.printf("  Average transaction: %s\n", money(m.AverageTransactionValue))
}

func (c *CLI) renderCosts(m *domain.OperationalCosts) {
	c.printf("\nOperational Costs\n")
	c.printf("  Cleaning: %s\n", money(m.TotalCleaningCosts))
	c.printf("  Maintenance: %s\n", money(m.TotalMaintenanceCosts))
	c.printf("  Late fees collected: %s\n", money(m.TotalLateFees))
	c.printf("  Total costs: %s\n", money(m.TotalOperationalCosts))
}

func (c *CLI) renderProfit(m *domain.ProfitMetrics) {
	c.printf("\nProfit\n")
	c.printf("  Revenue: %s\n", money(m.TotalRevenue))
	c.printf("  Costs: %s\n", money(m.TotalCosts))
	c.printf("  Net profit: %s\n", money(m.NetProfit))
}

func (c *CLI) renderMileage(m *domain.MileageMetrics) {
	c.printf("\nFleet Mileage\n")
	c.printf("  Vehicles: %d\n", m.TotalVehicles)
	c.printf("  Total mileage: %d km\n", m.TotalMileage)
	c.printf("  Average mileage: %.1f km\n", m.AverageMileage)
	c.printf("  Lowest mileage: %d km\n", m.MinMileage)
	c.printf("  Highest mileage: %d km\n", m.MaxMileage)
}
