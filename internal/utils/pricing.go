package utils

// FeeSchedule holds the settlement fee constants and the maintenance
// distance interval. Values come from configuration; DefaultFeeSchedule
// matches the business defaults.
type FeeSchedule struct {
	LateFeePerDay         float64
	CleaningFee           float64
	MaintenanceIntervalKm int64
}

func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		LateFeePerDay:         10,
		CleaningFee:           20,
		MaintenanceIntervalKm: 10000,
	}
}

// EstimateCost computes the estimated booking cost: the rental duration
// portion plus the projected per-kilometer maintenance portion.
func EstimateCost(days, estKm int64, dailyPrice int64, costPerKm float64) (rental, maintenance, total float64) {
	rental = float64(days * dailyPrice)
	maintenance = float64(estKm) * costPerKm
	return rental, maintenance, rental + maintenance
}

// SettlementBreakdown is the full fee decomposition of a return.
type SettlementBreakdown struct {
	DaysLate        int64
	LateFee         float64
	CleaningFee     float64
	BaseCost        float64 // rental-duration portion of the original estimate
	MaintenanceCost float64 // actual km at the vehicle's per-km rate
	TotalCost       float64
}

// ComputeSettlement recomputes the final cost of a booking at return time.
// The estimated maintenance portion is stripped from the original estimate
// and replaced with the actual distance at the vehicle's per-kilometer rate;
// late and cleaning fees are added on top.
func ComputeSettlement(estCost float64, estKm, actualKm, daysLate int64, costPerKm float64, fees FeeSchedule) SettlementBreakdown {
	estimatedMaintenance := float64(estKm) * costPerKm
	actualMaintenance := float64(actualKm) * costPerKm
	baseCost := estCost - estimatedMaintenance
	lateFee := float64(daysLate) * fees.LateFeePerDay

	return SettlementBreakdown{
		DaysLate:        daysLate,
		LateFee:         lateFee,
		CleaningFee:     fees.CleaningFee,
		BaseCost:        baseCost,
		MaintenanceCost: actualMaintenance,
		TotalCost:       baseCost + lateFee + fees.CleaningFee + actualMaintenance,
	}
}

// MaintenanceCheck is the outcome of a distance-threshold evaluation.
type MaintenanceCheck struct {
	Needed bool
	Cost   float64
}

// CheckMaintenanceDue decides whether a mileage update crosses a maintenance
// boundary. The last boundary is derived from the mileage before the update;
// maintenance is due when the new mileage reaches the next interval multiple.
// The cost covers every kilometer since the last boundary.
func CheckMaintenanceDue(priorMileage, newMileage, intervalKm int64, costPerKm float64) MaintenanceCheck {
	if intervalKm <= 0 {
		return MaintenanceCheck{}
	}
	lastBoundary := priorMileage - priorMileage%intervalKm
	if newMileage < lastBoundary+intervalKm {
		return MaintenanceCheck{}
	}
	kmSinceBoundary := newMileage - lastBoundary
	return MaintenanceCheck{
		Needed: true,
		Cost:   float64(kmSinceBoundary) * costPerKm,
	}
}
