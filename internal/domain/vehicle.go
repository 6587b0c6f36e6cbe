package domain

import "strings"

// Vehicle is a fleet vehicle. Mileage only ever grows; the return settlement
// flow is its sole writer after creation.
type Vehicle struct {
	ID                   int64   `json:"id"`
	Brand                string  `json:"brand"`
	Model                string  `json:"model"`
	Mileage              int64   `json:"mileage"`
	DailyRentalPrice     int64   `json:"daily_rental_price"`
	MaintenanceCostPerKm float64 `json:"maintenance_cost_per_kilometer"`
	IsAvailable          bool    `json:"is_available"`
}

// Validate checks the fields required to admit a vehicle into the fleet.
func (v *Vehicle) Validate() error {
	if strings.TrimSpace(v.Brand) == "" {
		return &ValidationError{Field: "brand", Reason: "must be a non-empty string"}
	}
	if strings.TrimSpace(v.Model) == "" {
		return &ValidationError{Field: "model", Reason: "must be a non-empty string"}
	}
	if v.Mileage < 0 {
		return &ValidationError{Field: "mileage", Reason: "must not be negative"}
	}
	if v.DailyRentalPrice <= 0 {
		return &ValidationError{Field: "daily_rental_price", Reason: "must be a positive integer"}
	}
	if v.MaintenanceCostPerKm <= 0 {
		return &ValidationError{Field: "maintenance_cost_per_kilometer", Reason: "must be a positive number"}
	}
	return nil
}
