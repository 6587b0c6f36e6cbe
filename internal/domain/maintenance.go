package domain

// Maintenance is a service record for a vehicle. Automatic records created by
// the distance-threshold check are completed immediately; manually scheduled
// records hold the vehicle unavailable until completed.
type Maintenance struct {
	ID          int64   `json:"maintenance_id"`
	VehicleID   int64   `json:"vehicle_id"`
	Date        string  `json:"maintenance_date"` // YYYY-MM-DD
	Mileage     int64   `json:"mileage"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
	IsCompleted bool    `json:"is_completed"`
}

// MaintenanceHistoryEntry is a Maintenance record joined with vehicle context.
type MaintenanceHistoryEntry struct {
	Maintenance
	Brand string `json:"brand"`
	Model string `json:"model"`
}
