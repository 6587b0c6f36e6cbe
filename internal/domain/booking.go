package domain

// Booking reserves a vehicle for an estimated duration and distance. It is
// immutable after creation; it is closed by the existence of a Return row.
type Booking struct {
	ID           int64   `json:"booking_id"`
	CustomerName string  `json:"customer_name"`
	VehicleID    int64   `json:"vehicle_id"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	DueDate      string  `json:"due_date"`   // YYYY-MM-DD
	EstDays      int64   `json:"est_days"`
	EstKm        int64   `json:"est_km"`
	EstCost      float64 `json:"est_cost"`
}
