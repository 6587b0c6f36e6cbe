package domain

// Return settles a booking: it fixes the actual distance driven and the final
// cost. Exactly one Return may reference a booking, and it is immutable.
type Return struct {
	ID              int64   `json:"return_id"`
	BookingID       int64   `json:"booking_id"`
	ActualKm        int64   `json:"actual_km"`
	ReturnDate      string  `json:"return_date"` // YYYY-MM-DD
	DaysLate        int64   `json:"days_late"`
	LateFee         float64 `json:"late_fee"`
	CleaningFee     float64 `json:"cleaning_fee"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalCost       float64 `json:"total_cost"`
}

// ReturnHistoryEntry is a Return joined with its booking and vehicle context
// for display.
type ReturnHistoryEntry struct {
	Return
	CustomerName string `json:"customer_name"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
}
