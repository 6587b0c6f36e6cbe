package domain

type TransactionType string

const (
	TransactionTypeBooking TransactionType = "BOOKING"
	TransactionTypeReturn  TransactionType = "RETURN"
)

// LedgerEntry is an append-only financial transaction. Entries are never
// updated or deleted; they are the sole source for financial reporting.
type LedgerEntry struct {
	ID              int64           `json:"transaction_id"`
	Type            TransactionType `json:"transaction_type"`
	Reference       string          `json:"reference"` // audit correlation id
	BookingID       *int64          `json:"booking_id,omitempty"`
	ReturnID        *int64          `json:"return_id,omitempty"`
	CustomerName    string          `json:"customer_name"`
	VehicleID       int64           `json:"vehicle_id"`
	Date            string          `json:"transaction_date"` // YYYY-MM-DD
	RentalDuration  *int64          `json:"rental_duration,omitempty"`
	BaseRevenue     float64         `json:"base_revenue"`
	CleaningFee     *float64        `json:"cleaning_fee,omitempty"`
	MaintenanceCost *float64        `json:"maintenance_cost,omitempty"`
	LateFee         *float64        `json:"late_fee,omitempty"`
	TotalAmount     float64         `json:"total_amount"`
}

// LedgerHistoryEntry is a LedgerEntry joined with vehicle context.
type LedgerHistoryEntry struct {
	LedgerEntry
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// LedgerSummary aggregates the transaction log.
type LedgerSummary struct {
	TotalTransactions     int64   `json:"total_transactions"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalCleaningFees     float64 `json:"total_cleaning_fees"`
	TotalMaintenanceCosts float64 `json:"total_maintenance_costs"`
	TotalLateFees         float64 `json:"total_late_fees"`
}

// DateRange filters ledger queries by inclusive transaction date. The zero
// value means no filtering.
type DateRange struct {
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD
}

// IsZero reports whether the range imposes no filter.
func (r DateRange) IsZero() bool {
	return r.Start == "" || r.End == ""
}
