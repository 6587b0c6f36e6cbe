package domain

// RevenueMetrics summarizes logged revenue.
type RevenueMetrics struct {
	TotalRevenue            float64 `json:"total_revenue"`
	TotalTransactions       int64   `json:"total_transactions"`
	AverageTransactionValue float64 `json:"average_transaction_value"`
}

// OperationalCosts breaks down the fee side of the ledger.
type OperationalCosts struct {
	TotalCleaningCosts    float64 `json:"total_cleaning_costs"`
	TotalMaintenanceCosts float64 `json:"total_maintenance_costs"`
	TotalLateFees         float64 `json:"total_late_fees"`
	TotalOperationalCosts float64 `json:"total_operational_costs"`
}

// ProfitMetrics is revenue minus operational costs.
type ProfitMetrics struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	NetProfit    float64 `json:"net_profit"`
}

// MileageMetrics summarizes odometer readings across the fleet.
type MileageMetrics struct {
	TotalVehicles  int64   `json:"total_vehicles"`
	TotalMileage   int64   `json:"total_mileage"`
	AverageMileage float64 `json:"average_mileage"`
	MinMileage     int64   `json:"min_mileage"`
	MaxMileage     int64   `json:"max_mileage"`
}

// VehicleReport aggregates the ledger for a single vehicle.
type VehicleReport struct {
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	Mileage           int64   `json:"mileage"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalCosts        float64 `json:"total_costs"`
	NetProfit         float64 `json:"net_profit"`
}

// FinancialReport is the composite report over all metric groups.
type FinancialReport struct {
	Revenue          RevenueMetrics   `json:"revenue"`
	OperationalCosts OperationalCosts `json:"operational_costs"`
	Profit           ProfitMetrics    `json:"profit"`
	Mileage          MileageMetrics   `json:"mileage"`
}
