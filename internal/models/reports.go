package models

// Report payloads returned by the reports endpoints. The server owns these
// shapes; the console only filters and renders them.

type PropertyMetrics struct {
	TotalProperties int `json:"total_properties"`
	TotalUnits      int `json:"total_units"`
}

type OccupancyMetrics struct {
	TotalUnits    int     `json:"total_units"`
	OccupiedUnits int     `json:"occupied_units"`
	VacantUnits   int     `json:"vacant_units"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type FinancialMetrics struct {
	ExpectedRent        float64 `json:"expected_rent"`
	RentCollected       float64 `json:"rent_collected"`
	RentCollectionRate  float64 `json:"rent_collection_rate"`
	MaintenanceExpenses float64 `json:"maintenance_expenses"`
	NetIncome           float64 `json:"net_income"`
}

type MaintenanceMetrics struct {
	TotalRequests   int `json:"total_requests"`
	PendingRequests int `json:"pending_requests"`
}

type MonthlyTrend struct {
	Month           string  `json:"month"`
	RentCollected   float64 `json:"rent_collected"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	NetIncome       float64 `json:"net_income"`
}

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DashboardMetrics is the dashboard-metrics/ response rendered on the overview screen.
type DashboardMetrics struct {
	PropertyMetrics    PropertyMetrics    `json:"property_metrics"`
	OccupancyMetrics   OccupancyMetrics   `json:"occupancy_metrics"`
	FinancialMetrics   FinancialMetrics   `json:"financial_metrics"`
	MaintenanceMetrics MaintenanceMetrics `json:"maintenance_metrics"`
	MonthlyTrends      []MonthlyTrend     `json:"monthly_trends"`
	DateRange          DateRange          `json:"date_range"`
}

// DashboardSummary is the per-property reports/dashboard_summary/ response.
type DashboardSummary struct {
	TotalUnits          int     `json:"total_units"`
	OccupiedUnits       int     `json:"occupied_units"`
	VacantUnits         int     `json:"vacant_units"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	ActiveLeases        int     `json:"active_leases"`
	MaintenancePending  int     `json:"maintenance_pending"`
	CurrentMonthRevenue float64 `json:"current_month_revenue"`
}

// ReportFilter narrows the reports endpoints by date range and entity.
type ReportFilter struct {
	PropertyID string
	StartDate  string
	EndDate    string
	Status     string
	Priority   string
}
