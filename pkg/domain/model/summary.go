package model

import (
	"time"

	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

// DatasetInfo describes one generated dataset
type DatasetInfo struct {
	ID          types.DatasetID `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Seed        int64           `json:"seed"`
	RecordCount int             `json:"record_count"`
}

// Summary holds the KPI values computed over a filtered dataset. An
// empty input yields the zero value, not an error.
type Summary struct {
	TotalRevenue          float64 `json:"total_revenue"`
	TotalCustomers        int     `json:"total_customers"`
	AvgRevenuePerCustomer float64 `json:"avg_revenue_per_customer"`
	TotalDownloads        int     `json:"total_downloads"`
	TotalSearches         int     `json:"total_searches"`
	ActiveUsers           int     `json:"active_users"`
	RecordCount           int     `json:"record_count"`
}

// MonthBucket aggregates records of one calendar month
type MonthBucket struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Label     string    `json:"label"` // e.g. "Jan 2025"
	Revenue   float64   `json:"revenue"`
	Customers int       `json:"customers"`
	Downloads int       `json:"downloads"`
	Searches  int       `json:"searches"`
	Clicks    int       `json:"clicks"`
}

// CustomerRevenue is one row of the top-customers ranking
type CustomerRevenue struct {
	CustomerID       types.CustomerID `json:"customer_id"`
	CustomerName     string           `json:"customer_name"`
	Industry         types.Industry   `json:"industry"`
	SKU              types.SKU        `json:"sku"`
	Region           types.Region     `json:"region"`
	Revenue          float64          `json:"revenue"`
	AvgDaysActive    float64          `json:"avg_days_active"`
	FormattedRevenue string           `json:"formatted_revenue"`
}

// CategoryValue is one aggregated category, such as a SKU's revenue
// share or an industry's customer count
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// ActivityBreakdown counts records per usage classification, in
// descending intensity order
type ActivityBreakdown struct {
	Classes []ActivityCount `json:"classes"`
}

// ActivityCount is the record count of one usage class
type ActivityCount struct {
	Class types.ActivityClass `json:"class"`
	Count int                 `json:"count"`
}

// GrowthSnapshot compares current-year figures with the previous year
type GrowthSnapshot struct {
	CurrentRevenue    float64 `json:"current_revenue"`
	LastYearRevenue   float64 `json:"last_year_revenue"`
	RevenueGrowth     float64 `json:"revenue_growth_pct"`
	CurrentCustomers  int     `json:"current_customers"`
	LastYearCustomers int     `json:"last_year_customers"`
	CustomerGrowth    float64 `json:"customer_growth_pct"`
}
