package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ChartKind represents one of the supported chart types
type ChartKind string

const (
	// ChartRevenueTrend is a line chart of revenue per month
	ChartRevenueTrend ChartKind = "revenue_trend"
	// ChartSKUDistribution is a pie chart of revenue share per SKU
	ChartSKUDistribution ChartKind = "sku_distribution"
	// ChartIndustryCustomers is a bar chart of customer counts per industry
	ChartIndustryCustomers ChartKind = "industry_customers"
)

// String returns the string representation
func (k ChartKind) String() string {
	return string(k)
}

// IsValid checks if the chart kind is one of the supported values
func (k ChartKind) IsValid() bool {
	switch k {
	case ChartRevenueTrend, ChartSKUDistribution, ChartIndustryCustomers:
		return true
	default:
		return false
	}
}

// ParseChartKind parses a query value into a ChartKind. An empty value
// defaults to ChartRevenueTrend; anything else unsupported is an error.
func ParseChartKind(s string) (ChartKind, error) {
	if s == "" {
		return ChartRevenueTrend, nil
	}
	k := ChartKind(s)
	if !k.IsValid() {
		return "", goerr.New("unknown chart type", goerr.V("type", s))
	}
	return k, nil
}
