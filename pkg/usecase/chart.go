package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/interfaces"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

// Chart builds chart specifications from aggregated data
type Chart struct {
	metrics interfaces.Metrics
}

// NewChart creates a new Chart instance
func NewChart(metrics interfaces.Metrics) *Chart {
	return &Chart{metrics: metrics}
}

// BuildChart maps a chart kind to its spec. The switch is exhaustive
// over the supported kinds; anything else is ErrUnknownChartKind.
func (u *Chart) BuildChart(ctx context.Context, kind types.ChartKind, filter *model.FilterSpec) (*model.ChartSpec, error) {
	switch kind {
	case types.ChartRevenueTrend:
		buckets, err := u.metrics.MonthlyRevenue(ctx, filter)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to aggregate monthly revenue")
		}
		return model.NewTrendChart("Revenue Trend", buckets), nil

	case types.ChartSKUDistribution:
		categories, err := u.metrics.RevenueBySKU(ctx, filter)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to aggregate revenue by SKU")
		}
		return model.NewPieChart("Revenue by SKU", categories), nil

	case types.ChartIndustryCustomers:
		categories, err := u.metrics.CustomersByIndustry(ctx, filter)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to aggregate customers by industry")
		}
		return model.NewBarChart("Customers by Industry", categories), nil

	default:
		return nil, goerr.Wrap(model.ErrUnknownChartKind, "unsupported chart kind",
			goerr.V("kind", kind))
	}
}
