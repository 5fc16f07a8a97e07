package interfaces

import (
	"context"

	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

// Metrics defines the filter and aggregation operations over the dataset
type Metrics interface {
	Summarize(ctx context.Context, filter *model.FilterSpec) (*model.Summary, error)
	MonthlyRevenue(ctx context.Context, filter *model.FilterSpec) ([]*model.MonthBucket, error)
	MonthlyActivity(ctx context.Context, filter *model.FilterSpec) ([]*model.MonthBucket, error)
	RevenueBySKU(ctx context.Context, filter *model.FilterSpec) ([]*model.CategoryValue, error)
	CustomersByIndustry(ctx context.Context, filter *model.FilterSpec) ([]*model.CategoryValue, error)
	TopCustomers(ctx context.Context, filter *model.FilterSpec, n int) ([]*model.CustomerRevenue, error)
	ActivityBreakdown(ctx context.Context, filter *model.FilterSpec) (*model.ActivityBreakdown, error)
	GrowthSnapshot(ctx context.Context) (*model.GrowthSnapshot, error)
}

// Chart builds chart specifications from aggregated data
type Chart interface {
	BuildChart(ctx context.Context, kind types.ChartKind, filter *model.FilterSpec) (*model.ChartSpec, error)
}
