package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/interfaces"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

// Metrics implements the filter and aggregation operations. Every
// method is a pure read over the repository; an empty filtered result
// aggregates to zero values rather than an error.
type Metrics struct {
	repo interfaces.Repository
}

// NewMetrics creates a new Metrics instance
func NewMetrics(repo interfaces.Repository) *Metrics {
	return &Metrics{repo: repo}
}

// Summarize computes the KPI summary of the filtered dataset
func (u *Metrics) Summarize(ctx context.Context, filter *model.FilterSpec) (*model.Summary, error) {
	records, err := u.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}

	summary := &model.Summary{RecordCount: len(records)}
	customers := make(map[types.CustomerID]bool)
	for _, rec := range records {
		summary.TotalRevenue += rec.Revenue
		summary.TotalDownloads += rec.Downloads
		summary.TotalSearches += rec.Searches
		if rec.IsActive() {
			summary.ActiveUsers++
		}
		customers[rec.CustomerID] = true
	}
	summary.TotalCustomers = len(customers)
	if summary.TotalCustomers > 0 {
		summary.AvgRevenuePerCustomer = summary.TotalRevenue / float64(summary.TotalCustomers)
	}

	return summary, nil
}

// MonthlyRevenue aggregates revenue per calendar month across the
// filtered records. Months without records appear with zero values so
// the trend axis stays contiguous.
func (u *Metrics) MonthlyRevenue(ctx context.Context, filter *model.FilterSpec) ([]*model.MonthBucket, error) {
	return u.monthBuckets(ctx, filter)
}

// MonthlyActivity aggregates usage counters per calendar month
func (u *Metrics) MonthlyActivity(ctx context.Context, filter *model.FilterSpec) ([]*model.MonthBucket, error) {
	return u.monthBuckets(ctx, filter)
}

func (u *Metrics) monthBuckets(ctx context.Context, filter *model.FilterSpec) ([]*model.MonthBucket, error) {
	records, err := u.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}
	if len(records) == 0 {
		return nil, nil
	}

	first, last := records[0].Date, records[0].Date
	for _, rec := range records[1:] {
		if rec.Date.Before(first) {
			first = rec.Date
		}
		if rec.Date.After(last) {
			last = rec.Date
		}
	}

	buckets := generateMonthRange(first, last)
	index := make(map[string]*model.MonthBucket, len(buckets))
	customers := make(map[string]map[types.CustomerID]bool, len(buckets))
	for _, b := range buckets {
		index[b.Label] = b
		customers[b.Label] = make(map[types.CustomerID]bool)
	}

	for _, rec := range records {
		label := monthLabel(rec.Date)
		b := index[label]
		b.Revenue += rec.Revenue
		b.Downloads += rec.Downloads
		b.Searches += rec.Searches
		b.Clicks += rec.Clicks
		customers[label][rec.CustomerID] = true
	}
	for _, b := range buckets {
		b.Customers = len(customers[b.Label])
	}

	return buckets, nil
}

// RevenueBySKU sums revenue per SKU, in order of first appearance
func (u *Metrics) RevenueBySKU(ctx context.Context, filter *model.FilterSpec) ([]*model.CategoryValue, error) {
	records, err := u.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}

	var categories []*model.CategoryValue
	index := make(map[types.SKU]*model.CategoryValue)
	for _, rec := range records {
		c, ok := index[rec.SKU]
		if !ok {
			c = &model.CategoryValue{Category: rec.SKU.String()}
			index[rec.SKU] = c
			categories = append(categories, c)
		}
		c.Value += rec.Revenue
	}

	return categories, nil
}

// CustomersByIndustry counts distinct customers per industry, in order
// of first appearance
func (u *Metrics) CustomersByIndustry(ctx context.Context, filter *model.FilterSpec) ([]*model.CategoryValue, error) {
	records, err := u.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}

	var categories []*model.CategoryValue
	index := make(map[types.Industry]*model.CategoryValue)
	seen := make(map[types.Industry]map[types.CustomerID]bool)
	for _, rec := range records {
		c, ok := index[rec.Industry]
		if !ok {
			c = &model.CategoryValue{Category: rec.Industry.String()}
			index[rec.Industry] = c
			seen[rec.Industry] = make(map[types.CustomerID]bool)
			categories = append(categories, c)
		}
		if !seen[rec.Industry][rec.CustomerID] {
			seen[rec.Industry][rec.CustomerID] = true
			c.Value++
		}
	}

	return categories, nil
}

// TopCustomers ranks customers by total revenue, descending. The sort
// is stable: customers with equal revenue keep their first-appearance
// order.
func (u *Metrics) TopCustomers(ctx context.Context, filter *model.FilterSpec, n int) ([]*model.CustomerRevenue, error) {
	records, err := u.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}

	var ranking []*model.CustomerRevenue
	index := make(map[types.CustomerID]*model.CustomerRevenue)
	counts := make(map[types.CustomerID]int)
	for _, rec := range records {
		c, ok := index[rec.CustomerID]
		if !ok {
			c = &model.CustomerRevenue{
				CustomerID:   rec.CustomerID,
				CustomerName: rec.CustomerName,
				Industry:     rec.Industry,
				SKU:          rec.SKU,
				Region:       rec.Region,
			}
			index[rec.CustomerID] = c
			ranking = append(ranking, c)
		}
		c.Revenue += rec.Revenue
		c.AvgDaysActive += float64(rec.DaysActive)
		counts[rec.CustomerID]++
	}

	for _, c := range ranking {
		c.AvgDaysActive /= float64(counts[c.CustomerID])
		c.FormattedRevenue = model.FormatINR(c.Revenue)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue > ranking[j].Revenue
	})

	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking, nil
}

// ActivityBreakdown counts records per usage classification
func (u *Metrics) ActivityBreakdown(ctx context.Context, filter *model.FilterSpec) (*model.ActivityBreakdown, error) {
	records, err := u.repo.ListRecords(ctx, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}

	counts := make(map[types.ActivityClass]int)
	for _, rec := range records {
		counts[rec.Activity()]++
	}

	breakdown := &model.ActivityBreakdown{}
	for _, class := range types.ActivityClasses() {
		breakdown.Classes = append(breakdown.Classes, model.ActivityCount{
			Class: class,
			Count: counts[class],
		})
	}
	return breakdown, nil
}

// GrowthSnapshot compares the current calendar year against the
// previous one for the dashboard KPI deltas
func (u *Metrics) GrowthSnapshot(ctx context.Context) (*model.GrowthSnapshot, error) {
	current, err := u.Summarize(ctx, &model.FilterSpec{Period: types.PeriodCurrentYear})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to summarize current year")
	}
	previous, err := u.Summarize(ctx, &model.FilterSpec{Period: types.PeriodLastYear})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to summarize last year")
	}

	return &model.GrowthSnapshot{
		CurrentRevenue:    current.TotalRevenue,
		LastYearRevenue:   previous.TotalRevenue,
		RevenueGrowth:     model.PercentChange(current.TotalRevenue, previous.TotalRevenue),
		CurrentCustomers:  current.TotalCustomers,
		LastYearCustomers: previous.TotalCustomers,
		CustomerGrowth:    model.PercentChange(float64(current.TotalCustomers), float64(previous.TotalCustomers)),
	}, nil
}

// monthLabel formats a date's month, e.g. "Jan 2025"
func monthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// generateMonthRange builds contiguous month buckets covering first
// through last
func generateMonthRange(first, last time.Time) []*model.MonthBucket {
	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, first.Location())
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, last.Location())

	var buckets []*model.MonthBucket
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		buckets = append(buckets, &model.MonthBucket{
			Start: m,
			End:   m.AddDate(0, 1, 0).Add(-time.Second),
			Label: monthLabel(m),
		})
	}
	return buckets
}
