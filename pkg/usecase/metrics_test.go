package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/tp-labs/pulsedash/pkg/domain/interfaces"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
	"github.com/tp-labs/pulsedash/pkg/repository"
	"github.com/tp-labs/pulsedash/pkg/usecase"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestRepo(records []*model.Record) interfaces.Repository {
	info := &model.DatasetInfo{
		ID:          types.NewDatasetID(),
		GeneratedAt: testNow,
		RecordCount: len(records),
	}
	return repository.NewMemory(info, records, repository.WithClock(func() time.Time { return testNow }))
}

func fixtureRecords() []*model.Record {
	return []*model.Record{
		{
			CustomerID: "CUST_0001", CustomerName: "Company_1",
			Industry: "Technology", SKU: "TP Enterprise", Region: "North",
			Date: date(2026, time.January, 5), Revenue: 1000000,
			DaysActive: 15, Downloads: 10, Searches: 20, Clicks: 5,
		},
		{
			CustomerID: "CUST_0002", CustomerName: "Company_2",
			Industry: "Healthcare", SKU: "TP Starter", Region: "South",
			Date: date(2026, time.January, 20), Revenue: 400000,
			DaysActive: 0, Downloads: 5, Searches: 8, Clicks: 0,
		},
		{
			CustomerID: "CUST_0003", CustomerName: "Company_3",
			Industry: "Technology", SKU: "TP Premium", Region: "East",
			Date: date(2026, time.March, 2), Revenue: 400000,
			DaysActive: 3, Downloads: 50, Searches: 100, Clicks: 40,
		},
		{
			CustomerID: "CUST_0001", CustomerName: "Company_1",
			Industry: "Technology", SKU: "TP Enterprise", Region: "North",
			Date: date(2025, time.December, 10), Revenue: 600000,
			DaysActive: 25, Downloads: 40, Searches: 30, Clicks: 60,
		},
	}
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	metrics := usecase.NewMetrics(newTestRepo(fixtureRecords()))

	t.Run("all time KPIs", func(t *testing.T) {
		summary, err := metrics.Summarize(ctx, &model.FilterSpec{Period: types.PeriodAllTime})
		gt.NoError(t, err)
		gt.Equal(t, summary.RecordCount, 4)
		gt.Equal(t, summary.TotalRevenue, 2400000.0)
		gt.Equal(t, summary.TotalCustomers, 3)
		gt.Equal(t, summary.AvgRevenuePerCustomer, 800000.0)
		gt.Equal(t, summary.TotalDownloads, 105)
		gt.Equal(t, summary.TotalSearches, 158)
		gt.Equal(t, summary.ActiveUsers, 3)
	})

	t.Run("current year excludes last December", func(t *testing.T) {
		summary, err := metrics.Summarize(ctx, &model.FilterSpec{Period: types.PeriodCurrentYear})
		gt.NoError(t, err)
		gt.Equal(t, summary.RecordCount, 3)
		gt.Equal(t, summary.TotalRevenue, 1800000.0)
	})

	t.Run("empty filter result yields zero summary, not error", func(t *testing.T) {
		summary, err := metrics.Summarize(ctx, &model.FilterSpec{
			Period:   types.PeriodAllTime,
			Industry: "NonexistentIndustry",
		})
		gt.NoError(t, err)
		gt.Equal(t, summary.RecordCount, 0)
		gt.Equal(t, summary.TotalRevenue, 0.0)
		gt.Equal(t, summary.TotalCustomers, 0)
		gt.Equal(t, summary.AvgRevenuePerCustomer, 0.0)
	})

	t.Run("deterministic on the same input", func(t *testing.T) {
		filter := &model.FilterSpec{Period: types.PeriodAllTime}
		first, err := metrics.Summarize(ctx, filter)
		gt.NoError(t, err)
		second, err := metrics.Summarize(ctx, filter)
		gt.NoError(t, err)
		gt.Equal(t, first, second)
	})
}

func TestMonthlyRevenue(t *testing.T) {
	ctx := context.Background()
	metrics := usecase.NewMetrics(newTestRepo(fixtureRecords()))

	t.Run("contiguous months with zero gaps", func(t *testing.T) {
		buckets, err := metrics.MonthlyRevenue(ctx, &model.FilterSpec{Period: types.PeriodAllTime})
		gt.NoError(t, err)
		// Dec 2025 through Mar 2026
		gt.A(t, buckets).Length(4)
		gt.Equal(t, buckets[0].Label, "Dec 2025")
		gt.Equal(t, buckets[0].Revenue, 600000.0)
		gt.Equal(t, buckets[1].Label, "Jan 2026")
		gt.Equal(t, buckets[1].Revenue, 1400000.0)
		gt.Equal(t, buckets[2].Label, "Feb 2026")
		gt.Equal(t, buckets[2].Revenue, 0.0)
		gt.Equal(t, buckets[3].Label, "Mar 2026")
		gt.Equal(t, buckets[3].Revenue, 400000.0)
	})

	t.Run("distinct customers per month", func(t *testing.T) {
		buckets, err := metrics.MonthlyRevenue(ctx, &model.FilterSpec{Period: types.PeriodAllTime})
		gt.NoError(t, err)
		gt.Equal(t, buckets[1].Customers, 2)
		gt.Equal(t, buckets[2].Customers, 0)
	})

	t.Run("empty input yields no buckets", func(t *testing.T) {
		buckets, err := metrics.MonthlyRevenue(ctx, &model.FilterSpec{
			Period:   types.PeriodAllTime,
			Industry: "NonexistentIndustry",
		})
		gt.NoError(t, err)
		gt.A(t, buckets).Length(0)
	})
}

func TestRevenueBySKU(t *testing.T) {
	ctx := context.Background()
	metrics := usecase.NewMetrics(newTestRepo(fixtureRecords()))

	categories, err := metrics.RevenueBySKU(ctx, &model.FilterSpec{Period: types.PeriodAllTime})
	gt.NoError(t, err)
	gt.A(t, categories).Length(3)
	gt.Equal(t, categories[0].Category, "TP Enterprise")
	gt.Equal(t, categories[0].Value, 1600000.0)
	gt.Equal(t, categories[1].Category, "TP Starter")
	gt.Equal(t, categories[1].Value, 400000.0)
	gt.Equal(t, categories[2].Category, "TP Premium")
	gt.Equal(t, categories[2].Value, 400000.0)
}

func TestCustomersByIndustry(t *testing.T) {
	ctx := context.Background()
	metrics := usecase.NewMetrics(newTestRepo(fixtureRecords()))

	categories, err := metrics.CustomersByIndustry(ctx, &model.FilterSpec{Period: types.PeriodAllTime})
	gt.NoError(t, err)
	gt.A(t, categories).Length(2)
	gt.Equal(t, categories[0].Category, "Technology")
	gt.Equal(t, categories[0].Value, 2.0) // CUST_0001 counted once
	gt.Equal(t, categories[1].Category, "Healthcare")
	gt.Equal(t, categories[1].Value, 1.0)
}

func TestTopCustomers(t *testing.T) {
	ctx := context.Background()
	metrics := usecase.NewMetrics(newTestRepo(fixtureRecords()))

	t.Run("ranked by total revenue descending", func(t *testing.T) {
		top, err := metrics.TopCustomers(ctx, &model.FilterSpec{Period: types.PeriodAllTime}, 10)
		gt.NoError(t, err)
		gt.A(t, top).Length(3)
		gt.Equal(t, top[0].CustomerID, types.CustomerID("CUST_0001"))
		gt.Equal(t, top[0].Revenue, 1600000.0)
		gt.Equal(t, top[0].FormattedRevenue, "₹16.00 L")
	})

	t.Run("ties keep first-appearance order", func(t *testing.T) {
		// CUST_0002 and CUST_0003 both total 400000; CUST_0002
		// appears first in the dataset
		top, err := metrics.TopCustomers(ctx, &model.FilterSpec{Period: types.PeriodAllTime}, 10)
		gt.NoError(t, err)
		gt.Equal(t, top[1].CustomerID, types.CustomerID("CUST_0002"))
		gt.Equal(t, top[2].CustomerID, types.CustomerID("CUST_0003"))
	})

	t.Run("limit caps the ranking", func(t *testing.T) {
		top, err := metrics.TopCustomers(ctx, &model.FilterSpec{Period: types.PeriodAllTime}, 1)
		gt.NoError(t, err)
		gt.A(t, top).Length(1)
	})

	t.Run("averages days active over a customer's records", func(t *testing.T) {
		top, err := metrics.TopCustomers(ctx, &model.FilterSpec{Period: types.PeriodAllTime}, 10)
		gt.NoError(t, err)
		gt.Equal(t, top[0].AvgDaysActive, 20.0) // (15+25)/2
	})
}

func TestActivityBreakdown(t *testing.T) {
	ctx := context.Background()
	metrics := usecase.NewMetrics(newTestRepo(fixtureRecords()))

	breakdown, err := metrics.ActivityBreakdown(ctx, &model.FilterSpec{Period: types.PeriodAllTime})
	gt.NoError(t, err)
	gt.A(t, breakdown.Classes).Length(4)
	gt.Equal(t, breakdown.Classes[0].Class, types.ActivityHeavy)
	gt.Equal(t, breakdown.Classes[0].Count, 1) // DaysActive 25
	gt.Equal(t, breakdown.Classes[1].Class, types.ActivityMedium)
	gt.Equal(t, breakdown.Classes[1].Count, 1) // DaysActive 15
	gt.Equal(t, breakdown.Classes[2].Class, types.ActivityLow)
	gt.Equal(t, breakdown.Classes[2].Count, 1) // DaysActive 3
	gt.Equal(t, breakdown.Classes[3].Class, types.ActivityDormant)
	gt.Equal(t, breakdown.Classes[3].Count, 1) // DaysActive 0
}

func TestGrowthSnapshot(t *testing.T) {
	ctx := context.Background()
	metrics := usecase.NewMetrics(newTestRepo(fixtureRecords()))

	growth, err := metrics.GrowthSnapshot(ctx)
	gt.NoError(t, err)
	gt.Equal(t, growth.CurrentRevenue, 1800000.0)
	gt.Equal(t, growth.LastYearRevenue, 600000.0)
	gt.Equal(t, growth.RevenueGrowth, 200.0)
	gt.Equal(t, growth.CurrentCustomers, 3)
	gt.Equal(t, growth.LastYearCustomers, 1)
	gt.Equal(t, growth.CustomerGrowth, 200.0)
}
