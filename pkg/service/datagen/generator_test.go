package datagen_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/service/datagen"
)

var testNow = time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)

func newGenerator(seed int64, records int) *datagen.Generator {
	return datagen.New(datagen.Config{
		Seed:    seed,
		Records: records,
		Now:     testNow,
	})
}

func TestGenerateDeterminism(t *testing.T) {
	t.Run("same seed produces identical records", func(t *testing.T) {
		a := newGenerator(42, 200).Generate()
		b := newGenerator(42, 200).Generate()

		gt.Equal(t, len(a), len(b))
		for i := range a {
			gt.Equal(t, *a[i], *b[i])
		}
	})

	t.Run("different seeds produce differing revenues", func(t *testing.T) {
		a := newGenerator(42, 200).Generate()
		b := newGenerator(7, 200).Generate()

		differs := false
		for i := range a {
			if a[i].Revenue != b[i].Revenue {
				differs = true
				break
			}
		}
		gt.True(t, differs)
	})
}

func TestGenerateRecords(t *testing.T) {
	records := newGenerator(42, 500).Generate()
	gt.A(t, records).Length(500)

	windowStart := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1000)
	windowEnd := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	for _, rec := range records {
		gt.NoError(t, rec.Validate())
		gt.True(t, !rec.Date.Before(windowStart))
		gt.True(t, !rec.Date.After(windowEnd))
		gt.True(t, rec.Revenue > 0)
		gt.True(t, rec.DaysActive >= 0 && rec.DaysActive <= 30)
		gt.True(t, rec.Downloads >= 0 && rec.Downloads <= 500)
		gt.True(t, rec.Searches >= 0 && rec.Searches <= 800)
		gt.True(t, rec.Clicks >= 0 && rec.Clicks <= 1000)
	}
}

func TestGenerateCatalogPools(t *testing.T) {
	records := newGenerator(42, 300).Generate()
	defaults := model.DefaultCatalog()

	industries := make(map[string]bool)
	skus := make(map[string]bool)
	for _, rec := range records {
		industries[rec.Industry.String()] = true
		skus[rec.SKU.String()] = true
	}

	for ind := range industries {
		found := false
		for _, want := range defaults.Industries {
			if want.String() == ind {
				found = true
			}
		}
		gt.True(t, found)
	}
	for sku := range skus {
		found := false
		for _, want := range defaults.SKUs {
			if want.String() == sku {
				found = true
			}
		}
		gt.True(t, found)
	}
}

func TestDataset(t *testing.T) {
	info, records := newGenerator(42, 100).Dataset()

	gt.V(t, info).NotNil()
	gt.True(t, info.ID != "")
	gt.Equal(t, info.Seed, int64(42))
	gt.Equal(t, info.RecordCount, 100)
	gt.Equal(t, info.GeneratedAt, testNow)
	gt.A(t, records).Length(100)
}
