// Package datagen synthesizes the sample business dataset served by the
// dashboard. Generation is deterministic for a given seed, reference
// time, and catalog.
package datagen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

const (
	// historyDays is the span of the generated transaction window,
	// ending at the reference time
	historyDays = 1000

	// revenue is drawn in Lakhs and converted to INR
	minRevenueLakh = 1.0
	maxRevenueLakh = 200.0
	lakh           = 100000
)

// seasonalFactor scales revenue by calendar month. Q4 carries the
// year-end budget-cycle peak, Q1 the post-holiday dip.
var seasonalFactor = [13]float64{
	0,
	0.82, // Jan
	0.85, // Feb
	0.90, // Mar
	0.95, // Apr
	1.00, // May
	1.00, // Jun
	0.98, // Jul
	1.02, // Aug
	1.05, // Sep
	1.15, // Oct
	1.20, // Nov
	1.30, // Dec
}

// Config holds generator parameters
type Config struct {
	Seed    int64
	Records int
	Now     time.Time
	Catalog *model.Catalog
}

// Generator produces synthetic business records
type Generator struct {
	cfg Config
}

// New creates a Generator. A nil catalog falls back to the default, and
// a zero reference time falls back to the current time.
func New(cfg Config) *Generator {
	if cfg.Catalog == nil {
		cfg.Catalog = model.DefaultCatalog()
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	return &Generator{cfg: cfg}
}

// Generate produces the configured number of records. It always
// succeeds; the same configuration yields an identical slice.
func (g *Generator) Generate() []*model.Record {
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	cat := g.cfg.Catalog

	end := truncateDay(g.cfg.Now)
	start := end.AddDate(0, 0, -historyDays)

	records := make([]*model.Record, 0, g.cfg.Records)
	for i := 0; i < g.cfg.Records; i++ {
		customer := rng.Intn(cat.Customers) + 1
		date := start.AddDate(0, 0, rng.Intn(historyDays+1))

		base := minRevenueLakh + rng.Float64()*(maxRevenueLakh-minRevenueLakh)
		revenue := round2(base * lakh * seasonalFactor[date.Month()])

		records = append(records, &model.Record{
			CustomerID:   types.CustomerID(fmt.Sprintf("CUST_%04d", customer)),
			CustomerName: fmt.Sprintf("Company_%d", customer),
			Industry:     cat.Industries[rng.Intn(len(cat.Industries))],
			SKU:          cat.SKUs[rng.Intn(len(cat.SKUs))],
			Region:       cat.Regions[rng.Intn(len(cat.Regions))],
			Date:         date,
			Revenue:      revenue,
			DaysActive:   rng.Intn(31),
			Downloads:    rng.Intn(501),
			Searches:     rng.Intn(801),
			Clicks:       rng.Intn(1001),
		})
	}

	return records
}

// Dataset generates the records together with their DatasetInfo
func (g *Generator) Dataset() (*model.DatasetInfo, []*model.Record) {
	records := g.Generate()
	info := &model.DatasetInfo{
		ID:          types.NewDatasetID(),
		GeneratedAt: g.cfg.Now,
		Seed:        g.cfg.Seed,
		RecordCount: len(records),
	}
	return info, records
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
