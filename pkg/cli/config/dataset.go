package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"github.com/tp-labs/pulsedash/pkg/service/datagen"
	"github.com/urfave/cli/v3"
)

// Dataset holds sample data generation configuration
type Dataset struct {
	Seed        int64
	Records     int64
	CatalogPath string
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "seed",
			Usage:       "Random seed for sample data generation",
			Category:    "Dataset",
			Value:       42,
			Sources:     cli.EnvVars("PULSEDASH_SEED"),
			Destination: &d.Seed,
		},
		&cli.Int64Flag{
			Name:        "records",
			Usage:       "Number of sample records to generate",
			Category:    "Dataset",
			Value:       2000,
			Sources:     cli.EnvVars("PULSEDASH_RECORDS"),
			Destination: &d.Records,
		},
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a YAML catalog file (industries, SKUs, regions)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("PULSEDASH_CATALOG"),
			Destination: &d.CatalogPath,
		},
	}
}

// Configure builds the sample data generator from configuration
func (d *Dataset) Configure() (*datagen.Generator, error) {
	if d.Records <= 0 {
		return nil, goerr.New("record count must be positive",
			goerr.V("records", d.Records))
	}

	catalog := model.DefaultCatalog()
	if d.CatalogPath != "" {
		loaded, err := LoadCatalogFromFile(d.CatalogPath)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}

	return datagen.New(datagen.Config{
		Seed:    d.Seed,
		Records: int(d.Records),
		Now:     time.Now(),
		Catalog: catalog,
	}), nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", d.Seed),
		slog.Int64("records", d.Records),
		slog.String("catalog", d.CatalogPath),
	)
}
