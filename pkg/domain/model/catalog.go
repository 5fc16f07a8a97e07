package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

// Catalog defines the value pools the sample data generator draws from.
type Catalog struct {
	Industries []types.Industry `yaml:"industries"`
	SKUs       []types.SKU      `yaml:"skus"`
	Regions    []types.Region   `yaml:"regions"`
	Customers  int              `yaml:"customers"` // size of the customer pool
}

// DefaultCatalog returns the built-in catalog used when no catalog file
// is configured.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Industries: []types.Industry{
			"Technology", "Healthcare", "Finance", "Manufacturing",
			"Retail", "Education", "Government", "Consulting",
		},
		SKUs: []types.SKU{
			"TP Starter", "TP Professional", "TP Enterprise", "TP Premium",
		},
		Regions: []types.Region{
			"North", "South", "East", "West", "Central",
		},
		Customers: 300,
	}
}

// Validate validates the catalog
func (c *Catalog) Validate() error {
	if len(c.Industries) == 0 {
		return goerr.Wrap(ErrInvalidCatalog, "at least one industry is required")
	}
	if len(c.SKUs) == 0 {
		return goerr.Wrap(ErrInvalidCatalog, "at least one SKU is required")
	}
	if len(c.Regions) == 0 {
		return goerr.Wrap(ErrInvalidCatalog, "at least one region is required")
	}
	if c.Customers <= 0 {
		return goerr.Wrap(ErrInvalidCatalog, "customer pool size must be positive",
			goerr.V("customers", c.Customers))
	}

	industries := make(map[types.Industry]bool)
	for _, ind := range c.Industries {
		if industries[ind] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate industry",
				goerr.V("industry", ind))
		}
		industries[ind] = true
	}

	skus := make(map[types.SKU]bool)
	for _, sku := range c.SKUs {
		if skus[sku] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate SKU",
				goerr.V("sku", sku))
		}
		skus[sku] = true
	}

	regions := make(map[types.Region]bool)
	for _, region := range c.Regions {
		if regions[region] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate region",
				goerr.V("region", region))
		}
		regions[region] = true
	}

	return nil
}
