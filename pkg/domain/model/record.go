package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

// Record is one synthetic business event: a transaction by one customer
// with its revenue and the usage counters observed in the surrounding
// 30-day window.
type Record struct {
	CustomerID   types.CustomerID `json:"customer_id"`
	CustomerName string           `json:"customer_name"`
	Industry     types.Industry   `json:"industry"`
	SKU          types.SKU        `json:"sku"`
	Region       types.Region     `json:"region"`
	Date         time.Time        `json:"date"`
	Revenue      float64          `json:"revenue_inr"`
	DaysActive   int              `json:"days_active"`
	Downloads    int              `json:"downloads"`
	Searches     int              `json:"searches"`
	Clicks       int              `json:"clicks"`
}

// Activity returns the usage classification of the record. It is a pure
// function of DaysActive.
func (r *Record) Activity() types.ActivityClass {
	return types.ClassifyActivity(r.DaysActive)
}

// IsActive reports whether the customer used the product at all during
// the usage window.
func (r *Record) IsActive() bool {
	return r.DaysActive >= 1
}

// Validate validates the record
func (r *Record) Validate() error {
	if r.CustomerID == "" {
		return goerr.New("customer ID is required")
	}
	if r.SKU == "" {
		return goerr.New("SKU is required")
	}
	if r.Industry == "" {
		return goerr.New("industry is required")
	}
	if r.Date.IsZero() {
		return goerr.New("date is required")
	}
	if r.Revenue < 0 {
		return goerr.New("revenue must not be negative",
			goerr.V("revenue", r.Revenue))
	}
	if r.DaysActive < 0 || r.DaysActive > 30 {
		return goerr.New("days active must be within the 30-day window",
			goerr.V("daysActive", r.DaysActive))
	}
	return nil
}
