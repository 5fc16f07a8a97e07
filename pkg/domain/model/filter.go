package model

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/tp-labs/pulsedash/pkg/domain/types"
)

// FilterAll is the wildcard filter value matching every SKU or industry
const FilterAll = "all"

// FilterSpec narrows a dataset to a time period and optional SKU and
// industry values. Applying a FilterSpec never mutates the dataset; it
// only selects records.
type FilterSpec struct {
	Period   types.Period   `json:"period"`
	SKU      types.SKU      `json:"sku"`
	Industry types.Industry `json:"industry"`
}

// ParseFilterSpec builds a FilterSpec from HTTP query parameters.
// Unrecognized period values fall back to current_year; empty SKU and
// industry values mean "all". Unknown SKU or industry values are kept as
// given and simply match nothing.
func ParseFilterSpec(q url.Values) *FilterSpec {
	spec := &FilterSpec{
		Period:   types.ParsePeriod(q.Get("period")),
		SKU:      types.SKU(q.Get("sku")),
		Industry: types.Industry(q.Get("industry")),
	}
	if spec.SKU == "" {
		spec.SKU = FilterAll
	}
	if spec.Industry == "" {
		spec.Industry = FilterAll
	}
	return spec
}

// Matches reports whether the record satisfies every predicate of the
// filter. The period is resolved against now.
func (f *FilterSpec) Matches(rec *Record, now time.Time) bool {
	if f == nil {
		return true
	}

	switch f.Period {
	case types.PeriodCurrentYear:
		if rec.Date.Year() != now.Year() {
			return false
		}
	case types.PeriodLastYear:
		if rec.Date.Year() != now.Year()-1 {
			return false
		}
	case types.PeriodAllTime:
		// no date constraint
	}

	if f.SKU != "" && f.SKU != FilterAll && rec.SKU != f.SKU {
		return false
	}
	if f.Industry != "" && f.Industry != FilterAll && rec.Industry != f.Industry {
		return false
	}

	return true
}

// LogValue returns structured log value
func (f *FilterSpec) LogValue() slog.Value {
	if f == nil {
		return slog.StringValue("(none)")
	}
	return slog.GroupValue(
		slog.String("period", f.Period.String()),
		slog.String("sku", f.SKU.String()),
		slog.String("industry", f.Industry.String()),
	)
}
