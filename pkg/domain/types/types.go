package types

import (
	"github.com/google/uuid"
)

// CustomerID represents a canonical customer identifier
type CustomerID string

// String returns the string representation
func (id CustomerID) String() string {
	return string(id)
}

// SKU represents a product stock-keeping unit
type SKU string

// String returns the string representation
func (s SKU) String() string {
	return string(s)
}

// Industry represents a customer industry sector
type Industry string

// String returns the string representation
func (i Industry) String() string {
	return string(i)
}

// Region represents a sales region
type Region string

// String returns the string representation
func (r Region) String() string {
	return string(r)
}

// DatasetID identifies one generated dataset
type DatasetID string

// String returns the string representation
func (id DatasetID) String() string {
	return string(id)
}

// NewDatasetID creates a new DatasetID
func NewDatasetID() DatasetID {
	return DatasetID(uuid.New().String())
}

// Period represents a reporting time period
type Period string

const (
	// PeriodCurrentYear selects records dated in the current calendar year
	PeriodCurrentYear Period = "current_year"
	// PeriodLastYear selects records dated in the previous calendar year
	PeriodLastYear Period = "last_year"
	// PeriodAllTime selects every record
	PeriodAllTime Period = "all_time"
)

// String returns the string representation
func (p Period) String() string {
	return string(p)
}

// IsValid checks if the period is one of the recognized values
func (p Period) IsValid() bool {
	switch p {
	case PeriodCurrentYear, PeriodLastYear, PeriodAllTime:
		return true
	default:
		return false
	}
}

// ParsePeriod maps a query value to a Period. Empty or unrecognized
// values fall back to PeriodCurrentYear instead of failing.
func ParsePeriod(s string) Period {
	p := Period(s)
	if !p.IsValid() {
		return PeriodCurrentYear
	}
	return p
}

// ActivityClass classifies a record's usage intensity
type ActivityClass string

const (
	// ActivityHeavy means 20 or more active days in the usage window
	ActivityHeavy ActivityClass = "heavy"
	// ActivityMedium means 10 to 19 active days
	ActivityMedium ActivityClass = "medium"
	// ActivityLow means 1 to 9 active days
	ActivityLow ActivityClass = "low"
	// ActivityDormant means zero active days
	ActivityDormant ActivityClass = "dormant"
)

// String returns the string representation
func (a ActivityClass) String() string {
	return string(a)
}

// ActivityClasses lists all classes in descending intensity order
func ActivityClasses() []ActivityClass {
	return []ActivityClass{ActivityHeavy, ActivityMedium, ActivityLow, ActivityDormant}
}

// ClassifyActivity maps active days in the 30-day usage window to a class
func ClassifyActivity(daysActive int) ActivityClass {
	switch {
	case daysActive >= 20:
		return ActivityHeavy
	case daysActive >= 10:
		return ActivityMedium
	case daysActive >= 1:
		return ActivityLow
	default:
		return ActivityDormant
	}
}
