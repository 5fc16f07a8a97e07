package model

import (
	"fmt"
	"math"
	"strconv"
)

const (
	lakh  = 100000
	crore = 10000000
)

// FormatINR formats an INR amount with Lakh/Crore units, the notation
// used throughout the dashboard.
func FormatINR(x float64) string {
	abs := math.Abs(x)
	switch {
	case abs >= crore:
		return fmt.Sprintf("₹%.2f Cr", x/crore)
	case abs >= lakh:
		return fmt.Sprintf("₹%.2f L", x/lakh)
	default:
		return "₹" + groupThousands(int64(math.Round(x)))
	}
}

// groupThousands renders n with comma separators
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// PercentChange computes the percentage change from previous to current.
// A zero previous value yields 100 when current is positive and 0
// otherwise, so KPI deltas stay finite.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
