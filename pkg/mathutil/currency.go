// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/dealerdesk/quote-engine/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// FloorAtZero clamps negative amounts to zero. Financed principals and
// payment figures never go negative.
func FloorAtZero(val float64) float64 {
	return Max(val, 0)
}
