// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/Glennk62/lisa-tach/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// GrowthMultiplier converts an annual growth percentage into the factor
// applied between consecutive years (e.g. 50 -> 1.5).
func GrowthMultiplier(percent float64) float64 {
	return 1 + percent/constants.PercentageMultiplier
}

// InflationFactor returns the compounding multiplier for the given annual
// rate at a zero-based year offset; offset 0 always yields 1.
func InflationFactor(percent float64, yearIndex int) float64 {
	return math.Pow(GrowthMultiplier(percent), float64(yearIndex))
}

// Truncate drops the fractional part of a population or monetary value,
// matching how counts are shown in tables and exports.
func Truncate(val float64) int64 {
	return int64(math.Trunc(val))
}
