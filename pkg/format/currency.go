package format

import (
	"fmt"
	"math"
	"strings"
)

// Count returns a truncated integer string with thousands separators
// (e.g., "1,234"). Populations and monetary totals are displayed this way.
func Count(value float64) string {
	truncated := math.Trunc(value)
	sign := ""
	if truncated < 0 {
		sign = "-"
	}
	return sign + groupDigits(fmt.Sprintf("%.0f", math.Abs(truncated)))
}

// Ratio returns a two-decimal string with thousands separators
// (e.g., "1,234.56"), used for the per-unit cost columns.
func Ratio(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
	}
	formatted := fmt.Sprintf("%.2f", math.Abs(value))
	parts := strings.SplitN(formatted, ".", 2)
	return sign + groupDigits(parts[0]) + "." + parts[1]
}

// Euro returns a currency string with a euro sign and thousands separators
// (e.g., "€1,234.56").
func Euro(amount float64) string {
	if amount < 0 {
		return "-€" + Ratio(-amount)
	}
	return "€" + Ratio(amount)
}

func groupDigits(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
