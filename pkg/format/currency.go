// Package format renders currency and rate values for display.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + groupThousands(math.Abs(amount))
	}
	return "$" + groupThousands(amount)
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if amount < 0 {
		return "-" + groupThousands(math.Abs(amount))
	}
	return groupThousands(amount)
}

// Rate returns an annual interest rate for display (e.g., "4.99%").
func Rate(annualRatePercent float64) string {
	return fmt.Sprintf("%.2f%%", annualRatePercent)
}

func groupThousands(value float64) string {
	whole, frac, found := strings.Cut(fmt.Sprintf("%.2f", value), ".")
	if !found {
		frac = "00"
	}

	if len(whole) <= 3 {
		return whole + "." + frac
	}

	var builder strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		builder.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(whole[i : i+3])
	}
	return builder.String() + "." + frac
}
