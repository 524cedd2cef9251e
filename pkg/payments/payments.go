// Package payments provides the fixed-payment amortization formula and the
// payment frequency conversions used across quote calculations.
package payments

import (
	"math"

	"github.com/dealerdesk/quote-engine/pkg/constants"
)

// Monthly calculates the level monthly payment for a loan using the standard
// amortization formula. A non-positive principal or term yields 0.
func Monthly(principal, annualRatePercent float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return principal * periodicRate * power / (power - 1.00)
}

// ToBiweekly converts a monthly payment into its bi-weekly equivalent,
// assuming 26 bi-weekly periods per year. The annualized totals only
// approximately match the monthly figure; the approximation is deliberate.
func ToBiweekly(monthly float64) float64 {
	return monthly * constants.MonthsPerYear / constants.BiweeklyPeriodsPerYear
}

// ToWeekly converts a monthly payment into its weekly equivalent, assuming
// 52 weekly periods per year.
func ToWeekly(monthly float64) float64 {
	return monthly * constants.MonthsPerYear / constants.WeeklyPeriodsPerYear
}

// TotalCost is the sum of all monthly payments over the term.
func TotalCost(monthly float64, termMonths int) float64 {
	return monthly * float64(termMonths)
}
