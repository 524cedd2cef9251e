// Package validation provides quote configuration validation utilities.
// Validation produces warnings, never hard failures: every input the engine
// receives has a defined numeric outcome.
package validation

import (
	"fmt"

	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/rates"
)

// ValidateTerm warns when a quote requests a term the rate sets do not
// carry, since the engine silently falls back to the 72-month rate.
func ValidateTerm(quoteName string, term int) []string {
	if term <= 0 || rates.IsCanonicalTerm(term) {
		return nil
	}
	return []string{fmt.Sprintf("Quote '%s' requests a %d-month term that is not offered; the %d-month rate will apply",
		quoteName, term, constants.FallbackTermMonths)}
}

// ValidateFrequency warns when the payment frequency is not one of the
// supported identifiers; the monthly figure is used in that case.
func ValidateFrequency(quoteName, frequency string) []string {
	switch frequency {
	case "", constants.FrequencyMonthly, constants.FrequencyBiweekly, constants.FrequencyWeekly:
		return nil
	}
	return []string{fmt.Sprintf("Quote '%s' requests unknown payment frequency '%s'; monthly payments will be shown",
		quoteName, frequency)}
}

// ValidateTradeIn notes negative equity. This is a legal input that raises
// the financed principal, worth surfacing to the advisor.
func ValidateTradeIn(quoteName string, tradeInValue, tradeInDebt float64) []string {
	if tradeInDebt <= tradeInValue {
		return nil
	}
	return []string{fmt.Sprintf("Quote '%s' carries %.2f of negative trade-in equity which will be financed",
		quoteName, tradeInDebt-tradeInValue)}
}

// ValidateIncentives warns when the consumer cash rebate exceeds the vehicle
// price, which drives the taxable base negative. A quote without a positive
// price is skipped; the missing price already draws its own warning.
func ValidateIncentives(quoteName string, vehiclePrice, consumerCash float64) []string {
	if vehiclePrice <= 0 || consumerCash <= vehiclePrice {
		return nil
	}
	return []string{fmt.Sprintf("Quote '%s' has consumer cash (%.2f) exceeding the vehicle price (%.2f)",
		quoteName, consumerCash, vehiclePrice)}
}

// QuoteValidator performs comprehensive validation over a set of quotes.
type QuoteValidator struct {
	Quotes []QuoteInfo
}

// QuoteInfo carries the fields validation needs from one quote.
type QuoteInfo struct {
	Name            string
	ProgramName     string
	ProgramFound    bool
	HasSecondOption bool
	VehiclePrice    float64
	Term            int
	Frequency       string
	TradeInValue    float64
	TradeInDebt     float64
	ConsumerCash    float64
}

// ValidateAll validates every quote and returns the accumulated warnings.
func (qv *QuoteValidator) ValidateAll() []string {
	var warnings []string

	for _, quote := range qv.Quotes {
		if !quote.ProgramFound {
			warnings = append(warnings, fmt.Sprintf("Quote '%s' references unknown program '%s'",
				quote.Name, quote.ProgramName))
			continue
		}

		if quote.VehiclePrice <= 0 {
			warnings = append(warnings, fmt.Sprintf("Quote '%s' has no positive vehicle price; no result will be produced",
				quote.Name))
		}
		if !quote.HasSecondOption {
			warnings = append(warnings, fmt.Sprintf("Quote '%s' uses program '%s' which offers no subsidized-rate option; no comparison will be made",
				quote.Name, quote.ProgramName))
		}

		warnings = append(warnings, ValidateTerm(quote.Name, quote.Term)...)
		warnings = append(warnings, ValidateFrequency(quote.Name, quote.Frequency)...)
		warnings = append(warnings, ValidateTradeIn(quote.Name, quote.TradeInValue, quote.TradeInDebt)...)
		warnings = append(warnings, ValidateIncentives(quote.Name, quote.VehiclePrice, quote.ConsumerCash)...)
	}

	return warnings
}
