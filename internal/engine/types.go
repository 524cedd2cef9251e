// Package engine computes vehicle-financing quotes: it assembles the financed
// principal for each program option, derives payments at three frequencies,
// and recommends the cheaper option.
package engine

import (
	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/rates"
)

// Program is the read-only financing program record supplied by the catalog
// service for the duration of one calculation.
type Program struct {
	Brand        string
	Model        string
	Trim         string
	ModelYear    int
	ConsumerCash float64
	BonusCash    float64
	Option1Rates rates.RateSet
	Option2Rates rates.RateSet // nil when the program carries no second option
}

// HasSecondOption reports whether the program offers the no-rebate
// subsidized-rate alternative.
func (p *Program) HasSecondOption() bool {
	return len(p.Option2Rates) > 0
}

// Input carries everything needed for one quote calculation. It is
// constructed fresh per interaction and never persisted.
type Input struct {
	VehiclePrice      float64
	TermMonths        int
	Frequency         string // monthly, biweekly, weekly
	CashDown          float64
	TradeInValue      float64
	TradeInDebt       float64
	DocumentationFee  float64
	TireLevy          float64
	RegistrationFee   float64
	Accessories       []float64
	BonusCashOverride *float64
	Program           *Program
}

// TaxableFees is the sum of the taxable fee line items.
func (in *Input) TaxableFees() float64 {
	return in.DocumentationFee + in.TireLevy + in.RegistrationFee
}

// AccessoriesTotal is the sum of the accessory line items.
func (in *Input) AccessoriesTotal() float64 {
	total := 0.00
	for _, price := range in.Accessories {
		total += price
	}
	return total
}

// BonusCash resolves the effective bonus cash: the quote-level override when
// present, otherwise the program incentive.
func (in *Input) BonusCash() float64 {
	if in.BonusCashOverride != nil {
		return *in.BonusCashOverride
	}
	if in.Program == nil {
		return 0
	}
	return in.Program.BonusCash
}

// OptionQuote holds the computed figures for one financing option, including
// the raw tax breakdown needed by cost-breakdown presentations.
type OptionQuote struct {
	Rate           float64
	TaxableBase    float64
	Tax            float64
	GrossPrincipal float64
	Principal      float64
	Monthly        float64
	Biweekly       float64
	Weekly         float64
	TotalCost      float64
}

// PaymentFor returns the payment at the requested frequency; unknown
// frequencies resolve to the monthly figure.
func (q *OptionQuote) PaymentFor(frequency string) float64 {
	switch frequency {
	case constants.FrequencyBiweekly:
		return q.Biweekly
	case constants.FrequencyWeekly:
		return q.Weekly
	default:
		return q.Monthly
	}
}

// Result is the full outcome of one calculation. It is recomputed from a
// fresh Input on every invocation, never mutated.
type Result struct {
	Option1    OptionQuote
	Option2    *OptionQuote // nil when the program has no second rate set
	BestOption string       // "", "1", or "2"; "" only when Option2 is nil
	Savings    float64
}
