package engine

import (
	"github.com/dealerdesk/quote-engine/pkg/payments"
	"github.com/dealerdesk/quote-engine/pkg/rates"
	"github.com/dealerdesk/quote-engine/pkg/tax"
	"go.uber.org/zap"
)

// Calculator runs the quote calculation pipeline. It is a pure transform:
// no I/O, no shared mutable state, safe for concurrent use.
type Calculator struct {
	logger *zap.Logger
	tax    *tax.Engine
}

// NewCalculator creates a calculator with the given tax engine. A nil logger
// falls back to a no-op logger; a nil tax engine falls back to the default
// jurisdiction rate.
func NewCalculator(logger *zap.Logger, taxEngine *tax.Engine) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if taxEngine == nil {
		taxEngine = tax.NewEngine(0)
	}
	return &Calculator{logger: logger, tax: taxEngine}
}

// TaxRate returns the decimal tax rate the calculator applies.
func (c *Calculator) TaxRate() float64 {
	return c.tax.Rate()
}

// Calculate runs the full pipeline for one quote. It returns nil when the
// preconditions are not met (non-positive price or term, or no program);
// that is the normal "insufficient input" state, not an error.
func (c *Calculator) Calculate(input Input) *Result {
	if input.Program == nil {
		return nil
	}
	if input.VehiclePrice <= 0 || input.TermMonths <= 0 {
		return nil
	}

	bonusCash := input.BonusCash()

	result := &Result{
		Option1: c.quoteOption(c.composePrincipal(optionOne, input, bonusCash),
			rates.ForTerm(input.Program.Option1Rates, input.TermMonths), input.TermMonths),
	}

	if input.Program.HasSecondOption() {
		option2 := c.quoteOption(c.composePrincipal(optionTwo, input, bonusCash),
			rates.ForTerm(input.Program.Option2Rates, input.TermMonths), input.TermMonths)
		result.Option2 = &option2
		result.BestOption, result.Savings = compareOptions(result.Option1.TotalCost, option2.TotalCost)
	}

	c.logger.Debug("quote computed",
		zap.String("op", "engine.Calculate"),
		zap.Float64("price", input.VehiclePrice),
		zap.Int("term", input.TermMonths),
		zap.Float64("principal1", result.Option1.Principal),
		zap.Float64("monthly1", result.Option1.Monthly),
		zap.String("bestOption", result.BestOption),
		zap.Float64("savings", result.Savings),
	)

	return result
}

// quoteOption derives the per-frequency payments and total cost for one
// composed principal.
func (c *Calculator) quoteOption(breakdown principalBreakdown, annualRate float64, termMonths int) OptionQuote {
	monthly := payments.Monthly(breakdown.Principal, annualRate, termMonths)
	return OptionQuote{
		Rate:           annualRate,
		TaxableBase:    breakdown.TaxableBase,
		Tax:            breakdown.Tax,
		GrossPrincipal: breakdown.GrossPrincipal,
		Principal:      breakdown.Principal,
		Monthly:        monthly,
		Biweekly:       payments.ToBiweekly(monthly),
		Weekly:         payments.ToWeekly(monthly),
		TotalCost:      payments.TotalCost(monthly, termMonths),
	}
}
