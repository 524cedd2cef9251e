// Package tax applies the consumption tax to a taxable base.
package tax

import (
	"github.com/dealerdesk/quote-engine/pkg/constants"
)

// Engine applies a fixed consumption-tax rate. The rate is injected at
// construction so jurisdictions other than the default (combined GST+QST)
// can be supported without touching the calculation pipeline.
type Engine struct {
	rate float64
}

// NewEngine creates a tax engine for the given decimal rate (e.g. 0.14975).
// A non-positive rate falls back to the default jurisdiction rate.
func NewEngine(rate float64) *Engine {
	if rate <= 0 {
		rate = constants.DefaultTaxRate
	}
	return &Engine{rate: rate}
}

// Apply returns the tax owed on the taxable base.
func (e *Engine) Apply(base float64) float64 {
	return base * e.rate
}

// Rate returns the configured decimal tax rate.
func (e *Engine) Rate() float64 {
	return e.rate
}
