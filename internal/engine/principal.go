package engine

import (
	"github.com/dealerdesk/quote-engine/pkg/mathutil"
)

type option int

const (
	optionOne option = iota + 1
	optionTwo
)

// principalBreakdown carries the intermediate figures of the principal
// pipeline; all of them surface in the OptionQuote for auditability.
type principalBreakdown struct {
	TaxableBase    float64
	Tax            float64
	GrossPrincipal float64
	Principal      float64
}

// composePrincipal assembles the financed principal for one option. The order
// of operations is load-bearing: the consumer cash rebate and the trade-in
// value reduce the taxable base, while trade-in debt, cash down, and bonus
// cash apply after tax. Bonus cash and consumer cash belong to option 1 only.
func (c *Calculator) composePrincipal(opt option, input Input, bonusCash float64) principalBreakdown {
	taxableBase := input.VehiclePrice + input.AccessoriesTotal()
	if opt == optionOne {
		taxableBase -= input.Program.ConsumerCash
	}
	taxableBase -= input.TradeInValue
	taxableBase += input.TaxableFees()

	taxAmount := c.tax.Apply(taxableBase)

	// Trade-in debt exceeding trade-in value (negative equity) legitimately
	// increases the gross principal.
	grossPrincipal := taxableBase + taxAmount + input.TradeInDebt

	netPrincipal := grossPrincipal - input.CashDown
	if opt == optionOne {
		netPrincipal -= bonusCash
	}

	return principalBreakdown{
		TaxableBase:    taxableBase,
		Tax:            taxAmount,
		GrossPrincipal: grossPrincipal,
		Principal:      mathutil.FloorAtZero(netPrincipal),
	}
}
