package engine

import (
	"math"
	"testing"

	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/rates"
	"github.com/dealerdesk/quote-engine/pkg/tax"
)

func testProgram() *Program {
	return &Program{
		Brand:        "Jeep",
		Model:        "Grand Cherokee",
		Trim:         "Limited",
		ModelYear:    2025,
		ConsumerCash: 5000,
		BonusCash:    1000,
		Option1Rates: rates.RateSet{36: 3.99, 48: 4.49, 60: 4.99, 72: 6.99, 84: 7.49, 96: 7.99},
		Option2Rates: rates.RateSet{36: 0.99, 48: 1.99, 60: 2.99, 72: 2.99, 84: 3.49, 96: 3.99},
	}
}

func tradeInInput() Input {
	return Input{
		VehiclePrice:     55000,
		TermMonths:       60,
		Frequency:        constants.FrequencyMonthly,
		CashDown:         2000,
		TradeInValue:     10000,
		TradeInDebt:      12000,
		DocumentationFee: 499,
		TireLevy:         22.50,
		RegistrationFee:  380,
		Accessories:      []float64{500, 250},
		Program:          testProgram(),
	}
}

func testCalculator() *Calculator {
	return NewCalculator(nil, tax.NewEngine(constants.DefaultTaxRate))
}

func TestComposePrincipalOption1(t *testing.T) {
	calc := testCalculator()
	input := tradeInInput()

	breakdown := calc.composePrincipal(optionOne, input, input.BonusCash())

	// 55000 + 750 - 5000 - 10000 + 901.50
	if math.Abs(breakdown.TaxableBase-41651.50) > 0.001 {
		t.Errorf("TaxableBase = %.4f, expected 41651.50", breakdown.TaxableBase)
	}
	if math.Abs(breakdown.Tax-6237.3121) > 0.001 {
		t.Errorf("Tax = %.4f, expected 6237.3121", breakdown.Tax)
	}
	if math.Abs(breakdown.GrossPrincipal-59888.8121) > 0.001 {
		t.Errorf("GrossPrincipal = %.4f, expected 59888.8121", breakdown.GrossPrincipal)
	}
	if math.Abs(breakdown.Principal-56888.8121) > 0.001 {
		t.Errorf("Principal = %.4f, expected 56888.8121", breakdown.Principal)
	}
}

func TestComposePrincipalOption2(t *testing.T) {
	calc := testCalculator()
	input := tradeInInput()

	breakdown := calc.composePrincipal(optionTwo, input, input.BonusCash())

	// No consumer cash in the base, no bonus cash after tax.
	if math.Abs(breakdown.TaxableBase-46651.50) > 0.001 {
		t.Errorf("TaxableBase = %.4f, expected 46651.50", breakdown.TaxableBase)
	}
	if math.Abs(breakdown.Principal-63637.5621) > 0.001 {
		t.Errorf("Principal = %.4f, expected 63637.5621", breakdown.Principal)
	}
}

func TestComposePrincipalFloorsAtZero(t *testing.T) {
	calc := testCalculator()

	input := Input{
		VehiclePrice: 20000,
		TermMonths:   60,
		CashDown:     50000, // far more than the gross principal
		Program:      testProgram(),
	}

	for _, opt := range []option{optionOne, optionTwo} {
		breakdown := calc.composePrincipal(opt, input, input.BonusCash())
		if breakdown.Principal != 0 {
			t.Errorf("option %d Principal = %.4f, expected floor at 0", opt, breakdown.Principal)
		}
		if breakdown.GrossPrincipal <= 0 {
			t.Errorf("option %d GrossPrincipal should stay positive for the breakdown", opt)
		}
	}
}

func TestComposePrincipalNegativeEquity(t *testing.T) {
	calc := testCalculator()

	base := tradeInInput()
	base.TradeInDebt = base.TradeInValue // even equity
	even1 := calc.composePrincipal(optionOne, base, base.BonusCash())
	even2 := calc.composePrincipal(optionTwo, base, base.BonusCash())

	underwater := tradeInInput()
	underwater.TradeInDebt = underwater.TradeInValue + 7500
	neg1 := calc.composePrincipal(optionOne, underwater, underwater.BonusCash())
	neg2 := calc.composePrincipal(optionTwo, underwater, underwater.BonusCash())

	// Debt beyond the trade-in value strictly increases both principals.
	if neg1.Principal <= even1.Principal {
		t.Errorf("option 1 principal should increase with negative equity: %.2f <= %.2f",
			neg1.Principal, even1.Principal)
	}
	if neg2.Principal <= even2.Principal {
		t.Errorf("option 2 principal should increase with negative equity: %.2f <= %.2f",
			neg2.Principal, even2.Principal)
	}
	if math.Abs((neg1.Principal-even1.Principal)-7500) > 0.001 {
		t.Errorf("extra debt should pass through untaxed, delta = %.4f",
			neg1.Principal-even1.Principal)
	}
}

func TestComposePrincipalRebatesAreOption1Only(t *testing.T) {
	calc := testCalculator()

	input := tradeInInput()
	baseline2 := calc.composePrincipal(optionTwo, input, input.BonusCash())

	// Raising both incentives must leave option 2 untouched.
	input.Program.ConsumerCash += 2500
	bigger := input.BonusCash() + 1500
	input.BonusCashOverride = &bigger

	unchanged := calc.composePrincipal(optionTwo, input, input.BonusCash())
	if unchanged.Principal != baseline2.Principal {
		t.Errorf("option 2 principal moved with incentives: %.4f != %.4f",
			unchanged.Principal, baseline2.Principal)
	}
}
