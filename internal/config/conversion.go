// Conversion utilities between configuration records and engine value
// objects.

package config

import (
	"fmt"
	"strconv"

	"github.com/dealerdesk/quote-engine/internal/engine"
	"github.com/dealerdesk/quote-engine/pkg/rates"
)

// ToRateSet parses a YAML rate map (string term keys) into a rates.RateSet.
// An empty or nil map yields nil, which downstream treats as "no rate set".
func ToRateSet(raw map[string]float64) (rates.RateSet, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	set := make(rates.RateSet, len(raw))
	for key, rate := range raw {
		term, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid rate term %q: %w", key, err)
		}
		if rate < 0 {
			return nil, fmt.Errorf("negative rate %.2f for term %d", rate, term)
		}
		set[term] = rate
	}
	return set, nil
}

// ToEngineProgram converts a configuration program record into the engine's
// read-only program value.
func (p *Program) ToEngineProgram() (*engine.Program, error) {
	if p == nil {
		return nil, nil
	}

	option1, err := ToRateSet(p.Option1Rates)
	if err != nil {
		return nil, fmt.Errorf("program %s option 1 rates: %w", p.Name, err)
	}
	if option1 == nil {
		return nil, fmt.Errorf("program %s has no option 1 rates", p.Name)
	}
	option2, err := ToRateSet(p.Option2Rates)
	if err != nil {
		return nil, fmt.Errorf("program %s option 2 rates: %w", p.Name, err)
	}

	return &engine.Program{
		Brand:        p.Brand,
		Model:        p.Model,
		Trim:         p.Trim,
		ModelYear:    p.ModelYear,
		ConsumerCash: p.ConsumerCash,
		BonusCash:    p.BonusCash,
		Option1Rates: option1,
		Option2Rates: option2,
	}, nil
}

// ToEngineInput assembles the engine input for this quote against an already
// converted program.
func (q *Quote) ToEngineInput(program *engine.Program) engine.Input {
	input := engine.Input{
		VehiclePrice:     q.VehiclePrice,
		TermMonths:       q.Term,
		Frequency:        q.Frequency,
		CashDown:         q.CashDown,
		TradeInValue:     q.TradeInValue,
		TradeInDebt:      q.TradeInDebt,
		DocumentationFee: q.DocumentationFee,
		TireLevy:         q.TireLevy,
		RegistrationFee:  q.RegistrationFee,
		Program:          program,
	}

	for _, accessory := range q.Accessories {
		input.Accessories = append(input.Accessories, accessory.Price)
	}

	if q.BonusCashOverride != nil {
		override := *q.BonusCashOverride
		input.BonusCashOverride = &override
	}

	return input
}

// ResolveQuote looks up the quote's program and builds the engine input.
func (c *Configuration) ResolveQuote(q *Quote) (engine.Input, error) {
	record := c.ProgramByName(q.Program)
	if record == nil {
		return engine.Input{}, fmt.Errorf("quote %s references unknown program %s", q.Name, q.Program)
	}

	program, err := record.ToEngineProgram()
	if err != nil {
		return engine.Input{}, err
	}

	return q.ToEngineInput(program), nil
}
