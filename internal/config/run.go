package config

import (
	"fmt"

	"github.com/dealerdesk/quote-engine/internal/engine"
	"go.uber.org/zap"
)

// ComputeQuotes runs every configured quote through the calculator. Quotes
// referencing an unknown program produce a nil result (the validation pass
// already warned about them); malformed program records are hard errors.
func (c *Configuration) ComputeQuotes(logger *zap.Logger, calc *engine.Calculator) ([]engine.QuoteOutcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	outcomes := make([]engine.QuoteOutcome, 0, len(c.Quotes))
	for i := range c.Quotes {
		quote := &c.Quotes[i]
		outcome := engine.QuoteOutcome{
			Name:       quote.Name,
			TermMonths: quote.Term,
			Frequency:  quote.Frequency,
		}

		record := c.ProgramByName(quote.Program)
		if record == nil {
			logger.Debug(fmt.Sprintf("skipping quote %s: program %s not found", quote.Name, quote.Program),
				zap.String("op", "config.ComputeQuotes"),
			)
			outcomes = append(outcomes, outcome)
			continue
		}

		program, err := record.ToEngineProgram()
		if err != nil {
			return nil, err
		}

		outcome.Description = program.Description()
		outcome.Result = calc.Calculate(quote.ToEngineInput(program))
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}
