// Package optimizer solves for the minimum cash down that brings a quote's
// periodic payment under a target amount.
package optimizer

import (
	"fmt"

	"github.com/dealerdesk/quote-engine/internal/config"
	"github.com/dealerdesk/quote-engine/internal/engine"
	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/optimization"
	"go.uber.org/zap"
)

// Runner executes the solver for every quote carrying a payment target.
type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
	calc   *engine.Calculator
}

// Result summarizes solver adjustments.
type Result struct {
	Summaries []optimization.Summary
}

// Empty indicates whether any adjustments were produced.
func (r *Result) Empty() bool {
	return len(r.Summaries) == 0
}

// NewRunner constructs a Runner for the provided configuration and
// calculator.
func NewRunner(logger *zap.Logger, conf *config.Configuration, calc *engine.Calculator) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if calc == nil {
		return nil, fmt.Errorf("calculator cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, conf: conf, calc: calc}, nil
}

// Run solves every quote with a positive payment target. The configuration
// is not mutated; callers decide what to do with the suggested cash down.
func (r *Runner) Run() (*Result, error) {
	result := &Result{}

	for i := range r.conf.Quotes {
		quote := &r.conf.Quotes[i]
		if quote.TargetPayment <= 0 {
			continue
		}

		input, err := r.conf.ResolveQuote(quote)
		if err != nil {
			return nil, fmt.Errorf("solver: %w", err)
		}
		if r.calc.Calculate(input) == nil {
			return nil, fmt.Errorf("solver: quote %s has no computable result", quote.Name)
		}

		options := []string{constants.BestOptionOne}
		if input.Program.HasSecondOption() {
			options = append(options, constants.BestOptionTwo)
		}

		for _, option := range options {
			summary := r.solveOption(input, quote.Name, option, quote.TargetPayment)
			result.Summaries = append(result.Summaries, summary)

			r.logger.Info("solved cash down for payment target",
				zap.String("op", "optimizer.Run"),
				zap.String("quote", summary.QuoteName),
				zap.String("option", summary.Option),
				zap.Float64("targetPayment", summary.TargetPayment),
				zap.Float64("achievedPayment", summary.AchievedPayment),
				zap.Float64("originalCashDown", summary.Original),
				zap.Float64("cashDown", summary.Value),
				zap.Int("iterations", summary.Iterations),
				zap.Bool("converged", summary.Converged),
			)
		}
	}

	return result, nil
}

// solveOption bisects on cash down until the option's payment at the quote's
// frequency drops to the target, within tolerance.
func (r *Runner) solveOption(input engine.Input, quoteName, option string, target float64) optimization.Summary {
	summary := optimization.Summary{
		QuoteName:     quoteName,
		Option:        option,
		Field:         "cashDown",
		TargetPayment: target,
		Original:      input.CashDown,
	}

	payment := r.paymentAt(input, option, input.CashDown)
	if payment <= target+constants.SolverTolerance {
		// Already under target with the quoted cash down.
		summary.Value = input.CashDown
		summary.AchievedPayment = payment
		summary.Converged = true
		return summary
	}

	// An upper bound that zeroes the principal: the current cash down plus
	// the full financed amount.
	low := input.CashDown
	high := input.CashDown + r.principalAt(input, option, input.CashDown)

	var mid float64
	for i := 0; i < constants.DefaultSolverIterations; i++ {
		mid = (low + high) / 2
		payment = r.paymentAt(input, option, mid)
		summary.Iterations = i + 1

		if payment > target {
			low = mid
			continue
		}
		high = mid
		if target-payment <= constants.SolverTolerance {
			summary.Converged = true
			break
		}
	}

	summary.Value = high
	summary.AchievedPayment = r.paymentAt(input, option, high)
	if summary.AchievedPayment <= target+constants.SolverTolerance {
		summary.Converged = true
	}
	return summary
}

func (r *Runner) paymentAt(input engine.Input, option string, cashDown float64) float64 {
	quote := r.optionQuote(input, option, cashDown)
	if quote == nil {
		return 0
	}
	return quote.PaymentFor(input.Frequency)
}

func (r *Runner) principalAt(input engine.Input, option string, cashDown float64) float64 {
	quote := r.optionQuote(input, option, cashDown)
	if quote == nil {
		return 0
	}
	return quote.Principal
}

func (r *Runner) optionQuote(input engine.Input, option string, cashDown float64) *engine.OptionQuote {
	input.CashDown = cashDown
	result := r.calc.Calculate(input)
	if result == nil {
		return nil
	}
	if option == constants.BestOptionTwo {
		return result.Option2
	}
	return &result.Option1
}
