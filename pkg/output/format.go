// Package output provides utilities for formatting and displaying quote
// results.
package output

import (
	"fmt"
	"strings"

	"github.com/dealerdesk/quote-engine/internal/engine"
	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/format"
	"github.com/dealerdesk/quote-engine/pkg/optimization"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(outcomes []engine.QuoteOutcome) {
	p := message.NewPrinter(language.English)
	for i, outcome := range outcomes {
		fmt.Printf("--- Quote %s (%s, %d months, %s) ---\n",
			outcome.Name, describe(outcome), outcome.TermMonths, frequencyLabel(outcome.Frequency))

		if outcome.Result == nil {
			fmt.Printf("no result: a positive vehicle price and term are required\n")
		} else {
			fmt.Printf("Option | Rate   | Monthly    | Bi-weekly  | Weekly     | Principal    | Total cost\n")
			fmt.Printf("______ | ____   | _______    | _________  | ______     | _________    | __________\n")
			printOptionRow(p, "1", &outcome.Result.Option1)
			if outcome.Result.Option2 != nil {
				printOptionRow(p, "2", outcome.Result.Option2)
			}
			printRecommendation(outcome.Result)
		}

		if i < len(outcomes)-1 {
			fmt.Printf("\n")
		}
	}
}

func printOptionRow(p *message.Printer, label string, quote *engine.OptionQuote) {
	_, _ = p.Printf("%s      | %.2f%% | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
		label, quote.Rate, quote.Monthly, quote.Biweekly, quote.Weekly, quote.Principal, quote.TotalCost)
}

func printRecommendation(result *engine.Result) {
	switch result.BestOption {
	case constants.BestOptionNone:
		fmt.Printf("no comparison: the program offers a single option\n")
	default:
		fmt.Printf("Best option: %s (saves %s over the term)\n",
			result.BestOption, format.Currency(result.Savings))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(outcomes []engine.QuoteOutcome) {
	fmt.Print(CsvString(outcomes))
}

// CsvString renders the CSV output as a string, one row per quote option.
func CsvString(outcomes []engine.QuoteOutcome) string {
	var builder strings.Builder
	builder.WriteString(`"quote","vehicle","term","option","rate","monthly","biweekly","weekly","principal","taxable base","tax","total cost","best option","savings"`)
	builder.WriteString("\n")

	for _, outcome := range outcomes {
		if outcome.Result == nil {
			fmt.Fprintf(&builder, `"%s","%s","%d","","","","","","","","","","",""`+"\n",
				outcome.Name, outcome.Description, outcome.TermMonths)
			continue
		}

		writeCsvRow(&builder, outcome, "1", &outcome.Result.Option1)
		if outcome.Result.Option2 != nil {
			writeCsvRow(&builder, outcome, "2", outcome.Result.Option2)
		}
	}

	return builder.String()
}

func writeCsvRow(builder *strings.Builder, outcome engine.QuoteOutcome, label string, quote *engine.OptionQuote) {
	fmt.Fprintf(builder, `"%s","%s","%d","%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%s","%.2f"`+"\n",
		outcome.Name, outcome.Description, outcome.TermMonths, label,
		quote.Rate, quote.Monthly, quote.Biweekly, quote.Weekly,
		quote.Principal, quote.TaxableBase, quote.Tax, quote.TotalCost,
		outcome.Result.BestOption, outcome.Result.Savings)
}

// SolverFormat outputs one line per solved payment target.
func SolverFormat(summaries []optimization.Summary) {
	if len(summaries) == 0 {
		return
	}

	fmt.Printf("--- Payment targets ---\n")
	for _, summary := range summaries {
		status := "converged"
		if !summary.Converged {
			status = "not converged"
		}
		fmt.Printf("%s option %s: %s down reaches %s against a target of %s (%d iterations, %s)\n",
			summary.QuoteName, summary.Option,
			format.Currency(summary.Value), format.Currency(summary.AchievedPayment),
			format.Currency(summary.TargetPayment), summary.Iterations, status)
	}
	fmt.Printf("\n")
}

func describe(outcome engine.QuoteOutcome) string {
	if outcome.Description == "" {
		return "unknown vehicle"
	}
	return outcome.Description
}

func frequencyLabel(frequency string) string {
	if frequency == "" {
		return constants.FrequencyMonthly
	}
	return frequency
}
