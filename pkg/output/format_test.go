package output

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/dealerdesk/quote-engine/internal/engine"
	"github.com/dealerdesk/quote-engine/pkg/optimization"
)

func sampleOutcomes() []engine.QuoteOutcome {
	return []engine.QuoteOutcome{
		{
			Name:        "Smith trade-in",
			Description: "2025 Jeep Grand Cherokee Limited",
			TermMonths:  60,
			Frequency:   "biweekly",
			Result: &engine.Result{
				Option1: engine.OptionQuote{
					Rate: 4.99, TaxableBase: 41651.50, Tax: 6237.31,
					Principal: 56888.81, Monthly: 1073.30, Biweekly: 495.37,
					Weekly: 247.69, TotalCost: 64398.09,
				},
				Option2: &engine.OptionQuote{
					Rate: 2.99, TaxableBase: 46651.50, Tax: 6986.06,
					Principal: 63637.56, Monthly: 1143.20, Biweekly: 527.63,
					Weekly: 263.82, TotalCost: 68592.05,
				},
				BestOption: "1",
				Savings:    4193.97,
			},
		},
		{
			Name:        "Single option deal",
			Description: "2025 Dodge Hornet",
			TermMonths:  48,
			Frequency:   "monthly",
			Result: &engine.Result{
				Option1: engine.OptionQuote{
					Rate: 5.99, Principal: 48289.50, Monthly: 1134.04,
					Biweekly: 523.40, Weekly: 261.70, TotalCost: 54433.92,
				},
			},
		},
		{
			Name:       "Incomplete quote",
			TermMonths: 60,
		},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(data)
}

func TestPrettyFormat(t *testing.T) {
	got := captureStdout(t, func() {
		PrettyFormat(sampleOutcomes())
	})

	checks := []string{
		"--- Quote Smith trade-in (2025 Jeep Grand Cherokee Limited, 60 months, biweekly) ---",
		"4.99%",
		"2.99%",
		"$56,888.81",
		"Best option: 1 (saves $4,193.97 over the term)",
		"no comparison: the program offers a single option",
		"no result: a positive vehicle price and term are required",
	}
	for _, check := range checks {
		if !strings.Contains(got, check) {
			t.Errorf("PrettyFormat() output missing %q\noutput:\n%s", check, got)
		}
	}
}

func TestCsvString(t *testing.T) {
	got := CsvString(sampleOutcomes())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	// Header, two rows for the two-option quote, one row for the single
	// option quote, one placeholder row for the incomplete quote.
	if len(lines) != 5 {
		t.Fatalf("CsvString() = %d lines, expected 5:\n%s", len(lines), got)
	}

	if !strings.HasPrefix(lines[0], `"quote","vehicle","term","option"`) {
		t.Errorf("CsvString() header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Smith trade-in"`) || !strings.Contains(lines[1], `"1"`) {
		t.Errorf("CsvString() first data row = %q", lines[1])
	}
	if !strings.Contains(lines[2], `"2","2.99"`) {
		t.Errorf("CsvString() second data row = %q", lines[2])
	}
	if !strings.Contains(lines[2], `"4193.97"`) {
		t.Errorf("CsvString() second data row should carry savings, got %q", lines[2])
	}
	if !strings.Contains(lines[4], `"Incomplete quote"`) {
		t.Errorf("CsvString() placeholder row = %q", lines[4])
	}
}

func TestCsvFormatMatchesCsvString(t *testing.T) {
	outcomes := sampleOutcomes()
	printed := captureStdout(t, func() {
		CsvFormat(outcomes)
	})
	if printed != CsvString(outcomes) {
		t.Errorf("CsvFormat() should print exactly CsvString()")
	}
}

func TestSolverFormat(t *testing.T) {
	summaries := []optimization.Summary{
		{
			QuoteName:       "Payment shopper",
			Option:          "1",
			Field:           "cashDown",
			TargetPayment:   600,
			AchievedPayment: 599.87,
			Original:        0,
			Value:           18250.44,
			Iterations:      23,
			Converged:       true,
		},
		{
			QuoteName:       "Payment shopper",
			Option:          "2",
			Field:           "cashDown",
			TargetPayment:   600,
			AchievedPayment: 612.34,
			Original:        0,
			Value:           21000,
			Iterations:      64,
			Converged:       false,
		},
	}

	printed := captureStdout(t, func() {
		SolverFormat(summaries)
	})

	if !strings.Contains(printed, "Payment shopper option 1") {
		t.Errorf("SolverFormat() should name the quote and option, got %q", printed)
	}
	if !strings.Contains(printed, "$18,250.44") {
		t.Errorf("SolverFormat() should print the solved cash down, got %q", printed)
	}
	if !strings.Contains(printed, "not converged") {
		t.Errorf("SolverFormat() should flag non-convergence, got %q", printed)
	}
}

func TestSolverFormatEmpty(t *testing.T) {
	printed := captureStdout(t, func() {
		SolverFormat(nil)
	})
	if printed != "" {
		t.Errorf("SolverFormat(nil) should print nothing, got %q", printed)
	}
}
