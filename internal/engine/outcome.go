package engine

import (
	"fmt"
	"strings"
)

// Description renders the program's vehicle identity for display, e.g.
// "2025 Jeep Grand Cherokee Limited".
func (p *Program) Description() string {
	parts := []string{fmt.Sprintf("%d", p.ModelYear), p.Brand, p.Model}
	if p.Trim != "" {
		parts = append(parts, p.Trim)
	}
	return strings.Join(parts, " ")
}

// QuoteOutcome pairs one named quote with its calculation result for
// presentation. Result is nil when the quote's preconditions were not met.
type QuoteOutcome struct {
	Name        string
	Description string
	TermMonths  int
	Frequency   string
	Result      *Result
}
