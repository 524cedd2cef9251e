// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/dealerdesk/quote-engine/internal/engine"
)

// FindOutcome finds a quote outcome by name in the results slice.
// Returns a pointer to the outcome if found, nil otherwise.
func FindOutcome(results []engine.QuoteOutcome, name string) *engine.QuoteOutcome {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
