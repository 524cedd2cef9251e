// Package rates maps financing terms to annual interest rates.
package rates

import (
	"github.com/dealerdesk/quote-engine/pkg/constants"
)

// CanonicalTerms lists the terms, in months, a program rate set carries.
var CanonicalTerms = []int{36, 48, 60, 72, 84, 96}

// RateSet holds annual interest rates (in percent) keyed by term in months.
// Rate sets are loaded from the program record and never mutated afterwards.
type RateSet map[int]float64

// ForTerm looks up the rate for the given term. A term outside the canonical
// set resolves to the 72-month rate; validation warns about the fallback
// rather than rejecting the term here.
func ForTerm(rates RateSet, term int) float64 {
	if rate, ok := rates[term]; ok {
		return rate
	}
	return rates[constants.FallbackTermMonths]
}

// IsCanonicalTerm reports whether the term is one of the six offered terms.
func IsCanonicalTerm(term int) bool {
	for _, canonical := range CanonicalTerms {
		if term == canonical {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the rate set so callers can hold it
// past the lifetime of the source configuration.
func (r RateSet) Clone() RateSet {
	if r == nil {
		return nil
	}
	copied := make(RateSet, len(r))
	for term, rate := range r {
		copied[term] = rate
	}
	return copied
}
