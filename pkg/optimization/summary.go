// Package optimization defines shared result types for the down-payment
// solver.
package optimization

// Summary describes one solved down-payment adjustment.
type Summary struct {
	QuoteName       string
	Option          string
	Field           string
	TargetPayment   float64
	AchievedPayment float64
	Original        float64
	Value           float64
	Iterations      int
	Converged       bool
}
