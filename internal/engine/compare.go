package engine

import (
	"github.com/dealerdesk/quote-engine/pkg/constants"
)

// compareOptions picks the option with the strictly lower total cost. On an
// exact tie the rebate option wins and the savings are zero.
func compareOptions(total1, total2 float64) (bestOption string, savings float64) {
	if total2 < total1 {
		return constants.BestOptionTwo, total1 - total2
	}
	return constants.BestOptionOne, total2 - total1
}
