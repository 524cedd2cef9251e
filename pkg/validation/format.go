package validation

import (
	"fmt"

	"github.com/dealerdesk/quote-engine/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unknown output format %s, expected %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}
