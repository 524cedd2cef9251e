// Package constants provides shared constants for the quote-engine application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// BiweeklyPeriodsPerYear is the number of bi-weekly payment periods in a year
	BiweeklyPeriodsPerYear = 26

	// WeeklyPeriodsPerYear is the number of weekly payment periods in a year
	WeeklyPeriodsPerYear = 52

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Tax constants
const (
	// DefaultTaxRate is the combined federal+provincial consumption tax rate
	// (GST 5% + QST 9.975%). Injectable; other jurisdictions override it in
	// configuration.
	DefaultTaxRate = 0.14975
)

// Term constants
const (
	// FallbackTermMonths is the term whose rate is used when a quote requests
	// a term the program's rate set does not carry.
	FallbackTermMonths = 72
)

// Payment frequency identifiers
const (
	// FrequencyMonthly selects the monthly payment figure
	FrequencyMonthly = "monthly"

	// FrequencyBiweekly selects the bi-weekly payment figure
	FrequencyBiweekly = "biweekly"

	// FrequencyWeekly selects the weekly payment figure
	FrequencyWeekly = "weekly"
)

// Option identifiers for the comparison outcome
const (
	// BestOptionNone indicates no comparison was possible (single-option program)
	BestOptionNone = ""

	// BestOptionOne indicates the rebate-plus-standard-rate option is cheaper
	BestOptionOne = "1"

	// BestOptionTwo indicates the no-rebate subsidized-rate option is cheaper
	BestOptionTwo = "2"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "quotes.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the quote API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request size for quote
	// payloads (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// Optimizer defaults
const (
	// DefaultSolverIterations caps the down-payment solver's bisection loop
	DefaultSolverIterations = 64

	// SolverTolerance is the payment tolerance at which the solver converges
	SolverTolerance = 0.01
)
