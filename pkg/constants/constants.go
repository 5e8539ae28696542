// Package constants provides shared constants for the lisa-tach application.
package constants

// Forecast input bounds enforced by the input layer
const (
	// MinStartYear is the earliest allowed forecast start year
	MinStartYear = 2025

	// MaxYear is the latest allowed forecast year
	MaxYear = 2100

	// MaxGrowthPct is the upper bound for annual customer growth
	MaxGrowthPct = 200.0

	// MaxInflationPct is the upper bound for either inflation rate
	MaxInflationPct = 50.0

	// LongRangeWarningYears is the range length beyond which a warning is emitted
	LongRangeWarningYears = 30
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Export constants
const (
	// ForecastSheetName is the spreadsheet sheet holding the forecast table
	ForecastSheetName = "Forecast"

	// AssumptionsSheetName is the spreadsheet sheet holding the input assumptions
	AssumptionsSheetName = "Assumptions"

	// DefaultExportFilename is the download name for the spreadsheet artifact
	DefaultExportFilename = "LISA_cost_forecast.xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size for
	// JSON assumption payloads (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
