package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Glennk62/lisa-tach/internal/config"
	"github.com/Glennk62/lisa-tach/internal/export"
	"github.com/Glennk62/lisa-tach/internal/forecast"
	"github.com/Glennk62/lisa-tach/pkg/constants"
	"github.com/Glennk62/lisa-tach/pkg/output"
	"github.com/Glennk62/lisa-tach/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	xlsxPath := flag.String("xlsx", "", "write the forecast spreadsheet to this path")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := config.BuildLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("invalid output format %s, must be one of: %s, %s",
			outputFormat, constants.OutputFormatPretty, constants.OutputFormatCSV),
			zap.String("op", "main"),
		)
	}

	// Enforce the input ranges and display any warnings
	warnings, err := validation.ValidateAssumptions(conf.Assumptions)
	if err != nil {
		logger.Fatal("invalid assumptions",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the calculation to get the forecast table
	table, err := forecast.Compute(logger, conf.Assumptions)
	if err != nil {
		logger.Fatal("failed to compute forecast",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(table)
	case constants.OutputFormatCSV:
		output.CsvFormat(table)
	}

	// Optionally write the spreadsheet artifact (flag overrides config)
	spreadsheetPath := conf.Output.SpreadsheetFile
	if *xlsxPath != "" {
		spreadsheetPath = *xlsxPath
	}
	if spreadsheetPath != "" {
		if err := writeSpreadsheet(spreadsheetPath, conf.Assumptions, table); err != nil {
			logger.Fatal("failed to write spreadsheet",
				zap.String("op", "main"),
				zap.String("path", spreadsheetPath),
				zap.Error(err),
			)
		}
		logger.Info("spreadsheet written",
			zap.String("op", "main"),
			zap.String("path", spreadsheetPath),
		)
	}
}

func writeSpreadsheet(path string, assumptions forecast.Assumptions, table forecast.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(file, assumptions, table); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
