// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/Glennk62/lisa-tach/internal/forecast"
	"github.com/Glennk62/lisa-tach/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for lisa-tach.
type Configuration struct {
	Assumptions forecast.Assumptions
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format          string `yaml:"format,omitempty"`          // pretty, csv
	SpreadsheetFile string `yaml:"spreadsheetFile,omitempty"` // optional xlsx output
}

// DefaultAssumptions returns the assumption set the input form seeds its
// widgets with.
func DefaultAssumptions() forecast.Assumptions {
	return forecast.Assumptions{
		StartYear:               2025,
		EndYear:                 2030,
		CustomersStart:          10,
		CustomersGrowthPct:      50,
		VehiclesPerCustomer:     50,
		RidersPerVehicle:        10,
		ComputePerVehicle:       50,
		DatabasePerVehicle:      15,
		AnalyticsPerVehicle:     10,
		StreamingPerVehicle:     8,
		MonitoringPerVehicle:    5,
		AuthPerUser:             1,
		SupportToolsPerUser:     1,
		SupportStaffPerCustomer: 1000,
		DevOpsPerCustomer:       2000,
		InfraInflationPct:       5,
		StaffInflationPct:       5,
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Assumptions omitted from the file keep their defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, e.g. a request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	configuration := Configuration{Assumptions: DefaultAssumptions()}
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the assumptions against the allowed input
// ranges and returns any warnings.
func (c *Configuration) ValidateConfiguration() ([]string, error) {
	return validation.ValidateAssumptions(c.Assumptions)
}
