// Package validation provides input range enforcement for forecast
// assumptions, mirroring the bounds the web form applies to its widgets.
package validation

import (
	"fmt"

	"github.com/Glennk62/lisa-tach/internal/forecast"
	"github.com/Glennk62/lisa-tach/pkg/constants"
)

// ValidateAssumptions checks the assumptions against the allowed input
// ranges. Violations of hard bounds are returned as an error; softer
// conditions worth surfacing are returned as warnings.
func ValidateAssumptions(a forecast.Assumptions) ([]string, error) {
	if a.StartYear < constants.MinStartYear || a.StartYear > constants.MaxYear {
		return nil, fmt.Errorf("start year %d outside allowed range %d-%d",
			a.StartYear, constants.MinStartYear, constants.MaxYear)
	}
	if a.EndYear <= a.StartYear {
		return nil, fmt.Errorf("end year %d must be after start year %d", a.EndYear, a.StartYear)
	}
	if a.EndYear > constants.MaxYear {
		return nil, fmt.Errorf("end year %d exceeds maximum %d", a.EndYear, constants.MaxYear)
	}
	if a.CustomersStart < 1 {
		return nil, fmt.Errorf("starting customers must be at least 1, got %d", a.CustomersStart)
	}
	if a.VehiclesPerCustomer < 1 {
		return nil, fmt.Errorf("vehicles per customer must be at least 1, got %d", a.VehiclesPerCustomer)
	}
	if a.RidersPerVehicle < 1 {
		return nil, fmt.Errorf("riders per vehicle must be at least 1, got %d", a.RidersPerVehicle)
	}
	if a.CustomersGrowthPct < 0 || a.CustomersGrowthPct > constants.MaxGrowthPct {
		return nil, fmt.Errorf("customer growth %.1f%% outside allowed range 0-%.0f%%",
			a.CustomersGrowthPct, constants.MaxGrowthPct)
	}
	if a.InfraInflationPct < 0 || a.InfraInflationPct > constants.MaxInflationPct {
		return nil, fmt.Errorf("infrastructure inflation %.1f%% outside allowed range 0-%.0f%%",
			a.InfraInflationPct, constants.MaxInflationPct)
	}
	if a.StaffInflationPct < 0 || a.StaffInflationPct > constants.MaxInflationPct {
		return nil, fmt.Errorf("staff inflation %.1f%% outside allowed range 0-%.0f%%",
			a.StaffInflationPct, constants.MaxInflationPct)
	}
	if err := validateRates(a); err != nil {
		return nil, err
	}

	var warnings []string
	if span := a.EndYear - a.StartYear + 1; span > constants.LongRangeWarningYears {
		warnings = append(warnings, fmt.Sprintf(
			"forecast spans %d years; compounding over long ranges produces very large figures", span))
	}
	if totalRates(a) == 0 {
		warnings = append(warnings, "all cost rates are zero; every forecast total will be zero")
	}

	return warnings, nil
}

func validateRates(a forecast.Assumptions) error {
	rates := []struct {
		name  string
		value float64
	}{
		{"compute per vehicle", a.ComputePerVehicle},
		{"transactional DB per vehicle", a.DatabasePerVehicle},
		{"analytics per vehicle", a.AnalyticsPerVehicle},
		{"streaming per vehicle", a.StreamingPerVehicle},
		{"monitoring per vehicle", a.MonitoringPerVehicle},
		{"auth per user", a.AuthPerUser},
		{"support tools per user", a.SupportToolsPerUser},
		{"support staff per customer", a.SupportStaffPerCustomer},
		{"devops per customer", a.DevOpsPerCustomer},
	}
	for _, rate := range rates {
		if rate.value < 0 {
			return fmt.Errorf("cost rate %q must be non-negative, got %.2f", rate.name, rate.value)
		}
	}
	return nil
}

func totalRates(a forecast.Assumptions) float64 {
	return a.ComputePerVehicle + a.DatabasePerVehicle + a.AnalyticsPerVehicle +
		a.StreamingPerVehicle + a.MonitoringPerVehicle + a.AuthPerUser +
		a.SupportToolsPerUser + a.SupportStaffPerCustomer + a.DevOpsPerCustomer
}
