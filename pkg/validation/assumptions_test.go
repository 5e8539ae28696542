package validation

import (
	"strings"
	"testing"

	"github.com/Glennk62/lisa-tach/internal/forecast"
)

func validAssumptions() forecast.Assumptions {
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

func TestValidateAssumptions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*forecast.Assumptions)
		wantErr string
	}{
		{"Valid defaults", func(a *forecast.Assumptions) {}, ""},
		{"Start year too early", func(a *forecast.Assumptions) { a.StartYear = 2024 }, "start year"},
		{"Start year too late", func(a *forecast.Assumptions) { a.StartYear = 2101; a.EndYear = 2102 }, "start year"},
		{"End equals start", func(a *forecast.Assumptions) { a.EndYear = a.StartYear }, "end year"},
		{"Inverted range", func(a *forecast.Assumptions) { a.EndYear = a.StartYear - 1 }, "end year"},
		{"End year beyond maximum", func(a *forecast.Assumptions) { a.EndYear = 2101 }, "end year"},
		{"Zero customers", func(a *forecast.Assumptions) { a.CustomersStart = 0 }, "starting customers"},
		{"Zero vehicles per customer", func(a *forecast.Assumptions) { a.VehiclesPerCustomer = 0 }, "vehicles per customer"},
		{"Zero riders per vehicle", func(a *forecast.Assumptions) { a.RidersPerVehicle = 0 }, "riders per vehicle"},
		{"Negative growth", func(a *forecast.Assumptions) { a.CustomersGrowthPct = -1 }, "customer growth"},
		{"Growth above cap", func(a *forecast.Assumptions) { a.CustomersGrowthPct = 250 }, "customer growth"},
		{"Negative infra inflation", func(a *forecast.Assumptions) { a.InfraInflationPct = -2 }, "infrastructure inflation"},
		{"Staff inflation above cap", func(a *forecast.Assumptions) { a.StaffInflationPct = 51 }, "staff inflation"},
		{"Negative cost rate", func(a *forecast.Assumptions) { a.MonitoringPerVehicle = -5 }, "cost rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAssumptions()
			tt.mutate(&a)

			_, err := ValidateAssumptions(a)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateAssumptionsWarnings(t *testing.T) {
	t.Run("Long range", func(t *testing.T) {
		a := validAssumptions()
		a.EndYear = 2070

		warnings, err := ValidateAssumptions(a)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "years") {
			t.Errorf("expected a long-range warning, got %v", warnings)
		}
	})

	t.Run("All rates zero", func(t *testing.T) {
		a := validAssumptions()
		a.ComputePerVehicle = 0
		a.DatabasePerVehicle = 0
		a.AnalyticsPerVehicle = 0
		a.StreamingPerVehicle = 0
		a.MonitoringPerVehicle = 0
		a.AuthPerUser = 0
		a.SupportToolsPerUser = 0
		a.SupportStaffPerCustomer = 0
		a.DevOpsPerCustomer = 0

		warnings, err := ValidateAssumptions(a)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "zero") {
			t.Errorf("expected a zero-rates warning, got %v", warnings)
		}
	})
}
