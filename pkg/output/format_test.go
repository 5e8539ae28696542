package output

import (
	"strings"
	"testing"

	"github.com/Glennk62/lisa-tach/internal/forecast"
)

func sampleTable(t *testing.T) forecast.Table {
	t.Helper()
	table, err := forecast.Compute(nil, forecast.Assumptions{
		StartYear:           2025,
		EndYear:             2026,
		CustomersStart:      10,
		CustomersGrowthPct:  50,
		VehiclesPerCustomer: 50,
		RidersPerVehicle:    10,
		ComputePerVehicle:   50,
		InfraInflationPct:   5,
	})
	if err != nil {
		t.Fatalf("failed to compute sample table: %v", err)
	}
	return table
}

func TestCsvString(t *testing.T) {
	csv := CsvString(sampleTable(t))
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[0], `"Year","Customers","Vehicles","Users","Compute & Kubernetes"`) {
		t.Errorf("unexpected header line: %s", lines[0])
	}
	if got, want := strings.Count(lines[0], ","), len(forecast.Headers)-1; got != want {
		t.Errorf("expected %d commas in header, got %d", want, got)
	}

	// Year 2025: 500 vehicles at rate 50
	if !strings.HasPrefix(lines[1], `"2025","10","500","5000","25000"`) {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	// Year 2026: population x1.5, inflation x1.05 -> 39375, truncated populations
	if !strings.HasPrefix(lines[2], `"2026","15","750","7500","39375"`) {
		t.Errorf("unexpected second row: %s", lines[2])
	}
}

func TestCsvStringUndefinedRatio(t *testing.T) {
	table, err := forecast.Compute(nil, forecast.Assumptions{
		StartYear: 2025,
		EndYear:   2025,
	})
	if err != nil {
		t.Fatalf("failed to compute table: %v", err)
	}

	csv := CsvString(table)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[1], `"","",""`) {
		t.Errorf("expected empty ratio cells for zero population, got: %s", lines[1])
	}
}

func TestRatioCell(t *testing.T) {
	tests := []struct {
		name     string
		ratio    forecast.UnitCost
		expected string
	}{
		{"Defined", forecast.UnitCost{Value: 162.5, Defined: true}, "162.50"},
		{"Defined with separators", forecast.UnitCost{Value: 31250, Defined: true}, "31,250.00"},
		{"Undefined", forecast.UnitCost{}, "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := RatioCell(tt.ratio); result != tt.expected {
				t.Errorf("RatioCell(%+v) = %q, expected %q", tt.ratio, result, tt.expected)
			}
		})
	}
}
