// Package export serializes a forecast and its assumptions into a two-sheet
// xlsx workbook offered to the user as a download.
package export

import (
	"fmt"
	"io"

	"github.com/Glennk62/lisa-tach/internal/forecast"
	"github.com/Glennk62/lisa-tach/pkg/constants"
	"github.com/Glennk62/lisa-tach/pkg/mathutil"
	"github.com/xuri/excelize/v2"
)

// assumptionRow pairs an Assumptions sheet label with its value.
type assumptionRow struct {
	Label string
	Value interface{}
}

// Write serializes the assumptions and forecast table into an xlsx workbook
// with a "Forecast" and an "Assumptions" sheet and writes it to w.
func Write(w io.Writer, a forecast.Assumptions, table forecast.Table) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), constants.ForecastSheetName); err != nil {
		return fmt.Errorf("failed to name forecast sheet: %w", err)
	}
	if _, err := f.NewSheet(constants.AssumptionsSheetName); err != nil {
		return fmt.Errorf("failed to create assumptions sheet: %w", err)
	}

	if err := writeForecastSheet(f, table); err != nil {
		return err
	}
	if err := writeAssumptionsSheet(f, a); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeForecastSheet(f *excelize.File, table forecast.Table) error {
	if err := f.SetSheetRow(constants.ForecastSheetName, "A1", &forecast.Headers); err != nil {
		return fmt.Errorf("failed to write forecast headers: %w", err)
	}

	for i, row := range table {
		cells := forecastCells(row)
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell coordinates: %w", err)
		}
		if err := f.SetSheetRow(constants.ForecastSheetName, anchor, &cells); err != nil {
			return fmt.Errorf("failed to write forecast row %d: %w", row.Year, err)
		}
	}
	return nil
}

// forecastCells mirrors forecast.Headers ordering. Populations and monetary
// amounts are truncated to whole units; undefined ratios become empty cells.
func forecastCells(row forecast.Row) []interface{} {
	return []interface{}{
		row.Year,
		mathutil.Truncate(row.Customers),
		mathutil.Truncate(row.Vehicles),
		mathutil.Truncate(row.Users),
		mathutil.Truncate(row.Compute),
		mathutil.Truncate(row.TransactionalDB),
		mathutil.Truncate(row.Analytics),
		mathutil.Truncate(row.Streaming),
		mathutil.Truncate(row.Monitoring),
		mathutil.Truncate(row.Auth),
		mathutil.Truncate(row.SupportTools),
		mathutil.Truncate(row.SupportStaff),
		mathutil.Truncate(row.DevOpsStaff),
		mathutil.Truncate(row.TotalInfrastructure),
		mathutil.Truncate(row.TotalStaff),
		mathutil.Truncate(row.GrandTotal),
		ratioCell(row.PerVehicle),
		ratioCell(row.PerUser),
		ratioCell(row.PerCustomer),
	}
}

func ratioCell(ratio forecast.UnitCost) interface{} {
	if !ratio.Defined {
		return nil
	}
	return mathutil.Round(ratio.Value)
}

func writeAssumptionsSheet(f *excelize.File, a forecast.Assumptions) error {
	header := []interface{}{"Assumption", "Value"}
	if err := f.SetSheetRow(constants.AssumptionsSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write assumptions headers: %w", err)
	}

	for i, row := range assumptionRows(a) {
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell coordinates: %w", err)
		}
		cells := []interface{}{row.Label, row.Value}
		if err := f.SetSheetRow(constants.AssumptionsSheetName, anchor, &cells); err != nil {
			return fmt.Errorf("failed to write assumption %q: %w", row.Label, err)
		}
	}
	return nil
}

// assumptionRows lists the scale and inflation assumptions first, in the
// dashboard's order, followed by the nine cost rates.
func assumptionRows(a forecast.Assumptions) []assumptionRow {
	return []assumptionRow{
		{"Start Year", a.StartYear},
		{"End Year", a.EndYear},
		{"Starting Customers", a.CustomersStart},
		{"Annual Customer Growth (%)", a.CustomersGrowthPct},
		{"Vehicles per Customer", a.VehiclesPerCustomer},
		{"Riders per Vehicle", a.RidersPerVehicle},
		{"Infrastructure Inflation (%)", a.InfraInflationPct},
		{"Staff Inflation (%)", a.StaffInflationPct},
		{"Compute & Kubernetes per Vehicle", a.ComputePerVehicle},
		{"Transactional DB per Vehicle", a.DatabasePerVehicle},
		{"Analytics (BigQuery) per Vehicle", a.AnalyticsPerVehicle},
		{"Streaming per Vehicle", a.StreamingPerVehicle},
		{"Monitoring per Vehicle", a.MonitoringPerVehicle},
		{"Authentication (Firebase) per User", a.AuthPerUser},
		{"Support Tools (Intercom) per User", a.SupportToolsPerUser},
		{"Support Staff per Customer (€)", a.SupportStaffPerCustomer},
		{"DevOps/Infra Engineer per Customer (€)", a.DevOpsPerCustomer},
	}
}
