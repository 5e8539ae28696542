// Package forecast defines the data structures related to a cost forecast and
// includes the function for computing one from a set of scale assumptions.
package forecast

import (
	"fmt"

	"github.com/Glennk62/lisa-tach/pkg/mathutil"
	"go.uber.org/zap"
)

// Assumptions holds the scale and rate inputs for one forecast run. All cost
// rates are euro-per-unit values before inflation.
type Assumptions struct {
	StartYear int `json:"startYear"`
	EndYear   int `json:"endYear"`

	CustomersStart      int     `json:"customersStart"`
	CustomersGrowthPct  float64 `json:"customersGrowthPct"`
	VehiclesPerCustomer int     `json:"vehiclesPerCustomer"`
	RidersPerVehicle    int     `json:"ridersPerVehicle"`

	// Infrastructure rates, per vehicle
	ComputePerVehicle    float64 `json:"computePerVehicle"`
	DatabasePerVehicle   float64 `json:"databasePerVehicle"`
	AnalyticsPerVehicle  float64 `json:"analyticsPerVehicle"`
	StreamingPerVehicle  float64 `json:"streamingPerVehicle"`
	MonitoringPerVehicle float64 `json:"monitoringPerVehicle"`

	// Infrastructure rates, per user
	AuthPerUser         float64 `json:"authPerUser"`
	SupportToolsPerUser float64 `json:"supportToolsPerUser"`

	// Staffing rates, per customer
	SupportStaffPerCustomer float64 `json:"supportStaffPerCustomer"`
	DevOpsPerCustomer       float64 `json:"devOpsPerCustomer"`

	InfraInflationPct float64 `json:"infraInflationPct"`
	StaffInflationPct float64 `json:"staffInflationPct"`
}

// UnitCost is a per-unit cost ratio. Defined is false when the corresponding
// population is zero, in which case Value is meaningless; consumers must not
// treat an undefined ratio as a number.
type UnitCost struct {
	Value   float64
	Defined bool
}

// Row holds the forecast for a single year. Populations are kept as computed,
// without truncation; truncation to whole units happens only at display and
// export time.
type Row struct {
	Year int

	Customers float64
	Vehicles  float64
	Users     float64

	// Infrastructure cost components
	Compute         float64
	TransactionalDB float64
	Analytics       float64
	Streaming       float64
	Monitoring      float64
	Auth            float64
	SupportTools    float64

	// Staff cost components
	SupportStaff float64
	DevOpsStaff  float64

	TotalInfrastructure float64
	TotalStaff          float64
	GrandTotal          float64

	PerVehicle  UnitCost
	PerUser     UnitCost
	PerCustomer UnitCost
}

// Table is the ordered forecast, one row per year from StartYear through
// EndYear inclusive; row index i always holds year StartYear + i. A table is
// regenerated whole on every assumption change, never mutated in place.
type Table []Row

// Headers lists the forecast table columns in display and export order.
var Headers = []string{
	"Year",
	"Customers",
	"Vehicles",
	"Users",
	"Compute & Kubernetes",
	"Transactional DB",
	"Analytics (BigQuery)",
	"Streaming",
	"Monitoring",
	"Auth (Firebase)",
	"Support Tools (Intercom)",
	"Support Staff",
	"DevOps/Infra Engineers",
	"Total Infrastructure",
	"Total Staff",
	"Grand Total",
	"€ per Vehicle",
	"€ per User",
	"€ per Customer",
}

// InvalidRangeError indicates the requested year range is inverted and no
// table can be produced.
type InvalidRangeError struct {
	StartYear int
	EndYear   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid year range: end year %d precedes start year %d", e.EndYear, e.StartYear)
}

// Compute produces the forecast table for the given assumptions. It is a pure
// function of its inputs; the only failure mode is an inverted year range.
func Compute(logger *zap.Logger, a Assumptions) (Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if a.EndYear < a.StartYear {
		return nil, &InvalidRangeError{StartYear: a.StartYear, EndYear: a.EndYear}
	}

	nYears := a.EndYear - a.StartYear + 1
	table := make(Table, 0, nYears)

	growth := mathutil.GrowthMultiplier(a.CustomersGrowthPct)
	customers := float64(a.CustomersStart)

	for i := 0; i < nYears; i++ {
		if i > 0 {
			customers *= growth
		}
		vehicles := customers * float64(a.VehiclesPerCustomer)
		users := vehicles * float64(a.RidersPerVehicle)

		// Year StartYear itself carries no inflation; both multipliers are 1
		// at offset 0 and compound annually from there.
		infra := mathutil.InflationFactor(a.InfraInflationPct, i)
		staff := mathutil.InflationFactor(a.StaffInflationPct, i)

		row := Row{
			Year:      a.StartYear + i,
			Customers: customers,
			Vehicles:  vehicles,
			Users:     users,

			Compute:         a.ComputePerVehicle * vehicles * infra,
			TransactionalDB: a.DatabasePerVehicle * vehicles * infra,
			Analytics:       a.AnalyticsPerVehicle * vehicles * infra,
			Streaming:       a.StreamingPerVehicle * vehicles * infra,
			Monitoring:      a.MonitoringPerVehicle * vehicles * infra,
			Auth:            a.AuthPerUser * users * infra,
			SupportTools:    a.SupportToolsPerUser * users * infra,

			SupportStaff: a.SupportStaffPerCustomer * customers * staff,
			DevOpsStaff:  a.DevOpsPerCustomer * customers * staff,
		}

		row.TotalInfrastructure = row.Compute + row.TransactionalDB + row.Analytics +
			row.Streaming + row.Monitoring + row.Auth + row.SupportTools
		row.TotalStaff = row.SupportStaff + row.DevOpsStaff
		row.GrandTotal = row.TotalInfrastructure + row.TotalStaff

		row.PerVehicle = unitCost(row.GrandTotal, vehicles)
		row.PerUser = unitCost(row.GrandTotal, users)
		row.PerCustomer = unitCost(row.GrandTotal, customers)

		table = append(table, row)
	}

	logger.Debug("forecast computed",
		zap.String("op", "forecast.Compute"),
		zap.Int("startYear", a.StartYear),
		zap.Int("endYear", a.EndYear),
		zap.Int("years", nYears),
	)

	return table, nil
}

// unitCost guards the division so a zero population yields an undefined
// ratio instead of an infinity leaking into formatting.
func unitCost(total, population float64) UnitCost {
	if population == 0 {
		return UnitCost{}
	}
	return UnitCost{Value: total / population, Defined: true}
}
