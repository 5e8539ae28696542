// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"fmt"
	"strings"

	"github.com/Glennk62/lisa-tach/internal/forecast"
	"github.com/Glennk62/lisa-tach/pkg/format"
	"github.com/Glennk62/lisa-tach/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// undefinedRatio is what an undefined per-unit cost renders as in tables.
const undefinedRatio = "n/a"

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(table forecast.Table) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Cost forecast %d-%d ---\n", firstYear(table), lastYear(table))
	fmt.Println(strings.Join(forecast.Headers, " | "))
	for _, row := range table {
		cells := []string{
			fmt.Sprintf("%d", row.Year),
			p.Sprintf("%d", mathutil.Truncate(row.Customers)),
			p.Sprintf("%d", mathutil.Truncate(row.Vehicles)),
			p.Sprintf("%d", mathutil.Truncate(row.Users)),
			p.Sprintf("%d", mathutil.Truncate(row.Compute)),
			p.Sprintf("%d", mathutil.Truncate(row.TransactionalDB)),
			p.Sprintf("%d", mathutil.Truncate(row.Analytics)),
			p.Sprintf("%d", mathutil.Truncate(row.Streaming)),
			p.Sprintf("%d", mathutil.Truncate(row.Monitoring)),
			p.Sprintf("%d", mathutil.Truncate(row.Auth)),
			p.Sprintf("%d", mathutil.Truncate(row.SupportTools)),
			p.Sprintf("%d", mathutil.Truncate(row.SupportStaff)),
			p.Sprintf("%d", mathutil.Truncate(row.DevOpsStaff)),
			p.Sprintf("%d", mathutil.Truncate(row.TotalInfrastructure)),
			p.Sprintf("%d", mathutil.Truncate(row.TotalStaff)),
			p.Sprintf("%d", mathutil.Truncate(row.GrandTotal)),
			RatioCell(row.PerVehicle),
			RatioCell(row.PerUser),
			RatioCell(row.PerCustomer),
		}
		fmt.Println(strings.Join(cells, " | "))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(table forecast.Table) {
	fmt.Print(CsvString(table))
}

// CsvString renders the forecast table as CSV with quoted cells. Populations
// and monetary amounts are truncated to whole units; ratios keep two
// decimals; undefined ratios are left empty.
func CsvString(table forecast.Table) string {
	var b strings.Builder

	quoted := make([]string, len(forecast.Headers))
	for i, header := range forecast.Headers {
		quoted[i] = fmt.Sprintf("%q", header)
	}
	b.WriteString(strings.Join(quoted, ","))
	b.WriteString("\n")

	for _, row := range table {
		cells := []string{
			fmt.Sprintf(`"%d"`, row.Year),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Customers)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Vehicles)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Users)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Compute)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.TransactionalDB)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Analytics)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Streaming)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Monitoring)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.Auth)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.SupportTools)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.SupportStaff)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.DevOpsStaff)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.TotalInfrastructure)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.TotalStaff)),
			fmt.Sprintf(`"%d"`, mathutil.Truncate(row.GrandTotal)),
			csvRatio(row.PerVehicle),
			csvRatio(row.PerUser),
			csvRatio(row.PerCustomer),
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}

	return b.String()
}

// RatioCell formats a per-unit cost for tabular display.
func RatioCell(ratio forecast.UnitCost) string {
	if !ratio.Defined {
		return undefinedRatio
	}
	return format.Ratio(ratio.Value)
}

func csvRatio(ratio forecast.UnitCost) string {
	if !ratio.Defined {
		return `""`
	}
	return fmt.Sprintf(`"%.2f"`, ratio.Value)
}

func firstYear(table forecast.Table) int {
	if len(table) == 0 {
		return 0
	}
	return table[0].Year
}

func lastYear(table forecast.Table) int {
	if len(table) == 0 {
		return 0
	}
	return table[len(table)-1].Year
}
