// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/Glennk62/lisa-tach/internal/forecast"
)

// RowForYear finds the row for a given year in a forecast table.
// Returns a pointer to the row if found, nil otherwise.
func RowForYear(table forecast.Table, year int) *forecast.Row {
	for i := range table {
		if table[i].Year == year {
			return &table[i]
		}
	}
	return nil
}
