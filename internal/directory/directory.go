// Package directory holds the pure transformations applied to a fetched roster.
package directory

import (
	"slices"
	"strings"
	"time"

	"employee-list/internal/models"
)

// Sort returns a copy of employees ordered by email, byte-wise and
// case-sensitive. Ties keep their input order.
func Sort(employees []models.Employee) []models.Employee {
	sorted := slices.Clone(employees)
	slices.SortStableFunc(sorted, func(a, b models.Employee) int {
		return strings.Compare(a.Email, b.Email)
	})
	return sorted
}

// FormatCSV renders one "firstName;surname;email" line per employee, each
// terminated by a newline. Fields are written as-is: no header, no quoting.
func FormatCSV(employees []models.Employee) string {
	var b strings.Builder
	for _, e := range employees {
		b.WriteString(e.Row())
		b.WriteByte('\n')
	}
	return b.String()
}

// SuggestedFileName is the name pre-filled in the save dialog.
func SuggestedFileName(now time.Time) string {
	return "WT employee list " + now.Local().Format("2006-01-02") + ".csv"
}
