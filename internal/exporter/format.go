package exporter

import (
	"fmt"
)

// formatFloat formats a float64 value for CSV output with 4 decimal places
// so statistics like means and quantiles keep useful precision.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
