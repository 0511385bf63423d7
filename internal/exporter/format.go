package exporter

import (
	"strconv"
)

// formatFloat formats an aggregated value for CSV output using the
// shortest representation that round-trips, so quantities like 4 stay "4"
// and prices like 15.25 stay "15.25".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
