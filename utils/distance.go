package utils

import (
	"strconv"
)

// FormatNumber prints f with the fewest digits that represent it exactly: 15, 2.5
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// PresentableDistance formats a distance to the next station for display
func PresentableDistance(km float64) string {
	return FormatNumber(km) + " km"
}

// PresentableMinutes formats a duration or delay in minutes for display
func PresentableMinutes(min float64) string {
	return FormatNumber(min) + " min"
}
