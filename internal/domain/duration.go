package domain

import (
	"math"
	"strconv"
	"time"
)

// Duration tier sizes in minutes.
const (
	MinutesPerHour = 60
	MinutesPerDay  = 1440
	MinutesPerWeek = 10080
)

// FormatDuration renders a duration in minutes using at most two tiers,
// largest first: "2w 3d", "1d 4h", "5h 10m" or "45m". A lower tier is omitted
// when it is zero ("3w", "2h"). Fractional minutes are rounded only when the
// duration is under an hour; above that, leftover minutes are truncated.
// Negative input is treated as zero.
func FormatDuration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}

	weeks := int(minutes / MinutesPerWeek)
	days := int(minutes / MinutesPerDay)
	hours := int(minutes / MinutesPerHour)

	switch {
	case weeks > 0:
		return twoTier(weeks, "w", days-weeks*7, "d")
	case days > 0:
		return twoTier(days, "d", hours-days*24, "h")
	case hours > 0:
		return twoTier(hours, "h", int(minutes)-hours*MinutesPerHour, "m")
	default:
		return strconv.Itoa(int(math.Round(minutes))) + "m"
	}
}

func twoTier(major int, majorUnit string, minor int, minorUnit string) string {
	s := strconv.Itoa(major) + majorUnit
	if minor == 0 {
		return s
	}
	return s + " " + strconv.Itoa(minor) + minorUnit
}

// FormatStops renders a stop count: "No stops", "1 stop", "3 stops".
func FormatStops(stops int) string {
	switch {
	case stops > 1:
		return strconv.Itoa(stops) + " stops"
	case stops == 1:
		return "1 stop"
	default:
		return "No stops"
	}
}

// FormatGap renders the time between two instants with FormatDuration.
func FormatGap(start, end time.Time) string {
	return FormatDuration(end.Sub(start).Minutes())
}
