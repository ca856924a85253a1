package utils

import (
	"math"
	"time"
)

// DateOnly strips the time-of-day component so rentals compare in whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return DateOnly(time.Now())
}

// DaysBetween returns the number of whole days from a to b (negative when b
// precedes a).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// Round2 rounds a monetary amount to 2 decimal places, half up.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
