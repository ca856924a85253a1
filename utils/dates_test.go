package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"one week apart", d(2030, time.January, 1), d(2030, time.January, 8), 7},
		{"same day", d(2030, time.January, 1), d(2030, time.January, 1), 0},
		{"reversed is negative", d(2030, time.January, 8), d(2030, time.January, 1), -7},
		{"across month boundary", d(2030, time.January, 25), d(2030, time.February, 9), 15},
		{"time of day is ignored", time.Date(2030, time.January, 1, 23, 0, 0, 0, time.UTC), time.Date(2030, time.January, 8, 1, 0, 0, 0, time.UTC), 7},
	}

	for _, tt := range tests {
		if got := DaysBetween(tt.a, tt.b); got != tt.want {
			t.Fatalf("%s: DaysBetween() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 210.0, want: 210.00},
		{in: 24.0, want: 24.00},
		{in: 10.344, want: 10.34},
		{in: 10.346, want: 10.35},
		{in: 10.125, want: 10.13}, // exact half rounds up
		{in: 0, want: 0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Fatalf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
