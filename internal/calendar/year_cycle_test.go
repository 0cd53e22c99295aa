package calendar

import (
	"testing"
	"time"
)

func TestGetYearCycle(t *testing.T) {
	tests := []struct {
		name       string
		date       Date
		wantYear   int
		wantCycle  int
		wantSunday string
	}{
		{"Advent 2024", d(2024, time.December, 1), 2024, Cycle1, "C"},
		{"before Advent 2024", d(2024, time.November, 15), 2023, Cycle2, "B"},
		{"Lent 2025", d(2025, time.March, 15), 2024, Cycle1, "C"},
		{"Advent 2025", d(2025, time.December, 15), 2025, Cycle2, "A"},
		{"Advent 2022", d(2022, time.November, 27), 2022, Cycle1, "A"},
		{"long ago", d(1900, time.June, 1), 1899, Cycle2, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LiturgicalYear(tt.date); got != tt.wantYear {
				t.Errorf("LiturgicalYear() = %d, want %d", got, tt.wantYear)
			}
			if got := GetYearCycle(tt.date); got != tt.wantCycle {
				t.Errorf("GetYearCycle() = %d, want %d", got, tt.wantCycle)
			}
			if got := SundayCycle(tt.date); got != tt.wantSunday {
				t.Errorf("SundayCycle() = %q, want %q", got, tt.wantSunday)
			}
		})
	}
}
