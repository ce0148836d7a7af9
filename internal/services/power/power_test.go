package power

import (
	"math"
	"testing"
)

func TestDayNightHoursEquator(t *testing.T) {
	day, night := DayNightHours(0, 80) // near equinox
	if math.Abs(day-12) > 0.2 || math.Abs(night-12) > 0.2 {
		t.Fatalf("equator near equinox: day=%v night=%v", day, night)
	}
}

func TestDayNightHoursSeasons(t *testing.T) {
	summerDay, _ := DayNightHours(60, 172) // late June
	winterDay, _ := DayNightHours(60, 355) // late December
	if summerDay <= winterDay {
		t.Fatalf("60N summer day %v should outlast winter day %v", summerDay, winterDay)
	}
}

func TestDayNightHoursPolar(t *testing.T) {
	day, night := DayNightHours(85, 172)
	if day != 24 || night != 0 {
		t.Fatalf("85N midsummer should be polar day, got day=%v night=%v", day, night)
	}

	day, night = DayNightHours(85, 355)
	if day != 0 || night != 24 {
		t.Fatalf("85N midwinter should be polar night, got day=%v night=%v", day, night)
	}
}

func TestCheckFeasibilityPowerPositive(t *testing.T) {
	// 100 W night bus, 5000 Wh battery, 30 W payload: easy.
	res := CheckFeasibility(30, 6, 100, 5000, 30)
	if !res.IsFeasible || !res.SurvivesNight {
		t.Fatalf("expected feasible mission, got %+v", res)
	}
	if res.DutyCyclePercent != 100 || res.Status != "Power Positive" {
		t.Fatalf("expected full duty cycle, got %+v", res)
	}
	if res.MarginWh <= 0 {
		t.Fatalf("expected positive margin, got %v", res.MarginWh)
	}
}

func TestCheckFeasibilityPowerLimited(t *testing.T) {
	// 40 W night bus minus 15 W avionics leaves 25 W for a 50 W payload.
	res := CheckFeasibility(30, 6, 40, 10000, 50)
	if res.SurvivesNight {
		t.Fatalf("expected night shortfall, got %+v", res)
	}
	if res.DutyCyclePercent != 50 {
		t.Fatalf("expected 50%% duty cycle, got %v", res.DutyCyclePercent)
	}
	if res.Status != "Reduced Duty Cycle" || !res.IsFeasible {
		t.Fatalf("unexpected status: %+v", res)
	}
}

func TestCheckFeasibilityBatteryLimited(t *testing.T) {
	// Bus power fine, battery too small to bridge the night.
	res := CheckFeasibility(30, 12, 200, 100, 50)
	if res.SurvivesNight {
		t.Fatalf("expected battery shortfall, got %+v", res)
	}
	if res.DutyCyclePercent >= 50 {
		t.Fatalf("expected critical duty cycle, got %v", res.DutyCyclePercent)
	}
	if res.Status != "Critical Power Shortage" || res.IsFeasible {
		t.Fatalf("unexpected status: %+v", res)
	}
	if res.MarginWh >= 0 {
		t.Fatalf("expected negative margin, got %v", res.MarginWh)
	}
}

func TestCheckFeasibilityZeroPayload(t *testing.T) {
	res := CheckFeasibility(30, 6, 10, 5000, 0)
	// 10 W bus cannot even cover avionics, and a zero-power payload gets a
	// zero duty cycle rather than a divide-by-zero.
	if res.DutyCyclePercent != 0 {
		t.Fatalf("expected 0%% duty cycle, got %v", res.DutyCyclePercent)
	}
}
