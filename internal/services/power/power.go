// Package power models the platform energy balance: solar day length at
// the site, battery depth of discharge, and the payload duty cycle that
// survives the night.
package power

import (
	"math"

	"stratosim/internal/domain/models"
)

const (
	avionicsPowerW = 15.0

	// Only 80% of the battery is usable without eating cycle life.
	usableDepthOfDischarge = 0.8
)

// DayNightHours computes day and night length at a latitude for a day of
// year with the standard sunrise-equation approximation. Polar day and
// night fall out of the clamp.
func DayNightHours(lat float64, dayOfYear int) (day, night float64) {
	declination := 23.44 * math.Sin((360.0/365.0)*(float64(dayOfYear)-81)*math.Pi/180)

	v := -math.Tan(lat*math.Pi/180) * math.Tan(declination*math.Pi/180)
	v = math.Max(-1, math.Min(1, v))
	hourAngle := math.Acos(v) * 180 / math.Pi

	day = 2 * hourAngle / 15
	return day, 24 - day
}

// CheckFeasibility runs the night-survival energy budget for a platform
// carrying a payload. If the platform cannot feed the payload all night the
// achievable duty cycle is reported instead of a flat failure.
func CheckFeasibility(lat float64, month int, platformNightPowerW, batteryCapacityWh, payloadPowerW float64) models.PowerAnalysis {
	dayOfYear := int(float64(month-1)*30.5 + 15)
	dayHours, nightHours := DayNightHours(lat, dayOfYear)

	totalNightPowerW := payloadPowerW + avionicsPowerW
	nightEnergyNeededWh := totalNightPowerW * nightHours
	usableBatteryWh := batteryCapacityWh * usableDepthOfDischarge

	powerSufficient := platformNightPowerW >= totalNightPowerW
	batterySufficient := usableBatteryWh >= nightEnergyNeededWh

	var dutyCycle float64
	switch {
	case !powerSufficient:
		if payloadPowerW > 0 {
			availableW := math.Max(0, platformNightPowerW-avionicsPowerW)
			dutyCycle = availableW / payloadPowerW * 100
		}
	case !batterySufficient:
		dutyCycle = 100
		if nightHours > 0 {
			achievableHours := usableBatteryWh / totalNightPowerW
			dutyCycle = achievableHours / nightHours * 100
		}
	default:
		dutyCycle = 100
	}
	dutyCycle = math.Max(0, math.Min(100, dutyCycle))

	status := "Critical Power Shortage"
	feasible := false
	switch {
	case dutyCycle >= 80:
		status = "Power Positive"
		feasible = true
	case dutyCycle >= 50:
		status = "Reduced Duty Cycle"
		feasible = true
	}

	return models.PowerAnalysis{
		IsFeasible:          feasible,
		SurvivesNight:       powerSufficient && batterySufficient,
		DutyCyclePercent:    round1(dutyCycle),
		DayHours:            round2(dayHours),
		NightHours:          round2(nightHours),
		NightEnergyNeededWh: round2(nightEnergyNeededWh),
		BatteryCapacityWh:   batteryCapacityWh,
		MarginWh:            round2(usableBatteryWh - nightEnergyNeededWh),
		Status:              status,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
