// Package flight implements the closed-form station-keeping screen. It
// answers "can this platform hold that box" from climatology alone, without
// running the time-stepped loop, and feeds the quoting pipeline.
package flight

import (
	"math"

	"stratosim/internal/domain/models"
)

const standardCorrectionSpeedKmh = 15.0

// Volatility scores wind variability at the site, 0 to 0.9. High latitudes
// in winter sit on the polar vortex edge and score worst; the equator stays
// comparatively calm through QBO phases.
func Volatility(lat float64, month int) float64 {
	winter := month == 12 || month == 1 || month == 2
	if lat <= 0 {
		winter = month == 6 || month == 7 || month == 8
	}

	absLat := math.Abs(lat)

	latFactor := 0.0
	switch {
	case absLat > 20 && absLat < 60:
		latFactor = 0.4
	case absLat >= 60:
		// Inside the vortex can be stable, the edge is rough.
		latFactor = 0.3
	}

	volatility := 0.1 + latFactor
	if winter {
		volatility *= 1.5
	}

	return math.Min(0.9, volatility)
}

// MeanWindSpeedKmh maps volatility onto a climatological mean wind:
// 0.1 scores about 14 km/h, 0.9 about 50.
func MeanWindSpeedKmh(lat float64, month int) float64 {
	return 10 + Volatility(lat, month)*45
}

// QuickLook sizes the station-keeping problem for a platform class holding
// a box of the given radius.
func QuickLook(lat float64, month int, targetRadiusKm float64, capability models.Capability) models.FlightQuickLook {
	volatility := Volatility(lat, month)
	meanWind := MeanWindSpeedKmh(lat, month)
	correctionSpeed := capability.CorrectionSpeedKmh()

	driftWarning := meanWind > correctionSpeed
	driftExcess := math.Max(0, (meanWind-correctionSpeed)/correctionSpeed)

	maneuverability := correctionSpeed / standardCorrectionSpeedKmh
	effectiveVolatility := volatility / maneuverability

	// A 50 km box is the reference easy case; tighter boxes scale the
	// failure odds up.
	radiusDifficulty := 50.0 / math.Max(10, targetRadiusKm)

	failureProb := effectiveVolatility * radiusDifficulty
	failureProb = math.Min(0.8, math.Max(0.01, failureProb))

	kFactor := 1 + failureProb*1.5 + driftExcess*0.5

	risk := "Low"
	switch {
	case driftWarning:
		risk = "Critical"
	case failureProb > 0.4:
		risk = "High"
	case failureProb > 0.2:
		risk = "Moderate"
	}

	return models.FlightQuickLook{
		WindVolatilityScore:    round2(volatility),
		MeanWindSpeedKmh:       round1(meanWind),
		ACSCorrectionSpeedKmh:  round1(correctionSpeed),
		StationKeepingProb:     round2(1 - failureProb),
		OverprovisioningFactor: round2(kFactor),
		DriftWarning:           driftWarning,
		DriftRisk:              risk,
		FleetSizeRecommended:   int(math.Ceil(kFactor)),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
