// Package payload computes altitude-dependent sensor performance. Station
// keeping moves the platform through the band, so resolution and swath are
// moving targets: GSD grows linearly with altitude while swath widens.
package payload

import (
	"math"

	"stratosim/internal/domain/models"
)

const (
	// Sensor specs are quoted at this altitude.
	ReferenceAltitudeKm = 20.0

	MaxOffNadirDeg = 45.0
)

// GSD scales the quoted ground sample distance to the current altitude.
func GSD(baseGSDM, baseAltitudeKm, currentAltitudeKm float64) float64 {
	if baseAltitudeKm <= 0 {
		baseAltitudeKm = ReferenceAltitudeKm
	}
	return round3(baseGSDM * currentAltitudeKm / baseAltitudeKm)
}

// Swath is the imaged width at altitude. Off-nadir pointing stretches the
// reachable ground footprint.
func Swath(fovDeg, altitudeKm, offNadirDeg float64) float64 {
	halfFOVRad := fovDeg / 2 * math.Pi / 180
	base := 2 * altitudeKm * math.Tan(halfFOVRad)
	return round2(base * (1 + offNadirDeg/90*0.5))
}

// QualityFactor is the cosine falloff of image quality with off-nadir
// angle, saturating at 60 degrees.
func QualityFactor(offNadirDeg float64) float64 {
	angle := math.Min(math.Abs(offNadirDeg), 60) * math.Pi / 180
	return round2(math.Cos(angle))
}

// Performance bundles the full imaging picture at one operating point.
func Performance(baseGSDM, fovDeg, altitudeKm, groundSpeedKmh, offNadirDeg float64) models.ImagingPerformance {
	swath := Swath(fovDeg, altitudeKm, offNadirDeg)

	return models.ImagingPerformance{
		GSDM:             GSD(baseGSDM, ReferenceAltitudeKm, altitudeKm),
		SwathWidthKm:     swath,
		CoverageRateKm2H: round1(swath * groundSpeedKmh),
		QualityFactor:    QualityFactor(offNadirDeg),
		AltitudeKm:       altitudeKm,
		OffNadirDeg:      offNadirDeg,
	}
}

// MissionCoverage folds the altitude band and the station-keeping score
// into mission-level imaging numbers. The 5% haircut covers imaging
// overhead during altitude maneuvers.
func MissionCoverage(baseGSDM, fovDeg float64, band models.AltitudeBand, avgGroundSpeedKmh, stationKeepingCoveragePct float64) models.CoverageAnalysis {
	avgAlt := band.MidKm()

	return models.CoverageAnalysis{
		EffectiveGSDM:            GSD(baseGSDM, ReferenceAltitudeKm, avgAlt),
		MinGSDM:                  GSD(baseGSDM, ReferenceAltitudeKm, band.MinKm),
		MaxGSDM:                  GSD(baseGSDM, ReferenceAltitudeKm, band.MaxKm),
		AverageSwathKm:           Swath(fovDeg, avgAlt, 0),
		RepositioningLossPercent: round1(100 - stationKeepingCoveragePct),
		EffectiveCoveragePercent: round1(stationKeepingCoveragePct * 0.95),
	}
}

// AOIArea is the circular area of interest in km2.
func AOIArea(radiusKm float64) float64 {
	return math.Pi * radiusKm * radiusKm
}

// FullCoverageTimeHours estimates one complete sweep of the AOI.
func FullCoverageTimeHours(aoiRadiusKm, swathWidthKm, groundSpeedKmh float64) float64 {
	rate := swathWidthKm * groundSpeedKmh
	if rate <= 0 {
		return math.Inf(1)
	}
	return round2(AOIArea(aoiRadiusKm) / rate)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
