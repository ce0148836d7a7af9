package payload

import (
	"math"
	"testing"

	"stratosim/internal/domain/models"
)

func TestGSDScalesWithAltitude(t *testing.T) {
	if got := GSD(1.0, 20, 20); got != 1.0 {
		t.Fatalf("GSD at reference altitude should be unchanged, got %v", got)
	}
	if got := GSD(1.0, 20, 25); got != 1.25 {
		t.Fatalf("expected 1.25 m at 25 km, got %v", got)
	}
	if got := GSD(0.5, 0, 20); got != 0.5 {
		t.Fatalf("zero base altitude should fall back to reference, got %v", got)
	}
}

func TestSwathGeometry(t *testing.T) {
	// 2 * 20 * tan(10 deg) = 7.05 km.
	if got := Swath(20, 20, 0); math.Abs(got-7.05) > 0.01 {
		t.Fatalf("expected ~7.05 km nadir swath, got %v", got)
	}

	nadir := Swath(20, 20, 0)
	slewed := Swath(20, 20, 45)
	if math.Abs(slewed-nadir*1.25) > 0.02 {
		t.Fatalf("45 deg off-nadir should stretch swath 1.25x: %v vs %v", slewed, nadir)
	}
}

func TestQualityFactor(t *testing.T) {
	if QualityFactor(0) != 1.0 {
		t.Fatalf("nadir quality should be 1.0, got %v", QualityFactor(0))
	}
	if got := QualityFactor(45); math.Abs(got-0.71) > 1e-9 {
		t.Fatalf("expected 0.71 at 45 deg, got %v", got)
	}
	// Saturates at 60 deg.
	if QualityFactor(60) != QualityFactor(85) {
		t.Fatal("quality should saturate beyond 60 deg")
	}
	if QualityFactor(-30) != QualityFactor(30) {
		t.Fatal("quality should be symmetric in sign")
	}
}

func TestPerformanceCoverageRate(t *testing.T) {
	perf := Performance(1.0, 20, 20, 30, 0)
	if want := round1(perf.SwathWidthKm * 30); perf.CoverageRateKm2H != want {
		t.Fatalf("coverage rate %v does not match swath*speed %v", perf.CoverageRateKm2H, want)
	}
	if perf.AltitudeKm != 20 || perf.OffNadirDeg != 0 {
		t.Fatalf("operating point not echoed: %+v", perf)
	}
}

func TestMissionCoverage(t *testing.T) {
	band := models.AltitudeBand{MinKm: 18, MaxKm: 25}
	c := MissionCoverage(1.0, 20, band, 25, 80)

	if c.MinGSDM >= c.MaxGSDM {
		t.Fatalf("GSD should worsen with altitude: min=%v max=%v", c.MinGSDM, c.MaxGSDM)
	}
	if c.EffectiveGSDM != GSD(1.0, ReferenceAltitudeKm, band.MidKm()) {
		t.Fatalf("effective GSD not taken at band midpoint: %v", c.EffectiveGSDM)
	}
	if c.RepositioningLossPercent != 20 {
		t.Fatalf("expected 20%% repositioning loss, got %v", c.RepositioningLossPercent)
	}
	if c.EffectiveCoveragePercent != 76 {
		t.Fatalf("expected 76%% effective coverage, got %v", c.EffectiveCoveragePercent)
	}
}

func TestFullCoverageTime(t *testing.T) {
	// pi * 50^2 / (10 * 25) = 31.42 h.
	got := FullCoverageTimeHours(50, 10, 25)
	if math.Abs(got-31.42) > 0.01 {
		t.Fatalf("expected ~31.42 h, got %v", got)
	}
	if !math.IsInf(FullCoverageTimeHours(50, 0, 25), 1) {
		t.Fatal("zero swath should never finish")
	}
}
