package flight

import (
	"math"
	"testing"

	"stratosim/internal/domain/models"
)

func TestVolatility(t *testing.T) {
	cases := []struct {
		lat   float64
		month int
		want  float64
	}{
		{0, 7, 0.1},    // equator summer: base only
		{45, 7, 0.5},   // mid-latitude summer
		{45, 1, 0.75},  // mid-latitude northern winter
		{70, 1, 0.6},   // polar northern winter
		{-45, 7, 0.75}, // mid-latitude southern winter
		{-45, 1, 0.5},  // mid-latitude southern summer
		{89, 12, 0.6},  // capped below 0.9
	}
	for _, c := range cases {
		if got := Volatility(c.lat, c.month); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("Volatility(%v, %d) = %v, want %v", c.lat, c.month, got, c.want)
		}
	}
}

func TestVolatilityCap(t *testing.T) {
	for lat := -89.0; lat <= 89; lat += 7 {
		for month := 1; month <= 12; month++ {
			if v := Volatility(lat, month); v > 0.9 || v < 0 {
				t.Fatalf("Volatility(%v, %d) = %v out of [0, 0.9]", lat, month, v)
			}
		}
	}
}

func TestMeanWindTracksVolatility(t *testing.T) {
	calm := MeanWindSpeedKmh(0, 7)
	rough := MeanWindSpeedKmh(45, 1)
	if calm >= rough {
		t.Fatalf("winter mid-latitude %v should outblow equatorial summer %v", rough, calm)
	}
	if math.Abs(calm-14.5) > 1e-9 {
		t.Fatalf("expected 14.5 km/h at volatility 0.1, got %v", calm)
	}
}

func TestQuickLookFailureProbClamp(t *testing.T) {
	// Wide box, calm site: failure probability floors at 0.01.
	easy := QuickLook(0, 7, 1000, models.CapabilityEnhanced)
	if easy.StationKeepingProb != 0.99 {
		t.Fatalf("expected 0.99 success floor case, got %v", easy.StationKeepingProb)
	}

	// Tiny box in winter mid-latitudes: capped at 0.8 failure.
	hard := QuickLook(45, 1, 1, models.CapabilityStandard)
	if hard.StationKeepingProb != 0.2 {
		t.Fatalf("expected 0.2 success at cap, got %v", hard.StationKeepingProb)
	}
}

func TestQuickLookEnhancedPlatformDoesBetter(t *testing.T) {
	std := QuickLook(45, 1, 30, models.CapabilityStandard)
	enh := QuickLook(45, 1, 30, models.CapabilityEnhanced)

	if enh.StationKeepingProb < std.StationKeepingProb {
		t.Fatalf("enhanced platform %v should not trail standard %v",
			enh.StationKeepingProb, std.StationKeepingProb)
	}
	if enh.ACSCorrectionSpeedKmh != 25 || std.ACSCorrectionSpeedKmh != 15 {
		t.Fatalf("correction speeds moved: %v / %v", enh.ACSCorrectionSpeedKmh, std.ACSCorrectionSpeedKmh)
	}
}

func TestQuickLookDriftWarning(t *testing.T) {
	// Winter mid-latitude mean wind (43.75 km/h) exceeds both classes.
	ql := QuickLook(45, 1, 50, models.CapabilityStandard)
	if !ql.DriftWarning || ql.DriftRisk != "Critical" {
		t.Fatalf("expected critical drift warning, got %+v", ql)
	}

	// Equatorial summer (14.5 km/h) is within the enhanced envelope.
	calm := QuickLook(0, 7, 50, models.CapabilityEnhanced)
	if calm.DriftWarning {
		t.Fatalf("unexpected drift warning: %+v", calm)
	}
}

func TestQuickLookFleetSizeCeil(t *testing.T) {
	ql := QuickLook(45, 1, 30, models.CapabilityStandard)
	if ql.FleetSizeRecommended != int(math.Ceil(ql.OverprovisioningFactor)) {
		t.Fatalf("fleet size %d does not ceil K %v", ql.FleetSizeRecommended, ql.OverprovisioningFactor)
	}
	if ql.FleetSizeRecommended < 1 {
		t.Fatalf("fleet size below 1: %d", ql.FleetSizeRecommended)
	}
}
