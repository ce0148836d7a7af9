package fleet

import (
	"context"
	"math"
	"testing"

	"stratosim/internal/domain/models"
	"stratosim/internal/engine/navigator"
	"stratosim/internal/engine/wind"
	"stratosim/pkg/randx"
)

func newOrchestrator() *Orchestrator {
	return New(navigator.New(wind.New()))
}

func TestRevisitFormula(t *testing.T) {
	o := newOrchestrator()

	m := o.Revisit(50, 20, 1000, 1, 0)
	// 1000 km2 / (50 km * 20 km/h) = 1 hour.
	if m.RevisitTimeHours != 1.0 {
		t.Fatalf("expected 1.0 h revisit, got %v", m.RevisitTimeHours)
	}
	if m.CoverageGapsPerDay != 23.0 {
		t.Fatalf("expected 23 gaps/day, got %v", m.CoverageGapsPerDay)
	}
	if m.MaxGapDurationHours != 1.0 || m.AverageGapDurationHours != 0.5 {
		t.Fatalf("unexpected gap durations: %+v", m)
	}
}

func TestRevisitZeroRateIsInfinite(t *testing.T) {
	o := newOrchestrator()
	m := o.Revisit(0, 20, 1000, 1, 0)
	if !math.IsInf(m.RevisitTimeHours, 1) {
		t.Fatalf("expected infinite revisit, got %v", m.RevisitTimeHours)
	}
	if m.CoverageGapsPerDay != 0 {
		t.Fatalf("expected no gap estimate, got %v", m.CoverageGapsPerDay)
	}
}

func TestRevisitOffNadirWidensSwath(t *testing.T) {
	o := newOrchestrator()
	nadir := o.Revisit(50, 20, 1000, 1, 0)
	slewed := o.Revisit(50, 20, 1000, 1, 30)
	if slewed.RevisitTimeHours >= nadir.RevisitTimeHours {
		t.Fatalf("off-nadir pointing should shorten revisit: %v vs %v",
			slewed.RevisitTimeHours, nadir.RevisitTimeHours)
	}
}

func TestRevisitMorePlatformsFaster(t *testing.T) {
	o := newOrchestrator()
	one := o.Revisit(50, 20, 5000, 1, 0)
	three := o.Revisit(50, 20, 5000, 3, 0)
	if three.RevisitTimeHours >= one.RevisitTimeHours {
		t.Fatalf("bigger fleet should revisit faster: %v vs %v",
			three.RevisitTimeHours, one.RevisitTimeHours)
	}
}

func TestOverprovisioningFloorAndMonotonicity(t *testing.T) {
	if f := Overprovisioning(0, 365, 0.95); f != 1.0 {
		t.Fatalf("zero drift on a year mission should floor at 1.0, got %v", f)
	}

	prev := 0.0
	for _, p := range []float64{0, 0.1, 0.5, 1, 2} {
		f := Overprovisioning(p, 7, 0.95)
		if f < prev {
			t.Fatalf("factor decreased at drift prob %v: %v < %v", p, f, prev)
		}
		prev = f
	}
}

func fleetParams(n int) models.FleetParams {
	return models.FleetParams{
		TargetLat:   35,
		TargetLon:   -106,
		AOIRadiusKm: 50,
		MissionDays: 2,
		Month:       6,
		NPlatforms:  n,
		Band:        models.AltitudeBand{MinKm: 18, MaxKm: 25},
	}
}

func TestCoverageAggregates(t *testing.T) {
	o := newOrchestrator()

	res, err := o.Coverage(context.Background(), fleetParams(3), randx.New(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NPlatforms != 3 {
		t.Fatalf("expected 3 platforms, got %d", res.NPlatforms)
	}
	if res.ServiceAvailabilityPercent < 0 || res.ServiceAvailabilityPercent > 100 {
		t.Fatalf("availability out of range: %v", res.ServiceAvailabilityPercent)
	}
	if res.AverageRevisitHours != 8 {
		t.Fatalf("expected 8 h average revisit for 3 platforms, got %v", res.AverageRevisitHours)
	}
	if want := int(math.Ceil(float64(res.TotalDriftEvents) / 3)); res.ReplacementLaunchesNeeded != want {
		t.Fatalf("expected %d replacements, got %d", want, res.ReplacementLaunchesNeeded)
	}
	if res.OverprovisioningFactor < 1.0 {
		t.Fatalf("overprovisioning below floor: %v", res.OverprovisioningFactor)
	}
}

func TestCoverageZeroPlatformsGuard(t *testing.T) {
	o := newOrchestrator()
	res, err := o.Coverage(context.Background(), fleetParams(0), randx.New(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NPlatforms != 1 {
		t.Fatalf("expected fleet of 1, got %d", res.NPlatforms)
	}
}

func TestCoverageReplaysFromSeed(t *testing.T) {
	o := newOrchestrator()

	a, err := o.Coverage(context.Background(), fleetParams(4), randx.New(77))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := o.Coverage(context.Background(), fleetParams(4), randx.New(77))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("same seed diverged across parallel runs:\n%+v\n%+v", a, b)
	}
}

func TestRecommendStopsAtTarget(t *testing.T) {
	o := newOrchestrator()

	p := fleetParams(1)
	p.AOIRadiusKm = 2000 // trivially coverable

	rec, err := o.Recommend(context.Background(), p, 0.5, 5, randx.New(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RecommendedFleetSize != 1 {
		t.Fatalf("easy AOI should need one platform, got %d", rec.RecommendedFleetSize)
	}
	if !rec.MeetsTarget {
		t.Fatal("expected target met")
	}
}

func TestRecommendKeepsLargestWhenTargetUnmet(t *testing.T) {
	o := newOrchestrator()

	p := fleetParams(1)
	p.AOIRadiusKm = 1 // hopeless

	rec, err := o.Recommend(context.Background(), p, 0.99, 3, randx.New(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MeetsTarget {
		t.Fatal("1 km AOI should not hit 99% availability")
	}
	if rec.RecommendedFleetSize != 3 {
		t.Fatalf("expected largest simulated fleet 3, got %d", rec.RecommendedFleetSize)
	}
}
