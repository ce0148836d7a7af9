package navigator

import (
	"context"
	"errors"
	"math"
	"testing"

	"stratosim/internal/domain/models"
	"stratosim/internal/engine/wind"
	"stratosim/pkg/randx"
)

func TestHaversine(t *testing.T) {
	d := Haversine(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.1 {
		t.Fatalf("one degree at equator: expected ~111.19 km, got %v", d)
	}
	if Haversine(10, 20, 10, 20) != 0 {
		t.Fatal("identical points should be 0 km apart")
	}
	if math.Abs(Haversine(5, 5, 8, 9)-Haversine(8, 9, 5, 5)) > 1e-9 {
		t.Fatal("distance should be symmetric")
	}
}

func TestInitialBearing(t *testing.T) {
	if b := InitialBearing(0, 0, 0, 1); math.Abs(b-90) > 1e-9 {
		t.Fatalf("due east: expected 90, got %v", b)
	}
	if b := InitialBearing(0, 0, 1, 0); math.Abs(b) > 1e-9 {
		t.Fatalf("due north: expected 0, got %v", b)
	}
	if b := InitialBearing(0, 1, 0, 0); math.Abs(b-270) > 1e-9 {
		t.Fatalf("due west: expected 270, got %v", b)
	}
}

func decisionParams(band models.AltitudeBand, altKm float64) models.DecisionParams {
	return models.DecisionParams{
		Lat:         40,
		Lon:         -74,
		AltitudeKm:  altKm,
		TargetLat:   40,
		TargetLon:   -74,
		AOIRadiusKm: 50,
		Month:       6,
		Band:        band,
	}
}

func TestDecideHoldWithinThreshold(t *testing.T) {
	nav := New(wind.New())
	p := decisionParams(models.AltitudeBand{MinKm: 20, MaxKm: 20}, 20)

	d, err := nav.Decide(context.Background(), p, randx.New(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != models.ActionHold {
		t.Fatalf("expected hold, got %v", d.Action)
	}
	if d.TimeToCompleteS != 0 || d.EnergyCostWh != 0 {
		t.Fatalf("hold must be free, got t=%v e=%v", d.TimeToCompleteS, d.EnergyCostWh)
	}
}

func TestDecideClimbCost(t *testing.T) {
	nav := New(wind.New())
	p := decisionParams(models.AltitudeBand{MinKm: 25, MaxKm: 25}, 20)

	d, err := nav.Decide(context.Background(), p, randx.New(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != models.ActionClimb {
		t.Fatalf("expected climb, got %v", d.Action)
	}
	// 5 km at 0.5 m/s is 10000 s; 50 W over that is 138.89 Wh.
	if math.Abs(d.TimeToCompleteS-10000) > 1e-9 {
		t.Fatalf("expected 10000 s, got %v", d.TimeToCompleteS)
	}
	if math.Abs(d.EnergyCostWh-138.89) > 1e-9 {
		t.Fatalf("expected 138.89 Wh, got %v", d.EnergyCostWh)
	}
}

func TestDecideDescentIsFaster(t *testing.T) {
	nav := New(wind.New())
	p := decisionParams(models.AltitudeBand{MinKm: 18, MaxKm: 18}, 25)

	d, err := nav.Decide(context.Background(), p, randx.New(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != models.ActionDescend {
		t.Fatalf("expected descend, got %v", d.Action)
	}
	// 7 km at 0.8 m/s is 8750 s.
	if math.Abs(d.TimeToCompleteS-8750) > 1e-9 {
		t.Fatalf("expected 8750 s, got %v", d.TimeToCompleteS)
	}
}

func TestDecideEmptyBand(t *testing.T) {
	nav := New(wind.New())
	p := decisionParams(models.AltitudeBand{MinKm: 20.2, MaxKm: 20.8}, 20)

	_, err := nav.Decide(context.Background(), p, randx.New(1))
	if !errors.Is(err, wind.ErrNoViableAltitude) {
		t.Fatalf("expected ErrNoViableAltitude, got %v", err)
	}
}

func TestDecideReplaysFromSeed(t *testing.T) {
	nav := New(wind.New())
	p := decisionParams(models.AltitudeBand{MinKm: 18, MaxKm: 25}, 20)

	a, err := nav.Decide(context.Background(), p, randx.New(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := nav.Decide(context.Background(), p, randx.New(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("same seed produced different decisions:\n%+v\n%+v", a, b)
	}
}

func stationParams(aoiRadiusKm, hours float64) models.StationKeepingParams {
	return models.StationKeepingParams{
		StartLat:          35,
		StartLon:          -106,
		TargetLat:         35,
		TargetLon:         -106,
		AOIRadiusKm:       aoiRadiusKm,
		MissionHours:      hours,
		Month:             6,
		Band:              models.AltitudeBand{MinKm: 18, MaxKm: 25},
		InitialAltitudeKm: 20,
		TimeStepHours:     1,
	}
}

func TestSimulateZeroDuration(t *testing.T) {
	nav := New(wind.New())
	res, err := nav.Simulate(context.Background(), stationParams(50, 0), randx.New(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Trajectory) != 0 {
		t.Fatalf("expected empty trajectory, got %d points", len(res.Trajectory))
	}
	if res.CoveragePercent != 0 || res.TotalEnergyUsedWh != 0 {
		t.Fatalf("expected zeroed result, got %+v", res)
	}
}

func TestSimulateAccounting(t *testing.T) {
	nav := New(wind.New())
	res, err := nav.Simulate(context.Background(), stationParams(50, 24), randx.New(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Trajectory) != 24 {
		t.Fatalf("expected 24 trajectory points, got %d", len(res.Trajectory))
	}
	if res.CoveragePercent < 0 || res.CoveragePercent > 100 {
		t.Fatalf("coverage out of range: %v", res.CoveragePercent)
	}
	if got := res.TimeOnTargetHours + res.TimeRepositioningHrs; math.Abs(got-24) > 1e-9 {
		t.Fatalf("time accounting leaks: on=%v repo=%v", res.TimeOnTargetHours, res.TimeRepositioningHrs)
	}
	// Avionics alone burns 15 Wh per hour.
	if res.TotalEnergyUsedWh < 15*24 {
		t.Fatalf("energy %v below avionics floor", res.TotalEnergyUsedWh)
	}
	for i := 1; i < len(res.Trajectory); i++ {
		if res.Trajectory[i].THours <= res.Trajectory[i-1].THours {
			t.Fatal("trajectory not strictly time-ordered")
		}
	}
}

func TestSimulateEasierAOIScoresHigher(t *testing.T) {
	nav := New(wind.New())

	easy, err := nav.Simulate(context.Background(), stationParams(2000, 48), randx.New(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hard, err := nav.Simulate(context.Background(), stationParams(1, 48), randx.New(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if easy.CoveragePercent < hard.CoveragePercent {
		t.Fatalf("easy AOI %v%% below hard AOI %v%%", easy.CoveragePercent, hard.CoveragePercent)
	}
	if easy.CoveragePercent != 100 {
		t.Fatalf("2000 km AOI should give full coverage, got %v%%", easy.CoveragePercent)
	}
}

func TestSimulateReplaysFromSeed(t *testing.T) {
	nav := New(wind.New())

	a, err := nav.Simulate(context.Background(), stationParams(50, 24), randx.New(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := nav.Simulate(context.Background(), stationParams(50, 24), randx.New(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.CoveragePercent != b.CoveragePercent || a.TotalEnergyUsedWh != b.TotalEnergyUsedWh ||
		a.DriftEvents != b.DriftEvents || len(a.Trajectory) != len(b.Trajectory) {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
	for i := range a.Trajectory {
		if a.Trajectory[i] != b.Trajectory[i] {
			t.Fatalf("trajectory point %d diverged", i)
		}
	}
}

func TestSimulateCancellation(t *testing.T) {
	nav := New(wind.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := nav.Simulate(ctx, stationParams(50, 24), randx.New(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
