package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"stratosim/internal/domain/models"
	"stratosim/internal/engine/fleet"
	"stratosim/internal/engine/montecarlo"
	"stratosim/internal/engine/navigator"
	"stratosim/internal/engine/wind"
	"stratosim/internal/service/cache"
	"stratosim/pkg/config"
	"stratosim/pkg/metrics"
)

// memRunStore is an in-memory RunStore for tests.
type memRunStore struct {
	mu   sync.Mutex
	runs []*models.SimulationRun
}

func (m *memRunStore) Init(ctx context.Context) error { return nil }

func (m *memRunStore) Store(ctx context.Context, run *models.SimulationRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

func (m *memRunStore) Recent(ctx context.Context, limit int) ([]*models.SimulationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.runs) {
		limit = len(m.runs)
	}
	out := make([]*models.SimulationRun, limit)
	for i := 0; i < limit; i++ {
		out[i] = m.runs[len(m.runs)-1-i]
	}
	return out, nil
}

func (m *memRunStore) Get(ctx context.Context, id string) (*models.SimulationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.runs {
		if r.RunID == id {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memRunStore) Health(ctx context.Context) error { return nil }
func (m *memRunStore) Close() error                     { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Simulation.MaxIterations = 200
	cfg.Simulation.MaxMissionDays = 30
	cfg.Simulation.MaxFleetPlatforms = 10
	cfg.Simulation.DefaultMinAltKm = 18
	cfg.Simulation.DefaultMaxAltKm = 25
	cfg.Cache.TTL.WindProfile = time.Minute
	cfg.Cache.TTL.Seasonal = time.Minute
	return cfg
}

func newTestService(t *testing.T, store *memRunStore) *SimulationService {
	t.Helper()

	field := wind.New()
	keeper := navigator.New(field)
	rec := metrics.NewWithRegistry(prometheus.NewRegistry())

	svc := NewSimulationService(
		field,
		keeper,
		fleet.New(keeper),
		montecarlo.New(keeper),
		nil,
		nil,
		cache.NewTTLCache(),
		testConfig(),
		rec,
		testLogger(t),
	)
	if store != nil {
		svc.runs = store
	}
	return svc
}

func TestWindVectorSteadyIgnoresSeed(t *testing.T) {
	svc := newTestService(t, nil)
	req := models.WindVectorRequest{Lat: 40, Lon: -100, AltitudeKm: 20, Month: 1}

	a := svc.WindVector(context.Background(), req)
	b := svc.WindVector(context.Background(), req)
	if a.Wind != b.Wind {
		t.Fatalf("steady wind not deterministic: %+v vs %+v", a.Wind, b.Wind)
	}
	if a.Seed != 0 {
		t.Errorf("steady query should not report a seed, got %d", a.Seed)
	}
}

func TestWindVectorNoisyReplay(t *testing.T) {
	svc := newTestService(t, nil)
	req := models.WindVectorRequest{Lat: 40, Lon: -100, AltitudeKm: 20, Month: 1, Noise: true, Seed: 7}

	a := svc.WindVector(context.Background(), req)
	b := svc.WindVector(context.Background(), req)
	if a.Wind != b.Wind {
		t.Fatalf("seeded noisy wind not replayable: %+v vs %+v", a.Wind, b.Wind)
	}
	if a.Seed != 7 {
		t.Errorf("seed = %d, want 7", a.Seed)
	}
}

func TestWindProfileCached(t *testing.T) {
	svc := newTestService(t, nil)
	req := models.WindProfileRequest{Lat: 52, Lon: 13, Month: 7}

	first := svc.WindProfile(context.Background(), req)
	second := svc.WindProfile(context.Background(), req)
	if len(first) != 8 {
		t.Fatalf("profile has %d layers, want 8", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached profile differs: %v vs %v", first, second)
	}
}

func TestOptimalAltitudeEmptyBand(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.OptimalAltitude(context.Background(), models.OptimalAltitudeRequest{
		Lat: 0, Lon: 0, TargetHeadingDeg: 90, Month: 6,
		MinAltKm: 20.2, MaxAltKm: 20.8,
	})
	if !errors.Is(err, wind.ErrNoViableAltitude) {
		t.Fatalf("expected no-viable-altitude, got %v", err)
	}
}

func TestStationKeepingRecordsRun(t *testing.T) {
	store := &memRunStore{}
	svc := newTestService(t, store)

	out, err := svc.StationKeeping(context.Background(), models.StationKeepingRequest{
		StartLat: 34, StartLon: -118, TargetLat: 34, TargetLon: -118,
		AOIRadiusKm: 50, MissionHours: 12, Month: 4,
		MinAltKm: 18, MaxAltKm: 25, InitialAltKm: 20, TimeStepHours: 1,
		Seed: 42,
	})
	if err != nil {
		t.Fatalf("station keeping: %v", err)
	}
	if out.RunID == "" {
		t.Fatalf("expected run id")
	}
	if out.Seed != 42 {
		t.Errorf("seed = %d, want 42", out.Seed)
	}
	if out.Result.CoveragePercent < 0 || out.Result.CoveragePercent > 100 {
		t.Errorf("coverage out of range: %v", out.Result.CoveragePercent)
	}

	stored, err := svc.Run(context.Background(), out.RunID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if stored.Kind != "station_keeping" {
		t.Errorf("kind = %q", stored.Kind)
	}
	if stored.AvailabilityPercent != out.Result.CoveragePercent {
		t.Errorf("stored availability %v != result %v",
			stored.AvailabilityPercent, out.Result.CoveragePercent)
	}
}

func TestFleetCoverageLimits(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.FleetCoverage(context.Background(), models.FleetCoverageRequest{
		TargetLat: 0, TargetLon: 0, AOIRadiusKm: 50,
		MissionDays: 1, Month: 6, NPlatforms: 99,
		MinAltKm: 18, MaxAltKm: 25,
	})
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected limit error for platforms, got %v", err)
	}

	_, err = svc.FleetCoverage(context.Background(), models.FleetCoverageRequest{
		TargetLat: 0, TargetLon: 0, AOIRadiusKm: 50,
		MissionDays: 365, Month: 6, NPlatforms: 2,
		MinAltKm: 18, MaxAltKm: 25,
	})
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected limit error for days, got %v", err)
	}
}

func TestMonteCarloSeedReplay(t *testing.T) {
	svc := newTestService(t, nil)
	req := models.MonteCarloRequest{
		Lat: 35, Lon: 139, AOIRadiusKm: 50, MissionDays: 2, Month: 9,
		MinAltKm: 18, MaxAltKm: 25, NIterations: 10, Seed: 99,
	}

	a, err := svc.MonteCarlo(context.Background(), req)
	if err != nil {
		t.Fatalf("monte carlo: %v", err)
	}
	b, err := svc.MonteCarlo(context.Background(), req)
	if err != nil {
		t.Fatalf("monte carlo: %v", err)
	}
	if a.Result != b.Result {
		t.Fatalf("seeded batch not replayable:\n%+v\n%+v", a.Result, b.Result)
	}
}

func TestSeasonalCachedWhenUnseeded(t *testing.T) {
	svc := newTestService(t, nil)
	req := models.SeasonalRequest{Lat: 48, Lon: 2, AOIRadiusKm: 50, MissionDays: 2}

	a, err := svc.Seasonal(context.Background(), req)
	if err != nil {
		t.Fatalf("seasonal: %v", err)
	}
	b, err := svc.Seasonal(context.Background(), req)
	if err != nil {
		t.Fatalf("seasonal: %v", err)
	}
	// The second unseeded call must come out of the cache, seed included.
	if a.Seed != b.Seed || a.Result != b.Result {
		t.Fatalf("expected cached seasonal result")
	}
}

func TestRunsWithHistoryDisabled(t *testing.T) {
	svc := newTestService(t, nil)

	runs, err := svc.Runs(context.Background(), 10)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty history, got %d", len(runs))
	}
	if _, err := svc.Run(context.Background(), "x"); err == nil {
		t.Fatalf("expected error with history disabled")
	}
}
