// Package montecarlo runs repeated randomized mission scenarios to turn
// single-run simulation output into reliability distributions. Quotes and
// feasibility calls are made off these statistics, never off a best-case
// single run.
package montecarlo

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"stratosim/internal/domain/models"
	"stratosim/internal/domain/service"
	"stratosim/internal/worker"
	"stratosim/pkg/randx"
	"stratosim/pkg/stats"
)

const (
	DefaultIterations  = 50
	seasonalIterations = 30

	// Launch is scrubbed above this surface wind.
	maxLaunchSurfaceWindMS = 8.0

	// Scenarios are capped at a week of simulated time at a coarse step.
	maxScenarioHours  = 168.0
	scenarioStepHours = 2.0
)

type surfaceWind struct {
	meanMS float64
	stdMS  float64
}

// surfaceWindClimate is the monthly surface wind at the launch site:
// windy in winter, calm midsummer.
var surfaceWindClimate = map[int]surfaceWind{
	1:  {6.0, 2.5},
	2:  {5.5, 2.3},
	3:  {5.0, 2.0},
	4:  {4.5, 1.8},
	5:  {4.0, 1.5},
	6:  {3.5, 1.2},
	7:  {3.5, 1.2},
	8:  {3.8, 1.3},
	9:  {4.2, 1.5},
	10: {5.0, 2.0},
	11: {5.5, 2.3},
	12: {6.0, 2.5},
}

var defaultSurfaceWind = surfaceWind{5.0, 2.0}

// Simulator is the Monte-Carlo risk engine.
type Simulator struct {
	keeper  service.StationKeeper
	workers int
}

// Option configures the Simulator.
type Option func(*Simulator)

// WithWorkers caps the number of concurrent iterations. Zero means one
// per CPU.
func WithWorkers(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

func New(keeper service.StationKeeper, opts ...Option) *Simulator {
	s := &Simulator{keeper: keeper}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the scenario batch and aggregates the outcome statistics.
// Iterations fan out in parallel on derived RNG streams and are collected
// in index order, so results replay exactly from the seed.
func (s *Simulator) Run(ctx context.Context, p models.MonteCarloParams, rng *rand.Rand) (models.MonteCarloResult, error) {
	iterations := p.NIterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	base := rng.Uint64()

	scenarios, err := worker.Map(ctx, iterations, s.workers, func(ctx context.Context, i int) (models.ScenarioResult, error) {
		return s.scenario(ctx, p, randx.Derive(base, i))
	})
	if err != nil {
		return models.MonteCarloResult{}, err
	}

	reliabilities := make([]float64, len(scenarios))
	driftEvents := make([]float64, len(scenarios))
	launches := 0
	for i, r := range scenarios {
		reliabilities[i] = r.ServiceAvailability
		driftEvents[i] = float64(r.DriftEvents)
		if r.LaunchSuccess {
			launches++
		}
	}

	meanReliability := stats.Mean(reliabilities)
	stdReliability := stats.PopStdDev(reliabilities)
	meanDrifts := stats.Mean(driftEvents)
	stdDrifts := stats.PopStdDev(driftEvents)
	abortProb := 1 - float64(launches)/float64(len(scenarios))

	overprov := 1 + stdReliability/50 + meanDrifts/(float64(p.MissionDays)*2)

	return models.MonteCarloResult{
		NIterations:                 iterations,
		ServiceReliabilityPercent:   round1(meanReliability),
		ServiceReliabilityStd:       round2(stdReliability),
		ServiceReliabilityP5:        round1(stats.Percentile(reliabilities, 0.05)),
		ServiceReliabilityP95:       round1(stats.Percentile(reliabilities, 0.95)),
		ExpectedDriftEvents:         round1(meanDrifts),
		ExpectedDriftEventsStd:      round2(stdDrifts),
		LaunchAbortProbabilityPct:   round1(abortProb * 100),
		RecommendedOverprovisioning: round2(math.Max(1.0, overprov)),
		MissionFeasibility:          feasibility(meanReliability, abortProb),
		RiskLevel:                   riskLevel(meanReliability, stdReliability, abortProb),
		ConfidenceLevel:             confidence(iterations),
	}, nil
}

// Seasonal runs the batch for the hemisphere's deep winter and midsummer
// months under otherwise identical parameters.
func (s *Simulator) Seasonal(ctx context.Context, p models.MonteCarloParams, rng *rand.Rand) (models.SeasonalComparison, error) {
	winterMonth, summerMonth := 1, 7
	if p.Lat <= 0 {
		winterMonth, summerMonth = 7, 1
	}

	p.NIterations = seasonalIterations

	p.Month = winterMonth
	winter, err := s.Run(ctx, p, rng)
	if err != nil {
		return models.SeasonalComparison{}, err
	}

	p.Month = summerMonth
	summer, err := s.Run(ctx, p, rng)
	if err != nil {
		return models.SeasonalComparison{}, err
	}

	return models.SeasonalComparison{Winter: winter, Summer: summer}, nil
}

func (s *Simulator) scenario(ctx context.Context, p models.MonteCarloParams, rng *rand.Rand) (models.ScenarioResult, error) {
	if !s.launchWindowOpen(p.Lat, p.Month, rng) {
		return models.ScenarioResult{LaunchSuccess: false}, nil
	}

	simHours := math.Min(float64(p.MissionDays)*24, maxScenarioHours)

	result, err := s.keeper.Simulate(ctx, models.StationKeepingParams{
		StartLat:          p.Lat,
		StartLon:          p.Lon,
		TargetLat:         p.Lat,
		TargetLon:         p.Lon,
		AOIRadiusKm:       p.AOIRadiusKm,
		MissionHours:      simHours,
		Month:             p.Month,
		Band:              p.Band,
		InitialAltitudeKm: p.Band.MidKm(),
		TimeStepHours:     scenarioStepHours,
	}, rng)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	return models.ScenarioResult{
		ServiceAvailability: result.CoveragePercent,
		DriftEvents:         result.DriftEvents,
		CoveragePercent:     result.CoveragePercent,
		EnergyUsedWh:        result.TotalEnergyUsedWh,
		LaunchSuccess:       true,
	}, nil
}

// launchWindowOpen samples the surface wind at the launch site against the
// scrub limit. Higher latitudes see more variable surface conditions.
func (s *Simulator) launchWindowOpen(lat float64, month int, rng *rand.Rand) bool {
	climate, ok := surfaceWindClimate[month]
	if !ok {
		climate = defaultSurfaceWind
	}

	latFactor := 1 + math.Abs(lat)/90*0.3
	wind := distuv.Normal{Mu: climate.meanMS * latFactor, Sigma: climate.stdMS, Src: rng}

	return wind.Rand() <= maxLaunchSurfaceWindMS
}

func riskLevel(meanReliability, stdReliability, abortProb float64) string {
	score := (100 - meanReliability) + stdReliability*2 + abortProb*100

	switch {
	case score < 30:
		return "Low"
	case score < 60:
		return "Medium"
	case score < 90:
		return "High"
	default:
		return "Critical"
	}
}

func feasibility(meanReliability, abortProb float64) string {
	switch {
	case meanReliability >= 80 && abortProb < 0.3:
		return "Highly Feasible"
	case meanReliability >= 60 && abortProb < 0.5:
		return "Feasible"
	case meanReliability >= 40:
		return "Marginal"
	default:
		return "Not Recommended"
	}
}

func confidence(iterations int) string {
	switch {
	case iterations >= 50:
		return "High"
	case iterations >= 20:
		return "Medium"
	default:
		return "Low"
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
