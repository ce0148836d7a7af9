// Package fleet sizes multi-platform constellations. Platforms drift out
// of the area of interest over time, so continuous service needs spares:
// the leaky-bucket model converts observed drift rates into an
// overprovisioning factor.
package fleet

import (
	"context"
	"math"

	"golang.org/x/exp/rand"

	"stratosim/internal/domain/models"
	"stratosim/internal/domain/service"
	"stratosim/internal/worker"
	"stratosim/pkg/randx"
)

const (
	// Replacements are launched a day before the predicted drift-out.
	replacementLeadTimeHours = 24.0
)

// Orchestrator aggregates single-platform station-keeping runs into fleet
// metrics.
type Orchestrator struct {
	keeper  service.StationKeeper
	workers int
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithWorkers caps the number of concurrent platform simulations.
// Zero means one per CPU.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) { o.workers = n }
}

func New(keeper service.StationKeeper, opts ...Option) *Orchestrator {
	o := &Orchestrator{keeper: keeper}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Revisit computes how often a point in the AOI gets imaged given the
// sensor swath and the platform ground speed.
func (o *Orchestrator) Revisit(swathKm, speedKmh, aoiAreaKm2 float64, n int, offNadirDeg float64) models.RevisitMetrics {
	// Off-nadir pointing widens the usable swath; 30 deg buys about 1.5x.
	effectiveSwath := swathKm * (1 + offNadirDeg/60)

	coverageRate := effectiveSwath * speedKmh * float64(max(1, n))

	revisit := math.Inf(1)
	if coverageRate > 0 {
		revisit = aoiAreaKm2 / coverageRate
	}

	gapsPerDay := 0.0
	if revisit < 24 {
		gapsPerDay = math.Max(0, 24/revisit-float64(n))
	}

	return models.RevisitMetrics{
		RevisitTimeHours:        round2(revisit),
		CoverageGapsPerDay:      round1(gapsPerDay),
		MaxGapDurationHours:     round2(revisit / float64(max(1, n))),
		AverageGapDurationHours: round2(revisit / float64(max(1, n*2))),
	}
}

// Overprovisioning converts an observed drift rate into the spare-platform
// multiple needed to hold the target availability, plus a scheduling buffer
// for the replacement lead time.
func Overprovisioning(driftProbabilityPerDay float64, missionDays int, targetAvailability float64) float64 {
	requiredMultiple := 1 + driftProbabilityPerDay/(1-targetAvailability)
	schedulingBuffer := 1 + replacementLeadTimeHours/(float64(missionDays)*24)

	return round2(math.Max(1.0, requiredMultiple*schedulingBuffer))
}

// Coverage simulates every platform of the fleet over the mission and
// aggregates availability. Platforms start staggered around the AOI and
// run concurrently; each gets its own derived RNG stream so the aggregate
// is identical no matter how the runs interleave.
func (o *Orchestrator) Coverage(ctx context.Context, p models.FleetParams, rng *rand.Rand) (models.FleetSimulationResult, error) {
	n := max(1, p.NPlatforms)
	missionHours := float64(p.MissionDays) * 24
	base := rng.Uint64()

	results, err := worker.Map(ctx, n, o.workers, func(ctx context.Context, i int) (models.StationKeepingResult, error) {
		offsetRad := (360 / float64(n)) * float64(i) * math.Pi / 180
		radialDeg := p.AOIRadiusKm * 0.5 / 111

		return o.keeper.Simulate(ctx, models.StationKeepingParams{
			StartLat:          p.TargetLat + radialDeg*math.Cos(offsetRad),
			StartLon:          p.TargetLon + radialDeg*math.Sin(offsetRad),
			TargetLat:         p.TargetLat,
			TargetLon:         p.TargetLon,
			AOIRadiusKm:       p.AOIRadiusKm,
			MissionHours:      missionHours,
			Month:             p.Month,
			Band:              p.Band,
			InitialAltitudeKm: p.Band.MidKm(),
			TimeStepHours:     1,
		}, randx.Derive(base, i))
	})
	if err != nil {
		return models.FleetSimulationResult{}, err
	}

	totalDriftEvents := 0
	totalOnTarget := 0.0
	for _, r := range results {
		totalDriftEvents += r.DriftEvents
		totalOnTarget += r.TimeOnTargetHours
	}

	availability := totalOnTarget / (missionHours * float64(n)) * 100

	driftPerDay := 0.0
	if p.MissionDays > 0 {
		driftPerDay = float64(totalDriftEvents) / (float64(p.MissionDays) * float64(n))
	}
	overprov := Overprovisioning(driftPerDay, p.MissionDays, 0.95)

	return models.FleetSimulationResult{
		NPlatforms:                 n,
		OverprovisioningFactor:     overprov,
		ServiceAvailabilityPercent: round1(availability),
		AverageRevisitHours:        24 / float64(n),
		TotalDriftEvents:           totalDriftEvents,
		ReplacementLaunchesNeeded:  int(math.Ceil(float64(totalDriftEvents) / float64(n))),
		MissionCostMultiplier:      overprov,
	}, nil
}

// Recommend grows the fleet one platform at a time and stops at the first
// size meeting the availability target. If none does within maxPlatforms
// the largest simulated fleet is returned with MeetsTarget false.
func (o *Orchestrator) Recommend(ctx context.Context, p models.FleetParams, targetAvailability float64, maxPlatforms int, rng *rand.Rand) (models.FleetRecommendation, error) {
	var best models.FleetSimulationResult

	for n := 1; n <= max(1, maxPlatforms); n++ {
		p.NPlatforms = n
		result, err := o.Coverage(ctx, p, rng)
		if err != nil {
			return models.FleetRecommendation{}, err
		}
		best = result
		if result.ServiceAvailabilityPercent >= targetAvailability*100 {
			break
		}
	}

	return models.FleetRecommendation{
		RecommendedFleetSize:        best.NPlatforms,
		ExpectedAvailabilityPercent: best.ServiceAvailabilityPercent,
		OverprovisioningFactor:      best.OverprovisioningFactor,
		MeetsTarget:                 best.ServiceAvailabilityPercent >= targetAvailability*100,
		SimulationDetails:           best,
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
