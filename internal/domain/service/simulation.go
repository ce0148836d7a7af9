package service

import (
	"context"

	"golang.org/x/exp/rand"

	"stratosim/internal/domain/models"
)

// WindField models the stratospheric wind as a function of position,
// altitude and season.
type WindField interface {
	Steady(lat, lon, altKm float64, month int) models.WindVector
	Vector(lat, lon, altKm float64, month int, rng *rand.Rand) models.WindVector
	Profile(lat, lon float64, month int) []models.WindVector
	OptimalAltitude(lat, lon, targetHeadingDeg float64, month int, band models.AltitudeBand) (altKm, headingErrDeg float64, err error)
	Drift(lat, lon float64, w models.WindVector, hours float64) (newLat, newLon, distanceKm float64)
}

// StationKeeper runs the altitude-control navigation loop.
type StationKeeper interface {
	Decide(ctx context.Context, p models.DecisionParams, rng *rand.Rand) (models.NavigationDecision, error)
	Simulate(ctx context.Context, p models.StationKeepingParams, rng *rand.Rand) (models.StationKeepingResult, error)
}

// FleetPlanner sizes and evaluates multi-platform constellations.
type FleetPlanner interface {
	Revisit(swathKm, speedKmh, aoiAreaKm2 float64, n int, offNadirDeg float64) models.RevisitMetrics
	Coverage(ctx context.Context, p models.FleetParams, rng *rand.Rand) (models.FleetSimulationResult, error)
	Recommend(ctx context.Context, p models.FleetParams, targetAvailability float64, maxPlatforms int, rng *rand.Rand) (models.FleetRecommendation, error)
}

// RiskAnalyzer estimates mission outcome distributions by repeated
// randomized simulation.
type RiskAnalyzer interface {
	Run(ctx context.Context, p models.MonteCarloParams, rng *rand.Rand) (models.MonteCarloResult, error)
	Seasonal(ctx context.Context, p models.MonteCarloParams, rng *rand.Rand) (models.SeasonalComparison, error)
}
