// Package navigator implements the altitude control loop for station
// keeping. The platform has no lateral propulsion: it holds position by
// hopping between wind layers, trading pump energy for favorable drift.
package navigator

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"stratosim/internal/domain/models"
	"stratosim/internal/domain/service"
	"stratosim/internal/engine/wind"
)

const (
	// Vertical rates, limited by pump capacity going up and controlled
	// venting coming down.
	climbRateMS   = 0.5
	descentRateMS = 0.8

	pumpPowerW     = 50.0
	avionicsPowerW = 15.0

	lookaheadHours = 2.0

	// Altitude deltas under half a layer are not worth the pump time.
	holdThresholdKm = 0.5
)

// Navigator drives altitude decisions against a wind field.
type Navigator struct {
	field service.WindField
}

func New(field service.WindField) *Navigator {
	return &Navigator{field: field}
}

// Decide evaluates every altitude layer inside the platform band: predict
// the drift over the lookahead window at each layer and pick the one that
// leaves the platform closest to the target. Predictions sample gust noise
// from rng, so the same seed replays the same decision.
func (n *Navigator) Decide(ctx context.Context, p models.DecisionParams, rng *rand.Rand) (models.NavigationDecision, error) {
	if err := ctx.Err(); err != nil {
		return models.NavigationDecision{}, err
	}

	currentDistance := Haversine(p.Lat, p.Lon, p.TargetLat, p.TargetLon)

	band := models.AltitudeBand{
		MinKm: math.Max(wind.MinLayerKm, p.Band.MinKm),
		MaxKm: math.Min(wind.MaxLayerKm, p.Band.MaxKm),
	}

	bestAlt := math.NaN()
	bestDistanceAfter := math.Inf(1)
	bestDriftKm := 0.0

	for _, alt := range wind.Layers {
		if alt < band.MinKm || alt > band.MaxKm {
			continue
		}
		w := n.field.Vector(p.Lat, p.Lon, alt, p.Month, rng)
		newLat, newLon, driftKm := n.field.Drift(p.Lat, p.Lon, w, lookaheadHours)

		distanceAfter := Haversine(newLat, newLon, p.TargetLat, p.TargetLon)
		if distanceAfter < bestDistanceAfter {
			bestDistanceAfter = distanceAfter
			bestAlt = alt
			bestDriftKm = driftKm
		}
	}

	if math.IsNaN(bestAlt) {
		return models.NavigationDecision{}, fmt.Errorf("band [%.1f, %.1f] km: %w", p.Band.MinKm, p.Band.MaxKm, wind.ErrNoViableAltitude)
	}

	altitudeChange := bestAlt - p.AltitudeKm
	action := models.ActionHold
	timeToComplete := 0.0
	energyCost := 0.0

	switch {
	case math.Abs(altitudeChange) < holdThresholdKm:
	case altitudeChange > 0:
		action = models.ActionClimb
		timeToComplete = altitudeChange * 1000 / climbRateMS
		energyCost = pumpPowerW * timeToComplete / 3600
	default:
		action = models.ActionDescend
		timeToComplete = math.Abs(altitudeChange) * 1000 / descentRateMS
		energyCost = pumpPowerW * timeToComplete / 3600
	}

	willStay := bestDistanceAfter <= p.AOIRadiusKm

	w := n.field.Vector(p.Lat, p.Lon, bestAlt, p.Month, rng)

	status := "OK"
	if !willStay {
		status = "DRIFT EVENT!"
	}
	reasoning := fmt.Sprintf(
		"Current: %.1fkm, dist=%.1fkm. Best: %.1fkm -> predicted dist=%.1fkm. %s",
		p.AltitudeKm, currentDistance, bestAlt, bestDistanceAfter, status,
	)

	return models.NavigationDecision{
		CurrentAltitudeKm:  p.AltitudeKm,
		TargetAltitudeKm:   bestAlt,
		AltitudeChangeKm:   altitudeChange,
		Action:             action,
		TimeToCompleteS:    timeToComplete,
		EnergyCostWh:       round2(energyCost),
		ExpectedDriftKm:    bestDriftKm,
		ExpectedHeadingDeg: w.TravelHeadingDeg(),
		WillStayInAOI:      willStay,
		Reasoning:          reasoning,
	}, nil
}

// Simulate runs the time-stepped station-keeping loop: decide, maneuver,
// drift, score. Time on target and repositioning are accounted in whole
// steps, and every step burns avionics power on top of any pump energy.
func (n *Navigator) Simulate(ctx context.Context, p models.StationKeepingParams, rng *rand.Rand) (models.StationKeepingResult, error) {
	step := p.TimeStepHours
	if step <= 0 {
		step = 1
	}

	lat, lon := p.StartLat, p.StartLon
	alt := p.InitialAltitudeKm

	var (
		energyWh         float64
		onTargetHours    float64
		repositioningHrs float64
		driftEvents      int
		altitudeChanges  int
	)
	trajectory := make([]models.TrajectoryPoint, 0, int(p.MissionHours/step)+1)

	for t := 0.0; t < p.MissionHours; t += step {
		if err := ctx.Err(); err != nil {
			return models.StationKeepingResult{}, err
		}

		decision, err := n.Decide(ctx, models.DecisionParams{
			Lat:         lat,
			Lon:         lon,
			AltitudeKm:  alt,
			TargetLat:   p.TargetLat,
			TargetLon:   p.TargetLon,
			AOIRadiusKm: p.AOIRadiusKm,
			Month:       p.Month,
			Band:        p.Band,
		}, rng)
		if err != nil {
			return models.StationKeepingResult{}, err
		}

		if decision.Action != models.ActionHold {
			altitudeChanges++
			energyWh += decision.EnergyCostWh
			alt = decision.TargetAltitudeKm
		}

		w := n.field.Vector(lat, lon, alt, p.Month, rng)
		newLat, newLon, _ := n.field.Drift(lat, lon, w, step)

		distance := Haversine(newLat, newLon, p.TargetLat, p.TargetLon)
		inAOI := distance <= p.AOIRadiusKm
		if inAOI {
			onTargetHours += step
		} else {
			repositioningHrs += step
			driftEvents++
		}

		energyWh += avionicsPowerW * step

		trajectory = append(trajectory, models.TrajectoryPoint{
			THours:     t,
			Lat:        round4(newLat),
			Lon:        round4(newLon),
			AltKm:      alt,
			DistanceKm: round2(distance),
			InAOI:      inAOI,
		})

		lat, lon = newLat, newLon
	}

	coverage := 0.0
	if p.MissionHours > 0 {
		coverage = onTargetHours / p.MissionHours * 100
	}
	coverage = math.Max(0, math.Min(100, coverage))

	return models.StationKeepingResult{
		TotalHours:           p.MissionHours,
		TimeOnTargetHours:    round2(onTargetHours),
		TimeRepositioningHrs: round2(repositioningHrs),
		DriftEvents:          driftEvents,
		TotalEnergyUsedWh:    round2(energyWh),
		AltitudeChanges:      altitudeChanges,
		CoveragePercent:      round1(coverage),
		Trajectory:           trajectory,
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
