package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stratosim/internal/domain/models"
	domrepo "stratosim/internal/domain/repository"
	"stratosim/internal/domain/service"
	"stratosim/internal/service/cache"
	"stratosim/pkg/config"
	"stratosim/pkg/logger"
	"stratosim/pkg/metrics"
	"stratosim/pkg/randx"
)

// ErrLimitExceeded marks a request that asks for more work than the
// configured ceilings allow.
var ErrLimitExceeded = errors.New("limit exceeded")

// ErrHistoryDisabled is returned from run lookups when no store is wired.
var ErrHistoryDisabled = errors.New("run history disabled")

// SimulationService is the application entry point for every wind, navigation,
// fleet and risk operation. Engines stay pure; this layer owns seeds, caching,
// run history and metrics.
type SimulationService struct {
	field   service.WindField
	keeper  service.StationKeeper
	planner service.FleetPlanner
	risk    service.RiskAnalyzer

	// runs and events are nil when history or kafka is disabled.
	runs   domrepo.RunStore
	events domrepo.EventPublisher
	cache  cache.BytesCache
	cfg    *config.Config
	rec    *metrics.Recorder
	logger *logger.Logger
}

func NewSimulationService(
	field service.WindField,
	keeper service.StationKeeper,
	planner service.FleetPlanner,
	risk service.RiskAnalyzer,
	runs domrepo.RunStore,
	events domrepo.EventPublisher,
	byteCache cache.BytesCache,
	cfg *config.Config,
	rec *metrics.Recorder,
	lgr *logger.Logger,
) *SimulationService {
	return &SimulationService{
		field:   field,
		keeper:  keeper,
		planner: planner,
		risk:    risk,
		runs:    runs,
		events:  events,
		cache:   byteCache,
		cfg:     cfg,
		rec:     rec,
		logger:  lgr,
	}
}

// WindVectorResult carries the sampled vector together with the seed that
// produced it, so noisy samples can be replayed.
type WindVectorResult struct {
	Wind models.WindVector `json:"wind"`
	Seed uint64            `json:"seed,omitempty"`
}

func (s *SimulationService) WindVector(ctx context.Context, req models.WindVectorRequest) WindVectorResult {
	if !req.Noise {
		return WindVectorResult{Wind: s.field.Steady(req.Lat, req.Lon, req.AltitudeKm, req.Month)}
	}
	seed := randx.Seed(req.Seed)
	w := s.field.Vector(req.Lat, req.Lon, req.AltitudeKm, req.Month, randx.New(seed))
	return WindVectorResult{Wind: w, Seed: seed}
}

func (s *SimulationService) WindProfile(ctx context.Context, req models.WindProfileRequest) []models.WindVector {
	key := fmt.Sprintf("wind:profile:%.4f:%.4f:%d", req.Lat, req.Lon, req.Month)

	if raw, ok, err := s.cache.GetBytes(key); err == nil && ok {
		var cached []models.WindVector
		if json.Unmarshal(raw, &cached) == nil {
			return cached
		}
	}

	profile := s.field.Profile(req.Lat, req.Lon, req.Month)

	if raw, err := json.Marshal(profile); err == nil {
		if err := s.cache.SetBytes(key, raw, s.cfg.Cache.TTL.WindProfile); err != nil {
			s.logger.Warn("cache wind profile", logger.Error(err))
		}
	}
	return profile
}

// OptimalAltitudeResult is the best flight level for a desired travel heading.
type OptimalAltitudeResult struct {
	AltitudeKm      float64 `json:"altitude_km"`
	HeadingErrorDeg float64 `json:"heading_error_deg"`
}

func (s *SimulationService) OptimalAltitude(ctx context.Context, req models.OptimalAltitudeRequest) (*OptimalAltitudeResult, error) {
	band := models.AltitudeBand{MinKm: req.MinAltKm, MaxKm: req.MaxAltKm}
	alt, headingErr, err := s.field.OptimalAltitude(req.Lat, req.Lon, req.TargetHeadingDeg, req.Month, band)
	if err != nil {
		s.rec.RecordError("optimal_altitude")
		return nil, err
	}
	return &OptimalAltitudeResult{AltitudeKm: alt, HeadingErrorDeg: headingErr}, nil
}

// DecisionResult pairs a navigation decision with its seed.
type DecisionResult struct {
	Decision models.NavigationDecision `json:"decision"`
	Seed     uint64                    `json:"seed"`
}

func (s *SimulationService) Decide(ctx context.Context, req models.DecisionRequest) (*DecisionResult, error) {
	seed := randx.Seed(req.Seed)
	p := models.DecisionParams{
		Lat:         req.Lat,
		Lon:         req.Lon,
		AltitudeKm:  req.AltitudeKm,
		TargetLat:   req.TargetLat,
		TargetLon:   req.TargetLon,
		AOIRadiusKm: req.AOIRadiusKm,
		Month:       req.Month,
		Band:        models.AltitudeBand{MinKm: req.MinAltKm, MaxKm: req.MaxAltKm},
	}

	d, err := s.keeper.Decide(ctx, p, randx.New(seed))
	if err != nil {
		s.rec.RecordError("decision")
		return nil, err
	}
	return &DecisionResult{Decision: d, Seed: seed}, nil
}

// StationKeepingOutput is the mission run plus its replay handle.
type StationKeepingOutput struct {
	RunID  string                      `json:"run_id,omitempty"`
	Seed   uint64                      `json:"seed"`
	Result models.StationKeepingResult `json:"result"`
}

func (s *SimulationService) StationKeeping(ctx context.Context, req models.StationKeepingRequest) (*StationKeepingOutput, error) {
	seed := randx.Seed(req.Seed)
	p := models.StationKeepingParams{
		StartLat:          req.StartLat,
		StartLon:          req.StartLon,
		TargetLat:         req.TargetLat,
		TargetLon:         req.TargetLon,
		AOIRadiusKm:       req.AOIRadiusKm,
		MissionHours:      req.MissionHours,
		Month:             req.Month,
		Band:              models.AltitudeBand{MinKm: req.MinAltKm, MaxKm: req.MaxAltKm},
		InitialAltitudeKm: req.InitialAltKm,
		TimeStepHours:     req.TimeStepHours,
	}

	start := time.Now()
	result, err := s.keeper.Simulate(ctx, p, randx.New(seed))
	if err != nil {
		s.rec.RecordError("station_keeping")
		return nil, err
	}

	out := &StationKeepingOutput{Seed: seed, Result: result}
	out.RunID = s.recordRun(ctx, &models.SimulationRun{
		Kind:                "station_keeping",
		Seed:                seed,
		TargetLat:           req.TargetLat,
		TargetLon:           req.TargetLon,
		AOIRadiusKm:         req.AOIRadiusKm,
		Month:               req.Month,
		MissionHours:        result.TotalHours,
		AvailabilityPercent: result.CoveragePercent,
		DriftEvents:         result.DriftEvents,
		EnergyUsedWh:        result.TotalEnergyUsedWh,
		StartedAt:           start,
		DurationMs:          time.Since(start).Milliseconds(),
	})
	s.rec.RecordRun("station_keeping")
	s.rec.RecordAvailability("station_keeping", result.CoveragePercent)
	s.rec.RecordLatency("station_keeping", time.Since(start).Seconds())
	return out, nil
}

func (s *SimulationService) Revisit(req models.RevisitRequest) models.RevisitMetrics {
	return s.planner.Revisit(req.SwathWidthKm, req.GroundSpeedKmh, req.AOIAreaKm2, req.NPlatforms, req.OffNadirDeg)
}

// FleetOutput is a fleet coverage run plus its replay handle.
type FleetOutput struct {
	RunID  string                       `json:"run_id,omitempty"`
	Seed   uint64                       `json:"seed"`
	Result models.FleetSimulationResult `json:"result"`
}

func (s *SimulationService) FleetCoverage(ctx context.Context, req models.FleetCoverageRequest) (*FleetOutput, error) {
	if req.NPlatforms > s.cfg.Simulation.MaxFleetPlatforms {
		return nil, fmt.Errorf("%w: n_platforms %d > %d", ErrLimitExceeded, req.NPlatforms, s.cfg.Simulation.MaxFleetPlatforms)
	}
	if req.MissionDays > s.cfg.Simulation.MaxMissionDays {
		return nil, fmt.Errorf("%w: mission_days %d > %d", ErrLimitExceeded, req.MissionDays, s.cfg.Simulation.MaxMissionDays)
	}

	seed := randx.Seed(req.Seed)
	p := models.FleetParams{
		TargetLat:   req.TargetLat,
		TargetLon:   req.TargetLon,
		AOIRadiusKm: req.AOIRadiusKm,
		MissionDays: req.MissionDays,
		Month:       req.Month,
		NPlatforms:  req.NPlatforms,
		Band:        models.AltitudeBand{MinKm: req.MinAltKm, MaxKm: req.MaxAltKm},
	}

	start := time.Now()
	result, err := s.planner.Coverage(ctx, p, randx.New(seed))
	if err != nil {
		s.rec.RecordError("fleet")
		return nil, err
	}

	out := &FleetOutput{Seed: seed, Result: result}
	out.RunID = s.recordRun(ctx, &models.SimulationRun{
		Kind:                "fleet",
		Seed:                seed,
		TargetLat:           req.TargetLat,
		TargetLon:           req.TargetLon,
		AOIRadiusKm:         req.AOIRadiusKm,
		Month:               req.Month,
		MissionHours:        float64(req.MissionDays) * 24,
		AvailabilityPercent: result.ServiceAvailabilityPercent,
		DriftEvents:         result.TotalDriftEvents,
		StartedAt:           start,
		DurationMs:          time.Since(start).Milliseconds(),
	})
	s.rec.RecordRun("fleet")
	s.rec.RecordAvailability("fleet", result.ServiceAvailabilityPercent)
	s.rec.RecordLatency("fleet", time.Since(start).Seconds())
	return out, nil
}

// RecommendOutput is a fleet-size recommendation plus its replay seed.
type RecommendOutput struct {
	Seed   uint64                     `json:"seed"`
	Result models.FleetRecommendation `json:"result"`
}

func (s *SimulationService) RecommendFleet(ctx context.Context, req models.RecommendFleetRequest) (*RecommendOutput, error) {
	if req.MaxPlatforms > s.cfg.Simulation.MaxFleetPlatforms {
		return nil, fmt.Errorf("%w: max_platforms %d > %d", ErrLimitExceeded, req.MaxPlatforms, s.cfg.Simulation.MaxFleetPlatforms)
	}
	if req.MissionDays > s.cfg.Simulation.MaxMissionDays {
		return nil, fmt.Errorf("%w: mission_days %d > %d", ErrLimitExceeded, req.MissionDays, s.cfg.Simulation.MaxMissionDays)
	}

	seed := randx.Seed(req.Seed)
	p := models.FleetParams{
		TargetLat:   req.TargetLat,
		TargetLon:   req.TargetLon,
		AOIRadiusKm: req.AOIRadiusKm,
		MissionDays: req.MissionDays,
		Month:       req.Month,
		Band: models.AltitudeBand{
			MinKm: s.cfg.Simulation.DefaultMinAltKm,
			MaxKm: s.cfg.Simulation.DefaultMaxAltKm,
		},
	}

	start := time.Now()
	result, err := s.planner.Recommend(ctx, p, req.TargetAvailability, req.MaxPlatforms, randx.New(seed))
	if err != nil {
		s.rec.RecordError("fleet_recommend")
		return nil, err
	}
	s.rec.RecordRun("fleet_recommend")
	s.rec.RecordLatency("fleet_recommend", time.Since(start).Seconds())
	return &RecommendOutput{Seed: seed, Result: result}, nil
}

// MonteCarloOutput is a risk batch plus its replay handle.
type MonteCarloOutput struct {
	RunID  string                  `json:"run_id,omitempty"`
	Seed   uint64                  `json:"seed"`
	Result models.MonteCarloResult `json:"result"`
}

func (s *SimulationService) MonteCarlo(ctx context.Context, req models.MonteCarloRequest) (*MonteCarloOutput, error) {
	if req.NIterations > s.cfg.Simulation.MaxIterations {
		return nil, fmt.Errorf("%w: n_iterations %d > %d", ErrLimitExceeded, req.NIterations, s.cfg.Simulation.MaxIterations)
	}
	if req.MissionDays > s.cfg.Simulation.MaxMissionDays {
		return nil, fmt.Errorf("%w: mission_days %d > %d", ErrLimitExceeded, req.MissionDays, s.cfg.Simulation.MaxMissionDays)
	}

	seed := randx.Seed(req.Seed)
	p := models.MonteCarloParams{
		Lat:         req.Lat,
		Lon:         req.Lon,
		AOIRadiusKm: req.AOIRadiusKm,
		MissionDays: req.MissionDays,
		Month:       req.Month,
		Band:        models.AltitudeBand{MinKm: req.MinAltKm, MaxKm: req.MaxAltKm},
		NIterations: req.NIterations,
	}

	start := time.Now()
	result, err := s.risk.Run(ctx, p, randx.New(seed))
	if err != nil {
		s.rec.RecordError("monte_carlo")
		return nil, err
	}

	out := &MonteCarloOutput{Seed: seed, Result: result}
	out.RunID = s.recordRun(ctx, &models.SimulationRun{
		Kind:                "monte_carlo",
		Seed:                seed,
		TargetLat:           req.Lat,
		TargetLon:           req.Lon,
		AOIRadiusKm:         req.AOIRadiusKm,
		Month:               req.Month,
		MissionHours:        float64(req.MissionDays) * 24,
		AvailabilityPercent: result.ServiceReliabilityPercent,
		DriftEvents:         int(result.ExpectedDriftEvents),
		RiskLevel:           result.RiskLevel,
		StartedAt:           start,
		DurationMs:          time.Since(start).Milliseconds(),
	})
	s.rec.RecordRun("monte_carlo")
	s.rec.RecordAvailability("monte_carlo", result.ServiceReliabilityPercent)
	s.rec.RecordLatency("monte_carlo", time.Since(start).Seconds())
	return out, nil
}

// SeasonalOutput is the winter/summer contrast plus its replay seed.
type SeasonalOutput struct {
	Seed   uint64                    `json:"seed"`
	Result models.SeasonalComparison `json:"result"`
}

func (s *SimulationService) Seasonal(ctx context.Context, req models.SeasonalRequest) (*SeasonalOutput, error) {
	var key string
	if req.Seed == 0 {
		key = fmt.Sprintf("seasonal:%.4f:%.4f:%.1f:%d", req.Lat, req.Lon, req.AOIRadiusKm, req.MissionDays)
		if raw, ok, err := s.cache.GetBytes(key); err == nil && ok {
			var cached SeasonalOutput
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	seed := randx.Seed(req.Seed)
	p := models.MonteCarloParams{
		Lat:         req.Lat,
		Lon:         req.Lon,
		AOIRadiusKm: req.AOIRadiusKm,
		MissionDays: req.MissionDays,
		Band: models.AltitudeBand{
			MinKm: s.cfg.Simulation.DefaultMinAltKm,
			MaxKm: s.cfg.Simulation.DefaultMaxAltKm,
		},
	}

	start := time.Now()
	result, err := s.risk.Seasonal(ctx, p, randx.New(seed))
	if err != nil {
		s.rec.RecordError("seasonal")
		return nil, err
	}
	s.rec.RecordRun("seasonal")
	s.rec.RecordLatency("seasonal", time.Since(start).Seconds())

	out := &SeasonalOutput{Seed: seed, Result: result}
	if key != "" {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.SetBytes(key, raw, s.cfg.Cache.TTL.Seasonal); err != nil {
				s.logger.Warn("cache seasonal", logger.Error(err))
			}
		}
	}
	return out, nil
}

func (s *SimulationService) Runs(ctx context.Context, limit int) ([]*models.SimulationRun, error) {
	if s.runs == nil {
		return []*models.SimulationRun{}, nil
	}
	return s.runs.Recent(ctx, limit)
}

func (s *SimulationService) Run(ctx context.Context, id string) (*models.SimulationRun, error) {
	if s.runs == nil {
		return nil, ErrHistoryDisabled
	}
	return s.runs.Get(ctx, id)
}

// recordRun persists and publishes a run summary. History failures are logged
// and never fail the simulation itself.
func (s *SimulationService) recordRun(ctx context.Context, run *models.SimulationRun) string {
	if s.runs == nil {
		return ""
	}
	run.RunID = uuid.NewString()

	if err := s.runs.Store(ctx, run); err != nil {
		s.logger.Error("store run", logger.String("run_id", run.RunID), logger.Error(err))
		s.rec.RecordError("run_store")
		return ""
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, run); err != nil {
			s.logger.Warn("publish run event", logger.String("run_id", run.RunID), logger.Error(err))
		}
	}
	return run.RunID
}
