package usecase

import (
	"context"
	"fmt"

	"stratosim/internal/domain/models"
	domrepo "stratosim/internal/domain/repository"
	"stratosim/internal/engine/flight"
	"stratosim/internal/services/payload"
	"stratosim/internal/services/power"
	"stratosim/internal/services/pricing"
	"stratosim/pkg/logger"
)

// MissionPlanner assembles the commercial mission assessment: power budget,
// flight quick look, imaging geometry and price, in that order.
type MissionPlanner struct {
	presets domrepo.PresetStore
	logger  *logger.Logger
}

func NewMissionPlanner(presets domrepo.PresetStore, lgr *logger.Logger) *MissionPlanner {
	return &MissionPlanner{presets: presets, logger: lgr}
}

func (m *MissionPlanner) Platforms(ctx context.Context) ([]models.Platform, error) {
	return m.presets.Platforms(ctx)
}

func (m *MissionPlanner) Payloads(ctx context.Context) ([]models.Payload, error) {
	return m.presets.Payloads(ctx)
}

// Quote runs the full feasibility chain for a platform/payload pairing.
// Warnings accumulate; only power shortage and payload overweight make the
// mission infeasible.
func (m *MissionPlanner) Quote(ctx context.Context, req models.QuoteRequest) (*models.MissionAssessment, error) {
	platform, err := m.presets.Platform(ctx, req.PlatformID)
	if err != nil {
		return nil, fmt.Errorf("platform %d: %w", req.PlatformID, err)
	}
	pl, err := m.presets.Payload(ctx, req.PayloadID)
	if err != nil {
		return nil, fmt.Errorf("payload %d: %w", req.PayloadID, err)
	}

	warnings := []string{}
	feasible := true

	powerResult := power.CheckFeasibility(req.Lat, req.Month,
		platform.NightPowerW, platform.BatteryCapacityWh, pl.PowerW)
	if !powerResult.IsFeasible {
		warnings = append(warnings,
			fmt.Sprintf("Critical Power Shortage: Duty Cycle %v%%", powerResult.DutyCyclePercent))
		feasible = false
	} else if powerResult.DutyCyclePercent < 100 {
		warnings = append(warnings,
			fmt.Sprintf("Reduced Duty Cycle: %v%% operational at night", powerResult.DutyCyclePercent))
	}

	if req.DurationDays > platform.MaxDurationDays {
		warnings = append(warnings,
			fmt.Sprintf("Duration Exceeds Endurance: %d days > %d days, relaunches required",
				req.DurationDays, platform.MaxDurationDays))
	}

	if pl.MassKg > platform.MaxPayloadMassKg {
		warnings = append(warnings,
			fmt.Sprintf("Payload Overweight: %vkg > %vkg", pl.MassKg, platform.MaxPayloadMassKg))
		feasible = false
	}

	flightResult := flight.QuickLook(req.Lat, req.Month, req.TargetRadiusKm, platform.Capability)
	if flightResult.DriftWarning {
		warnings = append(warnings,
			fmt.Sprintf("Drift Warning: Wind (%v km/h) exceeds ACS capability (%v km/h)",
				flightResult.MeanWindSpeedKmh, flightResult.ACSCorrectionSpeedKmh))
	} else if flightResult.DriftRisk == "High" {
		warnings = append(warnings, "High Drift Risk: Fleet overprovisioning recommended")
	}

	imaging := payload.Performance(pl.ResolutionGSDM, pl.FOVDeg,
		platform.Band.MidKm(), flightResult.MeanWindSpeedKmh, 0)

	quote := pricing.Quote(*platform, *pl, flightResult, req.MarginPercent)

	m.logger.Info("mission quote",
		logger.Int("platform_id", platform.ID),
		logger.Int("payload_id", pl.ID),
		logger.Bool("feasible", feasible),
		logger.Float64("total_price", quote.TotalPrice))

	return &models.MissionAssessment{
		IsFeasible:     feasible,
		Warnings:       warnings,
		PowerAnalysis:  powerResult,
		FlightAnalysis: flightResult,
		Imaging:        imaging,
		Quote:          quote,
	}, nil
}
