package repository

import (
	"context"
	"errors"

	"stratosim/internal/domain/models"
)

// ErrPresetNotFound is returned for platform or payload ids outside the
// catalog.
var ErrPresetNotFound = errors.New("preset not found")

// MemoryPresetStore serves the built-in platform and payload catalog. The
// catalog is read-only reference data and small enough to keep in process.
type MemoryPresetStore struct {
	platforms []models.Platform
	payloads  []models.Payload
}

func NewMemoryPresetStore() *MemoryPresetStore {
	return &MemoryPresetStore{
		platforms: defaultPlatforms(),
		payloads:  defaultPayloads(),
	}
}

func (s *MemoryPresetStore) Platforms(ctx context.Context) ([]models.Platform, error) {
	out := make([]models.Platform, len(s.platforms))
	copy(out, s.platforms)
	return out, nil
}

func (s *MemoryPresetStore) Platform(ctx context.Context, id int) (*models.Platform, error) {
	for i := range s.platforms {
		if s.platforms[i].ID == id {
			p := s.platforms[i]
			return &p, nil
		}
	}
	return nil, ErrPresetNotFound
}

func (s *MemoryPresetStore) Payloads(ctx context.Context) ([]models.Payload, error) {
	out := make([]models.Payload, len(s.payloads))
	copy(out, s.payloads)
	return out, nil
}

func (s *MemoryPresetStore) Payload(ctx context.Context, id int) (*models.Payload, error) {
	for i := range s.payloads {
		if s.payloads[i].ID == id {
			p := s.payloads[i]
			return &p, nil
		}
	}
	return nil, ErrPresetNotFound
}

func defaultPlatforms() []models.Platform {
	return []models.Platform{
		{
			ID:                  1,
			Name:                "Involve SmartBalloon (Standard)",
			PlatformType:        "Super-Pressure Variable Volume",
			Capability:          models.CapabilityStandard,
			Capex:               30000,
			LaunchCost:          2000,
			ConsumablesCost:     1833,
			MaxPayloadMassKg:    15,
			Band:                models.AltitudeBand{MinKm: 18, MaxKm: 23},
			MaxDurationDays:     60,
			AmortizationFlights: 5,
			DayPowerW:           100,
			NightPowerW:         40,
			BatteryCapacityWh:   1500,
		},
		{
			ID:                  2,
			Name:                "Heavy-Lift Stratollite",
			PlatformType:        "Zero-Pressure with Ballast Control",
			Capability:          models.CapabilityEnhanced,
			Capex:               120000,
			LaunchCost:          8000,
			ConsumablesCost:     5000,
			MaxPayloadMassKg:    50,
			Band:                models.AltitudeBand{MinKm: 18, MaxKm: 25},
			MaxDurationDays:     30,
			AmortizationFlights: 3,
			DayPowerW:           250,
			NightPowerW:         250,
			BatteryCapacityWh:   8000,
		},
	}
}

func defaultPayloads() []models.Payload {
	return []models.Payload{
		{
			ID:              1,
			Name:            "SAR Entry-Level (Involve Custom)",
			Capex:           10000,
			MassKg:          4.5,
			PowerW:          45,
			ResolutionGSDM:  2.0,
			FOVDeg:          20,
			DailyDataRateGB: 30,
			Market:          "Maritime Surveillance, Infrastructure",
		},
		{
			ID:              2,
			Name:            "Optical High-End (PhaseOne iXM-100)",
			Capex:           45000,
			MassKg:          1.1,
			PowerW:          16,
			ResolutionGSDM:  0.05,
			FOVDeg:          45,
			DailyDataRateGB: 80,
			Market:          "Urban Mapping, Precision Agriculture",
		},
		{
			ID:              3,
			Name:            "Hyperspectral (Headwall Nano HP)",
			Capex:           35000,
			MassKg:          1.5,
			PowerW:          20,
			ResolutionGSDM:  1.0,
			FOVDeg:          30,
			DailyDataRateGB: 100,
			Market:          "Vegetation Analysis, Pollution Monitoring",
		},
	}
}
