package models

import "strings"

// Capability is the enumerated maneuver class of a platform. It carries the
// ACS correction speed as data so decision code never parses descriptor text.
type Capability string

const (
	CapabilityStandard Capability = "standard"
	CapabilityEnhanced Capability = "enhanced"
)

// CorrectionSpeedKmh is the max horizontal correction speed achievable via
// altitude maneuvers for this class.
func (c Capability) CorrectionSpeedKmh() float64 {
	if c == CapabilityEnhanced {
		return 25.0
	}
	return 15.0
}

// CapabilityFromDescriptor maps a free-text platform descriptor to a
// capability tag. Used only when loading presets; everything downstream works
// with the tag.
func CapabilityFromDescriptor(descriptor string) Capability {
	if strings.Contains(descriptor, "Zero-Pressure") || strings.Contains(descriptor, "Stratollite") {
		return CapabilityEnhanced
	}
	return CapabilityStandard
}

// Platform is a lighter-than-air platform preset. Persistence of these
// records lives outside the simulation core; the preset store only serves
// reads.
type Platform struct {
	ID                  int          `json:"id"`
	Name                string       `json:"name"`
	PlatformType        string       `json:"platform_type"`
	Capability          Capability   `json:"capability"`
	Capex               float64      `json:"capex"`
	LaunchCost          float64      `json:"launch_cost"`
	ConsumablesCost     float64      `json:"consumables_cost"`
	MaxPayloadMassKg    float64      `json:"max_payload_mass"`
	Band                AltitudeBand `json:"altitude_band"`
	MaxDurationDays     int          `json:"max_duration_days"`
	AmortizationFlights int          `json:"amortization_flights"`
	DayPowerW           float64      `json:"day_power"`
	NightPowerW         float64      `json:"night_power"`
	BatteryCapacityWh   float64      `json:"battery_capacity"`
}

// Payload is a sensor payload preset.
type Payload struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Capex           float64 `json:"capex"`
	MassKg          float64 `json:"mass"`
	PowerW          float64 `json:"power_consumption"`
	ResolutionGSDM  float64 `json:"resolution_gsd"`
	FOVDeg          float64 `json:"fov"`
	DailyDataRateGB float64 `json:"daily_data_rate_gb"`
	Market          string  `json:"market"`
}
