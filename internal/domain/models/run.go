package models

import "time"

// SimulationRun is the persisted summary of one completed simulation. The
// engines themselves never persist anything; the service layer records runs
// for history and publishes them as events.
type SimulationRun struct {
	RunID               string    `json:"run_id"`
	Kind                string    `json:"kind"` // station_keeping | fleet | monte_carlo
	Seed                uint64    `json:"seed"`
	TargetLat           float64   `json:"target_lat"`
	TargetLon           float64   `json:"target_lon"`
	AOIRadiusKm         float64   `json:"aoi_radius_km"`
	Month               int       `json:"month"`
	MissionHours        float64   `json:"mission_hours"`
	AvailabilityPercent float64   `json:"availability_percent"`
	DriftEvents         int       `json:"drift_events"`
	EnergyUsedWh        float64   `json:"energy_used_wh"`
	RiskLevel           string    `json:"risk_level,omitempty"`
	StartedAt           time.Time `json:"started_at"`
	DurationMs          int64     `json:"duration_ms"`
}
