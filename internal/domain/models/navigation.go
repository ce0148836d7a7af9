package models

// ManeuverAction classifies an altitude decision.
type ManeuverAction string

const (
	ActionHold    ManeuverAction = "hold"
	ActionClimb   ManeuverAction = "climb"
	ActionDescend ManeuverAction = "descend"
)

// NavigationDecision is the outcome of one lookahead altitude evaluation.
type NavigationDecision struct {
	CurrentAltitudeKm  float64        `json:"current_altitude_km"`
	TargetAltitudeKm   float64        `json:"target_altitude_km"`
	AltitudeChangeKm   float64        `json:"altitude_change_km"`
	Action             ManeuverAction `json:"action"`
	TimeToCompleteS    float64        `json:"time_to_complete_s"`
	EnergyCostWh       float64        `json:"energy_cost_wh"`
	ExpectedDriftKm    float64        `json:"expected_drift_km"`
	ExpectedHeadingDeg float64        `json:"expected_heading_deg"`
	WillStayInAOI      bool           `json:"will_stay_in_aoi"`
	Reasoning          string         `json:"reasoning"`
}

// TrajectoryPoint is one time step of a station-keeping run. Entries are
// strictly time-ordered.
type TrajectoryPoint struct {
	THours     float64 `json:"t_hours"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	AltKm      float64 `json:"alt_km"`
	DistanceKm float64 `json:"distance_km"`
	InAOI      bool    `json:"in_aoi"`
}

// StationKeepingResult aggregates a full simulated mission.
type StationKeepingResult struct {
	TotalHours            float64           `json:"total_hours"`
	TimeOnTargetHours     float64           `json:"time_on_target_hours"`
	TimeRepositioningHrs  float64           `json:"time_repositioning_hours"`
	DriftEvents           int               `json:"drift_events"`
	TotalEnergyUsedWh     float64           `json:"total_energy_used_wh"`
	AltitudeChanges       int               `json:"altitude_changes"`
	CoveragePercent       float64           `json:"coverage_percent"`
	Trajectory            []TrajectoryPoint `json:"trajectory"`
}
