package models

// ScenarioResult is a single Monte-Carlo iteration outcome. A launch abort
// contributes zeros with LaunchSuccess=false.
type ScenarioResult struct {
	ServiceAvailability float64 `json:"service_availability"`
	DriftEvents         int     `json:"drift_events"`
	CoveragePercent     float64 `json:"coverage_percent"`
	EnergyUsedWh        float64 `json:"energy_used_wh"`
	LaunchSuccess       bool    `json:"launch_success"`
}

// MonteCarloResult is the statistical aggregate over all iterations.
type MonteCarloResult struct {
	NIterations                 int     `json:"n_iterations"`
	ServiceReliabilityPercent   float64 `json:"service_reliability_percent"`
	ServiceReliabilityStd       float64 `json:"service_reliability_std"`
	ServiceReliabilityP5        float64 `json:"service_reliability_p5"`
	ServiceReliabilityP95       float64 `json:"service_reliability_p95"`
	ExpectedDriftEvents         float64 `json:"expected_drift_events"`
	ExpectedDriftEventsStd      float64 `json:"expected_drift_events_std"`
	LaunchAbortProbabilityPct   float64 `json:"launch_abort_probability"`
	RecommendedOverprovisioning float64 `json:"recommended_overprovisioning"`
	MissionFeasibility          string  `json:"mission_feasibility"`
	RiskLevel                   string  `json:"risk_level"`
	ConfidenceLevel             string  `json:"confidence_level"`
}

// SeasonalComparison contrasts the hemisphere-appropriate winter and summer
// months under identical mission parameters.
type SeasonalComparison struct {
	Winter MonteCarloResult `json:"winter"`
	Summer MonteCarloResult `json:"summer"`
}
