package models

// RevisitMetrics describes how often a point in the AOI can be imaged.
type RevisitMetrics struct {
	RevisitTimeHours        float64 `json:"revisit_time_hours"`
	CoverageGapsPerDay      float64 `json:"coverage_gaps_per_day"`
	MaxGapDurationHours     float64 `json:"max_gap_duration_hours"`
	AverageGapDurationHours float64 `json:"average_gap_duration_hours"`
}

// FleetSimulationResult aggregates per-platform station-keeping runs into
// fleet-level availability and replenishment numbers.
type FleetSimulationResult struct {
	NPlatforms                 int     `json:"n_platforms"`
	OverprovisioningFactor     float64 `json:"overprovisioning_factor"`
	ServiceAvailabilityPercent float64 `json:"service_availability_percent"`
	AverageRevisitHours        float64 `json:"average_revisit_hours"`
	TotalDriftEvents           int     `json:"total_drift_events"`
	ReplacementLaunchesNeeded  int     `json:"replacement_launches_needed"`
	MissionCostMultiplier      float64 `json:"total_mission_cost_multiplier"`
}

// FleetRecommendation is the outcome of the incremental fleet-size search.
type FleetRecommendation struct {
	RecommendedFleetSize        int                   `json:"recommended_fleet_size"`
	ExpectedAvailabilityPercent float64               `json:"expected_availability_percent"`
	OverprovisioningFactor      float64               `json:"overprovisioning_factor"`
	MeetsTarget                 bool                  `json:"meets_target"`
	SimulationDetails           FleetSimulationResult `json:"simulation_details"`
}
