package models

// FlightQuickLook is the closed-form station-keeping snapshot used for fast
// feasibility screening before a full time-stepped run.
type FlightQuickLook struct {
	WindVolatilityScore    float64 `json:"wind_volatility_score"`
	MeanWindSpeedKmh       float64 `json:"mean_wind_speed_kmh"`
	ACSCorrectionSpeedKmh  float64 `json:"acs_correction_speed_kmh"`
	StationKeepingProb     float64 `json:"station_keeping_prob"`
	OverprovisioningFactor float64 `json:"overprovisioning_factor"`
	DriftWarning           bool    `json:"drift_warning"`
	DriftRisk              string  `json:"drift_risk"`
	FleetSizeRecommended   int     `json:"fleet_size_recommended"`
}

// PowerAnalysis is the night-survival energy balance for a platform/payload
// pairing.
type PowerAnalysis struct {
	IsFeasible          bool    `json:"is_feasible"`
	SurvivesNight       bool    `json:"survives_night"`
	DutyCyclePercent    float64 `json:"duty_cycle_percent"`
	DayHours            float64 `json:"day_hours"`
	NightHours          float64 `json:"night_hours"`
	NightEnergyNeededWh float64 `json:"night_energy_needed_wh"`
	BatteryCapacityWh   float64 `json:"battery_capacity_wh"`
	MarginWh            float64 `json:"margin_wh"`
	Status              string  `json:"status"`
}

// ImagingPerformance is the payload's imaging geometry at one operating point.
type ImagingPerformance struct {
	GSDM             float64 `json:"gsd_m"`
	SwathWidthKm     float64 `json:"swath_width_km"`
	CoverageRateKm2H float64 `json:"coverage_rate_km2_h"`
	QualityFactor    float64 `json:"quality_factor"`
	AltitudeKm       float64 `json:"altitude_km"`
	OffNadirDeg      float64 `json:"off_nadir_deg"`
}

// CoverageAnalysis is mission-level imaging coverage across the altitude band.
type CoverageAnalysis struct {
	EffectiveGSDM            float64 `json:"effective_gsd_m"`
	MinGSDM                  float64 `json:"min_gsd_m"`
	MaxGSDM                  float64 `json:"max_gsd_m"`
	AverageSwathKm           float64 `json:"average_swath_km"`
	RepositioningLossPercent float64 `json:"repositioning_coverage_loss_percent"`
	EffectiveCoveragePercent float64 `json:"effective_coverage_percent"`
}

// Quote is the priced mission summary built from flight and fleet numbers.
type Quote struct {
	PlatformCostPerFlight float64 `json:"platform_cost_per_flight"`
	PayloadCostPerFlight  float64 `json:"payload_cost_per_flight"`
	LaunchCost            float64 `json:"launch_cost"`
	ConsumablesCost       float64 `json:"consumables_cost"`
	BaseMissionCost       float64 `json:"base_mission_cost"`
	OverprovisioningCost  float64 `json:"overprovisioning_cost"`
	TotalCost             float64 `json:"total_cost"`
	MarginPercent         float64 `json:"margin_percent"`
	TotalPrice            float64 `json:"total_price"`
}

// MissionAssessment is the merged /missions/quote response: power + flight
// quick look + imaging + price.
type MissionAssessment struct {
	IsFeasible     bool               `json:"is_feasible"`
	Warnings       []string           `json:"warnings"`
	PowerAnalysis  PowerAnalysis      `json:"power_analysis"`
	FlightAnalysis FlightQuickLook    `json:"flight_analysis"`
	Imaging        ImagingPerformance `json:"imaging"`
	Quote          Quote              `json:"quote"`
}
