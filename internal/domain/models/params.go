package models

// AltitudeBand is the platform's certified flight band in km. Engines clamp
// it against the wind model's physical domain before use.
type AltitudeBand struct {
	MinKm float64 `json:"min_km"`
	MaxKm float64 `json:"max_km"`
}

// MidKm is the band midpoint, the conventional initial altitude.
func (b AltitudeBand) MidKm() float64 { return (b.MinKm + b.MaxKm) / 2 }

// DecisionParams are the inputs to a single altitude decision.
type DecisionParams struct {
	Lat         float64
	Lon         float64
	AltitudeKm  float64
	TargetLat   float64
	TargetLon   float64
	AOIRadiusKm float64
	Month       int
	Band        AltitudeBand
}

// StationKeepingParams drive one time-stepped station-keeping run.
type StationKeepingParams struct {
	StartLat          float64
	StartLon          float64
	TargetLat         float64
	TargetLon         float64
	AOIRadiusKm       float64
	MissionHours      float64
	Month             int
	Band              AltitudeBand
	InitialAltitudeKm float64
	TimeStepHours     float64
}

// FleetParams drive a multi-platform coverage simulation.
type FleetParams struct {
	TargetLat   float64
	TargetLon   float64
	AOIRadiusKm float64
	MissionDays int
	Month       int
	NPlatforms  int
	Band        AltitudeBand
}

// MonteCarloParams drive a stochastic scenario batch.
type MonteCarloParams struct {
	Lat         float64
	Lon         float64
	AOIRadiusKm float64
	MissionDays int
	Month       int
	Band        AltitudeBand
	NIterations int
}
