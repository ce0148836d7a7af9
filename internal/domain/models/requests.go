package models

// Requests for the simulation HTTP endpoints. Defined in domain for
// consistency and reuse. Latitude/longitude ranges are deliberately
// unchecked; the wind model is defined for any coordinate pair.

type WindVectorRequest struct {
	Lat        float64 `query:"lat" json:"lat"`
	Lon        float64 `query:"lon" json:"lon"`
	AltitudeKm float64 `query:"altitude_km" json:"altitude_km" default:"20" validate:"gt=0"`
	Month      int     `query:"month" json:"month" validate:"required,gte=1,lte=12"`
	Noise      bool    `query:"noise" json:"noise"`
	Seed       uint64  `query:"seed" json:"seed"`
}

type WindProfileRequest struct {
	Lat   float64 `query:"lat" json:"lat"`
	Lon   float64 `query:"lon" json:"lon"`
	Month int     `query:"month" json:"month" validate:"required,gte=1,lte=12"`
}

type OptimalAltitudeRequest struct {
	Lat              float64 `query:"lat" json:"lat"`
	Lon              float64 `query:"lon" json:"lon"`
	TargetHeadingDeg float64 `query:"target_heading_deg" json:"target_heading_deg" validate:"gte=0,lt=360"`
	Month            int     `query:"month" json:"month" validate:"required,gte=1,lte=12"`
	MinAltKm         float64 `query:"min_alt_km" json:"min_alt_km" default:"18"`
	MaxAltKm         float64 `query:"max_alt_km" json:"max_alt_km" default:"25"`
}

type DecisionRequest struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	AltitudeKm  float64 `json:"altitude_km" default:"20" validate:"gt=0"`
	TargetLat   float64 `json:"target_lat"`
	TargetLon   float64 `json:"target_lon"`
	AOIRadiusKm float64 `json:"aoi_radius_km" validate:"required,gt=0"`
	Month       int     `json:"month" validate:"required,gte=1,lte=12"`
	MinAltKm    float64 `json:"min_alt_km" default:"18"`
	MaxAltKm    float64 `json:"max_alt_km" default:"25"`
	Seed        uint64  `json:"seed"`
}

type StationKeepingRequest struct {
	StartLat      float64 `json:"start_lat"`
	StartLon      float64 `json:"start_lon"`
	TargetLat     float64 `json:"target_lat"`
	TargetLon     float64 `json:"target_lon"`
	AOIRadiusKm   float64 `json:"aoi_radius_km" validate:"required,gt=0"`
	MissionHours  float64 `json:"mission_hours" validate:"gte=0,lte=8760"`
	Month         int     `json:"month" validate:"required,gte=1,lte=12"`
	MinAltKm      float64 `json:"min_alt_km" default:"18"`
	MaxAltKm      float64 `json:"max_alt_km" default:"25"`
	InitialAltKm  float64 `json:"initial_alt_km" default:"20"`
	TimeStepHours float64 `json:"time_step_hours" default:"1" validate:"gt=0"`
	Seed          uint64  `json:"seed"`
}

type RevisitRequest struct {
	AOIAreaKm2     float64 `query:"aoi_area_km2" json:"aoi_area_km2" validate:"required,gt=0"`
	SwathWidthKm   float64 `query:"swath_width_km" json:"swath_width_km" validate:"gte=0"`
	GroundSpeedKmh float64 `query:"ground_speed_kmh" json:"ground_speed_kmh" validate:"gte=0"`
	NPlatforms     int     `query:"n_platforms" json:"n_platforms" default:"1" validate:"gte=1"`
	OffNadirDeg    float64 `query:"off_nadir_deg" json:"off_nadir_deg" validate:"gte=0,lte=60"`
}

type FleetCoverageRequest struct {
	TargetLat   float64 `json:"target_lat"`
	TargetLon   float64 `json:"target_lon"`
	AOIRadiusKm float64 `json:"aoi_radius_km" validate:"required,gt=0"`
	MissionDays int     `json:"mission_days" default:"7" validate:"gte=1,lte=365"`
	Month       int     `json:"month" validate:"required,gte=1,lte=12"`
	NPlatforms  int     `json:"n_platforms" default:"1" validate:"gte=1,lte=50"`
	MinAltKm    float64 `json:"min_alt_km" default:"18"`
	MaxAltKm    float64 `json:"max_alt_km" default:"25"`
	Seed        uint64  `json:"seed"`
}

type RecommendFleetRequest struct {
	TargetLat          float64 `json:"target_lat"`
	TargetLon          float64 `json:"target_lon"`
	AOIRadiusKm        float64 `json:"aoi_radius_km" validate:"required,gt=0"`
	MissionDays        int     `json:"mission_days" default:"7" validate:"gte=1,lte=365"`
	Month              int     `json:"month" validate:"required,gte=1,lte=12"`
	TargetAvailability float64 `json:"target_availability" default:"0.95" validate:"gt=0,lt=1"`
	MaxPlatforms       int     `json:"max_platforms" default:"5" validate:"gte=1,lte=50"`
	Seed               uint64  `json:"seed"`
}

type MonteCarloRequest struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	AOIRadiusKm float64 `json:"aoi_radius_km" validate:"required,gt=0"`
	MissionDays int     `json:"mission_days" default:"7" validate:"gte=1,lte=365"`
	Month       int     `json:"month" validate:"required,gte=1,lte=12"`
	MinAltKm    float64 `json:"min_alt_km" default:"18"`
	MaxAltKm    float64 `json:"max_alt_km" default:"25"`
	NIterations int     `json:"n_iterations" default:"50" validate:"gte=1,lte=2000"`
	Seed        uint64  `json:"seed"`
}

type SeasonalRequest struct {
	Lat         float64 `query:"lat" json:"lat"`
	Lon         float64 `query:"lon" json:"lon"`
	AOIRadiusKm float64 `query:"aoi_radius_km" json:"aoi_radius_km" validate:"required,gt=0"`
	MissionDays int     `query:"mission_days" json:"mission_days" default:"7" validate:"gte=1,lte=365"`
	Seed        uint64  `query:"seed" json:"seed"`
}

type QuoteRequest struct {
	PlatformID     int     `json:"platform_id" validate:"required,gte=1"`
	PayloadID      int     `json:"payload_id" validate:"required,gte=1"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	Month          int     `json:"month" validate:"required,gte=1,lte=12"`
	DurationDays   int     `json:"duration_days" default:"30" validate:"gte=1,lte=365"`
	TargetRadiusKm float64 `json:"target_radius_km" validate:"required,gt=0"`
	MarginPercent  float64 `json:"margin_percent" default:"0.30" validate:"gte=0,lte=1"`
}

type RunsRequest struct {
	Limit int `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=500"`
}
