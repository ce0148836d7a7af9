package models

import "math"

// WindVector is the wind at one point of the stratified model. Direction uses
// the meteorological "from" convention: 0 = wind out of the north.
type WindVector struct {
	SpeedKmh     float64 `json:"speed_kmh"`
	DirectionDeg float64 `json:"direction_deg"`
	AltitudeKm   float64 `json:"altitude_km"`
}

// Components returns the (east, north) velocity components in km/h,
// treating the direction angle as a bearing.
func (w WindVector) Components() (east, north float64) {
	rad := w.DirectionDeg * math.Pi / 180
	return w.SpeedKmh * math.Sin(rad), w.SpeedKmh * math.Cos(rad)
}

// TravelHeadingDeg is the direction a free-floating platform actually moves:
// opposite the "from" direction.
func (w WindVector) TravelHeadingDeg() float64 {
	return math.Mod(w.DirectionDeg+180, 360)
}
