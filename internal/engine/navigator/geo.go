package navigator

import "math"

const earthRadiusKm = 6371.0

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Haversine returns the great-circle distance in km between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := radians(lat1)
	lat2r := radians(lat2)
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// InitialBearing returns the initial great-circle bearing from point 1 to
// point 2, in degrees [0, 360).
func InitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := radians(lat1)
	lat2r := radians(lat2)
	dLon := radians(lon2 - lon1)

	x := math.Sin(dLon) * math.Cos(lat2r)
	y := math.Cos(lat1r)*math.Sin(lat2r) - math.Sin(lat1r)*math.Cos(lat2r)*math.Cos(dLon)

	return math.Mod(math.Atan2(x, y)*180/math.Pi+360, 360)
}
