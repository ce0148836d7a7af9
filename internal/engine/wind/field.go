// Package wind implements the stratified stratospheric wind model. Wind
// vectors vary strongly with altitude between 18 and 25 km, which is what
// makes altitude-control navigation possible in the first place: the
// platform climbs or descends to ride a layer blowing the right way.
package wind

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"stratosim/internal/domain/models"
)

// Layer bounds of the model in km. Altitudes outside are clamped.
const (
	MinLayerKm = 18.0
	MaxLayerKm = 25.0
)

// Layers enumerates the discrete altitude layers of the model.
var Layers = []float64{18, 19, 20, 21, 22, 23, 24, 25}

type layerWind struct {
	speedKmh float64
	dirDeg   float64
}

// basePattern is the climatological mean per layer: easterlies in the lower
// stratosphere, a transition near 20-21 km, strengthening westerlies above.
var basePattern = map[float64]layerWind{
	18: {15, 90},
	19: {12, 75},
	20: {10, 0},
	21: {18, 270},
	22: {25, 260},
	23: {30, 255},
	24: {35, 250},
	25: {40, 245},
}

// ErrNoViableAltitude is returned when no model layer falls inside the
// requested altitude band.
var ErrNoViableAltitude = errors.New("no viable altitude layer in band")

// Field is the stratified wind model. It is stateless; all randomness is
// supplied by the caller so runs replay exactly from a seed.
type Field struct{}

func New() *Field { return &Field{} }

// Steady returns the deterministic wind vector at the given position,
// altitude and month, with no stochastic variation.
func (f *Field) Steady(lat, lon, altKm float64, month int) models.WindVector {
	return f.vector(lat, lon, altKm, month, nil)
}

// Vector returns the wind vector with stochastic gust noise drawn from rng.
// A nil rng degrades to the steady value.
func (f *Field) Vector(lat, lon, altKm float64, month int, rng *rand.Rand) models.WindVector {
	return f.vector(lat, lon, altKm, month, rng)
}

func (f *Field) vector(lat, lon, altKm float64, month int, rng *rand.Rand) models.WindVector {
	alt := math.Max(MinLayerKm, math.Min(MaxLayerKm, altKm))

	base := basePattern[closestLayer(alt)]

	speed := base.speedKmh * seasonalFactor(lat, month) * latitudeFactor(lat)
	direction := math.Mod(base.dirDeg+lat*0.5+float64(month)*3, 360)
	if direction < 0 {
		direction += 360
	}

	if rng != nil {
		speed *= 0.8 + 0.4*rng.Float64()
		direction = math.Mod(direction+(rng.Float64()*30-15)+360, 360)
	}

	return models.WindVector{
		SpeedKmh:     round1(speed),
		DirectionDeg: round1(direction),
		AltitudeKm:   alt,
	}
}

// Profile returns the steady wind at every model layer, lowest first.
func (f *Field) Profile(lat, lon float64, month int) []models.WindVector {
	out := make([]models.WindVector, 0, len(Layers))
	for _, alt := range Layers {
		out = append(out, f.Steady(lat, lon, alt, month))
	}
	return out
}

// OptimalAltitude scans the model layers inside band for the one whose
// travel heading comes closest to targetHeadingDeg. Layers are scanned
// bottom-up and ties keep the lower layer, so the result is deterministic.
func (f *Field) OptimalAltitude(lat, lon, targetHeadingDeg float64, month int, band models.AltitudeBand) (float64, float64, error) {
	bestAlt := -1.0
	bestErr := math.MaxFloat64

	for _, alt := range Layers {
		if alt < band.MinKm || alt > band.MaxKm {
			continue
		}
		w := f.Steady(lat, lon, alt, month)
		e := headingError(targetHeadingDeg, w.TravelHeadingDeg())
		if e < bestErr {
			bestErr = e
			bestAlt = alt
		}
	}

	if bestAlt < 0 {
		return 0, 0, fmt.Errorf("band [%.1f, %.1f] km: %w", band.MinKm, band.MaxKm, ErrNoViableAltitude)
	}
	return bestAlt, bestErr, nil
}

// Drift advances a position by riding wind w for the given hours on a
// flat-earth approximation. The longitude scale is floored near the poles
// to keep the conversion finite.
func (f *Field) Drift(lat, lon float64, w models.WindVector, hours float64) (float64, float64, float64) {
	east, north := w.Components()
	eastKm := east * hours
	northKm := north * hours

	newLat := lat + northKm/111.0
	newLon := lon + eastKm/(111.0*math.Max(0.1, math.Cos(lat*math.Pi/180)))
	distance := math.Hypot(eastKm, northKm)

	return newLat, newLon, distance
}

// seasonalFactor strengthens winds in hemisphere winter, when the polar
// vortex spins up the stratospheric circulation.
func seasonalFactor(lat float64, month int) float64 {
	winter := map[int]bool{11: true, 12: true, 1: true, 2: true, 3: true}
	if lat <= 0 {
		winter = map[int]bool{5: true, 6: true, 7: true, 8: true, 9: true}
	}
	if winter[month] {
		return 1.3 + 0.5*(math.Abs(lat)/90)
	}
	return 0.9 + 0.1*(math.Abs(lat)/90)
}

// latitudeFactor boosts the jet stream zone and calms the tropics.
func latitudeFactor(lat float64) float64 {
	absLat := math.Abs(lat)
	switch {
	case absLat >= 30 && absLat <= 60:
		return 1.2 + 0.3*((absLat-30)/30)
	case absLat < 30:
		return 0.7 + 0.5*(absLat/30)
	default:
		return 1.0
	}
}

// headingError is the absolute angular difference on the circle, in [0, 180].
func headingError(target, actual float64) float64 {
	e := math.Abs(target - actual)
	if e > 180 {
		e = 360 - e
	}
	return e
}

func closestLayer(alt float64) float64 {
	best := Layers[0]
	bestDist := math.Abs(alt - best)
	for _, l := range Layers[1:] {
		if d := math.Abs(alt - l); d < bestDist {
			bestDist = d
			best = l
		}
	}
	return best
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
