// Package geo holds a plain 2D point that can be built from cartesian, polar or
// geographic input, and great-circle distances over such points.
//
// A Point does not remember how it was built. Geographic points keep latitude
// in X and longitude in Y, both in degrees, and the distance functions assume
// that layout.
package geo

import (
	"fmt"
	"math"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used by the haversine functions.
const EarthRadiusKm = 6371.0

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string { return fmt.Sprintf("x: %g, y: %g", p.X, p.Y) }

func FromCartesian(x, y float64) Point { return Point{X: x, Y: y} }

// FromPolar converts a radius and an angle in radians.
func FromPolar(rho, theta float64) Point {
	return Point{X: rho * math.Cos(theta), Y: rho * math.Sin(theta)}
}

// FromGeographic stores lat/lon degrees as given, no conversion.
func FromGeographic(lat, lon float64) Point { return Point{X: lat, Y: lon} }

// System names the interpretation used by New.
type System string

const (
	Cartesian  System = "cartesian"
	Polar      System = "polar"
	Geographic System = "geographic"
)

// New builds a point from a and b according to sys.
func New(sys System, a, b float64) (Point, error) {
	switch System(strings.ToLower(string(sys))) {
	case Cartesian, "":
		return FromCartesian(a, b), nil
	case Polar:
		return FromPolar(a, b), nil
	case Geographic:
		return FromGeographic(a, b), nil
	}
	return Point{}, fmt.Errorf("unknown coordinate system %q", sys)
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180.0 }

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := lat2 - lat1
	dlon := lon2 - lon1
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// HaversineDistance returns the great-circle distance in kilometers between
// two geographic points.
func HaversineDistance(p1, p2 Point) float64 {
	return haversine(deg2rad(p1.X), deg2rad(p1.Y), deg2rad(p2.X), deg2rad(p2.Y))
}

// LegacyHaversineDistance matches earlier distance reports: the first point's
// longitude is taken from p2, so the longitude delta is always zero and only the
// latitude difference contributes.
func LegacyHaversineDistance(p1, p2 Point) float64 {
	return haversine(deg2rad(p1.X), deg2rad(p2.Y), deg2rad(p2.X), deg2rad(p2.Y))
}

type DistanceFunc func(p1, p2 Point) float64

// Distance picks the haversine variant for mode ("standard" or "legacy").
func Distance(mode string) (DistanceFunc, error) {
	switch strings.ToLower(mode) {
	case "", "standard":
		return HaversineDistance, nil
	case "legacy":
		return LegacyHaversineDistance, nil
	}
	return nil, fmt.Errorf("unknown haversine mode %q", mode)
}
