// Package geo provides coordinate values and great-circle math for route
// rendering and map bounds.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// earthRadius is the mean earth radius in meters.
const earthRadius = 6371000.0

// ErrNoPoints is returned by BoundingBox when called with no input.
var ErrNoPoints = errors.New("geo: no points")

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks the coordinate ranges.
func (l Location) Validate() error {
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("geo: latitude %v out of range", l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("geo: longitude %v out of range", l.Lng)
	}
	return nil
}

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b Location) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0
	la1 := a.Lat * math.Pi / 180.0
	la2 := b.Lat * math.Pi / 180.0
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(la1)*math.Cos(la2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadius * c
}

// FormatDistance renders meters below 1km and kilometers to one decimal
// place at or above it.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

// Bounds is an axis-aligned box over coordinates.
type Bounds struct {
	Min Location
	Max Location
}

// BoundingBox returns the smallest box containing every point. A single
// point yields a degenerate box centered on it.
func BoundingBox(points []Location) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, ErrNoPoints
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.Lat = math.Min(b.Min.Lat, p.Lat)
		b.Min.Lng = math.Min(b.Min.Lng, p.Lng)
		b.Max.Lat = math.Max(b.Max.Lat, p.Lat)
		b.Max.Lng = math.Max(b.Max.Lng, p.Lng)
	}
	return b, nil
}
