// Package geo holds the spherical-earth helpers shared by discovery and
// contact sync.
package geo

import "math"

const earthRadiusKM = 6371.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Box is a rectangular lat/lng envelope. NE and SW are the corners the
// upstream inBox endpoints expect.
type Box struct {
	NE Point `json:"ne"`
	SW Point `json:"sw"`
}

// BoundingBox converts a center point and radius into a rectangular envelope
// using a spherical-earth approximation. The box over-approximates the
// circle, so it is only suitable as an inclusive pre-filter; exact radius
// checks go through Haversine downstream.
func BoundingBox(lat, lng, radiusKM float64) Box {
	latDelta := (radiusKM / earthRadiusKM) * (180 / math.Pi)
	lngDelta := latDelta / math.Cos(lat*math.Pi/180)

	return Box{
		NE: Point{Lat: lat + latDelta, Lng: lng + lngDelta},
		SW: Point{Lat: lat - latDelta, Lng: lng - lngDelta},
	}
}

// Haversine returns the great-circle distance in kilometers between two
// points.
func Haversine(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}
