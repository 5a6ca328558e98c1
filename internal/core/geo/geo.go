// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package geo provides great-circle distance math and the geolocation boundary
used by radius searches.

Distances use the haversine formula on a spherical earth of radius 6371 km.
Inputs are WGS84 degrees, outputs are kilometres. NaN or out-of-range
coordinates are not guarded and produce undefined results.
*/
package geo

import "math"

// EarthRadiusKm is the mean earth radius used by [DistanceKm].
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the haversine distance in kilometres between two
// coordinates given in degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// DistanceTo returns the distance in kilometres from p to other.
func (p Point) DistanceTo(other Point) float64 {
	return DistanceKm(p.Lat, p.Lng, other.Lat, other.Lng)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
