package geo

import (
	"math"

	"store-locator/internal/types"
)

const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle (haversine) distance between two
// coordinates in kilometers, rounded to 2 decimal places.
func DistanceKm(a, b types.Coords) float64 {
	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	deltaLat := degreesToRadians(b.Latitude - a.Latitude)
	deltaLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return roundKm(earthRadiusKm * c)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
