package service

import "math"

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// WGS-84 coordinates, using the Haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// DistanceFrom computes the distance from an optional viewer coordinate.
// It returns nil when either coordinate is missing: an unknown distance is
// not zero, and callers must not filter or sort on it.
func DistanceFrom(userLat, userLng *float64, lat, lng float64) *float64 {
	if userLat == nil || userLng == nil {
		return nil
	}
	d := Distance(*userLat, *userLng, lat, lng)
	return &d
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
