package services

import "math"

const earthRadiusM = 6371000.0 // Radius of Earth in meters

// HaversineMeters returns the great-circle distance between two points in
// meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * (math.Pi / 180.0)
	p2 := lat2 * (math.Pi / 180.0)
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}

const metersPerMile = 1609.344

// MilesToMeters converts miles to whole meters, the unit radii are sent in.
func MilesToMeters(miles float64) int {
	return int(miles * metersPerMile)
}

// MetersToMiles converts meters to miles. Rounding for display happens at
// pick assembly, not here.
func MetersToMiles(meters float64) float64 {
	return meters / metersPerMile
}
