package pricing

import (
	"math"

	"freight/internal/core/domain/model/kernel"
)

const earthRadiusKm = 6371

// Terminal is a carrier warehouse or drop-off point.
type Terminal struct {
	ID          kernel.UUID
	CarrierID   kernel.UUID
	Code        string
	Name        string
	Type        string
	CountryCode string
	City        string
	Address     string
	PostalCode  string
	Latitude    float64
	Longitude   float64
	Phone       string
	Email       string
	IsActive    bool
}

// DistanceTo returns the great-circle distance in kilometers to lat/lng.
func (t Terminal) DistanceTo(lat, lng float64) float64 {
	latFrom := degreesToRadians(t.Latitude)
	latTo := degreesToRadians(lat)
	latDelta := latTo - latFrom
	lngDelta := degreesToRadians(lng - t.Longitude)

	a := math.Pow(math.Sin(latDelta/2), 2) +
		math.Cos(latFrom)*math.Cos(latTo)*math.Pow(math.Sin(lngDelta/2), 2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// Nearest returns the active terminal closest to lat/lng and its distance.
func Nearest(terminals []Terminal, lat, lng float64) (Terminal, float64, bool) {
	var (
		best     Terminal
		bestDist float64
		found    bool
	)
	for _, t := range terminals {
		if !t.IsActive {
			continue
		}
		d := t.DistanceTo(lat, lng)
		if !found || d < bestDist {
			best, bestDist, found = t, d, true
		}
	}
	return best, bestDist, found
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
