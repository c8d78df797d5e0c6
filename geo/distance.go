package geo

import (
	"math"

	"github.com/foundernet/ecosystem-api/schema"
)

// earthRadiusKM is the mean Earth radius used by the haversine formula.
const earthRadiusKM = 6371.0

// Distance returns the great-circle distance between two coordinates in
// kilometers. No projection correction is applied; the error is negligible
// at the city-scale radii this service works with.
func Distance(a, b schema.Location) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Nearby filters candidates down to those within radiusKM of origin and
// annotates each match with its computed distance. The comparison is
// inclusive: a candidate sitting exactly on the radius is kept.
func Nearby(origin schema.Location, radiusKM float64, candidates []schema.HelpRequest) []schema.NearbyHelpRequest {
	matches := make([]schema.NearbyHelpRequest, 0)

	for _, candidate := range candidates {
		d := Distance(origin, candidate.Location())
		if d <= radiusKM {
			matches = append(matches, schema.NearbyHelpRequest{
				HelpRequest: candidate,
				DistanceKM:  d,
			})
		}
	}

	return matches
}
