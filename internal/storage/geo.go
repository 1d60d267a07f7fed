package storage

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371

// haversineKm is the great-circle distance between two points in km.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// nearestFrom filters candidates to those within rangeKm of the origin and
// sorts them nearest first. Distance runs in Go so both SQL backends share
// one parameterized candidate query.
func nearestFrom(candidates []Spot, lat, lon, rangeKm float64) []SpotResult {
	results := []SpotResult{}
	for _, s := range candidates {
		d := haversineKm(lat, lon, s.Lat, s.Lon)
		if d < rangeKm {
			results = append(results, SpotResult{Spot: s, DistanceKm: d})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results
}
