package utils

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/tidwall/geodesic"
)

// DistanceMeters returns the geodesic distance in meters between two WGS84
// coordinates, solved on the ellipsoid (Karney's inverse, which agrees with
// Vincenty to well under a millimeter and converges for antipodal points).
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(lat1, lon1, lat2, lon2, &s12, nil, nil)
	return s12
}

// PointDistanceMeters is DistanceMeters for orb points ([lon, lat]).
func PointDistanceMeters(a, b orb.Point) float64 {
	return DistanceMeters(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// PresentableDistance formats a distance for diagnostics
func PresentableDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	km := meters / 1000
	return fmt.Sprintf("%.1f km%s", km, ternary(km >= 10, " (far)", ""))
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
