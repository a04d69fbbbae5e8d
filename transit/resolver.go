package transit

import (
	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/utils"
)

// Distance thresholds in meters used by Seams.
const (
	SameRefMaxMeters     = 50.0
	SameRefWarnMaxMeters = 10000.0
	UnrelatedMaxMeters   = 5.0
)

// NearMissFunc receives stops that share a ref but lie between
// SameRefMaxMeters and SameRefWarnMaxMeters apart.
type NearMissFunc func(a, b *Stop, meters float64)

// Resolver decides whether two stops from different sources are the same
// physical stop.
type Resolver struct {
	distance   func(a, b orb.Point) float64
	onNearMiss NearMissFunc
}

// NewResolver creates a resolver using ellipsoidal distances. onNearMiss may be nil.
func NewResolver(onNearMiss NearMissFunc) *Resolver {
	return &Resolver{distance: utils.PointDistanceMeters, onNearMiss: onNearMiss}
}

// Seams reports whether a and b denote the same stop.
//
// Stops sharing a ref match within SameRefMaxMeters, or at any distance
// when their GTFS ids agree. Otherwise stops match only within
// UnrelatedMaxMeters, and only when neither has a GTFS id or both have the
// same one.
func (r *Resolver) Seams(a, b *Stop) bool {
	if a == nil || b == nil {
		return false
	}
	dist := r.distance(a.Point(), b.Point())
	if a.Code != "" && a.Code == b.Code {
		if dist < SameRefMaxMeters || sameGTFSID(a, b) {
			return true
		}
		if dist < SameRefWarnMaxMeters && r.onNearMiss != nil {
			r.onNearMiss(a, b, dist)
		}
		return false
	}
	if dist >= UnrelatedMaxMeters {
		return false
	}
	return (a.GTFSID == "" && b.GTFSID == "") || sameGTFSID(a, b)
}

func sameGTFSID(a, b *Stop) bool {
	return a.GTFSID != "" && a.GTFSID == b.GTFSID
}
