package matcher

import (
	"slices"
	"sort"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// GroupTrips buckets trips by route, shape and stop signature. The result
// is built once and not modified afterwards.
func GroupTrips(trips []*transit.Trip) map[string][]*transit.Trip {
	groups := make(map[string][]*transit.Trip)
	for _, t := range trips {
		k := groupKey(t)
		groups[k] = append(groups[k], t)
	}
	return groups
}

// SortedKeys returns the group keys in ascending order
func SortedKeys(groups map[string][]*transit.Trip) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UniqueTrips drops trips Equal to an earlier one and returns the rest
// ordered by Trip.Compare. The first trip of each pattern, in that order, is kept.
func UniqueTrips(trips []*transit.Trip) []*transit.Trip {
	sorted := append([]*transit.Trip(nil), trips...)
	slices.SortStableFunc(sorted, func(a, b *transit.Trip) int { return a.Compare(b) })

	unique := make([]*transit.Trip, 0, len(sorted))
	for _, t := range sorted {
		if !slices.ContainsFunc(unique, t.Equal) {
			unique = append(unique, t)
		}
	}
	return unique
}

// Departures returns trip followed by every other trip of group Equal to it,
// in Trip.Compare order.
func Departures(group []*transit.Trip, trip *transit.Trip) []*transit.Trip {
	out := []*transit.Trip{trip}
	for _, t := range group {
		if t != trip && trip.Equal(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out[1:], func(a, b *transit.Trip) int { return a.Compare(b) })
	return out
}

func groupKey(t *transit.Trip) string {
	sig := ""
	if t.Stops != nil {
		sig = transit.Signature(t.Stops)
	}
	return t.RouteID + "/" + t.ShapeID + "/" + sig
}
