package matcher

import (
	"log/slog"
	"slices"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/hooks"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// Affinity is the closest trip seen so far for a relation
type Affinity struct {
	Trip  *transit.Trip
	Score int
}

// Result holds the partition of relations after a run
type Result struct {
	Matched        []*transit.Relation // in match order
	Unmatched      []*transit.Relation // in input order
	UnmatchedTrips []*transit.Trip
	best           map[*transit.Relation]Affinity
}

// Best returns the best affinity recorded for rel. ok is false when rel was
// never compared against a trip.
func (r *Result) Best(rel *transit.Relation) (Affinity, bool) {
	a, ok := r.best[rel]
	return a, ok
}

// Matcher assigns GTFS trips to OSM relations
type Matcher struct {
	hook     hooks.Hook
	routes   map[string]transit.Route
	logger   *slog.Logger
	warnings *WarningAggregator
}

// New creates a matcher. A nil logger uses slog.Default; a nil aggregator
// discards warnings.
func New(hook hooks.Hook, routes map[string]transit.Route, logger *slog.Logger, warnings *WarningAggregator) *Matcher {
	if hook == nil {
		hook = hooks.Default{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if warnings == nil {
		warnings = NewWarningAggregator()
	}
	return &Matcher{hook: hook, routes: routes, logger: logger, warnings: warnings}
}

// Run matches every valid trip against the relations not matched yet.
//
// Groups are visited in key order and unique trips in Trip.Compare order.
// A trip matches a relation with equal stops, or one the hook declares the
// same as any departure of the trip's pattern; if several relations qualify
// the last one scanned is taken. Each relation remembers the trip with the
// highest affinity, keeping the first on ties.
func (m *Matcher) Run(relations []*transit.Relation, trips []*transit.Trip) *Result {
	res := &Result{
		Unmatched: append([]*transit.Relation(nil), relations...),
		best:      make(map[*transit.Relation]Affinity),
	}

	groups := GroupTrips(trips)
	for _, key := range SortedKeys(groups) {
		group := groups[key]
		for _, trip := range UniqueTrips(group) {
			route, ok := m.routes[trip.RouteID]
			if !ok {
				m.warnings.Add(WarningRouteNotFound, trip.TripID)
				m.logger.Warn("trip route not found", slog.String("trip_id", trip.TripID), slog.String("route_id", trip.RouteID))
				continue
			}
			if !m.hook.IsValidRoute(route) {
				continue
			}
			m.matchTrip(res, trip, route, Departures(group, trip))
		}
	}
	return res
}

func (m *Matcher) matchTrip(res *Result, trip *transit.Trip, route transit.Route, departures []*transit.Trip) {
	seq := stopsOf(trip)

	var found *transit.Relation
	candidates := 0
	for _, rel := range res.Unmatched {
		if transit.EqualsStops(rel, seq) || m.forced(rel, departures) {
			found = rel
			candidates++
		}
		score := transit.StopsAffinity(rel, seq)
		if old, ok := res.best[rel]; !ok || score > old.Score {
			res.best[rel] = Affinity{Trip: trip, Score: score}
		}
	}

	if found == nil {
		res.UnmatchedTrips = append(res.UnmatchedTrips, trip)
		m.warnings.Add(WarningTripNotInOSM, trip.TripID)
		m.logger.Warn("trip not found in OSM",
			slog.String("trip_id", trip.TripID),
			slog.String("name", trip.Name),
			slog.String("shape_id", trip.ShapeID),
			slog.String("route_short_name", route.ShortName),
			slog.String("route_long_name", route.LongName))
		return
	}

	if candidates > 1 {
		m.warnings.Add(WarningAmbiguousMatch, trip.TripID)
		m.logger.Warn("trip matches several relations",
			slog.String("trip_id", trip.TripID),
			slog.Int("candidates", candidates),
			slog.String("relation_id", found.ID))
	}
	res.Unmatched = slices.DeleteFunc(res.Unmatched, func(r *transit.Relation) bool { return r == found })
	res.Matched = append(res.Matched, found)
}

// forced asks the hook about every departure, so sameAs may name any of them
func (m *Matcher) forced(rel *transit.Relation, departures []*transit.Trip) bool {
	for _, d := range departures {
		if m.hook.IsRelationSameAs(rel, stopsOf(d)) {
			return true
		}
	}
	return false
}

func stopsOf(t *transit.Trip) *transit.StopTimes {
	if t.Stops == nil {
		return transit.NewStopTimes(t.TripID, nil)
	}
	return t.Stops
}
