package gtfs

import (
	"sort"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// NewFeed creates a feed from already converted records. Trips are sorted
// by id so that every consumer sees the same order.
func NewFeed(routes []transit.Route, stops []*transit.Stop, trips []*transit.Trip) *Feed {
	f := &Feed{
		routes: make(map[string]transit.Route, len(routes)),
		stops:  make(map[string]*transit.Stop, len(stops)),
		trips:  append([]*transit.Trip(nil), trips...),
	}
	for _, r := range routes {
		f.routes[r.ID] = r
	}
	for _, s := range stops {
		f.stops[s.GTFSID] = s
	}
	sort.SliceStable(f.trips, func(i, j int) bool { return f.trips[i].TripID < f.trips[j].TripID })
	return f
}

// Route returns the route with the given route_id
func (f *Feed) Route(routeID string) (transit.Route, bool) {
	r, ok := f.routes[routeID]
	return r, ok
}

// Routes returns the route table keyed by route_id
func (f *Feed) Routes() map[string]transit.Route { return f.routes }

func (f *Feed) Stop(stopID string) (*transit.Stop, bool) {
	s, ok := f.stops[stopID]
	return s, ok
}

// Stops returns all stops ordered by stop_id
func (f *Feed) Stops() []*transit.Stop {
	out := make([]*transit.Stop, 0, len(f.stops))
	for _, s := range f.stops {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GTFSID < out[j].GTFSID })
	return out
}

func (f *Feed) Trips() []*transit.Trip { return f.trips }

// ServedStops returns the stops visited by trips whose route exists and is
// accepted by valid, ordered by stop_id. A nil valid accepts every route.
func (f *Feed) ServedStops(valid func(transit.Route) bool) []*transit.Stop {
	seen := make(map[*transit.Stop]struct{})
	for _, t := range f.trips {
		route, ok := f.routes[t.RouteID]
		if !ok || t.Stops == nil || (valid != nil && !valid(route)) {
			continue
		}
		for pos := 1; pos <= t.Stops.Len(); pos++ {
			if s, ok := t.Stops.StopAt(pos); ok && s != nil {
				seen[s] = struct{}{}
			}
		}
	}

	out := make([]*transit.Stop, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GTFSID < out[j].GTFSID })
	return out
}
