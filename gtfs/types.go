package gtfs

import "github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"

// Feed is the scheduled side of the diff, converted to the transit model
type Feed struct {
	routes map[string]transit.Route // route_id -> route
	stops  map[string]*transit.Stop // stop_id -> stop
	trips  []*transit.Trip          // ordered by trip_id
}
