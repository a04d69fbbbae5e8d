/*
Package gtfs loads the scheduled side of the diff from a GTFS static feed.

Parsing is delegated to github.com/patrickbr/gtfsparser; this package only
converts routes, stops and trips into the transit model and keeps them in
deterministic order.

# Basic Usage

	feed, err := gtfs.Load("/data/gtfs")      // directory
	feed, err := gtfs.Load("/data/gtfs.zip")  // or zip
	if err != nil {
	    log.Fatal(err)
	}

	for _, trip := range feed.Trips() {
	    route, _ := feed.Route(trip.RouteID)
	    fmt.Println(route.ShortName, trip.Name, trip.Stops.Len())
	}

# Data Structure

The feed provides:

- Routes (route_id → short name, long name)
- Stops (stop_id → code, name, lat/lon)
- Trips ordered by trip_id, each with its stops in stop_sequence order

The trip name is the trip_headsign, falling back to trip_short_name.
Stop times are reduced to their stops; times are not needed for matching.
*/
package gtfs
