/*
Package transit holds the shared data model of the diff: stops, routes,
trips and OSM route relations, together with the two primitives the matcher
is built on.

# Stop identity

A Stop is identified by its GTFS id. Two stops are Equal only when both
carry a non-empty GTFS id and the ids match; a stop without an id is equal
to nothing, itself included.

Geometric identity is weaker and is decided by Resolver.Seams:

	r := transit.NewResolver(func(a, b *transit.Stop, meters float64) {
	    log.Printf("same ref, %.0f m apart: %s -> %s", meters, a, b)
	})
	if r.Seams(feedStop, osmStop) {
	    pairing.Pair(feedStop, osmStop)
	}

# Stop sequences

Trips (through their StopTimes) and Relations both expose an ordered,
1-based list of stops via the StopSequence interface. EqualsStops and
StopsAffinity compare any two sequences regardless of where they came from.
*/
package transit
