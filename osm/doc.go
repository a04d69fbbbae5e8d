/*
Package osm reads the OpenStreetMap side of the diff: stop nodes from
stops.osm and route relations from relations.osm, both exported as OSM XML.

Files are streamed with github.com/paulmach/osm/osmxml so large extracts
are never held as raw XML.

# Basic Usage

	stops, err := osm.LoadStops(ctx, cfg.OSMStopsPath())
	if err != nil {
	    return err
	}
	rels, err := osm.LoadRelations(ctx, cfg.OSMRelationsPath(), osm.IndexByOSMID(stops), nil)

# Tags

Stop nodes:

- gtfs_id: GTFS stop_id of the stop, may be missing
- ref: stop code shown to passengers
- name
- railway=*, train=yes, tram=yes: marks rail stops

Relations:

- name, ref, from, to, operator, network

Relation members that are nodes present in the stop index become the
relation's stops, numbered from 1 in member order. Ways and unknown nodes
are skipped; unknown nodes are reported through the MissingMemberFunc.
*/
package osm
