package gtfs

import (
	"fmt"
	"sort"

	"github.com/patrickbr/gtfsparser"
	pgtfs "github.com/patrickbr/gtfsparser/gtfs"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// Load parses a GTFS feed from a directory or zip file.
func Load(path string) (*Feed, error) {
	parsed := gtfsparser.NewFeed()
	if err := parsed.Parse(path); err != nil {
		return nil, fmt.Errorf("parse gtfs %s: %w", path, err)
	}
	return convert(parsed), nil
}

func convert(parsed *gtfsparser.Feed) *Feed {
	routes := make([]transit.Route, 0, len(parsed.Routes))
	for _, r := range parsed.Routes {
		routes = append(routes, transit.Route{ID: r.Id, ShortName: r.Short_name, LongName: r.Long_name})
	}

	stops := make(map[*pgtfs.Stop]*transit.Stop, len(parsed.Stops))
	stopList := make([]*transit.Stop, 0, len(parsed.Stops))
	for _, s := range parsed.Stops {
		st := &transit.Stop{
			GTFSID: s.Id,
			Code:   s.Code,
			Lat:    float64(s.Lat),
			Lon:    float64(s.Lon),
			Name:   s.Name,
		}
		stops[s] = st
		stopList = append(stopList, st)
	}

	trips := make([]*transit.Trip, 0, len(parsed.Trips))
	for _, t := range parsed.Trips {
		trips = append(trips, convertTrip(t, stops))
	}
	return NewFeed(routes, stopList, trips)
}

func convertTrip(t *pgtfs.Trip, stops map[*pgtfs.Stop]*transit.Stop) *transit.Trip {
	stopTimes := make([]pgtfs.StopTime, len(t.StopTimes))
	copy(stopTimes, t.StopTimes)
	sort.SliceStable(stopTimes, func(i, j int) bool { return stopTimes[i].Sequence() < stopTimes[j].Sequence() })

	seq := make([]*transit.Stop, 0, len(stopTimes))
	for i := range stopTimes {
		if s, ok := stops[stopTimes[i].Stop()]; ok {
			seq = append(seq, s)
		}
	}

	trip := &transit.Trip{
		TripID: t.Id,
		Name:   tripName(t),
		Stops:  transit.NewStopTimes(t.Id, seq),
	}
	if t.Route != nil {
		trip.RouteID = t.Route.Id
	}
	if t.Shape != nil {
		trip.ShapeID = t.Shape.Id
	}
	return trip
}

// tripName prefers the headsign, then the public trip short name
func tripName(t *pgtfs.Trip) string {
	if t.Headsign != nil && *t.Headsign != "" {
		return *t.Headsign
	}
	if t.Short_name != nil {
		return *t.Short_name
	}
	return ""
}
