package formatter

import (
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/hooks"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/matcher"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// Report is the presentation model shared by the text and JSON writers
type Report struct {
	Matched        []RelationRef       `json:"matched"`
	Unmatched      []UnmatchedRelation `json:"unmatched"`
	UnmatchedTrips []TripRef           `json:"unmatchedTrips"`
	Summary        Summary             `json:"summary"`
}

type RelationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmatchedRelation carries the closest trip and the position-by-position
// comparison with it. Best is nil when the relation was never compared.
type UnmatchedRelation struct {
	RelationRef
	Best  *BestMatch `json:"bestMatch,omitempty"`
	Stops []StopRow  `json:"stops,omitempty"`
}

type BestMatch struct {
	Score          int    `json:"score"`
	TripID         string `json:"tripId"`
	RouteShortName string `json:"routeShortName"`
	TripName       string `json:"tripName"`
}

// StopRow compares the stop codes found at one position. Empty means no stop.
type StopRow struct {
	Position int    `json:"position"`
	GTFS     string `json:"gtfs"`
	OSM      string `json:"osm"`
	Differs  bool   `json:"differs"`
}

type TripRef struct {
	TripID         string `json:"tripId"`
	Name           string `json:"name"`
	ShapeID        string `json:"shapeId"`
	RouteShortName string `json:"routeShortName"`
	RouteLongName  string `json:"routeLongName"`
}

type Summary struct {
	Matched        int `json:"matchedRelations"`
	Unmatched      int `json:"unmatchedRelations"`
	UnmatchedTrips int `json:"unmatchedTrips"`
}

// BuildReport converts a matcher result. Trip names go through hook.FixTripName.
func BuildReport(res *matcher.Result, routes map[string]transit.Route, hook hooks.Hook) Report {
	if hook == nil {
		hook = hooks.Default{}
	}

	rep := Report{
		Matched:        make([]RelationRef, 0, len(res.Matched)),
		Unmatched:      make([]UnmatchedRelation, 0, len(res.Unmatched)),
		UnmatchedTrips: make([]TripRef, 0, len(res.UnmatchedTrips)),
		Summary: Summary{
			Matched:        len(res.Matched),
			Unmatched:      len(res.Unmatched),
			UnmatchedTrips: len(res.UnmatchedTrips),
		},
	}

	for _, r := range res.Matched {
		rep.Matched = append(rep.Matched, RelationRef{ID: r.ID, Name: r.Name})
	}

	for _, r := range res.Unmatched {
		u := UnmatchedRelation{RelationRef: RelationRef{ID: r.ID, Name: r.Name}}
		if best, ok := res.Best(r); ok {
			u.Best = &BestMatch{
				Score:          best.Score,
				TripID:         best.Trip.TripID,
				RouteShortName: routes[best.Trip.RouteID].ShortName,
				TripName:       hook.FixTripName(best.Trip.Name),
			}
			u.Stops = compareStops(best.Trip.Stops, r)
		}
		rep.Unmatched = append(rep.Unmatched, u)
	}

	for _, t := range res.UnmatchedTrips {
		route := routes[t.RouteID]
		rep.UnmatchedTrips = append(rep.UnmatchedTrips, TripRef{
			TripID:         t.TripID,
			Name:           hook.FixTripName(t.Name),
			ShapeID:        t.ShapeID,
			RouteShortName: route.ShortName,
			RouteLongName:  route.LongName,
		})
	}
	return rep
}

func compareStops(gtfs *transit.StopTimes, osm *transit.Relation) []StopRow {
	n := osm.Len()
	if gtfs != nil && gtfs.Len() > n {
		n = gtfs.Len()
	}

	rows := make([]StopRow, 0, n)
	for pos := 1; pos <= n; pos++ {
		row := StopRow{Position: pos}
		var g, o *transit.Stop
		if gtfs != nil {
			g, _ = gtfs.StopAt(pos)
		}
		o, _ = osm.StopAt(pos)
		if g != nil {
			row.GTFS = g.Code
		}
		if o != nil {
			row.OSM = o.Code
		}
		row.Differs = g == nil || o == nil || g.Code != o.Code
		rows = append(rows, row)
	}
	return rows
}
