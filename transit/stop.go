package transit

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Stop is a physical stop as seen by one of the two sources.
// Empty GTFSID or Code means the value is absent.
type Stop struct {
	GTFSID    string
	Code      string
	Lat       float64
	Lon       float64
	Name      string
	IsRailway bool
	OSMID     string // node id, OSM side only
}

// Equal reports GTFS id identity. A stop without id never equals anything.
func (s *Stop) Equal(o *Stop) bool {
	if s == nil || o == nil || s.GTFSID == "" {
		return false
	}
	return s.GTFSID == o.GTFSID
}

// Point returns the stop location as an orb point ([lon, lat]).
func (s *Stop) Point() orb.Point {
	return orb.Point{s.Lon, s.Lat}
}

func (s *Stop) String() string {
	if s == nil {
		return "Stop [nil]"
	}
	str := fmt.Sprintf("Stop [gtfsId=%s, code=%s, lat=%g, lon=%g, name=%s", s.GTFSID, s.Code, s.Lat, s.Lon, s.Name)
	if s.OSMID != "" {
		str += ", osmid=" + s.OSMID
	}
	return str + "]"
}
