package transit

import "strings"

// Route is a line from routes.txt.
type Route struct {
	ID        string
	ShortName string
	LongName  string
}

// Trip is a scheduled trip together with its stop sequence.
type Trip struct {
	TripID  string
	RouteID string
	ShapeID string
	Name    string
	Stops   *StopTimes
}

// Equal reports whether t and o run the same route and shape through the
// same stops. Trip ids are not compared: departures of one pattern are equal.
func (t *Trip) Equal(o *Trip) bool {
	if t == nil || o == nil {
		return false
	}
	if t.RouteID != o.RouteID || t.ShapeID != o.ShapeID {
		return false
	}
	if t.Stops == nil || o.Stops == nil {
		return t.Stops == nil && o.Stops == nil
	}
	return EqualsStops(t.Stops, o.Stops)
}

// Compare orders trips by route id, shape id and, when both have stops,
// sequence id. It only exists to make iteration deterministic.
func (t *Trip) Compare(o *Trip) int {
	if c := strings.Compare(t.RouteID, o.RouteID); c != 0 {
		return c
	}
	c := strings.Compare(t.ShapeID, o.ShapeID)
	if c == 0 && t.Stops != nil && o.Stops != nil {
		return strings.Compare(t.Stops.SequenceID(), o.Stops.SequenceID())
	}
	return c
}
