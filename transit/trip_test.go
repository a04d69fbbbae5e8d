package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripEqual(t *testing.T) {
	base := &Trip{TripID: "t1", RouteID: "r", ShapeID: "s", Stops: NewStopTimes("t1", stops("A", "B"))}

	tests := []struct {
		name  string
		other *Trip
		want  bool
	}{
		{
			name:  "other departure of the same pattern",
			other: &Trip{TripID: "t2", RouteID: "r", ShapeID: "s", Stops: NewStopTimes("t2", stops("A", "B"))},
			want:  true,
		},
		{
			name:  "different route",
			other: &Trip{TripID: "t2", RouteID: "x", ShapeID: "s", Stops: NewStopTimes("t2", stops("A", "B"))},
			want:  false,
		},
		{
			name:  "different shape",
			other: &Trip{TripID: "t2", RouteID: "r", ShapeID: "x", Stops: NewStopTimes("t2", stops("A", "B"))},
			want:  false,
		},
		{
			name:  "different stops",
			other: &Trip{TripID: "t2", RouteID: "r", ShapeID: "s", Stops: NewStopTimes("t2", stops("A", "C"))},
			want:  false,
		},
		{
			name:  "nil",
			other: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
}

func TestTripCompare(t *testing.T) {
	mk := func(route, shape, trip string) *Trip {
		return &Trip{TripID: trip, RouteID: route, ShapeID: shape, Stops: NewStopTimes(trip, nil)}
	}

	assert.Negative(t, mk("1", "b", "z").Compare(mk("2", "a", "a")))
	assert.Negative(t, mk("1", "a", "z").Compare(mk("1", "b", "a")))
	assert.Negative(t, mk("1", "a", "a").Compare(mk("1", "a", "b")))
	assert.Zero(t, mk("1", "a", "a").Compare(mk("1", "a", "a")))
	assert.Positive(t, mk("1", "a", "b").Compare(mk("1", "a", "a")))

	noStops := &Trip{TripID: "x", RouteID: "1", ShapeID: "a"}
	assert.Zero(t, noStops.Compare(mk("1", "a", "b")), "sequence id is ignored when a side has no stops")
}

func TestPairing(t *testing.T) {
	p := NewPairing()
	feedA, feedB := &Stop{GTFSID: "A"}, &Stop{GTFSID: "B"}
	osm1 := &Stop{OSMID: "1"}

	p.Pair(feedA, osm1)
	got, ok := p.OSMFor(feedA)
	assert.True(t, ok)
	assert.Same(t, osm1, got)

	p.Pair(feedB, osm1)
	_, ok = p.OSMFor(feedA)
	assert.False(t, ok, "re-pairing the osm stop drops the old link")
	back, ok := p.FeedFor(osm1)
	assert.True(t, ok)
	assert.Same(t, feedB, back)
	assert.Equal(t, 1, p.Len())
}
