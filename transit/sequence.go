package transit

import "strings"

// StopSequence is an ordered list of stops addressed by 1-based position.
type StopSequence interface {
	SequenceID() string
	Len() int
	StopAt(pos int) (*Stop, bool)
}

// EqualsStops reports whether a and b have the same length and Equal stops
// at every position.
func EqualsStops(a, b StopSequence) bool {
	if a == nil || b == nil || a.Len() != b.Len() {
		return false
	}
	for pos := 1; pos <= a.Len(); pos++ {
		sa, _ := a.StopAt(pos)
		sb, _ := b.StopAt(pos)
		if !sa.Equal(sb) {
			return false
		}
	}
	return true
}

// StopsAffinity counts the positions of a whose stop appears anywhere in b.
// Order is ignored; the score only ranks candidates for the same a.
func StopsAffinity(a, b StopSequence) int {
	if a == nil || b == nil {
		return 0
	}
	present := make(map[string]struct{}, b.Len())
	for pos := 1; pos <= b.Len(); pos++ {
		if s, ok := b.StopAt(pos); ok && s.GTFSID != "" {
			present[s.GTFSID] = struct{}{}
		}
	}
	affinity := 0
	for pos := 1; pos <= a.Len(); pos++ {
		s, ok := a.StopAt(pos)
		if !ok || s.GTFSID == "" {
			continue
		}
		if _, found := present[s.GTFSID]; found {
			affinity++
		}
	}
	return affinity
}

// Signature joins the GTFS ids of seq in order. Stops without id are "?".
func Signature(seq StopSequence) string {
	if seq == nil {
		return ""
	}
	ids := make([]string, 0, seq.Len())
	for pos := 1; pos <= seq.Len(); pos++ {
		s, ok := seq.StopAt(pos)
		if !ok || s.GTFSID == "" {
			ids = append(ids, "?")
			continue
		}
		ids = append(ids, s.GTFSID)
	}
	return strings.Join(ids, ",")
}

// StopTimes is the stop sequence of a scheduled trip, built from stop_times.txt.
type StopTimes struct {
	tripID string
	stops  []*Stop
}

// NewStopTimes creates the sequence of tripID; stops[0] gets position 1.
func NewStopTimes(tripID string, stops []*Stop) *StopTimes {
	return &StopTimes{tripID: tripID, stops: stops}
}

func (st *StopTimes) SequenceID() string { return st.tripID }

func (st *StopTimes) Len() int { return len(st.stops) }

func (st *StopTimes) StopAt(pos int) (*Stop, bool) {
	if pos < 1 || pos > len(st.stops) {
		return nil, false
	}
	return st.stops[pos-1], true
}
