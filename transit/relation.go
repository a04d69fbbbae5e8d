package transit

// Relation is an OSM route relation with its stop members in member order.
type Relation struct {
	ID       string
	Name     string
	Ref      string
	From     string
	To       string
	Operator string
	Network  string
	stops    []*Stop
}

// NewRelation creates a relation; stops[0] gets position 1.
func NewRelation(id, name string, stops []*Stop) *Relation {
	return &Relation{ID: id, Name: name, stops: stops}
}

func (r *Relation) SequenceID() string { return r.ID }

func (r *Relation) Len() int { return len(r.stops) }

func (r *Relation) StopAt(pos int) (*Stop, bool) {
	if pos < 1 || pos > len(r.stops) {
		return nil, false
	}
	return r.stops[pos-1], true
}
