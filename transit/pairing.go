package transit

// Pairing links feed stops to the OSM stops they were resolved to.
// It is a lookup index; neither side owns the other.
type Pairing struct {
	byFeed map[*Stop]*Stop
	byOSM  map[*Stop]*Stop
}

func NewPairing() *Pairing {
	return &Pairing{
		byFeed: map[*Stop]*Stop{},
		byOSM:  map[*Stop]*Stop{},
	}
}

// Pair records feed <-> osm, replacing any earlier link of either stop.
func (p *Pairing) Pair(feed, osm *Stop) {
	if old, ok := p.byFeed[feed]; ok {
		delete(p.byOSM, old)
	}
	if old, ok := p.byOSM[osm]; ok {
		delete(p.byFeed, old)
	}
	p.byFeed[feed] = osm
	p.byOSM[osm] = feed
}

func (p *Pairing) OSMFor(feed *Stop) (*Stop, bool) {
	s, ok := p.byFeed[feed]
	return s, ok
}

func (p *Pairing) FeedFor(osm *Stop) (*Stop, bool) {
	s, ok := p.byOSM[osm]
	return s, ok
}

// Len returns the number of pairs.
func (p *Pairing) Len() int { return len(p.byFeed) }
