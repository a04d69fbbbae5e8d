package matcher

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/mozillazg/go-unidecode"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/hooks"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/utils"
)

// Cells of this level are ~150 m wide, so a cell and its neighbours cover
// every stop within transit.UnrelatedMaxMeters.
const pairingCellLevel = 16

// PairOptions configures PairStops
type PairOptions struct {
	Hook           hooks.Hook
	NameSimilarity int // fuzzy ratio below which paired names are reported, 0 disables
	Warnings       *WarningAggregator
	Logger         *slog.Logger
}

// PairStops links every feed stop to the first OSM stop it Seams with.
// Candidates sharing the stop code are tried first, then stops in the
// surrounding s2 cells. An OSM stop claimed twice keeps the later feed stop.
// Feed stops left without an OSM stop are reported as stop_not_in_osm.
func PairStops(feedStops, osmStops []*transit.Stop, opts PairOptions) *transit.Pairing {
	if opts.Hook == nil {
		opts.Hook = hooks.Default{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Warnings == nil {
		opts.Warnings = NewWarningAggregator()
	}

	resolver := transit.NewResolver(func(a, b *transit.Stop, meters float64) {
		opts.Warnings.Add(WarningStopNearMiss, a.Code)
		opts.Logger.Warn("stops share a ref but are far apart",
			slog.String("ref", a.Code),
			slog.String("gtfs_id", a.GTFSID),
			slog.String("osm_id", b.OSMID),
			slog.String("distance", utils.PresentableDistance(meters)))
	})
	idx := newStopIndex(osmStops)
	pairing := transit.NewPairing()

	for _, fs := range feedStops {
		for _, cand := range idx.candidates(fs) {
			if !resolver.Seams(fs, cand) {
				continue
			}
			pairing.Pair(fs, cand)
			checkNames(fs, cand, opts)
			break
		}
	}

	for _, fs := range feedStops {
		if _, ok := pairing.OSMFor(fs); !ok {
			opts.Warnings.Add(WarningStopNotInOSM, fs.GTFSID)
		}
	}
	osmOnly := 0
	for _, s := range osmStops {
		if _, ok := pairing.FeedFor(s); !ok {
			osmOnly++
		}
	}

	opts.Logger.Info("stops paired",
		slog.Int("feed_stops", len(feedStops)),
		slog.Int("osm_stops", len(osmStops)),
		slog.Int("paired", pairing.Len()),
		slog.Int("osm_only", osmOnly))
	return pairing
}

func checkNames(fs, ns *transit.Stop, opts PairOptions) {
	if opts.NameSimilarity <= 0 || fs.Name == "" || ns.Name == "" {
		return
	}
	a := normalizeName(opts.Hook.FixBusStopName(fs.Name))
	b := normalizeName(opts.Hook.FixBusStopName(ns.Name))
	if fuzzy.Ratio(a, b) >= opts.NameSimilarity {
		return
	}
	opts.Warnings.Add(WarningStopNameMismatch, fs.GTFSID)
	opts.Logger.Warn("paired stops have different names",
		slog.String("gtfs_id", fs.GTFSID),
		slog.String("osm_id", ns.OSMID),
		slog.String("gtfs_name", fs.Name),
		slog.String("osm_name", ns.Name))
}

func normalizeName(name string) string {
	name = strings.ToLower(unidecode.Unidecode(name))
	return strings.Join(strings.Fields(strings.ReplaceAll(name, "-", " ")), " ")
}

// stopIndex finds OSM stops by code and by s2 cell
type stopIndex struct {
	byCode map[string][]*transit.Stop
	byCell map[s2.CellID][]*transit.Stop
}

func newStopIndex(stops []*transit.Stop) *stopIndex {
	idx := &stopIndex{
		byCode: make(map[string][]*transit.Stop),
		byCell: make(map[s2.CellID][]*transit.Stop),
	}
	for _, s := range stops {
		if s.Code != "" {
			idx.byCode[s.Code] = append(idx.byCode[s.Code], s)
		}
		c := cellOf(s)
		idx.byCell[c] = append(idx.byCell[c], s)
	}
	return idx
}

func (idx *stopIndex) candidates(s *transit.Stop) []*transit.Stop {
	seen := make(map[*transit.Stop]struct{})
	var out []*transit.Stop
	add := func(list []*transit.Stop) {
		for _, c := range list {
			if _, dup := seen[c]; !dup {
				seen[c] = struct{}{}
				out = append(out, c)
			}
		}
	}

	if s.Code != "" {
		add(idx.byCode[s.Code])
	}
	cell := cellOf(s)
	cells := append([]s2.CellID{cell}, cell.AllNeighbors(pairingCellLevel)...)
	sort.Slice(cells[1:], func(i, j int) bool { return cells[1+i] < cells[1+j] })
	for _, c := range cells {
		add(idx.byCell[c])
	}
	return out
}

func cellOf(s *transit.Stop) s2.CellID {
	return s2.CellIDFromLatLng(s2.LatLngFromDegrees(s.Lat, s.Lon)).Parent(pairingCellLevel)
}
