package osm

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	posm "github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// MissingMemberFunc receives node members of a relation that are not known stops.
type MissingMemberFunc func(relationID, nodeID string)

// LoadStops reads every node of an OSM XML file as a stop.
func LoadStops(ctx context.Context, path string) ([]*transit.Stop, error) {
	var stops []*transit.Stop
	err := scanFile(ctx, path, func(obj posm.Object) {
		if n, ok := obj.(*posm.Node); ok {
			stops = append(stops, convertNode(n))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("load osm stops: %w", err)
	}
	return stops, nil
}

// LoadRelations reads the route relations of an OSM XML file, resolving node
// members against stopsByOSMID. Relations keep file order. onMissing may be nil.
func LoadRelations(ctx context.Context, path string, stopsByOSMID map[string]*transit.Stop, onMissing MissingMemberFunc) ([]*transit.Relation, error) {
	var rels []*transit.Relation
	err := scanFile(ctx, path, func(obj posm.Object) {
		if r, ok := obj.(*posm.Relation); ok {
			rels = append(rels, convertRelation(r, stopsByOSMID, onMissing))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("load osm relations: %w", err)
	}
	return rels, nil
}

// IndexByOSMID maps node id to stop.
func IndexByOSMID(stops []*transit.Stop) map[string]*transit.Stop {
	idx := make(map[string]*transit.Stop, len(stops))
	for _, s := range stops {
		idx[s.OSMID] = s
	}
	return idx
}

func scanFile(ctx context.Context, path string, fn func(posm.Object)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return scan(ctx, f, fn)
}

func scan(ctx context.Context, r io.Reader, fn func(posm.Object)) error {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		fn(scanner.Object())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan osm xml: %w", err)
	}
	return nil
}

func convertNode(n *posm.Node) *transit.Stop {
	pt := n.Point()
	return &transit.Stop{
		GTFSID:    n.Tags.Find("gtfs_id"),
		Code:      n.Tags.Find("ref"),
		Lat:       pt.Lat(),
		Lon:       pt.Lon(),
		Name:      n.Tags.Find("name"),
		IsRailway: isRailway(n.Tags),
		OSMID:     strconv.FormatInt(int64(n.ID), 10),
	}
}

func isRailway(tags posm.Tags) bool {
	return tags.Find("railway") != "" || tags.Find("train") == "yes" || tags.Find("tram") == "yes"
}

func convertRelation(r *posm.Relation, stopsByOSMID map[string]*transit.Stop, onMissing MissingMemberFunc) *transit.Relation {
	id := strconv.FormatInt(int64(r.ID), 10)

	var stops []*transit.Stop
	for _, m := range r.Members {
		if m.Type != posm.TypeNode {
			continue
		}
		ref := strconv.FormatInt(m.Ref, 10)
		s, ok := stopsByOSMID[ref]
		if !ok {
			if onMissing != nil {
				onMissing(id, ref)
			}
			continue
		}
		stops = append(stops, s)
	}

	rel := transit.NewRelation(id, r.Tags.Find("name"), stops)
	rel.Ref = r.Tags.Find("ref")
	rel.From = r.Tags.Find("from")
	rel.To = r.Tags.Find("to")
	rel.Operator = r.Tags.Find("operator")
	rel.Network = r.Tags.Find("network")
	return rel
}
