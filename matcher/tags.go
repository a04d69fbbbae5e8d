package matcher

import (
	"log/slog"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// CheckRelationTags reports relations whose operator or network tag is set
// and differs from the expected values. It returns how many were reported.
func CheckRelationTags(relations []*transit.Relation, operator, network string, warnings *WarningAggregator, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}
	n := 0
	for _, rel := range relations {
		if tagMatches(rel.Operator, operator) && tagMatches(rel.Network, network) {
			continue
		}
		n++
		if warnings != nil {
			warnings.Add(WarningRelationTagMismatch, rel.ID)
		}
		logger.Warn("relation tags differ from configuration",
			slog.String("relation_id", rel.ID),
			slog.String("operator", rel.Operator),
			slog.String("network", rel.Network))
	}
	return n
}

// tagMatches treats a missing tag as matching
func tagMatches(tag, want string) bool {
	return tag == "" || want == "" || tag == want
}
