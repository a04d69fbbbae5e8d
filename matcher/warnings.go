package matcher

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Warning type constants
const (
	// stop resolution
	WarningStopNearMiss     = "stop_near_miss"
	WarningStopNameMismatch = "stop_name_mismatch"
	WarningStopNotInOSM     = "stop_not_in_osm"

	// relation loading
	WarningRelationMemberNotStop = "relation_member_not_stop"
	WarningRelationTagMismatch   = "relation_tag_mismatch"

	// matching
	WarningTripNotInOSM   = "trip_not_in_osm"
	WarningAmbiguousMatch = "ambiguous_match"
	WarningRouteNotFound  = "route_not_found"
)

const maxExamples = 3

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects data-quality warnings during a run and logs
// consolidated summaries at the end.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example id
func (w *WarningAggregator) Add(warningType, exampleID string) {
	info := w.warnings[warningType]
	if info == nil {
		info = &warningInfo{examples: make([]string, 0, maxExamples)}
		w.warnings[warningType] = info
	}
	info.count++
	if len(info.examples) < maxExamples {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times warningType was recorded
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Examples returns the first recorded example ids of warningType
func (w *WarningAggregator) Examples(warningType string) []string {
	if info := w.warnings[warningType]; info != nil {
		return append([]string(nil), info.examples...)
	}
	return nil
}

// LogAll writes one WARN record per warning type, ordered by type.
func (w *WarningAggregator) LogAll(logger *slog.Logger) {
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		info := w.warnings[t]
		logger.Warn(formatWarningMessage(t, info),
			slog.String("type", t),
			slog.Int("count", info.count),
			slog.String("examples", strings.Join(info.examples, ", ")))
	}
}

// formatWarningMessage creates a human-readable summary
func formatWarningMessage(warningType string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningStopNearMiss:
		description = "stop pairs sharing a ref but too far apart"
		action = "Stops kept unpaired"
	case WarningStopNameMismatch:
		description = "paired stops whose names differ"
		action = "Pairing kept"
	case WarningStopNotInOSM:
		description = "served GTFS stops with no OSM stop"
		action = "Stops left unpaired"
	case WarningRelationMemberNotStop:
		description = "relation node members not found in stops"
		action = "Members skipped"
	case WarningRelationTagMismatch:
		description = "relations with operator or network differing from configuration"
		action = "Relations matched anyway"
	case WarningTripNotInOSM:
		description = "trips with no relation in OSM"
		action = "Trips listed as not matched"
	case WarningAmbiguousMatch:
		description = "trips matching more than one relation"
		action = "Last relation scanned taken as match"
	case WarningRouteNotFound:
		description = "trips whose route is missing from routes"
		action = "Trips skipped"
	default:
		description = "unknown issue"
		action = "Continuing"
	}

	return fmt.Sprintf("Found %s (%d occurrences). %s. Examples: %s",
		description, info.count, action, strings.Join(info.examples, ", "))
}
