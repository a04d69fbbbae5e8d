package hooks

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/config"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// Configured is a hook driven entirely by the plugin config block:
// route include/exclude lists, forced relation equivalences and name casing.
type Configured struct {
	include   map[string]struct{}
	exclude   map[string]struct{}
	sameAs    map[string]map[string]struct{} // relation id -> trip ids
	titleCase bool
}

func newConfigured(cfg config.PluginConfig) (Hook, error) {
	c := &Configured{
		include:   toSet(cfg.IncludeRoutes),
		exclude:   toSet(cfg.ExcludeRoutes),
		sameAs:    make(map[string]map[string]struct{}, len(cfg.SameAs)),
		titleCase: cfg.TitleCaseNames,
	}
	for relID, trips := range cfg.SameAs {
		c.sameAs[relID] = toSet(trips)
	}
	return c, nil
}

// IsValidRoute matches the lists against both route_id and route_short_name.
// Exclusion wins over inclusion.
func (c *Configured) IsValidRoute(route transit.Route) bool {
	if inSet(c.exclude, route.ID) || inSet(c.exclude, route.ShortName) {
		return false
	}
	if len(c.include) == 0 {
		return true
	}
	return inSet(c.include, route.ID) || inSet(c.include, route.ShortName)
}

func (c *Configured) IsRelationSameAs(relation *transit.Relation, seq transit.StopSequence) bool {
	if relation == nil || seq == nil {
		return false
	}
	return inSet(c.sameAs[relation.ID], seq.SequenceID())
}

func (c *Configured) FixBusStopName(name string) string { return c.fixName(name) }

func (c *Configured) FixTripName(name string) string { return c.fixName(name) }

func (c *Configured) fixName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if c.titleCase {
		name = cases.Title(language.Und).String(strings.ToLower(name))
	}
	return name
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	if v == "" {
		return false
	}
	_, ok := set[v]
	return ok
}
