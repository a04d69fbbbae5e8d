// Package hooks provides the route customization policies injected into the
// matcher. Policies are registered statically and selected by name from
// configuration at startup.
package hooks

import (
	"errors"
	"fmt"
	"sort"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/config"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

// ErrUnknownPlugin is returned by New for names that are not registered
var ErrUnknownPlugin = errors.New("unknown plugin")

// Hook lets a deployment override matching decisions for its own feed.
type Hook interface {
	// IsValidRoute reports whether trips of route take part in matching.
	IsValidRoute(route transit.Route) bool
	// IsRelationSameAs forces relation to match seq regardless of its stops.
	IsRelationSameAs(relation *transit.Relation, seq transit.StopSequence) bool
	// FixBusStopName normalises a stop name before it is shown or compared.
	FixBusStopName(name string) string
	// FixTripName normalises a trip name before it is shown.
	FixTripName(name string) string
}

// Factory builds a hook from its configuration block
type Factory func(cfg config.PluginConfig) (Hook, error)

var registry = map[string]Factory{
	"default":    func(config.PluginConfig) (Hook, error) { return Default{}, nil },
	"configured": newConfigured,
}

// New builds the hook named by cfg.Name ("default" when empty).
func New(cfg config.PluginConfig) (Hook, error) {
	name := cfg.Name
	if name == "" {
		name = config.DefaultPluginName
	}
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("plugin %q: %w (known: %v)", name, ErrUnknownPlugin, Names())
	}
	return factory(cfg)
}

// Names lists the registered plugin names
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default accepts every route, forces nothing and leaves names untouched.
type Default struct{}

func (Default) IsValidRoute(transit.Route) bool { return true }

func (Default) IsRelationSameAs(*transit.Relation, transit.StopSequence) bool { return false }

func (Default) FixBusStopName(name string) string { return name }

func (Default) FixTripName(name string) string { return name }
