package config

// LogConfig contains logger configuration
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=auto console json"`
}

// PluginConfig selects and parameterises the route customization hook
type PluginConfig struct {
	Name           string              `yaml:"name" validate:"omitempty"`
	TitleCaseNames bool                `yaml:"titleCaseNames"`
	IncludeRoutes  []string            `yaml:"includeRoutes"` // route_id or route_short_name; empty means all
	ExcludeRoutes  []string            `yaml:"excludeRoutes"`
	SameAs         map[string][]string `yaml:"sameAs"` // relation id -> trip ids
}

// PairingConfig contains stop pairing options
type PairingConfig struct {
	// NameSimilarity is the fuzzy ratio below which paired stop names are
	// reported. Unset means DefaultNameSimilarity; 0 turns the check off.
	NameSimilarity *int `yaml:"nameSimilarity" validate:"omitempty,gte=0,lte=100"`
}

// Similarity returns NameSimilarity, or DefaultNameSimilarity when unset
func (p PairingConfig) Similarity() int {
	if p.NameSimilarity == nil {
		return DefaultNameSimilarity
	}
	return *p.NameSimilarity
}

// AppConfig is the root configuration structure
type AppConfig struct {
	GTFSPath     string        `yaml:"gtfsPath" validate:"required,file|dir"`
	OSMPath      string        `yaml:"osmPath" validate:"required,dir"`
	OutputPath   string        `yaml:"outputPath" validate:"required,dir"`
	OsmosisPath  string        `yaml:"osmosisPath" validate:"required,dir"`
	Operator     string        `yaml:"operator" validate:"required"`
	Network      string        `yaml:"network" validate:"required"`
	RevisitedKey string        `yaml:"revisitedKey" validate:"required"`
	Plugin       PluginConfig  `yaml:"plugin"`
	Log          LogConfig     `yaml:"log"`
	Pairing      PairingConfig `yaml:"pairing"`
}

// Input file names inside OSMPath
const (
	OSMStopsFileName     = "stops.osm"
	OSMRelationsFileName = "relations.osm"
)
