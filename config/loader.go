package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are tried in order when no explicit path is given
var DefaultPaths = []string{"config.yml", "./gtfs-osm/config.yml"}

// Default values applied before validation
const (
	DefaultPluginName     = "default"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "auto"
	DefaultNameSimilarity = 85
)

// Load reads, defaults and validates the configuration. An empty path
// searches DefaultPaths.
func Load(path string) (*AppConfig, error) {
	data, used, err := readFirst(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", used, err)
	}
	cfg.applyDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", used, err)
	}
	return &cfg, nil
}

func readFirst(path string) ([]byte, string, error) {
	paths := DefaultPaths
	if path != "" {
		paths = []string{path}
	}
	var errs []error
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
		errs = append(errs, err)
	}
	return nil, "", fmt.Errorf("read config: %w", errors.Join(errs...))
}

func (c *AppConfig) applyDefaults() {
	for _, p := range []*string{&c.GTFSPath, &c.OSMPath, &c.OutputPath, &c.OsmosisPath} {
		if *p != "" {
			*p = filepath.Clean(*p)
		}
	}
	if c.Plugin.Name == "" {
		c.Plugin.Name = DefaultPluginName
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Pairing.NameSimilarity == nil {
		similarity := DefaultNameSimilarity
		c.Pairing.NameSimilarity = &similarity
	}
}

// OSMStopsPath returns the path of the OSM stops file
func (c *AppConfig) OSMStopsPath() string {
	return filepath.Join(c.OSMPath, OSMStopsFileName)
}

// OSMRelationsPath returns the path of the OSM relations file
func (c *AppConfig) OSMRelationsPath() string {
	return filepath.Join(c.OSMPath, OSMRelationsFileName)
}
