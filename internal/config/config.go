// Package config loads generator settings from an optional YAML file and
// merges them over built-in defaults.
package config

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// Kind names accepted under the "kinds" key.
const (
	KindArray        = "array"
	KindFixedList    = "fixedList"
	KindGrowableList = "growableList"
	KindHashSet      = "hashSet"
	KindGrowableSet  = "growableSet"
	KindSet          = "set"
	KindHashMap      = "hashMap"
	KindGrowableMap  = "growableMap"
	KindMap          = "map"
)

var kindNames = []string{
	KindArray, KindFixedList, KindGrowableList,
	KindHashSet, KindGrowableSet, KindSet,
	KindHashMap, KindGrowableMap, KindMap,
}

// Config represents the complete configuration.
type Config struct {
	Markers Markers `yaml:"markers"`
	// Kinds binds base names (shape names or qualified type names) to
	// container kinds. Entries are appended to the defaults.
	Kinds map[string][]string `yaml:"kinds"`
	// Immutable lists qualified type names that are always shared.
	Immutable []string `yaml:"immutable"`
	// Registered lists qualified type names that have a DeepCopy method
	// even though they carry no marker.
	Registered []string `yaml:"registered"`
	Workers    int      `yaml:"workers"`
	OutputDir  string   `yaml:"outputDir"`
}

// Markers holds the comment directives recognized on type declarations.
type Markers struct {
	Enhance    string `yaml:"enhance"`
	Registered string `yaml:"registered"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Markers:   DefaultMarkers(),
		Kinds:     DefaultKinds(),
		Immutable: DefaultImmutable(),
	}
}

// Load returns the defaults merged with the file at path. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	c := New()
	if path == "" {
		return c, nil
	}
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile merges the YAML file at path into c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing YAML config %s: %w", path, err)
	}
	if err := loaded.validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	c.merge(&loaded)
	return nil
}

// merge merges the loaded config into the current config.
func (c *Config) merge(loaded *Config) {
	if loaded.Markers.Enhance != "" {
		c.Markers.Enhance = loaded.Markers.Enhance
	}
	if loaded.Markers.Registered != "" {
		c.Markers.Registered = loaded.Markers.Registered
	}

	if c.Kinds == nil {
		c.Kinds = map[string][]string{}
	}
	for kind, names := range loaded.Kinds {
		c.Kinds[kind] = appendUnique(c.Kinds[kind], names...)
	}

	c.Immutable = appendUnique(c.Immutable, loaded.Immutable...)
	c.Registered = appendUnique(c.Registered, loaded.Registered...)

	if loaded.Workers > 0 {
		c.Workers = loaded.Workers
	}
	if loaded.OutputDir != "" {
		c.OutputDir = loaded.OutputDir
	}
}

func (c *Config) validate() error {
	var unknown []string
	for kind := range c.Kinds {
		if !slices.Contains(kindNames, kind) {
			unknown = append(unknown, kind)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown container kinds %v (known: %v)", unknown, kindNames)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" || slices.Contains(dst, v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
