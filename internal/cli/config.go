package cli

import (
	"github.com/seitarof/gen-deepcopy/internal/config"
)

// Config stores CLI options for a single generation run.
type Config struct {
	// Patterns are go/packages patterns; "." when none are given.
	Patterns    []string
	ConfigFile  string
	OutputDir   string
	Workers     int
	DryRun      bool
	Verbose     bool
	ShowVersion bool
}

// Settings loads the config file, if any, and applies flag overrides.
func (c *Config) Settings() (*config.Config, error) {
	s, err := config.Load(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	if c.Workers > 0 {
		s.Workers = c.Workers
	}
	if c.OutputDir != "" {
		s.OutputDir = c.OutputDir
	}
	return s, nil
}
