package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("gen-deepcopy", pflag.ContinueOnError)
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "YAML config file")
	fs.StringVarP(&cfg.OutputDir, "output-dir", "o", "", "write generated files here instead of next to each type")
	fs.IntVarP(&cfg.Workers, "workers", "w", 0, "types generated in parallel (default GOMAXPROCS)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "print generated files instead of writing them")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "log every processed type")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("--workers must not be negative")
	}

	cfg.Patterns = fs.Args()
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"."}
	}
	return cfg, nil
}
