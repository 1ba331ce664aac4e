// Package config loads longhike settings from a TOML file.
//
// Example file:
//
//	slopes = true
//	route = true
//	verbose = false
//
//	[graph]
//	format = "svg"
//	output = "maze.svg"
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the working directory when no
// path is given.
const FileName = "longhike.toml"

// Graph output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ErrUnknownFormat indicates an unsupported [graph] format.
var ErrUnknownFormat = errors.New("config: unknown graph format")

// Config holds every setting the CLI reads.
type Config struct {
	Slopes  bool  `toml:"slopes"`
	Route   bool  `toml:"route"`
	Verbose bool  `toml:"verbose"`
	Graph   Graph `toml:"graph"`
}

// Graph configures the graph command.
type Graph struct {
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Graph: Graph{Format: FormatDOT},
	}
}

// Load reads path over the defaults. An empty path means FileName in the
// working directory, and that default file may be absent.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Graph.Format {
	case FormatDOT, FormatSVG:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Graph.Format)
	}
}
