// Package config loads transitnet settings.
//
// Sources are applied in increasing priority: built-in defaults, a TOML
// file, TRANSITNET_ environment variables, then command-line flags. Nested
// keys use "__" in environment variables (TRANSITNET_GRAPH__MAX_STOPS sets
// graph.max_stops).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/transitnet/logging"
)

// DefaultFile is read when no --config flag is given. Its absence is not an error.
const DefaultFile = "transitnet.toml"

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "TRANSITNET_"

// Store kinds.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds all settings.
type Config struct {
	Data   string         `koanf:"data"`
	Store  string         `koanf:"store"`
	DB     string         `koanf:"db"`
	Seed   bool           `koanf:"seed"`
	Graph  GraphConfig    `koanf:"graph"`
	Search SearchConfig   `koanf:"search"`
	Log    logging.Config `koanf:"log"`
	Server ServerConfig   `koanf:"server"`
}

// GraphConfig configures the stop graph.
type GraphConfig struct {
	MaxStops         int   `koanf:"max_stops"`
	ImplicitVertices bool  `koanf:"implicit_vertices"`
	DefaultWeight    int64 `koanf:"default_weight"`
}

// SearchConfig bounds longest-path plans.
type SearchConfig struct {
	MaxDepth      int           `koanf:"max_depth"`
	MaxExpansions int           `koanf:"max_expansions"`
	Timeout       time.Duration `koanf:"timeout"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr  string `koanf:"addr"`
	Watch bool   `koanf:"watch"`
}

// defaults mirror the values documented in the README.
func defaults() map[string]any {
	return map[string]any{
		"data":  "transit_data.txt",
		"store": StoreFile,
		"db":    "transitnet.db",
		"seed":  true,
		"graph": map[string]any{
			"max_stops":         100,
			"implicit_vertices": false,
			"default_weight":    5,
		},
		"search": map[string]any{
			"max_depth":      0,
			"max_expansions": 5_000_000,
			"timeout":        "10s",
		},
		"log": map[string]any{
			"level":  "info",
			"format": "console",
		},
		"server": map[string]any{
			"addr":  ":8080",
			"watch": false,
		},
	}
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"max-stops":      "graph.max_stops",
	"implicit":       "graph.implicit_vertices",
	"weight-default": "graph.default_weight",
	"max-depth":      "search.max_depth",
	"max-expansions": "search.max_expansions",
	"timeout":        "search.timeout",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"addr":           "server.addr",
	"watch":          "server.watch",
}

// RegisterFlags adds the global flags read by Load.
func RegisterFlags(f *pflag.FlagSet) {
	f.String("config", "", "config file (default "+DefaultFile+" if present)")
	f.String("data", "", "data file (.txt, .yaml, .json)")
	f.String("store", "", "persistence store: file or sqlite")
	f.String("db", "", "sqlite database path")
	f.Bool("seed", true, "load the default network when the store is empty")
	f.Int("max-stops", 0, "stop id ceiling, 0 for unbounded")
	f.Bool("implicit", false, "treat every id up to the highest added as a stop")
	f.Int64("weight-default", 0, "travel time between consecutive route stops")
	f.Int("max-depth", 0, "longest plan hop limit, 0 for the stop count")
	f.Int("max-expansions", 0, "longest plan step budget, 0 for unlimited")
	f.Duration("timeout", 0, "longest plan deadline")
	f.String("log-level", "", "debug, info, warn or error")
	f.String("log-format", "", "console or json")
	f.String("addr", "", "HTTP listen address")
	f.Bool("watch", false, "reload the data file when it changes")
}

// Load reads configuration. Flags that were not set on the command line do
// not override lower layers. f may be nil.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, explicit := DefaultFile, false
	if f != nil {
		if p, err := f.GetString("config"); err == nil && p != "" {
			path, explicit = p, true
		}
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.ProviderWithFlag(f, ".", k, func(fl *pflag.Flag) (string, any) {
			if fl.Name == "config" {
				return "", nil
			}
			key := fl.Name
			if mapped, ok := flagKeys[key]; ok {
				key = mapped
			}

			return key, posflag.FlagVal(f, fl)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be caught by types.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("config: store must be %q or %q, got %q", StoreFile, StoreSQLite, c.Store)
	}
	if c.Graph.MaxStops < 0 {
		return fmt.Errorf("config: graph.max_stops must be >= 0, got %d", c.Graph.MaxStops)
	}
	if c.Graph.DefaultWeight < 0 {
		return fmt.Errorf("config: graph.default_weight must be >= 0, got %d", c.Graph.DefaultWeight)
	}
	if c.Search.MaxExpansions < 0 || c.Search.Timeout < 0 {
		return fmt.Errorf("config: search limits must be >= 0")
	}

	return nil
}

// mapProvider serves an in-memory map as a koanf provider.
type mapProvider map[string]any

func (p mapProvider) Read() (map[string]any, error) {
	return p, nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("not implemented")
}
