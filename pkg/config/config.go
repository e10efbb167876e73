// Package config loads strata settings from TOML files.
//
// Settings cover the layout defaults, cache backend selection, and the
// HTTP server. All fields have working defaults, so a missing file or an
// empty file yields a usable configuration.
//
// Example:
//
//	[layout]
//	nodesep = 50.0
//	edgesep = 20.0
//	ranksep = 50.0
//	ranker = "network-simplex"
//
//	[cache]
//	backend = "file"       # "file", "redis", or "none"
//	dir = "~/.cache/strata"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graph"
)

// Config holds all application settings.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig carries the default layout settings applied to graphs
// that do not specify their own.
type LayoutConfig struct {
	NodeSep float64 `toml:"nodesep"`
	EdgeSep float64 `toml:"edgesep"`
	RankSep float64 `toml:"ranksep"`
	Ranker  string  `toml:"ranker"`
	Align   string  `toml:"align"`
}

// CacheConfig selects and configures the layout cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"` // "file", "redis", or "none"
	Dir     string `toml:"dir"`     // file backend
	Addr    string `toml:"addr"`    // redis backend
	Pass    string `toml:"pass"`    // redis backend
	DB      int    `toml:"db"`      // redis backend
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	layoutDefaults := graph.DefaultConfig()
	return Config{
		Layout: LayoutConfig{
			NodeSep: layoutDefaults.NodeSep,
			EdgeSep: layoutDefaults.EdgeSep,
			RankSep: layoutDefaults.RankSep,
			Ranker:  layoutDefaults.Ranker,
		},
		Cache: CacheConfig{
			Backend: "file",
			Dir:     defaultCacheDir(),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads a TOML config file, layering it over the defaults. A
// missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the loaded settings.
func (c *Config) Validate() error {
	if err := errors.ValidateRanker(c.Layout.Ranker); err != nil {
		return err
	}
	if err := errors.ValidateAlign(c.Layout.Align); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (valid: file, redis, none)", c.Cache.Backend)
	}
	if c.Layout.NodeSep < 0 || c.Layout.EdgeSep < 0 || c.Layout.RankSep < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "separations cannot be negative")
	}
	return nil
}

// GraphConfig converts the layout section to graph-level settings.
func (c *Config) GraphConfig() graph.Config {
	return graph.Config{
		NodeSep: c.Layout.NodeSep,
		EdgeSep: c.Layout.EdgeSep,
		RankSep: c.Layout.RankSep,
		Ranker:  c.Layout.Ranker,
		Align:   c.Layout.Align,
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "strata")
	}
	return ".strata-cache"
}
