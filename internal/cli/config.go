package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration, read from
// ~/.config/dotkit/config.toml (or $XDG_CONFIG_HOME/dotkit/config.toml).
// Every field has a working default so the file is optional.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Cache    CacheConfig    `toml:"cache"`
	Serve    ServeConfig    `toml:"serve"`
}

// DefaultsConfig selects the provider and format used when flags are absent.
type DefaultsConfig struct {
	// Provider is the provider ID tried first (e.g., "graphviz", "embedded").
	Provider string `toml:"provider"`

	// Format is the compound format token for render (e.g., "png", "svg:neato").
	Format string `toml:"format"`

	// Engine forces a layout engine for all renders. Empty means automatic.
	Engine string `toml:"engine"`
}

// CacheConfig controls the artifact cache.
type CacheConfig struct {
	// Enabled turns artifact caching on. Defaults to true.
	Enabled bool `toml:"enabled"`

	// Dir overrides the cache directory. Empty means ~/.cache/dotkit/.
	Dir string `toml:"dir"`

	// RedisAddr switches the serve command to a Redis cache when set
	// (host:port). The render command always uses the file cache.
	RedisAddr string `toml:"redis_addr"`
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	// Addr is the listen address. Defaults to "localhost:8456".
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Provider: "graphviz",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Serve: ServeConfig{
			Addr: "localhost:8456",
		},
	}
}

// LoadConfig reads and parses the config file at path on top of the
// defaults. Unknown keys are ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the standard config file, returning defaults
// when the file is absent or unreadable.
func LoadConfigOrDefault() Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(filepath.Join(dir, "config.toml"))
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
