package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	errs "github.com/tilesmith/boggen/pkg/errors"
)

// Config holds optional user settings read from the config file. Every field
// has a sensible zero value; a missing config file is not an error.
type Config struct {
	// Dictionary overrides the default compiled dictionary path.
	Dictionary string `toml:"dictionary"`

	// DiceSet overrides the default dice catalog name.
	DiceSet string `toml:"dice_set"`

	// CacheDir overrides the default cache directory.
	CacheDir string `toml:"cache_dir"`

	// RedisAddr switches the cache backend to Redis (host:port).
	RedisAddr string `toml:"redis_addr"`

	// ListenAddr is the default bind address for the serve command.
	ListenAddr string `toml:"listen_addr"`
}

// configPath returns the config file location using the XDG standard
// (~/.config/boggen/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user config file. A missing file yields an empty
// config; a malformed file is reported as an error.
func loadConfig() (*Config, error) {
	cfg := &Config{}
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}
