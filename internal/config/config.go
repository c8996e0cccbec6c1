// Package config resolves tracker settings from an optional YAML file and
// environment variables. Precedence: defaults < file < environment.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	trkerrors "github.com/dpoulsen/tracker/internal/errors"
	"github.com/dpoulsen/tracker/internal/store"
)

const (
	configFile = "config.yaml"
	trackerDir = ".tracker"

	envDataFile = "TRACKER_DATA_FILE"
	envAddr     = "TRACKER_ADDR"

	defaultAddr = ":8080"
)

// Config holds the resolved settings.
type Config struct {
	DataFile string `yaml:"data_file"`
	Addr     string `yaml:"addr"`
}

// DefaultPath returns the default config file location
// (~/.tracker/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, trackerDir, configFile), nil
}

// Load reads the config file at path if it exists and applies environment
// overrides. An empty path uses the default location; a missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := &Config{Addr: defaultAddr}

	if path == "" {
		defaultPath, err := DefaultPath()
		if err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file is fine.
		case err != nil:
			return nil, trkerrors.PersistenceError{Op: "load", Path: path, Err: err}
		default:
			if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
				return nil, trkerrors.PersistenceError{Op: "load", Path: path, Err: unmarshalErr}
			}
		}
	}

	if v := os.Getenv(envDataFile); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(envAddr); v != "" {
		cfg.Addr = v
	}

	if cfg.DataFile == "" {
		dataPath, err := store.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.DataFile = dataPath
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	return cfg, nil
}
