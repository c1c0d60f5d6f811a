package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the variable holding the YAML config path.
	PathEnv     = "CONFIG_PATH"
	defaultPath = "config.yaml"
)

// Load resolves the config file from CONFIG_PATH and loads it. Without
// CONFIG_PATH a missing ./config.yaml is not an error and settings come from
// the environment and env-default tags. Environment variables win over YAML.
func Load() (*Config, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return LoadFrom(path)
	}
	_, err := os.Stat(defaultPath)
	switch {
	case err == nil:
		return LoadFrom(defaultPath)
	case errors.Is(err, fs.ErrNotExist):
		return LoadFrom("")
	default:
		return nil, fmt.Errorf("config: stat %s: %w", defaultPath, err)
	}
}

// LoadFrom reads the YAML file at path, or only the environment when path
// is empty, then validates the result.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
