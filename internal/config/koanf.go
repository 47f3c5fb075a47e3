package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RICETTARIO_"

// ConfigPathEnvVar names the variable holding the config file path.
const ConfigPathEnvVar = EnvPrefix + "CONFIG"

// DefaultConfigPaths are tried in order when no path is given.
var DefaultConfigPaths = []string{
	"ricettario.yaml",
	"ricettario.yml",
	"~/.config/ricettario/config.yaml",
}

// envKeys maps lowercased variable names, without the prefix, to config
// paths. Variables not listed here are ignored.
var envKeys = map[string]string{
	"store_backend":                  "store.backend",
	"store_path":                     "store.path",
	"store_dsn":                      "store.dsn",
	"store_driver":                   "store.driver",
	"difficulty_profile":             "difficulty.profile",
	"difficulty_time_threshold":      "difficulty.time_threshold",
	"difficulty_count_threshold":     "difficulty.count_threshold",
	"difficulty_tiered_easy_time":    "difficulty.tiered.easy_time",
	"difficulty_tiered_medium_time":  "difficulty.tiered.medium_time",
	"difficulty_tiered_easy_count":   "difficulty.tiered.easy_count",
	"difficulty_tiered_medium_count": "difficulty.tiered.medium_count",
	"log_level":                      "log.level",
	"log_format":                     "log.format",
	"web_addr":                       "web.addr",
}

// Load layers defaults, the config file and the environment, then
// validates the result. An explicit path that does not exist is an error;
// the default paths are optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(ConfigPathEnvVar)
	}
	if explicit != "" {
		p, err := ExpandHome(explicit)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return p, nil
	}

	for _, candidate := range DefaultConfigPaths {
		p, err := ExpandHome(candidate)
		if err != nil {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// envTransformFunc maps RICETTARIO_STORE_BACKEND to store.backend.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envKeys[key]
}
