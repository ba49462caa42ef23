package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config in search order: explicit path, then
// ~/.polyarena/configs/<name>, then ./configs/<name>, then the embedded
// default YAML. An explicit path that fails to load is an error; the
// fallbacks fail silently into the next candidate.
func load(customPath, name string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// LoadBrawl loads the brawl config.
func LoadBrawl(customPath string) (BrawlConfig, error) {
	var cfg BrawlConfig
	if err := load(customPath, "brawl.yaml", defaultBrawlYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultBrawlConfig(), nil
	}
	return cfg, nil
}

// LoadOrbit loads the orbit sandbox config.
func LoadOrbit(customPath string) (OrbitConfig, error) {
	var cfg OrbitConfig
	if err := load(customPath, "orbit.yaml", defaultOrbitYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultOrbitConfig(), nil
	}
	return cfg, nil
}

// LoadSprings loads the spring-chain sandbox config.
func LoadSprings(customPath string) (SpringsConfig, error) {
	var cfg SpringsConfig
	if err := load(customPath, "springs.yaml", defaultSpringsYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultSpringsConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the per-user config path for the given file, or
// empty when the home directory is unavailable.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".polyarena", "configs", name)
}
