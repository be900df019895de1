// Package config loads this server's settings from a YAML file on disk,
// applying defaults for anything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every setting this core reads at startup.
type Config struct {
	Address    string `yaml:"address"`
	Port       int    `yaml:"port"`
	MOTD       string `yaml:"motd"`
	MaxPlayers int    `yaml:"max_players"`
	ViewRadius int    `yaml:"view_radius"`
	Seed       int64  `yaml:"seed"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Address:    "0.0.0.0",
		Port:       25565,
		MOTD:       "A Picocraft Server!",
		MaxPlayers: 8,
		ViewRadius: 9,
		Seed:       0,
	}
}

// Load reads and parses the YAML file at path, keeping the default for any
// key the file omits (a key set explicitly to zero stays zero and is then
// checked by validation). A missing file is not an error: it yields the
// default configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Decode over a copy of the defaults so omitted keys keep their default.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.MOTD) > 128 {
		return fmt.Errorf("config: motd exceeds 128 characters")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.MaxPlayers <= 0 {
		return fmt.Errorf("config: max_players must be positive")
	}
	if c.ViewRadius <= 0 {
		return fmt.Errorf("config: view_radius must be positive")
	}
	return nil
}
