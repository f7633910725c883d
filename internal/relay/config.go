package relay

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds relay server settings loaded from YAML.
type Config struct {
	ListenAddr      string `yaml:"listen_addr"`
	SweepMinutes    int    `yaml:"sweep_minutes"`
	DefaultTTLHours int    `yaml:"default_ttl_hours"`
	LogLevel        string `yaml:"log_level"`
}

// LoadConfig reads path and fills defaults for anything unset. A missing
// file is not an error; the defaults stand.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.SweepMinutes <= 0 {
		cfg.SweepMinutes = int(DefaultSweepInterval / time.Minute)
	}
	if cfg.DefaultTTLHours <= 0 {
		cfg.DefaultTTLHours = int(DefaultTTL / time.Hour)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// StoreConfig converts the file settings into a StoreConfig.
func (c Config) StoreConfig() StoreConfig {
	return StoreConfig{
		DefaultTTL:    time.Duration(c.DefaultTTLHours) * time.Hour,
		SweepInterval: time.Duration(c.SweepMinutes) * time.Minute,
	}
}
