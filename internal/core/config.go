package core

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const DefaultPort = 8000

type Database struct {
	// Type selects the store backend: mongo, sqlite, redis or memory.
	// An empty type means no store is configured and the service runs
	// on placeholder data only.
	Type string `yaml:"type"`
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

type ServiceConfig struct {
	Port     int      `yaml:"port"`
	Database Database `yaml:"database"`
}

// LoadConfig loads configuration from the specified YAML file and applies
// environment overrides (PORT, DATABASE_URL, DATABASE_NAME). A missing
// config file is not an error; the service then runs on defaults and
// whatever the environment provides.
func LoadConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{Port: DefaultPort}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
		if config.Port == 0 {
			config.Port = DefaultPort
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnvOverrides(config *ServiceConfig) error {
	if portString := os.Getenv("PORT"); portString != "" {
		port, err := strconv.Atoi(portString)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", portString, err)
		}
		config.Port = port
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.Database.URL = url
		// DATABASE_URL alone implies the mongo backend, matching the
		// deployment this service was written for.
		if config.Database.Type == "" {
			config.Database.Type = "mongo"
		}
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		config.Database.Name = name
	}
	return nil
}
