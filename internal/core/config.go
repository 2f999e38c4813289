package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rathi-dental/dentalnest/internal/database"
)

type Database struct {
	Type             string `yaml:"type"`
	ConnectionString string `yaml:"connectionString"`
}

// ClinicInfo is static contact information shown by the presentation
// layer.
type ClinicInfo struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
	Website string `yaml:"website"`
}

type ServiceConfig struct {
	Database        Database   `yaml:"database"`
	MediaRoot       string     `yaml:"mediaRoot"`
	PreferencesPath string     `yaml:"preferencesPath"`
	Clinic          ClinicInfo `yaml:"clinic"`
}

// LoadConfig loads configuration from the specified YAML file
func LoadConfig(configPath string) (*ServiceConfig, error) {
	// Read the config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Parse YAML
	var config ServiceConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	// Fall back to the fixed database file name when no connection
	// string is configured.
	if config.Database.ConnectionString == "" {
		config.Database.ConnectionString = database.DefaultDatabaseName
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *ServiceConfig) error {
	if !database.IsSupportedDriver(config.Database.Type) {
		return fmt.Errorf("unsupported database type: %q", config.Database.Type)
	}
	if config.MediaRoot == "" {
		return fmt.Errorf("media root must not be empty")
	}
	if config.PreferencesPath == "" {
		return fmt.Errorf("preferences path must not be empty")
	}
	return nil
}
