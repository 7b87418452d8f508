package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type FlightAPIConfig struct {
	URL        string        `yaml:"url"`
	TimeoutStr string        `yaml:"timeout"`
	Timeout    time.Duration `yaml:"-"`
}

type SyncConfig struct {
	IntervalStr string        `yaml:"interval"`
	Interval    time.Duration `yaml:"-"` // zero disables the background loop
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	FlightAPI FlightAPIConfig `yaml:"flight_api"`
	Sync      SyncConfig      `yaml:"sync"`
}

var AppConfig Config

// Load fills AppConfig from an optional YAML file, then applies environment
// overrides. Every setting has a usable default except the database
// credentials and the flight API URL.
func Load(configPath string) error {
	AppConfig = Config{
		Server:    ServerConfig{Port: "8080"},
		Database:  DatabaseConfig{Host: "localhost", Port: "5432", SSLMode: "disable"},
		FlightAPI: FlightAPIConfig{TimeoutStr: "10s"},
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvOverrides()

	var err error
	AppConfig.FlightAPI.Timeout, err = time.ParseDuration(AppConfig.FlightAPI.TimeoutStr)
	if err != nil {
		return fmt.Errorf("failed to parse flight_api.timeout: %w", err)
	}
	if AppConfig.Sync.IntervalStr != "" {
		AppConfig.Sync.Interval, err = time.ParseDuration(AppConfig.Sync.IntervalStr)
		if err != nil {
			return fmt.Errorf("failed to parse sync.interval: %w", err)
		}
	}

	return nil
}

func applyEnvOverrides() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"PORT", &AppConfig.Server.Port},
		{"DB_HOST", &AppConfig.Database.Host},
		{"DB_PORT", &AppConfig.Database.Port},
		{"DB_USER", &AppConfig.Database.User},
		{"DB_PASSWORD", &AppConfig.Database.Password},
		{"DB_NAME", &AppConfig.Database.DBName},
		{"DB_SSLMODE", &AppConfig.Database.SSLMode},
		{"FLIGHT_API_URL", &AppConfig.FlightAPI.URL},
		{"FLIGHT_API_TIMEOUT", &AppConfig.FlightAPI.TimeoutStr},
		{"SYNC_INTERVAL", &AppConfig.Sync.IntervalStr},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}
