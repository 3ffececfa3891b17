package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
)

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(configName)
	viper.SetConfigType(configFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. ARNICA_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("ARNICA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Config file is optional in containerized environments where
	// everything arrives through env vars.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("ARNICA_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}
	if c.Scheduling.GranularityMinutes == 0 {
		c.Scheduling.GranularityMinutes = 30
	}
	if c.Scheduling.FetchWindowDays == 0 {
		c.Scheduling.FetchWindowDays = 1
	}
	if c.Scheduling.MaxSessionMinutes == 0 {
		c.Scheduling.MaxSessionMinutes = 240
	}
	if c.Scheduling.ReminderLeadHours == 0 {
		c.Scheduling.ReminderLeadHours = 24
	}
	if c.Scheduling.ReminderCron == "" {
		c.Scheduling.ReminderCron = "0 * * * *"
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "arnica_backend"
	}
}

func (c *Config) Validate() error {
	if c.Scheduling.GranularityMinutes < 5 {
		return fmt.Errorf("scheduling.granularity_minutes must be at least 5, got %d", c.Scheduling.GranularityMinutes)
	}
	if c.Scheduling.FetchWindowDays < 1 {
		return fmt.Errorf("scheduling.fetch_window_days must be at least 1, got %d", c.Scheduling.FetchWindowDays)
	}
	if c.Scheduling.MaxSessionMinutes < c.Scheduling.GranularityMinutes {
		return fmt.Errorf("scheduling.max_session_minutes must not be below the slot granularity")
	}
	// The fetch window must cover the longest session either side of the
	// query date or conflict checks near midnight could miss bookings.
	if c.Scheduling.FetchWindowDays*24*60 < c.Scheduling.MaxSessionMinutes {
		return fmt.Errorf("scheduling.fetch_window_days too small for max_session_minutes")
	}
	if mode := c.Authentication.Paseto.Mode; mode != "" && mode != "local" && mode != "public" {
		return fmt.Errorf("authentication.paseto.mode must be \"local\" or \"public\", got %q", mode)
	}
	return nil
}
