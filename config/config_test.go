package config

import (
	"strings"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Scheduling.GranularityMinutes != 30 {
		t.Errorf("Scheduling.GranularityMinutes = %d, want 30", cfg.Scheduling.GranularityMinutes)
	}
	if cfg.Scheduling.ReminderCron != "0 * * * *" {
		t.Errorf("Scheduling.ReminderCron = %q, want hourly", cfg.Scheduling.ReminderCron)
	}
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := Config{}
	cfg.Server.Port = 9000
	cfg.Scheduling.GranularityMinutes = 15
	cfg.applyDefaults()

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Scheduling.GranularityMinutes != 15 {
		t.Errorf("Scheduling.GranularityMinutes = %d, want 15", cfg.Scheduling.GranularityMinutes)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var cfg Config
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "granularity too fine",
			mutate:  func(c *Config) { c.Scheduling.GranularityMinutes = 1 },
			wantErr: "granularity_minutes",
		},
		{
			name:    "fetch window below one day",
			mutate:  func(c *Config) { c.Scheduling.FetchWindowDays = -1 },
			wantErr: "fetch_window_days",
		},
		{
			name:    "max session below granularity",
			mutate:  func(c *Config) { c.Scheduling.MaxSessionMinutes = 10 },
			wantErr: "max_session_minutes",
		},
		{
			name:    "invalid paseto mode",
			mutate:  func(c *Config) { c.Authentication.Paseto.Mode = "asymmetric" },
			wantErr: "paseto.mode",
		},
		{
			name:   "explicit paseto modes accepted",
			mutate: func(c *Config) { c.Authentication.Paseto.Mode = "public" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
