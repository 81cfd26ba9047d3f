package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Fusion.DecayHours != 24 {
		t.Errorf("DecayHours = %v, want 24", cfg.Fusion.DecayHours)
	}
	if cfg.Fusion.MinTimeWeight != 0.1 {
		t.Errorf("MinTimeWeight = %v, want 0.1", cfg.Fusion.MinTimeWeight)
	}
	if cfg.Channels.NewsWeight != 0.4 {
		t.Errorf("NewsWeight = %v, want 0.4", cfg.Channels.NewsWeight)
	}
	if cfg.Sectors.MinItems != 2 {
		t.Errorf("MinItems = %d, want 2", cfg.Sectors.MinItems)
	}
	if cfg.Allocation.RiskTolerance != "moderate" {
		t.Errorf("RiskTolerance = %s, want moderate", cfg.Allocation.RiskTolerance)
	}
	if cfg.Database.Enabled {
		t.Error("Database.Enabled = true, want false by default")
	}
	if len(cfg.Analysis.Tickers) != 3 {
		t.Errorf("Tickers = %v, want 3 defaults", cfg.Analysis.Tickers)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero decay", mutate: func(c *Config) { c.Fusion.DecayHours = 0 }},
		{name: "min weight above one", mutate: func(c *Config) { c.Fusion.MinTimeWeight = 1.5 }},
		{name: "zero category weight", mutate: func(c *Config) { c.Fusion.GeneralWeight = 0 }},
		{name: "zero channel weight", mutate: func(c *Config) { c.Channels.MicroblogWeight = 0 }},
		{name: "zero min items", mutate: func(c *Config) { c.Sectors.MinItems = 0 }},
		{name: "zero portfolio", mutate: func(c *Config) { c.Allocation.PortfolioSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
}
