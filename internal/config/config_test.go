package config

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", cfg.MaxDepth)
	}
	if cfg.MaxSize != "10M" {
		t.Errorf("MaxSize = %q, want %q", cfg.MaxSize, "10M")
	}
	if cfg.BatchSize != 25 {
		t.Errorf("BatchSize = %d, want 25", cfg.BatchSize)
	}
	if cfg.BatchDelay != 50 {
		t.Errorf("BatchDelay = %d, want 50", cfg.BatchDelay)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}

func TestLoadConfigAdvisorDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Advisor.Enabled {
		t.Error("Advisor.Enabled = true, want false by default")
	}
	if cfg.Advisor.Model != "haiku" {
		t.Errorf("Advisor.Model = %q, want %q", cfg.Advisor.Model, "haiku")
	}
	if cfg.Advisor.Timeout != 30 {
		t.Errorf("Advisor.Timeout = %d, want 30", cfg.Advisor.Timeout)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("FILESWIPER_BATCH_SIZE", "5")
	t.Setenv("FILESWIPER_MAX_DEPTH", "7")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BatchSize != 5 {
		t.Errorf("BatchSize = %d, want 5 from env", cfg.BatchSize)
	}
	if cfg.MaxDepth != 7 {
		t.Errorf("MaxDepth = %d, want 7 from env", cfg.MaxDepth)
	}
}
