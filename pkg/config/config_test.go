package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	seed := int64(42)
	testConfig := Config{
		Region:   "hokkaido",
		Seed:     &seed,
		LogLevel: "debug",
		Store: StoreConfig{
			Path: filepath.Join(tmpDir, "lives.db"),
		},
		Defaults: DefaultConfig{
			Count:  5,
			Format: FormatJSON,
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Region != testConfig.Region {
		t.Errorf("Expected region %s, got %s", testConfig.Region, cfg.Region)
	}

	if cfg.Seed == nil || *cfg.Seed != seed {
		t.Errorf("Expected seed %d, got %v", seed, cfg.Seed)
	}

	if cfg.Defaults.Count != 5 {
		t.Errorf("Expected count 5, got %d", cfg.Defaults.Count)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(configPath, []byte(`{"region": "hokkaido"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Defaults.Format != FormatText {
		t.Errorf("Expected default format %s, got %s", FormatText, cfg.Defaults.Format)
	}

	if cfg.Store.Path == "" {
		t.Error("Expected default store path")
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults when no config exists, got %v", err)
	}

	if cfg.Region != "tokyo" {
		t.Errorf("Expected default region tokyo, got %s", cfg.Region)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIFESIM_REGION", "hokkaido")
	t.Setenv("LIFESIM_SEED", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Region != "hokkaido" {
		t.Errorf("Expected region hokkaido, got %s", cfg.Region)
	}

	if cfg.Seed == nil || *cfg.Seed != 7 {
		t.Errorf("Expected seed 7, got %v", cfg.Seed)
	}

	t.Setenv("LIFESIM_SEED", "seven")
	_, err = Load("")
	if err == nil {
		t.Error("Expected error for non-numeric seed, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:      "valid config",
			config:    Config{Region: "tokyo", Defaults: DefaultConfig{Count: 3, Format: FormatMarkdown}},
			wantError: false,
		},
		{
			name:      "missing region",
			config:    Config{Defaults: DefaultConfig{Count: 1}},
			wantError: true,
		},
		{
			name:      "unknown region",
			config:    Config{Region: "osaka"},
			wantError: true,
		},
		{
			name:      "unknown region allowed with overlay",
			config:    Config{Region: "osaka", DataSource: "overlay.yaml"},
			wantError: false,
		},
		{
			name:      "bad format",
			config:    Config{Region: "tokyo", Defaults: DefaultConfig{Format: "xml"}},
			wantError: true,
		},
		{
			name:      "negative count",
			config:    Config{Region: "tokyo", Defaults: DefaultConfig{Count: -1}},
			wantError: true,
		},
		{
			name:      "bad log level",
			config:    Config{Region: "tokyo", LogLevel: "loud"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	// Verify file was created.
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// The starter file must load cleanly.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}

	if cfg.Store.Path != filepath.Join(tmpDir, "lifesim.db") {
		t.Errorf("Expected store next to config, got %s", cfg.Store.Path)
	}

	if cfg.Defaults.Format == "" {
		t.Error("Default format was not set")
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create file first.
	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Try to init - should fail.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
