package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDemoConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := []byte("base_delay: 0.25\nrows: 2\nsound: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadDemoConfig(path)
	if err != nil {
		t.Fatalf("loadDemoConfig failed: %v", err)
	}
	if cfg.BaseDelay != 0.25 {
		t.Errorf("Expected base_delay 0.25, got %v", cfg.BaseDelay)
	}
	if cfg.Rows != 2 {
		t.Errorf("Expected rows 2, got %d", cfg.Rows)
	}
	if !cfg.Sound {
		t.Error("Expected sound enabled")
	}
	// Untouched keys keep defaults
	if cfg.Cols != 4 {
		t.Errorf("Expected default cols 4, got %d", cfg.Cols)
	}
	if cfg.Entrance != 0.25 {
		t.Errorf("Expected default entrance 0.25, got %v", cfg.Entrance)
	}
}

func TestLoadDemoConfigClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := []byte("base_delay: -1\nentrance: 0\nrows: 0\ncols: -3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadDemoConfig(path)
	if err != nil {
		t.Fatalf("loadDemoConfig failed: %v", err)
	}
	if cfg.BaseDelay != 0 {
		t.Errorf("Expected negative base_delay clamped to 0, got %v", cfg.BaseDelay)
	}
	if cfg.Entrance != 0.25 {
		t.Errorf("Expected zero entrance reset to default, got %v", cfg.Entrance)
	}
	if cfg.Rows != 1 || cfg.Cols != 1 {
		t.Errorf("Expected grid clamped to 1x1, got %dx%d", cfg.Rows, cfg.Cols)
	}
}

func TestLoadDemoConfigMissingFile(t *testing.T) {
	if _, err := loadDemoConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
