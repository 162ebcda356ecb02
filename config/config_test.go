package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blob-game/game/types"
)

func TestLoadDefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := types.DefaultConfig()
	if cfg.Arena != def.Arena || cfg.MaxEnemies != def.MaxEnemies || cfg.GrowthRate != def.GrowthRate {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvWidth, "160")
	t.Setenv(EnvMaxEnemies, "20")
	t.Setenv(EnvFrameInterval, "16ms")
	t.Setenv(EnvGrowthRate, "0.5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 160 || cfg.MaxEnemies != 20 || cfg.GrowthRate != 0.5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Fatalf("frame interval = %s, want 16ms", cfg.FrameInterval)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvSpawnInterval+"=5\n"), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv skips variables that are already set; t.Setenv restores whatever it writes
	t.Setenv(EnvSpawnInterval, "")
	os.Unsetenv(EnvSpawnInterval)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SpawnInterval != 5 {
		t.Fatalf("spawn interval = %d, want 5", cfg.SpawnInterval)
	}
}

func TestLoadRejectsUnparsableValue(t *testing.T) {
	t.Setenv(EnvMaxEnemies, "lots")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), EnvMaxEnemies) {
		t.Fatalf("expected parse error naming %s, got %v", EnvMaxEnemies, err)
	}
}

func TestLoadRejectsInvalidTuning(t *testing.T) {
	t.Setenv(EnvPlayerMaxRadius, "1")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := GetEnvVariable("BLOB_TEST_SURELY_UNSET"); err == nil {
		t.Fatalf("expected error for unset variable")
	}
	t.Setenv("BLOB_TEST_SET", "x")
	if v, err := GetEnvVariable("BLOB_TEST_SET"); err != nil || v != "x" {
		t.Fatalf("GetEnvVariable = %q, %v", v, err)
	}
}
