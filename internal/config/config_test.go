package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv isolates a test from KBOARD_* variables set in the outer shell
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"KBOARD_STORAGE_BACKEND", "KBOARD_DB_PATH", "KBOARD_REDIS_ADDR",
		"KBOARD_REDIS_DB", "KBOARD_REDIS_PREFIX", "KBOARD_ENTRY_COLUMN", "KBOARD_EVENT_BUFFER",
	} {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configDir := filepath.Join(dir, "kboard")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	path := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// ============================================================================
// Defaults
// ============================================================================

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.PickUpTask != "space" {
		t.Errorf("Default PickUpTask key = %s, want space", defaults.PickUpTask)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %s, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Redis.Prefix != "kboard:" {
		t.Errorf("Redis prefix = %s, want kboard:", cfg.Storage.Redis.Prefix)
	}
	if cfg.Events.BufferSize != 64 {
		t.Errorf("BufferSize = %d, want 64", cfg.Events.BufferSize)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Theme.Accent != DefaultTheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.Theme.Accent)
	}
}

// ============================================================================
// File and environment
// ============================================================================

func TestLoadConfigWithFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	writeConfig(t, tempDir, `storage:
  backend: redis
  redis:
    addr: "cache:6379"
    db: 2
board:
  entry_column: TODO
key_mappings:
  quit: "x"
  add_task: "n"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Storage.Backend != BackendRedis {
		t.Errorf("Backend = %s, want redis", cfg.Storage.Backend)
	}
	if cfg.Storage.Redis.Addr != "cache:6379" || cfg.Storage.Redis.DB != 2 {
		t.Errorf("Redis = %+v, want cache:6379 db 2", cfg.Storage.Redis)
	}
	if cfg.Board.EntryColumn != "TODO" {
		t.Errorf("EntryColumn = %s, want TODO", cfg.Board.EntryColumn)
	}
	if cfg.KeyMappings.Quit != "x" || cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Key mappings not loaded: %+v", cfg.KeyMappings)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditTask != "e" {
		t.Errorf("EditTask key = %s, want e (default)", cfg.KeyMappings.EditTask)
	}
	if cfg.Theme.Accent != MonochromeTheme().Accent {
		t.Errorf("Accent = %s, want monochrome preset", cfg.Theme.Accent)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "storage:\n  backend: sqlite\n  db_path: /tmp/from-file.db\n")

	t.Setenv("KBOARD_STORAGE_BACKEND", "memory")
	t.Setenv("KBOARD_REDIS_DB", "5")
	t.Setenv("KBOARD_EVENT_BUFFER", "8")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Backend = %s, want memory from env", cfg.Storage.Backend)
	}
	if cfg.Storage.DBPath != "/tmp/from-file.db" {
		t.Errorf("DBPath = %s, want value from file", cfg.Storage.DBPath)
	}
	if cfg.Storage.Redis.DB != 5 {
		t.Errorf("Redis DB = %d, want 5", cfg.Storage.Redis.DB)
	}
	if cfg.Events.BufferSize != 8 {
		t.Errorf("BufferSize = %d, want 8", cfg.Events.BufferSize)
	}
}

func TestEnvInvalidNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("KBOARD_REDIS_DB", "not-a-number")

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for non-numeric KBOARD_REDIS_DB")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "storage: [unclosed")

	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate_UnknownBackend(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "storage:\n  backend: etcd\n")

	_, err := LoadFile(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveConfig(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		Storage:     StorageConfig{Backend: BackendMemory},
		KeyMappings: KeyMappings{Quit: "x", AddTask: "n"},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "kboard", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.KeyMappings.Quit != "x" || cfg2.KeyMappings.AddTask != "n" {
		t.Errorf("Reloaded key mappings = %+v", cfg2.KeyMappings)
	}
	if cfg2.Storage.Backend != BackendMemory {
		t.Errorf("Reloaded backend = %s, want memory", cfg2.Storage.Backend)
	}
}

func TestTheme_PartialOverrideKeepsPreset(t *testing.T) {
	theme := Theme{Accent: "#FF0000"}
	theme.ApplyDefaults()

	if theme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want custom value", theme.Accent)
	}
	if theme.PriorityHigh != DefaultTheme().PriorityHigh {
		t.Errorf("PriorityHigh = %s, want default", theme.PriorityHigh)
	}
	if theme.Preset != "default" {
		t.Errorf("Preset = %s, want default", theme.Preset)
	}
}
