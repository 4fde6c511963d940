package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Success(t *testing.T) {
	// Create a temporary directory for test files
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Create a valid config file
	configContent := `port: 8080
database:
  type: "sqlite"
  url: "file:test.db"`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	// Test LoadConfig
	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Verify the loaded configuration
	if config == nil {
		t.Fatal("Expected config to be non-nil")
	}

	if config.Port != 8080 {
		t.Errorf("Expected port to be 8080, got %d", config.Port)
	}

	if config.Database.Type != "sqlite" {
		t.Errorf("Expected database type to be 'sqlite', got '%s'", config.Database.Type)
	}

	if config.Database.URL != "file:test.db" {
		t.Errorf("Expected database url to be 'file:test.db', got '%s'", config.Database.URL)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	nonExistentPath := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	config, err := LoadConfig(nonExistentPath)
	if err != nil {
		t.Fatalf("LoadConfig failed for missing file: %v", err)
	}

	if config.Port != DefaultPort {
		t.Errorf("Expected default port %d, got %d", DefaultPort, config.Port)
	}
	if config.Database.Type != "" {
		t.Errorf("Expected no database configured, got '%s'", config.Database.Type)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "school")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Port != 9090 {
		t.Errorf("Expected PORT override 9090, got %d", config.Port)
	}
	if config.Database.Type != "mongo" {
		t.Errorf("Expected DATABASE_URL to imply mongo backend, got '%s'", config.Database.Type)
	}
	if config.Database.URL != "mongodb://localhost:27017" {
		t.Errorf("Expected DATABASE_URL override, got '%s'", config.Database.URL)
	}
	if config.Database.Name != "school" {
		t.Errorf("Expected DATABASE_NAME override, got '%s'", config.Database.Name)
	}
}

func TestLoadConfig_EnvDoesNotOverrideConfiguredType(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `database:
  type: "redis"`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	t.Setenv("DATABASE_URL", "redis://localhost:6379")

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Database.Type != "redis" {
		t.Errorf("Expected configured type 'redis' to win, got '%s'", config.Database.Type)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for invalid PORT, got nil")
	}
	if config != nil {
		t.Error("Expected config to be nil on invalid PORT")
	}
}
