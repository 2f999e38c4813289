package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rathi-dental/dentalnest/internal/database"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	return configPath
}

func TestLoadConfig_Success(t *testing.T) {
	configPath := writeConfig(t, `database:
  type: sqlite
  connectionString: "RathiDental.db"
mediaRoot: "./media"
preferencesPath: "./prefs.json"
clinic:
  name: "Rathi Dental Nest"
  phone: "+91-0000000000"
  email: "info@rathidental.com"
`)

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want sqlite", config.Database.Type)
	}
	if config.Database.ConnectionString != "RathiDental.db" {
		t.Errorf("Database.ConnectionString = %q", config.Database.ConnectionString)
	}
	if config.MediaRoot != "./media" {
		t.Errorf("MediaRoot = %q", config.MediaRoot)
	}
	if config.Clinic.Name != "Rathi Dental Nest" {
		t.Errorf("Clinic.Name = %q", config.Clinic.Name)
	}
}

func TestLoadConfig_DefaultConnectionString(t *testing.T) {
	configPath := writeConfig(t, `database:
  type: sqlite
mediaRoot: "./media"
preferencesPath: "./prefs.json"
`)

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Database.ConnectionString != database.DefaultDatabaseName {
		t.Errorf("ConnectionString = %q, want default %q",
			config.Database.ConnectionString, database.DefaultDatabaseName)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "database: [unclosed")
	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing database type",
			content: `database:
  connectionString: "RathiDental.db"
mediaRoot: "./media"
preferencesPath: "./prefs.json"
`,
			wantErr: "database type",
		},
		{
			name: "unsupported database type",
			content: `database:
  type: postgres
  connectionString: "host=localhost"
mediaRoot: "./media"
preferencesPath: "./prefs.json"
`,
			wantErr: "unsupported database type",
		},
		{
			name: "missing media root",
			content: `database:
  type: sqlite
  connectionString: "RathiDental.db"
preferencesPath: "./prefs.json"
`,
			wantErr: "media root",
		},
		{
			name: "missing preferences path",
			content: `database:
  type: sqlite
  connectionString: "RathiDental.db"
mediaRoot: "./media"
`,
			wantErr: "preferences path",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := writeConfig(t, tc.content)
			_, err := LoadConfig(configPath)
			if err == nil {
				t.Fatalf("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
