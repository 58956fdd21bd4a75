// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3319 {
		t.Errorf("expected default port 3319, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:quickly-meet.db" {
		t.Errorf("expected default sqlite file, got %q", cfg.DatabaseURL)
	}
	if cfg.BaseURL != "http://localhost:3319" {
		t.Errorf("expected base URL from port, got %q", cfg.BaseURL)
	}
	if cfg.Debounce != 500*time.Millisecond {
		t.Errorf("expected 500ms debounce, got %v", cfg.Debounce)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("BASE_URL", "https://meet.example.com")
	os.Setenv("DEBOUNCE_MS", "250")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.BaseURL != "https://meet.example.com" {
		t.Errorf("expected env base URL, got %q", cfg.BaseURL)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("expected 250ms debounce, got %v", cfg.Debounce)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected flag database URL, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected error when postgres has no database URL")
	}

	cfg, err := ParseFlags([]string{"-t", "postgres", "-d", "postgres://localhost/meet"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DriverName() != "postgres" {
		t.Errorf("DriverName = %q, want postgres", cfg.DriverName())
	}
}

func TestParseFlags_RejectsUnknownType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
