package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CWA_API_KEY", "")
	t.Setenv("CWA_DEFAULT_LOCATION", "")
	t.Setenv("CWA_DB_PATH", "")
	t.Setenv("CWA_SAMPLE_DIR", "")
	t.Setenv("CWA_STRICT_SSL", "")

	cfg := Load()

	if cfg.APIKey != fallbackAPIKey {
		t.Errorf("APIKey = %q, want fallback key", cfg.APIKey)
	}
	if cfg.DefaultLocation != "臺北市" {
		t.Errorf("DefaultLocation = %q", cfg.DefaultLocation)
	}
	if cfg.DBPath != filepath.Join("data", "cwa-terminal.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.SampleDir != "sample" {
		t.Errorf("SampleDir = %q", cfg.SampleDir)
	}
	if cfg.StrictSSL {
		t.Error("StrictSSL should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CWA_API_KEY", "  CWA-CUSTOM-KEY  ")
	t.Setenv("CWA_DEFAULT_LOCATION", "高雄市")
	t.Setenv("CWA_DB_PATH", "/tmp/test.db")
	t.Setenv("CWA_SAMPLE_DIR", "/tmp/samples")
	t.Setenv("CWA_STRICT_SSL", "true")

	cfg := Load()

	if cfg.APIKey != "CWA-CUSTOM-KEY" {
		t.Errorf("APIKey = %q, want trimmed custom key", cfg.APIKey)
	}
	if cfg.DefaultLocation != "高雄市" {
		t.Errorf("DefaultLocation = %q", cfg.DefaultLocation)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.SampleDir != "/tmp/samples" {
		t.Errorf("SampleDir = %q", cfg.SampleDir)
	}
	if !cfg.StrictSSL {
		t.Error("StrictSSL should be true")
	}
}

func TestStrictSSLForms(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("CWA_STRICT_SSL", tt.value)
			if got := Load().StrictSSL; got != tt.want {
				t.Errorf("StrictSSL(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
