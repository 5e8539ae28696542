package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Glennk62/lisa-tach/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address, got %s", cfg.Address)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Errorf("expected default request size, got %d", cfg.RequestSizeBytes())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	contents := `
address: ":9090"
maxRequestSize: "1M"
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("expected address :9090, got %s", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 1024*1024 {
		t.Errorf("expected 1M request size, got %d", cfg.RequestSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.Logging.Level)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"Plain bytes", "1024", 1024, false},
		{"Kilobytes", "256K", 256 * 1024, false},
		{"Kilobytes long unit", "256KB", 256 * 1024, false},
		{"Megabytes", "10M", 10 * 1024 * 1024, false},
		{"Gigabytes", "1G", 1024 * 1024 * 1024, false},
		{"Empty defaults", "", constants.DefaultMaxRequestSizeBytes, false},
		{"Invalid unit", "10X", 0, true},
		{"No digits", "MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.want)
			}
		})
	}
}
