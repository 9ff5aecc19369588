package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config must not be an error: %v", err)
	}
	def := Default()
	if cfg.Server.Addr != def.Server.Addr || cfg.Scan.Concurrency != def.Scan.Concurrency {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  addr: \":9000\"\n  dsn: \"user:pw@tcp(db:3306)/recon\"\nscan:\n  timeout_ms: 250\n  concurrency: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr not loaded: %q", cfg.Server.Addr)
	}
	if cfg.Scan.TimeoutMs != 250 || cfg.Scan.Concurrency != 10 {
		t.Fatalf("scan settings not loaded: %+v", cfg.Scan)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scan:\n  concurrency: 5\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scan.Concurrency != 5 {
		t.Fatalf("expected concurrency 5, got %d", cfg.Scan.Concurrency)
	}
	if cfg.Server.Addr != Default().Server.Addr {
		t.Fatalf("unset addr should keep default, got %q", cfg.Server.Addr)
	}
	if cfg.Scan.TimeoutMs != Default().Scan.TimeoutMs {
		t.Fatalf("unset timeout should keep default, got %d", cfg.Scan.TimeoutMs)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scan: [not a mapping"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
