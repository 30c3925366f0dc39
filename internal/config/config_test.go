package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != DefaultPort || cfg.Server.Host != DefaultHost {
		t.Fatalf("server defaults = %+v", cfg.Server)
	}
	if cfg.Loop.FrameIntervalMS != DefaultFrameInterval {
		t.Fatalf("frame interval = %d", cfg.Loop.FrameIntervalMS)
	}
	if cfg.Path() != "" {
		t.Fatalf("Path() = %q for defaults", cfg.Path())
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	data := `{"name": "demo", "server": {"port": 8080}, "history": {"capacity": 16}}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" || cfg.Server.Port != 8080 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Server.Host != DefaultHost {
		t.Fatalf("host default lost: %q", cfg.Server.Host)
	}
	if cfg.History.Capacity != 16 {
		t.Fatalf("history capacity = %d", cfg.History.Capacity)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0644)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "E102") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := New()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "E103") {
		t.Fatalf("err = %v", err)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := New()
	cfg.Name = "demo"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Name != "demo" {
		t.Fatalf("name = %q", loaded.Name)
	}
}
