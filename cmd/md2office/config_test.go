package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "md2office.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Hotkey != "ctrl+b" {
		t.Errorf("Hotkey = %q, want ctrl+b", cfg.Hotkey)
	}
	if cfg.PandocPath != "pandoc" {
		t.Errorf("PandocPath = %q, want pandoc", cfg.PandocPath)
	}
	if cfg.InsertTarget != "auto" {
		t.Errorf("InsertTarget = %q, want auto", cfg.InsertTarget)
	}
	if !cfg.Notify || !cfg.EnableExcel || !cfg.ExcelKeepFormat || !cfg.AutoOpenOnNoApp {
		t.Errorf("default bool settings should be on: %+v", cfg)
	}
	if cfg.KeepFile {
		t.Error("KeepFile should default to false")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "pandocPath: /opt/pandoc\ninsertTarget: sheet\nkeepFile: true\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.PandocPath != "/opt/pandoc" {
		t.Errorf("PandocPath = %q", cfg.PandocPath)
	}
	if cfg.InsertTarget != "sheet" {
		t.Errorf("InsertTarget = %q", cfg.InsertTarget)
	}
	if !cfg.KeepFile {
		t.Error("KeepFile not applied")
	}

	// Settings absent from the file keep their defaults.
	if cfg.Hotkey != "ctrl+b" {
		t.Errorf("Hotkey = %q, want default ctrl+b", cfg.Hotkey)
	}
}

func TestLoadConfigExpandsEnvInSaveDir(t *testing.T) {
	t.Setenv("MD2OFFICE_TEST_DIR", "/data/out")
	path := writeConfig(t, "saveDir: $MD2OFFICE_TEST_DIR/docs\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SaveDir != "/data/out/docs" {
		t.Errorf("SaveDir = %q, want /data/out/docs", cfg.SaveDir)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeConfig(t, "pandocPath: pandoc\nbogusSetting: true\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "pandocPath: [unclosed\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "md2office.yaml")

	want := DefaultConfig()
	want.PandocPath = "/custom/pandoc"
	want.SaveDir = "/data/docs"

	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got.PandocPath != want.PandocPath || got.SaveDir != want.SaveDir {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
