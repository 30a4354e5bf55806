package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.ShowURLs {
		t.Fatalf("ShowURLs = true, want false by default")
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "pawsmatch")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Midnight\"\nshow_urls = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Midnight" || !p.ShowURLs {
		t.Fatalf("prefs = %+v, want Midnight with URLs", p)
	}
}

func TestSave_RoundTripsThroughDisk(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Midnight", ShowURLs: true}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "Midnight" || !loaded.ShowURLs {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"\"\nshow_urls = true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if !p.ShowURLs {
		t.Fatalf("ShowURLs lost when theme was blank")
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Default() {
		t.Fatalf("prefs = %+v, want defaults", p)
	}
}

func TestSave_ReplacesFileWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	prefsFile := filepath.Join(dir, "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Meadow"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := Save(prefsFile, Prefs{Theme: "  Midnight  ", ShowURLs: true}); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir entries = %v, want only prefs.toml", names)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Midnight" || !p.ShowURLs {
		t.Fatalf("prefs = %+v, want trimmed Midnight with URLs", p)
	}
}
