// Package prefs remembers the choices a user makes while swiping: the colour
// theme and whether image URLs are printed on cards. The file lives at
// ~/.config/pawsmatch/prefs.toml and is rewritten whenever a toggle changes.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pawsmatch/internal/config"
)

// Prefs is the persisted toggle state.
type Prefs struct {
	Theme    string `toml:"theme"`
	ShowURLs bool   `toml:"show_urls"`
}

const (
	defaultPrefsPath = "~/.config/pawsmatch/prefs.toml"
	defaultTheme     = "Kennel"
)

// DefaultPath is where prefs live when no path is configured.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default is a first launch: Kennel theme, URLs hidden.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load never fails a launch: a missing or malformed file yields Default().
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default(), nil
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.normalize(), nil
}

// Save replaces the prefs file. The new contents go to a sibling temp file
// first so a crash mid-write leaves the previous prefs intact.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(resolved), ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func (p Prefs) normalize() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
