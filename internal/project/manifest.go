package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LevelSpec describes one [[levels]] entry in grid.toml.
type LevelSpec struct {
	Name   string `toml:"name"`
	Script string `toml:"script"`
}

// Manifest describes a game project's grid.toml.
type Manifest struct {
	Game struct {
		Name string `toml:"name"`
	} `toml:"game"`
	Levels []LevelSpec `toml:"levels"`

	// Dir is the manifest's directory; script paths resolve against it.
	Dir string `toml:"-"`
}

var (
	// ErrGameSectionMissing indicates that [game] is missing in a manifest.
	ErrGameSectionMissing = errors.New("missing [game]")
	// ErrLevelScriptMissing indicates a [[levels]] entry without a script path.
	ErrLevelScriptMissing = errors.New("missing script in [[levels]]")
)

// LoadManifest parses a grid.toml project manifest.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("game") {
		return nil, fmt.Errorf("%s: %w", path, ErrGameSectionMissing)
	}
	for i, lvl := range m.Levels {
		if lvl.Script == "" {
			return nil, fmt.Errorf("%s: levels[%d] (%q): %w", path, i, lvl.Name, ErrLevelScriptMissing)
		}
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// ScriptPaths returns every level script path, resolved against the
// manifest directory.
func (m *Manifest) ScriptPaths() []string {
	out := make([]string, 0, len(m.Levels))
	for _, lvl := range m.Levels {
		p := lvl.Script
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Dir, p)
		}
		out = append(out, p)
	}
	return out
}
