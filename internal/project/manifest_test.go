package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
[game]
name = "caves"

[[levels]]
name = "intro"
script = "levels/intro.grs"

[[levels]]
name = "boss"
script = "levels/boss.grs"
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Game.Name != "caves" {
		t.Errorf("game name = %q", m.Game.Name)
	}
	if len(m.Levels) != 2 {
		t.Fatalf("levels = %d, want 2", len(m.Levels))
	}

	paths := m.ScriptPaths()
	want := filepath.Join(filepath.Dir(path), "levels", "intro.grs")
	if paths[0] != want {
		t.Errorf("ScriptPaths()[0] = %q, want %q", paths[0], want)
	}
}

func TestLoadManifestMissingGame(t *testing.T) {
	path := writeManifest(t, `
[[levels]]
name = "intro"
script = "intro.grs"
`)
	_, err := LoadManifest(path)
	if !errors.Is(err, ErrGameSectionMissing) {
		t.Fatalf("Expected ErrGameSectionMissing, got %v", err)
	}
}

func TestLoadManifestMissingScript(t *testing.T) {
	path := writeManifest(t, `
[game]
name = "caves"

[[levels]]
name = "broken"
`)
	_, err := LoadManifest(path)
	if !errors.Is(err, ErrLevelScriptMissing) {
		t.Fatalf("Expected ErrLevelScriptMissing, got %v", err)
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	path := writeManifest(t, `[game`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestAbsoluteScriptPathKept(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "opt", "scripts", "a.grs")
	path := writeManifest(t, `
[game]
name = "caves"

[[levels]]
name = "a"
script = "`+abs+`"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.ScriptPaths()[0]; got != abs {
		t.Errorf("ScriptPaths()[0] = %q, want %q", got, abs)
	}
}
