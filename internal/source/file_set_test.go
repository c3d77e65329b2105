package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := NewFileSet()
	content := []byte("north 3;")
	id := fs.AddVirtual("level1.grs", content)

	f := fs.Get(id)
	if f.Path != "level1.grs" {
		t.Errorf("Expected path %q, got %q", "level1.grs", f.Path)
	}
	if string(f.Content) != string(content) {
		t.Errorf("Expected content %q, got %q", content, f.Content)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.grs", []byte("abc"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 2})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("Expected start 1:1, got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 3}) {
		t.Errorf("Expected end 1:3, got %+v", end)
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	// "ab\ncd\ne": строки начинаются с оффсетов 0, 3, 6
	id := fs.AddVirtual("test.grs", []byte("ab\ncd\ne"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}}, // 'a'
		{2, LineCol{Line: 1, Col: 3}}, // '\n' завершает строку 1
		{3, LineCol{Line: 2, Col: 1}}, // 'c'
		{4, LineCol{Line: 2, Col: 2}}, // 'd'
		{6, LineCol{Line: 3, Col: 1}}, // 'e'
	}
	for _, c := range cases {
		got, _ := fs.Resolve(Span{File: id, Start: c.off, End: c.off})
		if got != c.want {
			t.Errorf("Resolve(off=%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.grs", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		lineNum uint32
		want    string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, c := range cases {
		if got := f.GetLine(c.lineNum); got != c.want {
			t.Errorf("GetLine(%d) = %q, want %q", c.lineNum, got, c.want)
		}
	}
}

func TestGetLineTrailingNewline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.grs", []byte("only\n"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "only" {
		t.Errorf("GetLine(1) = %q, want %q", got, "only")
	}
	if got := f.GetLine(2); got != "" {
		t.Errorf("GetLine(2) = %q, want empty", got)
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.grs", []byte("version 1"), 0)
	id2 := fs.Add("test.grs", []byte("version 2"), 0)

	if id1 == id2 {
		t.Error("Expected distinct IDs for re-added file")
	}
	latest, ok := fs.GetLatest("test.grs")
	if !ok {
		t.Fatal("Expected file to exist in index")
	}
	if latest != id2 {
		t.Errorf("Expected latest ID %d, got %d", id2, latest)
	}
	// Старая версия остаётся доступной по ID
	if string(fs.Get(id1).Content) != "version 1" {
		t.Error("Old file version must stay reachable by ID")
	}
}

func TestLoadFromDisk(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "script.grs")
	if err := os.WriteFile(path, []byte("x = 1;"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x = 1;" {
		t.Errorf("Unexpected content: %q", f.Content)
	}
	if f.Flags&FileVirtual != 0 {
		t.Error("Disk files must not carry FileVirtual")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.grs")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
