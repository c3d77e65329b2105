package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gridscript/internal/source"
	"gridscript/internal/token"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestTokenizeCleanFile(t *testing.T) {
	path := writeScript(t, t.TempDir(), "ok.grs", "x = 1;")

	result, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if result.LexErr != nil {
		t.Fatalf("Unexpected lex error: %v", result.LexErr)
	}
	kinds := []token.Kind{token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}
	if len(result.Tokens) != len(kinds) {
		t.Fatalf("Expected %d tokens, got %v", len(kinds), result.Tokens)
	}
	for i, k := range kinds {
		if result.Tokens[i].Kind != k {
			t.Errorf("Token %d: expected %v, got %v", i, k, result.Tokens[i].Kind)
		}
	}
}

func TestTokenizeLexFailure(t *testing.T) {
	path := writeScript(t, t.TempDir(), "bad.grs", "x = 1.2.3;")

	result, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if result.LexErr == nil {
		t.Fatal("Expected lex error")
	}
	// перед ошибкой распознаны ровно x и =
	if len(result.Tokens) != 2 {
		t.Errorf("Expected 2 tokens before failure, got %v", result.Tokens)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "nope.grs")); err == nil {
		t.Fatal("Expected I/O error")
	}
}

func TestTokenizeAll(t *testing.T) {
	dir := t.TempDir()
	good := writeScript(t, dir, "good.grs", "spawn(1, 2);")
	bad := writeScript(t, dir, "bad.grs", `msg = "oops`)
	missing := filepath.Join(dir, "missing.grs")

	fs := source.NewFileSet()
	results, err := TokenizeAll(context.Background(), fs, []string{good, bad, missing}, 2)
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	if results[0].Failed() {
		t.Errorf("good.grs must pass: %+v", results[0])
	}
	if results[1].LexErr == nil {
		t.Error("bad.grs must fail with a lex error")
	}
	if results[2].LoadErr == nil {
		t.Error("missing.grs must fail to load")
	}
}

func TestTokenizeAllIsolatedState(t *testing.T) {
	// один и тот же контент в нескольких файлах: независимые сканы
	// должны дать один и тот же результат
	dir := t.TempDir()
	content := `mob "rat" { hp -= 1 }`
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = writeScript(t, dir, filepath.Base(dir)+string(rune('a'+i))+".grs", content)
	}

	fs := source.NewFileSet()
	results, err := TokenizeAll(context.Background(), fs, paths, 4)
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}
	for i, r := range results {
		if r.Failed() {
			t.Fatalf("Result %d failed: %+v", i, r)
		}
		if len(r.Tokens) != len(results[0].Tokens) {
			t.Errorf("Result %d token count %d differs from %d",
				i, len(r.Tokens), len(results[0].Tokens))
		}
	}
}

func TestTokenizeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	path := writeScript(t, dir, "a.grs", "x")
	fs := source.NewFileSet()
	if _, err := TokenizeAll(ctx, fs, []string{path}, 1); err == nil {
		t.Fatal("Expected context error")
	}
}
