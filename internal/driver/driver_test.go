package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tsdecl/internal/diag"
	"tsdecl/internal/driver"
	"tsdecl/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func openTestCache(t *testing.T) *driver.DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("tsdecl-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}
	return cache
}

func TestTokenizeFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.d.ts", "declare var x: number;\n")

	result, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %d", result.Bag.Len())
	}
	// declare var x : number ; EOF
	if len(result.Tokens) != 7 {
		t.Errorf("expected 7 tokens, got %d", len(result.Tokens))
	}
	if result.Tokens[len(result.Tokens)-1].Kind != token.EOF {
		t.Errorf("missing trailing EOF token")
	}
}

func TestTokenizeReportsLexError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.d.ts", "var x: 'oops\n")

	result, err := driver.Tokenize(path, 10)
	if err == nil {
		t.Fatal("expected a lex error")
	}
	if result == nil || !result.Bag.HasErrors() {
		t.Fatal("expected the bag to carry the mirrored diagnostic")
	}
	if got := result.Bag.Items()[0].Code; got != diag.LexUnterminatedString {
		t.Errorf("expected %s, got %s", diag.LexUnterminatedString.ID(), got.ID())
	}
}

func TestParseFileUncached(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.d.ts", "declare interface Foo {}\nvar bar: Foo;\n")

	result, err := driver.Parse(path, driver.ParseOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.CacheHit {
		t.Error("parse without a cache must not report a hit")
	}
	if len(result.Decls) != 2 || len(result.Output) != 2 {
		t.Fatalf("expected 2 declarations, got %d/%d", len(result.Decls), len(result.Output))
	}
	if result.Output[0].Kind != "interface" || result.Output[0].Name != "Foo" {
		t.Errorf("unexpected first declaration: %+v", result.Output[0])
	}
}

func TestParseUsesDiskCache(t *testing.T) {
	cache := openTestCache(t)
	path := writeFile(t, t.TempDir(), "a.d.ts", "declare var x: number;\n")
	opts := driver.ParseOptions{MaxDiagnostics: 10, Cache: cache}

	first, err := driver.Parse(path, opts)
	if err != nil {
		t.Fatalf("first Parse failed: %v", err)
	}
	if first.CacheHit {
		t.Fatal("first parse must miss the cache")
	}

	second, err := driver.Parse(path, opts)
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}
	if !second.CacheHit {
		t.Fatal("second parse of identical content must hit the cache")
	}
	if len(second.Output) != 1 || second.Output[0].Name != "x" || second.Output[0].Type != "number" {
		t.Errorf("cached output differs: %+v", second.Output)
	}

	// Changing the content changes the key.
	if err := os.WriteFile(path, []byte("declare var y: string;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	third, err := driver.Parse(path, opts)
	if err != nil {
		t.Fatalf("third Parse failed: %v", err)
	}
	if third.CacheHit {
		t.Error("modified content must miss the cache")
	}
	if third.Output[0].Name != "y" {
		t.Errorf("expected fresh parse of new content, got %+v", third.Output)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	key := driver.Digest{1, 2, 3}
	var missing driver.DeclPayload
	if hit, err := cache.Get(key, &missing); err != nil || hit {
		t.Fatalf("expected a clean miss, got hit=%v err=%v", hit, err)
	}

	in := driver.DeclPayload{
		Schema: 1,
		Path:   "dom.d.ts",
		Decls:  nil,
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var out driver.DeclPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("expected a hit, got hit=%v err=%v", hit, err)
	}
	if out.Schema != in.Schema || out.Path != in.Path {
		t.Errorf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.d.ts", "var b: B;\n")
	writeFile(t, dir, "a.d.ts", "var a: A;\n")
	writeFile(t, dir, "nested/c.d.ts", "var c: C;\n")
	writeFile(t, dir, "ignored.ts", "not a declaration file")
	writeFile(t, dir, "broken.d.ts", "interface {}\n")

	fileSet, results, err := driver.ParseDir(context.Background(), dir, 10, 2, nil)
	if err != nil {
		t.Fatalf("ParseDir failed: %v", err)
	}
	if fileSet == nil {
		t.Fatal("expected a file set")
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	// Sorted path order regardless of scheduling.
	for i := 1; i < len(results); i++ {
		if results[i-1].Path >= results[i].Path {
			t.Errorf("results out of order: %q before %q", results[i-1].Path, results[i].Path)
		}
	}

	byName := make(map[string]driver.ParseDirResult, len(results))
	for _, res := range results {
		byName[filepath.Base(res.Path)] = res
	}

	if res := byName["a.d.ts"]; len(res.Output) != 1 || res.Output[0].Name != "a" {
		t.Errorf("unexpected a.d.ts result: %+v", res.Output)
	}
	if res := byName["c.d.ts"]; len(res.Output) != 1 || res.Output[0].Name != "c" {
		t.Errorf("unexpected nested c.d.ts result: %+v", res.Output)
	}
	if res := byName["broken.d.ts"]; !res.Bag.HasErrors() {
		t.Error("broken file must carry an error diagnostic")
	}
	if _, ok := byName["ignored.ts"]; ok {
		t.Error("non-.d.ts file must be skipped")
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fileSet, results, err := driver.TokenizeDir(context.Background(), t.TempDir(), 10, 0)
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}
	if fileSet == nil || len(results) != 0 {
		t.Errorf("expected an empty result set, got %d", len(results))
	}
}

func TestTokenizeDirParallel(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.d.ts", "b.d.ts", "c.d.ts", "d.d.ts"} {
		writeFile(t, dir, name, "declare var x: number;\n")
	}

	_, results, err := driver.TokenizeDir(context.Background(), dir, 10, 8)
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, res := range results {
		if len(res.Tokens) != 7 {
			t.Errorf("%s: expected 7 tokens, got %d", res.Path, len(res.Tokens))
		}
	}
}
