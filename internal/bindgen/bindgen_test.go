package bindgen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tsdecl/internal/ast"
	"tsdecl/internal/bindgen"
	"tsdecl/internal/parser"
	"tsdecl/internal/source"
)

func parseDecls(t *testing.T, input string) []ast.Decl {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d.ts", []byte(input)))
	decls, err := parser.ParseFile(file, parser.Options{})
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	return decls
}

func generate(t *testing.T, cfg bindgen.Config, input string) string {
	t.Helper()
	var sb strings.Builder
	if err := bindgen.New(cfg).Generate(&sb, parseDecls(t, input)); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return sb.String()
}

func TestGenerateVarAndFunc(t *testing.T) {
	input := `/** Device pixel ratio. */
declare var devicePixelRatio: number;
declare function atob(data: string): string;
declare function close(): void;`
	out := generate(t, bindgen.DefaultConfig(), input)

	for _, want := range []string{
		"package bindings\n",
		"// Device pixel ratio.\n",
		"var devicePixelRatio float64\n",
		"func atob(data string) string {\n",
		"func close() {\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateInterfaceAndAlias(t *testing.T) {
	input := `interface AudioNode extends EventTarget { connect(): void; }
type BufferSource = ArrayBuffer | ArrayBufferView;
type Flags = boolean[];`
	out := generate(t, bindgen.DefaultConfig(), input)

	for _, want := range []string{
		"type AudioNode struct {\n\tEventTarget\n}",
		// Unions have no Go counterpart.
		"type BufferSource = any\n",
		"type Flags = []bool\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateNamespacePrefixing(t *testing.T) {
	input := `namespace CSS {
		function supports(property: string): boolean;
		var highlights: HighlightRegistry;
	}`
	out := generate(t, bindgen.DefaultConfig(), input)

	if !strings.Contains(out, "func CSS_supports(property string) bool {") {
		t.Errorf("namespace function not prefixed:\n%s", out)
	}
	if !strings.Contains(out, "var CSS_highlights HighlightRegistry") {
		t.Errorf("namespace var not prefixed:\n%s", out)
	}
}

func TestGenerateVariadicAndLiterals(t *testing.T) {
	input := `declare function log(...args: any[]): void;
declare var mode: '2d' | 'webgl';`
	out := generate(t, bindgen.DefaultConfig(), input)

	if !strings.Contains(out, "func log(args ...any) {") {
		t.Errorf("variadic parameter wrong:\n%s", out)
	}
	// A union of string literals degrades to any (the union rule wins
	// over the literal rule).
	if !strings.Contains(out, "var mode any") {
		t.Errorf("literal union mapping wrong:\n%s", out)
	}
}

func TestConfigOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")
	cfgText := `package = "dom"

skip = ["Deprecated"]

[type_map]
number = "int64"

[rename]
EventTarget = "EvtTarget"
`
	if err := os.WriteFile(path, []byte(cfgText), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := bindgen.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	input := `var count: number;
var target: EventTarget;
var flag: boolean;
interface Deprecated {}`
	out := generate(t, cfg, input)

	for _, want := range []string{
		"package dom\n",
		"var count int64\n",
		"var target EvtTarget\n",
		// Entries absent from the overlay keep their defaults.
		"var flag bool\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Deprecated") {
		t.Errorf("skipped declaration still present:\n%s", out)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := bindgen.LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
