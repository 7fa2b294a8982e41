package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"tsdecl/internal/diag"
	"tsdecl/internal/diagfmt"
	"tsdecl/internal/lexer"
	"tsdecl/internal/parser"
	"tsdecl/internal/source"
)

func makeFileSet(t *testing.T, input string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.d.ts", []byte(input))
	return fs, fs.Get(id)
}

func TestPrettyDiagnostics(t *testing.T) {
	input := "var a: A;\nvar b = 1;\n"
	fs, file := makeFileSet(t, input)

	bag := diag.NewBag(8)
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if _, err := parser.Parse(file, toks, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	}); err == nil {
		t.Fatal("expected a parse error")
	}

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "test.d.ts:2:7:") {
		t.Errorf("missing position prefix:\n%s", out)
	}
	if !strings.Contains(out, "ERROR SYN2001:") {
		t.Errorf("missing severity and code:\n%s", out)
	}
	if !strings.Contains(out, "var b = 1;") {
		t.Errorf("missing source context line:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret underline:\n%s", out)
	}
	// No ANSI escapes without Color.
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected color escapes:\n%s", out)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, file := makeFileSet(t, "enum E {}\n")

	bag := diag.NewBag(8)
	_, err := parser.ParseFile(file, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	if err == nil {
		t.Fatal("expected a parse error")
	}

	var sb strings.Builder
	if err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, sb.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2003" || d.Severity != "ERROR" {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
	if d.Location.File != "test.d.ts" || d.Location.StartLine != 1 {
		t.Errorf("unexpected location: %+v", d.Location)
	}
}

func TestJSONTruncation(t *testing.T) {
	fs, _ := makeFileSet(t, "x")
	bag := diag.NewBag(8)
	for i := 0; i < 5; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.LexUnknownToken,
			Message:  "boom",
		})
	}

	var sb strings.Builder
	if err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 {
		t.Errorf("expected truncation to 2, got %d", out.Count)
	}
}

func TestFormatTokens(t *testing.T) {
	fs, file := makeFileSet(t, "var x: number;")
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var pretty strings.Builder
	if err := diagfmt.FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := pretty.String()
	for _, want := range []string{`NAME`, `"var"`, `":"`, `"number"`, "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %s:\n%s", want, out)
		}
	}

	var buf strings.Builder
	if err := diagfmt.FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("token JSON invalid: %v", err)
	}
	// var x : number ; EOF
	if len(decoded) != 6 {
		t.Fatalf("expected 6 tokens, got %d", len(decoded))
	}
	if decoded[2].Kind != ":" {
		t.Errorf("symbol kind must be its spelling, got %q", decoded[2].Kind)
	}
}

func TestFormatDecls(t *testing.T) {
	input := `namespace WebAssembly {
	/** Compiles a module. */
	function compile(bytes: BufferSource): Promise;
}
var console: Console;`
	fs, file := makeFileSet(t, input)
	decls, err := parser.ParseFile(file, parser.Options{})
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	output := diagfmt.BuildDeclOutputs(decls)

	var pretty strings.Builder
	if err := diagfmt.FormatDeclsPretty(&pretty, output, fs); err != nil {
		t.Fatal(err)
	}
	out := pretty.String()
	for _, want := range []string{
		"├─ namespace WebAssembly (line 1)",
		"│  └─ function compile(bytes: BufferSource): Promise (line 3)",
		"└─ var console: Console (line 5)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}

	var buf strings.Builder
	if err := diagfmt.FormatDeclsJSON(&buf, output); err != nil {
		t.Fatal(err)
	}
	var decoded []diagfmt.DeclOutput
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("decl JSON invalid: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Kind != "namespace" {
		t.Fatalf("unexpected JSON decls: %+v", decoded)
	}
	inner := decoded[0].Decls
	if len(inner) != 1 || inner[0].Doc != " Compiles a module. " {
		t.Errorf("nested function lost its doc: %+v", inner)
	}
}
