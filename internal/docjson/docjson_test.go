package docjson_test

import (
	"slices"
	"strings"
	"testing"

	"tsdecl/internal/docjson"
)

const sampleDump = `[
  {"name": "vec3", "longname": "module:vec3", "kind": "module"},
  {"name": "EPSILON", "longname": "module:common.EPSILON", "kind": "constant",
   "meta": {"filename": "common.js", "code": {"type": "Literal"}}},
  {"name": "create", "longname": "module:vec3.create", "kind": "function",
   "meta": {"filename": "vec3.js", "code": {"type": "FunctionDeclaration"}},
   "returns": [{"type": {"names": ["vec3"]}}],
   "params": [{"name": "out", "type": {"names": ["vec3"]}}]},
  {"name": "len", "longname": "module:vec3.len", "kind": "function",
   "description": "Alias for {@link vec3.length}"},
  {"name": "helper", "longname": "module:vec3~helper", "kind": "function",
   "returns": [{"type": {"names": ["Number"]}}], "params": []},
  {"longname": "package:undefined", "kind": "package"}
]`

func decode(t *testing.T) []docjson.Entry {
	t.Helper()
	entries, err := docjson.Decode(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return entries
}

func TestKeys(t *testing.T) {
	keys := docjson.Keys(decode(t))
	for _, want := range []string{"name", "longname", "kind", "meta", "returns", "params", "description"} {
		if !slices.Contains(keys, want) {
			t.Errorf("keys missing %q: %v", want, keys)
		}
	}
	if !slices.IsSorted(keys) {
		t.Errorf("keys not sorted: %v", keys)
	}
}

func TestNamesSkipEntriesWithoutName(t *testing.T) {
	names := docjson.Names(decode(t))
	want := []string{"vec3", "EPSILON", "create", "len", "helper"}
	if !slices.Equal(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestLongnamesKeepInputOrder(t *testing.T) {
	longnames := docjson.Longnames(decode(t))
	if len(longnames) != 6 || longnames[0] != "module:vec3" || longnames[5] != "package:undefined" {
		t.Errorf("unexpected longnames: %v", longnames)
	}
}

func TestKindsAreSortedSet(t *testing.T) {
	kinds := docjson.Kinds(decode(t))
	want := []string{"constant", "function", "module", "package"}
	if !slices.Equal(kinds, want) {
		t.Errorf("got %v, want %v", kinds, want)
	}
}

func TestExports(t *testing.T) {
	exports := docjson.Exports(decode(t))

	// The alias (no returns/params) and the inner-scope helper drop out.
	if len(exports) != 2 {
		t.Fatalf("expected 2 exports, got %v", exports)
	}
	if exports[0].Longname != "module:common.EPSILON" || exports[0].Kind != "constant" {
		t.Errorf("unexpected first export: %+v", exports[0])
	}

	fn := exports[1]
	if fn.Longname != "module:vec3.create" || fn.CodeType != "FunctionDeclaration" {
		t.Errorf("unexpected function export: %+v", fn)
	}
	if !slices.Equal(fn.Returns, []string{"vec3"}) {
		t.Errorf("unexpected returns: %v", fn.Returns)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "out" {
		t.Errorf("unexpected params: %v", fn.Params)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	if _, err := docjson.Decode(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Fatal("expected an error for a non-array dump")
	}
}
