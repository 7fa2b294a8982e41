// Package docjson reads jsdoc-style JSON documentation dumps and answers
// the report queries the doc-report command exposes.
package docjson

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Entry is one documented symbol. Only the fields the reports use are
// modeled; everything else stays in Raw for the key listing.
type Entry struct {
	Name        string     `json:"name"`
	Longname    string     `json:"longname"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Meta        *Meta      `json:"meta"`
	Returns     []Returns  `json:"returns"`
	Params      []ParamDoc `json:"params"`

	Raw map[string]json.RawMessage `json:"-"`
}

type Meta struct {
	Filename string `json:"filename"`
	Code     Code   `json:"code"`
}

type Code struct {
	Type string `json:"type"`
}

// TypeDoc carries the type name alternatives of a param or return value.
type TypeDoc struct {
	Names []string `json:"names"`
}

type Returns struct {
	Type        TypeDoc `json:"type"`
	Description string  `json:"description"`
}

type ParamDoc struct {
	Name string  `json:"name"`
	Type TypeDoc `json:"type"`
}

// Decode reads a JSON array of entries, keeping each entry's raw key set.
func Decode(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	var raws []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Raw = raws[i]
	}
	return entries, nil
}

// Load reads entries from a file.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Keys returns the sorted union of all keys appearing in any entry.
func Keys(entries []Entry) []string {
	seen := make(map[string]bool)
	for _, e := range entries {
		for key := range e.Raw {
			seen[key] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Names returns the names of all entries that have one, in input order.
func Names(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if _, ok := e.Raw["name"]; ok {
			names = append(names, e.Name)
		}
	}
	return names
}

// Longnames returns every entry's longname, in input order.
func Longnames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Longname
	}
	return names
}

// Kinds returns the sorted set of entry kinds.
func Kinds(entries []Entry) []string {
	seen := make(map[string]bool)
	for _, e := range entries {
		seen[e.Kind] = true
	}
	kinds := make([]string, 0, len(seen))
	for kind := range seen {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Export is one module-level constant or function suitable for binding.
type Export struct {
	Kind     string
	Longname string
	CodeType string
	Filename string
	Returns  []string
	Params   []ParamDoc
}

// Exports selects the module-level constants and functions: longname under
// a `module:` scope with no inner (`~`) scope. Functions missing returns or
// params documentation are dropped, which also drops `Alias for {@link X}`
// stubs.
func Exports(entries []Entry) []Export {
	var exports []Export
	for _, e := range entries {
		if e.Kind != "constant" && e.Kind != "function" {
			continue
		}
		if !strings.HasPrefix(e.Longname, "module:") || strings.Contains(e.Longname, "~") {
			continue
		}
		if e.Kind == "function" && (e.Returns == nil || e.Params == nil) {
			continue
		}

		exp := Export{
			Kind:     e.Kind,
			Longname: e.Longname,
			Params:   e.Params,
		}
		if e.Meta != nil {
			exp.CodeType = e.Meta.Code.Type
			exp.Filename = e.Meta.Filename
		}
		for _, ret := range e.Returns {
			exp.Returns = append(exp.Returns, ret.Type.Names...)
		}
		exports = append(exports, exp)
	}
	return exports
}
