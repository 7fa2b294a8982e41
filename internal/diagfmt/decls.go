package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"tsdecl/internal/ast"
	"tsdecl/internal/source"
)

// DeclOutput is the flat, serializable form of one declaration. It is both
// the JSON output shape and the disk-cache payload shape, so cached and
// freshly parsed declarations render through the same code. Namespaces nest
// through Decls; the other variants use the flat fields.
type DeclOutput struct {
	Kind    string       `json:"kind" msgpack:"kind"`
	Name    string       `json:"name" msgpack:"name"`
	Doc     string       `json:"doc,omitempty" msgpack:"doc,omitempty"`
	Span    source.Span  `json:"span" msgpack:"span"`
	Type    string       `json:"type,omitempty" msgpack:"type,omitempty"`
	Extends []string     `json:"extends,omitempty" msgpack:"extends,omitempty"`
	Params  []string     `json:"params,omitempty" msgpack:"params,omitempty"`
	Return  string       `json:"return,omitempty" msgpack:"return,omitempty"`
	Decls   []DeclOutput `json:"decls,omitempty" msgpack:"decls,omitempty"`
}

// BuildDeclOutput converts one declaration into its serializable form.
func BuildDeclOutput(d ast.Decl) DeclOutput {
	out := DeclOutput{
		Name: d.DeclName(),
		Span: d.DeclSpan(),
	}
	if doc := d.DeclDoc(); doc != nil {
		out.Doc = doc.Text
	}

	switch d := d.(type) {
	case *ast.InterfaceDecl:
		out.Kind = "interface"
		for _, ext := range d.Extends {
			out.Extends = append(out.Extends, ext.String())
		}
	case *ast.TypeAliasDecl:
		out.Kind = "type"
		out.Type = d.Type.String()
	case *ast.VarDecl:
		out.Kind = "var"
		out.Type = d.Type.String()
	case *ast.NamespaceDecl:
		out.Kind = "namespace"
		for _, inner := range d.Decls {
			out.Decls = append(out.Decls, BuildDeclOutput(inner))
		}
	case *ast.FuncDecl:
		out.Kind = "function"
		for _, p := range d.Params {
			sig := p.Signature()
			if p.Variadic {
				sig = "..." + sig
			}
			out.Params = append(out.Params, sig)
		}
		out.Return = d.Return.String()
	}
	return out
}

// BuildDeclOutputs converts a declaration list.
func BuildDeclOutputs(decls []ast.Decl) []DeclOutput {
	output := make([]DeclOutput, 0, len(decls))
	for _, d := range decls {
		output = append(output, BuildDeclOutput(d))
	}
	return output
}

// FormatDeclsPretty prints declarations as an indented tree, one line per
// declaration with its one-line summary label.
func FormatDeclsPretty(w io.Writer, decls []DeclOutput, fs *source.FileSet) error {
	for i, d := range decls {
		writeDeclPretty(w, d, fs, "", i == len(decls)-1)
	}
	return nil
}

func writeDeclPretty(w io.Writer, d DeclOutput, fs *source.FileSet, prefix string, isLast bool) {
	branch, childPrefix := "├─ ", prefix+"│  "
	if isLast {
		branch, childPrefix = "└─ ", prefix+"   "
	}
	start, _ := fs.Resolve(d.Span)
	fmt.Fprintf(w, "%s%s%s (line %d)\n", prefix, branch, declLabel(d), start.Line)

	for i, inner := range d.Decls {
		writeDeclPretty(w, inner, fs, childPrefix, i == len(d.Decls)-1)
	}
}

// declLabel renders the one-line summary of a declaration.
func declLabel(d DeclOutput) string {
	switch d.Kind {
	case "interface":
		label := "interface " + d.Name
		if len(d.Extends) > 0 {
			label += " extends " + strings.Join(d.Extends, ", ")
		}
		return label
	case "type":
		return "type " + d.Name + " = " + d.Type
	case "var":
		return "var " + d.Name + ": " + d.Type
	case "namespace":
		return "namespace " + d.Name
	case "function":
		return "function " + d.Name + "(" + strings.Join(d.Params, ", ") + "): " + d.Return
	default:
		return d.Kind + " " + d.Name
	}
}

// FormatDeclsJSON prints the declaration list as a JSON array.
func FormatDeclsJSON(w io.Writer, decls []DeclOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(decls)
}
