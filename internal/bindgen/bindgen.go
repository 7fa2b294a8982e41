// Package bindgen turns parsed ambient declarations into Go binding stubs.
// The output is a starting point for a hand-maintained binding layer, not a
// finished FFI: unmodeled types degrade to `any` rather than failing.
package bindgen

import (
	"fmt"
	"io"
	"strings"

	"tsdecl/internal/ast"
)

// Generator emits stubs for a declaration list.
type Generator struct {
	cfg Config
}

func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate writes one Go source file with a stub per declaration. Nested
// namespace members get the namespace name as a prefix, so `namespace A`
// holding `var b` becomes `A_b`.
func (g *Generator) Generate(w io.Writer, decls []ast.Decl) error {
	fmt.Fprintf(w, "// Code generated by tsdecl bindings. DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package %s\n", g.cfg.Package)
	for _, d := range decls {
		if err := g.writeDecl(w, d, ""); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeDecl(w io.Writer, d ast.Decl, prefix string) error {
	if g.cfg.skipped(d.DeclName()) {
		return nil
	}
	name := prefix + g.cfg.renamed(d.DeclName())

	switch d := d.(type) {
	case *ast.NamespaceDecl:
		for _, inner := range d.Decls {
			if err := g.writeDecl(w, inner, name+"_"); err != nil {
				return err
			}
		}
		return nil
	case *ast.InterfaceDecl:
		g.writeDoc(w, d.Doc)
		fmt.Fprintf(w, "type %s struct {\n", name)
		for _, ext := range d.Extends {
			fmt.Fprintf(w, "\t%s\n", g.mapType(ext))
		}
		fmt.Fprintf(w, "}\n")
	case *ast.TypeAliasDecl:
		g.writeDoc(w, d.Doc)
		fmt.Fprintf(w, "type %s = %s\n", name, g.mapTypeOr(d.Type, "any"))
	case *ast.VarDecl:
		g.writeDoc(w, d.Doc)
		fmt.Fprintf(w, "var %s %s\n", name, g.mapTypeOr(d.Type, "any"))
	case *ast.FuncDecl:
		g.writeDoc(w, d.Doc)
		fmt.Fprintf(w, "func %s(%s)%s {\n\tpanic(\"not implemented\")\n}\n",
			name, g.paramList(d.Params), g.returnClause(d.Return))
	}
	return nil
}

// writeDoc renders the attached doc comment as line comments, preceded by a
// blank line to separate declarations.
func (g *Generator) writeDoc(w io.Writer, doc *ast.DocComment) {
	fmt.Fprintln(w)
	if doc == nil {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(doc.Text), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if line == "" {
			continue
		}
		fmt.Fprintf(w, "// %s\n", line)
	}
}

func (g *Generator) paramList(params []ast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		typ := g.mapTypeOr(p.Type, "any")
		if p.Variadic {
			// The source writes variadics as arrays; Go spells the
			// element type after the ellipsis.
			typ = "..." + strings.TrimPrefix(typ, "[]")
		}
		parts = append(parts, p.Name+" "+typ)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) returnClause(ret ast.TypeExpr) string {
	mapped := g.mapType(ret)
	if mapped == "" {
		return ""
	}
	return " " + mapped
}

// mapType renders a type expression as a Go type. Constructs with no Go
// counterpart (unions, subscripts, UNKNOWN escapes) degrade to `any`.
func (g *Generator) mapType(te ast.TypeExpr) string {
	switch te.Name {
	case ast.TypeArray:
		return "[]" + g.mapTypeOr(te.Args[0], "any")
	case ast.TypeTuple:
		return "[]any"
	case ast.TypeFunction:
		return "func()" + g.returnClause(te.Args[0])
	case ast.TypeUnion, ast.TypeIntersect, ast.TypeSubscript:
		return "any"
	}
	if te.IsUnknown() || !te.Atomic() {
		return "any"
	}
	if strings.HasPrefix(te.Name, "typeof(") || strings.HasPrefix(te.Name, "keyof(") {
		return "any"
	}
	if strings.HasPrefix(te.Name, "'") || strings.HasPrefix(te.Name, "\"") || strings.HasPrefix(te.Name, "`") {
		// A string-literal type narrows to its underlying primitive.
		return "string"
	}
	if mapped, ok := g.cfg.TypeMap[te.Name]; ok {
		return mapped
	}
	return g.cfg.renamed(te.Name)
}

// mapTypeOr is mapType with a fallback for types that map to nothing,
// usable in positions where Go requires a type.
func (g *Generator) mapTypeOr(te ast.TypeExpr, fallback string) string {
	if mapped := g.mapType(te); mapped != "" {
		return mapped
	}
	return fallback
}
