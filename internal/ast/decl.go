package ast

import (
	"strings"

	"tsdecl/internal/source"
)

// DocComment is the nearest preceding `/** ... */` comment attached to a
// declaration. Text is the comment interior without the delimiters.
type DocComment struct {
	Span source.Span
	Text string
}

// Decl is the closed union over the five ambient declaration variants.
// Consumers type-switch over *InterfaceDecl, *TypeAliasDecl, *VarDecl,
// *NamespaceDecl and *FuncDecl.
type Decl interface {
	// DeclSpan returns the span of the declaration's first token.
	DeclSpan() source.Span
	// DeclName returns the declared name.
	DeclName() string
	// DeclDoc returns the attached doc comment, or nil.
	DeclDoc() *DocComment

	isDecl()
}

// InterfaceDecl models `interface Name extends T1, T2 { ... }`.
// Member bodies are parsed and discarded, not modeled.
type InterfaceDecl struct {
	Span    source.Span
	Doc     *DocComment
	Name    string
	Extends []TypeExpr
}

// TypeAliasDecl models `type Name = T;`.
type TypeAliasDecl struct {
	Span source.Span
	Doc  *DocComment
	Name string
	Type TypeExpr
}

// VarDecl models `var Name: T;` and `const Name: T;` alike.
type VarDecl struct {
	Span source.Span
	Doc  *DocComment
	Name string
	Type TypeExpr
}

// NamespaceDecl models `namespace Name { ... }`; its member list has the
// same shape as a top-level program.
type NamespaceDecl struct {
	Span  source.Span
	Doc   *DocComment
	Name  string
	Decls []Decl
}

// Param is one function parameter. Variadic and Optional are independent.
type Param struct {
	Span     source.Span
	Variadic bool
	Name     string
	Optional bool
	Type     TypeExpr
}

// Signature renders the parameter as `name: Type`, with a `?` suffix on
// the name when the parameter is optional.
func (p Param) Signature() string {
	name := p.Name
	if p.Optional {
		name += "?"
	}
	return name + ": " + p.Type.String()
}

// FuncDecl models `function Name(params): T;`.
type FuncDecl struct {
	Span   source.Span
	Doc    *DocComment
	Name   string
	Params []Param
	Return TypeExpr
}

// Signature renders the function as `name(a: T, ...b: U): R`.
func (d *FuncDecl) Signature() string {
	var sb strings.Builder
	sb.WriteString(d.Name)
	sb.WriteByte('(')
	for i, p := range d.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Variadic {
			sb.WriteString("...")
		}
		sb.WriteString(p.Signature())
	}
	sb.WriteString("): ")
	sb.WriteString(d.Return.String())
	return sb.String()
}

func (d *InterfaceDecl) DeclSpan() source.Span { return d.Span }
func (d *TypeAliasDecl) DeclSpan() source.Span { return d.Span }
func (d *VarDecl) DeclSpan() source.Span       { return d.Span }
func (d *NamespaceDecl) DeclSpan() source.Span { return d.Span }
func (d *FuncDecl) DeclSpan() source.Span      { return d.Span }

func (d *InterfaceDecl) DeclName() string { return d.Name }
func (d *TypeAliasDecl) DeclName() string { return d.Name }
func (d *VarDecl) DeclName() string       { return d.Name }
func (d *NamespaceDecl) DeclName() string { return d.Name }
func (d *FuncDecl) DeclName() string      { return d.Name }

func (d *InterfaceDecl) DeclDoc() *DocComment { return d.Doc }
func (d *TypeAliasDecl) DeclDoc() *DocComment { return d.Doc }
func (d *VarDecl) DeclDoc() *DocComment       { return d.Doc }
func (d *NamespaceDecl) DeclDoc() *DocComment { return d.Doc }
func (d *FuncDecl) DeclDoc() *DocComment      { return d.Doc }

func (*InterfaceDecl) isDecl() {}
func (*TypeAliasDecl) isDecl() {}
func (*VarDecl) isDecl()       {}
func (*NamespaceDecl) isDecl() {}
func (*FuncDecl) isDecl()      {}
