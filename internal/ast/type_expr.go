package ast

import (
	"strings"

	"tsdecl/internal/source"
)

// Synthetic operator tags used as TypeExpr names. Every other name is a raw
// type name from the source (or a string-literal type with its quotes, or a
// folded typeof(X)/keyof(X) reference).
const (
	TypeTuple     = "TUPLE"
	TypeArray     = "ARRAY"
	TypeSubscript = "SUBSCRIPT"
	TypeUnion     = "Union"
	TypeIntersect = "Intersect"
	TypeFunction  = "Function(UnknownArgs)"

	unknownPrefix = "UNKNOWN("
)

// UnknownType wraps raw source text of an unmodeled object-literal type in
// the UNKNOWN(...) escape name.
func UnknownType(raw string) string {
	return unknownPrefix + raw + ")"
}

// TypeExpr is an immutable type-expression node. Atomic nodes have nil Args;
// compound nodes carry a name-determined argument list (ARRAY exactly one,
// SUBSCRIPT exactly two, and so on).
type TypeExpr struct {
	Span source.Span
	Name string
	Args []TypeExpr
}

// Atomic reports whether the node has no arguments.
func (t TypeExpr) Atomic() bool { return t.Args == nil }

// IsUnknown reports whether the node is an UNKNOWN(...) escape.
func (t TypeExpr) IsUnknown() bool { return strings.HasPrefix(t.Name, unknownPrefix) }

// String renders the node as Name or Name[arg1, arg2].
func (t TypeExpr) String() string {
	if t.Args == nil {
		return t.Name
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteByte('[')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
