package parser

// Structural keywords of the declaration grammar. The lexer emits these as
// plain Name tokens; only the parser gives them meaning, and only in the
// positions the grammar calls for.
const (
	kwDeclare   = "declare"
	kwInterface = "interface"
	kwType      = "type"
	kwVar       = "var"
	kwConst     = "const"
	kwNamespace = "namespace"
	kwFunction  = "function"
	kwExtends   = "extends"
	kwTypeof    = "typeof"
	kwKeyof     = "keyof"
)
