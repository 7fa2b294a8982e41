package token

// Kind represents the category of a declaration-file token.
//
// Keywords are not a lexical category here: the declaration grammar treats
// `interface`, `namespace` and friends as plain names, and the parser
// compares token text where a structural keyword is required.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Name represents an identifier token, keyword or not.
	Name
	// Number represents a numeric literal token.
	Number
	// String represents a string or template literal token, delimiters included.
	String
	// Comment represents a doc comment (`/** ... */`); Text carries the
	// interior without the delimiters. Ordinary comments never become tokens.
	Comment

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Lt represents the left angle token.
	Lt // <
	// Gt represents the right angle token.
	Gt // >
	// Assign represents the assign token.
	Assign // =
	// Plus represents the plus token.
	Plus // +
	// Minus represents the minus token.
	Minus // -
	// Pipe represents the union operator token.
	Pipe // |
	// Amp represents the intersection operator token.
	Amp // &
	// OrOr represents the logical-or token.
	OrOr // ||
	// AndAnd represents the logical-and token.
	AndAnd // &&
	// Ellipsis represents the rest/variadic marker token.
	Ellipsis // ...
	// Dot represents the dot token.
	Dot // .
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// FatArrow represents the function-type arrow token.
	FatArrow // =>
	// Question represents the optional marker token.
	Question // ?
)

var kindNames = [...]string{
	Invalid:   "INVALID",
	EOF:       "EOF",
	Name:      "NAME",
	Number:    "NUMBER",
	String:    "STRING",
	Comment:   "COMMENT",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	LBrace:    "{",
	RBrace:    "}",
	Lt:        "<",
	Gt:        ">",
	Assign:    "=",
	Plus:      "+",
	Minus:     "-",
	Pipe:      "|",
	Amp:       "&",
	OrOr:      "||",
	AndAnd:    "&&",
	Ellipsis:  "...",
	Dot:       ".",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	FatArrow:  "=>",
	Question:  "?",
}

// String returns the category name for structural kinds and the exact
// spelling for symbol kinds, so lookups by punctuation stay uniform.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsSymbol reports whether the kind is from the fixed punctuation catalog.
func (k Kind) IsSymbol() bool {
	return k >= LParen && k <= Question
}
