package token

import (
	"tsdecl/internal/source"
)

// Token represents a single declaration-file token with its location.
// For symbol kinds Text equals the spelling; for Comment tokens Text is
// the comment interior.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsName reports whether the token is an identifier with the given text.
// Structural keywords (`declare`, `interface`, ...) are recognized this way
// by the parser; the lexer emits them as plain Name tokens.
func (t Token) IsName(text string) bool {
	return t.Kind == Name && t.Text == text
}

// IsEOF reports whether the token is the synthetic end-of-input token.
func (t Token) IsEOF() bool { return t.Kind == EOF }
