package lexer

import (
	"tsdecl/internal/diag"
	"tsdecl/internal/token"
)

// scanDocComment scans `/** ... */` into a Comment token whose text is the
// interior without the delimiters. The parser attaches the nearest
// preceding one of these to the next declaration.
func (lx *Lexer) scanDocComment() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	lx.cursor.Bump() // '*'

	if err := lx.skipToCommentClose(start); err != nil {
		return token.Token{}, err
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Comment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start+3 : sp.End-2]),
	}, nil
}

// scanString scans a literal delimited by matching ', " or backtick.
// Backslash escapes are skipped, not decoded; the token text keeps the
// delimiters verbatim. Newlines are allowed (template literals span lines).
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == quote {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}, nil
		}
		if b == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
	}
	return token.Token{}, lx.errLex(diag.LexUnterminatedString,
		lx.cursor.SpanFrom(start), "unterminated string literal")
}
