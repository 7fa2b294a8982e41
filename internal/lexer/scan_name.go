package lexer

import (
	"tsdecl/internal/token"
)

// scanName scans [A-Za-z_][A-Za-z0-9_]* into a Name token. Keywords are not
// distinguished here: `interface` and `x` are both names, and keyword
// recognition is the parser's job.
func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Name, Span: sp, Text: lx.text(sp)}
}

// scanNumber scans an optional 0x prefix, a digit run, and an optional
// single fraction. No exponents: the declaration-file subset has none.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.StartsWith("0x") {
		lx.cursor.Bump()
		lx.cursor.Bump()
	}
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
