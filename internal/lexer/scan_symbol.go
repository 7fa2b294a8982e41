package lexer

import (
	"tsdecl/internal/diag"
	"tsdecl/internal/token"
)

// Greedy matching: three-byte spellings first, then two-byte, then single.
// The catalog is fixed; anything outside it is a lex error covering the
// whole maximal run of non-whitespace characters.
func (lx *Lexer) scanSymbol() (token.Token, error) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, error) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}, nil
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(token.Ellipsis)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '=':
		return emit(token.Assign)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '|':
		return emit(token.Pipe)
	case '&':
		return emit(token.Amp)
	case '.':
		return emit(token.Dot)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '?':
		return emit(token.Question)
	default:
		// Consume the maximal non-whitespace run for the diagnostic.
		for !lx.cursor.EOF() && !isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{}, lx.errLex(diag.LexUnknownToken, sp,
			"unrecognized token %q", lx.text(sp))
	}
}

// try2/try3 eat 2/3 bytes when they match exactly.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
