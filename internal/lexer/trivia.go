package lexer

import (
	"tsdecl/internal/diag"
)

// skipTrivia consumes whitespace, `//` line comments and ordinary block
// comments. A doc comment (`/**` that is not the degenerate `/**/`) is NOT
// trivia: the loop stops in front of it so Next can emit a Comment token.
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if isSpace(b) {
			lx.cursor.Bump()
			continue
		}

		if lx.cursor.StartsWith("//") {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}

		// `/**/` counts as an ordinary comment; `/**` with content is a doc
		// comment and is left for the scanner.
		if lx.cursor.StartsWith("/*") && !lx.atDocComment() {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.cursor.Bump()
			if err := lx.skipToCommentClose(start); err != nil {
				return err
			}
			continue
		}

		break
	}
	return nil
}

// atDocComment reports whether the cursor sits on `/**` but not `/**/`.
func (lx *Lexer) atDocComment() bool {
	return lx.cursor.StartsWith("/**") && !lx.cursor.StartsWith("/**/")
}

// skipToCommentClose advances past the first `*/`, erroring at EOF.
func (lx *Lexer) skipToCommentClose(start Mark) error {
	for !lx.cursor.EOF() {
		if lx.cursor.StartsWith("*/") {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return nil
		}
		lx.cursor.Bump()
	}
	return lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start),
		"unterminated block comment")
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
