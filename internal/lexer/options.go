package lexer

import (
	"tsdecl/internal/diag"
	"tsdecl/internal/source"
)

// Options configures a Lexer. The Reporter, when set, receives a copy of
// every fatal diagnostic; lexing still aborts on the first error.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, format string, args ...any) *diag.Error {
	return diag.Errorf(lx.opts.Reporter, lx.file, code, sp, format, args...)
}
