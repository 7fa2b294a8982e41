package diag

import (
	"fmt"

	"tsdecl/internal/source"
)

// Error is a fatal lex or parse failure carrying its diagnostic and the
// 1-based source line it points at. Any Error aborts the whole run: the
// declaration grammar has no recovery or partial results.
type Error struct {
	Diag Diagnostic
	Line uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.Diag.Code.ID(), e.Line, e.Diag.Message)
}

// Errorf builds an *Error for the span, resolving its line within file,
// and mirrors the diagnostic to the reporter when one is set.
func Errorf(r Reporter, file *source.File, code Code, primary source.Span, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if r != nil {
		r.Report(code, SevError, primary, msg, nil)
	}
	return &Error{
		Diag: Diagnostic{
			Severity: SevError,
			Code:     code,
			Message:  msg,
			Primary:  primary,
		},
		Line: file.Line(primary.Start),
	}
}
