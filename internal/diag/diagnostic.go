package diag

import (
	"tsdecl/internal/source"
)

// Note attaches an extra span/message pair to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
