package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tsdecl/internal/diag"
	"tsdecl/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Faint)
	markColor = color.New(color.FgGreen, color.Bold)
)

// Pretty formats diagnostics into a human-readable report. It walks
// bag.Items() in order (call bag.Sort() first for deterministic output)
// and prints for each diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline for the primary span,
// then the notes in the same shape. Color is gated by opts.Color.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Severity, d.Code.ID(), d.Primary, d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeading(w, fs, diag.SevInfo, "note", note.Span, note.Msg, opts)
				writeContext(w, fs, note.Span, opts)
			}
		}
	}
}

// PrettyError renders a single fatal error in the same shape Pretty uses
// for bag entries.
func PrettyError(w io.Writer, err *diag.Error, fs *source.FileSet, opts PrettyOpts) {
	d := err.Diag
	writeHeading(w, fs, d.Severity, d.Code.ID(), d.Primary, d.Message, opts)
	writeContext(w, fs, d.Primary, opts)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func writeHeading(w io.Writer, fs *source.FileSet, sev diag.Severity, code string, sp source.Span, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(sp)
	file := fs.Get(sp.File)
	pos := fmt.Sprintf("%s:%d:%d:", file.Path, start.Line, start.Col)
	head := fmt.Sprintf("%s %s:", strings.ToUpper(sev.String()), code)
	fmt.Fprintf(w, "%s %s %s\n",
		paint(posColor, opts.Color, pos),
		paint(severityColor(sev), opts.Color, head),
		msg)
}

// writeContext prints the primary line with a caret underline, plus up to
// opts.Context neighbouring lines on each side.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	file := fs.Get(sp.File)

	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); ctx > 0 && first > ctx {
		first -= ctx
	} else if ctx > 0 {
		first = 1
	}
	last := start.Line + uint32(max(opts.Context, 0))

	for line := first; line <= last; line++ {
		text := file.GetLine(line)
		if text == "" && line != start.Line {
			continue
		}
		fmt.Fprintf(w, "  %4d | %s\n", line, text)
		if line != start.Line {
			continue
		}

		markLen := 1
		if end.Line == start.Line && end.Col > start.Col {
			markLen = int(end.Col - start.Col)
		}
		underline := "^"
		if markLen > 1 {
			underline += strings.Repeat("~", markLen-1)
		}
		fmt.Fprintf(w, "       | %s%s\n",
			strings.Repeat(" ", int(start.Col)-1),
			paint(markColor, opts.Color, underline))
	}
}
