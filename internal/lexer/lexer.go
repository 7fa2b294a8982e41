package lexer

import (
	"tsdecl/internal/source"
	"tsdecl/internal/token"
)

// Lexer scans a declaration file into tokens. It is a single forward pass
// over the file content with no state beyond the cursor; independent files
// may be lexed concurrently.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New creates a lexer over the file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize scans the whole file and returns its tokens, terminated by a
// single EOF token positioned at the input length. The first unrecognized
// or unterminated construct aborts with a *diag.Error.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next significant token. Doc comments (`/** ... */`) are
// significant and come out as Comment tokens; every other comment is
// skipped with the whitespace. After EOF it keeps returning EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if err := lx.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	if lx.atDocComment() {
		return lx.scanDocComment()
	}

	ch := lx.cursor.Peek()
	switch {
	case isDec(ch):
		return lx.scanNumber(), nil
	case isIdentStartByte(ch):
		return lx.scanName(), nil
	case ch == '\'' || ch == '"' || ch == '`':
		return lx.scanString()
	default:
		return lx.scanSymbol()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
