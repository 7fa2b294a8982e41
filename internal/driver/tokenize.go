package driver

import (
	"tsdecl/internal/diag"
	"tsdecl/internal/lexer"
	"tsdecl/internal/source"
	"tsdecl/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file and scans it. On a lex error the returned result
// still carries the file set and the bag with the mirrored diagnostic, so
// callers can render it with context.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens, err := lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, err
}
