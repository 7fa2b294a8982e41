package parser

import (
	"tsdecl/internal/ast"
	"tsdecl/internal/diag"
	"tsdecl/internal/lexer"
	"tsdecl/internal/source"
	"tsdecl/internal/token"
)

// Options configures a Parser. The Reporter, when set, receives a copy of
// every fatal diagnostic; parsing still aborts on the first error.
type Options struct {
	Reporter diag.Reporter
}

// Parser walks an owned token slice with an index cursor. Lookahead is
// save/restore of the index; tokens and the produced AST are never mutated,
// so independent parses may run concurrently.
type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
	opts Options
}

// Parse consumes the token sequence produced by lexer.Tokenize and returns
// the file's top-level declarations in source order. The first grammar
// violation aborts with a *diag.Error; there is no recovery.
func Parse(file *source.File, toks []token.Token, opts Options) ([]ast.Decl, error) {
	p := &Parser{file: file, toks: toks, opts: opts}
	return p.parseProgram()
}

// ParseFile lexes and parses in one step.
func ParseFile(file *source.File, opts Options) ([]ast.Decl, error) {
	toks, err := lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
	if err != nil {
		return nil, err
	}
	return Parse(file, toks, opts)
}

// parseProgram is the top-level loop: absorb leading doc comments keeping
// the most recent, parse one declaration, clear the pending comment.
func (p *Parser) parseProgram() ([]ast.Decl, error) {
	var decls []ast.Decl
	for {
		doc := p.collectDoc()
		if p.at(token.EOF) {
			break
		}
		d, err := p.parseDecl(doc)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// collectDoc consumes a run of Comment tokens and keeps only the last one
// as the pending doc comment for the next declaration.
func (p *Parser) collectDoc() *ast.DocComment {
	var doc *ast.DocComment
	for p.at(token.Comment) {
		tok := p.advance()
		doc = &ast.DocComment{Span: tok.Span, Text: tok.Text}
	}
	return doc
}
