package parser

import (
	"tsdecl/internal/diag"
	"tsdecl/internal/source"
	"tsdecl/internal/token"
)

// peek returns the token at the cursor; past the end it keeps returning
// the final EOF token.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

// advance consumes and returns the token at the cursor.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atName(text string) bool {
	return p.peek().IsName(text)
}

// consume eats the next token iff it has the given kind.
func (p *Parser) consume(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// consumeName eats the next token iff it is a Name with the given text.
func (p *Parser) consumeName(text string) bool {
	if p.atName(text) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a required token kind or fails the parse.
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, p.errParse(code, tok.Span,
		"expected %q but got %s %q", k.String(), tok.Kind, tok.Text)
}

// expectIdent consumes a required Name token.
func (p *Parser) expectIdent() (token.Token, error) {
	if p.at(token.Name) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, p.errParse(diag.SynExpectIdentifier, tok.Span,
		"expected identifier but got %s %q", tok.Kind, tok.Text)
}

func (p *Parser) errParse(code diag.Code, sp source.Span, format string, args ...any) *diag.Error {
	return diag.Errorf(p.opts.Reporter, p.file, code, sp, format, args...)
}

// lastEnd is the end offset of the most recently consumed token.
func (p *Parser) lastEnd() uint32 {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].Span.End
}

func isOpener(k token.Kind) bool {
	switch k {
	case token.LParen, token.LBrace, token.LBracket, token.Lt:
		return true
	default:
		return false
	}
}

func isCloser(k token.Kind) bool {
	switch k {
	case token.RParen, token.RBrace, token.RBracket, token.Gt:
		return true
	default:
		return false
	}
}

// skip is the structural skip helper: sitting on any of ( { [ <, it
// advances past the matching closer, recursing through nested openers of
// any of the four kinds; on any other token it consumes exactly one.
// Used to discard generic parameter lists, interface member bodies and
// object-literal type shapes.
func (p *Parser) skip() error {
	open := p.peek()
	if !isOpener(open.Kind) {
		p.advance()
		return nil
	}
	p.advance()
	depth := 1
	for depth > 0 {
		tok := p.peek()
		switch {
		case tok.Kind == token.EOF:
			return p.errParse(diag.SynUnclosedDelimiter, open.Span,
				"unclosed %q", open.Text)
		case isOpener(tok.Kind):
			depth++
		case isCloser(tok.Kind):
			depth--
		}
		p.advance()
	}
	return nil
}

// skipTypeParams discards a generic type-parameter list `<...>`, balancing
// only angle brackets.
func (p *Parser) skipTypeParams() error {
	open, err := p.expect(token.Lt, diag.SynUnexpectedToken)
	if err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			return p.errParse(diag.SynUnclosedDelimiter, open.Span,
				"unclosed type parameter list")
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		}
		p.advance()
	}
	return nil
}
