package parser

import (
	"tsdecl/internal/ast"
	"tsdecl/internal/diag"
	"tsdecl/internal/token"
)

// parseDecl dispatches on the keyword after an optional `declare`. Any
// other lookahead is fatal: the grammar models exactly five declaration
// forms.
func (p *Parser) parseDecl(doc *ast.DocComment) (ast.Decl, error) {
	p.consumeName(kwDeclare)

	switch tok := p.peek(); {
	case tok.IsName(kwInterface):
		return p.parseInterface(doc)
	case tok.IsName(kwType):
		return p.parseTypeAlias(doc)
	case tok.IsName(kwVar), tok.IsName(kwConst):
		return p.parseVar(doc)
	case tok.IsName(kwNamespace):
		return p.parseNamespace(doc)
	case tok.IsName(kwFunction):
		return p.parseFunc(doc)
	default:
		return nil, p.errParse(diag.SynUnexpectedTopLevel, tok.Span,
			"unrecognized declaration starting with %s %q", tok.Kind, tok.Text)
	}
}

// parseInterface handles `interface Name<...>? (extends T1, T2)? { ... }`.
// The member body is discarded member-by-member; only the name and the
// extends clause survive.
func (p *Parser) parseInterface(doc *ast.DocComment) (ast.Decl, error) {
	start := p.advance().Span // `interface`
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.Lt) {
		if err := p.skipTypeParams(); err != nil {
			return nil, err
		}
	}

	var extends []ast.TypeExpr
	if p.consumeName(kwExtends) {
		for {
			te, err := p.parseTypeExpr()
			if err != nil {
				return nil, err
			}
			extends = append(extends, te)
			if !p.consume(token.Comma) {
				break
			}
		}
	}

	if _, err := p.expect(token.LBrace, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		if err := p.parseMember(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RBrace, diag.SynUnclosedBody); err != nil {
		return nil, err
	}

	return &ast.InterfaceDecl{
		Span:    start,
		Doc:     doc,
		Name:    name.Text,
		Extends: extends,
	}, nil
}

// parseMember discards one interface member: scan to the next `;` or the
// closing `}` at depth zero, respecting nested brackets so a method
// signature's parameter list does not end the member early.
func (p *Parser) parseMember() error {
	for !p.at(token.RBrace) && !p.at(token.Semicolon) {
		if p.at(token.EOF) {
			return p.errParse(diag.SynUnclosedBody, p.peek().Span,
				"unclosed interface body")
		}
		if err := p.skip(); err != nil {
			return err
		}
	}
	p.consume(token.Semicolon)
	return nil
}

// parseTypeAlias handles `type Name<...>? = T;`.
func (p *Parser) parseTypeAlias(doc *ast.DocComment) (ast.Decl, error) {
	start := p.advance().Span // `type`
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.Lt) {
		if err := p.skip(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Assign, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	te, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	return &ast.TypeAliasDecl{Span: start, Doc: doc, Name: name.Text, Type: te}, nil
}

// parseVar handles `var Name: T;` and `const Name: T;`.
func (p *Parser) parseVar(doc *ast.DocComment) (ast.Decl, error) {
	start := p.advance().Span // `var` or `const`
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	te, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Span: start, Doc: doc, Name: name.Text, Type: te}, nil
}

// parseNamespace handles `namespace Name { Declaration* }` with the same
// comment-attachment loop as the top level.
func (p *Parser) parseNamespace(doc *ast.DocComment) (ast.Decl, error) {
	start := p.advance().Span // `namespace`
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}

	var decls []ast.Decl
	for {
		memberDoc := p.collectDoc()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		d, err := p.parseDecl(memberDoc)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	if _, err := p.expect(token.RBrace, diag.SynUnclosedBody); err != nil {
		return nil, err
	}
	return &ast.NamespaceDecl{Span: start, Doc: doc, Name: name.Text, Decls: decls}, nil
}

// parseFunc handles `function Name<...>? (params): T;`.
func (p *Parser) parseFunc(doc *ast.DocComment) (ast.Decl, error) {
	start := p.advance().Span // `function`
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.Lt) {
		if err := p.skip(); err != nil {
			return nil, err
		}
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	ret, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	return &ast.FuncDecl{
		Span:   start,
		Doc:    doc,
		Name:   name.Text,
		Params: params,
		Return: ret,
	}, nil
}

// parseParams parses a parenthesized, comma-separated parameter list.
func (p *Parser) parseParams() ([]ast.Param, error) {
	if _, err := p.expect(token.LParen, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.at(token.EOF) && !p.at(token.RParen) {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.consume(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}
	return params, nil
}

// parseParam parses `...? Name ?? : T`. A leading `...` marks variadic, a
// `?` after the name marks optional; the flags are independent.
func (p *Parser) parseParam() (ast.Param, error) {
	start := p.peek().Span
	variadic := p.consume(token.Ellipsis)
	name, err := p.expectIdent()
	if err != nil {
		return ast.Param{}, err
	}
	optional := p.consume(token.Question)
	if _, err := p.expect(token.Colon, diag.SynUnexpectedToken); err != nil {
		return ast.Param{}, err
	}
	te, err := p.parseTypeExpr()
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{
		Span:     start,
		Variadic: variadic,
		Name:     name.Text,
		Optional: optional,
		Type:     te,
	}, nil
}
