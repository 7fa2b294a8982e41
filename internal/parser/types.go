package parser

import (
	"tsdecl/internal/ast"
	"tsdecl/internal/diag"
	"tsdecl/internal/source"
	"tsdecl/internal/token"
)

// parseTypeExpr parses a full type expression: a primary followed by
// postfix and binary combinators applied left to right.
//
// `[]`/`[Index]` re-loop immediately, so postfix binds before `|` and `&`.
// `|` and `&` sit at the same level and the right operand is parsed by a
// full recursive call, which makes them right-leaning in textual order with
// no precedence between them. `A | B & C` therefore groups as
// Union(A, Intersect(B, C)) purely because the `&` is consumed inside the
// recursive parse of the `|` operand. Downstream bindings depend on this
// exact shape; do not introduce precedence climbing here.
func (p *Parser) parseTypeExpr() (ast.TypeExpr, error) {
	te, err := p.parsePrimaryType()
	if err != nil {
		return ast.TypeExpr{}, err
	}
	for {
		if p.consume(token.LBracket) {
			if p.consume(token.RBracket) {
				te = ast.TypeExpr{Span: te.Span, Name: ast.TypeArray, Args: []ast.TypeExpr{te}}
			} else {
				index, err := p.parseTypeExpr()
				if err != nil {
					return ast.TypeExpr{}, err
				}
				if _, err := p.expect(token.RBracket, diag.SynUnexpectedToken); err != nil {
					return ast.TypeExpr{}, err
				}
				te = ast.TypeExpr{Span: te.Span, Name: ast.TypeSubscript, Args: []ast.TypeExpr{te, index}}
			}
			continue
		}
		if p.consume(token.Pipe) {
			rhs, err := p.parseTypeExpr()
			if err != nil {
				return ast.TypeExpr{}, err
			}
			te = mergeVariants(ast.TypeUnion, te, rhs)
			continue
		}
		if p.consume(token.Amp) {
			rhs, err := p.parseTypeExpr()
			if err != nil {
				return ast.TypeExpr{}, err
			}
			te = mergeVariants(ast.TypeIntersect, te, rhs)
			continue
		}
		break
	}
	return te, nil
}

// mergeVariants builds a flattened Union/Intersect node: an operand that is
// itself such a node contributes its args, never a nested level.
func mergeVariants(tag string, lhs, rhs ast.TypeExpr) ast.TypeExpr {
	args := make([]ast.TypeExpr, 0, 2)
	if lhs.Name == tag && lhs.Args != nil {
		args = append(args, lhs.Args...)
	} else {
		args = append(args, lhs)
	}
	if rhs.Name == tag && rhs.Args != nil {
		args = append(args, rhs.Args...)
	} else {
		args = append(args, rhs)
	}
	return ast.TypeExpr{Span: lhs.Span, Name: tag, Args: args}
}

// parsePrimaryType handles the atomic and bracketed forms, in the grammar's
// priority order.
func (p *Parser) parsePrimaryType() (ast.TypeExpr, error) {
	tok := p.peek()
	switch {
	case tok.Kind == token.String:
		// The literal itself, quotes included, becomes the type name:
		// that is what lets 'a' | 'b' model literal unions.
		p.advance()
		return ast.TypeExpr{Span: tok.Span, Name: tok.Text}, nil

	case tok.IsName(kwTypeof), tok.IsName(kwKeyof):
		return p.parseTypeQuery()

	case tok.Kind == token.Name:
		p.advance()
		// Generic arguments are skipped, not modeled: the binding
		// generator only needs the nominal outer name.
		if p.at(token.Lt) {
			if err := p.skip(); err != nil {
				return ast.TypeExpr{}, err
			}
		}
		return ast.TypeExpr{Span: tok.Span, Name: tok.Text}, nil

	case tok.Kind == token.LBracket:
		return p.parseTupleType()

	case tok.Kind == token.LParen && p.atFunctionType():
		return p.parseFunctionType()

	case tok.Kind == token.LBrace:
		return p.parseObjectType()

	case tok.Kind == token.LParen:
		p.advance()
		te, err := p.parseTypeExpr()
		if err != nil {
			return ast.TypeExpr{}, err
		}
		if _, err := p.expect(token.RParen, diag.SynUnexpectedToken); err != nil {
			return ast.TypeExpr{}, err
		}
		return te, nil

	default:
		return ast.TypeExpr{}, p.errParse(diag.SynExpectType, tok.Span,
			"expected type expression but got %s %q", tok.Kind, tok.Text)
	}
}

// parseTypeQuery folds `typeof X` / `keyof X`, optionally `.Member`, into a
// single synthetic name such as typeof(X) or typeof(X).Member.
func (p *Parser) parseTypeQuery() (ast.TypeExpr, error) {
	op := p.advance() // `typeof` or `keyof`
	name, err := p.expectIdent()
	if err != nil {
		return ast.TypeExpr{}, err
	}
	folded := op.Text + "(" + name.Text + ")"
	if p.consume(token.Dot) {
		member, err := p.expectIdent()
		if err != nil {
			return ast.TypeExpr{}, err
		}
		folded += "." + member.Text
	}
	return ast.TypeExpr{Span: op.Span, Name: folded}, nil
}

// parseTupleType parses `[T1, T2, ...]`, tolerating a trailing comma.
func (p *Parser) parseTupleType() (ast.TypeExpr, error) {
	open := p.advance() // `[`
	args := make([]ast.TypeExpr, 0, 2)
	for !p.at(token.EOF) && !p.at(token.RBracket) {
		te, err := p.parseTypeExpr()
		if err != nil {
			return ast.TypeExpr{}, err
		}
		args = append(args, te)
		if !p.consume(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBracket, diag.SynUnexpectedToken); err != nil {
		return ast.TypeExpr{}, err
	}
	return ast.TypeExpr{Span: open.Span, Name: ast.TypeTuple, Args: args}, nil
}

// atFunctionType disambiguates `(params) => T` from a parenthesized group:
// skip the balanced parenthesis group and check for `=>`, then rewind.
func (p *Parser) atFunctionType() bool {
	if !p.at(token.LParen) {
		return false
	}
	saved := p.pos
	err := p.skipQuiet()
	arrow := err == nil && p.at(token.FatArrow)
	p.pos = saved
	return arrow
}

// skipQuiet is skip without diagnostics, for speculative lookahead.
func (p *Parser) skipQuiet() error {
	savedReporter := p.opts.Reporter
	p.opts.Reporter = nil
	err := p.skip()
	p.opts.Reporter = savedReporter
	return err
}

// parseFunctionType parses `(params) => T`. Parameter detail is discarded:
// the node is Function(UnknownArgs) wrapping only the return type.
func (p *Parser) parseFunctionType() (ast.TypeExpr, error) {
	start := p.peek().Span
	if _, err := p.parseParams(); err != nil {
		return ast.TypeExpr{}, err
	}
	if _, err := p.expect(token.FatArrow, diag.SynUnexpectedToken); err != nil {
		return ast.TypeExpr{}, err
	}
	ret, err := p.parseTypeExpr()
	if err != nil {
		return ast.TypeExpr{}, err
	}
	return ast.TypeExpr{Span: start, Name: ast.TypeFunction, Args: []ast.TypeExpr{ret}}, nil
}

// parseObjectType captures an inline `{ ... }` shape verbatim as raw source
// text inside an UNKNOWN(...) escape instead of modeling it.
func (p *Parser) parseObjectType() (ast.TypeExpr, error) {
	start := p.peek().Span
	if err := p.skip(); err != nil {
		return ast.TypeExpr{}, err
	}
	sp := source.Span{File: start.File, Start: start.Start, End: p.lastEnd()}
	return ast.TypeExpr{Span: sp, Name: ast.UnknownType(p.file.Snippet(sp))}, nil
}
