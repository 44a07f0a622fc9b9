package parser

import (
	"tinyc/ast"
	"tinyc/token"
)

// parseDatatype implements §4.3.1: match an identifier (or the `void`
// keyword, which the lexer reserves) against the fixed table of primitive
// type names, then apply a trailing '?' (nullable) or '*' (pointer)
// modifier. On a name that isn't a known primitive, it returns an error
// without consuming the identifier, so the caller can try a different
// production (e.g. treat the token as an expression instead).
func (p *Parser) parseDatatype() (ast.Datatype, *SyntaxError) {
	tok := p.peek(0)
	name := tok.Text
	if tok.Kind == token.KeywordKind && tok.Keyword == token.Void {
		name = "void"
	} else if tok.Kind != token.Identifier {
		return ast.Datatype{}, newSyntaxError(tok, "expected a type name")
	}
	base, ok := ast.LookupPrimitiveBase(name)
	if !ok {
		return ast.Datatype{}, newSyntaxError(tok, "unrecognised datatype %q", tok.Text)
	}
	p.consume(1)

	dt := ast.Datatype{Base: base}
	next := p.peek(0)
	if next.Kind == token.OperatorKind && next.Operator == token.Question {
		dt.Nullable = true
		p.consume(1)
		next = p.peek(0)
	}
	if next.Kind == token.OperatorKind && next.Operator == token.Mul {
		dt.IsPtr = true
		p.consume(1)
	}
	return dt, nil
}

// datatypeLookaheadWidth reports how many tokens a datatype-then-modifiers
// sequence starting at the read head would occupy, or 0 if the token at
// the read head isn't a known primitive name. It never consumes; callers
// use it to disambiguate an optional leading type name from the following
// identifier itself, without the false consumption a try-then-check-next
// approach would cause when the type guess is wrong.
func (p *Parser) datatypeLookaheadWidth() int {
	tok := p.peek(0)
	name := tok.Text
	if tok.Kind == token.KeywordKind && tok.Keyword == token.Void {
		name = "void"
	} else if tok.Kind != token.Identifier {
		return 0
	}
	if _, ok := ast.LookupPrimitiveBase(name); !ok {
		return 0
	}
	n := 1
	if t := p.peek(n); t.Kind == token.OperatorKind && t.Operator == token.Question {
		n++
	}
	if t := p.peek(n); t.Kind == token.OperatorKind && t.Operator == token.Mul {
		n++
	}
	return n
}

// hasLeadingDatatype reports whether the read head is a type name followed
// by another identifier (the declared name), i.e. whether an optional
// leading datatype is actually present rather than the name standing alone.
func (p *Parser) hasLeadingDatatype() bool {
	n := p.datatypeLookaheadWidth()
	if n == 0 {
		return false
	}
	return p.peek(n).Kind == token.Identifier
}
