// Package parser implements a recursive-descent parser over tinyc/lexer's
// token stream, with an embedded Pratt (precedence-climbing) expression
// parser, backed by an arena allocator that supports the grow/shrink
// pattern for parameter and argument lists described in §4.1 and §4.3.2.
package parser

import (
	"tinyc/arena"
	"tinyc/ast"
	"tinyc/lexer"
	"tinyc/token"
)

const (
	initialParamCapacity = 16
	initialArgCapacity   = 8
)

// Parser drives a Lexer over one source buffer and allocates every AST node
// and backing array it produces from its own arenas. A Parser is single-use:
// construct one per parse with New.
type Parser struct {
	lex *lexer.Lexer

	nodes  *arena.Arena[ast.Node]
	params *arena.Arena[ast.Param]
	args   *arena.Arena[*ast.Node]

	// blockErrs accumulates statement-level errors recovered inside
	// parseBlockBody, which swallows them locally (emitting an ast.Error
	// stmt and resynchronizing) so the enclosing function survives. Parse
	// drains these into its returned error slice after each top-level form.
	blockErrs []*SyntaxError
}

// New creates a Parser over src, ready to call Parse.
func New(src string) *Parser {
	lex := lexer.New()
	lex.Start(src)
	return &Parser{
		lex:    lex,
		nodes:  arena.New[ast.Node](),
		params: arena.New[ast.Param](),
		args:   arena.New[*ast.Node](),
	}
}

func (p *Parser) peek(n int) token.Token { return p.lex.Peek(n) }
func (p *Parser) consume(k int)          { p.lex.Consume(k) }

func (p *Parser) checkOp(op token.Operator) bool {
	t := p.peek(0)
	return t.Kind == token.OperatorKind && t.Operator == op
}

func (p *Parser) checkKeyword(kw token.Keyword) bool {
	t := p.peek(0)
	return t.Kind == token.KeywordKind && t.Keyword == kw
}

func (p *Parser) expectOp(op token.Operator, context string) (token.Token, *SyntaxError) {
	tok := p.peek(0)
	if tok.Kind != token.OperatorKind || tok.Operator != op {
		return tok, newSyntaxError(tok, "expected '%s' %s", op, context)
	}
	p.consume(1)
	return tok, nil
}

func (p *Parser) expectIdentifier(context string) (token.Token, *SyntaxError) {
	tok := p.peek(0)
	if tok.Kind != token.Identifier {
		return tok, newSyntaxError(tok, "expected an identifier %s", context)
	}
	p.consume(1)
	return tok, nil
}

func (p *Parser) newNode(kind ast.Kind) *ast.Node {
	n := p.nodes.Alloc(1)
	n[0].Kind = kind
	return &n[0]
}

// Parse implements the §4.3 entry point: repeatedly parse a top-level form
// until eof, appending each to a sibling list. A lexer Invalid token aborts
// the loop with a logged error; a parser error is turned into an ast.Error
// node and the parser discards one token before continuing, per §7's
// single-token recovery policy.
func (p *Parser) Parse() (*ast.Node, []error) {
	var head, tail *ast.Node
	var errs []error

	append_ := func(n *ast.Node) {
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	for {
		tok := p.peek(0)
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Invalid {
			errs = append(errs, newSyntaxError(tok, "%s", tok.Text))
			break
		}

		before := len(p.blockErrs)
		node, err := p.topLevelForm()
		for _, be := range p.blockErrs[before:] {
			errs = append(errs, be)
		}
		if err != nil {
			errs = append(errs, err)
			errNode := p.newNode(ast.Error)
			errNode.Message = err.Message
			errNode.Token = err.Token
			append_(errNode)
			if p.peek(0).Kind != token.EOF {
				p.consume(1)
			}
			continue
		}
		append_(node)
	}

	return head, errs
}

// topLevelForm dispatches on the first keyword per §4.3's top-level table.
func (p *Parser) topLevelForm() (*ast.Node, *SyntaxError) {
	tok := p.peek(0)
	switch {
	case tok.Kind == token.KeywordKind && tok.Keyword == token.Fn:
		return p.parseFunction()
	case tok.Kind == token.KeywordKind && (tok.Keyword == token.Struct || tok.Keyword == token.Union):
		return p.parseReservedRecord()
	case tok.Kind == token.KeywordKind && (tok.Keyword == token.Let || tok.Keyword == token.Const):
		return p.parseReservedGlobal()
	default:
		return nil, newSyntaxError(tok, "expected a top-level form (fn, struct, union, let, const)")
	}
}

// parseReservedRecord consumes a struct/union header and an (unparsed)
// brace-delimited body, producing a Reserved stub. §9's open questions
// preserve struct/union's reserved status without synthesizing behavior.
func (p *Parser) parseReservedRecord() (*ast.Node, *SyntaxError) {
	kwTok := p.peek(0)
	p.consume(1)
	node := p.newNode(ast.Reserved)
	node.Token = kwTok

	if nameTok, err := p.expectIdentifier("after struct/union"); err == nil {
		node.Name = nameTok.Text
	} else {
		return nil, err
	}

	if _, err := p.expectOp(token.LBrace, "to open the record body"); err != nil {
		return nil, err
	}
	depth := 1
	for depth > 0 {
		tok := p.peek(0)
		if tok.Kind == token.EOF {
			return nil, newSyntaxError(tok, "unterminated struct/union body")
		}
		if tok.Kind == token.OperatorKind && tok.Operator == token.LBrace {
			depth++
		}
		if tok.Kind == token.OperatorKind && tok.Operator == token.RBrace {
			depth--
		}
		p.consume(1)
	}
	return node, nil
}

// parseReservedGlobal consumes a top-level let/const declaration as a
// Reserved stub per §9: tokenized and dispatched, not implemented.
func (p *Parser) parseReservedGlobal() (*ast.Node, *SyntaxError) {
	kwTok := p.peek(0)
	node := p.newNode(ast.Reserved)
	node.Token = kwTok
	for {
		tok := p.peek(0)
		if tok.Kind == token.EOF {
			return nil, newSyntaxError(tok, "unterminated global declaration")
		}
		p.consume(1)
		if tok.Kind == token.OperatorKind && tok.Operator == token.Semicolon {
			break
		}
	}
	return node, nil
}

// parseFunction implements §4.3.2: fn [return-type] NAME ( [param-list] ) { body }.
func (p *Parser) parseFunction() (*ast.Node, *SyntaxError) {
	p.consume(1) // 'fn'

	fn := p.newNode(ast.Function)
	fn.Type = ast.Datatype{Base: ast.BaseInfer}

	// The return type is optional; a bare function name looks identical to
	// a type name at this position, so peek ahead far enough to tell
	// whether a second identifier follows before committing to parse one.
	if p.hasLeadingDatatype() {
		dt, err := p.parseDatatype()
		if err != nil {
			return nil, err
		}
		fn.Type = dt
	}

	nameTok, err := p.expectIdentifier("as the function name")
	if err != nil {
		return nil, err
	}
	fn.Name = nameTok.Text

	if _, err := p.expectOp(token.LParen, "to open the parameter list"); err != nil {
		return nil, err
	}

	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	fn.Params = params

	if _, err := p.expectOp(token.RParen, "to close the parameter list"); err != nil {
		return nil, err
	}

	if _, err := p.expectOp(token.LBrace, "to open the function body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	fn.Body = body

	return fn, nil
}

// parseParamList implements the grow/shrink arena pattern of §4.1/§4.3.2:
// start at capacity 16, double on overflow, shrink to the final count once
// known.
func (p *Parser) parseParamList() ([]ast.Param, *SyntaxError) {
	capacity := initialParamCapacity
	buf := p.params.Alloc(capacity)
	count := 0

	for !p.checkOp(token.RParen) {
		if count > 0 {
			if _, err := p.expectOp(token.Comma, "between parameters"); err != nil {
				return nil, err
			}
		}

		isConst := false
		if p.checkKeyword(token.Const) {
			isConst = true
			p.consume(1)
		}

		dt, err := p.parseDatatype()
		if err != nil {
			return nil, err
		}
		dt.IsConst = isConst

		nameTok, err := p.expectIdentifier("as the parameter name")
		if err != nil {
			return nil, err
		}

		if count == capacity {
			newCapacity := capacity * 2
			buf = p.params.Grow(buf, capacity, newCapacity)
			capacity = newCapacity
		}
		buf[count] = ast.Param{Name: nameTok.Text, Type: dt}
		count++
	}

	if count < capacity {
		buf = p.params.Grow(buf, capacity, count)
	}
	return buf[:count], nil
}

// parseBlockBody implements §4.3.3's block grammar: zero or more statements
// until '}'. The caller has already consumed the opening '{'.
//
// A statement-level error is recovered here rather than propagated: it
// replaces the failing statement with an ast.Error node, records the error
// for Parse to report, and resynchronizes to the next ';' or '}' so the
// enclosing function is still produced instead of being discarded whole.
func (p *Parser) parseBlockBody() (*ast.Node, *SyntaxError) {
	var head, tail *ast.Node
	append_ := func(n *ast.Node) {
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	for !p.checkOp(token.RBrace) {
		if p.peek(0).Kind == token.EOF {
			return nil, newSyntaxError(p.peek(0), "unterminated block, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			p.blockErrs = append(p.blockErrs, err)
			errNode := p.newNode(ast.Error)
			errNode.Message = err.Message
			errNode.Token = err.Token
			// Body siblings are always Stmt-wrapped (see parseStatement), so
			// wrap the error the same way for the transpiler's dispatch.
			wrapped := p.newNode(ast.Stmt)
			wrapped.Value = errNode
			append_(wrapped)
			p.resynchronize()
			continue
		}
		append_(stmt)
	}
	p.consume(1) // '}'
	return head, nil
}

// resynchronize skips tokens after a statement-level parse error until the
// next ';' (consumed, so the block loop sees the statement after it) or '}'
// (left for the block loop to recognize as the block's end), or eof.
func (p *Parser) resynchronize() {
	for {
		tok := p.peek(0)
		if tok.Kind == token.EOF {
			return
		}
		if tok.Kind == token.OperatorKind && tok.Operator == token.RBrace {
			return
		}
		if tok.Kind == token.OperatorKind && tok.Operator == token.Semicolon {
			p.consume(1)
			return
		}
		p.consume(1)
	}
}

// parseStatement implements §4.3.3: a let/const declaration, a reserved
// return statement, or an expression statement, each wrapped in a Stmt node.
func (p *Parser) parseStatement() (*ast.Node, *SyntaxError) {
	stmt := p.newNode(ast.Stmt)

	switch {
	case p.checkKeyword(token.Let) || p.checkKeyword(token.Const):
		decl, err := p.parseVariableDecl()
		if err != nil {
			return nil, err
		}
		stmt.Value = decl
	case p.checkKeyword(token.Return):
		retTok := p.peek(0)
		p.consume(1)
		reserved := p.newNode(ast.Reserved)
		reserved.Token = retTok
		if !p.checkOp(token.Semicolon) {
			expr, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			reserved.Value = expr
		}
		stmt.Value = reserved
	default:
		expr, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		stmt.Value = expr
	}

	if _, err := p.expectOp(token.Semicolon, "to terminate the statement"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseVariableDecl implements §4.3.3's declaration grammar.
func (p *Parser) parseVariableDecl() (*ast.Node, *SyntaxError) {
	kwTok := p.peek(0)
	isConst := kwTok.Keyword == token.Const
	p.consume(1)

	decl := p.newNode(ast.VariableDecl)
	decl.IsConst = isConst
	decl.Type = ast.Datatype{Base: ast.BaseInfer}

	// A type name is present only when an identifier is immediately
	// followed by another identifier (the variable name); otherwise the
	// sole identifier here is the variable name and the type is inferred.
	if p.hasLeadingDatatype() {
		dt, err := p.parseDatatype()
		if err != nil {
			return nil, err
		}
		decl.Type = dt
	}

	nameTok, err := p.expectIdentifier("as the variable name")
	if err != nil {
		return nil, err
	}
	decl.Name = nameTok.Text

	if p.checkOp(token.Assign) {
		p.consume(1)
		value, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		decl.Value = value
	} else {
		if isConst {
			return nil, newSyntaxError(kwTok, "Const declarations must be immediately assigned")
		}
		decl.Type.Nullable = true
	}

	return decl, nil
}

// --- Pratt expression parser, §4.3.4 ---

type precedence int

const (
	precLowest precedence = iota
	precAssignment
	precConditional
	precSum
	precProduct
	precPrefix
	precCall
)

// precedenceOf returns the loop-continuation precedence of the current
// token. Among infix operators only sum and product are bound to a level
// ('(' binds at the call level for call arguments); assignment
// and conditional are named tiers with no operator wired to them (§9: the
// source's table omits boolean/bitwise/comparison/conditional operators
// despite lexing them, and this implementation treats that as deliberate).
func precedenceOf(tok token.Token) precedence {
	if tok.Kind == token.OperatorKind {
		switch tok.Operator {
		case token.Add, token.Sub:
			return precSum
		case token.Mul, token.Div:
			return precProduct
		case token.LParen:
			return precCall
		}
	}
	return precLowest
}

// parseExpr implements §4.3.4's parse_expr(min_prec) algorithm.
func (p *Parser) parseExpr(minPrec precedence) (*ast.Node, *SyntaxError) {
	tok := p.peek(0)
	if tok.Kind == token.OperatorKind && (tok.Operator == token.Semicolon || tok.Operator == token.Comma) {
		return nil, nil
	}

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		cur := p.peek(0)
		prec := precedenceOf(cur)
		if prec < minPrec {
			return left, nil
		}

		if cur.Kind == token.OperatorKind && cur.Operator == token.LParen && left.Kind == ast.Call && left.Args == nil {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			left.Args = args
			continue
		}

		if cur.Kind == token.OperatorKind && (cur.Operator == token.Add || cur.Operator == token.Sub || cur.Operator == token.Mul || cur.Operator == token.Div) {
			p.consume(1)
			right, err := p.parseExpr(prec + 1)
			if err != nil {
				return nil, err
			}
			node := p.newNode(ast.Binop)
			node.Operator = cur.Operator
			node.Left = left
			node.Right = right
			left = node
			continue
		}

		return left, nil
	}
}

// parsePrefix parses the prefix-position atom: a unary operator, a literal,
// an identifier (variable or call-header), or a parenthesized expression.
func (p *Parser) parsePrefix() (*ast.Node, *SyntaxError) {
	tok := p.peek(0)

	if tok.Kind == token.OperatorKind && (tok.Operator == token.Sub || tok.Operator == token.Not) {
		p.consume(1)
		right, err := p.parseExpr(precPrefix)
		if err != nil {
			return nil, err
		}
		node := p.newNode(ast.Binop) // unary modeled as binop with a nil Left, per the AST's closed node set
		node.Operator = tok.Operator
		node.Right = right
		return node, nil
	}

	switch tok.Kind {
	case token.Int64, token.Uint64:
		return p.parseIntLiteral(tok)
	case token.Float64:
		p.consume(1)
		lit := p.newNode(ast.Literal)
		lit.Type = ast.Datatype{Base: ast.BaseFloat64}
		lit.Float64Value = tok.Float64Value
		return lit, nil
	case token.String:
		p.consume(1)
		lit := p.newNode(ast.Literal)
		lit.Type = ast.Datatype{Base: ast.BaseString}
		lit.StringValue = tok.Text
		return lit, nil
	case token.Char:
		p.consume(1)
		lit := p.newNode(ast.Literal)
		lit.Type = ast.Datatype{Base: ast.BaseChar}
		lit.CharValue = tok.CharValue
		return lit, nil
	case token.Identifier:
		p.consume(1)
		if p.checkOp(token.LParen) {
			call := p.newNode(ast.Call)
			call.Name = tok.Text
			return call, nil
		}
		v := p.newNode(ast.Variable)
		v.Name = tok.Text
		v.Token = tok
		return v, nil
	}

	if tok.Kind == token.OperatorKind && tok.Operator == token.LParen {
		p.consume(1)
		inner, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectOp(token.RParen, "to close the grouped expression"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, newSyntaxError(tok, "unrecognised expression")
}

// parseIntLiteral applies §8's classification rule: a decimal integer
// literal whose magnitude is <= INT32_MAX is typed int32 regardless of
// sign; beyond that it keeps the lexer's int64/uint64 classification.
func (p *Parser) parseIntLiteral(tok token.Token) (*ast.Node, *SyntaxError) {
	p.consume(1)
	lit := p.newNode(ast.Literal)

	const int32Max = 1<<31 - 1
	if tok.Kind == token.Int64 {
		magnitude := -tok.Int64Value
		if magnitude >= 0 && magnitude <= int32Max {
			lit.Type = ast.Datatype{Base: ast.BaseInt32}
		} else {
			lit.Type = ast.Datatype{Base: ast.BaseInt64}
		}
		lit.Int64Value = tok.Int64Value
		return lit, nil
	}

	if tok.Uint64Value <= int32Max {
		lit.Type = ast.Datatype{Base: ast.BaseInt32}
		lit.Int64Value = int64(tok.Uint64Value)
	} else {
		lit.Type = ast.Datatype{Base: ast.BaseUint64}
		lit.Uint64Value = tok.Uint64Value
	}
	return lit, nil
}

// parseCallArgs implements §4.3.4's call-argument grammar, using the same
// grow/shrink arena pattern as parameters, starting at capacity 8.
func (p *Parser) parseCallArgs() ([]*ast.Node, *SyntaxError) {
	p.consume(1) // '('

	capacity := initialArgCapacity
	buf := p.args.Alloc(capacity)
	count := 0

	for !p.checkOp(token.RParen) {
		if count > 0 {
			if _, err := p.expectOp(token.Comma, "between arguments"); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, newSyntaxError(p.peek(0), "expected an argument expression")
		}

		if count == capacity {
			newCapacity := capacity * 2
			buf = p.args.Grow(buf, capacity, newCapacity)
			capacity = newCapacity
		}
		buf[count] = arg
		count++
	}
	p.consume(1) // ')'

	if count < capacity {
		buf = p.args.Grow(buf, capacity, count)
	}
	return buf[:count], nil
}
