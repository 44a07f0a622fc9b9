package parser

import (
	"testing"

	"tinyc/ast"
	"tinyc/token"
)

func mustFunction(t *testing.T, src string) *ast.Node {
	t.Helper()
	p := New(src)
	head, errs := p.Parse()
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if head == nil || head.Kind != ast.Function {
		t.Fatalf("expected a single function node, got %#v", head)
	}
	return head
}

func firstStmtExpr(t *testing.T, fn *ast.Node) *ast.Node {
	t.Helper()
	if fn.Body == nil || fn.Body.Kind != ast.Stmt {
		t.Fatalf("expected a statement body, got %#v", fn.Body)
	}
	return fn.Body.Value
}

// TestPrattLeftAssociativity covers §8: "a - b - c" yields
// binop(binop(a,-,b),-,c).
func TestPrattLeftAssociativity(t *testing.T) {
	fn := mustFunction(t, "fn void f() { a - b - c; }")
	expr := firstStmtExpr(t, fn)

	if expr.Kind != ast.Binop || expr.Operator != token.Sub {
		t.Fatalf("expected outer binop(-), got %#v", expr)
	}
	if expr.Right.Kind != ast.Variable || expr.Right.Name != "c" {
		t.Fatalf("expected right operand 'c', got %#v", expr.Right)
	}
	inner := expr.Left
	if inner.Kind != ast.Binop || inner.Operator != token.Sub {
		t.Fatalf("expected inner binop(-), got %#v", inner)
	}
	if inner.Left.Name != "a" || inner.Right.Name != "b" {
		t.Fatalf("expected inner operands a, b, got %#v", inner)
	}
}

// TestPrattPrecedence covers §8: "a + b * c" yields binop(a,+,binop(b,*,c)).
func TestPrattPrecedence(t *testing.T) {
	fn := mustFunction(t, "fn void f() { a + b * c; }")
	expr := firstStmtExpr(t, fn)

	if expr.Kind != ast.Binop || expr.Operator != token.Add {
		t.Fatalf("expected outer binop(+), got %#v", expr)
	}
	if expr.Left.Kind != ast.Variable || expr.Left.Name != "a" {
		t.Fatalf("expected left operand 'a', got %#v", expr.Left)
	}
	inner := expr.Right
	if inner.Kind != ast.Binop || inner.Operator != token.Mul {
		t.Fatalf("expected right-hand binop(*), got %#v", inner)
	}
	if inner.Left.Name != "b" || inner.Right.Name != "c" {
		t.Fatalf("expected inner operands b, c, got %#v", inner)
	}
}

// TestConstWithoutInitializerErrors covers §8 scenario 5's exact message.
func TestConstWithoutInitializerErrors(t *testing.T) {
	p := New("fn void g() { const int k; }")
	_, errs := p.Parse()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one parse error, got %v", errs)
	}
	se, ok := errs[0].(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", errs[0])
	}
	const want = "Const declarations must be immediately assigned"
	if se.Message != want {
		t.Fatalf("got message %q, want %q", se.Message, want)
	}
}

func TestFunctionWithIntParamsAndLocal(t *testing.T) {
	fn := mustFunction(t, "fn int add(int a, int b) { let int c = a + b; }")
	if fn.Name != "add" {
		t.Fatalf("expected function name 'add', got %q", fn.Name)
	}
	if fn.Type.Base != ast.BaseInt32 {
		t.Fatalf("expected return type int32, got %s", fn.Type.Base)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Fatalf("unexpected params: %#v", fn.Params)
	}
	decl := firstStmtExpr(t, fn)
	if decl.Kind != ast.VariableDecl || decl.Name != "c" {
		t.Fatalf("expected variable_decl 'c', got %#v", decl)
	}
	if decl.Type.Base != ast.BaseInt32 {
		t.Fatalf("expected declared type int32, got %s", decl.Type.Base)
	}
}

func TestLetWithoutInitializerIsNullable(t *testing.T) {
	fn := mustFunction(t, "fn void f() { let int x; }")
	decl := firstStmtExpr(t, fn)
	if decl.Kind != ast.VariableDecl {
		t.Fatalf("expected variable_decl, got %#v", decl)
	}
	if !decl.Type.Nullable {
		t.Fatalf("expected nullable type for uninitialized let")
	}
	if decl.Value != nil {
		t.Fatalf("expected no initializer, got %#v", decl.Value)
	}
}

func TestInferredFloatDeclaration(t *testing.T) {
	fn := mustFunction(t, "fn void main() { let x = 3.14; }")
	decl := firstStmtExpr(t, fn)
	if decl.Kind != ast.VariableDecl || decl.Type.Base != ast.BaseInfer {
		t.Fatalf("expected infer-typed declaration, got %#v", decl)
	}
	if decl.Value == nil || decl.Value.Kind != ast.Literal || decl.Value.Type.Base != ast.BaseFloat64 {
		t.Fatalf("expected float64 literal initializer, got %#v", decl.Value)
	}
}

func TestCallArguments(t *testing.T) {
	fn := mustFunction(t, `fn void main() { print("hi", 42); }`)
	call := firstStmtExpr(t, fn)
	if call.Kind != ast.Call || call.Name != "print" {
		t.Fatalf("expected call to print, got %#v", call)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
	if call.Args[0].Type.Base != ast.BaseString {
		t.Fatalf("expected first arg string, got %s", call.Args[0].Type.Base)
	}
	if call.Args[1].Type.Base != ast.BaseInt32 {
		t.Fatalf("expected second arg int32 (magnitude <= INT32_MAX), got %s", call.Args[1].Type.Base)
	}
}

func TestUnaryMinusIsBinopWithNilLeft(t *testing.T) {
	fn := mustFunction(t, "fn void f() { -x; }")
	expr := firstStmtExpr(t, fn)
	if expr.Kind != ast.Binop || expr.Operator != token.Sub {
		t.Fatalf("expected unary binop(-), got %#v", expr)
	}
	if expr.Left != nil {
		t.Fatalf("expected nil Left for unary operator, got %#v", expr.Left)
	}
	if expr.Right == nil || expr.Right.Name != "x" {
		t.Fatalf("expected Right operand 'x', got %#v", expr.Right)
	}
}

func TestStructIsReservedStub(t *testing.T) {
	p := New("struct Point { } fn void f() {}")
	head, errs := p.Parse()
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if head == nil || head.Kind != ast.Reserved || head.Name != "Point" {
		t.Fatalf("expected reserved struct stub named Point, got %#v", head)
	}
	if head.Next == nil || head.Next.Kind != ast.Function {
		t.Fatalf("expected function to follow the struct stub, got %#v", head.Next)
	}
}
