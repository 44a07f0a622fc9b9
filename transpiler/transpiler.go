// Package transpiler walks the parsed AST and emits equivalent C source,
// implementing type inference for literal-initialized declarations, printf
// format-string synthesis for the print() intrinsic, and parenthesization
// of nested binary expressions.
package transpiler

import (
	"strings"

	"tinyc/ast"
	"tinyc/diag"
	"tinyc/transpiler/codewriter"
)

// Transpiler walks a sibling list of top-level AST nodes and emits C into a
// codewriter.Writer-backed chunk chain, recording warnings for anything it
// cannot faithfully translate rather than aborting.
type Transpiler struct {
	w     *codewriter.Writer
	diags *diag.Bag
}

// New creates a Transpiler that reports problems into diags.
func New(diags *diag.Bag) *Transpiler {
	return &Transpiler{w: codewriter.New(), diags: diags}
}

// Transpile emits the boilerplate header followed by one translation per
// top-level node in source order, returning the output chunk chain.
func (t *Transpiler) Transpile(head *ast.Node) *codewriter.Output {
	t.w.Line("#include <stdint.h>")
	t.w.Line("#include <stdbool.h>")
	t.w.Line("#include <inttypes.h>")
	t.w.Line("#include <stdio.h>")
	t.w.Blank()

	for n := head; n != nil; n = n.Next {
		t.emitTopLevel(n)
	}
	return t.w.Output()
}

func (t *Transpiler) emitTopLevel(n *ast.Node) {
	switch n.Kind {
	case ast.Function:
		t.emitFunction(n)
	case ast.Error:
		t.w.Line("/* parse error: %s */", n.Message)
	case ast.Reserved:
		t.w.Line("/* reserved, not transpiled: %s */", n.Token.String())
	default:
		t.diags.Warn(n.Token.Line, n.Token.Col, "unsupported top-level node kind %s", n.Kind)
		t.w.Line("/* unsupported top-level node: %s */", n.Kind)
	}
	t.w.Blank()
}

func (t *Transpiler) emitFunction(n *ast.Node) {
	params := make([]string, 0, len(n.Params))
	for _, p := range n.Params {
		params = append(params, cType(p.Type)+" "+p.Name)
	}
	paramList := strings.Join(params, ", ")

	returnType := n.Type
	if returnType.Base == ast.BaseInfer {
		t.diags.Warn(n.Token.Line, n.Token.Col, "function %q has no declared return type, defaulting to void", n.Name)
		returnType = ast.Datatype{Base: ast.BaseVoid}
	}

	if n.Body == nil {
		t.w.Line("%s %s(%s);", cType(returnType), n.Name, paramList)
		return
	}

	t.w.OpenBrace("%s %s(%s)", cType(returnType), n.Name, paramList)
	for stmt := n.Body; stmt != nil; stmt = stmt.Next {
		t.emitStatement(stmt)
	}
	t.w.CloseBrace()
}

// emitStatement dispatches a stmt node to variable-decl or expression
// emission, appending the terminating ";\n". On failure it emits a
// placeholder comment and continues, per §4.4's statement contract.
func (t *Transpiler) emitStatement(n *ast.Node) {
	if n.Kind != ast.Stmt {
		t.w.Line("/* failed to transpile statement of type %d */", n.Kind)
		return
	}
	inner := n.Value
	if inner == nil {
		t.w.Line("/* failed to transpile statement of type %d */", n.Kind)
		return
	}

	switch inner.Kind {
	case ast.VariableDecl:
		line, ok := t.emitVariableDecl(inner)
		if !ok {
			t.w.Line("/* failed to transpile statement of type %d */", inner.Kind)
			return
		}
		t.w.Line("%s;", line)
	case ast.Error:
		t.w.Line("/* parse error: %s */", inner.Message)
	case ast.Reserved:
		t.w.Line("/* reserved, not transpiled: %s */", inner.Token.String())
	default:
		expr := t.emitExpr(inner)
		t.w.Line("%s;", expr)
	}
}

// emitVariableDecl resolves an `infer` type from a literal initializer and
// renders "<type> <name>[ = <expr>]". It returns ok=false (emitting a
// warning instead) when the type is infer but the initializer isn't a
// literal, per §4.4.
func (t *Transpiler) emitVariableDecl(n *ast.Node) (string, bool) {
	dt := n.Type
	if dt.Base == ast.BaseInfer {
		if n.Value == nil || n.Value.Kind != ast.Literal {
			t.diags.Warn(n.Token.Line, n.Token.Col, "cannot infer type of %q: initializer is not a literal", n.Name)
			return "", false
		}
		dt = n.Value.Type
	}

	out := cType(dt) + " " + n.Name
	if n.Value != nil {
		out += " = " + t.emitExpr(n.Value)
	}
	return out, true
}

// emitExpr dispatches an expression node to call/binop/literal/variable
// transpile, per §4.4's "Expression" rule.
func (t *Transpiler) emitExpr(n *ast.Node) string {
	if n == nil {
		return "/* missing expression */"
	}
	switch n.Kind {
	case ast.Call:
		return t.emitCall(n)
	case ast.Binop:
		return t.emitBinop(n)
	case ast.Literal:
		return t.emitLiteral(n)
	case ast.Variable:
		return n.Name
	case ast.Error:
		return "/* parse error: " + n.Message + " */"
	default:
		t.diags.Warn(n.Token.Line, n.Token.Col, "unsupported expression node kind %s", n.Kind)
		return "/* unsupported expression: " + n.Kind.String() + " */"
	}
}
