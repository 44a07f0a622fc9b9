package transpiler

import "tinyc/ast"

// emitBinop renders a binary operator node as "<left> <op> <right>". The
// parser represents a prefix operator (`-x` / `!x`) as a Binop with
// Left == nil (see parser.parsePrefix), so that shape is special-cased here
// and rendered as "<op><right>" rather than with a bogus empty left operand.
func (t *Transpiler) emitBinop(n *ast.Node) string {
	right := t.emitOperand(n.Right)
	if n.Left == nil {
		return n.Operator.String() + right
	}
	left := t.emitOperand(n.Left)
	return left + " " + n.Operator.String() + " " + right
}

// emitOperand renders a binop's child, parenthesizing it when the child is
// itself a binop, per §4.4's parenthesization rule. Leaf operands (literals,
// variables, calls) are never parenthesized.
func (t *Transpiler) emitOperand(n *ast.Node) string {
	s := t.emitExpr(n)
	if n.Kind == ast.Binop {
		return "(" + s + ")"
	}
	return s
}
