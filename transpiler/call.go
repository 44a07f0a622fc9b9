package transpiler

import (
	"strings"

	"tinyc/ast"
)

// priMacro names the <inttypes.h> macro for a literal base requiring a
// quote-interrupting conversion, and its second return reports whether base
// needs one at all (vs. a plain conversion that stays inside the string).
func priMacro(base ast.Base) (macro string, needsMacro bool) {
	switch base {
	case ast.BaseInt8, ast.BaseInt16, ast.BaseInt32:
		return "PRId32", true
	case ast.BaseInt64:
		return "PRId64", true
	case ast.BaseUint8, ast.BaseUint16, ast.BaseUint32:
		return "PRIu32", true
	case ast.BaseUint64:
		return "PRIu64", true
	default:
		return "", false
	}
}

func plainConversion(base ast.Base) (string, bool) {
	switch base {
	case ast.BaseFloat32, ast.BaseFloat64:
		return "%g", true
	case ast.BaseString:
		return "%s", true
	case ast.BaseChar:
		return "%c", true
	default:
		return "", false
	}
}

// buildPrintFormat synthesizes the printf format-string expression for the
// print() intrinsic per §4.4: per-argument conversions are joined by a
// space, and any conversion needing a PRI macro interrupts the C string
// literal with a close-quote, the bare macro token, and (if more text
// follows) a fresh open-quote, relying on C's adjacent string-literal
// concatenation to glue the pieces back together at compile time.
func buildPrintFormat(argBases []ast.Base) string {
	var out strings.Builder
	var cur strings.Builder

	flush := func() {
		out.WriteString(`"`)
		out.WriteString(cur.String())
		out.WriteString(`"`)
		cur.Reset()
	}

	for i, base := range argBases {
		if i > 0 {
			cur.WriteString(" ")
		}
		if macro, ok := priMacro(base); ok {
			cur.WriteString("%")
			flush()
			out.WriteString(" ")
			out.WriteString(macro)
			continue
		}
		if conv, ok := plainConversion(base); ok {
			cur.WriteString(conv)
			continue
		}
		cur.WriteString("/* todo: non-literal print argument */")
	}

	if cur.Len() > 0 || out.Len() == 0 {
		out.WriteString(" ")
		flush()
	}
	return strings.TrimPrefix(out.String(), " ")
}

// emitCall renders a call expression. The print() intrinsic synthesizes a
// printf format string from its arguments' literal types; every other
// callee is emitted as a plain C call with each argument transpiled as an
// expression.
func (t *Transpiler) emitCall(n *ast.Node) string {
	if n.Name == "print" {
		return t.emitPrintCall(n)
	}

	args := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		args = append(args, t.emitExpr(a))
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func (t *Transpiler) emitPrintCall(n *ast.Node) string {
	bases := make([]ast.Base, len(n.Args))
	rendered := make([]string, len(n.Args))
	for i, a := range n.Args {
		if a.Kind != ast.Literal {
			bases[i] = ast.BaseInvalid
			rendered[i] = "/* todo: non-literal print argument */"
			t.diags.Warn(a.Token.Line, a.Token.Col, "print() argument is not a literal, emitting placeholder")
			continue
		}
		bases[i] = a.Type.Base
		value := t.emitLiteral(a)
		if needsPrintfCast(a.Type.Base) {
			value = "(" + cType(a.Type) + ")" + value
		}
		rendered[i] = value
	}

	format := buildPrintFormat(bases)
	parts := append([]string{format}, rendered...)
	return "printf(" + strings.Join(parts, ", ") + ")"
}
