package transpiler

import (
	"fmt"
	"strings"

	"tinyc/ast"
)

// emitLiteral renders a literal node's value per §4.4: printf-style numeric
// formatting is only relevant inside a print() format string (see call.go);
// here we emit the literal as a plain C expression token.
func (t *Transpiler) emitLiteral(n *ast.Node) string {
	switch n.Type.Base {
	case ast.BaseInt8, ast.BaseInt16, ast.BaseInt32, ast.BaseInt64:
		return fmt.Sprintf("%d", n.Int64Value)
	case ast.BaseUint8, ast.BaseUint16, ast.BaseUint32, ast.BaseUint64:
		return fmt.Sprintf("%d", n.Uint64Value)
	case ast.BaseFloat32, ast.BaseFloat64:
		return fmt.Sprintf("%g", n.Float64Value)
	case ast.BaseString:
		return `"` + escapeString(n.StringValue) + `"`
	case ast.BaseChar:
		return "'" + escapeChar(n.CharValue) + "'"
	default:
		t.diags.Warn(n.Token.Line, n.Token.Col, "unsupported literal type %s", n.Type.Base)
		return fmt.Sprintf("/* unsupported literal: %s */", n.Type.Base)
	}
}

// escapeString re-escapes a raw, backslash-undecoded string view per §4.4:
// it reads each backslash-prefixed byte and translates it to the C
// equivalent, emitting a visible `<?x>` marker for anything it doesn't
// recognise.
func escapeString(raw string) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(raw) {
			sb.WriteString("<?trailing backslash>")
			break
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteString(`\n`)
		case 't':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\'':
			sb.WriteString(`\'`)
		default:
			sb.WriteString(fmt.Sprintf("<?%c>", raw[i]))
		}
	}
	return sb.String()
}

// escapeChar renders a single byte for a C char literal: printable ASCII
// as-is (with the usual escapes), anything else as \xHH, per §4.4.
func escapeChar(c byte) string {
	switch c {
	case '\\':
		return `\\`
	case '\'':
		return `\'`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	if c >= 32 && c <= 126 {
		return string(c)
	}
	return fmt.Sprintf(`\x%02x`, c)
}
