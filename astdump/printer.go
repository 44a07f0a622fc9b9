// Package astdump renders the parsed AST as indented JSON for debugging,
// directly grounded on the teacher's parser.astPrinter but generalized to
// walk this spec's single tagged-variant ast.Node instead of a pair of
// Expression/Stmt visitor interfaces.
package astdump

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tinyc/ast"
)

const (
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// toJSON converts a single node into a JSON-friendly map/slice tree.
func toJSON(n *ast.Node) any {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case ast.Error:
		return map[string]any{
			"type":    "Error",
			"message": n.Message,
			"token":   n.Token.String(),
		}
	case ast.Reserved:
		return map[string]any{
			"type":  "Reserved",
			"token": n.Token.String(),
			"name":  n.Name,
		}
	case ast.Variable:
		return map[string]any{
			"type": "Variable",
			"name": n.Name,
		}
	case ast.VariableDecl:
		return map[string]any{
			"type":        "VariableDecl",
			"name":        n.Name,
			"const":       n.IsConst,
			"datatype":    n.Type.Base.String(),
			"initializer": toJSON(n.Value),
		}
	case ast.Function:
		return map[string]any{
			"type":       "Function",
			"name":       n.Name,
			"returnType": n.Type.Base.String(),
			"params":     paramsJSON(n.Params),
			"body":       siblingsJSON(n.Body),
		}
	case ast.Literal:
		return map[string]any{
			"type":     "Literal",
			"datatype": n.Type.Base.String(),
			"value":    literalValue(n),
		}
	case ast.Call:
		args := make([]any, 0, len(n.Args))
		for _, a := range n.Args {
			args = append(args, toJSON(a))
		}
		return map[string]any{
			"type": "Call",
			"name": n.Name,
			"args": args,
		}
	case ast.Binop:
		out := map[string]any{
			"type":     "Binop",
			"operator": n.Operator.String(),
			"right":    toJSON(n.Right),
		}
		if n.Left != nil {
			out["left"] = toJSON(n.Left)
		}
		return out
	case ast.Stmt:
		return map[string]any{
			"type":  "Stmt",
			"value": toJSON(n.Value),
		}
	default:
		return map[string]any{"type": "Invalid"}
	}
}

func literalValue(n *ast.Node) any {
	switch n.Type.Base {
	case ast.BaseInt32, ast.BaseInt64:
		return n.Int64Value
	case ast.BaseUint32, ast.BaseUint64:
		return n.Uint64Value
	case ast.BaseFloat32, ast.BaseFloat64:
		return n.Float64Value
	case ast.BaseString:
		return n.StringValue
	case ast.BaseChar:
		return string(n.CharValue)
	case ast.BaseBool:
		return n.BoolValue
	default:
		return nil
	}
}

func paramsJSON(params []ast.Param) []any {
	out := make([]any, 0, len(params))
	for _, p := range params {
		out = append(out, map[string]any{"name": p.Name, "datatype": p.Type.Base.String()})
	}
	return out
}

func siblingsJSON(head *ast.Node) []any {
	out := []any{}
	for n := head; n != nil; n = n.Next {
		out = append(out, toJSON(n))
	}
	return out
}

// renderJSON marshals the sibling list starting at head as indented JSON.
func renderJSON(head *ast.Node) (string, error) {
	bytes, err := json.MarshalIndent(siblingsJSON(head), "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// PrintJSON renders the sibling list starting at head as prettified JSON to
// standard output, colorized the way the teacher's PrintASTJSON is.
func PrintJSON(head *ast.Node) (string, error) {
	jsonStr, err := renderJSON(head)
	if err != nil {
		return "", err
	}
	fmt.Println(colorYellow + "----- AST JSON -----")
	fmt.Println(colorYellow + jsonStr)
	fmt.Println(colorYellow + "-----" + colorReset)
	return jsonStr, nil
}

// WriteJSONToFile writes the AST JSON for the sibling list starting at head
// to the given file path, without also printing it to standard output.
func WriteJSONToFile(head *ast.Node, path string) error {
	s, err := renderJSON(head)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating AST file: %w", err)
	}
	defer f.Close()
	_, err = io.WriteString(f, s)
	return err
}
