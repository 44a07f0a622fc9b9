package transpiler

import "tinyc/ast"

// cType maps a source Datatype to its C spelling per §4.4's table, applying
// the const/pointer modifiers around the base spelling.
func cType(dt ast.Datatype) string {
	var base string
	switch dt.Base {
	case ast.BaseInt8:
		base = "int8_t"
	case ast.BaseInt16:
		base = "int16_t"
	case ast.BaseInt32:
		base = "int32_t"
	case ast.BaseInt64:
		base = "int64_t"
	case ast.BaseUint8:
		base = "uint8_t"
	case ast.BaseUint16:
		base = "uint16_t"
	case ast.BaseUint32:
		base = "uint32_t"
	case ast.BaseUint64:
		base = "uint64_t"
	case ast.BaseFloat32:
		base = "float"
	case ast.BaseFloat64:
		base = "double"
	case ast.BaseBool:
		base = "bool"
	case ast.BaseChar:
		base = "char"
	case ast.BaseString:
		base = "char*"
	case ast.BaseVoid:
		base = "void"
	default:
		base = "/* unsupported datatype */ void"
	}

	out := base
	if dt.IsConst {
		out = "const " + out
	}
	if dt.IsPtr {
		out = out + " *"
	}
	return out
}

// needsPrintfCast reports whether a literal of this base must be explicitly
// cast before being passed to printf for format correctness (string and
// char literals need no cast; everything else does per §4.4).
func needsPrintfCast(base ast.Base) bool {
	switch base {
	case ast.BaseString, ast.BaseChar:
		return false
	default:
		return true
	}
}
