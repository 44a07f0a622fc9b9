package ast

// Base is the closed set of datatype bases a Datatype can carry.
type Base uint8

const (
	BaseInvalid Base = iota
	BaseVoid
	BaseNull
	BaseVar
	BaseInfer // sentinel: resolved from the initializer at transpile time
	BaseInt8
	BaseInt16
	BaseInt32
	BaseInt64
	BaseUint8
	BaseUint16
	BaseUint32
	BaseUint64
	BaseFloat32
	BaseFloat64
	BaseBool
	BaseChar
	BaseString
	BaseArray
	BaseStruct
	BaseUnion
	BaseFunction
)

func (b Base) String() string {
	switch b {
	case BaseInvalid:
		return "invalid"
	case BaseVoid:
		return "void"
	case BaseNull:
		return "null"
	case BaseVar:
		return "var"
	case BaseInfer:
		return "infer"
	case BaseInt8:
		return "int8"
	case BaseInt16:
		return "int16"
	case BaseInt32:
		return "int32"
	case BaseInt64:
		return "int64"
	case BaseUint8:
		return "uint8"
	case BaseUint16:
		return "uint16"
	case BaseUint32:
		return "uint32"
	case BaseUint64:
		return "uint64"
	case BaseFloat32:
		return "float32"
	case BaseFloat64:
		return "float64"
	case BaseBool:
		return "bool"
	case BaseChar:
		return "char"
	case BaseString:
		return "string"
	case BaseArray:
		return "array"
	case BaseStruct:
		return "struct"
	case BaseUnion:
		return "union"
	case BaseFunction:
		return "function"
	default:
		return "?base"
	}
}

// Field names a single struct or union member.
type Field struct {
	Name string
	Type Datatype
}

// Param names a single function parameter.
type Param struct {
	Name string
	Type Datatype
}

// ArrayDescriptor extends a Datatype whose Base is BaseArray.
type ArrayDescriptor struct {
	Elem   *Datatype
	Length int // -1 when unspecified; array grammar is reserved, not implemented
}

// StructDescriptor extends a Datatype whose Base is BaseStruct.
type StructDescriptor struct {
	Fields []Field
}

// UnionDescriptor extends a Datatype whose Base is BaseUnion.
type UnionDescriptor struct {
	Variants []Field
}

// FunctionDescriptor extends a Datatype whose Base is BaseFunction.
type FunctionDescriptor struct {
	Params []Param
	Return *Datatype
}

// Datatype describes the type of a variable, parameter, or expression.
// Only one of Array, Struct, Union, Function is non-nil, and only when Base
// is the matching compound base; reading the wrong one is a programming
// error, same invariant as Node's payload-by-kind fields.
type Datatype struct {
	Base     Base
	Nullable bool
	IsPtr    bool
	IsConst  bool

	Array    *ArrayDescriptor
	Struct   *StructDescriptor
	Union    *UnionDescriptor
	Function *FunctionDescriptor
}

// primitiveNames maps the source spelling of a primitive type name to its
// Base, including the unsuffixed aliases ("int" -> int32, etc.) the parser
// resolves per §4.3.1.
var primitiveNames = map[string]Base{
	"int":     BaseInt32,
	"int8":    BaseInt8,
	"int16":   BaseInt16,
	"int32":   BaseInt32,
	"int64":   BaseInt64,
	"uint":    BaseUint32,
	"uint8":   BaseUint8,
	"uint16":  BaseUint16,
	"uint32":  BaseUint32,
	"uint64":  BaseUint64,
	"float":   BaseFloat32,
	"float32": BaseFloat32,
	"float64": BaseFloat64,
	"bool":    BaseBool,
	"char":    BaseChar,
	"string":  BaseString,
	"void":    BaseVoid,
}

// LookupPrimitiveBase resolves a source type name to its Base, reporting
// whether the name is a known primitive.
func LookupPrimitiveBase(name string) (Base, bool) {
	b, ok := primitiveNames[name]
	return b, ok
}
