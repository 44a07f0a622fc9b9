// Package ast defines the tagged-variant node tree produced by the parser
// and consumed by the transpiler and the debug printer. Nodes are arena
// allocated (see package arena) and never individually freed; references
// between nodes are non-owning and acyclic.
package ast

import "tinyc/token"

// Kind is the closed set of AST node variants.
type Kind uint8

const (
	Invalid Kind = iota
	Error
	DatatypeNode // part of the closed set per spec; this parser embeds Datatype inline on the owning node instead of allocating a standalone node, so it is never produced
	Variable
	VariableDecl
	Function
	Struct // part of the closed set per spec; the parser emits Reserved stubs for struct/union bodies instead (see parser.parseReservedRecord), so this is never produced
	Union  // see Struct above
	Literal
	Call
	Binop
	Stmt
	Reserved // lexed and dispatched but intentionally inert: struct/union bodies, return, globals
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Error:
		return "error"
	case DatatypeNode:
		return "datatype"
	case Variable:
		return "variable"
	case VariableDecl:
		return "variable_decl"
	case Function:
		return "function"
	case Struct:
		return "struct"
	case Union:
		return "union"
	case Literal:
		return "literal"
	case Call:
		return "call"
	case Binop:
		return "binop"
	case Stmt:
		return "stmt"
	case Reserved:
		return "reserved"
	default:
		return "?kind"
	}
}

// Node is the single tagged-variant type backing every AST construct. Kind
// determines which fields below are meaningful:
//
//	Error         -> Message, Token
//	Variable      -> Name, Token
//	VariableDecl  -> Name, Type, Value (optional initializer), IsConst
//	Function      -> Name, Type (return type), Params, Body (head of sibling list)
//	Literal       -> Type.Base + the matching *Value field
//	Call          -> Name (callee), Args
//	Binop         -> Operator, Left, Right (Left is nil for a unary prefix operator)
//	Stmt          -> Value (the wrapped variable_decl or expression node)
//	Reserved      -> Token (the keyword that introduced the form), optionally Name
//	                 and Value; struct/union/return/global grammar is accepted and
//	                 produces this stub instead of the dedicated Struct/Union kinds
//
// Next chains sibling nodes: function-body statements and top-level
// declarations form singly-linked lists through it. A node that is the
// child of exactly one parent never participates in more than one list.
type Node struct {
	Kind Kind
	Next *Node

	Name  string
	Type  Datatype
	Token token.Token

	Value *Node // variable_decl initializer, or a Stmt's wrapped node
	Body  *Node // function body: head of a Stmt sibling list

	Params []Param
	Args   []*Node

	Operator token.Operator
	Left     *Node
	Right    *Node

	IsConst bool
	Message string

	Int64Value   int64
	Uint64Value  uint64
	Float64Value float64
	StringValue  string
	CharValue    byte
	BoolValue    bool
}
