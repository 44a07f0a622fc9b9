// Package token defines the closed set of lexical token kinds, keywords,
// and operators produced by the lexer and consumed by the parser.
package token

import "fmt"

// Kind is the closed set of token categories described in §3 of the
// specification this lexer implements.
type Kind uint8

const (
	Dummy Kind = iota
	EOF
	Invalid
	KeywordKind
	Identifier
	OperatorKind
	Int64
	Uint64
	Float64
	Char
	String
)

func (k Kind) String() string {
	switch k {
	case Dummy:
		return "dummy"
	case EOF:
		return "eof"
	case Invalid:
		return "invalid"
	case KeywordKind:
		return "keyword"
	case Identifier:
		return "identifier"
	case OperatorKind:
		return "operator"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float64:
		return "float64"
	case Char:
		return "char"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Keyword is the closed set of reserved words in the source language.
type Keyword uint8

const (
	Let Keyword = iota
	Const
	Type
	Struct
	Union
	Void
	Fn
	Return
)

// Keywords maps the exact spelling of a reserved word to its Keyword value.
// The lexer only consults this table after matching a full identifier, so a
// keyword prefix of a longer identifier (e.g. "lettuce") is never misread.
var Keywords = map[string]Keyword{
	"let":    Let,
	"const":  Const,
	"type":   Type,
	"struct": Struct,
	"union":  Union,
	"void":   Void,
	"fn":     Fn,
	"return": Return,
}

func (k Keyword) String() string {
	for text, kw := range Keywords {
		if kw == k {
			return text
		}
	}
	return "?keyword"
}

// Operator is the closed set of operator and punctuation tokens. Values are
// ordered so that Operators (below) lists them in the strict longest-match
// priority required by §6: any operator that is a prefix of another must
// sort after it so the lexer tries the longer spelling first.
type Operator uint8

const (
	ShlAssign Operator = iota
	ShrAssign
	AddAssign
	SubAssign
	DivAssign
	MulAssign
	ModAssign
	Inc
	Dec
	Eq
	NotEq
	AndAssign
	OrAssign
	XorAssign
	LogAnd
	LogOr
	Shl
	Shr
	Semicolon
	Comma
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Add
	Sub
	Mul
	Div
	Mod
	Assign
	Not
	Less
	Greater
	And
	Or
	Xor
	Tilde
	Question
	Dot
)

// operatorSpelling pairs every Operator with its source spelling, in the
// exact longest-match-first order mandated by §6.
var operatorSpelling = []struct {
	op   Operator
	text string
}{
	{ShlAssign, "<<="},
	{ShrAssign, ">>="},
	{AddAssign, "+="},
	{SubAssign, "-="},
	{DivAssign, "/="},
	{MulAssign, "*="},
	{ModAssign, "%="},
	{Inc, "++"},
	{Dec, "--"},
	{Eq, "=="},
	{NotEq, "!="},
	{AndAssign, "&="},
	{OrAssign, "|="},
	{XorAssign, "^="},
	{LogAnd, "&&"},
	{LogOr, "||"},
	{Shl, "<<"},
	{Shr, ">>"},
	{Semicolon, ";"},
	{Comma, ","},
	{LParen, "("},
	{RParen, ")"},
	{LBrace, "{"},
	{RBrace, "}"},
	{LBracket, "["},
	{RBracket, "]"},
	{Add, "+"},
	{Sub, "-"},
	{Mul, "*"},
	{Div, "/"},
	{Mod, "%"},
	{Assign, "="},
	{Not, "!"},
	{Less, "<"},
	{Greater, ">"},
	{And, "&"},
	{Or, "|"},
	{Xor, "^"},
	{Tilde, "~"},
	{Question, "?"},
	{Dot, "."},
}

// Operators returns the longest-match priority list of (Operator, spelling)
// pairs; the lexer walks it in order and takes the first spelling that
// matches at the current position.
func Operators() []struct {
	Op   Operator
	Text string
} {
	out := make([]struct {
		Op   Operator
		Text string
	}, len(operatorSpelling))
	for i, e := range operatorSpelling {
		out[i] = struct {
			Op   Operator
			Text string
		}{e.op, e.text}
	}
	return out
}

func (o Operator) String() string {
	for _, e := range operatorSpelling {
		if e.op == o {
			return e.text
		}
	}
	return "?operator"
}

// Token is the unit produced by the lexer and consumed by the parser.
//
// Kind determines which of the payload fields below is meaningful; reading
// any other field for a given Kind is a programming error (§3's "an
// invalid token carries a human-readable static-string message; all other
// kinds carry a valid payload for that kind"):
//
//	KeywordKind  -> Keyword
//	OperatorKind -> Operator
//	Identifier   -> Text (a view into the original source, not a copy)
//	String       -> Text (raw view, backslash escapes undecoded)
//	Int64        -> Int64Value
//	Uint64       -> Uint64Value
//	Float64      -> Float64Value
//	Char         -> CharValue
//	Invalid      -> Text (the static error message)
type Token struct {
	Kind   Kind
	Line   int32
	Col    int32
	Offset int // byte offset of the token's first byte in the source buffer

	Keyword  Keyword
	Operator Operator
	Text     string
	Int64Value   int64
	Uint64Value  uint64
	Float64Value float64
	CharValue    byte
}

// String renders a Token for diagnostics and test failure messages.
func (t Token) String() string {
	switch t.Kind {
	case KeywordKind:
		return fmt.Sprintf("Token{keyword %s}", t.Keyword)
	case OperatorKind:
		return fmt.Sprintf("Token{operator %s}", t.Operator)
	case Identifier:
		return fmt.Sprintf("Token{identifier %q}", t.Text)
	case String:
		return fmt.Sprintf("Token{string %q}", t.Text)
	case Int64:
		return fmt.Sprintf("Token{int64 %d}", t.Int64Value)
	case Uint64:
		return fmt.Sprintf("Token{uint64 %d}", t.Uint64Value)
	case Float64:
		return fmt.Sprintf("Token{float64 %g}", t.Float64Value)
	case Char:
		return fmt.Sprintf("Token{char %q}", t.CharValue)
	case Invalid:
		return fmt.Sprintf("Token{invalid %q}", t.Text)
	case Dummy:
		return "Token{dummy}"
	case EOF:
		return "Token{eof}"
	default:
		return "Token{?}"
	}
}
