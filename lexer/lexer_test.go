package lexer

import (
	"testing"

	"tinyc/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New()
	l.Start(src)
	var toks []token.Token
	for {
		tok := l.Peek(0)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
		l.Consume(1)
	}
	return toks
}

func TestPositionMonotonicity(t *testing.T) {
	toks := scanAll(t, "let x = 1 +\n  2;\nfn foo() {}")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if cur.Line < prev.Line {
			t.Fatalf("line went backwards at token %d: %v -> %v", i, prev, cur)
		}
		if cur.Line == prev.Line && cur.Col < prev.Col {
			t.Fatalf("column went backwards on same line at token %d: %v -> %v", i, prev, cur)
		}
	}
}

func TestPeekConsumeConsistency(t *testing.T) {
	l := New()
	l.Start("let x = 42;")
	one := l.Peek(1)
	l.Consume(1)
	zero := l.Peek(0)
	if one != zero {
		t.Fatalf("peek(1) before consume(1) = %v, peek(0) after = %v", one, zero)
	}
}

func TestIdentifierViewIntoSource(t *testing.T) {
	src := "let myVariable = 1;"
	l := New()
	l.Start(src)
	l.Consume(1) // let
	ident := l.Peek(0)
	if ident.Kind != token.Identifier {
		t.Fatalf("expected identifier, got %v", ident)
	}
	if ident.Text != "myVariable" {
		t.Fatalf("expected myVariable, got %q", ident.Text)
	}
	if src[ident.Offset:ident.Offset+len(ident.Text)] != ident.Text {
		t.Fatalf("token view does not match source at its recorded offset")
	}
}

func TestNumberClassification(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.Uint64},
		{"-42", token.Int64},
		{"3.14", token.Float64},
		{"0xFF", token.Uint64},
		{"0b1010", token.Uint64},
		{"-9223372036854775808", token.Int64}, // boundary: |INT64_MIN|
	}
	for _, c := range cases {
		l := New()
		l.Start(c.src)
		tok := l.Peek(0)
		if tok.Kind != c.kind {
			t.Errorf("%q: expected kind %v, got %v (%v)", c.src, c.kind, tok.Kind, tok)
		}
	}
}

func TestNegativeOverflowIsInvalid(t *testing.T) {
	l := New()
	l.Start("-9223372036854775809")
	tok := l.Peek(0)
	if tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token for out-of-range negative literal, got %v", tok)
	}
}

func TestMinusAfterIdentifierIsOperator(t *testing.T) {
	toks := scanAll(t, "x-5")
	if toks[0].Kind != token.Identifier {
		t.Fatalf("expected identifier first, got %v", toks[0])
	}
	if toks[1].Kind != token.OperatorKind || toks[1].Operator != token.Sub {
		t.Fatalf("expected '-' to be a standalone operator after an identifier, got %v", toks[1])
	}
	if toks[2].Kind != token.Uint64 || toks[2].Uint64Value != 5 {
		t.Fatalf("expected 5 as a separate literal, got %v", toks[2])
	}
}

func TestUnclosedStringRecoversAfterOffendingToken(t *testing.T) {
	l := New()
	l.Start("\"unterminated\nlet x = 1;")
	bad := l.Peek(0)
	if bad.Kind != token.Invalid {
		t.Fatalf("expected invalid token for unterminated string, got %v", bad)
	}
	l.Consume(1)
	next := l.Peek(0)
	if next.Kind != token.KeywordKind || next.Keyword != token.Let {
		t.Fatalf("expected lexing to recover and continue with 'let', got %v", next)
	}
}

func TestOperatorLongestMatch(t *testing.T) {
	toks := scanAll(t, "<<= << <")
	want := []token.Operator{token.ShlAssign, token.Shl, token.Less}
	for i, op := range want {
		if toks[i].Kind != token.OperatorKind || toks[i].Operator != op {
			t.Fatalf("token %d: expected operator %v, got %v", i, op, toks[i])
		}
	}
}
