package parser

import (
	"fmt"

	"tinyc/token"
)

// SyntaxError is what every parser helper returns on failure: a message
// paired with the token that triggered it, per §4.3.4's "each parser
// helper returns {message, last_token}". The top-level parse loop turns an
// unrecovered SyntaxError into an ast.Error node.
type SyntaxError struct {
	Message string
	Token   token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("💥 syntax error, line:%d col:%d - %s", e.Token.Line, e.Token.Col, e.Message)
}

func newSyntaxError(tok token.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Token: tok}
}
