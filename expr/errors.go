package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedToken indicates a term was required but something else was found
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnterminatedGroup indicates a '(' without its matching ')'
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrInvalidBinaryOperator indicates a binary operator was required but something else was found
	ErrInvalidBinaryOperator = errors.New("expected '&&' or '||'")

	// ErrTrailingTokens indicates tokens were left after a complete expression
	ErrTrailingTokens = errors.New("trailing tokens after expression")

	// ErrMaxDepth indicates the expression nests or chains deeper than allowed
	ErrMaxDepth = errors.New("expression exceeds maximum depth")
)

// ParseError describes where a parse failed.
// Pos is the index of the offending token; AtEnd is set when input ran out.
// Hint, when set, is appended to the message in parentheses.
type ParseError struct {
	Pos   int
	Token Token
	AtEnd bool
	Err   error
	Hint  string
}

func (e *ParseError) Error() string {
	var msg string
	if e.AtEnd {
		msg = fmt.Sprintf("parse error at end of input: %v", e.Err)
	} else {
		msg = fmt.Sprintf("parse error at token %d (%q): %v", e.Pos, e.Token.String(), e.Err)
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
