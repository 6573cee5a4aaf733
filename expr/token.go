package expr

import "fmt"

// Operator is a boolean operator appearing in a filter expression
type Operator int

const (
	And Operator = iota
	Or
	Not
)

// String returns the operator as it is written in source
func (o Operator) String() string {
	switch o {
	case And:
		return "&&"
	case Or:
		return "||"
	case Not:
		return "!"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// TokenType identifies the kind of a lexical token
type TokenType int

const (
	TokenLabel TokenType = iota
	TokenOperator
	TokenOpenGroup
	TokenCloseGroup
)

func (t TokenType) String() string {
	switch t {
	case TokenLabel:
		return "Label"
	case TokenOperator:
		return "Operator"
	case TokenOpenGroup:
		return "OpenGroup"
	case TokenCloseGroup:
		return "CloseGroup"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a single lexical unit of a filter expression.
// Op is only meaningful for TokenOperator, Value only for TokenLabel.
type Token struct {
	Type  TokenType
	Op    Operator
	Value string
}

// LabelToken returns a label token carrying text verbatim
func LabelToken(text string) Token {
	return Token{Type: TokenLabel, Value: text}
}

// OperatorToken returns an operator token
func OperatorToken(op Operator) Token {
	return Token{Type: TokenOperator, Op: op}
}

// OpenGroupToken returns a '(' token
func OpenGroupToken() Token {
	return Token{Type: TokenOpenGroup}
}

// CloseGroupToken returns a ')' token
func CloseGroupToken() Token {
	return Token{Type: TokenCloseGroup}
}

// String renders the token the way it appears in source
func (t Token) String() string {
	switch t.Type {
	case TokenLabel:
		return t.Value
	case TokenOperator:
		return t.Op.String()
	case TokenOpenGroup:
		return "("
	case TokenCloseGroup:
		return ")"
	default:
		return t.Type.String()
	}
}

// isBinary reports whether the token is an operator usable between two terms
func (t Token) isBinary() bool {
	return t.Type == TokenOperator && (t.Op == And || t.Op == Or)
}
