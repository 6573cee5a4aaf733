package expr

import "strings"

// '(', ')' and '!' may abut labels in source, every other boundary is whitespace.
// Padding them with a space lets the whole input be split on whitespace alone.
var groupPadder = strings.NewReplacer("(", "( ", ")", " )", "!", "! ")

// Tokenize splits a filter expression into tokens in source order.
// It never fails: anything that is not an operator or a group mark
// becomes a label, and well-formedness is left to Parse.
func Tokenize(input string) []Token {
	fields := strings.Fields(groupPadder.Replace(input))
	tokens := make([]Token, 0, len(fields))

	for _, word := range fields {
		switch word {
		case "!":
			tokens = append(tokens, OperatorToken(Not))
		case "&&":
			tokens = append(tokens, OperatorToken(And))
		case "||":
			tokens = append(tokens, OperatorToken(Or))
		case "(":
			tokens = append(tokens, OpenGroupToken())
		case ")":
			tokens = append(tokens, CloseGroupToken())
		default:
			tokens = append(tokens, LabelToken(word))
		}
	}

	return tokens
}
