package format

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/boolean-maybe/tagq/expr"
)

// Format names an output representation of a parsed expression
type Format string

const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatExpr Format = "expr"
)

// ErrUnknownFormat is returned for a format name that has no writer
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name (case-insensitive)
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatTree, FormatJSON, FormatYAML, FormatExpr:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write renders e to w in the requested format, followed by a newline
// for the single-line formats
func Write(w io.Writer, e expr.Expression, f Format) error {
	switch f {
	case FormatTree:
		return Tree(w, e)
	case FormatJSON:
		data, err := MarshalJSON(e)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		data, err := MarshalYAML(e)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatExpr:
		_, err := fmt.Fprintln(w, e.String())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Tokens prints one token per line as "Type value"
func Tokens(w io.Writer, tokens []expr.Token) error {
	for _, tok := range tokens {
		var err error
		switch tok.Type {
		case expr.TokenLabel:
			_, err = fmt.Fprintf(w, "%s %q\n", tok.Type, tok.Value)
		case expr.TokenOperator:
			_, err = fmt.Fprintf(w, "%s %s\n", tok.Type, tok.Op)
		default:
			_, err = fmt.Fprintln(w, tok.Type)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
