package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/boolean-maybe/tagq/expr"
)

// ErrInvalidTrailingPolicy is returned for a parser.trailing value other than reject or ignore
var ErrInvalidTrailingPolicy = errors.New("invalid trailing token policy")

// ParseOptions converts the parser section into options for expr.Parse
func (c *Config) ParseOptions() ([]expr.Option, error) {
	var policy expr.TrailingPolicy
	switch strings.ToLower(strings.TrimSpace(c.Parser.Trailing)) {
	case "", "reject":
		policy = expr.TrailingReject
	case "ignore":
		policy = expr.TrailingIgnore
	default:
		return nil, fmt.Errorf("%w: %q (want reject or ignore)", ErrInvalidTrailingPolicy, c.Parser.Trailing)
	}

	if c.Parser.MaxDepth < 0 {
		return nil, fmt.Errorf("parser.maxDepth must not be negative, got %d", c.Parser.MaxDepth)
	}

	return []expr.Option{
		expr.WithMaxDepth(c.Parser.MaxDepth),
		expr.WithTrailingTokens(policy),
	}, nil
}
