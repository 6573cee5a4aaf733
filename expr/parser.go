package expr

// DefaultMaxDepth bounds parser recursion (group nesting plus operator chain length)
const DefaultMaxDepth = 1000

// TrailingPolicy decides what happens to tokens left after a complete expression
type TrailingPolicy int

const (
	// TrailingReject fails the parse with ErrTrailingTokens
	TrailingReject TrailingPolicy = iota
	// TrailingIgnore drops leftover tokens silently
	TrailingIgnore
)

type parseOptions struct {
	maxDepth int
	trailing TrailingPolicy
}

// Option configures Parse
type Option func(*parseOptions)

// WithMaxDepth sets the recursion bound; 0 disables the check
func WithMaxDepth(n int) Option {
	return func(o *parseOptions) {
		o.maxDepth = n
	}
}

// WithTrailingTokens sets the policy for tokens left after the top-level expression
func WithTrailingTokens(p TrailingPolicy) Option {
	return func(o *parseOptions) {
		o.trailing = p
	}
}

// ParseString tokenizes and parses a filter expression.
//
// Example expressions:
//   - tag:ui
//   - tag:ui && !tag:legacy
//   - tag:a && (tag:b || (tag:c && !draft))
//
// Binary operators are right-associative with equal precedence:
// "a && b || c" parses as "a && (b || c)".
func ParseString(input string, opts ...Option) (Expression, error) {
	return Parse(Tokenize(input), opts...)
}

// Parse builds an expression tree from a token sequence.
// On failure it returns a *ParseError wrapping one of the package's sentinel errors
// and never a partial tree.
func Parse(tokens []Token, opts ...Option) (Expression, error) {
	options := parseOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&options)
	}

	p := &parser{tokens: tokens, maxDepth: options.maxDepth}
	result, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if !p.atEnd() && options.trailing == TrailingReject {
		return nil, p.errorf(ErrTrailingTokens)
	}

	return result, nil
}

// parser is a lookahead-1 cursor over a token slice, scoped to a single Parse call
type parser struct {
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// errorf reports err at the current cursor position
func (p *parser) errorf(err error) *ParseError {
	return p.errorAt(p.pos, err)
}

func (p *parser) errorAt(pos int, err error) *ParseError {
	if pos >= len(p.tokens) {
		return &ParseError{Pos: len(p.tokens), AtEnd: true, Err: err}
	}
	return &ParseError{Pos: pos, Token: p.tokens[pos], Err: err}
}

// enter tracks recursion depth; callers must defer leave
func (p *parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return p.errorf(ErrMaxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// parseSingle parses a label, a '!' applied to one single term, or a parenthesized expression
func (p *parser) parseSingle() (Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	start := p.pos
	tok, ok := p.next()
	if !ok {
		return nil, p.errorAt(start, ErrUnexpectedToken)
	}

	switch {
	case tok.Type == TokenLabel:
		return &LabelExpr{Name: tok.Value}, nil

	case tok.Type == TokenOperator && tok.Op == Not:
		operand, err := p.parseSingle()
		if err != nil {
			return nil, err
		}
		return &InverseExpr{Operand: operand}, nil

	case tok.Type == TokenOpenGroup:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing, ok := p.peek(); !ok || closing.Type != TokenCloseGroup {
			return nil, p.errorf(ErrUnterminatedGroup)
		}
		p.pos++
		return inner, nil

	default:
		return nil, p.errorAt(start, ErrUnexpectedToken)
	}
}

// parseExpression parses a single term optionally followed by a binary operator
// and another full expression
func (p *parser) parseExpression() (Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	first, err := p.parseSingle()
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok || tok.Type == TokenCloseGroup {
		return first, nil
	}

	if !tok.isBinary() {
		perr := p.errorf(ErrInvalidBinaryOperator)
		// a term where an operator belongs, as in "a b" or "a (b)"
		if tok.Type == TokenLabel || tok.Type == TokenOpenGroup {
			perr.Hint = "missing operator"
		}
		return nil, perr
	}
	p.pos++

	rest, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &OperationExpr{Left: first, Op: tok.Op, Right: rest}, nil
}
