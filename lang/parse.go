package lang

import "log/slog"

// Binary operator precedence levels, lowest binding first. Assignment,
// power, and unary operators are handled outside this ladder because of
// their associativity.
var precedenceLevels = [][]string{
	{"|"},
	{"^"},
	{"&"},
	{"==", "!="},
	{"<", ">", "<=", ">="},
	{"<<", ">>"},
	{"+", "-"},
	{"*", "/", "%"},
}

// Parse consumes the token stream and produces an expression tree honoring
// the language's precedence and associativity rules. Any malformed input
// (unexpected token, unmatched parenthesis, trailing tokens) rejects the
// whole line with [ErrSyntax]; there is no partial-tree recovery.
func Parse(tokens []Token) (Expr, error) {
	p := &parser{tokens: tokens}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != KindEOF {
		return nil, p.fail("end of input")
	}

	return expr, nil
}

// ParseString tokenizes and parses one input line.
func ParseString(input string) (Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		// Tokenize always appends EOF; guard for hand-built slices.
		return Token{Kind: KindEOF}
	}

	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	t := p.peek()
	if t.Kind != KindEOF {
		p.pos++
	}

	return t
}

// matchOperator consumes and returns the next token when it is one of the
// given operator lexemes.
func (p *parser) matchOperator(lexemes ...string) (Token, bool) {
	t := p.peek()
	if t.Kind != KindOperator {
		return Token{}, false
	}

	for _, lx := range lexemes {
		if t.Lexeme == lx {
			return p.advance(), true
		}
	}

	return Token{}, false
}

// expect consumes the next token when it matches kind and lexeme, or fails
// with a syntax error naming what was expected.
func (p *parser) expect(kind Kind, lexeme string) (Token, error) {
	t := p.peek()
	if t.Kind != kind || t.Lexeme != lexeme {
		return Token{}, p.fail("'" + lexeme + "'")
	}

	return p.advance(), nil
}

// fail builds a syntax error at the current token.
func (p *parser) fail(expected string) error {
	t := p.peek()

	return ErrSyntax.At(t.Pos).With(
		slog.String("expected", expected),
		slog.String("found", t.Describe()),
	)
}

// parseExpr parses the lowest-precedence level: assignment, right
// associative, with an optional let prefix.
func (p *parser) parseExpr() (Expr, error) {
	if t := p.peek(); t.Kind == KindKeyword && t.Lexeme == "let" {
		p.advance()

		name := p.peek()
		if name.Kind != KindIdent {
			return nil, p.fail("identifier")
		}

		p.advance()

		if _, err := p.expect(KindOperator, "="); err != nil {
			return nil, err
		}

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return &Assign{Name: name.Lexeme, Value: value, Offset: name.Pos}, nil
	}

	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}

	if _, ok := p.matchOperator("="); ok {
		ident, isIdent := left.(*Ident)
		if !isIdent {
			return nil, ErrSyntax.At(left.Pos()).With(
				slog.String("expected", "identifier on left side of '='"),
				slog.String("found", "'"+left.String()+"'"),
			)
		}

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return &Assign{Name: ident.Name, Value: value, Offset: ident.Offset}, nil
	}

	return left, nil
}

// parseBinary parses the left-associative operator ladder starting at the
// given precedence level.
func (p *parser) parseBinary(level int) (Expr, error) {
	if level >= len(precedenceLevels) {
		return p.parsePower()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.matchOperator(precedenceLevels[level]...)
		if !ok {
			return left, nil
		}

		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}

		left = &Binary{Op: op, Left: left, Right: right}
	}
}

// parsePower parses the ** operator, right associative, binding looser than
// unary: -2 ** 2 is (-2) ** 2.
func (p *parser) parsePower() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	op, ok := p.matchOperator("**")
	if !ok {
		return left, nil
	}

	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	return &Binary{Op: op, Left: left, Right: right}, nil
}

func (p *parser) parseUnary() (Expr, error) {
	op, ok := p.matchOperator("-", "~")
	if !ok {
		return p.parseCall()
	}

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &Unary{Op: op, Operand: operand}, nil
}

// parseCall parses a primary expression followed by any number of call
// suffixes, so curried results like f(1)(2) invoke left to right.
func (p *parser) parseCall() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		if t.Kind != KindPunct || t.Lexeme != "(" {
			return expr, nil
		}

		open := p.advance()

		args, err := p.parseArgs(")")
		if err != nil {
			return nil, err
		}

		expr = &Call{Callee: expr, Args: args, Offset: open.Pos}
	}
}

// parseArgs parses a comma-separated expression list up to the closing
// punctuation (")" or "]"), which it consumes.
func (p *parser) parseArgs(closing string) ([]Expr, error) {
	var args []Expr

	if t := p.peek(); t.Kind == KindPunct && t.Lexeme == closing {
		p.advance()

		return args, nil
	}

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		t := p.peek()

		switch {
		case t.Kind == KindPunct && t.Lexeme == ",":
			p.advance()

		case t.Kind == KindPunct && t.Lexeme == closing:
			p.advance()

			return args, nil

		default:
			return nil, p.fail("',' or '" + closing + "'")
		}
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.peek()

	switch {
	case t.Kind == KindNumber:
		p.advance()

		val := IntValueRadix(t.Int, t.Radix)
		if t.IsFloat {
			val = FloatValue(t.Float)
		}

		return &Literal{Val: val, Lexeme: t.Lexeme, Offset: t.Pos}, nil

	case t.Kind == KindKeyword && (t.Lexeme == "true" || t.Lexeme == "false"):
		p.advance()

		return &Literal{
			Val:    BoolValue(t.Lexeme == "true"),
			Lexeme: t.Lexeme,
			Offset: t.Pos,
		}, nil

	case t.Kind == KindIdent:
		p.advance()

		return &Ident{Name: t.Lexeme, Offset: t.Pos}, nil

	case t.Kind == KindPunct && t.Lexeme == "(":
		p.advance()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(KindPunct, ")"); err != nil {
			return nil, err
		}

		return &Group{Inner: inner, Offset: t.Pos}, nil

	case t.Kind == KindPunct && t.Lexeme == "[":
		p.advance()

		elems, err := p.parseArgs("]")
		if err != nil {
			return nil, err
		}

		return &List{Elems: elems, Offset: t.Pos}, nil

	case t.Kind == KindOperator && t.Lexeme == "|":
		return p.parseLambda()

	default:
		return nil, p.fail("expression")
	}
}

// parseLambda parses a function literal: |a, b| expr. The body is a single
// expression extending as far right as precedence allows.
func (p *parser) parseLambda() (Expr, error) {
	open := p.advance() // opening '|'

	var params []string

	for {
		t := p.peek()

		if t.Kind == KindOperator && t.Lexeme == "|" {
			p.advance()

			break
		}

		if t.Kind != KindIdent {
			return nil, p.fail("parameter name or '|'")
		}

		p.advance()
		params = append(params, t.Lexeme)

		t = p.peek()

		switch {
		case t.Kind == KindPunct && t.Lexeme == ",":
			p.advance()

		case t.Kind == KindOperator && t.Lexeme == "|":
			p.advance()

			return p.lambdaBody(params, open.Pos)

		default:
			return nil, p.fail("',' or '|'")
		}
	}

	return p.lambdaBody(params, open.Pos)
}

func (p *parser) lambdaBody(params []string, offset int) (Expr, error) {
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Lambda{Params: params, Body: body, Offset: offset}, nil
}
