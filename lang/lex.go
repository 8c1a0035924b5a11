package lang

import (
	"log/slog"
	"strconv"
)

// operator lexemes that are two characters long, checked before their
// one-character prefixes.
var twoCharOperators = map[string]struct{}{
	"**": {},
	"<<": {},
	">>": {},
	"==": {},
	"!=": {},
	"<=": {},
	">=": {},
}

// keywords reserved by the language.
var keywords = map[string]struct{}{
	"let":   {},
	"true":  {},
	"false": {},
}

// Tokenize splits one input line into tokens. The returned slice always ends
// with a KindEOF token. It fails with [ErrLex] on an unrecognized character
// or a malformed numeric literal, annotated with the byte offset.
func Tokenize(input string) ([]Token, error) {
	lx := &lexer{input: input}

	for !lx.atEnd() {
		c := lx.input[lx.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.pos++

		case c >= '0' && c <= '9':
			if err := lx.number(); err != nil {
				return nil, err
			}

		case isIdentStart(c):
			lx.identifier()

		default:
			if err := lx.operator(); err != nil {
				return nil, err
			}
		}
	}

	lx.emit(Token{Kind: KindEOF, Pos: len(input)})

	return lx.tokens, nil
}

type lexer struct {
	input  string
	pos    int
	tokens []Token
}

func (lx *lexer) atEnd() bool { return lx.pos >= len(lx.input) }

func (lx *lexer) emit(t Token) { lx.tokens = append(lx.tokens, t) }

// number scans a numeric literal: decimal integer, decimal fraction, 0x hex,
// or 0b binary. The radix is retained on the token.
func (lx *lexer) number() error {
	start := lx.pos

	if lx.input[lx.pos] == '0' && lx.pos+1 < len(lx.input) {
		switch lx.input[lx.pos+1] {
		case 'x', 'X':
			return lx.prefixed(start, RadixHex, isHexDigit)
		case 'b', 'B':
			return lx.prefixed(start, RadixBinary, isBinDigit)
		}
	}

	for !lx.atEnd() && isDecDigit(lx.input[lx.pos]) {
		lx.pos++
	}

	isFloat := false

	if !lx.atEnd() && lx.input[lx.pos] == '.' {
		isFloat = true
		lx.pos++

		frac := lx.pos
		for !lx.atEnd() && isDecDigit(lx.input[lx.pos]) {
			lx.pos++
		}

		if lx.pos == frac {
			return ErrLex.At(start).
				With(slog.String("reason", "missing digits after decimal point"))
		}
	}

	lexeme := lx.input[start:lx.pos]

	tok := Token{
		Kind:    KindNumber,
		Lexeme:  lexeme,
		Pos:     start,
		Radix:   RadixDecimal,
		IsFloat: isFloat,
	}

	if isFloat {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return ErrLex.Wrap(err).At(start)
		}

		tok.Float = f
	} else {
		i, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return ErrLex.Wrap(err).At(start).
				With(slog.String("reason", "integer literal out of range"))
		}

		tok.Int = i
	}

	lx.emit(tok)

	return nil
}

// prefixed scans a radix-prefixed integer literal (0x... or 0b...).
// The prefix must be followed by at least one digit of the radix.
func (lx *lexer) prefixed(start int, radix Radix, digit func(byte) bool) error {
	lx.pos += 2 // consume "0x" / "0b"

	first := lx.pos
	for !lx.atEnd() && digit(lx.input[lx.pos]) {
		lx.pos++
	}

	if lx.pos == first {
		return ErrLex.At(start).
			With(slog.String("reason", "missing digits after "+radix.Prefix()+" prefix"))
	}

	lexeme := lx.input[start:lx.pos]

	i, err := strconv.ParseInt(lx.input[first:lx.pos], int(radix), 64)
	if err != nil {
		return ErrLex.Wrap(err).At(start).
			With(slog.String("reason", "integer literal out of range"))
	}

	lx.emit(Token{
		Kind:   KindNumber,
		Lexeme: lexeme,
		Pos:    start,
		Int:    i,
		Radix:  radix,
	})

	return nil
}

func (lx *lexer) identifier() {
	start := lx.pos
	for !lx.atEnd() && isIdentPart(lx.input[lx.pos]) {
		lx.pos++
	}

	lexeme := lx.input[start:lx.pos]

	kind := KindIdent
	if _, ok := keywords[lexeme]; ok {
		kind = KindKeyword
	}

	lx.emit(Token{Kind: kind, Lexeme: lexeme, Pos: start})
}

func (lx *lexer) operator() error {
	start := lx.pos

	if lx.pos+2 <= len(lx.input) {
		two := lx.input[lx.pos : lx.pos+2]
		if _, ok := twoCharOperators[two]; ok {
			lx.pos += 2
			lx.emit(Token{Kind: KindOperator, Lexeme: two, Pos: start})

			return nil
		}
	}

	c := lx.input[lx.pos]

	switch c {
	case '+', '-', '*', '/', '%', '&', '|', '^', '~', '=', '<', '>':
		lx.pos++
		lx.emit(Token{Kind: KindOperator, Lexeme: string(c), Pos: start})

		return nil

	case '(', ')', '[', ']', ',':
		lx.pos++
		lx.emit(Token{Kind: KindPunct, Lexeme: string(c), Pos: start})

		return nil
	}

	return ErrLex.At(start).
		With(slog.String("reason", "unrecognized character "+strconv.QuoteRune(rune(c))))
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

func isBinDigit(c byte) bool { return c == '0' || c == '1' }

func isIdentStart(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDecDigit(c) }
