package lang

//go:generate go tool stringer --linecomment --type Kind --output token_string.go

// Kind classifies a lexical token.
type Kind int

const (
	// KindNumber is a numeric literal in decimal, hex, or binary notation.
	KindNumber Kind = iota // Number

	// KindIdent is an identifier: [A-Za-z_][A-Za-z0-9_]*.
	KindIdent // Ident

	// KindOperator is an arithmetic, bitwise, comparison, or assignment
	// operator.
	KindOperator // Operator

	// KindPunct is grouping or separating punctuation: ( ) [ ] ,
	KindPunct // Punctuation

	// KindKeyword is a reserved word: let, true, false.
	KindKeyword // Keyword

	// KindEOF marks the end of the input line.
	KindEOF // EOF
)

// Radix is the numeral base an integer literal was written in. It does not
// affect the stored numeric value, only how the value is echoed back.
type Radix int

const (
	RadixBinary  Radix = 2
	RadixDecimal Radix = 10
	RadixHex     Radix = 16
)

// Prefix returns the literal prefix for the radix ("0b", "0x", or "").
func (r Radix) Prefix() string {
	switch r {
	case RadixBinary:
		return "0b"
	case RadixHex:
		return "0x"
	default:
		return ""
	}
}

// Token is a single lexical unit of one input line. Tokens are immutable
// once produced by the lexer.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    int // byte offset within the input line

	// Decoded payload, valid only when Kind is KindNumber.
	Int     int64
	Float   float64
	IsFloat bool
	Radix   Radix
}

// Describe returns a human-readable rendering of the token for error
// messages: the quoted lexeme, or the kind name at end of input.
func (t Token) Describe() string {
	if t.Kind == KindEOF {
		return "end of input"
	}

	return "'" + t.Lexeme + "'"
}
