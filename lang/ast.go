package lang

import "strings"

// Expr is a node of the parsed expression tree. Trees are immutable after
// parsing; the evaluator borrows them for the duration of one evaluation.
//
// String reconstructs a canonical source rendering of the node, used to echo
// stored functions and for diagnostics.
type Expr interface {
	Pos() int
	String() string
}

// Literal is a constant produced directly by the lexer: a number in any
// radix, or a boolean keyword.
type Literal struct {
	Val    Value
	Lexeme string
	Offset int
}

func (l *Literal) Pos() int       { return l.Offset }
func (l *Literal) String() string { return l.Lexeme }

// Ident is a reference to a variable or builtin by name.
type Ident struct {
	Name   string
	Offset int
}

func (i *Ident) Pos() int       { return i.Offset }
func (i *Ident) String() string { return i.Name }

// Unary applies a prefix operator (- or ~) to its operand.
type Unary struct {
	Op      Token
	Operand Expr
}

func (u *Unary) Pos() int       { return u.Op.Pos }
func (u *Unary) String() string { return u.Op.Lexeme + u.Operand.String() }

// Binary applies an infix operator to two operands.
type Binary struct {
	Op    Token
	Left  Expr
	Right Expr
}

func (b *Binary) Pos() int { return b.Left.Pos() }

func (b *Binary) String() string {
	return b.Left.String() + " " + b.Op.Lexeme + " " + b.Right.String()
}

// Group is a parenthesized sub-expression, retained so echoes preserve the
// written grouping.
type Group struct {
	Inner  Expr
	Offset int
}

func (g *Group) Pos() int       { return g.Offset }
func (g *Group) String() string { return "(" + g.Inner.String() + ")" }

// Assign binds the evaluated right-hand side to a name in the current scope
// and yields the bound value.
type Assign struct {
	Name   string
	Value  Expr
	Offset int
}

func (a *Assign) Pos() int       { return a.Offset }
func (a *Assign) String() string { return a.Name + " = " + a.Value.String() }

// Call invokes a closure or builtin with positional arguments. Argument
// count is checked at evaluation time.
type Call struct {
	Callee Expr
	Args   []Expr
	Offset int // position of the opening parenthesis
}

func (c *Call) Pos() int { return c.Callee.Pos() }

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}

	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Lambda is an anonymous function literal: |a, b| expr. Evaluating it
// produces a closure capturing the current scope; the body is not evaluated.
type Lambda struct {
	Params []string
	Body   Expr
	Offset int
}

func (l *Lambda) Pos() int { return l.Offset }

func (l *Lambda) String() string {
	return "|" + strings.Join(l.Params, ", ") + "| " + l.Body.String()
}

// List is a sequence literal: [e, e, ...]. Elements are evaluated
// left-to-right.
type List struct {
	Elems  []Expr
	Offset int
}

func (l *List) Pos() int { return l.Offset }

func (l *List) String() string {
	elems := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		elems[i] = e.String()
	}

	return "[" + strings.Join(elems, ", ") + "]"
}
