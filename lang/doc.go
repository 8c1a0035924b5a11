// Package lang implements the radish expression language: a small calculator
// language with integer/float arithmetic, bitwise operators, variables,
// anonymous functions, and a fixed catalog of built-in functions.
//
// # Pipeline
//
// One input line flows through [Tokenize], [Parse], and evaluation against a
// [Session]:
//
//	raw line → tokens → expression tree → Value → display string
//
// Tokens and expression trees are created fresh per line and discarded after
// evaluation. The [Session] holds the only long-lived state: the global
// variable [Env], which persists across evaluations.
//
// # Grammar
//
// Informal EBNF, lowest precedence first:
//
//	Expr     → ["let"] ident "=" Expr | Or
//	Or       → Xor ("|" Xor)*
//	Xor      → And ("^" And)*
//	And      → Eq ("&" Eq)*
//	Eq       → Rel (("==" | "!=") Rel)*
//	Rel      → Shift (("<" | ">" | "<=" | ">=") Shift)*
//	Shift    → Add (("<<" | ">>") Add)*
//	Add      → Mul (("+" | "-") Mul)*
//	Mul      → Pow (("*" | "/" | "%") Pow)*
//	Pow      → Unary ("**" Pow)?
//	Unary    → ("-" | "~") Unary | Call
//	Call     → Primary ("(" Args? ")")*
//	Primary  → number | ident | "true" | "false"
//	         | "(" Expr ")" | "[" Args? "]"
//	         | "|" Params? "|" Expr
//
// Number literals may be decimal (integer or fractional), hexadecimal with a
// 0x prefix, or binary with a 0b prefix. The radix is retained on the token
// so values produced by the hex and bin builtins can echo their origin.
//
// # Semantics
//
// Arithmetic between Int and Float promotes to Float. Integer division
// yields an Int only when exact. Bitwise operators require Int operands on
// both sides; there is no silent truncation of a Float operand. Anonymous
// functions capture their defining scope by reference to the live [Env], so
// mutations to outer variables after capture are visible inside the closure.
//
// Evaluation order is strictly left-to-right, depth-first. An evaluation
// error aborts the whole expression, but variable bindings committed earlier
// in the same left-to-right pass remain.
package lang
