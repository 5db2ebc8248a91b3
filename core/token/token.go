// Package token defines the token stream consumed by the command-language
// front-end and the classification of operator symbols. Tokens are produced
// upstream by a reader and are immutable.
package token

import (
	"fmt"
	"strconv"

	"github.com/josephlewis42/lowsh/core/term"
)

// Kind discriminates the token variants.
type Kind int

const (
	// Symbol is a bare word: a command name, flag, or operator spelling.
	Symbol Kind = iota
	// String is a quoted literal.
	String
	// Number is an integer literal.
	Number
	// SubExpr wraps an already-lowered term.
	SubExpr
)

// Token is one element of the input stream.
type Token struct {
	Kind Kind
	Text string // Symbol name or String contents.
	Num  int    // Number value.
	Sub  term.Node
}

func Sym(name string) Token    { return Token{Kind: Symbol, Text: name} }
func Str(lit string) Token     { return Token{Kind: String, Text: lit} }
func Int(n int) Token          { return Token{Kind: Number, Num: n} }
func Sub(node term.Node) Token { return Token{Kind: SubExpr, Sub: node} }

// OpClass is one of the four disjoint operator categories, or None for any
// token that is an argument.
type OpClass int

const (
	None OpClass = iota
	Redirect
	Pipe
	Clause
	Sep
)

func (c OpClass) String() string {
	switch c {
	case None:
		return "arg"
	case Redirect:
		return "redirect operator"
	case Pipe:
		return "pipe operator"
	case Clause:
		return "clause operator"
	case Sep:
		return "separator"
	default:
		return fmt.Sprintf("op-class(%d)", int(c))
	}
}

// operators maps each spelling in the operator alphabet to its class. The
// four classes are pairwise disjoint by construction.
var operators = map[string]OpClass{
	">":   Redirect,
	"<":   Redirect,
	">>":  Redirect,
	"&>":  Redirect,
	"&>>": Redirect,
	"<>":  Redirect,
	">&":  Redirect,

	"|":  Pipe,
	"|>": Pipe,
	"|?": Pipe,
	"|&": Pipe,

	"&&": Clause,
	"||": Clause,

	"&": Sep,
}

// OpClass classifies the token. Operator classification precedes Arg-ness:
// a symbol spelled like an operator is always that operator and can never
// be passed as a plain argument.
func (t Token) OpClass() OpClass {
	if t.Kind != Symbol {
		return None
	}
	return operators[t.Text]
}

// IsArg reports whether the token is outside the operator alphabet.
func (t Token) IsArg() bool {
	return t.OpClass() == None
}

// Lit stringifies a non-SubExpr token for expansion.
func (t Token) Lit() string {
	if t.Kind == Number {
		return strconv.Itoa(t.Num)
	}
	return t.Text
}

func (t Token) String() string {
	switch t.Kind {
	case Symbol:
		return t.Text
	case String:
		return strconv.Quote(t.Text)
	case Number:
		return strconv.Itoa(t.Num)
	case SubExpr:
		return "(...)"
	default:
		return fmt.Sprintf("token(%d)", int(t.Kind))
	}
}
