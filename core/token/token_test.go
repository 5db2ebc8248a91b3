package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josephlewis42/lowsh/core/term"
)

func TestClassification(t *testing.T) {
	cases := map[string]OpClass{
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

		// Outside the operator alphabet.
		"!":    None,
		"echo": None,
		"-n":   None,
		"2>":   None,
	}

	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, want, Sym(text).OpClass())
			assert.Equal(t, want == None, Sym(text).IsArg())
		})
	}
}

func TestAlphabetMatchesClassification(t *testing.T) {
	// Every spelling belongs to exactly one class, and the union of the
	// four classes is exactly the operator alphabet.
	for spelling, class := range operators {
		assert.NotEqual(t, None, class, "operator %q is unclassified", spelling)
		assert.False(t, Sym(spelling).IsArg(), "operator %q is also an arg", spelling)
	}
}

func TestOnlySymbolsAreOperators(t *testing.T) {
	// A quoted "|" is a literal, not the pipe operator; the tie-break
	// applies to bare symbols only.
	assert.Equal(t, None, Str("|").OpClass())
	assert.Equal(t, None, Int(2).OpClass())
	assert.Equal(t, None, Sub(term.Word("x")).OpClass())
}

func TestLit(t *testing.T) {
	assert.Equal(t, "2", Int(2).Lit())
	assert.Equal(t, "echo", Sym("echo").Lit())
	assert.Equal(t, "a b", Str("a b").Lit())
}

func TestString(t *testing.T) {
	assert.Equal(t, "echo", Sym("echo").String())
	assert.Equal(t, `"hi"`, Str("hi").String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "(...)", Sub(term.Word("x")).String())
}
