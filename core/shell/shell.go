// Package shell is the grammar recognizer and lowering pass of the command
// language: it conforms a flat token stream into a parse tree and lowers it
// into the typed term tree an external evaluator runs. The pass is pure and
// synchronous; it decides what to run and how stages are wired, never
// running anything itself.
package shell

import (
	"github.com/josephlewis42/lowsh/core/term"
	"github.com/josephlewis42/lowsh/core/token"
)

// Mode selects the pipeline wiring strategy. It is threaded explicitly
// through every lowering call and is constant for one top-level lowering.
type Mode int

const (
	// Interactive wires pipelines like a terminal: the final stage writes
	// to stdout by default.
	Interactive Mode = iota
	// Batch adds no implicit stdio wiring; the pipeline's result stays an
	// addressable stream for the caller to compose or redirect.
	Batch
)

func (m Mode) String() string {
	if m == Batch {
		return "batch"
	}
	return "interactive"
}

// Lower parses the token stream and lowers it in the given mode with the
// default builtin set.
func Lower(toks []token.Token, mode Mode) (term.Node, error) {
	return LowerWith(toks, mode, nil)
}

// LowerWith is Lower with an explicit builtin set; a nil set means
// DefaultBuiltins.
func LowerWith(toks []token.Token, mode Mode, builtins Builtins) (term.Node, error) {
	list, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return LowerListWith(list, mode, builtins)
}

// LowerList lowers a parsed command list with the default builtin set.
func LowerList(list *CommandList, mode Mode) (term.Node, error) {
	return LowerListWith(list, mode, nil)
}

// LowerListWith lowers a parsed command list.
//
// Only the first clause of the list is lowered; clauses after a "&"
// separator are recognized by the grammar but discarded here.
// TODO: lower the remaining clauses once the evaluator grows job control.
func LowerListWith(list *CommandList, mode Mode, builtins Builtins) (term.Node, error) {
	if len(list.Clauses) == 0 {
		return nil, &GrammarError{Want: "command"}
	}
	if builtins == nil {
		builtins = DefaultBuiltins()
	}
	return lowerClause(list.Clauses[0], mode, builtins)
}
