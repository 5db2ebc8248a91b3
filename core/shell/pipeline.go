package shell

import (
	"fmt"

	"github.com/josephlewis42/lowsh/core/term"
)

// combinators maps each pipe operator to the evaluator combinator that
// composes one stage into the next.
var combinators = map[string]term.Combinator{
	"|":  term.CombPipe,
	"|>": term.CombPipeMulti,
	"|?": term.CombPipeFilter,
	"|&": term.CombPipeReduce,
}

func wire(fd int, s term.Stream) term.FdAction {
	return term.FdAction{Verb: term.VerbSet, Fd: fd, Target: s}
}

// lowerPipeline folds the commands left to right into a combinator chain.
//
// In interactive mode the first command reads the terminal and the last
// writes to it, so a pipeline behaves like one typed at a prompt. Batch
// mode wires nothing: the result stays a value the caller composes or
// redirects.
func lowerPipeline(pl Pipeline, mode Mode, builtins Builtins) (term.Node, error) {
	n := len(pl.Cmds)

	acc, err := lowerCommand(pl.Cmds[0].Cmd, builtins)
	if err != nil {
		return nil, err
	}
	if mode == Interactive {
		out := term.Stdout
		if n > 1 {
			out = term.PipeEnd
		}
		acc = &term.Wired{Cmd: acc, Wiring: []term.FdAction{
			wire(0, term.Stdin),
			wire(1, out),
			wire(2, term.Stderr),
		}}
	}

	for i := 1; i < n; i++ {
		stage := pl.Cmds[i]
		comb, ok := combinators[stage.Op]
		if !ok {
			return nil, fmt.Errorf("unknown pipe operator %q", stage.Op)
		}

		rhs, err := lowerCommand(stage.Cmd, builtins)
		if err != nil {
			return nil, err
		}
		if mode == Interactive && i == n-1 {
			rhs = &term.Wired{Cmd: rhs, Wiring: []term.FdAction{
				wire(0, term.PipeEnd),
				wire(1, term.Stdout),
				wire(2, term.Stderr),
			}}
		}

		// "|" and "|>" feed a single value: unless the target is a form
		// that can consume it directly, leave its trailing argument slot
		// open for the piped value.
		if (stage.Op == "|" || stage.Op == "|>") && !isSpecial(rhs) {
			rhs = &term.Partial{Cmd: rhs}
		}

		acc = &term.Pipe{Comb: comb, Left: acc, Right: rhs}
	}

	return acc, nil
}
