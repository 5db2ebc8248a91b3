package shell

import (
	"fmt"

	"github.com/josephlewis42/lowsh/core/term"
)

// lowerClause folds a clause's pipelines right to left into a nested
// conditional term, giving the conventional short-circuit behavior of
// "&&"/"||" with per-pipeline negation. The rightmost pipeline is the base;
// each pipeline to its left wraps the accumulated term in a Cond that runs
// it only when the pipeline's condition allows.
func lowerClause(clause CommandClause, mode Mode, builtins Builtins) (term.Node, error) {
	last := len(clause.Pipelines) - 1

	acc, err := lowerPipeline(clause.Pipelines[last].Pipeline, mode, builtins)
	if err != nil {
		return nil, err
	}

	for i := last - 1; i >= 0; i-- {
		link := clause.Pipelines[i]

		var op term.ClauseOp
		switch clause.Pipelines[i+1].Op {
		case "&&":
			op = term.OpAnd
		case "||":
			op = term.OpOr
		default:
			return nil, fmt.Errorf("unknown clause operator %q", clause.Pipelines[i+1].Op)
		}

		pipe, err := lowerPipeline(link.Pipeline, mode, builtins)
		if err != nil {
			return nil, err
		}

		acc = &term.Cond{
			Pipeline: pipe,
			Negated:  link.Pipeline.Negated,
			Op:       op,
			Next:     acc,
		}
	}

	return acc, nil
}
