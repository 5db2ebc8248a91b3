package shell

import (
	"fmt"

	"github.com/josephlewis42/lowsh/core/term"
	"github.com/josephlewis42/lowsh/core/token"
)

// lowerArg picks the expansion mode for one argument. Sub-expressions are
// already lowered and pass through. Quoted strings get interpolation only;
// bare words get the full treatment including splitting and globbing.
func lowerArg(t token.Token) term.Node {
	switch t.Kind {
	case token.SubExpr:
		return t.Sub
	case token.String:
		return &term.Expand{Mode: term.ExpandPartial, Word: t.Text}
	default:
		return &term.Expand{Mode: term.ExpandFull, Word: t.Lit()}
	}
}

// lowerArgs lowers arguments preserving order.
func lowerArgs(toks []token.Token) []term.Node {
	if len(toks) == 0 {
		return nil
	}
	out := make([]term.Node, 0, len(toks))
	for _, t := range toks {
		out = append(out, lowerArg(t))
	}
	return out
}

// lowerRedirect desugars one parsed redirect into its fd actions.
func lowerRedirect(r Redirect) ([]term.FdAction, error) {
	var target term.Node
	switch r.Target.Kind {
	case token.SubExpr:
		target = r.Target.Sub
	case token.Number:
		target = term.Num(r.Target.Num)
	default:
		target = &term.Expand{Mode: term.ExpandRedirectTarget, Word: r.Target.Lit()}
	}

	fd := func(dflt int) int {
		if r.Fd != nil {
			return *r.Fd
		}
		return dflt
	}

	switch r.Op {
	case ">":
		return []term.FdAction{{Verb: term.VerbOut, Fd: fd(1), Target: target}}, nil
	case "<":
		return []term.FdAction{{Verb: term.VerbIn, Fd: fd(0), Target: target}}, nil
	case ">>":
		return []term.FdAction{{Verb: term.VerbAppend, Fd: fd(1), Target: target}}, nil
	case "&>":
		// stderr follows stdout
		return []term.FdAction{
			{Verb: term.VerbOut, Fd: 1, Target: target},
			{Verb: term.VerbSet, Fd: 2, Target: term.Num(1)},
		}, nil
	case "&>>":
		return []term.FdAction{
			{Verb: term.VerbAppend, Fd: 1, Target: target},
			{Verb: term.VerbSet, Fd: 2, Target: term.Num(1)},
		}, nil
	case "<>":
		return []term.FdAction{{Verb: term.VerbRw, Fd: fd(0), Target: target}}, nil
	case ">&":
		return []term.FdAction{{Verb: term.VerbSet, Fd: fd(1), Target: target}}, nil
	default:
		return nil, fmt.Errorf("unknown redirect operator %q", r.Op)
	}
}
