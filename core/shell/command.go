package shell

import (
	"github.com/josephlewis42/lowsh/core/term"
	"github.com/josephlewis42/lowsh/core/token"
)

// Builtins is the set of command names lowered to builtin invocations.
// Lowering only recognizes the names; dispatch is the evaluator's.
type Builtins map[string]bool

// DefaultBuiltins returns the names the shell always implements inside its
// own process.
func DefaultBuiltins() Builtins {
	return Builtins{
		"cd":   true,
		"exit": true,
		"quit": true,
	}
}

// With returns a copy of the set extended with the given names.
func (b Builtins) With(names ...string) Builtins {
	out := make(Builtins, len(b)+len(names))
	for name := range b {
		out[name] = true
	}
	for _, name := range names {
		out[name] = true
	}
	return out
}

// helperForm is the head of the host-side command helper wrapper. A
// sub-expression headed by it is treated as a computed command name rather
// than a term to pass through.
const helperForm = "cmd"

// specialForms are the host control-flow and function-definition heads that
// a pipe may feed directly. Any other host form gets partially applied so
// the piped value can fill its trailing argument slot.
var specialForms = map[string]bool{
	"if":       true,
	"do":       true,
	"let":      true,
	"fn":       true,
	"defn":     true,
	"quote":    true,
	helperForm: true,
}

func isHelper(n term.Node) bool {
	f, ok := n.(*term.Form)
	return ok && f.Head == helperForm
}

// isSpecial reports whether a lowered command may be invoked directly as a
// pipe target. Command invocations and wired commands are always special;
// a bare host form is special only when its head is a known control or
// definition form.
func isSpecial(n term.Node) bool {
	switch n := n.(type) {
	case *term.External, *term.Builtin, *term.Seq, *term.Wired:
		return true
	case *term.Form:
		return specialForms[n.Head]
	default:
		return false
	}
}

// lowerCommand assembles one command into a single callable unit.
func lowerCommand(c Command, builtins Builtins) (term.Node, error) {
	head, ok := c.Items[0].(Arg)
	if !ok {
		// Command := (Redirect | Arg)+ admits a leading redirect, but a
		// command without a name has nothing to apply it to.
		return nil, &GrammarError{Want: "command name before redirect"}
	}

	// A sub-expression in command position is already executable: alone it
	// passes through verbatim, and trailing arguments turn it into an
	// explicit run-in-order sequence. Redirect items are not collected in
	// this shape.
	if head.Tok.Kind == token.SubExpr && !isHelper(head.Tok.Sub) {
		steps := []term.Node{head.Tok.Sub}
		for _, item := range c.Items[1:] {
			if a, ok := item.(Arg); ok {
				steps = append(steps, lowerArg(a.Tok))
			}
		}
		if len(steps) == 1 {
			return head.Tok.Sub, nil
		}
		return &term.Seq{Steps: steps}, nil
	}

	// Stable partition of the remaining items.
	var args []token.Token
	var redirs []Redirect
	for _, item := range c.Items[1:] {
		switch item := item.(type) {
		case Arg:
			args = append(args, item.Tok)
		case Redirect:
			redirs = append(redirs, item)
		}
	}

	if head.Tok.Kind != token.SubExpr && builtins[head.Tok.Lit()] {
		return &term.Builtin{Name: head.Tok.Lit(), Args: lowerArgs(args)}, nil
	}

	var name term.Node
	if head.Tok.Kind == token.SubExpr {
		name = head.Tok.Sub // the helper computes the name at run time
	} else {
		name = term.Word(head.Tok.Lit())
	}

	var actions []term.FdAction
	for _, r := range redirs {
		as, err := lowerRedirect(r)
		if err != nil {
			return nil, err
		}
		actions = append(actions, as...)
	}

	return &term.External{Name: name, Args: lowerArgs(args), Redirects: actions}, nil
}
