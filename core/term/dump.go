package term

import (
	"fmt"
	"strings"
)

// Dump renders a node as stable, line-oriented text with two-space
// indentation. Leaves render inline; composite nodes open a block. The
// format is the contract for the golden tests and the CLI output.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

// leafString renders leaf nodes inline, or "" if the node opens a block.
func leafString(n Node) string {
	switch n := n.(type) {
	case Word:
		return fmt.Sprintf("word %q", string(n))
	case Num:
		return fmt.Sprintf("num %d", int(n))
	case Stream:
		return "stream " + string(n)
	case *Expand:
		return fmt.Sprintf("expand %s %q", n.Mode, n.Word)
	default:
		return ""
	}
}

func dump(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)

	if leaf := leafString(n); leaf != "" {
		fmt.Fprintf(b, "%s%s\n", indent, leaf)
		return
	}

	switch n := n.(type) {
	case *External:
		fmt.Fprintf(b, "%sexternal\n", indent)
		dumpLabeled(b, "name", n.Name, depth+1)
		for _, arg := range n.Args {
			dumpLabeled(b, "arg", arg, depth+1)
		}
		for _, r := range n.Redirects {
			dumpAction(b, "redir", r, depth+1)
		}

	case *Builtin:
		fmt.Fprintf(b, "%sbuiltin %s\n", indent, n.Name)
		for _, arg := range n.Args {
			dumpLabeled(b, "arg", arg, depth+1)
		}

	case *Seq:
		fmt.Fprintf(b, "%sseq\n", indent)
		for _, step := range n.Steps {
			dump(b, step, depth+1)
		}

	case *Partial:
		fmt.Fprintf(b, "%spartial\n", indent)
		dump(b, n.Cmd, depth+1)

	case *Pipe:
		fmt.Fprintf(b, "%s%s\n", indent, n.Comb)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)

	case *Wired:
		fmt.Fprintf(b, "%swired\n", indent)
		for _, w := range n.Wiring {
			dumpAction(b, "wire", w, depth+1)
		}
		dump(b, n.Cmd, depth+1)

	case *Cond:
		if n.Negated {
			fmt.Fprintf(b, "%scond %s negated\n", indent, n.Op)
		} else {
			fmt.Fprintf(b, "%scond %s\n", indent, n.Op)
		}
		dump(b, n.Pipeline, depth+1)
		dump(b, n.Next, depth+1)

	case *Form:
		fmt.Fprintf(b, "%sform %s\n", indent, n.Head)
		for _, arg := range n.Args {
			dump(b, arg, depth+1)
		}

	default:
		fmt.Fprintf(b, "%s%T\n", indent, n)
	}
}

// dumpLabeled prints "label <leaf>" inline, or "label" followed by a nested
// block when the child is composite.
func dumpLabeled(b *strings.Builder, label string, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if leaf := leafString(n); leaf != "" {
		fmt.Fprintf(b, "%s%s %s\n", indent, label, leaf)
		return
	}
	fmt.Fprintf(b, "%s%s\n", indent, label)
	dump(b, n, depth+1)
}

func dumpAction(b *strings.Builder, label string, a FdAction, depth int) {
	indent := strings.Repeat("  ", depth)
	if leaf := leafString(a.Target); leaf != "" {
		fmt.Fprintf(b, "%s%s %s fd=%d %s\n", indent, label, a.Verb, a.Fd, leaf)
		return
	}
	fmt.Fprintf(b, "%s%s %s fd=%d\n", indent, label, a.Verb, a.Fd)
	dump(b, a.Target, depth+1)
}
