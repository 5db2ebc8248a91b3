// Package term defines the lowered command tree produced by the shell
// front-end. The tree is consumed by an evaluator that supplies the
// collaborators referenced here by name: the argument expansion functions,
// the pipe combinators, pipeline wait/condition, and builtin dispatch.
// Nothing in this package executes anything.
package term

import "fmt"

// Node is one vertex of the lowered command tree.
type Node interface {
	node()
}

// Word is a literal string leaf, most often a command name.
type Word string

// Num is a literal integer leaf, used for file-descriptor targets.
type Num int

// Stream is a process-level stdio endpoint used in pipeline wiring.
type Stream string

const (
	Stdin   Stream = "stdin"
	Stdout  Stream = "stdout"
	Stderr  Stream = "stderr"
	PipeEnd Stream = "pipe"
)

// ExpandMode selects how much expansion the evaluator applies to a word.
type ExpandMode int

const (
	// ExpandFull applies interpolation, word splitting and globbing.
	ExpandFull ExpandMode = iota
	// ExpandPartial applies interpolation only.
	ExpandPartial
	// ExpandRedirectTarget resolves a word to a single redirect path.
	ExpandRedirectTarget
)

func (m ExpandMode) String() string {
	switch m {
	case ExpandFull:
		return "full"
	case ExpandPartial:
		return "partial"
	case ExpandRedirectTarget:
		return "redirect-target"
	default:
		return fmt.Sprintf("expand-mode(%d)", int(m))
	}
}

// Expand is a deferred call into the evaluator's expansion collaborator.
type Expand struct {
	Mode ExpandMode
	Word string
}

// Verb is the kind of file-descriptor action a redirect desugars to.
type Verb int

const (
	VerbOut Verb = iota
	VerbIn
	VerbAppend
	VerbRw
	VerbSet
)

func (v Verb) String() string {
	switch v {
	case VerbOut:
		return "out"
	case VerbIn:
		return "in"
	case VerbAppend:
		return "append"
	case VerbRw:
		return "rw"
	case VerbSet:
		return "set"
	default:
		return fmt.Sprintf("verb(%d)", int(v))
	}
}

// FdAction is the executor-facing redirection primitive. Target is a Num
// when rebinding to another descriptor, a Stream for pipeline wiring, and
// otherwise an Expand or sub-expression node naming a path.
type FdAction struct {
	Verb   Verb
	Fd     int
	Target Node
}

// External is an invocation of an external program. Name is usually a Word
// but may be any node when the command name is computed. Redirects is nil
// when the command carries none.
type External struct {
	Name      Node
	Args      []Node
	Redirects []FdAction
}

// Builtin is an invocation of one of the shell's own commands. Redirections
// on builtins are not modeled; the builtin contract is external.
type Builtin struct {
	Name string
	Args []Node
}

// Seq evaluates Steps in order, yielding the last result.
type Seq struct {
	Steps []Node
}

// Partial defers a command's invocation, leaving its trailing argument slot
// open to receive the piped value.
type Partial struct {
	Cmd Node
}

// Combinator selects how one pipeline stage is composed into the next.
type Combinator int

const (
	CombPipe Combinator = iota
	CombPipeMulti
	CombPipeFilter
	CombPipeReduce
)

func (c Combinator) String() string {
	switch c {
	case CombPipe:
		return "pipe"
	case CombPipeMulti:
		return "pipe-multi"
	case CombPipeFilter:
		return "pipe-filter"
	case CombPipeReduce:
		return "pipe-reduce"
	default:
		return fmt.Sprintf("combinator(%d)", int(c))
	}
}

// Pipe composes Left into Right using one of the evaluator's pipe
// combinators.
type Pipe struct {
	Comb  Combinator
	Left  Node
	Right Node
}

// Wired augments a command with stdio wiring before it joins a pipeline.
type Wired struct {
	Cmd    Node
	Wiring []FdAction
}

// ClauseOp is a conditional-chain operator.
type ClauseOp int

const (
	OpAnd ClauseOp = iota
	OpOr
)

func (op ClauseOp) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return fmt.Sprintf("clause-op(%d)", int(op))
	}
}

// Cond encodes one link of a conditional chain. The evaluator runs Pipeline,
// waits for it, and tests its condition; Negated flips the test. For OpAnd
// evaluation continues to Next when the condition holds, for OpOr when it
// does not. When evaluation stops, the pipeline's own bound result is the
// value of the whole term.
type Cond struct {
	Pipeline Node
	Negated  bool
	Op       ClauseOp
	Next     Node
}

// Form is an opaque host-evaluator form: a control-flow primitive, function
// definition, or helper the evaluator interprets natively rather than as a
// command invocation.
type Form struct {
	Head string
	Args []Node
}

func (Word) node()      {}
func (Num) node()       {}
func (Stream) node()    {}
func (*Expand) node()   {}
func (*External) node() {}
func (*Builtin) node()  {}
func (*Seq) node()      {}
func (*Partial) node()  {}
func (*Pipe) node()     {}
func (*Wired) node()    {}
func (*Cond) node()     {}
func (*Form) node()     {}
