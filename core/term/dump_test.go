package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpLeaves(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{Word("echo"), "word \"echo\"\n"},
		{Num(2), "num 2\n"},
		{Stdout, "stream stdout\n"},
		{&Expand{Mode: ExpandFull, Word: "*.txt"}, "expand full \"*.txt\"\n"},
		{&Expand{Mode: ExpandPartial, Word: "hi"}, "expand partial \"hi\"\n"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Dump(tc.node))
		})
	}
}

func TestDumpExternal(t *testing.T) {
	n := &External{
		Name: Word("echo"),
		Args: []Node{&Expand{Mode: ExpandPartial, Word: "hi"}},
		Redirects: []FdAction{
			{Verb: VerbOut, Fd: 1, Target: &Expand{Mode: ExpandRedirectTarget, Word: "out.txt"}},
		},
	}

	want := `external
  name word "echo"
  arg expand partial "hi"
  redir out fd=1 expand redirect-target "out.txt"
`
	assert.Equal(t, want, Dump(n))
}

func TestDumpWired(t *testing.T) {
	n := &Wired{
		Cmd: &External{Name: Word("cat")},
		Wiring: []FdAction{
			{Verb: VerbSet, Fd: 0, Target: Stdin},
			{Verb: VerbSet, Fd: 1, Target: Stdout},
		},
	}

	want := `wired
  wire set fd=0 stream stdin
  wire set fd=1 stream stdout
  external
    name word "cat"
`
	assert.Equal(t, want, Dump(n))
}

func TestDumpCond(t *testing.T) {
	n := &Cond{
		Pipeline: &External{Name: Word("a")},
		Negated:  true,
		Op:       OpOr,
		Next:     &External{Name: Word("b")},
	}

	want := `cond or negated
  external
    name word "a"
  external
    name word "b"
`
	assert.Equal(t, want, Dump(n))
}

func TestDumpCompositeTarget(t *testing.T) {
	// A sub-expression redirect target opens a block instead of rendering
	// inline.
	n := &External{
		Name: Word("echo"),
		Redirects: []FdAction{
			{Verb: VerbOut, Fd: 1, Target: &External{Name: Word("mktemp")}},
		},
	}

	want := `external
  name word "echo"
  redir out fd=1
    external
      name word "mktemp"
`
	assert.Equal(t, want, Dump(n))
}

func TestDumpForm(t *testing.T) {
	n := &Pipe{
		Comb:  CombPipeMulti,
		Left:  &External{Name: Word("ls")},
		Right: &Partial{Cmd: &Form{Head: "map", Args: []Node{Word("inc")}}},
	}

	want := `pipe-multi
  external
    name word "ls"
  partial
    form map
      word "inc"
`
	assert.Equal(t, want, Dump(n))
}
