package shell

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/lowsh/core/term"
	"github.com/josephlewis42/lowsh/core/token"
)

func TestLowerGolden(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	cases := map[string]struct {
		toks []token.Token
		mode Mode
	}{
		"redirect": {
			toks: []token.Token{
				token.Sym("echo"), token.Str("hi"),
				token.Sym(">"), token.Sym("out.txt"),
			},
			mode: Batch,
		},
		"interactive-pipe": {
			toks: []token.Token{
				token.Sym("cat"),
				token.Sym("|"),
				token.Sym("grep"), token.Str("x"),
			},
			mode: Interactive,
		},
		"clause": {
			toks: []token.Token{
				token.Sym("test"), token.Sym("-f"), token.Sym("conf"),
				token.Sym("&&"),
				token.Sym("cat"), token.Sym("conf"),
				token.Sym("||"),
				token.Sym("echo"), token.Str("missing"),
			},
			mode: Batch,
		},
		"dup-fd": {
			toks: []token.Token{
				token.Sym("cmd1"), token.Int(2), token.Sym(">&"), token.Int(1),
			},
			mode: Batch,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			node, err := Lower(tc.toks, tc.mode)
			require.NoError(t, err)

			g.Assert(t, tn, []byte(term.Dump(node)))
		})
	}
}
