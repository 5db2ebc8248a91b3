package shell

import (
	"fmt"

	"github.com/josephlewis42/lowsh/core/token"
)

// GrammarError reports a token stream that does not conform to the command
// grammar. Pos is the index of the offending token; Got is unset when the
// stream ended early.
type GrammarError struct {
	Pos  int
	Want string
	Got  *token.Token
}

func (e *GrammarError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("syntax error at token %d: want %s", e.Pos, e.Want)
	}
	return fmt.Sprintf("syntax error at token %d: want %s, got %q", e.Pos, e.Want, e.Got.String())
}
