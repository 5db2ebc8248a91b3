package shell

import (
	"github.com/josephlewis42/lowsh/core/token"
)

// The grammar, with operators classified by core/token:
//
//	CommandList  := CommandClause (SepOp CommandClause)*
//	CommandClause:= Pipeline (ClauseOp Pipeline)*
//	Pipeline     := "!"? Command (PipeOp Command)*
//	Command      := (Redirect | Arg)+
//	Redirect     := Number? RedirectOp Arg
//	Arg          := any token outside the operator alphabet

// CommandList is a sequence of clauses separated by "&".
type CommandList struct {
	Clauses []CommandClause
}

// CommandClause is a sequence of pipelines chained by "&&"/"||". The first
// pipeline has no leading operator.
type CommandClause struct {
	Pipelines []ChainedPipeline
}

// ChainedPipeline is one pipeline of a clause plus the clause operator that
// links it to the previous one; Op is empty on the first pipeline.
type ChainedPipeline struct {
	Op       string
	Pipeline Pipeline
}

// Pipeline is a sequence of commands chained by pipe operators. Negated
// flips the success interpretation used by an enclosing clause operator; it
// never changes the composed pipe chain.
type Pipeline struct {
	Negated bool
	Cmds    []PipedCommand
}

// PipedCommand is one command of a pipeline plus the pipe operator that
// links it to the previous one; Op is empty on the first command.
type PipedCommand struct {
	Op  string
	Cmd Command
}

// Command is the ordered redirect/argument items of a single command.
type Command struct {
	Items []Item
}

// Item is either an Arg or a Redirect.
type Item interface {
	item()
}

// Arg is a non-operator token in command position.
type Arg struct {
	Tok token.Token
}

// Redirect is one parsed redirection; Fd is nil when the descriptor was
// omitted. It is consumed once by command lowering and not retained.
type Redirect struct {
	Fd     *int
	Op     string
	Target token.Token
}

func (Arg) item()      {}
func (Redirect) item() {}

// Parse conforms a flat token stream to the grammar above.
func Parse(toks []token.Token) (*CommandList, error) {
	p := &parser{toks: toks}

	list := &CommandList{}
	clause, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	list.Clauses = append(list.Clauses, clause)

	for !p.eof() && p.peek().OpClass() == token.Sep {
		p.next()
		clause, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		list.Clauses = append(list.Clauses, clause)
	}

	if !p.eof() {
		return nil, p.errHere("separator or end of input")
	}
	return list, nil
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) next() token.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

// at reports whether the token n positions ahead exists and satisfies f.
func (p *parser) at(n int, f func(token.Token) bool) bool {
	if p.pos+n >= len(p.toks) {
		return false
	}
	return f(p.toks[p.pos+n])
}

func (p *parser) errHere(want string) *GrammarError {
	e := &GrammarError{Pos: p.pos, Want: want}
	if !p.eof() {
		t := p.peek()
		e.Got = &t
	}
	return e
}

func (p *parser) parseClause() (CommandClause, error) {
	var clause CommandClause

	pl, err := p.parsePipeline()
	if err != nil {
		return clause, err
	}
	clause.Pipelines = append(clause.Pipelines, ChainedPipeline{Pipeline: pl})

	for !p.eof() && p.peek().OpClass() == token.Clause {
		op := p.next().Text
		pl, err := p.parsePipeline()
		if err != nil {
			return clause, err
		}
		clause.Pipelines = append(clause.Pipelines, ChainedPipeline{Op: op, Pipeline: pl})
	}
	return clause, nil
}

func (p *parser) parsePipeline() (Pipeline, error) {
	var pl Pipeline

	if !p.eof() && p.peek().Kind == token.Symbol && p.peek().Text == "!" {
		p.next()
		pl.Negated = true
	}

	cmd, err := p.parseCommand()
	if err != nil {
		return pl, err
	}
	pl.Cmds = append(pl.Cmds, PipedCommand{Cmd: cmd})

	for !p.eof() && p.peek().OpClass() == token.Pipe {
		op := p.next().Text
		cmd, err := p.parseCommand()
		if err != nil {
			return pl, err
		}
		pl.Cmds = append(pl.Cmds, PipedCommand{Op: op, Cmd: cmd})
	}
	return pl, nil
}

func (p *parser) parseCommand() (Command, error) {
	var cmd Command

loop:
	for !p.eof() {
		t := p.peek()
		switch t.OpClass() {
		case token.Pipe, token.Clause, token.Sep:
			break loop

		case token.Redirect:
			r, err := p.parseRedirect(nil)
			if err != nil {
				return cmd, err
			}
			cmd.Items = append(cmd.Items, r)

		default:
			// A number directly before a redirect operator is that
			// redirect's descriptor, not an argument.
			if t.Kind == token.Number && p.at(1, func(t token.Token) bool {
				return t.OpClass() == token.Redirect
			}) {
				fd := p.next().Num
				r, err := p.parseRedirect(&fd)
				if err != nil {
					return cmd, err
				}
				cmd.Items = append(cmd.Items, r)
				continue
			}

			p.next()
			cmd.Items = append(cmd.Items, Arg{Tok: t})
		}
	}

	if len(cmd.Items) == 0 {
		return cmd, p.errHere("command")
	}
	return cmd, nil
}

func (p *parser) parseRedirect(fd *int) (Redirect, error) {
	op := p.next() // Known to be a redirect operator.
	if p.eof() || !p.peek().IsArg() {
		return Redirect{}, p.errHere("file after redirect")
	}
	return Redirect{Fd: fd, Op: op.Text, Target: p.next()}, nil
}
