// Package reader turns one line of source text into the token stream the
// front-end consumes. The syntax is deliberately small: tokens are
// whitespace separated, double-quoted strings are literals, bare integers
// are numbers, and a parenthesized group is lowered recursively (in batch
// mode) into a single sub-expression token. Operators are bare symbols; the
// reader does not know the operator alphabet, classification happens later.
package reader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/josephlewis42/lowsh/core/shell"
	"github.com/josephlewis42/lowsh/core/token"
)

// Read tokenizes a single source line.
func Read(line string) ([]token.Token, error) {
	r := &reader{src: []rune(line)}
	return r.tokens(false)
}

type reader struct {
	src []rune
	pos int
}

func (r *reader) eof() bool {
	return r.pos >= len(r.src)
}

func (r *reader) skipSpace() {
	for !r.eof() && unicode.IsSpace(r.src[r.pos]) {
		r.pos++
	}
}

// tokens scans until end of input, or until the closing paren of the group
// being read when nested is true.
func (r *reader) tokens(nested bool) ([]token.Token, error) {
	var toks []token.Token

	for {
		r.skipSpace()
		if r.eof() {
			if nested {
				return nil, fmt.Errorf("column %d: missing closing paren", r.pos+1)
			}
			return toks, nil
		}

		switch c := r.src[r.pos]; {
		case c == ')':
			if !nested {
				return nil, fmt.Errorf("column %d: unexpected closing paren", r.pos+1)
			}
			r.pos++
			return toks, nil

		case c == '(':
			r.pos++
			inner, err := r.tokens(true)
			if err != nil {
				return nil, err
			}
			// Sub-expressions must stay addressable, so they are always
			// lowered in batch mode regardless of how the enclosing line
			// will be.
			node, err := shell.Lower(inner, shell.Batch)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token.Sub(node))

		case c == '"':
			lit, err := r.quoted()
			if err != nil {
				return nil, err
			}
			toks = append(toks, token.Str(lit))

		default:
			word := r.word()
			if n, err := strconv.Atoi(word); err == nil {
				toks = append(toks, token.Int(n))
			} else {
				toks = append(toks, token.Sym(word))
			}
		}
	}
}

// quoted consumes a double-quoted literal, resolving \" \\ \n \t escapes.
func (r *reader) quoted() (string, error) {
	start := r.pos
	r.pos++ // opening quote

	var b strings.Builder
	for !r.eof() {
		c := r.src[r.pos]
		r.pos++

		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if r.eof() {
				return "", fmt.Errorf("column %d: unterminated string", start+1)
			}
			e := r.src[r.pos]
			r.pos++
			switch e {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '"', '\\':
				b.WriteRune(e)
			default:
				b.WriteRune('\\')
				b.WriteRune(e)
			}
		default:
			b.WriteRune(c)
		}
	}
	return "", fmt.Errorf("column %d: unterminated string", start+1)
}

// word consumes a bare token up to whitespace or a paren.
func (r *reader) word() string {
	start := r.pos
	for !r.eof() {
		c := r.src[r.pos]
		if unicode.IsSpace(c) || c == '(' || c == ')' {
			break
		}
		r.pos++
	}
	return string(r.src[start:r.pos])
}
