// Package regram compiles a restricted regular expression into an
// equivalent context-free grammar.
//
// The notation covers lowercase literals, concatenation, alternation `|`,
// repetition `*`, capturing groups `( )` (at most nine), non-capturing
// groups `(?: )`, lookahead `(?= )` and numeric back-references `(?N)`,
// which may point at groups defined later in the pattern.
package regram

import (
	"github.com/arr-ai/regram/cfg"
	err "github.com/arr-ai/regram/errors"
	"github.com/arr-ai/regram/lexer"
	"github.com/arr-ai/regram/parser"
)

// EmptyPatternError indicates an empty input pattern.
const EmptyPatternError = err.PatternErrors

// Compile runs the full pipeline: tokenize, build and validate the syntax
// tree, synthesize the grammar. Any failure returns a *errors.Error and no
// partial grammar. Compile holds no state across calls; concurrent calls on
// different patterns are independent.
func Compile(pattern string) (*cfg.Grammar, error) {
	if pattern == "" {
		return nil, err.New(EmptyPatternError, -1, "empty pattern")
	}
	tokens, e := lexer.Tokenize(pattern)
	if e != nil {
		return nil, e
	}
	p := parser.New(tokens)
	root, e := p.Parse()
	if e != nil {
		return nil, e
	}
	return cfg.NewBuilder(p.Groups()).Build(root)
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *cfg.Grammar {
	g, e := Compile(pattern)
	if e != nil {
		panic(e)
	}
	return g
}
