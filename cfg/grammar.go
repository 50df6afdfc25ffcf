// Package cfg models context-free grammars and synthesizes them from syntax
// trees.
package cfg

import (
	"strings"
)

// Epsilon is the literal used when rendering an empty production.
const Epsilon = "ε"

// Production is an ordered sequence of symbols; empty means ε. A symbol is
// either a nonterminal name or a single lowercase letter.
type Production []string

func (p Production) String() string {
	if len(p) == 0 {
		return Epsilon
	}
	return strings.Join(p, " ")
}

// Grammar is a start symbol plus productions keyed by nonterminal, kept in
// insertion order. It is built once by a Builder and not mutated afterwards.
type Grammar struct {
	start string
	order []string
	rules map[string][]Production
}

func NewGrammar(start string) *Grammar {
	return &Grammar{start: start, rules: map[string][]Production{}}
}

func (g *Grammar) Start() string {
	return g.start
}

// Add appends a production. The first production for a nonterminal fixes its
// place in the iteration order.
func (g *Grammar) Add(nt string, prod Production) {
	if _, ok := g.rules[nt]; !ok {
		g.order = append(g.order, nt)
	}
	g.rules[nt] = append(g.rules[nt], prod)
}

// NonTerminals returns the nonterminal names in insertion order.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Grammar) Productions(nt string) []Production {
	return g.rules[nt]
}

// String renders one line per production, nonterminals in insertion order.
// The rendering is deterministic for a given build, byte for byte.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, nt := range g.order {
		for _, prod := range g.rules[nt] {
			sb.WriteString(nt)
			sb.WriteString(" -> ")
			sb.WriteString(prod.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Undefined returns the nonterminals reachable from the start symbol that
// have no productions. A well-formed build returns none.
func (g *Grammar) Undefined() []string {
	var missing []string
	seen := map[string]bool{}
	pending := []string{g.start}
	for len(pending) > 0 {
		sym := pending[0]
		pending = pending[1:]
		if seen[sym] || terminal(sym) {
			continue
		}
		seen[sym] = true
		prods, ok := g.rules[sym]
		if !ok {
			missing = append(missing, sym)
			continue
		}
		for _, prod := range prods {
			pending = append(pending, prod...)
		}
	}
	return missing
}

func terminal(sym string) bool {
	return len(sym) == 1 && sym[0] >= 'a' && sym[0] <= 'z'
}
