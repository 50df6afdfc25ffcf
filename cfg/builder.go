package cfg

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/arr-ai/regram/ast"
	err "github.com/arr-ai/regram/errors"
)

// Error codes used by the builder:
const (
	// UndefinedGroupError indicates a back-reference that survived
	// validation but resolves to no stored subtree. It cannot fire on a
	// tree accepted by the parser.
	UndefinedGroupError = err.GrammarErrors + iota
)

// StartSymbol is the top-level nonterminal of every synthesized grammar.
const StartSymbol = "S"

// Builder turns a validated tree into a Grammar. Each capturing group gets
// one stable nonterminal G<id>, shared by its defining occurrence and every
// back-reference, so self- and forward-references never expand twice.
type Builder struct {
	groups  map[int]ast.Node
	groupNT map[int]string
	counts  map[string]int
}

// NewBuilder takes the parser's group map (group id to owned subtree).
func NewBuilder(groups map[int]ast.Node) *Builder {
	return &Builder{
		groups:  groups,
		groupNT: map[int]string{},
		counts:  map[string]int{},
	}
}

// Build synthesizes root and returns the grammar. The start symbol's single
// production is added after the main walk, and any group the walk never
// materialized is swept up afterwards under its stable name.
func (b *Builder) Build(root ast.Node) (*Grammar, error) {
	g := NewGrammar(StartSymbol)
	main, e := b.synthesize(root, g, "")
	if e != nil {
		return nil, e
	}
	g.Add(StartSymbol, Production{main})

	ids := make([]int, 0, len(b.groups))
	for id := range b.groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if _, done := b.groupNT[id]; done {
			continue
		}
		nt := b.groupName(id)
		if _, e := b.synthesize(b.groups[id], g, nt); e != nil {
			return nil, e
		}
	}
	return g, nil
}

// synthesize emits productions for n and returns the nonterminal deriving
// it. A non-empty name pins the nonterminal instead of generating one.
func (b *Builder) synthesize(n ast.Node, g *Grammar, name string) (string, error) {
	switch n := n.(type) {
	case *ast.Char:
		nt := b.pick(name, "CHAR")
		g.Add(nt, Production{string(n.C)})
		return nt, nil

	case *ast.Group:
		nt := b.groupName(n.ID)
		sub, e := b.synthesize(n.Child, g, "")
		if e != nil {
			return "", e
		}
		g.Add(nt, Production{sub})
		return nt, nil

	case *ast.NonCapGroup:
		nt := b.pick(name, "N")
		sub, e := b.synthesize(n.Child, g, "")
		if e != nil {
			return "", e
		}
		g.Add(nt, Production{sub})
		return nt, nil

	case *ast.Lookahead:
		// Zero-width: the content is erased from the grammar view.
		nt := b.pick(name, "LA")
		g.Add(nt, Production{})
		return nt, nil

	case *ast.Concat:
		nt := b.pick(name, "C")
		seq := make(Production, 0, len(n.Children))
		for _, child := range n.Children {
			sub, e := b.synthesize(child, g, "")
			if e != nil {
				return "", e
			}
			seq = append(seq, sub)
		}
		g.Add(nt, seq)
		return nt, nil

	case *ast.Alt:
		nt := b.pick(name, "A")
		for _, branch := range n.Branches {
			sub, e := b.synthesize(branch, g, "")
			if e != nil {
				return "", e
			}
			g.Add(nt, Production{sub})
		}
		return nt, nil

	case *ast.Star:
		nt := b.pick(name, "R")
		sub, e := b.synthesize(n.Child, g, "")
		if e != nil {
			return "", e
		}
		g.Add(nt, Production{})
		g.Add(nt, Production{nt, sub})
		return nt, nil

	case *ast.BackRef:
		if nt, ok := b.groupNT[n.ID]; ok {
			return nt, nil
		}
		node, ok := b.groups[n.ID]
		if !ok {
			return "", err.Format(UndefinedGroupError, -1, "no subtree for group %d", n.ID)
		}
		// Memoize before recursing so a self-reference resolves to the
		// name instead of expanding forever.
		nt := b.groupName(n.ID)
		sub, e := b.synthesize(node, g, "")
		if e != nil {
			return "", e
		}
		g.Add(nt, Production{sub})
		return nt, nil

	default:
		panic(fmt.Errorf("synthesize: unexpected node type %v %[1]T", n))
	}
}

func (b *Builder) groupName(id int) string {
	if nt, ok := b.groupNT[id]; ok {
		return nt
	}
	nt := "G" + strconv.Itoa(id)
	b.groupNT[id] = nt
	return nt
}

// pick returns name when pinned, else a fresh deterministic name. One
// monotonic counter per prefix keeps categories collision-free.
func (b *Builder) pick(name, prefix string) string {
	if name != "" {
		return name
	}
	b.counts[prefix]++
	return prefix + strconv.Itoa(b.counts[prefix])
}
