// Package ast defines the syntax tree for the restricted regex notation.
package ast

import (
	"fmt"
	"strings"
)

// Node is the closed set of tree variants. Every tree-wide pass is an
// exhaustive switch over these types.
type Node interface {
	fmt.Stringer
	isNode()
}

// Group is a capturing group. ID is 1-based, assigned in source order.
type Group struct {
	ID    int
	Child Node
}

// NonCapGroup groups purely for precedence.
type NonCapGroup struct {
	Child Node
}

// Lookahead is a zero-width assertion. Its content contributes nothing to
// the generated language.
type Lookahead struct {
	Child Node
}

type Star struct {
	Child Node
}

type Concat struct {
	Children []Node
}

type Alt struct {
	Branches []Node
}

type Char struct {
	C byte
}

// BackRef refers to a Group by id. The relation is non-owning; the parser's
// group map resolves it.
type BackRef struct {
	ID int
}

func (*Group) isNode()       {}
func (*NonCapGroup) isNode() {}
func (*Lookahead) isNode()   {}
func (*Star) isNode()        {}
func (*Concat) isNode()      {}
func (*Alt) isNode()         {}
func (*Char) isNode()        {}
func (*BackRef) isNode()     {}

// String renders the subtree back in source notation.
func (n *Group) String() string       { return "(" + n.Child.String() + ")" }
func (n *NonCapGroup) String() string { return "(?:" + n.Child.String() + ")" }
func (n *Lookahead) String() string   { return "(?=" + n.Child.String() + ")" }
func (n *Star) String() string        { return n.Child.String() + "*" }
func (n *Char) String() string        { return string(n.C) }
func (n *BackRef) String() string     { return fmt.Sprintf("(?%d)", n.ID) }

func (n *Concat) String() string {
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.String())
	}
	return sb.String()
}

func (n *Alt) String() string {
	branches := make([]string, 0, len(n.Branches))
	for _, branch := range n.Branches {
		branches = append(branches, branch.String())
	}
	return strings.Join(branches, "|")
}

var (
	_ Node = &Group{}
	_ Node = &NonCapGroup{}
	_ Node = &Lookahead{}
	_ Node = &Star{}
	_ Node = &Concat{}
	_ Node = &Alt{}
	_ Node = &Char{}
	_ Node = &BackRef{}
)
