package ast

import (
	"fmt"

	"github.com/arr-ai/frozen"
)

// Walk visits n and every descendant in preorder. A non-nil error from visit
// stops the traversal and is returned.
func Walk(n Node, visit func(Node) error) error {
	if n == nil {
		return nil
	}
	if err := visit(n); err != nil {
		return err
	}
	switch n := n.(type) {
	case *Group:
		return Walk(n.Child, visit)
	case *NonCapGroup:
		return Walk(n.Child, visit)
	case *Lookahead:
		return Walk(n.Child, visit)
	case *Star:
		return Walk(n.Child, visit)
	case *Concat:
		for _, child := range n.Children {
			if err := Walk(child, visit); err != nil {
				return err
			}
		}
		return nil
	case *Alt:
		for _, branch := range n.Branches {
			if err := Walk(branch, visit); err != nil {
				return err
			}
		}
		return nil
	case *Char, *BackRef:
		return nil
	default:
		panic(fmt.Errorf("walk: unexpected node type %v %[1]T", n))
	}
}

// Groups collects the ids of every capturing group in the tree. References
// may legally point forward, so callers resolve them against this set only
// after the whole tree is built.
func Groups(root Node) frozen.Set[int] {
	ids := frozen.NewSet[int]()
	_ = Walk(root, func(n Node) error {
		if g, ok := n.(*Group); ok {
			ids = ids.With(g.ID)
		}
		return nil
	})
	return ids
}
