package parser

import (
	"github.com/arr-ai/frozen"
	"github.com/arr-ai/regram/ast"
)

// validate runs the whole-tree passes that cannot run during descent:
// back-references may point at groups defined later in the pattern, so the
// defined-id set exists only once the tree is complete.
func validate(root ast.Node) error {
	v := validator{defined: ast.Groups(root)}
	return v.check(root)
}

type validator struct {
	defined frozen.Set[int]
}

func (v *validator) check(n ast.Node) error {
	switch n := n.(type) {
	case *ast.BackRef:
		if !v.defined.Has(n.ID) {
			return unknownGroupError(n.ID)
		}
	case *ast.Lookahead:
		if err := checkLookaheadBody(n.Child); err != nil {
			return err
		}
		return v.check(n.Child)
	case *ast.Group:
		return v.check(n.Child)
	case *ast.NonCapGroup:
		return v.check(n.Child)
	case *ast.Star:
		return v.check(n.Child)
	case *ast.Concat:
		for _, child := range n.Children {
			if err := v.check(child); err != nil {
				return err
			}
		}
	case *ast.Alt:
		for _, branch := range n.Branches {
			if err := v.check(branch); err != nil {
				return err
			}
		}
	case *ast.Char:
	}
	return nil
}

// checkLookaheadBody rejects capturing groups and lookaheads anywhere below
// a lookahead, however deeply wrapped. Nested lookaheads are already caught
// during descent; the check here keeps the rule complete for trees built by
// other means.
func checkLookaheadBody(body ast.Node) error {
	return ast.Walk(body, func(n ast.Node) error {
		switch n := n.(type) {
		case *ast.Group:
			return lookaheadCaptureError(n.ID)
		case *ast.Lookahead:
			return nestedLookaheadError(-1)
		}
		return nil
	})
}
