// Package parser builds a syntax tree from a token stream and validates it.
package parser

import (
	"github.com/arr-ai/regram/ast"
	"github.com/arr-ai/regram/lexer"
)

// MaxGroups is the highest capturing group id a pattern may define.
const MaxGroups = 9

// Parser is a recursive-descent builder over a token slice. Precedence,
// tightest first: repetition, concatenation, alternation.
type Parser struct {
	tokens      []lexer.Token
	pos         int
	groupCount  int
	inLookahead bool
	groups      map[int]ast.Node
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, groups: map[int]ast.Node{}}
}

// Groups maps each capturing group id to its owned subtree. It is complete
// once Parse returns successfully, and is the single source of truth for
// what a group means when resolving back-references.
func (p *Parser) Groups() map[int]ast.Node {
	return p.groups
}

// Parse consumes the whole token stream and returns the validated tree.
// Reference resolution and lookahead-content checks run only after the tree
// is complete, since `(?N)` may point at a group defined later.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok != nil {
		return nil, trailingInputError(*tok)
	}
	if err := validate(node); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) current() *lexer.Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *Parser) at(kind lexer.Kind) bool {
	tok := p.current()
	return tok != nil && tok.Kind == kind
}

func (p *Parser) read(kind lexer.Kind) (lexer.Token, error) {
	tok := p.current()
	if tok == nil {
		return lexer.Token{}, eofError()
	}
	if tok.Kind != kind {
		return lexer.Token{}, unexpectedTokenError(*tok)
	}
	p.pos++
	return *tok, nil
}

func (p *Parser) parseAlternation() (ast.Node, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	branches := []ast.Node{first}
	for p.at(lexer.Alt) {
		alt, _ := p.read(lexer.Alt)
		if empty(first) && len(branches) == 1 {
			// leading `|`
			return nil, emptyAlternativeError(alt)
		}
		if tok := p.current(); tok == nil || tok.Kind == lexer.Close || tok.Kind == lexer.Alt {
			return nil, emptyAlternativeError(alt)
		}
		branch, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if len(branches) == 1 {
		return first, nil
	}
	return &ast.Alt{Branches: branches}, nil
}

// parseConcatenation accepts zero repetitions: an empty group body yields an
// empty Concat, which later synthesizes an ε production.
func (p *Parser) parseConcatenation() (ast.Node, error) {
	var nodes []ast.Node
	for tok := p.current(); tok != nil && tok.Kind != lexer.Close && tok.Kind != lexer.Alt; tok = p.current() {
		node, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return &ast.Concat{Children: nodes}, nil
}

func (p *Parser) parseRepetition() (ast.Node, error) {
	node, err := p.parseBase()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.Star) {
		if _, err := p.read(lexer.Star); err != nil {
			return nil, err
		}
		node = &ast.Star{Child: node}
	}
	return node, nil
}

func (p *Parser) parseBase() (ast.Node, error) {
	tok := p.current()
	if tok == nil {
		return nil, eofError()
	}
	switch tok.Kind {
	case lexer.GroupOpen:
		open, _ := p.read(lexer.GroupOpen)
		p.groupCount++
		if p.groupCount > MaxGroups {
			return nil, groupLimitError(open)
		}
		// The id is fixed before descending, so the body may reference
		// higher ids that only appear later in the pattern.
		id := p.groupCount
		child, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.read(lexer.Close); err != nil {
			return nil, err
		}
		p.groups[id] = child
		return &ast.Group{ID: id, Child: child}, nil

	case lexer.NonCapGroupOpen:
		p.read(lexer.NonCapGroupOpen) //nolint:errcheck
		child, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.read(lexer.Close); err != nil {
			return nil, err
		}
		return &ast.NonCapGroup{Child: child}, nil

	case lexer.LookaheadOpen:
		if p.inLookahead {
			return nil, nestedLookaheadError(tok.Pos)
		}
		p.read(lexer.LookaheadOpen) //nolint:errcheck
		p.inLookahead = true
		child, err := p.parseAlternation()
		p.inLookahead = false
		if err != nil {
			return nil, err
		}
		if _, err := p.read(lexer.Close); err != nil {
			return nil, err
		}
		return &ast.Lookahead{Child: child}, nil

	case lexer.BackrefOpen:
		ref, _ := p.read(lexer.BackrefOpen)
		if _, err := p.read(lexer.Close); err != nil {
			return nil, err
		}
		return &ast.BackRef{ID: ref.Group}, nil

	case lexer.Char:
		ch, _ := p.read(lexer.Char)
		return &ast.Char{C: ch.Char}, nil

	default:
		return nil, unexpectedTokenError(*tok)
	}
}

func empty(n ast.Node) bool {
	c, ok := n.(*ast.Concat)
	return ok && len(c.Children) == 0
}
