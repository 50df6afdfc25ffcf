package lexer

import (
	"fmt"
)

// Kind identifies a token class.
type Kind int

const (
	GroupOpen Kind = iota
	NonCapGroupOpen
	LookaheadOpen
	BackrefOpen
	Close
	Alt
	Star
	Char
)

func (k Kind) String() string {
	switch k {
	case GroupOpen:
		return "("
	case NonCapGroupOpen:
		return "(?:"
	case LookaheadOpen:
		return "(?="
	case BackrefOpen:
		return "(?N"
	case Close:
		return ")"
	case Alt:
		return "|"
	case Star:
		return "*"
	case Char:
		return "char"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme. Char carries the literal for Char tokens, Group
// the referenced group id for BackrefOpen tokens, and Pos the byte offset of
// the token in the source pattern.
type Token struct {
	Kind  Kind
	Char  byte
	Group int
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case Char:
		return fmt.Sprintf("char %q", t.Char)
	case BackrefOpen:
		return fmt.Sprintf("(?%d", t.Group)
	}
	return t.Kind.String()
}
