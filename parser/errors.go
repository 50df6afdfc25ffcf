package parser

import (
	err "github.com/arr-ai/regram/errors"
	"github.com/arr-ai/regram/lexer"
)

// Structural error codes:
const (
	UnexpectedEofError = err.SyntaxErrors + iota
	UnexpectedTokenError
	EmptyAlternativeError
	TrailingInputError
	GroupLimitError
	NestedLookaheadError
)

// Referential error codes:
const (
	UnknownGroupError = err.ReferenceErrors + iota
	LookaheadCaptureError
)

func eofError() *err.Error {
	return err.New(UnexpectedEofError, -1, "unexpected end of pattern")
}

func unexpectedTokenError(tok lexer.Token) *err.Error {
	return err.Format(UnexpectedTokenError, tok.Pos, "unexpected %s token", tok)
}

func emptyAlternativeError(tok lexer.Token) *err.Error {
	return err.New(EmptyAlternativeError, tok.Pos, "empty alternative branch")
}

func trailingInputError(tok lexer.Token) *err.Error {
	return err.Format(TrailingInputError, tok.Pos, "trailing input starting with %s", tok)
}

func groupLimitError(tok lexer.Token) *err.Error {
	return err.Format(GroupLimitError, tok.Pos, "more than %d capturing groups", MaxGroups)
}

func nestedLookaheadError(pos int) *err.Error {
	return err.New(NestedLookaheadError, pos, "lookahead nested inside lookahead")
}

func unknownGroupError(id int) *err.Error {
	return err.Format(UnknownGroupError, -1, "reference to undefined group %d", id)
}

func lookaheadCaptureError(id int) *err.Error {
	return err.Format(LookaheadCaptureError, -1, "capturing group %d nested inside lookahead", id)
}
