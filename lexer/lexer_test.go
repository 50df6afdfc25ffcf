package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	err "github.com/arr-ai/regram/errors"
)

func TestTokenizeLiterals(t *testing.T) {
	tokens, e := Tokenize("a(b|c)*")
	require.NoError(t, e)
	assert.Equal(t, []Token{
		{Kind: Char, Char: 'a', Pos: 0},
		{Kind: GroupOpen, Pos: 1},
		{Kind: Char, Char: 'b', Pos: 2},
		{Kind: Alt, Pos: 3},
		{Kind: Char, Char: 'c', Pos: 4},
		{Kind: Close, Pos: 5},
		{Kind: Star, Pos: 6},
	}, tokens)
}

func TestTokenizeConstructs(t *testing.T) {
	tokens, e := Tokenize("(?:x)(?=y)(?1)")
	require.NoError(t, e)
	assert.Equal(t, []Token{
		{Kind: NonCapGroupOpen, Pos: 0},
		{Kind: Char, Char: 'x', Pos: 3},
		{Kind: Close, Pos: 4},
		{Kind: LookaheadOpen, Pos: 5},
		{Kind: Char, Char: 'y', Pos: 8},
		{Kind: Close, Pos: 9},
		{Kind: BackrefOpen, Group: 1, Pos: 10},
		{Kind: Close, Pos: 13},
	}, tokens)
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, e := Tokenize("")
	require.NoError(t, e)
	assert.Empty(t, tokens)
}

func TestTokenizeErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		code  int
		pos   int
	}{
		{"A", WrongCharError, 0},
		{"1", WrongCharError, 0},
		{"a b", WrongCharError, 1},
		{"ab.", WrongCharError, 2},
		{"(?", BadGroupError, 0},
		{"a(?", BadGroupError, 1},
		{"(?x)", BadGroupError, 0},
		{"(?-1)", BadGroupError, 0},
		// a multi-digit reference lexes as (?1 followed by a stray digit
		{"(?10)", WrongCharError, 3},
	} {
		t.Run(test.input, func(t *testing.T) {
			_, e := Tokenize(test.input)
			require.Error(t, e)
			var lexErr *err.Error
			require.ErrorAs(t, e, &lexErr)
			assert.Equal(t, test.code, lexErr.Code)
			assert.Equal(t, test.pos, lexErr.Pos)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "(?:", NonCapGroupOpen.String())
	assert.Equal(t, `char 'z'`, Token{Kind: Char, Char: 'z'}.String())
	assert.Equal(t, "(?3", Token{Kind: BackrefOpen, Group: 3}.String())
}
