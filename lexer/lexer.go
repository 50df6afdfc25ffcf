// Package lexer turns a pattern into a token stream.
package lexer

import (
	err "github.com/arr-ai/regram/errors"
)

// Error codes used by the lexer:
const (
	// WrongCharError indicates a character outside the pattern alphabet.
	WrongCharError = err.LexicalErrors + iota

	// BadGroupError indicates a malformed `(?` construct: the `?` is
	// followed by anything other than `:`, `=` or a single decimal digit,
	// or the pattern ends after it.
	BadGroupError
)

// Tokenize scans pattern left to right. One character of lookahead decides
// every token, so a failure is reported at the first offending offset.
func Tokenize(pattern string) ([]Token, error) {
	tokens := make([]Token, 0, len(pattern))
	for pos := 0; pos < len(pattern); {
		c := pattern[pos]
		switch {
		case c == '(':
			if pos+1 < len(pattern) && pattern[pos+1] == '?' {
				if pos+2 >= len(pattern) {
					return nil, badGroupError(pos)
				}
				switch m := pattern[pos+2]; {
				case m == ':':
					tokens = append(tokens, Token{Kind: NonCapGroupOpen, Pos: pos})
				case m == '=':
					tokens = append(tokens, Token{Kind: LookaheadOpen, Pos: pos})
				case m >= '0' && m <= '9':
					tokens = append(tokens, Token{Kind: BackrefOpen, Group: int(m - '0'), Pos: pos})
				default:
					return nil, badGroupError(pos)
				}
				pos += 3
			} else {
				tokens = append(tokens, Token{Kind: GroupOpen, Pos: pos})
				pos++
			}
		case c == ')':
			tokens = append(tokens, Token{Kind: Close, Pos: pos})
			pos++
		case c == '|':
			tokens = append(tokens, Token{Kind: Alt, Pos: pos})
			pos++
		case c == '*':
			tokens = append(tokens, Token{Kind: Star, Pos: pos})
			pos++
		case c >= 'a' && c <= 'z':
			tokens = append(tokens, Token{Kind: Char, Char: c, Pos: pos})
			pos++
		default:
			return nil, wrongCharError(pos, c)
		}
	}
	return tokens, nil
}

func wrongCharError(pos int, c byte) *err.Error {
	return err.Format(WrongCharError, pos, "unexpected character %q", c)
}

func badGroupError(pos int) *err.Error {
	return err.New(BadGroupError, pos, "malformed (? construct")
}
