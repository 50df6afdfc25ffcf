package cfg

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/arr-ai/regram/lexer"
	"github.com/arr-ai/regram/parser"
)

func build(c *qt.C, pattern string) *Grammar {
	tokens, err := lexer.Tokenize(pattern)
	c.Assert(err, qt.IsNil)
	p := parser.New(tokens)
	root, err := p.Parse()
	c.Assert(err, qt.IsNil)
	g, err := NewBuilder(p.Groups()).Build(root)
	c.Assert(err, qt.IsNil)
	return g
}

var buildTests = []struct {
	testName string
	pattern  string
	expect   string
}{{
	testName: "single-char",
	pattern:  "a",
	expect: `CHAR1 -> a
S -> CHAR1
`,
}, {
	testName: "linear-concat",
	pattern:  "abc",
	expect: `CHAR1 -> a
CHAR2 -> b
CHAR3 -> c
C1 -> CHAR1 CHAR2 CHAR3
S -> C1
`,
}, {
	testName: "star",
	pattern:  "a*",
	expect: `CHAR1 -> a
R1 -> ε
R1 -> R1 CHAR1
S -> R1
`,
}, {
	testName: "double-star",
	pattern:  "a**",
	expect: `CHAR1 -> a
R2 -> ε
R2 -> R2 CHAR1
R1 -> ε
R1 -> R1 R2
S -> R1
`,
}, {
	testName: "alternation",
	pattern:  "a|b",
	expect: `CHAR1 -> a
A1 -> CHAR1
A1 -> CHAR2
CHAR2 -> b
S -> A1
`,
}, {
	testName: "noncap-group",
	pattern:  "(?:a)",
	expect: `CHAR1 -> a
N1 -> CHAR1
S -> N1
`,
}, {
	testName: "group-and-backref-share-nonterminal",
	pattern:  "(a)(?1)",
	expect: `CHAR1 -> a
G1 -> CHAR1
C1 -> G1 G1
S -> C1
`,
}, {
	testName: "lookahead-erased",
	pattern:  "(?=a)b",
	expect: `LA1 -> ε
CHAR1 -> b
C1 -> LA1 CHAR1
S -> C1
`,
}, {
	testName: "empty-group-body",
	pattern:  "()",
	expect: `C1 -> ε
G1 -> C1
S -> G1
`,
}, {
	testName: "forward-reference",
	pattern:  "(?2)(a)(b)",
	expect: `CHAR1 -> b
G2 -> CHAR1
G2 -> CHAR3
CHAR2 -> a
G1 -> CHAR2
CHAR3 -> b
C1 -> G2 G1 G2
S -> C1
`,
}, {
	testName: "self-reference",
	pattern:  "(a(?1))",
	expect: `CHAR1 -> a
C1 -> CHAR1 G1
G1 -> C1
S -> G1
`,
}, {
	testName: "star-over-group",
	pattern:  "(a)*",
	expect: `CHAR1 -> a
G1 -> CHAR1
R1 -> ε
R1 -> R1 G1
S -> R1
`,
}}

func TestBuild(t *testing.T) {
	c := qt.New(t)
	for _, test := range buildTests {
		c.Run(test.testName, func(c *qt.C) {
			g := build(c, test.pattern)
			c.Assert(g.String(), qt.Equals, test.expect)
			c.Assert(g.Start(), qt.Equals, "S")
			c.Assert(g.Undefined(), qt.HasLen, 0)
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	c := qt.New(t)
	for _, pattern := range []string{"((a)|(?3)b)(c)*", "(?=x)(y|z*)(?1)"} {
		first := build(c, pattern).String()
		second := build(c, pattern).String()
		c.Assert(second, qt.Equals, first)
	}
}

func TestGrammarAccessors(t *testing.T) {
	c := qt.New(t)
	g := build(c, "a|b")
	c.Assert(g.NonTerminals(), qt.DeepEquals, []string{"CHAR1", "A1", "CHAR2", "S"})
	c.Assert(g.Productions("A1"), qt.DeepEquals, []Production{{"CHAR1"}, {"CHAR2"}})
	c.Assert(g.Productions("missing"), qt.HasLen, 0)
	c.Assert(Production{}.String(), qt.Equals, Epsilon)
	c.Assert(Production{"A1", "a"}.String(), qt.Equals, "A1 a")
}
