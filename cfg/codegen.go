package cfg

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
)

// GoName converts a nonterminal name into an exported Go identifier.
func GoName(nt string) string {
	return strcase.ToCamel(strings.ToLower(nt))
}

type goGrammar struct {
	Pkg   string
	Start string
	Names []goName
	Rules []goRule
}

type goName struct {
	Ident string
	NT    string
}

type goRule struct {
	Ident   string
	Symbols string
}

var srcTemplate = template.Must(template.New("grammar").Parse(`// Code generated by regram gen. DO NOT EDIT.

package {{.Pkg}}

import "github.com/arr-ai/regram/cfg"

// Nonterminal names of the generated grammar.
const (
{{- range .Names}}
	{{.Ident}} = "{{.NT}}"
{{- end}}
)

// Grammar reconstructs the generated grammar.
func Grammar() *cfg.Grammar {
	g := cfg.NewGrammar({{.Start}})
{{- range .Rules}}
	g.Add({{.Ident}}, cfg.Production{ {{- .Symbols -}} })
{{- end}}
	return g
}
`))

// GoSource renders g as a Go file declaring the grammar as a literal, ready
// to embed in another program. The output is gofmt-formatted.
func GoSource(pkg string, g *Grammar) ([]byte, error) {
	data := goGrammar{Pkg: pkg, Start: GoName(g.Start())}
	for _, nt := range g.NonTerminals() {
		data.Names = append(data.Names, goName{Ident: GoName(nt), NT: nt})
		for _, prod := range g.Productions(nt) {
			data.Rules = append(data.Rules, goRule{
				Ident:   GoName(nt),
				Symbols: goSymbols(prod),
			})
		}
	}
	var buf bytes.Buffer
	if err := srcTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func goSymbols(prod Production) string {
	syms := make([]string, 0, len(prod))
	for _, sym := range prod {
		if terminal(sym) {
			syms = append(syms, fmt.Sprintf("%q", sym))
		} else {
			syms = append(syms, GoName(sym))
		}
	}
	return strings.Join(syms, ", ")
}
