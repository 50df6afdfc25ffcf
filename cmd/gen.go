package cmd

import (
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/regram/cfg"
	"github.com/arr-ai/regram/regram"
)

var pkgName string
var outFile string
var genCommand = cli.Command{
	Name:    "gen",
	Aliases: []string{"g"},
	Usage:   "Generate Go source for a compiled grammar",
	Action:  gen,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "input",
			Usage:       "input pattern file (defaults to stdin)",
			Required:    false,
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.StringFlag{
			Name:        "pkg",
			Usage:       "name of the generated package",
			Required:    true,
			TakesFile:   false,
			Destination: &pkgName,
		},
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			Required:    false,
			TakesFile:   false,
			Destination: &outFile,
		},
	},
}

func gen(c *cli.Context) error {
	pattern, err := readPattern()
	if err != nil {
		return err
	}
	g, err := regram.Compile(pattern)
	if err != nil {
		return err
	}
	out, err := cfg.GoSource(pkgName, g)
	if err != nil {
		return err
	}

	switch outFile {
	case "", "-":
		os.Stdout.Write(out)
	default:
		return ioutil.WriteFile(outFile, out, 0644)
	}

	return nil
}
