package cmd

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/regram/regram"
)

var inFile string
var verboseMode bool
var buildCommand = cli.Command{
	Name:    "build",
	Aliases: []string{"b"},
	Usage:   "Build a grammar from a pattern",
	Action:  build,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "input",
			Usage:       "input pattern file (defaults to stdin)",
			Required:    false,
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Required:    false,
			Destination: &verboseMode,
		},
	},
}

// readPattern reads the first line of the input source.
func readPattern() (string, error) {
	var line string
	switch inFile {
	case "", "-":
		var err error
		line, err = bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
	default:
		buf, err := ioutil.ReadFile(inFile)
		if err != nil {
			return "", err
		}
		line = string(buf)
	}
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line), nil
}

func build(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	pattern, err := readPattern()
	if err != nil {
		return err
	}
	logrus.Tracef("pattern: %q", pattern)

	g, err := regram.Compile(pattern)
	if err != nil {
		fmt.Println("ERROR:", err)
		return nil
	}
	fmt.Println("OK.")
	fmt.Print(g)
	return nil
}
