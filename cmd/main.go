package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "regram"
	app.Usage = "turn restricted regular expressions into context-free grammars"
	app.Version = info.Version

	app.Commands = []cli.Command{buildCommand, genCommand}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}
