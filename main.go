package main

import (
	"os"

	"github.com/but80/euterpe/subcmd"
	"github.com/fatih/color"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	closer.Bind(func() {
		color.Unset()
	})
	defer closer.Close()

	app := cli.NewApp()
	app.Name = "euterpe"
	app.Version = version
	app.Usage = "Spells, analyses and tunes pitches in any equal temperament"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "euterpe"

	app.Commands = []cli.Command{
		subcmd.Scale,
		subcmd.Chord,
		subcmd.Note,
		subcmd.Tuner,
		subcmd.Dump,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
