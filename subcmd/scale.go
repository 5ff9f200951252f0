package subcmd

import (
	"fmt"
	"os"

	"github.com/but80/euterpe/theory"
	"github.com/but80/euterpe/viewer"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

var Scale = cli.Command{
	Name:      "scale",
	Aliases:   []string{"s"},
	Usage:     "Shows the degrees of a scale",
	ArgsUsage: "<key> [kind]",
	Flags: withCommonFlags(
		cli.BoolFlag{
			Name:  "all, a",
			Usage: `Walks the circle of fifths`,
		},
		cli.DurationFlag{
			Name:  "interval, i",
			Usage: `Redraws the tables in place at this interval`,
		},
		cli.StringFlag{
			Name:  "tuner, t",
			Usage: `Shows frequencies in a tuning system (equal|pythagorean|meantone|just)`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "scale")
			os.Exit(1)
		}
		s, err := prepare(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		sc, err := parseScale(s, ctx.Args())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		var tuner *theory.Tuner
		if system := ctx.String("tuner"); system != "" {
			if tuner, err = newTuner(s, system); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		scales := []*theory.Scale{sc}
		if ctx.Bool("all") {
			if scales, err = viewer.CircleOfFifths(sc.Kind(), sc.Key(), len(sc.Positions())); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		tables := []viewer.Printer{}
		for _, sc := range scales {
			tables = append(tables, viewer.NewScaleState(sc, tuner))
		}

		stop := make(chan struct{})
		interval := ctx.Duration("interval")
		if 0 < interval {
			closer.Bind(func() {
				close(stop)
				fmt.Println()
			})
		}
		viewer.Show(os.Stdout, tables, interval, stop)
		return nil
	},
}
