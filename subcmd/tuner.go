package subcmd

import (
	"fmt"
	"os"

	"github.com/but80/euterpe/viewer"
	"github.com/urfave/cli"
)

var Tuner = cli.Command{
	Name:    "tuner",
	Aliases: []string{"t"},
	Usage:   "Shows the frequencies of one octave in a tuning system",
	Flags: withCommonFlags(
		cli.StringFlag{
			Name:  "system, y",
			Usage: `Tuning system (equal|pythagorean|meantone|just|all)`,
			Value: "equal",
		},
		cli.IntFlag{
			Name:  "octave, o",
			Usage: `Octave shift from the reference note`,
		},
	),
	Action: func(ctx *cli.Context) error {
		s, err := prepare(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		systems := []string{ctx.String("system")}
		if systems[0] == "all" {
			systems = tunerSystems
		}
		tables := []viewer.Printer{}
		for _, system := range systems {
			tuner, err := newTuner(s, system)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			title := fmt.Sprintf("%s (%s, tonic %.3f Hz)", system, s, tuner.TonicHz())
			ts, err := viewer.NewTunerState(title, tuner, ctx.Int("octave"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			tables = append(tables, ts)
		}
		viewer.Show(os.Stdout, tables, 0, nil)
		return nil
	},
}
