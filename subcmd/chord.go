package subcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/but80/euterpe/schema"
	"github.com/but80/euterpe/theory"
	"github.com/but80/euterpe/util"
	"github.com/urfave/cli"
)

var Chord = cli.Command{
	Name:      "chord",
	Aliases:   []string{"c"},
	Usage:     "Parses chord symbols and lists their tones",
	ArgsUsage: "<name>...",
	Flags: withCommonFlags(
		cli.StringFlag{
			Name:  "scale, s",
			Usage: `Spells the tones in a scale, e.g. "Eb minor"`,
		},
		cli.BoolFlag{
			Name:  "qualities, l",
			Usage: `Lists every known chord quality`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 && !ctx.Bool("qualities") {
			cli.ShowCommandHelp(ctx, "chord")
			os.Exit(1)
		}
		s, err := prepare(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if ctx.Bool("qualities") {
			printQualities(os.Stdout, s)
			return nil
		}
		opts := []theory.Option{}
		if name := ctx.String("scale"); name != "" {
			sc, err := parseScale(s, strings.Fields(name))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			opts = append(opts, theory.WithScale(sc))
		}
		for _, name := range ctx.Args() {
			c, err := theory.NewChord(s, name, opts...)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			printChord(os.Stdout, c)
		}
		return nil
	},
}

func printChord(w io.Writer, c *theory.Chord) {
	on := "-"
	if c.On() != nil {
		on = spell(c.On())
	}
	tones := []string{}
	for _, p := range c.Components() {
		tones = append(tones, spell(p))
	}
	body := strings.Join([]string{
		"root:       " + spell(c.Root()),
		"on:         " + on,
		fmt.Sprintf("quality:    %s %v", util.OrDash(c.Quality().Name), c.Quality().Intervals),
		"components: " + strings.Join(tones, " "),
	}, "\n")
	fmt.Fprintf(w, "%s\n%s\n", c, util.Indent(body, "  "))
}

func printQualities(w io.Writer, s *schema.Schema) {
	for _, q := range s.Qualities().All() {
		fmt.Fprintf(w, "%-12s %v\n", util.OrDash(q.Name), q.Intervals)
	}
}
