package subcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/but80/euterpe/schema"
	"github.com/but80/euterpe/theory"
	"github.com/but80/euterpe/util"
	"github.com/urfave/cli"
)

var Note = cli.Command{
	Name:      "note",
	Aliases:   []string{"n"},
	Usage:     "Shows the spellings and the frequency of notes",
	ArgsUsage: "<number|name>...",
	Flags: withCommonFlags(
		cli.StringFlag{
			Name:  "scale, s",
			Usage: `Spells the notes in a scale, e.g. "C locrian"`,
		},
		cli.StringFlag{
			Name:  "tuner, t",
			Usage: `Tuning system (equal|pythagorean|meantone|just)`,
			Value: "equal",
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "note")
			os.Exit(1)
		}
		s, err := prepare(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		tuner, err := newTuner(s, ctx.String("tuner"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		opts := []theory.Option{}
		if name := ctx.String("scale"); name != "" {
			sc, err := parseScale(s, strings.Fields(name))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			opts = append(opts, theory.WithScale(sc))
		}
		for _, arg := range ctx.Args() {
			n, err := parseNote(s, arg, opts...)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if err := printNote(os.Stdout, n, tuner); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		return nil
	},
}

// parseNote accepts a note number or a note name.
func parseNote(s *schema.Schema, arg string, opts ...theory.Option) (*theory.Note, error) {
	if number, err := strconv.Atoi(arg); err == nil {
		return theory.NewNote(s, number, opts...)
	}
	return theory.NewNoteByName(s, s.Canonicalize(arg), opts...)
}

func printNote(w io.Writer, n *theory.Note, tuner *theory.Tuner) error {
	hz, err := tuner.Hz(n)
	if err != nil {
		return err
	}
	body := strings.Join([]string{
		fmt.Sprintf("number:      %d", n.NoteNumber()),
		"spellings:   " + strings.Join(n.NoteNames(), " "),
		fmt.Sprintf("pitch class: %d (%s)", n.PitchClass().Int(), spell(n.PitchClass())),
		fmt.Sprintf("frequency:   %.3f Hz", hz),
	}, "\n")
	fmt.Fprintf(w, "%s\n%s\n", n, util.Indent(body, "  "))
	return nil
}
