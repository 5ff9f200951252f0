package subcmd

import (
	"strings"

	"github.com/but80/euterpe/log"
	"github.com/but80/euterpe/schema"
	"github.com/but80/euterpe/setting"
	"github.com/but80/euterpe/theory"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var commonFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "setting, S",
		Usage: `Loads the tuning setting from a YAML file`,
	},
	cli.BoolFlag{
		Name:  "tet24",
		Usage: `Uses the 24-TET preset instead of 12-TET`,
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

func withCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, commonFlags...)
}

// prepare applies the log flags and returns the schema selected by --setting / --tet24.
func prepare(ctx *cli.Context) (*schema.Schema, error) {
	log.SetLevelByFlags(ctx.Bool("debug"), ctx.Bool("silent"), ctx.Bool("quiet"))
	s := setting.TET12()
	if ctx.Bool("tet24") {
		s = setting.TET24()
	}
	if path := ctx.String("setting"); path != "" {
		loaded, err := setting.Load(path)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded %s from %s", loaded, path)
		s = loaded
	}
	return schema.Get(s)
}

// scaleKind finds a predefined kind and scales it to the resolution of s.
func scaleKind(s *schema.Schema, name string) (theory.ScaleKind, error) {
	kind, ok := theory.FindScaleKind(name)
	if !ok {
		names := []string{}
		for _, k := range theory.ScaleKinds {
			names = append(names, k.Name)
		}
		return kind, errors.Errorf("unknown scale kind %q (one of %s)", name, strings.Join(names, ", "))
	}
	if 12 < s.Semitone() && s.Semitone()%12 == 0 {
		kind = kind.Scaled(s.Semitone() / 12)
	}
	return kind, nil
}

// parseScale reads "<key> [kind]", e.g. "Eb minor". The kind defaults to major.
func parseScale(s *schema.Schema, args []string) (*theory.Scale, error) {
	if len(args) == 0 {
		return nil, errors.New("no key given")
	}
	kindName := theory.Major.Name
	if 1 < len(args) {
		kindName = strings.Join(args[1:], "")
	}
	kind, err := scaleKind(s, kindName)
	if err != nil {
		return nil, err
	}
	return theory.NewScaleByName(s, kind, s.Canonicalize(args[0]))
}

var tunerSystems = []string{"equal", "pythagorean", "meantone", "just"}

func newTuner(s *schema.Schema, system string) (*theory.Tuner, error) {
	switch strings.ToLower(system) {
	case "equal":
		return theory.NewEqualTuner(s)
	case "pythagorean":
		return theory.NewPythagoreanTuner(s)
	case "meantone":
		return theory.NewMeantoneTuner(s)
	case "just":
		return theory.NewJustIntonationTuner(s)
	}
	return nil, errors.Errorf("unknown tuning system %q (one of %s)", system, strings.Join(tunerSystems, ", "))
}

// spell returns the chosen spelling of p or, when none is chosen, the spellings
// with the fewest accidentals, flat first.
func spell(p *theory.PitchClass) string {
	if p.PitchName() != "" {
		return p.PitchName()
	}
	s := p.Schema()
	for n := 0; n <= s.AccidentalLimit(); n++ {
		names := []string{}
		for _, acc := range []int{-n, n} {
			name, _ := s.ConvertPitchClassToPitchName(p.PitchClass(), acc)
			if name != "" && (len(names) == 0 || names[0] != name) {
				names = append(names, name)
			}
		}
		if 0 < len(names) {
			return strings.Join(names, "/")
		}
	}
	return p.String()
}
