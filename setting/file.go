package setting

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type fileAccidental struct {
	Limit  *int `yaml:"limit"`
	Symbol struct {
		Sharp *string `yaml:"sharp"`
		Flat  *string `yaml:"flat"`
	} `yaml:"symbol"`
}

type fileReference struct {
	Number *int     `yaml:"number"`
	Hz     *float64 `yaml:"hz,omitempty"`
}

// file mirrors the nested layout of a setting document.
type file struct {
	PitchClass struct {
		Semitone   *int           `yaml:"semitone"`
		Intervals  []int          `yaml:"intervals"`
		Symbols    []string       `yaml:"symbols"`
		Accidental fileAccidental `yaml:"accidental"`
	} `yaml:"pitchclass"`
	Note struct {
		Presentation struct {
			Symbols   []string      `yaml:"symbols"`
			Reference fileReference `yaml:"reference"`
		} `yaml:"presentation"`
		Tuner struct {
			Reference fileReference `yaml:"reference"`
		} `yaml:"tuner"`
	} `yaml:"note"`
}

// Parse reads a YAML setting document. Keys left out fall back to TET12.
func Parse(data []byte) (Setting, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Setting{}, errors.Wrap(err, "parsing setting")
	}

	s := TET12()
	pc := f.PitchClass
	if pc.Semitone != nil {
		s.Semitone = *pc.Semitone
		s.Intervals = nil
	}
	if pc.Symbols != nil {
		s.Symbols = pc.Symbols
		s.Intervals = nil
	}
	if pc.Intervals != nil {
		s.Intervals = pc.Intervals
	}
	if pc.Accidental.Limit != nil {
		s.AccidentalLimit = *pc.Accidental.Limit
	}
	if pc.Accidental.Symbol.Sharp != nil {
		s.Sharp = *pc.Accidental.Symbol.Sharp
	}
	if pc.Accidental.Symbol.Flat != nil {
		s.Flat = *pc.Accidental.Symbol.Flat
	}

	pr := f.Note.Presentation
	if pr.Symbols != nil {
		s.Templates = pr.Symbols
	}
	if pr.Reference.Number != nil {
		s.ReferenceNoteNumber = *pr.Reference.Number
	}
	tr := f.Note.Tuner.Reference
	if tr.Number != nil {
		s.TunerNoteNumber = *tr.Number
	}
	if tr.Hz != nil {
		s.TunerHz = *tr.Hz
	}

	if err := s.Validate(); err != nil {
		return Setting{}, err
	}
	return s, nil
}

// Load reads a setting document from a file.
func Load(path string) (Setting, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return Setting{}, errors.WithStack(err)
	}
	s, err := Parse(b)
	if err != nil {
		return Setting{}, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}

// Marshal writes s in the document layout Parse accepts.
func Marshal(s Setting) ([]byte, error) {
	var f file
	n := s.Normalize()
	f.PitchClass.Semitone = &n.Semitone
	f.PitchClass.Intervals = n.Intervals
	f.PitchClass.Symbols = n.Symbols
	f.PitchClass.Accidental.Limit = &n.AccidentalLimit
	f.PitchClass.Accidental.Symbol.Sharp = &n.Sharp
	f.PitchClass.Accidental.Symbol.Flat = &n.Flat
	f.Note.Presentation.Symbols = n.Templates
	f.Note.Presentation.Reference.Number = &n.ReferenceNoteNumber
	f.Note.Tuner.Reference.Number = &n.TunerNoteNumber
	f.Note.Tuner.Reference.Hz = &n.TunerHz
	b, err := yaml.Marshal(&f)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}
