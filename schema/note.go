package schema

import (
	"strings"

	"github.com/but80/euterpe/setting"
	"github.com/pkg/errors"
)

const (
	placeholder      = "<N>"
	placeholderLower = "<n>"
)

// template is a per-octave note name pattern such as "<N>4" or Helmholtz-style "<n>'".
type template struct {
	prefix, suffix string
	lower          bool
}

func parseTemplate(t string) (template, error) {
	upper := strings.Count(t, placeholder)
	lower := strings.Count(t, placeholderLower)
	if upper+lower != 1 {
		return template{}, errors.Wrapf(ErrTemplate, "%q has %d placeholders", t, upper+lower)
	}
	token := placeholder
	if lower == 1 {
		token = placeholderLower
	}
	i := strings.Index(t, token)
	return template{
		prefix: t[:i],
		suffix: t[i+len(token):],
		lower:  lower == 1,
	}, nil
}

func (t template) apply(symbol, accidentals string) string {
	if t.lower {
		symbol = strings.ToLower(symbol)
	}
	return t.prefix + symbol + accidentals + t.suffix
}

type noteSpelling struct {
	number    int
	pitchName string
	octave    int
}

// noteSchema maps note numbers to octave-qualified spellings and back.
type noteSchema struct {
	semitone  int
	limit     int
	templates []template

	numberToNames map[int][]string
	nameToNumber  map[string]noteSpelling
}

func newNoteSchema(s setting.Setting, pcs *pitchClassSchema) (*noteSchema, error) {
	templates := make([]template, len(s.Templates))
	for i, t := range s.Templates {
		tt, err := parseTemplate(t)
		if err != nil {
			return nil, errors.Wrapf(err, "octave %d", i)
		}
		templates[i] = tt
	}

	ns := &noteSchema{
		semitone:      pcs.semitone,
		limit:         pcs.limit,
		templates:     templates,
		numberToNames: map[int][]string{},
		nameToNumber:  map[string]noteSpelling{},
	}

	count := pcs.semitone * len(templates)
	for number := 0; number < count; number++ {
		octave := number / pcs.semitone
		pitchNames := pcs.classToNames[number%pcs.semitone]
		names := make([]string, len(pitchNames))
		for i, pitchName := range pitchNames {
			if pitchName == "" {
				continue
			}
			sp := pcs.nameToClass[pitchName]
			name := templates[octave].apply(sp.symbol, accidentalString(sp.accidental, pcs.sharp, pcs.flat))
			if prev, dup := ns.nameToNumber[name]; dup {
				return nil, errors.Wrapf(ErrConfiguration, "note name %q is shared by %d and %d", name, prev.number, number)
			}
			names[i] = name
			ns.nameToNumber[name] = noteSpelling{number: number, pitchName: pitchName, octave: octave}
		}
		ns.numberToNames[number] = names
	}
	return ns, nil
}

func (ns *noteSchema) isNoteNumber(v int) bool {
	_, ok := ns.numberToNames[v]
	return ok
}

func (ns *noteSchema) isNoteName(v string) bool {
	_, ok := ns.nameToNumber[v]
	return ok
}

func (ns *noteSchema) convertNoteNumberToNoteNames(number int) ([]string, error) {
	names, ok := ns.numberToNames[number]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidNoteNumber, "%d", number)
	}
	return append([]string(nil), names...), nil
}

func (ns *noteSchema) convertNoteNameToNoteNumber(name string) (int, error) {
	sp, ok := ns.nameToNumber[name]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidNoteName, "%q", name)
	}
	return sp.number, nil
}
