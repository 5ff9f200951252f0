package theory

import (
	"fmt"
	"strconv"

	"github.com/but80/euterpe/schema"
	"github.com/pkg/errors"
)

// PitchClass is a pitch regardless of its octave.
type PitchClass struct {
	schema     *schema.Schema
	pitchClass int
	pitchName  string
	pitchNames []string
	scale      *Scale
}

func NewPitchClass(s *schema.Schema, pc int, opts ...Option) (*PitchClass, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return nil, err
	}
	names, err := s.ConvertPitchClassToPitchNames(pc)
	if err != nil {
		return nil, err
	}
	p := &PitchClass{schema: s, pitchClass: pc, pitchNames: names}
	p.respell(o.scale)
	return p, nil
}

func NewPitchClassByName(s *schema.Schema, name string, opts ...Option) (*PitchClass, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return nil, err
	}
	pc, err := s.ConvertPitchNameToPitchClass(name)
	if err != nil {
		return nil, err
	}
	names, _ := s.ConvertPitchClassToPitchNames(pc)
	p := &PitchClass{schema: s, pitchClass: pc, pitchName: name, pitchNames: names}
	p.respell(o.scale)
	return p, nil
}

// respell names p after its degree in sc. Pitch classes outside sc, or whose degree
// needs more accidentals than the schema allows, keep their name and get no scale.
func (p *PitchClass) respell(sc *Scale) {
	if sc == nil {
		return
	}
	offset, ok := sc.offsetOf(p.pitchClass)
	if !ok {
		return
	}
	name, err := p.schema.ConvertPitchClassToPitchName(p.pitchClass, offset)
	if err != nil || name == "" {
		return
	}
	p.pitchName = name
	p.scale = sc
}

func (p *PitchClass) Schema() *schema.Schema {
	return p.schema
}

func (p *PitchClass) Int() int {
	return p.pitchClass
}

func (p *PitchClass) PitchClass() int {
	return p.pitchClass
}

// PitchName returns the chosen spelling, or "" when none has been chosen.
func (p *PitchClass) PitchName() string {
	return p.pitchName
}

// PitchNames lists every spelling of the pitch class from the flattest to the sharpest.
func (p *PitchClass) PitchNames() []string {
	return nonEmpty(p.pitchNames)
}

func (p *PitchClass) Scale() *Scale {
	return p.scale
}

// WithPitchName returns a copy spelled as name, which must be an enharmonic of p.
func (p *PitchClass) WithPitchName(name string) (*PitchClass, error) {
	for _, n := range p.pitchNames {
		if n != "" && n == name {
			q := *p
			q.pitchName = name
			return &q, nil
		}
	}
	return nil, errors.Wrapf(schema.ErrInvalidPitchName, "%q does not spell pitch class %d", name, p.pitchClass)
}

func (p *PitchClass) Add(other Integer) *PitchClass {
	return p.shifted(other.Int())
}

func (p *PitchClass) Sub(other Integer) *PitchClass {
	return p.shifted(-other.Int())
}

func (p *PitchClass) shifted(delta int) *PitchClass {
	pc := mod(p.pitchClass+delta, p.schema.Semitone())
	names, _ := p.schema.ConvertPitchClassToPitchNames(pc)
	q := &PitchClass{schema: p.schema, pitchClass: pc, pitchNames: names}
	q.respell(p.scale)
	return q
}

func (p *PitchClass) Equal(other Integer) bool {
	return other != nil && p.pitchClass == other.Int()
}

func (p *PitchClass) String() string {
	if p.pitchName != "" {
		return p.pitchName
	}
	return strconv.Itoa(p.pitchClass)
}

func (p *PitchClass) GoString() string {
	return fmt.Sprintf("<PitchClass: %s %q>", p, p.PitchNames())
}
