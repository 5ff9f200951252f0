package theory

import (
	"strings"

	"github.com/but80/euterpe/quality"
	"github.com/but80/euterpe/schema"
	"github.com/pkg/errors"
)

// Chord is a parsed chord symbol such as "Am7(b5)/E".
type Chord struct {
	name    string
	root    *PitchClass
	on      *PitchClass
	quality *quality.Quality
}

func NewChord(s *schema.Schema, name string, opts ...Option) (*Chord, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return nil, err
	}
	name = s.Canonicalize(name)
	el := s.ParseChord(name)
	if el.Root == "" || el.Quality == nil {
		return nil, errors.Wrapf(ErrUnparsedChord, "%q (%s)", name, el)
	}
	if strings.Contains(name, "/") && el.On == "" {
		return nil, errors.Wrapf(ErrUnparsedChord, "%q has an unknown bass", name)
	}

	c := &Chord{name: name, quality: el.Quality}
	if c.root, err = NewPitchClassByName(s, el.Root, WithScale(o.scale)); err != nil {
		return nil, err
	}
	if el.On != "" {
		if c.on, err = NewPitchClassByName(s, el.On, WithScale(o.scale)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Chord) Name() string {
	return c.name
}

func (c *Chord) Root() *PitchClass {
	return c.root
}

// On returns the bass given after "/", or nil.
func (c *Chord) On() *PitchClass {
	return c.on
}

func (c *Chord) Quality() *quality.Quality {
	return c.quality
}

// Components lists the chord tones from the root upwards.
// A bass given after "/" comes first and is not repeated.
func (c *Chord) Components() []*PitchClass {
	result := []*PitchClass{}
	if c.on != nil {
		result = append(result, c.on)
	}
	for _, v := range c.quality.Intervals {
		var p *PitchClass
		if v == 0 {
			p = c.root
		} else {
			p = c.root.Add(Semitones(v))
		}
		if c.on != nil && p.Equal(c.on) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (c *Chord) String() string {
	return c.name
}
