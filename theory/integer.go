// Package theory provides pitch classes, notes, keys, scales, chords and tuners
// bound to a schema.
package theory

import (
	"github.com/but80/euterpe/schema"
	"github.com/pkg/errors"
)

var (
	// ErrUnparsedChord reports a chord symbol whose root or quality is unknown.
	ErrUnparsedChord = errors.New("unparsed chord")
	// ErrSchemaMismatch reports entities derived from different settings.
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// Integer is anything that can be used as a step count: a plain Semitones value or an entity.
type Integer interface {
	Int() int
}

// Semitones is a distance in steps of the schema's resolution.
type Semitones int

func (s Semitones) Int() int {
	return int(s)
}

type options struct {
	scale *Scale
}

type Option func(*options)

// WithScale spells the entity after its degree in sc.
func WithScale(sc *Scale) Option {
	return func(o *options) {
		o.scale = sc
	}
}

func buildOptions(s *schema.Schema, opts []Option) (options, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale != nil && !o.scale.Schema().Equal(s) {
		return o, errors.Wrapf(ErrSchemaMismatch, "scale %s belongs to %s", o.scale, o.scale.Schema())
	}
	return o, nil
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func nonEmpty(names []string) []string {
	result := []string{}
	for _, name := range names {
		if name != "" {
			result = append(result, name)
		}
	}
	return result
}
