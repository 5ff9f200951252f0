package theory

import (
	"math"

	"github.com/but80/euterpe/schema"
	"github.com/pkg/errors"
)

// EqualRatios divides the octave into n equal steps.
func EqualRatios(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = math.Pow(2.0, float64(i)/float64(n))
	}
	return result
}

// stackedRatios builds a 12-step table by stacking generator five times
// downwards and six times upwards from the tonic.
func stackedRatios(generator float64) []float64 {
	result := make([]float64, 12)
	for k := -5; k <= 6; k++ {
		v := math.Pow(generator, float64(k))
		for v < 1 {
			v *= 2
		}
		for 2 <= v {
			v /= 2
		}
		i := mod(int(math.Floor(.5+12*math.Log2(v))), 12)
		result[i] = v
	}
	return result
}

// PythagoreanRatios stacks pure fifths (3:2).
func PythagoreanRatios() []float64 {
	return stackedRatios(1.5)
}

// MeantoneRatios stacks quarter-comma meantone fifths (5^(1/4)).
func MeantoneRatios() []float64 {
	return stackedRatios(math.Pow(5, .25))
}

// FiveLimitRatios returns the five-limit just intonation table.
func FiveLimitRatios() []float64 {
	return []float64{
		1,
		16.0 / 15.0,
		9.0 / 8.0,
		6.0 / 5.0,
		5.0 / 4.0,
		4.0 / 3.0,
		45.0 / 32.0,
		3.0 / 2.0,
		8.0 / 5.0,
		5.0 / 3.0,
		9.0 / 5.0,
		15.0 / 8.0,
	}
}

// Tuner maps note numbers to frequencies with a ratio table anchored at a tonic note.
type Tuner struct {
	schema  *schema.Schema
	ratios  []float64
	tonic   int
	tonicHz float64
}

// NewTuner needs one ratio per pitch class; the tonic's frequency follows from
// the schema's tuner reference in equal temperament.
func NewTuner(s *schema.Schema, ratios []float64, tonic int) (*Tuner, error) {
	if len(ratios) != s.Semitone() {
		return nil, errors.Wrapf(schema.ErrConfiguration, "%d ratios for %d semitones", len(ratios), s.Semitone())
	}
	if !s.IsNoteNumber(tonic) {
		return nil, errors.Wrapf(schema.ErrInvalidNoteNumber, "tonic %d", tonic)
	}
	n := float64(s.Semitone())
	return &Tuner{
		schema:  s,
		ratios:  append([]float64(nil), ratios...),
		tonic:   tonic,
		tonicHz: s.TunerHz() * math.Pow(2.0, float64(tonic-s.TunerNoteNumber())/n),
	}, nil
}

func NewEqualTuner(s *schema.Schema) (*Tuner, error) {
	return NewTuner(s, EqualRatios(s.Semitone()), s.ReferenceNoteNumber())
}

func NewPythagoreanTuner(s *schema.Schema) (*Tuner, error) {
	return NewTuner(s, PythagoreanRatios(), s.ReferenceNoteNumber())
}

func NewMeantoneTuner(s *schema.Schema) (*Tuner, error) {
	return NewTuner(s, MeantoneRatios(), s.ReferenceNoteNumber())
}

func NewJustIntonationTuner(s *schema.Schema) (*Tuner, error) {
	return NewTuner(s, FiveLimitRatios(), s.ReferenceNoteNumber())
}

func (t *Tuner) Schema() *schema.Schema {
	return t.schema
}

func (t *Tuner) Ratios() []float64 {
	return append([]float64(nil), t.ratios...)
}

func (t *Tuner) Tonic() int {
	return t.tonic
}

func (t *Tuner) TonicHz() float64 {
	return t.tonicHz
}

// Hz returns the frequency of a note number.
func (t *Tuner) Hz(note Integer) (float64, error) {
	n := note.Int()
	if !t.schema.IsNoteNumber(n) {
		return 0, errors.Wrapf(schema.ErrInvalidNoteNumber, "%d", n)
	}
	d := n - t.tonic
	semitone := t.schema.Semitone()
	return t.tonicHz * t.ratios[mod(d, semitone)] * math.Pow(2.0, float64(floorDiv(d, semitone))), nil
}
