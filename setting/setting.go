// Package setting holds the tuning and naming configuration every schema is derived from.
package setting

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalid is the cause of every error returned by Validate.
var ErrInvalid = errors.New("invalid setting")

// Setting describes one tuning/naming system.
// It is a value: copy it freely, but do not mutate the slices of a Setting
// that has already been handed to a schema.
type Setting struct {
	// Semitone is the number of equal steps per octave.
	Semitone int
	// Intervals is the reference (diatonic) step pattern between consecutive Symbols.
	// When empty it is derived from Semitone and len(Symbols).
	Intervals []int
	// Symbols are the natural letters in ascending order.
	Symbols []string

	AccidentalLimit int
	Sharp           string
	Flat            string

	// Templates holds one note name template per octave, each with a single
	// "<N>" or "<n>" placeholder.
	Templates []string

	ReferenceNoteNumber int
	TunerNoteNumber     int
	TunerHz             float64
}

func diatonicIntervals() []int {
	return []int{2, 2, 1, 2, 2, 2, 1}
}

// DefaultIntervals returns the step pattern used when a setting leaves Intervals empty.
func DefaultIntervals(semitone, symbols int) []int {
	if symbols <= 0 || semitone <= 0 {
		return nil
	}
	if symbols == 7 && semitone%12 == 0 {
		result := diatonicIntervals()
		for i := range result {
			result[i] *= semitone / 12
		}
		return result
	}
	result := make([]int, symbols)
	for i := range result {
		result[i] = (i+1)*semitone/symbols - i*semitone/symbols
	}
	return result
}

// Normalize returns a deep copy with Intervals filled in.
func (s Setting) Normalize() Setting {
	n := s
	n.Symbols = append([]string(nil), s.Symbols...)
	n.Templates = append([]string(nil), s.Templates...)
	if len(s.Intervals) == 0 {
		n.Intervals = DefaultIntervals(s.Semitone, len(s.Symbols))
	} else {
		n.Intervals = append([]int(nil), s.Intervals...)
	}
	return n
}

// Positions returns the offset of each natural symbol from the first one.
func (s Setting) Positions() []int {
	intervals := s.Normalize().Intervals
	if len(intervals) == 0 {
		return nil
	}
	result := make([]int, len(intervals))
	for i := 1; i < len(intervals); i++ {
		result[i] = result[i-1] + intervals[i-1]
	}
	return result
}

// Key is a canonical representation; equal keys mean interchangeable settings.
func (s Setting) Key() string {
	n := s.Normalize()
	ints := func(a []int) string {
		items := make([]string, len(a))
		for i, v := range a {
			items[i] = fmt.Sprint(v)
		}
		return strings.Join(items, ",")
	}
	strs := func(a []string) string {
		return fmt.Sprintf("%q", a)
	}
	return fmt.Sprintf(
		"semitone=%d;intervals=%s;symbols=%s;limit=%d;sharp=%q;flat=%q;templates=%s;ref=%d;tuner=%d@%g",
		n.Semitone,
		ints(n.Intervals),
		strs(n.Symbols),
		n.AccidentalLimit,
		n.Sharp,
		n.Flat,
		strs(n.Templates),
		n.ReferenceNoteNumber,
		n.TunerNoteNumber,
		n.TunerHz,
	)
}

func (s Setting) Equal(other Setting) bool {
	return s.Key() == other.Key()
}

func (s Setting) String() string {
	return fmt.Sprintf("Setting(%d-TET, %s, limit=%d)", s.Semitone, strings.Join(s.Symbols, ""), s.AccidentalLimit)
}

// Validate checks the invariants a schema relies on.
func (s Setting) Validate() error {
	if s.Semitone <= 0 {
		return errors.Wrapf(ErrInvalid, "semitone must be positive, got %d", s.Semitone)
	}
	if len(s.Symbols) == 0 {
		return errors.Wrap(ErrInvalid, "no pitch symbols")
	}
	if s.Semitone < len(s.Symbols) {
		return errors.Wrapf(ErrInvalid, "%d symbols do not fit in %d semitones", len(s.Symbols), s.Semitone)
	}
	seen := map[string]bool{}
	for _, sym := range s.Symbols {
		if sym == "" {
			return errors.Wrap(ErrInvalid, "empty pitch symbol")
		}
		if seen[sym] {
			return errors.Wrapf(ErrInvalid, "duplicated pitch symbol %q", sym)
		}
		seen[sym] = true
	}
	if s.AccidentalLimit < 0 {
		return errors.Wrapf(ErrInvalid, "accidental limit must not be negative, got %d", s.AccidentalLimit)
	}
	if s.Sharp == "" || s.Flat == "" {
		return errors.Wrap(ErrInvalid, "accidental symbols must not be empty")
	}
	if s.Sharp == s.Flat {
		return errors.Wrapf(ErrInvalid, "sharp and flat share the symbol %q", s.Sharp)
	}
	if len(s.Intervals) != 0 {
		if len(s.Intervals) != len(s.Symbols) {
			return errors.Wrapf(ErrInvalid, "%d intervals for %d symbols", len(s.Intervals), len(s.Symbols))
		}
		sum := 0
		for _, v := range s.Intervals {
			if v <= 0 {
				return errors.Wrapf(ErrInvalid, "positions must be strictly increasing, got interval %d", v)
			}
			sum += v
		}
		if sum != s.Semitone {
			return errors.Wrapf(ErrInvalid, "intervals sum to %d, want %d", sum, s.Semitone)
		}
	}
	if len(s.Templates) == 0 {
		return errors.Wrap(ErrInvalid, "no note name templates")
	}
	if !(0 < s.TunerHz) {
		return errors.Wrapf(ErrInvalid, "reference frequency must be positive, got %g", s.TunerHz)
	}
	return nil
}
