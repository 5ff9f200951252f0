package schema

import (
	"strings"

	"github.com/but80/euterpe/setting"
	"github.com/pkg/errors"
)

type pitchSpelling struct {
	pitchClass int
	symbol     string
	accidental int
}

// pitchClassSchema maps pitch classes to their spellings and back.
// Spelling slots are indexed by limit+accidental; "" marks a missing spelling.
type pitchClassSchema struct {
	semitone  int
	limit     int
	sharp     string
	flat      string
	symbols   []string
	positions []int

	classToNames map[int][]string
	nameToClass  map[string]pitchSpelling
}

func accidentalString(accidental int, sharp, flat string) string {
	if 0 < accidental {
		return strings.Repeat(sharp, accidental)
	}
	return strings.Repeat(flat, -accidental)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func newPitchClassSchema(s setting.Setting) (*pitchClassSchema, error) {
	positions := s.Positions()
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			return nil, errors.Wrapf(ErrConfiguration, "positions %v are not strictly increasing", positions)
		}
	}

	pcs := &pitchClassSchema{
		semitone:     s.Semitone,
		limit:        s.AccidentalLimit,
		sharp:        s.Sharp,
		flat:         s.Flat,
		symbols:      append([]string(nil), s.Symbols...),
		positions:    positions,
		classToNames: map[int][]string{},
		nameToClass:  map[string]pitchSpelling{},
	}

	symbolAt := map[int]string{}
	for i, pos := range positions {
		symbolAt[pos] = s.Symbols[i]
	}

	for pc := 0; pc < s.Semitone; pc++ {
		names := make([]string, 2*s.AccidentalLimit+1)
		found := false
		for acc := -s.AccidentalLimit; acc <= s.AccidentalLimit; acc++ {
			symbol, ok := symbolAt[mod(pc-acc, s.Semitone)]
			if !ok {
				continue
			}
			name := symbol + accidentalString(acc, s.Sharp, s.Flat)
			if prev, dup := pcs.nameToClass[name]; dup {
				return nil, errors.Wrapf(ErrConfiguration, "spelling %q is shared by pitch classes %d and %d", name, prev.pitchClass, pc)
			}
			names[s.AccidentalLimit+acc] = name
			pcs.nameToClass[name] = pitchSpelling{pitchClass: pc, symbol: symbol, accidental: acc}
			found = true
		}
		if !found {
			return nil, errors.Wrapf(ErrConfiguration, "pitch class %d cannot be spelled within %d accidentals", pc, s.AccidentalLimit)
		}
		pcs.classToNames[pc] = names
	}
	return pcs, nil
}

func (pcs *pitchClassSchema) isPitchClass(v int) bool {
	_, ok := pcs.classToNames[v]
	return ok
}

func (pcs *pitchClassSchema) isPitchName(v string) bool {
	_, ok := pcs.nameToClass[v]
	return ok
}

func (pcs *pitchClassSchema) convertPitchClassToPitchNames(pc int) ([]string, error) {
	names, ok := pcs.classToNames[pc]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidPitchClass, "%d", pc)
	}
	return append([]string(nil), names...), nil
}

func (pcs *pitchClassSchema) convertPitchNameToPitchClass(name string) (int, error) {
	sp, ok := pcs.nameToClass[name]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidPitchName, "%q", name)
	}
	return sp.pitchClass, nil
}
