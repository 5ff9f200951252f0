// Package schema derives the naming and conversion tables of a tuning setting.
//
// A Schema is immutable once built. Use Get to share one Schema per distinct
// setting value across the process.
package schema

import (
	"fmt"
	"sort"

	"github.com/but80/euterpe/log"
	"github.com/but80/euterpe/quality"
	"github.com/but80/euterpe/setting"
	"github.com/pkg/errors"
)

type Schema struct {
	setting    setting.Setting
	pitchClass *pitchClassSchema
	note       *noteSchema
	qualities  *quality.Table

	pitchNames        []string
	pitchNamesLongest []string
	pitchClasses      []int
	noteNames         []string
	noteNumbers       []int
}

// New derives a schema without going through the registry.
func New(s setting.Setting) (*Schema, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "%v", err)
	}
	s = s.Normalize()

	log.Debugf("deriving schema for %s", s)
	log.Enter()
	defer log.Leave()

	pcs, err := newPitchClassSchema(s)
	if err != nil {
		return nil, err
	}
	log.Debugf("%d pitch names for %d pitch classes", len(pcs.nameToClass), len(pcs.classToNames))
	ns, err := newNoteSchema(s, pcs)
	if err != nil {
		return nil, err
	}
	log.Debugf("%d note names for %d note numbers", len(ns.nameToNumber), len(ns.numberToNames))

	sc := &Schema{
		setting:    s,
		pitchClass: pcs,
		note:       ns,
	}
	if s.Semitone%12 == 0 {
		sc.qualities = quality.Default().Scaled(s.Semitone / 12)
	} else {
		log.Debugf("no chord qualities for %d semitones", s.Semitone)
		sc.qualities = quality.NewTable(nil)
	}

	for pc := 0; pc < s.Semitone; pc++ {
		sc.pitchClasses = append(sc.pitchClasses, pc)
		for _, name := range pcs.classToNames[pc] {
			if name != "" {
				sc.pitchNames = append(sc.pitchNames, name)
			}
		}
	}
	sc.pitchNamesLongest = append([]string(nil), sc.pitchNames...)
	sort.SliceStable(sc.pitchNamesLongest, func(i, j int) bool {
		return len(sc.pitchNamesLongest[i]) > len(sc.pitchNamesLongest[j])
	})
	for n := 0; n < len(ns.numberToNames); n++ {
		sc.noteNumbers = append(sc.noteNumbers, n)
		for _, name := range ns.numberToNames[n] {
			if name != "" {
				sc.noteNames = append(sc.noteNames, name)
			}
		}
	}
	return sc, nil
}

func (s *Schema) String() string {
	return fmt.Sprintf("<Schema %d-TET>", s.setting.Semitone)
}

// Setting returns a copy of the setting the schema was derived from.
func (s *Schema) Setting() setting.Setting {
	return s.setting.Normalize()
}

func (s *Schema) Equal(other *Schema) bool {
	return other != nil && s.setting.Equal(other.setting)
}

/*
 * pitch classes
 */

func (s *Schema) Semitone() int {
	return s.setting.Semitone
}

func (s *Schema) AccidentalLimit() int {
	return s.setting.AccidentalLimit
}

func (s *Schema) Intervals() []int {
	return append([]int(nil), s.setting.Intervals...)
}

func (s *Schema) Positions() []int {
	return append([]int(nil), s.pitchClass.positions...)
}

func (s *Schema) Symbols() []string {
	return append([]string(nil), s.setting.Symbols...)
}

func (s *Schema) PitchNames() []string {
	return append([]string(nil), s.pitchNames...)
}

func (s *Schema) PitchClasses() []int {
	return append([]int(nil), s.pitchClasses...)
}

func (s *Schema) IsSymbol(v string) bool {
	for _, sym := range s.setting.Symbols {
		if sym == v {
			return true
		}
	}
	return false
}

func (s *Schema) IsPitchName(v string) bool {
	return s.pitchClass.isPitchName(v)
}

func (s *Schema) IsPitchClass(v int) bool {
	return s.pitchClass.isPitchClass(v)
}

func (s *Schema) checkAccidental(accidental int) error {
	if accidental < -s.setting.AccidentalLimit || s.setting.AccidentalLimit < accidental {
		return errors.Wrapf(ErrInvalidAccidentalOffset, "%d is outside ±%d", accidental, s.setting.AccidentalLimit)
	}
	return nil
}

// ConvertPitchClassToSymbol returns the spelling without accidentals, or "" when the class has none.
func (s *Schema) ConvertPitchClassToSymbol(pc int) (string, error) {
	return s.ConvertPitchClassToPitchName(pc, 0)
}

// ConvertPitchClassToPitchName returns the spelling of pc with the given accidental offset, or "" when none exists.
func (s *Schema) ConvertPitchClassToPitchName(pc int, accidental int) (string, error) {
	names, err := s.pitchClass.convertPitchClassToPitchNames(pc)
	if err != nil {
		return "", err
	}
	if err := s.checkAccidental(accidental); err != nil {
		return "", err
	}
	return names[s.setting.AccidentalLimit+accidental], nil
}

// ConvertPitchClassToPitchNames returns every spelling slot of pc, indexed by limit+accidental.
func (s *Schema) ConvertPitchClassToPitchNames(pc int) ([]string, error) {
	return s.pitchClass.convertPitchClassToPitchNames(pc)
}

func (s *Schema) ConvertPitchNameToPitchClass(name string) (int, error) {
	return s.pitchClass.convertPitchNameToPitchClass(name)
}

// ConvertPitchNameToSymbol strips the accidentals off a pitch name.
func (s *Schema) ConvertPitchNameToSymbol(name string) (string, error) {
	sp, ok := s.pitchClass.nameToClass[name]
	if !ok {
		return "", errors.Wrapf(ErrInvalidPitchName, "%q", name)
	}
	return sp.symbol, nil
}

// ConvertPitchNameToAccidental returns the signed accidental count of a pitch name.
func (s *Schema) ConvertPitchNameToAccidental(name string) (int, error) {
	sp, ok := s.pitchClass.nameToClass[name]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidPitchName, "%q", name)
	}
	return sp.accidental, nil
}

/*
 * notes
 */

func (s *Schema) ReferenceNoteNumber() int {
	return s.setting.ReferenceNoteNumber
}

func (s *Schema) NoteNames() []string {
	return append([]string(nil), s.noteNames...)
}

func (s *Schema) NoteNumbers() []int {
	return append([]int(nil), s.noteNumbers...)
}

func (s *Schema) IsNoteName(v string) bool {
	return s.note.isNoteName(v)
}

func (s *Schema) IsNoteNumber(v int) bool {
	return s.note.isNoteNumber(v)
}

func (s *Schema) ConvertNoteNumberToNoteName(number int, accidental int) (string, error) {
	names, err := s.note.convertNoteNumberToNoteNames(number)
	if err != nil {
		return "", err
	}
	if err := s.checkAccidental(accidental); err != nil {
		return "", err
	}
	return names[s.setting.AccidentalLimit+accidental], nil
}

func (s *Schema) ConvertNoteNumberToNoteNames(number int) ([]string, error) {
	return s.note.convertNoteNumberToNoteNames(number)
}

func (s *Schema) ConvertNoteNameToNoteNumber(name string) (int, error) {
	return s.note.convertNoteNameToNoteNumber(name)
}

func (s *Schema) ConvertNoteNumberToPitchClass(number int) (int, error) {
	if !s.IsNoteNumber(number) {
		return 0, errors.Wrapf(ErrInvalidNoteNumber, "%d", number)
	}
	return number % s.setting.Semitone, nil
}

// ConvertPitchClassToNoteNumber places pc in the given octave (0 is the first template).
func (s *Schema) ConvertPitchClassToNoteNumber(pc int, octave int) (int, error) {
	if !s.IsPitchClass(pc) {
		return 0, errors.Wrapf(ErrInvalidPitchClass, "%d", pc)
	}
	number := pc + s.setting.Semitone*octave
	if !s.IsNoteNumber(number) {
		return 0, errors.Wrapf(ErrInvalidNoteNumber, "%d (octave %d)", number, octave)
	}
	return number, nil
}

func (s *Schema) ConvertNoteNameToPitchName(name string) (string, error) {
	sp, ok := s.note.nameToNumber[name]
	if !ok {
		return "", errors.Wrapf(ErrInvalidNoteName, "%q", name)
	}
	return sp.pitchName, nil
}

// ConvertNoteNameToOctave returns the template index the note name was spelled with.
func (s *Schema) ConvertNoteNameToOctave(name string) (int, error) {
	sp, ok := s.note.nameToNumber[name]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidNoteName, "%q", name)
	}
	return sp.octave, nil
}

// ConvertPitchNameToNoteName spells a pitch name with the template of the given octave.
func (s *Schema) ConvertPitchNameToNoteName(name string, octave int) (string, error) {
	sp, ok := s.pitchClass.nameToClass[name]
	if !ok {
		return "", errors.Wrapf(ErrInvalidPitchName, "%q", name)
	}
	if octave < 0 || len(s.note.templates) <= octave {
		return "", errors.Wrapf(ErrInvalidNoteName, "octave %d of %q is out of range", octave, name)
	}
	noteName := s.note.templates[octave].apply(sp.symbol, accidentalString(sp.accidental, s.setting.Sharp, s.setting.Flat))
	if !s.IsNoteName(noteName) {
		return "", errors.Wrapf(ErrInvalidNoteName, "%q is out of range", noteName)
	}
	return noteName, nil
}

/*
 * tuner
 */

func (s *Schema) TunerNoteNumber() int {
	return s.setting.TunerNoteNumber
}

func (s *Schema) TunerHz() float64 {
	return s.setting.TunerHz
}
