package theory

import (
	"fmt"
	"strings"

	"github.com/but80/euterpe/schema"
)

// ScaleKind is a named step pattern shared by every scale of that kind.
// Intervals are given in 12-TET semitones unless stated otherwise; see Scaled.
type ScaleKind struct {
	Name      string
	Intervals []int
}

// Scaled multiplies the step pattern by factor, e.g. 2 for 24-TET.
func (k ScaleKind) Scaled(factor int) ScaleKind {
	intervals := make([]int, len(k.Intervals))
	for i, v := range k.Intervals {
		intervals[i] = v * factor
	}
	return ScaleKind{Name: k.Name, Intervals: intervals}
}

// Mode rotates the step pattern of kind left by shift degrees.
func Mode(kind ScaleKind, shift int, name string) ScaleKind {
	n := len(kind.Intervals)
	intervals := make([]int, n)
	for i := range intervals {
		intervals[i] = kind.Intervals[mod(i+shift, n)]
	}
	return ScaleKind{Name: name, Intervals: intervals}
}

var (
	Major         = ScaleKind{Name: "Major", Intervals: []int{2, 2, 1, 2, 2, 2, 1}}
	Minor         = ScaleKind{Name: "Minor", Intervals: []int{2, 1, 2, 2, 1, 2, 2}}
	HarmonicMinor = ScaleKind{Name: "HarmonicMinor", Intervals: []int{2, 1, 2, 2, 1, 3, 1}}
	MelodicMinor  = ScaleKind{Name: "MelodicMinor", Intervals: []int{2, 1, 2, 2, 2, 2, 1}}

	Ionian     = Mode(Major, 0, "Ionian")
	Dorian     = Mode(Major, 1, "Dorian")
	Phrygian   = Mode(Major, 2, "Phrygian")
	Lydian     = Mode(Major, 3, "Lydian")
	Mixolydian = Mode(Major, 4, "Mixolydian")
	Aeolian    = Mode(Major, 5, "Aeolian")
	Locrian    = Mode(Major, 6, "Locrian")
)

// ScaleKinds lists the predefined kinds.
var ScaleKinds = []ScaleKind{
	Major, Minor, HarmonicMinor, MelodicMinor,
	Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian,
}

// FindScaleKind looks a predefined kind up by name, ignoring case, "-" and "_".
func FindScaleKind(name string) (ScaleKind, bool) {
	simplify := strings.NewReplacer("-", "", "_", "", " ", "")
	name = simplify.Replace(name)
	for _, k := range ScaleKinds {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return ScaleKind{}, false
}

// Scale is a kind of scale rooted at a key.
type Scale struct {
	kind        ScaleKind
	key         *Key
	positions   []int
	accidentals []int
	signatures  []int
}

func NewScale(kind ScaleKind, key *Key) (*Scale, error) {
	accidentals, err := key.Schema().GenerateScaleSignatures(kind.Intervals)
	if err != nil {
		return nil, err
	}
	keySignature := key.Signature()
	signatures := make([]int, len(accidentals))
	for i := range accidentals {
		signatures[i] = keySignature[i] + accidentals[i]
	}
	positions := make([]int, len(kind.Intervals))
	for i := 1; i < len(positions); i++ {
		positions[i] = positions[i-1] + kind.Intervals[i-1]
	}
	return &Scale{
		kind:        ScaleKind{Name: kind.Name, Intervals: append([]int(nil), kind.Intervals...)},
		key:         key,
		positions:   positions,
		accidentals: accidentals,
		signatures:  signatures,
	}, nil
}

func NewScaleByName(s *schema.Schema, kind ScaleKind, keyName string) (*Scale, error) {
	key, err := NewKey(s, keyName)
	if err != nil {
		return nil, err
	}
	return NewScale(kind, key)
}

func (s *Scale) Schema() *schema.Schema {
	return s.key.schema
}

func (s *Scale) Kind() ScaleKind {
	return s.kind
}

func (s *Scale) Key() *Key {
	return s.key
}

func (s *Scale) Intervals() []int {
	return append([]int(nil), s.kind.Intervals...)
}

// Positions returns the offset of each degree from the tonic.
func (s *Scale) Positions() []int {
	return append([]int(nil), s.positions...)
}

// Accidentals returns the offsets the scale adds on top of the key signature.
func (s *Scale) Accidentals() []int {
	return append([]int(nil), s.accidentals...)
}

// Signatures returns the key signature plus Accidentals, per degree.
func (s *Scale) Signatures() []int {
	return append([]int(nil), s.signatures...)
}

// Degree returns the index of pitch class pc in the scale.
func (s *Scale) Degree(pc Integer) (int, bool) {
	rel := mod(pc.Int()-s.key.pitchClass, s.Schema().Semitone())
	for i, pos := range s.positions {
		if pos == rel {
			return i, true
		}
	}
	return -1, false
}

// offsetOf returns the accidental offset pc is spelled with in the scale.
func (s *Scale) offsetOf(pc int) (int, bool) {
	i, ok := s.Degree(Semitones(pc))
	if !ok {
		return 0, false
	}
	return s.accidentals[i] + s.key.signature[i], true
}

// Components spells every degree of the scale, starting at the tonic.
func (s *Scale) Components() []*PitchClass {
	result := make([]*PitchClass, len(s.positions))
	for i, pos := range s.positions {
		pc := mod(s.key.pitchClass+pos, s.Schema().Semitone())
		names, _ := s.Schema().ConvertPitchClassToPitchNames(pc)
		p := &PitchClass{schema: s.Schema(), pitchClass: pc, pitchNames: names}
		p.respell(s)
		result[i] = p
	}
	return result
}

func (s *Scale) Equal(other *Scale) bool {
	if other == nil || !s.key.Equal(other.key) || len(s.kind.Intervals) != len(other.kind.Intervals) {
		return false
	}
	for i, v := range s.kind.Intervals {
		if other.kind.Intervals[i] != v {
			return false
		}
	}
	return true
}

func (s *Scale) String() string {
	return fmt.Sprintf("%s %s", s.key, s.kind.Name)
}
