package theory

import (
	"fmt"
	"strconv"

	"github.com/but80/euterpe/schema"
	"github.com/pkg/errors"
)

// Note is a pitch in a specific octave.
type Note struct {
	schema     *schema.Schema
	noteNumber int
	noteName   string
	noteNames  []string
	scale      *Scale
}

func NewNote(s *schema.Schema, number int, opts ...Option) (*Note, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return nil, err
	}
	names, err := s.ConvertNoteNumberToNoteNames(number)
	if err != nil {
		return nil, err
	}
	n := &Note{schema: s, noteNumber: number, noteNames: names}
	n.respell(o.scale)
	return n, nil
}

func NewNoteByName(s *schema.Schema, name string, opts ...Option) (*Note, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return nil, err
	}
	number, err := s.ConvertNoteNameToNoteNumber(name)
	if err != nil {
		return nil, err
	}
	names, _ := s.ConvertNoteNumberToNoteNames(number)
	n := &Note{schema: s, noteNumber: number, noteName: name, noteNames: names}
	n.respell(o.scale)
	return n, nil
}

func (n *Note) respell(sc *Scale) {
	if sc == nil {
		return
	}
	pc, _ := n.schema.ConvertNoteNumberToPitchClass(n.noteNumber)
	offset, ok := sc.offsetOf(pc)
	if !ok {
		return
	}
	name, err := n.schema.ConvertNoteNumberToNoteName(n.noteNumber, offset)
	if err != nil || name == "" {
		return
	}
	n.noteName = name
	n.scale = sc
}

func (n *Note) Schema() *schema.Schema {
	return n.schema
}

func (n *Note) Int() int {
	return n.noteNumber
}

func (n *Note) NoteNumber() int {
	return n.noteNumber
}

// NoteName returns the chosen spelling, or "" when none has been chosen.
func (n *Note) NoteName() string {
	return n.noteName
}

func (n *Note) NoteNames() []string {
	return nonEmpty(n.noteNames)
}

func (n *Note) Scale() *Scale {
	return n.scale
}

// PitchClass projects the note onto its pitch class, keeping the scale and the spelling.
func (n *Note) PitchClass() *PitchClass {
	pc, _ := n.schema.ConvertNoteNumberToPitchClass(n.noteNumber)
	names, _ := n.schema.ConvertPitchClassToPitchNames(pc)
	p := &PitchClass{schema: n.schema, pitchClass: pc, pitchNames: names}
	if n.noteName != "" {
		p.pitchName, _ = n.schema.ConvertNoteNameToPitchName(n.noteName)
	}
	p.respell(n.scale)
	return p
}

// WithNoteName returns a copy spelled as name, which must be an enharmonic of n.
func (n *Note) WithNoteName(name string) (*Note, error) {
	for _, v := range n.noteNames {
		if v != "" && v == name {
			m := *n
			m.noteName = name
			return &m, nil
		}
	}
	return nil, errors.Wrapf(schema.ErrInvalidNoteName, "%q does not spell note %d", name, n.noteNumber)
}

func (n *Note) Add(other Integer) (*Note, error) {
	return NewNote(n.schema, n.noteNumber+other.Int(), WithScale(n.scale))
}

func (n *Note) Sub(other Integer) (*Note, error) {
	return NewNote(n.schema, n.noteNumber-other.Int(), WithScale(n.scale))
}

func (n *Note) Equal(other Integer) bool {
	return other != nil && n.noteNumber == other.Int()
}

func (n *Note) String() string {
	if n.noteName != "" {
		return n.noteName
	}
	return strconv.Itoa(n.noteNumber)
}

func (n *Note) GoString() string {
	return fmt.Sprintf("<Note: %s %q>", n, n.NoteNames())
}
