package euterpe

import (
	"io/ioutil"

	"github.com/golang/protobuf/proto"
)

// LoadFile reads a snapshot written by "euterpe dump --format protobuf".
func (t *SchemaTable) LoadFile(file string) error {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}
	return t.LoadBytes(b)
}

func (t *SchemaTable) LoadBytes(b []byte) error {
	var loaded SchemaTable
	if err := proto.Unmarshal(b, &loaded); err != nil {
		return err
	}
	*t = loaded
	_ = t.Normalize()
	return nil
}

// Normalize replaces missing lists and entries with empty ones.
// It returns true when nothing had to be replaced.
func (t *SchemaTable) Normalize() bool {
	ok := true
	if t.Intervals == nil {
		t.Intervals = []int32{}
		ok = false
	}
	if t.Symbols == nil {
		t.Symbols = []string{}
		ok = false
	}
	if t.PitchClasses == nil {
		t.PitchClasses = []*PitchClassEntry{}
		ok = false
	}
	for i, e := range t.PitchClasses {
		if e == nil {
			e = &PitchClassEntry{PitchClass: int32(i)}
			t.PitchClasses[i] = e
			ok = false
		}
		if e.Spellings == nil {
			e.Spellings = []*Spelling{}
			ok = false
		}
	}
	if t.Notes == nil {
		t.Notes = []*NoteEntry{}
		ok = false
	}
	for i, e := range t.Notes {
		if e == nil {
			e = &NoteEntry{NoteNumber: int32(i)}
			t.Notes[i] = e
			ok = false
		}
		if e.Spellings == nil {
			e.Spellings = []*Spelling{}
			ok = false
		}
	}
	if t.Qualities == nil {
		t.Qualities = []*Quality{}
		ok = false
	}
	for _, q := range t.Qualities {
		if q != nil && q.Intervals == nil {
			q.Intervals = []int32{}
			ok = false
		}
	}
	return ok
}
