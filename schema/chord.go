package schema

import (
	"fmt"
	"strings"

	"github.com/but80/euterpe/quality"
)

// ChordElement is the best-effort decomposition of a chord symbol.
// Empty Root/On and nil Quality mean the part could not be recognized.
type ChordElement struct {
	Root    string
	On      string
	Quality *quality.Quality
}

func (e ChordElement) String() string {
	q := "?"
	if e.Quality != nil {
		q = fmt.Sprintf("%q", e.Quality.Name)
	}
	return fmt.Sprintf("root=%q on=%q quality=%s", e.Root, e.On, q)
}

// FindPitchName returns the longest pitch name value starts with, or "".
func (s *Schema) FindPitchName(value string) string {
	for _, name := range s.pitchNamesLongest {
		if strings.HasPrefix(value, name) {
			return name
		}
	}
	return ""
}

// ParseChord splits a symbol like "Am7(b5)/E" into root, quality and bass. It never fails.
func (s *Schema) ParseChord(name string) ChordElement {
	root := s.FindPitchName(name)
	rest := name[len(root):]
	on := ""
	if i := strings.Index(rest, "/"); 0 <= i {
		on = s.FindPitchName(rest[i+1:])
		rest = rest[:i]
	}
	q, _ := s.qualities.Get(rest)
	return ChordElement{Root: root, On: on, Quality: q}
}

// Qualities returns the chord quality table scaled to this schema's semitone count.
func (s *Schema) Qualities() *quality.Table {
	return s.qualities
}
