package euterpe

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/protobuf/proto"
)

func sample() *SchemaTable {
	return &SchemaTable{
		Semitone:  4,
		Intervals: []int32{2, 2},
		Symbols:   []string{"A", "B"},
		PitchClasses: []*PitchClassEntry{
			{PitchClass: 0, Spellings: []*Spelling{{Accidental: 0, Name: "A"}}},
			{PitchClass: 1, Spellings: []*Spelling{{Accidental: -1, Name: "Bb"}, {Accidental: 1, Name: "A#"}}},
		},
	}
}

func TestLoadFile(t *testing.T) {
	b, err := proto.Marshal(sample())
	if err != nil {
		t.Fatal(err)
	}
	dir, err := ioutil.TempDir("", "euterpe")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "table.pb")
	if err := ioutil.WriteFile(file, b, 0644); err != nil {
		t.Fatal(err)
	}

	var table SchemaTable
	if err := table.LoadFile(file); err != nil {
		t.Fatal(err)
	}
	if table.Semitone != 4 || len(table.PitchClasses) != 2 {
		t.Errorf("got %v", &table)
	}
	if got := table.PitchClasses[1].SpellingOf(-1); got != "Bb" {
		t.Errorf("got %q want Bb", got)
	}
	if got := table.PitchClasses[1].SpellingOf(0); got != "" {
		t.Errorf("got %q want empty", got)
	}
	if table.Notes == nil || table.Qualities == nil {
		t.Errorf("missing lists should be normalized to empty ones")
	}

	if err := table.LoadFile(filepath.Join(dir, "missing.pb")); err == nil {
		t.Errorf("loading a missing file should fail")
	}
}

func TestNormalize(t *testing.T) {
	table := sample()
	table.Notes = []*NoteEntry{nil}
	if table.Normalize() {
		t.Errorf("got true for a table with missing lists")
	}
	if table.Notes[0] == nil || table.Notes[0].Spellings == nil {
		t.Errorf("nil entries should be replaced")
	}
	if !table.Normalize() {
		t.Errorf("a normalized table should stay unchanged")
	}
}
