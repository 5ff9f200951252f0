package schema

import (
	"reflect"
	"testing"

	"github.com/but80/euterpe/setting"
)

func TestParseChord(t *testing.T) {
	sc := MustGet(setting.TET12())

	tests := []struct {
		symbol  string
		root    string
		on      string
		quality string
		known   bool
	}{
		{"C", "C", "", "", true},
		{"Am7(b5)/E", "A", "E", "m7(b5)", true},
		{"F#m", "F#", "", "m", true},
		{"BbM7/D", "Bb", "D", "M7", true},
		{"Xyz", "", "", "", false},
		{"Cxyz/G", "C", "G", "", false},
		{"G7/H", "G", "", "7", true},
	}
	for _, tc := range tests {
		got := sc.ParseChord(tc.symbol)
		if got.Root != tc.root || got.On != tc.on {
			t.Errorf("ParseChord(%q) = %s; want root=%q on=%q", tc.symbol, got, tc.root, tc.on)
		}
		if !tc.known {
			if got.Quality != nil {
				t.Errorf("ParseChord(%q) quality = %v; want nil", tc.symbol, got.Quality)
			}
			continue
		}
		if got.Quality == nil || got.Quality.Name != tc.quality {
			t.Errorf("ParseChord(%q) quality = %v; want %q", tc.symbol, got.Quality, tc.quality)
		}
	}
}

func TestParseChordScalesQualities(t *testing.T) {
	sc := MustGet(setting.TET24())
	got := sc.ParseChord("Cm")
	if got.Quality == nil {
		t.Fatalf("ParseChord(Cm) = %s", got)
	}
	if want := []int{0, 6, 14}; !reflect.DeepEqual(got.Quality.Intervals, want) {
		t.Errorf("got %v want %v", got.Quality.Intervals, want)
	}
	if n := MustGet(tet4()).Qualities().Len(); n != 0 {
		t.Errorf("4-TET has %d qualities; want none", n)
	}
}

func TestFindPitchName(t *testing.T) {
	sc := MustGet(setting.TET12())
	tests := map[string]string{
		"Bbb7": "Bbb",
		"Bb7":  "Bb",
		"B7":   "B",
		"C##m": "C##",
		"m7":   "",
	}
	for value, want := range tests {
		if got := sc.FindPitchName(value); got != want {
			t.Errorf("FindPitchName(%q) = %q; want %q", value, got, want)
		}
	}
}
