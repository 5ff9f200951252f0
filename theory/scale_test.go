package theory

import (
	"reflect"
	"testing"

	"github.com/but80/euterpe/schema"
	"github.com/but80/euterpe/setting"
	"github.com/pkg/errors"
)

func names(ps []*PitchClass) []string {
	result := make([]string, len(ps))
	for i, p := range ps {
		result[i] = p.String()
	}
	return result
}

func TestKey(t *testing.T) {
	s := tet12()
	d, err := NewKey(s, "D")
	if err != nil {
		t.Fatal(err)
	}
	if d.PitchClass() != 2 || d.KeyName() != "D" {
		t.Errorf("got %d %q want 2 D", d.PitchClass(), d.KeyName())
	}
	if want := []int{0, 0, 1, 0, 0, 0, 1}; !reflect.DeepEqual(d.Signature(), want) {
		t.Errorf("got %v want %v", d.Signature(), want)
	}
	other, _ := NewKey(s, "D")
	enharmonic, _ := NewKey(s, "C##")
	if !d.Equal(other) || d.Equal(enharmonic) {
		t.Errorf("keys compare by spelling")
	}
	if _, err := NewKey(s, "H"); errors.Cause(err) != schema.ErrInvalidPitchName {
		t.Errorf("got %v want %v", err, schema.ErrInvalidPitchName)
	}
}

func TestScaleComponents(t *testing.T) {
	s := tet12()
	tests := []struct {
		kind ScaleKind
		key  string
		want []string
	}{
		{Major, "C", []string{"C", "D", "E", "F", "G", "A", "B"}},
		{Major, "D", []string{"D", "E", "F#", "G", "A", "B", "C#"}},
		{Major, "F#", []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}},
		{Minor, "Eb", []string{"Eb", "F", "Gb", "Ab", "Bb", "Cb", "Db"}},
		{HarmonicMinor, "A", []string{"A", "B", "C", "D", "E", "F", "G#"}},
		{MelodicMinor, "C", []string{"C", "D", "Eb", "F", "G", "A", "B"}},
		{Locrian, "C", []string{"C", "Db", "Eb", "F", "Gb", "Ab", "Bb"}},
		{Locrian, "D", []string{"D", "Eb", "F", "G", "Ab", "Bb", "C"}},
		{Lydian, "F", []string{"F", "G", "A", "B", "C", "D", "E"}},
	}
	for _, tc := range tests {
		sc := mustScale(t, s, tc.kind, tc.key)
		if got := names(sc.Components()); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s = %q; want %q", sc, got, tc.want)
		}
	}
}

func TestScaleBeyondAccidentalLimit(t *testing.T) {
	s := tet12()
	sc := mustScale(t, s, Major, "G##")
	if want := []int{2, 2, 2, 2, 2, 2, 3}; !reflect.DeepEqual(sc.Signatures(), want) {
		t.Errorf("got %v want %v", sc.Signatures(), want)
	}
	components := sc.Components()
	if got, want := names(components), []string{"G##", "A##", "B##", "C##", "D##", "E##", "8"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %q want %q", got, want)
	}
	for i, p := range components[:6] {
		if p.Scale() != sc {
			t.Errorf("degree %d: got scale %v want %v", i, p.Scale(), sc)
		}
	}
	if last := components[6]; last.PitchName() != "" || last.Scale() != nil {
		t.Errorf("F### cannot be spelled, got %q in %v", last.PitchName(), last.Scale())
	}

	n, err := NewNote(s, 68, WithScale(sc))
	if err != nil {
		t.Fatal(err)
	}
	if n.NoteName() != "" || n.Scale() != nil || n.String() != "68" {
		t.Errorf("got %q in %v want an unspelled note", n, n.Scale())
	}
	if n, _ := NewNote(s, 69, WithScale(sc)); n.String() != "G##4" || n.Scale() != sc {
		t.Errorf("got %q in %v want G##4", n, n.Scale())
	}
}

func TestScaleSignatures(t *testing.T) {
	s := tet12()
	sc := mustScale(t, s, Minor, "Eb")
	if want := []int{0, 0, -1, 0, 0, -1, -1}; !reflect.DeepEqual(sc.Accidentals(), want) {
		t.Errorf("Accidentals() = %v; want %v", sc.Accidentals(), want)
	}
	if want := []int{-1, 0, -1, -1, -1, -1, -1}; !reflect.DeepEqual(sc.Signatures(), want) {
		t.Errorf("Signatures() = %v; want %v", sc.Signatures(), want)
	}
	if want := []int{0, 2, 3, 5, 7, 8, 10}; !reflect.DeepEqual(sc.Positions(), want) {
		t.Errorf("Positions() = %v; want %v", sc.Positions(), want)
	}

	// every component sits on its own degree
	for _, kind := range ScaleKinds {
		for _, key := range []string{"C", "Bb", "F#"} {
			sc := mustScale(t, s, kind, key)
			for i, p := range sc.Components() {
				if d, ok := sc.Degree(p); !ok || d != i {
					t.Errorf("%s: degree of %s = %d, %v; want %d", sc, p, d, ok, i)
				}
			}
		}
	}
}

func TestScaleEqual(t *testing.T) {
	s := tet12()
	major := mustScale(t, s, Major, "C")
	ionian := mustScale(t, s, Ionian, "C")
	minor := mustScale(t, s, Minor, "C")
	dMajor := mustScale(t, s, Major, "D")
	if !major.Equal(ionian) || major.Equal(minor) || major.Equal(dMajor) {
		t.Errorf("scales compare by intervals and key")
	}
}

func TestModes(t *testing.T) {
	if !reflect.DeepEqual(Aeolian.Intervals, Minor.Intervals) {
		t.Errorf("Aeolian = %v; want %v", Aeolian.Intervals, Minor.Intervals)
	}
	if want := []int{2, 1, 2, 2, 2, 1, 2}; !reflect.DeepEqual(Dorian.Intervals, want) {
		t.Errorf("Dorian = %v; want %v", Dorian.Intervals, want)
	}
	if k, ok := FindScaleKind("harmonic-minor"); !ok || k.Name != HarmonicMinor.Name {
		t.Errorf("FindScaleKind(harmonic-minor) = %v, %v", k, ok)
	}
	if _, ok := FindScaleKind("blues"); ok {
		t.Errorf("FindScaleKind(blues) should fail")
	}
}

func TestScaleInOtherSystems(t *testing.T) {
	s := schema.MustGet(setting.TET24())
	sc, err := NewScaleByName(s, Major.Scaled(2), "C")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := names(sc.Components()), []string{"C", "D", "E", "F", "G", "A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %q want %q", got, want)
	}

	if _, err := NewScaleByName(s, Major, "C"); errors.Cause(err) != schema.ErrConfiguration {
		t.Errorf("got %v want %v", err, schema.ErrConfiguration)
	}
}
