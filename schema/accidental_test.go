package schema

import (
	"reflect"
	"testing"

	"github.com/but80/euterpe/setting"
	"github.com/pkg/errors"
)

func TestDiff(t *testing.T) {
	tests := []struct{ a, b, n, want int }{
		{1, 0, 12, 1},
		{11, 0, 12, -1},
		{5, 0, 12, 5},
		{7, 0, 12, -5},
		{6, 0, 12, -6},
		{0, 6, 12, -6},
	}
	for _, tc := range tests {
		if got := diff(tc.a, tc.b, tc.n); got != tc.want {
			t.Errorf("diff(%d, %d, %d) = %d; want %d", tc.a, tc.b, tc.n, got, tc.want)
		}
	}
}

func TestGenerateKeyAccidentals(t *testing.T) {
	sc := MustGet(setting.TET12())
	tests := []struct {
		key  string
		want []int
	}{
		{"C", []int{0, 0, 0, 0, 0, 0, 0}},
		{"D", []int{0, 0, 1, 0, 0, 0, 1}},
		{"F", []int{0, 0, 0, -1, 0, 0, 0}},
		{"Eb", []int{-1, 0, 0, -1, -1, 0, 0}},
		{"F#", []int{1, 1, 1, 0, 1, 1, 1}},
		{"Cb", []int{-1, -1, -1, -1, -1, -1, -1}},
	}
	for _, tc := range tests {
		got, err := sc.GenerateKeyAccidentals(tc.key)
		if err != nil {
			t.Errorf("GenerateKeyAccidentals(%q) error: %v", tc.key, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("GenerateKeyAccidentals(%q) = %v; want %v", tc.key, got, tc.want)
		}
	}
	if _, err := sc.GenerateKeyAccidentals("H"); errors.Cause(err) != ErrInvalidPitchName {
		t.Errorf("got %v want %v", err, ErrInvalidPitchName)
	}
}

func TestKeyAccidentalsTieGoesFlat(t *testing.T) {
	sc := MustGet(tet4())
	got, err := sc.GenerateKeyAccidentals("A##")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{-2, -2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGenerateScaleSignatures(t *testing.T) {
	sc := MustGet(setting.TET12())
	tests := []struct {
		name      string
		intervals []int
		want      []int
	}{
		{"major", []int{2, 2, 1, 2, 2, 2, 1}, []int{0, 0, 0, 0, 0, 0, 0}},
		{"minor", []int{2, 1, 2, 2, 1, 2, 2}, []int{0, 0, -1, 0, 0, -1, -1}},
		{"dorian", []int{2, 1, 2, 2, 2, 1, 2}, []int{0, 0, -1, 0, 0, 0, -1}},
		{"lydian", []int{2, 2, 2, 1, 2, 2, 1}, []int{0, 0, 0, 1, 0, 0, 0}},
		{"locrian", []int{1, 2, 2, 1, 2, 2, 2}, []int{0, -1, -1, 0, -1, -1, -1}},
		{"harmonic minor", []int{2, 1, 2, 2, 1, 3, 1}, []int{0, 0, -1, 0, 0, -1, 0}},
	}
	for _, tc := range tests {
		got, err := sc.GenerateScaleSignatures(tc.intervals)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestGenerateScaleSignaturesRejectsPatterns(t *testing.T) {
	sc := MustGet(setting.TET12())
	for _, intervals := range [][]int{
		{2, 2, 1, 2, 2, 3},
		{2, 2, 1, 2, 2, 2, 2},
		{3, 2, 0, 2, 2, 2, 1},
	} {
		if _, err := sc.GenerateScaleSignatures(intervals); errors.Cause(err) != ErrConfiguration {
			t.Errorf("%v: got %v want %v", intervals, err, ErrConfiguration)
		}
	}
}
