package schema

import (
	"github.com/pkg/errors"
)

// diff returns the shortest signed distance from b to a modulo n.
// A distance of exactly n/2 is reported on the flat side.
func diff(a, b, n int) int {
	d := mod(a-b, n)
	if n <= 2*d {
		d -= n
	}
	return d
}

// GenerateKeyAccidentals returns, for each degree of the key rooted at pitchName,
// the accidentals its natural letter needs in the reference (major) pattern.
func (s *Schema) GenerateKeyAccidentals(pitchName string) ([]int, error) {
	sp, ok := s.pitchClass.nameToClass[pitchName]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidPitchName, "%q", pitchName)
	}
	symbols := s.setting.Symbols
	idx := 0
	for i, sym := range symbols {
		if sym == sp.symbol {
			idx = i
			break
		}
	}
	rotated := append(append([]string{}, symbols[idx:]...), symbols[:idx]...)

	result := make([]int, len(rotated))
	for i, pos := range s.pitchClass.positions {
		natural := s.pitchClass.nameToClass[rotated[i]].pitchClass
		actual := mod(sp.pitchClass+pos, s.setting.Semitone)
		result[i] = diff(actual, natural, s.setting.Semitone)
	}
	return result, nil
}

// GenerateScaleSignatures returns the accidentals a scale with the given step pattern
// adds on top of the key signature, one per degree starting at the tonic.
func (s *Schema) GenerateScaleSignatures(intervals []int) ([]int, error) {
	reference := s.setting.Intervals
	if len(intervals) != len(reference) {
		return nil, errors.Wrapf(ErrConfiguration, "scale has %d steps, want %d", len(intervals), len(reference))
	}
	sum := 0
	for _, v := range intervals {
		if v <= 0 {
			return nil, errors.Wrapf(ErrConfiguration, "scale step %d is not positive", v)
		}
		sum += v
	}
	if sum != s.setting.Semitone {
		return nil, errors.Wrapf(ErrConfiguration, "scale steps sum to %d, want %d", sum, s.setting.Semitone)
	}

	n := len(reference)
	rest := make([]int, n)
	for i := range reference {
		rest[i] = intervals[i] - reference[i]
	}
	accidentals := make([]int, 0, n)
	for i := 0; i < n; i++ {
		cur, next := i%n, (i+1)%n
		accidentals = append(accidentals, rest[cur])
		rest[next] += rest[cur]
		rest[cur] = 0
	}
	// accidentals[i] belongs to degree i+1; move the last one to the tonic.
	return append(accidentals[n-1:], accidentals[:n-1]...), nil
}
