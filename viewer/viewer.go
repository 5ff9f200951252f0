// Package viewer draws scale and tuner tables on a terminal.
package viewer

import (
	"fmt"
	"io"
	"time"

	"github.com/but80/euterpe/log"
	"github.com/but80/euterpe/theory"
)

// CircleOfFifths returns the scales of kind reached by walking up to steps
// fifths down and up from key, flattest first. A walk stops early once the
// next key cannot be spelled.
func CircleOfFifths(kind theory.ScaleKind, key *theory.Key, steps int) ([]*theory.Scale, error) {
	origin, err := theory.NewScale(kind, key)
	if err != nil {
		return nil, err
	}
	major, err := theory.NewScale(majorOf(kind), key)
	if err != nil {
		return nil, err
	}
	if len(major.Positions()) < 5 {
		return []*theory.Scale{origin}, nil
	}

	walk := func(degree int) []*theory.Scale {
		result := []*theory.Scale{}
		cur := major
		for i := 0; i < steps; i++ {
			name := cur.Components()[degree].PitchName()
			if name == "" {
				break
			}
			k, err := theory.NewKey(key.Schema(), name)
			if err != nil {
				break
			}
			sc, err := theory.NewScale(kind, k)
			if err != nil {
				break
			}
			next, err := theory.NewScale(majorOf(kind), k)
			if err != nil {
				break
			}
			result = append(result, sc)
			cur = next
		}
		return result
	}

	flats := walk(3)
	sharps := walk(4)
	log.Debugf("circle of fifths from %s: %d flat side, %d sharp side", origin, len(flats), len(sharps))
	result := make([]*theory.Scale, 0, len(flats)+1+len(sharps))
	for i := len(flats) - 1; 0 <= i; i-- {
		result = append(result, flats[i])
	}
	result = append(result, origin)
	return append(result, sharps...), nil
}

// majorOf returns the major pattern at the resolution of kind.
func majorOf(kind theory.ScaleKind) theory.ScaleKind {
	sum := 0
	for _, v := range kind.Intervals {
		sum += v
	}
	if sum%12 != 0 || len(kind.Intervals) != len(theory.Major.Intervals) {
		return kind
	}
	return theory.Major.Scaled(sum / 12)
}

// Show prints every table. With a positive interval each table replaces the
// previous one in place until stop is closed.
func Show(w io.Writer, tables []Printer, interval time.Duration, stop <-chan struct{}) {
	if len(tables) == 0 {
		return
	}
	if interval <= 0 {
		for i, t := range tables {
			if 0 < i {
				fmt.Fprintln(w)
			}
			t.Print(w)
		}
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i := 0; ; i = (i + 1) % len(tables) {
		Redraw(w, tables[i])
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}
