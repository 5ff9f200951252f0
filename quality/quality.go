// Package quality generates the table of chord qualities ("m7(b5)", "7(b9,#11)", ...) chord symbols are parsed against.
package quality

import (
	"fmt"
	"sort"
	"strings"
)

// Quality is a named set of intervals above a chord root.
// Intervals are in semitones of the table's resolution and include the root (0).
type Quality struct {
	Name      string `json:"name" yaml:"name" msgpack:"name"`
	Intervals []int  `json:"intervals" yaml:"intervals" msgpack:"intervals"`
}

func (q *Quality) String() string {
	return fmt.Sprintf("%q%v", q.Name, q.Intervals)
}

// Scaled returns a copy whose intervals are multiplied by factor.
func (q *Quality) Scaled(factor int) *Quality {
	intervals := make([]int, len(q.Intervals))
	for i, v := range q.Intervals {
		intervals[i] = v * factor
	}
	return &Quality{Name: q.Name, Intervals: intervals}
}

type Triad struct {
	Name      string
	Intervals []int
}

// Extension is an added sixth or seventh. The empty name means none.
type Extension struct {
	Name     string
	Interval int
}

// Tension is a parenthesised addition or alteration.
// When Replaces is non-zero the interval Replaces is removed from the chord.
type Tension struct {
	Name     string
	Interval int
	Replaces int
	Group    string
}

type Components struct {
	Triads      []Triad
	Extensions  []Extension
	Tensions    []Tension
	MaxTensions int
}

// Validator decides whether a combination makes a conventional chord symbol.
type Validator func(triad Triad, ext Extension, tensions []Tension) bool

func name(triad Triad, ext Extension, tensions []Tension) string {
	s := triad.Name + ext.Name
	if 0 < len(tensions) {
		names := make([]string, len(tensions))
		for i, t := range tensions {
			names[i] = t.Name
		}
		s += "(" + strings.Join(names, ",") + ")"
	}
	return s
}

func intervals(triad Triad, ext Extension, tensions []Tension) []int {
	set := map[int]bool{}
	for _, v := range triad.Intervals {
		set[v] = true
	}
	for _, t := range tensions {
		if t.Replaces != 0 {
			delete(set, t.Replaces)
		}
	}
	if ext.Name != "" {
		set[ext.Interval] = true
	}
	for _, t := range tensions {
		set[t.Interval] = true
	}
	result := []int{}
	for v := range set {
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}

// subsets lists the order-preserving subsets of tensions with at most max elements.
func subsets(tensions []Tension, max int) [][]Tension {
	result := [][]Tension{{}}
	for _, t := range tensions {
		n := len(result)
		for i := 0; i < n; i++ {
			if max <= len(result[i]) {
				continue
			}
			s := append(append([]Tension{}, result[i]...), t)
			result = append(result, s)
		}
	}
	return result
}

// Generate combines components into every quality the validator accepts.
func Generate(c Components, valid Validator) []*Quality {
	result := []*Quality{}
	extensions := c.Extensions
	if len(extensions) == 0 {
		extensions = []Extension{{}}
	}
	combos := subsets(c.Tensions, c.MaxTensions)
	for _, triad := range c.Triads {
		for _, ext := range extensions {
			for _, ts := range combos {
				if valid != nil && !valid(triad, ext, ts) {
					continue
				}
				result = append(result, &Quality{
					Name:      name(triad, ext, ts),
					Intervals: intervals(triad, ext, ts),
				})
			}
		}
	}
	return result
}

// Table indexes qualities by name and by interval set.
type Table struct {
	list   []*Quality
	byName map[string]*Quality
}

// NewTable keeps the first quality of each name.
func NewTable(qualities []*Quality) *Table {
	t := &Table{byName: map[string]*Quality{}}
	for _, q := range qualities {
		if _, ok := t.byName[q.Name]; ok {
			continue
		}
		t.byName[q.Name] = q
		t.list = append(t.list, q)
	}
	return t
}

func (t *Table) Get(name string) (*Quality, bool) {
	if t == nil {
		return nil, false
	}
	q, ok := t.byName[name]
	return q, ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.list)
}

func (t *Table) All() []*Quality {
	if t == nil {
		return nil
	}
	return append([]*Quality(nil), t.list...)
}

// FindByIntervals lists the qualities spelling exactly the given interval set, shortest name first.
func (t *Table) FindByIntervals(intervals []int) []*Quality {
	want := append([]int(nil), intervals...)
	sort.Ints(want)
	result := []*Quality{}
	for _, q := range t.All() {
		if equalInts(q.Intervals, want) {
			result = append(result, q)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return len(result[i].Name) < len(result[j].Name)
	})
	return result
}

// Scaled returns a table with every interval multiplied by factor.
func (t *Table) Scaled(factor int) *Table {
	list := make([]*Quality, 0, t.Len())
	for _, q := range t.All() {
		list = append(list, q.Scaled(factor))
	}
	return NewTable(list)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
