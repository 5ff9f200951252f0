package schema

import (
	"reflect"
	"sync"
	"testing"

	"github.com/but80/euterpe/setting"
	"github.com/golang/protobuf/proto"
)

func TestRegistryShares(t *testing.T) {
	r := NewRegistry()
	a, err := r.Get(setting.TET12())
	if err != nil {
		t.Fatal(err)
	}
	s := setting.TET12()
	s.Intervals = nil
	b, err := r.Get(s)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("equal settings should share one schema")
	}
	c, _ := r.Get(setting.TET24())
	if a == c || a.Equal(c) {
		t.Errorf("different settings should not share a schema")
	}
	if r.Len() != 2 {
		t.Errorf("got %d entries want 2", r.Len())
	}
}

func TestRegistryConcurrent(t *testing.T) {
	for round := 0; round < 20; round++ {
		r := NewRegistry()
		results := make([]*Schema, 8)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				results[i], _ = r.Get(setting.TET12())
			}(i)
		}
		close(start)
		wg.Wait()
		for i, sc := range results {
			if sc == nil || sc != results[0] {
				t.Errorf("round %d: goroutine %d got a different schema", round, i)
			}
		}
		if r.Len() != 1 {
			t.Errorf("round %d: got %d entries want 1", round, r.Len())
		}
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	s := setting.TET12()
	s.AccidentalLimit = 0
	if _, err := r.Get(s); !IsConfigurationError(err) {
		t.Errorf("got %v want a configuration error", err)
	}
	if r.Len() != 0 {
		t.Errorf("invalid settings must not be registered")
	}
}

func TestDerivationIsDeterministic(t *testing.T) {
	a, err := New(setting.TET12())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := New(setting.TET12())
	if !reflect.DeepEqual(a.ToPB(), b.ToPB()) {
		t.Errorf("two derivations of one setting differ")
	}
}

func TestToPB(t *testing.T) {
	sc := MustGet(setting.TET12())
	table := sc.ToPB()
	if len(table.PitchClasses) != 12 {
		t.Errorf("got %d pitch classes want 12", len(table.PitchClasses))
	}
	if len(table.Notes) != 132 {
		t.Errorf("got %d notes want 132", len(table.Notes))
	}
	if got := table.PitchClasses[1].SpellingOf(-1); got != "Db" {
		t.Errorf("SpellingOf(-1) = %q; want Db", got)
	}
	if got := table.PitchClasses[1].SpellingOf(0); got != "" {
		t.Errorf("SpellingOf(0) = %q; want empty", got)
	}
	if table.Qualities == nil {
		t.Errorf("12-TET should export qualities")
	}
	if _, err := proto.Marshal(table); err != nil {
		t.Errorf("proto.Marshal: %v", err)
	}
}

func TestCanonicalize(t *testing.T) {
	sc := MustGet(setting.TET12())
	tests := [][2]string{
		{" C ", "C"},
		{"F♯", "F#"},
		{"B♭", "Bb"},
		{"E𝄫", "Ebb"},
		{"G𝄪", "G##"},
		{"Ｃ＃", "C#"},
		{"Am7", "Am7"},
	}
	for _, tc := range tests {
		if got := sc.Canonicalize(tc[0]); got != tc[1] {
			t.Errorf("Canonicalize(%q) = %q; want %q", tc[0], got, tc[1])
		}
	}
}
