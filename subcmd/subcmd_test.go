package subcmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	pb "github.com/but80/euterpe/pb/euterpe"
	"github.com/but80/euterpe/schema"
	"github.com/but80/euterpe/setting"
	"github.com/but80/euterpe/theory"
	"github.com/golang/protobuf/proto"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func tet12() *schema.Schema {
	return schema.MustGet(setting.TET12())
}

func TestDump(t *testing.T) {
	s := tet12()
	decoders := map[string]func([]byte, *pb.SchemaTable) error{
		"json":     func(b []byte, v *pb.SchemaTable) error { return json.Unmarshal(b, v) },
		"yaml":     func(b []byte, v *pb.SchemaTable) error { return yaml.Unmarshal(b, v) },
		"protobuf": func(b []byte, v *pb.SchemaTable) error { return proto.Unmarshal(b, v) },
		"msgpack":  func(b []byte, v *pb.SchemaTable) error { return msgpack.Unmarshal(b, v) },
	}
	for format, decode := range decoders {
		b, err := render(s.ToPB(), format)
		if err != nil {
			t.Errorf("%s: %v", format, err)
			continue
		}
		var table pb.SchemaTable
		if err := decode(b, &table); err != nil {
			t.Errorf("%s: decode: %v", format, err)
			continue
		}
		if table.Semitone != 12 || len(table.PitchClasses) != 12 || len(table.Notes) != 132 {
			t.Errorf("%s: got %d-TET with %d pitch classes and %d notes", format, table.Semitone, len(table.PitchClasses), len(table.Notes))
			continue
		}
		if got := table.PitchClasses[1].SpellingOf(1); got != "C#" {
			t.Errorf("%s: got %q want C#", format, got)
		}
	}

	b, err := render(s.ToPB(), "text")
	if err != nil || !strings.Contains(string(b), `name: "B#"`) {
		t.Errorf("text dump lacks B#: %v\n%s", err, b)
	}
	if _, err := render(s.ToPB(), "xml"); err == nil {
		t.Errorf("unknown formats should fail")
	}
}

func TestParseScale(t *testing.T) {
	s := tet12()
	sc, err := parseScale(s, []string{"E♭", "harmonic", "minor"})
	if err != nil {
		t.Fatal(err)
	}
	if sc.String() != "Eb HarmonicMinor" {
		t.Errorf("got %s want Eb HarmonicMinor", sc)
	}
	if sc, _ := parseScale(s, []string{"G"}); sc.Kind().Name != theory.Major.Name {
		t.Errorf("got %s want G Major", sc)
	}
	if _, err := parseScale(s, []string{"C", "blues"}); err == nil {
		t.Errorf("unknown kinds should fail")
	}
	if _, err := parseScale(s, nil); err == nil {
		t.Errorf("a key is required")
	}

	s24 := schema.MustGet(setting.TET24())
	sc, err = parseScale(s24, []string{"C", "dorian"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sc.Intervals(); got[0] != 4 || got[1] != 2 {
		t.Errorf("got %v want 24-TET steps", got)
	}
}

func TestNewTuner(t *testing.T) {
	s := tet12()
	for _, system := range tunerSystems {
		if _, err := newTuner(s, system); err != nil {
			t.Errorf("%s: %v", system, err)
		}
	}
	if _, err := newTuner(s, "werckmeister"); err == nil {
		t.Errorf("unknown systems should fail")
	}
}

func TestPrintChord(t *testing.T) {
	s := tet12()
	sc, _ := parseScale(s, []string{"C", "minor"})
	c, err := theory.NewChord(s, "Cm7/Bb", theory.WithScale(sc))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	printChord(&buf, c)
	if want := "components: Bb C Eb G"; !strings.Contains(buf.String(), want) {
		t.Errorf("output lacks %q:\n%s", want, buf.String())
	}

	c, _ = theory.NewChord(s, "C7")
	buf.Reset()
	printChord(&buf, c)
	if want := "components: C E G Bb/A#"; !strings.Contains(buf.String(), want) {
		t.Errorf("output lacks %q:\n%s", want, buf.String())
	}
}

func TestPrintNote(t *testing.T) {
	s := tet12()
	tuner, _ := newTuner(s, "equal")
	n, err := parseNote(s, "69")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := printNote(&buf, n, tuner); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Bbb4 A4 G##4", "pitch class: 9", "440.000 Hz"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, buf.String())
		}
	}

	if n, err := parseNote(s, "C♯4"); err != nil || n.NoteNumber() != 61 {
		t.Errorf("parseNote(C♯4) = %v, %v; want 61", n, err)
	}
	if _, err := parseNote(s, "H4"); err == nil {
		t.Errorf("unknown names should fail")
	}
}
