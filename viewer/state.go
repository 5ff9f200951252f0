package viewer

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/but80/euterpe/log"
	"github.com/but80/euterpe/theory"
	"github.com/but80/euterpe/util"
	"github.com/fatih/color"
)

var tonicColor = color.New(color.FgGreen, color.Bold)
var alteredColor = color.New(color.FgYellow)

// Printer is a table that can be drawn to a terminal.
type Printer interface {
	Print(w io.Writer)
}

type DegreeState struct {
	Degree     int
	PitchClass *theory.PitchClass
	Signature  int
	Accidental int
	// Hz is 0 when no tuner is attached or the note is out of range.
	Hz float64
}

func (ds *DegreeState) Print(w io.Writer) {
	hz := "-"
	if 0 < ds.Hz {
		hz = fmt.Sprintf("%.3f", ds.Hz)
	}
	line := fmt.Sprintf(
		"%3d %-6s %3d %4s %4s %10s\n",
		ds.Degree+1,
		ds.PitchClass,
		ds.PitchClass.Int(),
		util.Signed(ds.Signature),
		util.Signed(ds.Accidental),
		hz,
	)
	switch {
	case ds.Degree == 0:
		tonicColor.Fprint(w, line)
	case ds.Accidental != 0:
		alteredColor.Fprint(w, line)
	default:
		fmt.Fprint(w, line)
	}
}

type ScaleState struct {
	Scale   *theory.Scale
	Degrees []*DegreeState
}

// NewScaleState spells every degree of sc. When tuner is not nil each degree
// gets the frequency of its note in the octave of the reference note.
func NewScaleState(sc *theory.Scale, tuner *theory.Tuner) *ScaleState {
	s := sc.Schema()
	base := s.ReferenceNoteNumber() - s.ReferenceNoteNumber()%s.Semitone() + sc.Key().PitchClass()
	signatures := sc.Signatures()
	accidentals := sc.Accidentals()
	positions := sc.Positions()
	ss := &ScaleState{Scale: sc}
	for i, pc := range sc.Components() {
		ds := &DegreeState{
			Degree:     i,
			PitchClass: pc,
			Signature:  signatures[i],
			Accidental: accidentals[i],
		}
		if tuner != nil {
			hz, err := tuner.Hz(theory.Semitones(base + positions[i]))
			if err != nil {
				log.Debugf("no frequency for degree %d of %s: %s", i+1, sc, err)
			}
			ds.Hz = hz
		}
		ss.Degrees = append(ss.Degrees, ds)
	}
	return ss
}

func (ss *ScaleState) Print(w io.Writer) {
	fmt.Fprintf(w, "%s  %s\n", ss.Scale, util.SignedList(ss.Scale.Key().Signature()))
	fmt.Fprintln(w, "Deg Name    PC  Sig  Acc         Hz")
	for _, ds := range ss.Degrees {
		ds.Print(w)
	}
}

type TunerRow struct {
	NoteNumber int
	Names      []string
	Ratio      float64
	Cents      float64
	Hz         float64
}

type TunerState struct {
	Title string
	Rows  []*TunerRow
}

// NewTunerState lists the notes of one octave starting at the tuner's tonic, shifted by octave.
func NewTunerState(title string, tuner *theory.Tuner, octave int) (*TunerState, error) {
	s := tuner.Schema()
	n := s.Semitone()
	ratios := tuner.Ratios()
	ts := &TunerState{Title: title}
	for i := 0; i < n; i++ {
		number := tuner.Tonic() + octave*n + i
		hz, err := tuner.Hz(theory.Semitones(number))
		if err != nil {
			return nil, err
		}
		names, _ := s.ConvertNoteNumberToNoteNames(number)
		ts.Rows = append(ts.Rows, &TunerRow{
			NoteNumber: number,
			Names:      util.Names(names),
			Ratio:      ratios[i],
			Cents:      1200*math.Log2(ratios[i]) - 1200*float64(i)/float64(n),
			Hz:         hz,
		})
	}
	return ts, nil
}

func (ts *TunerState) Print(w io.Writer) {
	fmt.Fprintln(w, ts.Title)
	fmt.Fprintln(w, "Note Names              Ratio    Cents         Hz")
	for i, r := range ts.Rows {
		line := fmt.Sprintf("%4d %-18s %7.5f %+8.3f %10.3f\n", r.NoteNumber, strings.Join(r.Names, "/"), r.Ratio, r.Cents, r.Hz)
		if i == 0 {
			tonicColor.Fprint(w, line)
		} else {
			fmt.Fprint(w, line)
		}
	}
}

// Redraw clears the terminal before printing p.
func Redraw(w io.Writer, p Printer) {
	fmt.Fprint(w, cursor.ClearEntireScreen())
	fmt.Fprint(w, cursor.MoveTo(0, 0))
	p.Print(w)
}
