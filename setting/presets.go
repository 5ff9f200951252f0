package setting

import "fmt"

func octaveTemplates(from, to int) []string {
	result := []string{}
	for o := from; o <= to; o++ {
		result = append(result, fmt.Sprintf("<N>%d", o))
	}
	return result
}

// TET12 is the conventional twelve-tone equal temperament with MIDI numbering (C4 = 60, A4 = 440Hz).
func TET12() Setting {
	return Setting{
		Semitone:            12,
		Intervals:           []int{2, 2, 1, 2, 2, 2, 1},
		Symbols:             []string{"C", "D", "E", "F", "G", "A", "B"},
		AccidentalLimit:     2,
		Sharp:               "#",
		Flat:                "b",
		Templates:           octaveTemplates(-1, 9),
		ReferenceNoteNumber: 60,
		TunerNoteNumber:     69,
		TunerHz:             440,
	}
}

// TET24 splits every semitone of TET12 into quarter tones; one accidental is a quarter tone.
func TET24() Setting {
	return Setting{
		Semitone:            24,
		Intervals:           []int{4, 4, 2, 4, 4, 4, 2},
		Symbols:             []string{"C", "D", "E", "F", "G", "A", "B"},
		AccidentalLimit:     3,
		Sharp:               "+",
		Flat:                "d",
		Templates:           octaveTemplates(-1, 9),
		ReferenceNoteNumber: 120,
		TunerNoteNumber:     138,
		TunerHz:             440,
	}
}
