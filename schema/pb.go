package schema

import (
	pb "github.com/but80/euterpe/pb/euterpe"
)

func spellingsToPB(slots []string, limit int) []*pb.Spelling {
	result := []*pb.Spelling{}
	for i, name := range slots {
		if name == "" {
			continue
		}
		result = append(result, &pb.Spelling{Accidental: int32(i - limit), Name: name})
	}
	return result
}

func int32s(a []int) []int32 {
	result := make([]int32, len(a))
	for i, v := range a {
		result[i] = int32(v)
	}
	return result
}

// ToPB exports the derived tables.
func (s *Schema) ToPB() *pb.SchemaTable {
	st := s.setting
	table := &pb.SchemaTable{
		Semitone:            int32(st.Semitone),
		Intervals:           int32s(st.Intervals),
		Symbols:             s.Symbols(),
		AccidentalLimit:     int32(st.AccidentalLimit),
		Sharp:               st.Sharp,
		Flat:                st.Flat,
		ReferenceNoteNumber: int32(st.ReferenceNoteNumber),
		TunerNoteNumber:     int32(st.TunerNoteNumber),
		TunerHz:             st.TunerHz,
	}
	for _, pc := range s.pitchClasses {
		table.PitchClasses = append(table.PitchClasses, &pb.PitchClassEntry{
			PitchClass: int32(pc),
			Spellings:  spellingsToPB(s.pitchClass.classToNames[pc], st.AccidentalLimit),
		})
	}
	for _, n := range s.noteNumbers {
		table.Notes = append(table.Notes, &pb.NoteEntry{
			NoteNumber: int32(n),
			Spellings:  spellingsToPB(s.note.numberToNames[n], st.AccidentalLimit),
		})
	}
	for _, q := range s.qualities.All() {
		table.Qualities = append(table.Qualities, &pb.Quality{
			Name:      q.Name,
			Intervals: int32s(q.Intervals),
		})
	}
	return table
}
