// Package euterpe holds the protobuf messages of euterpe.proto used to export schema tables.
package euterpe

import (
	"github.com/golang/protobuf/proto"
)

type Spelling struct {
	Accidental int32  `protobuf:"zigzag32,1,opt,name=accidental,proto3" json:"accidental" yaml:"accidental" msgpack:"accidental"`
	Name       string `protobuf:"bytes,2,opt,name=name,proto3" json:"name" yaml:"name" msgpack:"name"`
}

func (m *Spelling) Reset()         { *m = Spelling{} }
func (m *Spelling) String() string { return proto.CompactTextString(m) }
func (*Spelling) ProtoMessage()    {}

type PitchClassEntry struct {
	PitchClass int32       `protobuf:"varint,1,opt,name=pitch_class,json=pitchClass,proto3" json:"pitch_class" yaml:"pitch_class" msgpack:"pitch_class"`
	Spellings  []*Spelling `protobuf:"bytes,2,rep,name=spellings,proto3" json:"spellings" yaml:"spellings" msgpack:"spellings"`
}

func (m *PitchClassEntry) Reset()         { *m = PitchClassEntry{} }
func (m *PitchClassEntry) String() string { return proto.CompactTextString(m) }
func (*PitchClassEntry) ProtoMessage()    {}

type NoteEntry struct {
	NoteNumber int32       `protobuf:"varint,1,opt,name=note_number,json=noteNumber,proto3" json:"note_number" yaml:"note_number" msgpack:"note_number"`
	Spellings  []*Spelling `protobuf:"bytes,2,rep,name=spellings,proto3" json:"spellings" yaml:"spellings" msgpack:"spellings"`
}

func (m *NoteEntry) Reset()         { *m = NoteEntry{} }
func (m *NoteEntry) String() string { return proto.CompactTextString(m) }
func (*NoteEntry) ProtoMessage()    {}

type Quality struct {
	Name      string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name" yaml:"name" msgpack:"name"`
	Intervals []int32 `protobuf:"varint,2,rep,packed,name=intervals,proto3" json:"intervals" yaml:"intervals" msgpack:"intervals"`
}

func (m *Quality) Reset()         { *m = Quality{} }
func (m *Quality) String() string { return proto.CompactTextString(m) }
func (*Quality) ProtoMessage()    {}

type SchemaTable struct {
	Semitone            int32              `protobuf:"varint,1,opt,name=semitone,proto3" json:"semitone" yaml:"semitone" msgpack:"semitone"`
	Intervals           []int32            `protobuf:"varint,2,rep,packed,name=intervals,proto3" json:"intervals" yaml:"intervals" msgpack:"intervals"`
	Symbols             []string           `protobuf:"bytes,3,rep,name=symbols,proto3" json:"symbols" yaml:"symbols" msgpack:"symbols"`
	AccidentalLimit     int32              `protobuf:"varint,4,opt,name=accidental_limit,json=accidentalLimit,proto3" json:"accidental_limit" yaml:"accidental_limit" msgpack:"accidental_limit"`
	Sharp               string             `protobuf:"bytes,5,opt,name=sharp,proto3" json:"sharp" yaml:"sharp" msgpack:"sharp"`
	Flat                string             `protobuf:"bytes,6,opt,name=flat,proto3" json:"flat" yaml:"flat" msgpack:"flat"`
	ReferenceNoteNumber int32              `protobuf:"varint,7,opt,name=reference_note_number,json=referenceNoteNumber,proto3" json:"reference_note_number" yaml:"reference_note_number" msgpack:"reference_note_number"`
	TunerNoteNumber     int32              `protobuf:"varint,8,opt,name=tuner_note_number,json=tunerNoteNumber,proto3" json:"tuner_note_number" yaml:"tuner_note_number" msgpack:"tuner_note_number"`
	TunerHz             float64            `protobuf:"fixed64,9,opt,name=tuner_hz,json=tunerHz,proto3" json:"tuner_hz" yaml:"tuner_hz" msgpack:"tuner_hz"`
	PitchClasses        []*PitchClassEntry `protobuf:"bytes,10,rep,name=pitch_classes,json=pitchClasses,proto3" json:"pitch_classes" yaml:"pitch_classes" msgpack:"pitch_classes"`
	Notes               []*NoteEntry       `protobuf:"bytes,11,rep,name=notes,proto3" json:"notes" yaml:"notes" msgpack:"notes"`
	Qualities           []*Quality         `protobuf:"bytes,12,rep,name=qualities,proto3" json:"qualities" yaml:"qualities" msgpack:"qualities"`
}

func (m *SchemaTable) Reset()         { *m = SchemaTable{} }
func (m *SchemaTable) String() string { return proto.CompactTextString(m) }
func (*SchemaTable) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Spelling)(nil), "euterpe.Spelling")
	proto.RegisterType((*PitchClassEntry)(nil), "euterpe.PitchClassEntry")
	proto.RegisterType((*NoteEntry)(nil), "euterpe.NoteEntry")
	proto.RegisterType((*Quality)(nil), "euterpe.Quality")
	proto.RegisterType((*SchemaTable)(nil), "euterpe.SchemaTable")
}

// SpellingOf returns the name spelled with the given accidental, or "".
func (m *PitchClassEntry) SpellingOf(accidental int) string {
	for _, sp := range m.Spellings {
		if int(sp.Accidental) == accidental {
			return sp.Name
		}
	}
	return ""
}
