package theory

import (
	"github.com/but80/euterpe/schema"
)

// Key is a tonic spelling together with the accidentals of its major signature.
type Key struct {
	schema     *schema.Schema
	keyName    string
	pitchClass int
	signature  []int
}

func NewKey(s *schema.Schema, pitchName string) (*Key, error) {
	pc, err := s.ConvertPitchNameToPitchClass(pitchName)
	if err != nil {
		return nil, err
	}
	signature, err := s.GenerateKeyAccidentals(pitchName)
	if err != nil {
		return nil, err
	}
	return &Key{schema: s, keyName: pitchName, pitchClass: pc, signature: signature}, nil
}

func (k *Key) Schema() *schema.Schema {
	return k.schema
}

func (k *Key) KeyName() string {
	return k.keyName
}

func (k *Key) PitchClass() int {
	return k.pitchClass
}

func (k *Key) Int() int {
	return k.pitchClass
}

// Signature returns the accidentals of each degree's letter, starting at the tonic.
func (k *Key) Signature() []int {
	return append([]int(nil), k.signature...)
}

// Equal reports whether both keys are spelled the same in the same schema.
func (k *Key) Equal(other *Key) bool {
	return other != nil && k.keyName == other.keyName && k.schema.Equal(other.schema)
}

func (k *Key) String() string {
	return k.keyName
}
