package schema

import "github.com/pkg/errors"

var (
	// ErrConfiguration reports a setting no schema can be derived from.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrTemplate reports a note name template without exactly one placeholder.
	ErrTemplate = errors.New("invalid note name template")

	ErrInvalidPitchClass       = errors.New("invalid pitch class")
	ErrInvalidPitchName        = errors.New("invalid pitch name")
	ErrInvalidNoteNumber       = errors.New("invalid note number")
	ErrInvalidNoteName         = errors.New("invalid note name")
	ErrInvalidAccidentalOffset = errors.New("invalid accidental offset")
)

// IsConfigurationError tells whether err was caused by an inconsistent setting.
func IsConfigurationError(err error) bool {
	switch errors.Cause(err) {
	case ErrConfiguration, ErrTemplate:
		return true
	}
	return false
}
