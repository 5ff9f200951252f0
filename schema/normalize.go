package schema

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Canonicalize rewrites user input into the spelling the tables use:
// full-width characters are folded, the text is NFC-normalized and
// the Unicode accidental signs are replaced by the configured symbols.
func (s *Schema) Canonicalize(name string) string {
	name = norm.NFC.String(width.Fold.String(strings.TrimSpace(name)))
	sharp, flat := s.setting.Sharp, s.setting.Flat
	return strings.NewReplacer(
		"\U0001D12A", sharp+sharp, // double sharp
		"\U0001D12B", flat+flat, // double flat
		"♯", sharp,
		"♭", flat,
	).Replace(name)
}
