package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel cleans up a user-supplied color name for display.
//   - Composes unicode (NFC) so visually equal names compare equal
//   - Trims surrounding whitespace
//   - Collapses internal runs of whitespace to a single space
func NormalizeLabel(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
