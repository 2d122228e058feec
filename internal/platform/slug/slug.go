// Package slug derives filename-safe identifiers from book titles and
// category labels.
package slug

import "strings"

// Make lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen. Empty input yields "tanpa-judul" so a
// document always gets a usable filename.
func Make(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	pendingSep := false
	for _, r := range strings.ToLower(input) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "tanpa-judul"
	}
	return b.String()
}
