// Package sanitize reduces serialized query results to a transport-safe
// character set before they are sent to a client. The pass is lossy:
// callers may rely on structural markers ({ } [ ] , : ") surviving intact,
// never on exact round-tripping of arbitrary field content.
package sanitize

import "strings"

// allowed reports whether r may appear verbatim in normalized output.
// The set is alphanumerics plus the structural characters [ ] _ : . { } , / "
// and the space used as the replacement rune.
func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '[', ']', '_', ':', '.', '{', '}', ',', '/', '"', ' ':
		return true
	}
	return false
}

// Normalize collapses every disallowed rune to a single space, then collapses
// runs of spaces to one.
func Normalize(s string) string {
	return CollapseSpaces(ReplaceDisallowed(s))
}

// ReplaceDisallowed substitutes a space for every rune outside the allow-list.
func ReplaceDisallowed(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// CollapseSpaces reduces every run of consecutive spaces to a single space.
func CollapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
