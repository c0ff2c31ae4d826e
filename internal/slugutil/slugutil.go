package slugutil

import (
	"strings"
)

// Lithuanian diacritics are transliterated so slugs stay ASCII.
var translit = map[rune]rune{
	'ą': 'a', 'č': 'c', 'ę': 'e', 'ė': 'e', 'į': 'i',
	'š': 's', 'ų': 'u', 'ū': 'u', 'ž': 'z',
}

// Slugify converts a title to a URL-safe, lowercase, hyphenated slug.
// Idempotent: slugifying a slug returns it unchanged.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if t, ok := translit[r]; ok {
			r = t
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// NormalizeID strips the legacy random suffix that old record IDs carried
// after the UUID part. A canonical 5-segment UUID passes through unchanged.
// Only the startup migration calls this; new IDs are plain UUIDs.
func NormalizeID(id string) string {
	parts := strings.Split(id, "-")
	if len(parts) <= 5 {
		return id
	}
	return strings.Join(parts[:5], "-")
}
