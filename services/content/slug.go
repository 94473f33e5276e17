package content

import "strings"

// Slugify derives a URL slug from a title: lowercase, anything outside
// [a-z0-9 -] stripped, then whitespace runs collapsed into single hyphens.
func Slugify(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n':
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
