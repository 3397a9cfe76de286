package specifier

import "strings"

// Normalize returns the PEP 503 normalized form of a distribution name:
// lowercase, with every run of hyphens, underscores, and dots collapsed
// to a single hyphen.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inRun := false
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == '.' {
			if !inRun {
				b.WriteByte('-')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// NamesEqual reports whether two distribution names refer to the same
// package under PEP 503 normalization.
func NamesEqual(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
