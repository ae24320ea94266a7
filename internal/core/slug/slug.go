// Package slug derives stable, URL-safe identifiers from human-readable
// labels. Company and industry codes are produced here and never supplied
// by clients.
package slug

import (
	gslug "github.com/gosimple/slug"
)

// Normalize maps a free-text label to a lowercase, hyphen-separated code
// containing only [a-z0-9-]. Deterministic and side-effect-free; collisions
// between distinct labels are surfaced by the repositories as conflicts at
// insertion time.
func Normalize(label string) string {
	return gslug.Make(label)
}

// IsValid reports whether s is already a normalized code.
func IsValid(s string) bool {
	return s != "" && s == gslug.Make(s)
}
