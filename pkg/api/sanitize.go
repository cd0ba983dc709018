package api

import (
	"path"
	"path/filepath"
	"strings"
)

// filenameStem reduces an uploaded filename to a safe basename without its
// extension, for use in the generated download filenames. Anything that is
// not alphanumeric, dot, dash or underscore is replaced.
func filenameStem(name string) string {
	// Browsers may send either separator style; normalize backslashes
	// before taking the basename.
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))

	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfile-style names have no separate extension.
		stem = base
	}
	stem = strings.Trim(stem, ".")
	if stem == "" {
		return "image"
	}
	return stem
}
