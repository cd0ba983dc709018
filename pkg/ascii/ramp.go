package ascii

import (
	"fmt"
	"strings"
)

// Ramp is an ordered sequence of glyphs from visually sparse (dark pixels on
// a dark background theme render as the first glyph) to dense.
type Ramp []rune

// Available character ramps
var ramps = map[string]Ramp{
	"simple":   Ramp(" .:-=+*#%@"),
	"detailed": Ramp(" .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"),
}

// GetRamp returns a character ramp by name
func GetRamp(name string) (Ramp, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))
	if normalizedName == "" {
		normalizedName = "simple"
	}

	if ramp, exists := ramps[normalizedName]; exists {
		return ramp, nil
	}

	var available []string
	for key := range ramps {
		available = append(available, key)
	}

	return nil, fmt.Errorf("unknown character ramp '%s'. Available ramps: %v", name, available)
}

// Reversed returns a copy of the ramp with the glyph order inverted. Light
// themes use this so dark pixels map to dense glyphs on a light background.
func (r Ramp) Reversed() Ramp {
	reversed := make(Ramp, len(r))
	for i, glyph := range r {
		reversed[len(r)-1-i] = glyph
	}
	return reversed
}

// Glyph maps a luminance value (0-255) onto the ramp. The index is
// floor(lum * len / 256), clamped to the last glyph, so the mapping is
// monotone in luminance.
func (r Ramp) Glyph(lum uint8) rune {
	idx := int(lum) * len(r) / 256
	if idx >= len(r) {
		idx = len(r) - 1
	}
	return r[idx]
}
