package ascii

import (
	"fmt"
	"strings"
)

// Theme describes the rendering colors of the HTML output and whether the
// character ramp runs dark-to-bright or bright-to-dark.
type Theme struct {
	Name            string
	BackgroundColor string
	TextColor       string

	// InvertMapping reverses the ramp so dark pixels map to dense glyphs,
	// which is what reads correctly on a light background.
	InvertMapping bool
}

// Available themes
var themes = map[string]Theme{
	"dark": {
		Name:            "dark",
		BackgroundColor: "#1a1a1a",
		TextColor:       "#e0e0e0",
		InvertMapping:   false,
	},
	"light": {
		Name:            "light",
		BackgroundColor: "#f0f0f0",
		TextColor:       "#111111",
		InvertMapping:   true,
	},
}

// GetTheme returns a theme by name. An empty name selects the dark theme.
func GetTheme(name string) (Theme, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))
	if normalizedName == "" {
		normalizedName = "dark"
	}

	if theme, exists := themes[normalizedName]; exists {
		return theme, nil
	}

	var available []string
	for key := range themes {
		available = append(available, key)
	}

	return Theme{}, fmt.Errorf("unknown theme '%s'. Available themes: %v", name, available)
}

// ListThemes returns all available themes
func ListThemes() map[string]Theme {
	return themes
}
