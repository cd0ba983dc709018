package cmd

import (
	"testing"

	"github.com/alde/asciify/pkg/ascii"
)

func TestConversionOptionsUsesGivenWidth(t *testing.T) {
	themeName = "dark"
	detailed = false
	fullResolution = false

	opts, err := conversionOptions(80)
	if err != nil {
		t.Fatalf("conversionOptions failed: %v", err)
	}

	if opts.Width != 80 {
		t.Errorf("Expected width 80, got %d", opts.Width)
	}
	// The convert flag variable must not be touched by resolving options
	// for another command.
	if width != ascii.DefaultWidth {
		t.Errorf("Shared width flag changed to %d", width)
	}
}

func TestConversionOptionsDetailedRamp(t *testing.T) {
	themeName = "light"
	detailed = true
	defer func() {
		themeName = "dark"
		detailed = false
	}()

	opts, err := conversionOptions(ascii.DefaultWidth)
	if err != nil {
		t.Fatalf("conversionOptions failed: %v", err)
	}

	if len(opts.Ramp) != 70 {
		t.Errorf("Expected detailed 70-glyph ramp, got %d glyphs", len(opts.Ramp))
	}
	if !opts.Theme.InvertMapping {
		t.Error("Light theme should invert the ramp mapping")
	}
}

func TestConversionOptionsUnknownTheme(t *testing.T) {
	themeName = "solarized"
	defer func() { themeName = "dark" }()

	if _, err := conversionOptions(ascii.DefaultWidth); err == nil {
		t.Error("Expected error for unknown theme")
	}
}
