package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alde/asciify/pkg/ascii"
)

func TestIntegrationGradientConversion(t *testing.T) {
	// Horizontal gradient so the output exercises the whole ramp.
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(x * 4)
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	theme, err := ascii.GetTheme("dark")
	if err != nil {
		t.Fatalf("Failed to get theme: %v", err)
	}
	ramp, err := ascii.GetRamp("detailed")
	if err != nil {
		t.Fatalf("Failed to get ramp: %v", err)
	}

	conv := ascii.New(ascii.Options{
		Width: 32,
		Theme: theme,
		Ramp:  ramp,
	})

	result, err := conv.Convert(buf.Bytes())
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}

	// 32 columns, round(32 * 32/64 * 0.5) = 8 rows
	if result.Cols != 32 || result.Rows != 8 {
		t.Fatalf("Expected 32x8 grid, got %dx%d", result.Cols, result.Rows)
	}

	lines := strings.Split(strings.TrimSuffix(result.Text, "\n"), "\n")
	if len(lines) != result.Rows {
		t.Errorf("Expected %d text rows, got %d", result.Rows, len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != result.Cols {
			t.Errorf("Row %d has %d glyphs, expected %d", i, len([]rune(line)), result.Cols)
		}
	}

	// Write both encodings the way the convert command does and check the
	// artifacts are self-contained.
	tempDir := t.TempDir()
	txtPath := filepath.Join(tempDir, "gradient.txt")
	htmlPath := filepath.Join(tempDir, "gradient.html")

	if err := os.WriteFile(txtPath, []byte(result.Text), 0644); err != nil {
		t.Fatalf("Failed to write text output: %v", err)
	}
	if err := os.WriteFile(htmlPath, []byte(result.HTML), 0644); err != nil {
		t.Fatalf("Failed to write HTML output: %v", err)
	}

	htmlData, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("Failed to read HTML output: %v", err)
	}
	if !strings.HasPrefix(string(htmlData), "<!DOCTYPE html>") {
		t.Error("HTML output should be a standalone document")
	}

	// Same bytes, same flags, byte-identical output.
	again, err := conv.Convert(buf.Bytes())
	if err != nil {
		t.Fatalf("Second conversion failed: %v", err)
	}
	if again.Text != result.Text || again.HTML != result.HTML {
		t.Error("Conversion is not deterministic")
	}
}
