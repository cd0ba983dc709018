package ascii

import (
	"fmt"
	"strings"
	"time"
)

// DefaultWidth is the character-column width used when no explicit width is
// requested and full-resolution mode is off.
const DefaultWidth = 150

// Options contains conversion settings
type Options struct {
	// Width is the target character-column width. Ignored when
	// FullResolution is set; 0 means DefaultWidth.
	Width          int
	FullResolution bool
	Theme          Theme
	Ramp           Ramp
}

// Result holds the two rendered encodings of one conversion
type Result struct {
	Text string
	HTML string
	Cols int
	Rows int

	Stats Stats
}

// Stats tracks conversion metrics
type Stats struct {
	InputSize      uint64
	TextSize       uint64
	HTMLSize       uint64
	ProcessingTime time.Duration
}

// Converter turns raw image bytes into ASCII art
type Converter struct {
	options Options
	ramp    Ramp
}

// New creates a new converter instance. The effective ramp direction is
// resolved here: light themes invert the mapping.
func New(opts Options) *Converter {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Ramp == nil {
		opts.Ramp, _ = GetRamp("simple")
	}

	ramp := opts.Ramp
	if opts.Theme.InvertMapping {
		ramp = ramp.Reversed()
	}

	return &Converter{
		options: opts,
		ramp:    ramp,
	}
}

// Convert runs the full pipeline: decode, optional resample, luminance
// mapping, and serialization to text and HTML. Identical input bytes and
// options always produce identical output.
func (c *Converter) Convert(data []byte) (Result, error) {
	start := time.Now()

	img, err := Decode(data)
	if err != nil {
		return Result{}, fmt.Errorf("conversion failed: %w", err)
	}

	if !c.options.FullResolution {
		img = Resample(img, c.options.Width)
	}

	grid := Luminance(img)
	text := c.renderText(grid)
	html := renderViewerHTML(text, grid.Cols(), grid.Rows(), c.options.Theme)

	return Result{
		Text: text,
		HTML: html,
		Cols: grid.Cols(),
		Rows: grid.Rows(),
		Stats: Stats{
			InputSize:      uint64(len(data)),
			TextSize:       uint64(len(text)),
			HTMLSize:       uint64(len(html)),
			ProcessingTime: time.Since(start),
		},
	}, nil
}

// renderText serializes the luminance grid through the ramp, one line per
// pixel row.
func (c *Converter) renderText(grid Grid) string {
	var builder strings.Builder
	builder.Grow((grid.Cols() + 1) * grid.Rows())

	for _, row := range grid {
		for _, lum := range row {
			builder.WriteRune(c.ramp.Glyph(lum))
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}
