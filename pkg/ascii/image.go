package ascii

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Grid is a row-major grid of luminance values (0-255), one per output
// character cell. It is built once per conversion and never mutated.
type Grid [][]uint8

// Cols returns the number of character columns in the grid
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Rows returns the number of character rows in the grid
func (g Grid) Rows() int {
	return len(g)
}

// Decode parses raw image bytes into a pixel buffer. Supported formats are
// JPEG, PNG, GIF, BMP, WebP and TIFF.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return img, nil
}

// TargetHeight computes the character-row count for a given column width,
// scaled by the source aspect ratio and halved to compensate for monospace
// character cells being roughly twice as tall as they are wide.
func TargetHeight(origWidth, origHeight, width int) int {
	if origWidth < 1 {
		origWidth = 1
	}
	height := int(math.Round(float64(width) * float64(origHeight) / float64(origWidth) * aspectRatioCorrection))
	if height < 1 {
		height = 1
	}
	return height
}

// aspectRatioCorrection compensates for the 1:2 width/height ratio of a
// monospace character cell.
const aspectRatioCorrection = 0.5

// Resample scales the image down to the requested character-column width
// using Lanczos resampling. A width <= 0 leaves the image untouched.
func Resample(img image.Image, width int) image.Image {
	if width <= 0 {
		return img
	}

	bounds := img.Bounds()
	height := TargetHeight(bounds.Dx(), bounds.Dy(), width)

	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Luminance reduces an image to a luminance grid. The grayscale conversion
// is imaging's 0.299R + 0.587G + 0.114B luma, which is the single formula
// used throughout this package.
func Luminance(img image.Image) Grid {
	gray := imaging.Grayscale(img)
	width := gray.Bounds().Dx()
	height := gray.Bounds().Dy()

	grid := make(Grid, height)
	for y := 0; y < height; y++ {
		row := make([]uint8, width)
		for x := 0; x < width; x++ {
			// All channels are equal after Grayscale; read red.
			row[x] = gray.Pix[gray.PixOffset(x, y)]
		}
		grid[y] = row
	}

	return grid
}
