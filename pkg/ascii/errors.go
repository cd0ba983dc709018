package ascii

import "errors"

var (
	// ErrNoImage is returned when a conversion is requested with no image data.
	ErrNoImage = errors.New("no image provided")

	// ErrDecode is returned when the input bytes are not a valid image in a
	// supported format.
	ErrDecode = errors.New("unable to decode image")
)
