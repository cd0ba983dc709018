package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameStem(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "photo.png", "photo"},
		{"no extension", "photo", "photo"},
		{"spaces and punctuation", "my photo (1).jpeg", "my_photo__1_"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\cat.gif`, "cat"},
		{"mixed separators", `uploads\2024/dog.png`, "dog"},
		{"trailing backslash", `C:\Users\me\`, "me"},
		{"hidden file", ".bashrc", "bashrc"},
		{"empty", "", "image"},
		{"only dots", "...", "image"},
		{"unicode", "fotografía.png", "fotograf_a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filenameStem(tt.input))
		})
	}
}
