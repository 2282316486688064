package assets

import (
	"image"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrames(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		fw, fh   int
		expected []image.Rectangle
	}{
		{
			name: "single row",
			w:    96, h: 32, fw: 32, fh: 32,
			expected: []image.Rectangle{
				image.Rect(0, 0, 32, 32),
				image.Rect(32, 0, 64, 32),
				image.Rect(64, 0, 96, 32),
			},
		},
		{
			name: "grid is row-major",
			w:    64, h: 64, fw: 32, fh: 32,
			expected: []image.Rectangle{
				image.Rect(0, 0, 32, 32),
				image.Rect(32, 0, 64, 32),
				image.Rect(0, 32, 32, 64),
				image.Rect(32, 32, 64, 64),
			},
		},
		{
			name: "partial frame dropped",
			w:    70, h: 32, fw: 32, fh: 32,
			expected: []image.Rectangle{
				image.Rect(0, 0, 32, 32),
				image.Rect(32, 0, 64, 32),
			},
		},
		{name: "zero frame size", w: 64, h: 64, fw: 0, fh: 32},
		{name: "sheet smaller than frame", w: 16, h: 16, fw: 32, fh: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Frames(tt.w, tt.h, tt.fw, tt.fh))
		})
	}
}

func TestStore_Image_EmptyPath(t *testing.T) {
	s := NewStore(fstest.MapFS{}, nil)

	img, err := s.Image("")
	require.NoError(t, err)
	assert.Nil(t, img)
}

func TestStore_Image_Missing(t *testing.T) {
	s := NewStore(fstest.MapFS{}, nil)

	_, err := s.Image("graphics/none.png")
	assert.Error(t, err)

	_, err = s.Sheet("graphics/none.png", 32, 32)
	assert.Error(t, err)
}
