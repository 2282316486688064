package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// Store loads images from a filesystem and caches them by path
type Store struct {
	fsys   fs.FS
	cache  map[string]*ebiten.Image
	logger *zap.Logger
}

// NewStore creates a store reading from fsys
func NewStore(fsys fs.FS, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		fsys:   fsys,
		cache:  make(map[string]*ebiten.Image),
		logger: logger,
	}
}

// Image returns the image at path. An empty path yields nil, nil so callers
// can fall back to flat colors.
func (s *Store) Image(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, nil
	}
	if img, ok := s.cache[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFileSystem(s.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	s.cache[path] = img
	s.logger.Debug("image loaded", zap.String("path", path),
		zap.Int("w", img.Bounds().Dx()), zap.Int("h", img.Bounds().Dy()))

	return img, nil
}

// Sheet loads a sprite sheet and slices it into frames of fw x fh
func (s *Store) Sheet(path string, fw, fh int) ([]*ebiten.Image, error) {
	img, err := s.Image(path)
	if err != nil || img == nil {
		return nil, err
	}
	return Slice(img, fw, fh), nil
}

// Frames returns the frame rectangles of a w x h sheet in row-major order.
// Partial frames at the right and bottom edges are dropped.
func Frames(w, h, fw, fh int) []image.Rectangle {
	if fw <= 0 || fh <= 0 {
		return nil
	}
	var rects []image.Rectangle
	for y := 0; y+fh <= h; y += fh {
		for x := 0; x+fw <= w; x += fw {
			rects = append(rects, image.Rect(x, y, x+fw, y+fh))
		}
	}
	return rects
}

// Slice cuts img into fw x fh sub-images
func Slice(img *ebiten.Image, fw, fh int) []*ebiten.Image {
	b := img.Bounds()
	rects := Frames(b.Dx(), b.Dy(), fw, fh)
	frames := make([]*ebiten.Image, 0, len(rects))
	for _, r := range rects {
		frames = append(frames, img.SubImage(r.Add(b.Min)).(*ebiten.Image))
	}
	return frames
}
