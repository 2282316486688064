// Package ui draws the HUD and shared text.
package ui

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceSource     *text.GoTextFaceSource
	faceSourceErr  error
	faceSourceOnce sync.Once
)

// Face returns the Go Regular face at size. It returns nil if the embedded
// font cannot be parsed, in which case callers skip text.
func Face(size float64) text.Face {
	faceSourceOnce.Do(func() {
		faceSource, faceSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if faceSourceErr != nil {
		return nil
	}
	return &text.GoTextFace{Source: faceSource, Size: size}
}

// DrawText draws s with its top-left corner at (x, y)
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawCenteredText draws s centered on (cx, cy)
func DrawCenteredText(screen *ebiten.Image, s string, face text.Face, cx, cy float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
