package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/wiretown/internal/domain/entity"
)

// Colors for rendering
var (
	colorPanel = color.RGBA{0, 0, 0, 160}
	colorMoney = color.RGBA{255, 215, 0, 255}
	colorText  = color.RGBA{230, 230, 230, 255}
)

// Overlay draws the HUD: money, consumables and crimped cables
type Overlay struct {
	face text.Face
}

// NewOverlay creates the HUD
func NewOverlay() *Overlay {
	return &Overlay{face: Face(20)}
}

// Lines returns the HUD text, one entry per line
func Lines(inv entity.Inventory) []string {
	lines := []string{fmt.Sprintf("Money: %d", inv.Money)}

	items := make([]string, 0, len(inv.Items))
	for k := range inv.Items {
		items = append(items, k)
	}
	sort.Strings(items)
	parts := make([]string, 0, len(items))
	for _, k := range items {
		parts = append(parts, fmt.Sprintf("%s %d", strings.ToUpper(k), inv.Items[k]))
	}
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, "  "))
	}

	if n := len(inv.Cables); n > 0 {
		last := inv.Cables[n-1]
		lines = append(lines, fmt.Sprintf("Cables: %d (last %s %s)", n, last.Order, last.Quality))
	}
	return lines
}

// Draw renders the HUD for inv in the top-left corner
func (o *Overlay) Draw(screen *ebiten.Image, inv entity.Inventory) {
	lines := Lines(inv)
	const lineH = 26.0
	vector.DrawFilledRect(screen, 8, 8, 300, float32(lineH*float64(len(lines))+12), colorPanel, false)

	for i, line := range lines {
		c := colorText
		if i == 0 {
			c = colorMoney
		}
		DrawText(screen, line, o.face, 16, 14+lineH*float64(i), c)
	}
}
