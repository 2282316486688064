package scene

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/wiretown/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorSprite  = color.RGBA{80, 80, 100, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorHitbox  = color.RGBA{200, 200, 100, 128}
	colorTrigger = color.RGBA{100, 100, 200, 128}

	colorTriggerEdge = color.RGBA{230, 200, 90, 200}
)

// drawable is one item of the camera draw list
type drawable struct {
	rect  entity.Rect
	z     int
	image *ebiten.Image
	color color.RGBA
}

// CameraOffset returns the world offset that centers the player on screen
func (b *Base) CameraOffset() (float64, float64) {
	if b.player == nil {
		return 0, 0
	}
	return b.player.Rect.CenterX() - float64(b.Env.ScreenW)/2,
		b.player.Rect.CenterY() - float64(b.Env.ScreenH)/2
}

// drawList returns sprites and the player ordered by layer, then by
// rect center Y within a layer.
func (b *Base) drawList() []drawable {
	list := make([]drawable, 0, len(b.Sprites)+1)
	for _, s := range b.Sprites {
		c := s.Color
		if c.A == 0 {
			c = colorSprite
		}
		list = append(list, drawable{rect: s.Rect, z: s.Z, image: s.Image, color: c})
	}
	if b.player != nil {
		list = append(list, drawable{
			rect:  b.player.Rect,
			z:     b.player.Z,
			image: b.player.Frame(),
			color: colorPlayer,
		})
	}

	slices.SortStableFunc(list, func(a, c drawable) int {
		if a.z != c.z {
			return a.z - c.z
		}
		switch {
		case a.rect.CenterY() < c.rect.CenterY():
			return -1
		case a.rect.CenterY() > c.rect.CenterY():
			return 1
		}
		return 0
	})
	return list
}

// DrawWorld renders the scene through a camera following the player
func (b *Base) DrawWorld(screen *ebiten.Image) {
	screen.Fill(b.BgColor)
	offX, offY := b.CameraOffset()

	for _, d := range b.drawList() {
		x, y := d.rect.X-offX, d.rect.Y-offY
		if d.image == nil {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(d.rect.W), float32(d.rect.H), d.color, false)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(d.image, op)
	}

	if b.debug {
		b.drawHitboxes(screen, offX, offY)
	}
}

// drawHitboxes draws obstacles, triggers and the player hitbox
func (b *Base) drawHitboxes(screen *ebiten.Image, offX, offY float64) {
	fill := func(r entity.Rect, c color.RGBA) {
		vector.DrawFilledRect(screen, float32(r.X-offX), float32(r.Y-offY), float32(r.W), float32(r.H), c, false)
	}
	for _, r := range b.Movement.Obstacles() {
		fill(r, colorHitbox)
	}
	for _, t := range b.Triggers {
		fill(t.Rect, colorTrigger)
	}
	if b.player != nil {
		fill(b.player.Hitbox, colorHitbox)
	}
}
