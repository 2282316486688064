package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a static visual placed in a scene (background, building, tile)
type Sprite struct {
	Rect   Rect // Visual bounds
	Hitbox Rect // Collision bounds, used when the sprite is an obstacle
	Z      int  // Render layer index

	Image *ebiten.Image // nil draws a filled rect in Color
	Color color.RGBA
}

// NewGeneric creates a scenery sprite. Its hitbox is narrowed to the lower
// part of the image so actors can walk in front of it.
func NewGeneric(x, y, w, h float64, z int, img *ebiten.Image) *Sprite {
	r := NewRect(x, y, w, h)
	return &Sprite{
		Rect:   r,
		Hitbox: r.Inflate(-w*0.2, -h*0.75),
		Z:      z,
		Image:  img,
	}
}

// NewTile creates a map tile sprite whose hitbox is the full cell
func NewTile(x, y, size float64, z int, img *ebiten.Image) *Sprite {
	r := NewRect(x, y, size, size)
	return &Sprite{
		Rect:   r,
		Hitbox: r,
		Z:      z,
		Image:  img,
	}
}

// TriggerKind is what a trigger does when activated
type TriggerKind int

const (
	TriggerEnter TriggerKind = iota // Enter a sub-scene
	TriggerGrant                    // Grant an item
	TriggerExit                     // Leave the current scene
)

// ParseTriggerKind maps the definition data tag to a kind
func ParseTriggerKind(tag string) (TriggerKind, bool) {
	switch tag {
	case "scene":
		return TriggerEnter, true
	case "add":
		return TriggerGrant, true
	case "exit":
		return TriggerExit, true
	default:
		return 0, false
	}
}

// String returns the definition data tag of the kind
func (k TriggerKind) String() string {
	switch k {
	case TriggerEnter:
		return "scene"
	case TriggerGrant:
		return "add"
	case TriggerExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Trigger is a static interaction zone
type Trigger struct {
	Name string
	Rect Rect
	Kind TriggerKind

	Target string // TriggerEnter: scene to enter
	Item   string // TriggerGrant: item key
	Amount int    // TriggerGrant: quantity
}
