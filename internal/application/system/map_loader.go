package system

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wiretown/internal/domain/entity"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// Object classes used in map data
const (
	ClassBuilding = "Building"
	ClassTrigger  = "Trigger"
	ClassPlayer   = "Player"
)

// ErrUnknownTrigger is returned when a map trigger has no interactive entry
var ErrUnknownTrigger = errors.New("trigger has no interactive definition")

// ImageSource loads images by path. An empty path returns nil.
type ImageSource interface {
	Image(path string) (*ebiten.Image, error)
}

// MapObjects is the scenery built from a map's object list
type MapObjects struct {
	Sprites   []*entity.Sprite
	Obstacles []entity.Rect
	Triggers  []entity.Trigger
}

// BuildObjects converts map objects into sprites, obstacles and triggers.
// Buildings are placed on layer z and collide; triggers are looked up by
// name in defs.
func BuildObjects(m *config.TileMap, defs map[string]config.InteractiveConfig, z int, images ImageSource) (MapObjects, error) {
	var out MapObjects

	for _, obj := range m.Objects {
		switch obj.Class {
		case ClassBuilding:
			img, err := images.Image(obj.Image)
			if err != nil {
				return MapObjects{}, fmt.Errorf("building %s: %w", obj.Name, err)
			}
			w, h := obj.Width, obj.Height
			if img != nil && (w == 0 || h == 0) {
				w, h = float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
			}
			sprite := entity.NewGeneric(obj.X, obj.Y, w, h, z, img)
			out.Sprites = append(out.Sprites, sprite)
			out.Obstacles = append(out.Obstacles, sprite.Hitbox)

		case ClassTrigger:
			def, ok := defs[obj.Name]
			if !ok {
				return MapObjects{}, fmt.Errorf("trigger %s: %w", obj.Name, ErrUnknownTrigger)
			}
			kind, ok := entity.ParseTriggerKind(def.Type)
			if !ok {
				return MapObjects{}, fmt.Errorf("trigger %s: unknown type %q", obj.Name, def.Type)
			}
			out.Triggers = append(out.Triggers, entity.Trigger{
				Name:   obj.Name,
				Rect:   entity.NewRect(obj.X, obj.Y, obj.Width, obj.Height),
				Kind:   kind,
				Target: def.Target,
				Item:   def.Item,
				Amount: def.Amount,
			})
		}
	}

	return out, nil
}

// Spawn returns the position of the map's Player object
func Spawn(m *config.TileMap) (x, y float64, ok bool) {
	obj, ok := m.Object(ClassPlayer, ClassPlayer)
	if !ok {
		return 0, 0, false
	}
	return obj.X, obj.Y, true
}

// TileImage resolves a tile GID to its image. nil draws a flat tile.
type TileImage func(gid int) *ebiten.Image

// BuildTiles creates one tile sprite per non-empty cell of every tile layer.
// A layer is drawn at its index in layers, or defaultZ when absent. Cells of
// collidable layers become obstacles.
func BuildTiles(m *config.TileMap, layers map[string]int, defaultZ int, tileImage TileImage) ([]*entity.Sprite, []entity.Rect) {
	var sprites []*entity.Sprite
	var obstacles []entity.Rect
	size := float64(m.TileWidth)

	for _, layer := range m.Layers {
		z, ok := layers[layer.Name]
		if !ok {
			z = defaultZ
		}
		for i, gid := range layer.Data {
			if gid == 0 {
				continue
			}
			x := float64(i%m.Width) * size
			y := float64(i/m.Width) * float64(m.TileHeight)

			var img *ebiten.Image
			if tileImage != nil {
				img = tileImage(gid)
			}
			tile := entity.NewTile(x, y, size, z, img)
			sprites = append(sprites, tile)
			if layer.Collidable {
				obstacles = append(obstacles, tile.Hitbox)
			}
		}
	}

	return sprites, obstacles
}
