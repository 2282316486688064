// Package level provides tile-rendered sub-levels.
package level

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wiretown/internal/application/scene"
	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/infrastructure/assets"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// Flat tile colors used when a tileset has no image
var (
	colorFloorTile = color.RGBA{52, 56, 64, 255}
	colorWallTile  = color.RGBA{96, 100, 130, 255}
)

// ErrNoSpawn is returned when a level map has no Player object
var ErrNoSpawn = errors.New("map has no Player spawn")

// Scene is a tile level. It adds a sprite per map cell to the hub setup;
// cells of collidable layers block the player.
type Scene struct {
	*scene.World
}

// New builds the level described by def
func New(name string, def *config.SceneConfig, env scene.Env) (*Scene, error) {
	s := &Scene{World: scene.NewWorld(name, scene.KindPlayableScene, def, env)}
	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) setup() error {
	if err := s.SetupObjects(); err != nil {
		return err
	}

	lookup, err := s.tileImages()
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name(), err)
	}
	sprites, obstacles := system.BuildTiles(s.Map, s.Def.Layers, s.Layer(scene.LayerMain), lookup)
	floor := s.Layer(scene.LayerFloor)
	for _, sp := range sprites {
		if sp.Image != nil {
			continue
		}
		sp.Color = colorWallTile
		if sp.Z <= floor {
			sp.Color = colorFloorTile
		}
	}
	s.Sprites = append(s.Sprites, sprites...)
	for _, r := range obstacles {
		s.Movement.AddObstacle(r)
	}

	x, y, ok := system.Spawn(s.Map)
	if !ok {
		return fmt.Errorf("scene %s: %w", s.Name(), ErrNoSpawn)
	}
	return s.LoadPlayer(x, y)
}

// tileImages slices every tileset of the map and indexes tiles by GID
func (s *Scene) tileImages() (system.TileImage, error) {
	tiles := make(map[int]*ebiten.Image)
	for _, ts := range s.Map.Tilesets {
		img, err := s.Env.Images.Image(ts.Image)
		if err != nil {
			return nil, err
		}
		if img == nil {
			continue
		}
		frames := assets.Slice(img, s.Map.TileWidth, s.Map.TileHeight)
		if ts.Count > 0 && len(frames) > ts.Count {
			frames = frames[:ts.Count]
		}
		for i, frame := range frames {
			tiles[ts.FirstGID+i] = frame
		}
	}
	return func(gid int) *ebiten.Image { return tiles[gid] }, nil
}
