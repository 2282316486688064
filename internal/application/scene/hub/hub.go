// Package hub provides the overworld scene the player walks around in.
package hub

import (
	"github.com/younwookim/wiretown/internal/application/scene"
	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// Scene is the overworld: buildings to walk around and doors to enter
type Scene struct {
	*scene.World
}

// New builds the hub described by def
func New(name string, def *config.SceneConfig, env scene.Env) (*Scene, error) {
	s := &Scene{World: scene.NewWorld(name, scene.KindMainScene, def, env)}
	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

// setup places map objects and spawns the player. The spawn is the map's
// Player object, then the definition spawn, then a fixed default.
func (s *Scene) setup() error {
	if err := s.SetupObjects(); err != nil {
		return err
	}

	x, y := float64(scene.DefaultSpawnX), float64(scene.DefaultSpawnY)
	if sx, sy, ok := system.Spawn(s.Map); ok {
		x, y = sx, sy
	} else if s.Def.Spawn != nil {
		x, y = s.Def.Spawn.X, s.Def.Spawn.Y
	}
	return s.LoadPlayer(x, y)
}
