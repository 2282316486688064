package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/infrastructure/audio"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// World is a walkable scene built from a tile map: a player, obstacles and
// triggers. The hub and the tile levels are Worlds with different setups.
type World struct {
	Base
	Map *config.TileMap
}

// NewWorld creates an empty world; the variant's setup fills it
func NewWorld(name string, kind Kind, def *config.SceneConfig, env Env) *World {
	return &World{Base: NewBase(name, kind, def, env)}
}

// SetupObjects loads the background and the map, then places buildings and
// triggers from the map objects.
func (w *World) SetupObjects() error {
	if err := w.LoadBackground(); err != nil {
		return fmt.Errorf("scene %s: %w", w.Name(), err)
	}

	m, err := w.Env.Loader.LoadTileMap(w.Def.TmxPath)
	if err != nil {
		return fmt.Errorf("scene %s: %w", w.Name(), err)
	}
	w.Map = m

	objs, err := system.BuildObjects(m, w.Def.Interactive, w.Layer(LayerMain), w.Env.Images)
	if err != nil {
		return fmt.Errorf("scene %s: %w", w.Name(), err)
	}
	w.Sprites = append(w.Sprites, objs.Sprites...)
	w.Triggers = append(w.Triggers, objs.Triggers...)
	for _, r := range objs.Obstacles {
		w.Movement.AddObstacle(r)
	}

	return nil
}

// HandleInput activates triggers on Space and leaves on Escape
func (w *World) HandleInput(ev system.InputEvent, _ system.InputState) *Request {
	if ev.Kind != system.EventKeyDown || w.player == nil {
		return nil
	}

	switch ev.Key {
	case ebiten.KeySpace:
		return w.interact()
	case ebiten.KeyEscape:
		return Exit()
	}
	return nil
}

// interact fires the trigger under the player
func (w *World) interact() *Request {
	switch intent := system.Interact(w.player.Hitbox, w.Triggers).(type) {
	case system.EnterIntent:
		return Enter(intent.Target)
	case system.GrantIntent:
		w.player.Inventory.Add(intent.Item, intent.Amount)
		w.Env.Sounds.Play(audio.CuePickup)
		w.Env.Logger.Info("item granted",
			zap.String("scene", w.Name()),
			zap.String("item", intent.Item),
			zap.Int("amount", intent.Amount),
			zap.Int("total", w.player.Inventory.Count(intent.Item)))
	case system.ExitIntent:
		return Exit()
	}
	return nil
}

// Update moves the player from the held WASD keys
func (w *World) Update(dt float64, in system.InputState) *Request {
	w.SetDebug(in)
	if w.player == nil {
		return nil
	}

	w.player.Steer(
		in.IsHeld(ebiten.KeyW),
		in.IsHeld(ebiten.KeyS),
		in.IsHeld(ebiten.KeyA),
		in.IsHeld(ebiten.KeyD),
	)
	w.Movement.Move(&w.player.Actor, dt)
	w.player.SetStatus()
	w.player.Animate(dt)
	return nil
}

// Draw renders the world through the camera, outlining interaction zones
func (w *World) Draw(screen *ebiten.Image) {
	w.DrawWorld(screen)

	offX, offY := w.CameraOffset()
	for _, t := range w.Triggers {
		r := t.Rect
		vector.StrokeRect(screen, float32(r.X-offX), float32(r.Y-offY), float32(r.W), float32(r.H), 2, colorTriggerEdge, false)
	}
}
