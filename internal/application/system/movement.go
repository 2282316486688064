package system

import (
	"math"

	"github.com/younwookim/wiretown/internal/domain/entity"
)

// MovementSystem moves actors and resolves collisions against static
// obstacles. Each axis is moved and resolved on its own, X first.
type MovementSystem struct {
	obstacles []entity.Rect
}

// NewMovementSystem creates a movement system over the given obstacle hitboxes
func NewMovementSystem(obstacles []entity.Rect) *MovementSystem {
	return &MovementSystem{obstacles: obstacles}
}

// Obstacles returns the obstacle hitboxes
func (s *MovementSystem) Obstacles() []entity.Rect {
	return s.obstacles
}

// AddObstacle adds a static obstacle hitbox
func (s *MovementSystem) AddObstacle(r entity.Rect) {
	s.obstacles = append(s.obstacles, r)
}

// Move advances the actor by its direction and speed over dt
func (s *MovementSystem) Move(a *entity.Actor, dt float64) {
	if a.Direction.Len() > 0 {
		a.Direction = a.Direction.Normalize()
	}

	// Horizontal
	a.Pos[0] += a.Direction.X() * a.Speed * dt
	a.Rect.SetCenterX(math.Round(a.Pos.X()))
	a.SyncHitbox()
	s.resolveX(a)

	// Vertical
	a.Pos[1] += a.Direction.Y() * a.Speed * dt
	a.Rect.SetCenterY(math.Round(a.Pos.Y()))
	a.SyncHitbox()
	s.resolveY(a)
}

// resolveX clamps the hitbox against obstacles hit while moving horizontally
func (s *MovementSystem) resolveX(a *entity.Actor) {
	for _, obs := range s.obstacles {
		if !a.Hitbox.Overlaps(obs) {
			continue
		}
		if a.Direction.X() > 0 {
			a.Hitbox.SetRight(obs.Left())
		}
		if a.Direction.X() < 0 {
			a.Hitbox.SetLeft(obs.Right())
		}
		a.SyncFromHitbox()
		a.Pos[0] = a.Rect.CenterX()
	}
}

// resolveY clamps the hitbox against obstacles hit while moving vertically
func (s *MovementSystem) resolveY(a *entity.Actor) {
	for _, obs := range s.obstacles {
		if !a.Hitbox.Overlaps(obs) {
			continue
		}
		if a.Direction.Y() > 0 {
			a.Hitbox.SetBottom(obs.Top())
		}
		if a.Direction.Y() < 0 {
			a.Hitbox.SetTop(obs.Bottom())
		}
		a.SyncFromHitbox()
		a.Pos[1] = a.Rect.CenterY()
	}
}
