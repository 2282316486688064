package entity

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Animation status names. Status is "<facing>_<motion>".
const (
	StatusLeftIdle  = "left_idle"
	StatusRightIdle = "right_idle"
	StatusLeftWalk  = "left_walk"
	StatusRightWalk = "right_walk"
)

// Statuses lists every animation an actor sheet provides
var Statuses = []string{StatusLeftWalk, StatusRightWalk, StatusLeftIdle, StatusRightIdle}

// Hitbox inset from the visual bounds, in pixels
const (
	HitboxInsetX = 10
	HitboxInsetY = 10
)

// Actor is a moving, animated character.
// Pos is the continuous center of Rect; Rect is rounded to whole pixels.
type Actor struct {
	Pos       mgl64.Vec2
	Direction mgl64.Vec2
	Speed     float64

	Rect   Rect // Visual bounds
	Hitbox Rect // Collision bounds, mid-bottom aligned with Rect
	Z      int

	Status         string
	FrameIndex     float64
	AnimationSpeed float64 // Frames per second
	Animations     map[string][]*ebiten.Image
	FrameCounts    map[string]int // Used when no images are loaded
}

// NewActor creates an actor centered on (x, y) with the given visual size
func NewActor(x, y, w, h float64) *Actor {
	a := &Actor{
		Pos:            mgl64.Vec2{x, y},
		Speed:          300,
		Rect:           NewRect(0, 0, w, h),
		Status:         StatusRightIdle,
		AnimationSpeed: 9,
	}
	a.SetPosition(x, y)
	return a
}

// SetPosition teleports the actor so its center is at (x, y)
func (a *Actor) SetPosition(x, y float64) {
	a.Pos = mgl64.Vec2{x, y}
	a.Rect.SetCenterX(x)
	a.Rect.SetCenterY(y)
	a.Hitbox = a.Rect.Inflate(-HitboxInsetX, -HitboxInsetY)
	a.SyncHitbox()
}

// SyncHitbox aligns the hitbox mid-bottom with the visual rect
func (a *Actor) SyncHitbox() {
	a.Hitbox.SetMidBottom(a.Rect.MidBottom())
}

// SyncFromHitbox realigns the visual rect after the hitbox was corrected
func (a *Actor) SyncFromHitbox() {
	a.Rect.SetMidBottom(a.Hitbox.MidBottom())
}

// Facing returns "left" or "right"
func (a *Actor) Facing() string {
	facing, _, _ := strings.Cut(a.Status, "_")
	return facing
}

// SetStatus switches to idle when the actor stopped moving
func (a *Actor) SetStatus() {
	if a.Direction.Len() == 0 && !strings.HasSuffix(a.Status, "_idle") {
		a.Status = a.Facing() + "_idle"
	}
}

// frameCount returns the number of frames of the current status
func (a *Actor) frameCount() int {
	if frames, ok := a.Animations[a.Status]; ok && len(frames) > 0 {
		return len(frames)
	}
	if n, ok := a.FrameCounts[a.Status]; ok && n > 0 {
		return n
	}
	return 1
}

// Animate advances the frame index, wrapping at the end of the animation
func (a *Actor) Animate(dt float64) {
	a.FrameIndex += a.AnimationSpeed * dt
	if a.FrameIndex >= float64(a.frameCount()) {
		a.FrameIndex = 0
	}
}

// Frame returns the image to draw, or nil when the actor has no sheet
func (a *Actor) Frame() *ebiten.Image {
	frames := a.Animations[a.Status]
	if len(frames) == 0 {
		return nil
	}
	i := int(a.FrameIndex)
	if i >= len(frames) {
		i = 0
	}
	return frames[i]
}
