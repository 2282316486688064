// Package game drives the scene stack from the ebiten loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wiretown/internal/application/replay"
	"github.com/younwookim/wiretown/internal/application/system"
)

// InputSource yields one input snapshot per tick
type InputSource interface {
	GetInput() system.InputState
}

// finisher is an input source that can run out, such as a replay
type finisher interface {
	Done() bool
}

// Game implements ebiten.Game on top of a Manager.
type Game struct {
	manager  *Manager
	input    InputSource
	recorder *replay.Recorder
	screenW  int
	screenH  int
	dt       float64
}

// New creates a Game polling input from input
func New(manager *Manager, input InputSource, screenW, screenH int) *Game {
	return &Game{
		manager: manager,
		input:   input,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetRecorder records every polled snapshot into r
func (g *Game) SetRecorder(r *replay.Recorder) {
	g.recorder = r
}

// Update polls input and advances the manager.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if f, ok := g.input.(finisher); ok && f.Done() {
		return ebiten.Termination
	}

	in := g.input.GetInput()
	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}
	return g.manager.Update(in, g.dt)
}

// Draw renders the active scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Manager returns the scene manager
func (g *Game) Manager() *Manager { return g.manager }
