package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind is the type of a discrete input event
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerUp
	EventPointerMove
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventPointerMove:
		return "PointerMove"
	default:
		return "Unknown"
	}
}

// InputEvent is one discrete event of a frame
type InputEvent struct {
	Kind   EventKind          `json:"kind"`
	Key    ebiten.Key         `json:"key,omitempty"`
	Button ebiten.MouseButton `json:"button,omitempty"`
	X      int                `json:"x,omitempty"`
	Y      int                `json:"y,omitempty"`
}

// KeyDown creates a key press event
func KeyDown(k ebiten.Key) InputEvent { return InputEvent{Kind: EventKeyDown, Key: k} }

// KeyUp creates a key release event
func KeyUp(k ebiten.Key) InputEvent { return InputEvent{Kind: EventKeyUp, Key: k} }

// PointerDown creates a left button press event at (x, y)
func PointerDown(x, y int) InputEvent {
	return InputEvent{Kind: EventPointerDown, Button: ebiten.MouseButtonLeft, X: x, Y: y}
}

// PointerUp creates a left button release event at (x, y)
func PointerUp(x, y int) InputEvent {
	return InputEvent{Kind: EventPointerUp, Button: ebiten.MouseButtonLeft, X: x, Y: y}
}

// PointerMove creates a cursor move event to (x, y)
func PointerMove(x, y int) InputEvent {
	return InputEvent{Kind: EventPointerMove, X: x, Y: y}
}

// InputState is an immutable snapshot of one frame of input:
// the ordered discrete events plus the continuously held keys.
type InputState struct {
	Events  []InputEvent `json:"events,omitempty"`
	Held    []ebiten.Key `json:"held,omitempty"`
	CursorX int          `json:"cx"`
	CursorY int          `json:"cy"`
}

// IsHeld reports whether k is held down this frame
func (s InputState) IsHeld(k ebiten.Key) bool {
	return slices.Contains(s.Held, k)
}

// InputSystem polls ebiten into InputState snapshots
type InputSystem struct {
	keys      []ebiten.Key
	lastX     int
	lastY     int
	hasCursor bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	var state InputState
	state.CursorX, state.CursorY = mx, my

	if !s.hasCursor || mx != s.lastX || my != s.lastY {
		state.Events = append(state.Events, PointerMove(mx, my))
		s.lastX, s.lastY, s.hasCursor = mx, my, true
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		state.Events = append(state.Events, KeyDown(k))
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		state.Events = append(state.Events, KeyUp(k))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.Events = append(state.Events, PointerDown(mx, my))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		state.Events = append(state.Events, PointerUp(mx, my))
	}

	state.Held = inpututil.AppendPressedKeys(nil)
	return state
}
