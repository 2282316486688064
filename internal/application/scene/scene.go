// Package scene defines the Scene interface for game screens.
//
// Each screen (hub, level, minigame, menu) implements Scene. Scenes never
// touch the scene stack: they return a Request and the manager decides.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/domain/entity"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// ErrUnknownTrigger is returned by setup when a map trigger has no definition
var ErrUnknownTrigger = system.ErrUnknownTrigger

// Kind is the closed set of scene variants
type Kind int

const (
	KindMainScene Kind = iota
	KindPlayableScene
	KindCableScene
	KindMenu
)

// String returns the definition data tag of the kind
func (k Kind) String() string {
	switch k {
	case KindMainScene:
		return config.KindMainScene
	case KindPlayableScene:
		return config.KindPlayableScene
	case KindCableScene:
		return config.KindCableScene
	case KindMenu:
		return config.KindMenu
	default:
		return "Unknown"
	}
}

// ParseKind maps a definition data tag to a kind
func ParseKind(tag string) (Kind, bool) {
	switch tag {
	case config.KindMainScene:
		return KindMainScene, true
	case config.KindPlayableScene:
		return KindPlayableScene, true
	case config.KindCableScene:
		return KindCableScene, true
	case config.KindMenu:
		return KindMenu, true
	default:
		return 0, false
	}
}

// Action is the direction of a transition request
type Action int

const (
	ActionEnter Action = iota // Push Target
	ActionExit                // Pop the current scene
)

func (a Action) String() string {
	switch a {
	case ActionEnter:
		return "enter"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Request asks the manager for a scene transition
type Request struct {
	Action Action
	Target string
}

// Enter requests pushing the scene named target
func Enter(target string) *Request {
	return &Request{Action: ActionEnter, Target: target}
}

// Exit requests popping the current scene
func Exit() *Request {
	return &Request{Action: ActionExit}
}

// Scene represents one game screen.
//
// The manager forwards each input event to the top scene through
// HandleInput, then advances it with Update. Either may return a Request.
type Scene interface {
	// Name is the definition name the scene was built from.
	Name() string

	Kind() Kind

	// Player returns the hosted player, or nil for scenes without one.
	Player() *entity.Player

	// HandleInput reacts to one discrete event. in carries the held keys.
	HandleInput(ev system.InputEvent, in system.InputState) *Request

	// Update advances the scene by dt seconds.
	Update(dt float64, in system.InputState) *Request

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called once the scene is on top of the stack.
	OnEnter()

	// OnExit is called when the scene is popped.
	OnExit()
}
