package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/wiretown/internal/application/scene"
	"github.com/younwookim/wiretown/internal/application/state"
	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/application/ui"
	"github.com/younwookim/wiretown/internal/domain/entity"
	"github.com/younwookim/wiretown/internal/infrastructure/audio"
)

// QuitTarget is the enter target that ends the game instead of pushing a scene
const QuitTarget = "quit"

// DefaultFadeStep is the intensity change per tick when none is configured
const DefaultFadeStep = 8

// Builder constructs scenes by name
type Builder interface {
	Has(name string) bool
	Build(name string) (scene.Scene, error)
}

// multiply darkens the destination by the overlay color
var multiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorZero,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Manager owns the scene stack and gates every change behind a fade.
//
// Scenes ask for transitions by returning a Request; the manager applies
// the push or pop exactly once, on the tick the screen is fully black.
// It also owns the inventory between scenes: whatever the leaving scene's
// player carried is handed to the next scene that hosts a player.
type Manager struct {
	builder   Builder
	stack     []scene.Scene
	fade      *state.Fade
	pending   *scene.Request
	inventory entity.Inventory
	quit      bool

	logger  *zap.Logger
	sounds  audio.Sounds
	hud     *ui.Overlay
	curtain *ebiten.Image
	step    int
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithSounds sets the cue player used when a fade starts
func WithSounds(s audio.Sounds) Option {
	return func(m *Manager) { m.sounds = s }
}

// WithFadeStep sets the intensity change per tick
func WithFadeStep(step int) Option {
	return func(m *Manager) { m.step = step }
}

// WithOverlay enables the inventory HUD
func WithOverlay(o *ui.Overlay) Option {
	return func(m *Manager) { m.hud = o }
}

// NewManager builds the root scene and enters it with the starting inventory
func NewManager(builder Builder, root string, opts ...Option) (*Manager, error) {
	m := &Manager{
		builder:   builder,
		inventory: entity.NewInventory(),
		logger:    zap.NewNop(),
		sounds:    audio.Nop{},
		step:      DefaultFadeStep,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.fade = state.NewFade(m.step)

	s, err := builder.Build(root)
	if err != nil {
		return nil, fmt.Errorf("root scene %s: %w", root, err)
	}
	if p := s.Player(); p != nil {
		p.SetInventory(m.inventory)
	}
	m.stack = append(m.stack, s)
	s.OnEnter()
	m.logger.Info("scene entered", zap.String("scene", root), zap.Int("depth", 1))

	return m, nil
}

// RequestEnter starts a transition to target. It returns false when the
// request is ignored: a fade is running or the target is unknown.
// Quitting is honoured at any time and skips a running fade.
func (m *Manager) RequestEnter(target string) bool {
	if target == QuitTarget {
		m.quit = true
		m.logger.Info("quit requested", zap.Stringer("phase", m.fade.Phase()))
		return true
	}
	if !m.fade.Idle() {
		return false
	}
	if !m.builder.Has(target) {
		m.logger.Warn("unknown scene target", zap.String("target", target))
		return false
	}
	return m.begin(scene.Enter(target))
}

// RequestExit starts a transition back to the previous scene. The root
// scene is never popped.
func (m *Manager) RequestExit() bool {
	if !m.fade.Idle() {
		return false
	}
	if len(m.stack) <= 1 {
		m.logger.Debug("exit from root scene ignored")
		return false
	}
	return m.begin(scene.Exit())
}

func (m *Manager) begin(req *scene.Request) bool {
	if !m.fade.Start() {
		return false
	}
	m.pending = req
	m.sounds.Play(audio.CueFade)
	m.logger.Debug("transition started",
		zap.Stringer("action", req.Action),
		zap.String("target", req.Target))
	return true
}

// route forwards a scene's request, if any
func (m *Manager) route(req *scene.Request) {
	if req == nil {
		return
	}
	switch req.Action {
	case scene.ActionEnter:
		m.RequestEnter(req.Target)
	case scene.ActionExit:
		m.RequestExit()
	}
}

// Update runs one tick: input events go to the top scene in order, the top
// scene advances by dt, then the fade moves one step. Input and scene
// updates are suspended while a fade runs. It returns ebiten.Termination
// once quit was requested.
func (m *Manager) Update(in system.InputState, dt float64) error {
	top := m.Top()
	if top == nil {
		return nil
	}
	if m.quit {
		return ebiten.Termination
	}

	if m.fade.Idle() {
		for _, ev := range in.Events {
			m.route(top.HandleInput(ev, in))
			if m.quit {
				return ebiten.Termination
			}
			if !m.fade.Idle() {
				break
			}
		}
	}

	if m.fade.Idle() {
		m.route(top.Update(dt, in))
		if m.quit {
			return ebiten.Termination
		}
	}

	if m.fade.Tick() {
		if err := m.apply(); err != nil {
			return err
		}
	}
	if m.fade.Idle() {
		m.pending = nil
	}
	return nil
}

// apply performs the pending stack mutation
func (m *Manager) apply() error {
	req := m.pending
	if req == nil {
		return nil
	}

	switch req.Action {
	case scene.ActionEnter:
		return m.push(req.Target)
	case scene.ActionExit:
		m.pop()
	}
	return nil
}

func (m *Manager) push(target string) error {
	next, err := m.builder.Build(target)
	if err != nil {
		return fmt.Errorf("enter scene %s: %w", target, err)
	}

	m.capture(m.Top())
	if p := next.Player(); p != nil {
		p.SetInventory(m.inventory)
	}
	m.stack = append(m.stack, next)
	next.OnEnter()

	m.logger.Info("scene entered", zap.String("scene", target), zap.Int("depth", len(m.stack)))
	return nil
}

func (m *Manager) pop() {
	if len(m.stack) <= 1 {
		return
	}

	top := m.stack[len(m.stack)-1]
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]

	m.capture(top)
	top.OnExit()

	if p := m.Top().Player(); p != nil {
		p.SetInventory(m.inventory)
	}
	m.logger.Info("scene left",
		zap.String("scene", top.Name()),
		zap.String("top", m.Top().Name()),
		zap.Int("depth", len(m.stack)))
}

// capture copies the inventory of s's player into the manager
func (m *Manager) capture(s scene.Scene) {
	if s == nil {
		return
	}
	if p := s.Player(); p != nil {
		m.inventory = p.Inventory.Clone()
	}
}

// Draw renders the top scene, the HUD and, during a transition, the fade
func (m *Manager) Draw(screen *ebiten.Image) {
	top := m.Top()
	if top == nil {
		return
	}

	top.Draw(screen)
	if p := top.Player(); p != nil && m.hud != nil {
		m.hud.Draw(screen, p.Inventory)
	}
	if !m.fade.Idle() {
		m.drawCurtain(screen)
	}
}

// drawCurtain multiplies the screen by the fade intensity
func (m *Manager) drawCurtain(screen *ebiten.Image) {
	b := screen.Bounds()
	if m.curtain == nil || m.curtain.Bounds().Size() != b.Size() {
		m.curtain = ebiten.NewImage(b.Dx(), b.Dy())
	}

	i := uint8(m.fade.Intensity())
	m.curtain.Fill(color.RGBA{i, i, i, 255})

	op := &ebiten.DrawImageOptions{Blend: multiply}
	screen.DrawImage(m.curtain, op)
}

// Depth returns the number of stacked scenes
func (m *Manager) Depth() int { return len(m.stack) }

// Top returns the active scene, or nil when the stack is empty
func (m *Manager) Top() scene.Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Phase returns the fade phase
func (m *Manager) Phase() state.Phase { return m.fade.Phase() }

// Intensity returns the fade overlay intensity
func (m *Manager) Intensity() int { return m.fade.Intensity() }

// Inventory returns a copy of the current inventory: the top player's when
// the top scene hosts one, otherwise the one held between scenes.
func (m *Manager) Inventory() entity.Inventory {
	if top := m.Top(); top != nil {
		if p := top.Player(); p != nil {
			return p.Inventory.Clone()
		}
	}
	return m.inventory.Clone()
}

// Names returns the scene names from root to top
func (m *Manager) Names() []string {
	names := make([]string, len(m.stack))
	for i, s := range m.stack {
		names[i] = s.Name()
	}
	return names
}

// Quitting reports whether quit was requested
func (m *Manager) Quitting() bool { return m.quit }
