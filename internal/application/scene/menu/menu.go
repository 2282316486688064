// Package menu provides the title menu.
package menu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/wiretown/internal/application/scene"
	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/application/ui"
	"github.com/younwookim/wiretown/internal/domain/entity"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// Button size used when the definition sets none
const (
	defaultButtonW = 240
	defaultButtonH = 64
)

// Colors for rendering
var (
	colorButton = color.RGBA{70, 70, 110, 255}
	colorLabel  = color.RGBA{240, 240, 240, 255}
)

// Button is a clickable menu entry
type Button struct {
	Label   string
	Rect    entity.Rect
	Color   color.RGBA
	Hovered bool
	Pressed bool
}

// fill returns the color to draw the button with
func (b *Button) fill() color.RGBA {
	c := b.Color
	switch {
	case b.Pressed:
		return scale(c, 0.7)
	case b.Hovered:
		return scale(c, 1.3)
	}
	return c
}

func scale(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 { return uint8(min(255, float64(v)*f)) }
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// Scene is the title menu. It hosts no player.
type Scene struct {
	scene.Base
	buttons []*Button
	armed   int // Index of the pressed button, -1 when none
	face    text.Face
}

// New builds the menu described by def
func New(name string, def *config.SceneConfig, env scene.Env) (*Scene, error) {
	s := &Scene{
		Base:  scene.NewBase(name, scene.KindMenu, def, env),
		armed: -1,
		face:  ui.Face(28),
	}
	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

// setup creates one button per definition entry, centered on its position
func (s *Scene) setup() error {
	if err := s.LoadBackground(); err != nil {
		return err
	}

	w, h := s.Def.ButtonSize.W, s.Def.ButtonSize.H
	if w == 0 || h == 0 {
		w, h = defaultButtonW, defaultButtonH
	}
	for _, bc := range s.Def.Buttons {
		c, ok := scene.ParseHexColor(bc.Color)
		if !ok {
			c = colorButton
		}
		s.buttons = append(s.buttons, &Button{
			Label: bc.Label,
			Rect:  entity.NewRect(bc.X-w/2, bc.Y-h/2, w, h),
			Color: c,
		})
	}
	return nil
}

// Buttons returns the menu buttons
func (s *Scene) Buttons() []*Button { return s.buttons }

// HandleInput tracks hover and turns a press and release on the same
// button into a click.
func (s *Scene) HandleInput(ev system.InputEvent, _ system.InputState) *scene.Request {
	x, y := float64(ev.X), float64(ev.Y)

	switch ev.Kind {
	case system.EventPointerMove:
		for _, b := range s.buttons {
			b.Hovered = b.Rect.Contains(x, y)
		}

	case system.EventPointerDown:
		for i, b := range s.buttons {
			if b.Rect.Contains(x, y) {
				s.armed = i
				b.Pressed = true
				return nil
			}
		}

	case system.EventPointerUp:
		if s.armed < 0 {
			return nil
		}
		b := s.buttons[s.armed]
		b.Pressed = false
		s.armed = -1
		if b.Rect.Contains(x, y) {
			return s.click(b)
		}
	}
	return nil
}

// click resolves the button label to a scene through the targets table
func (s *Scene) click(b *Button) *scene.Request {
	target, ok := s.Def.Targets[b.Label]
	if !ok || target == "" {
		s.Env.Logger.Warn("menu button has no target", zap.String("label", b.Label))
		return nil
	}
	s.Env.Logger.Debug("menu button clicked", zap.String("label", b.Label), zap.String("target", target))
	return scene.Enter(target)
}

// Update only refreshes the debug flag; the menu has nothing to animate
func (s *Scene) Update(_ float64, in system.InputState) *scene.Request {
	s.SetDebug(in)
	return nil
}

// Draw renders the background and the buttons
func (s *Scene) Draw(screen *ebiten.Image) {
	s.DrawWorld(screen)

	for _, b := range s.buttons {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.fill(), false)
		if b.Hovered {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, colorLabel, false)
		}
		ui.DrawCenteredText(screen, b.Label, s.face, r.CenterX(), r.CenterY(), colorLabel)
	}
}
