// Package cable provides the RJ45 crimping minigame.
//
// The player drags the wires into one of the reference orderings, then
// stops a cursor sweeping across a bar. The closer to the center zone, the
// better the crimp and the bigger the reward.
package cable

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/wiretown/internal/application/scene"
	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/application/ui"
	"github.com/younwookim/wiretown/internal/domain/entity"
	"github.com/younwookim/wiretown/internal/infrastructure/audio"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// Layout used when the definition leaves it out
const (
	defaultCableW  = 40
	defaultCableH  = 200
	defaultSlotGap = 20
	defaultOriginY = 120

	// Attempts to shuffle the wires out of a solved order
	maxShuffles = 16
)

// Colors for rendering
var (
	colorSlot   = color.RGBA{60, 60, 80, 255}
	colorBar    = color.RGBA{50, 50, 50, 255}
	colorOrange = color.RGBA{240, 130, 30, 255}
	colorYellow = color.RGBA{240, 220, 60, 255}
	colorGreen  = color.RGBA{60, 200, 90, 255}
	colorCursor = color.RGBA{250, 250, 250, 255}
	colorHint   = color.RGBA{220, 220, 220, 255}
	colorMiss   = color.RGBA{230, 80, 80, 255}
)

// Cable is one draggable wire
type Cable struct {
	Color string
	Rect  entity.Rect
	Image *ebiten.Image
}

// Scene is the crimping minigame. It hosts a player that never moves; the
// player only carries the inventory the reward is added to.
type Scene struct {
	scene.Base
	cfg *config.CableConfig

	cables   []*Cable // In slot order
	slots    []entity.Rect
	dragging int // Index into cables, -1 when idle
	grabDX   float64
	grabDY   float64

	ordered    bool
	order      string   // Name of the matched reference ordering
	orderNames []string // Sorted, for a deterministic match

	bar       entity.Rect
	zones     Zones
	cursor    entity.Rect
	cursorDir float64

	missed bool
	face   text.Face
}

// New builds the minigame described by def
func New(name string, def *config.SceneConfig, env scene.Env) (*Scene, error) {
	if def.Cable == nil {
		return nil, fmt.Errorf("scene %s: missing cable definition", name)
	}
	s := &Scene{
		Base:     scene.NewBase(name, scene.KindCableScene, def, env),
		cfg:      def.Cable,
		dragging: -1,
		face:     ui.Face(22),
	}
	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) setup() error {
	if err := s.LoadBackground(); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name(), err)
	}
	if err := s.LoadPlayer(0, 0); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name(), err)
	}

	for name := range s.cfg.Orderings {
		s.orderNames = append(s.orderNames, name)
	}
	sort.Strings(s.orderNames)

	w, h := s.cfg.CableSize.W, s.cfg.CableSize.H
	if w == 0 || h == 0 {
		w, h = defaultCableW, defaultCableH
	}
	gap := s.cfg.SlotGap
	if gap == 0 {
		gap = defaultSlotGap
	}
	y := s.cfg.OriginY
	if y == 0 {
		y = defaultOriginY
	}

	n := len(s.cfg.Colors)
	total := float64(n)*w + float64(n-1)*gap
	x0 := (float64(s.Env.ScreenW) - total) / 2
	for i := 0; i < n; i++ {
		s.slots = append(s.slots, entity.NewRect(x0+float64(i)*(w+gap), y, w, h))
	}

	colors := slices.Clone(s.cfg.Colors)
	for i := 0; i < maxShuffles; i++ {
		s.Env.Rand.Shuffle(len(colors), func(a, b int) { colors[a], colors[b] = colors[b], colors[a] })
		if _, solved := s.match(colors); !solved {
			break
		}
	}
	for i, c := range colors {
		img, err := s.Env.Images.Image(s.cfg.Assets[c])
		if err != nil {
			return fmt.Errorf("scene %s: wire %s: %w", s.Name(), c, err)
		}
		s.cables = append(s.cables, &Cable{Color: c, Rect: s.slots[i], Image: img})
	}

	b := s.cfg.Bar
	s.bar = entity.NewRect(b.X, b.Y, b.W, b.H)
	s.zones = Zones{
		Orange: toRect(s.cfg.Zones.Orange),
		Yellow: toRect(s.cfg.Zones.Yellow),
		Green:  toRect(s.cfg.Zones.Green),
	}
	cur := s.cfg.Cursor
	s.cursor = entity.NewRect(s.bar.X, s.bar.CenterY()-cur.H/2, cur.W, cur.H)
	s.cursorDir = 1

	// A definition may list the wires already in order
	s.checkOrder()
	return nil
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.NewRect(r.X, r.Y, r.W, r.H)
}

// HandleInput drags wires with the pointer and crimps on Space
func (s *Scene) HandleInput(ev system.InputEvent, _ system.InputState) *scene.Request {
	switch ev.Kind {
	case system.EventKeyDown:
		switch ev.Key {
		case ebiten.KeyEscape:
			return scene.Exit()
		case ebiten.KeySpace:
			return s.crimp()
		}
	case system.EventPointerDown:
		s.grab(float64(ev.X), float64(ev.Y))
	case system.EventPointerMove:
		s.drag(float64(ev.X), float64(ev.Y))
	case system.EventPointerUp:
		s.drop()
	}
	return nil
}

// grab picks up the wire under the pointer
func (s *Scene) grab(x, y float64) {
	if s.ordered {
		return
	}
	for i, c := range s.cables {
		if c.Rect.Contains(x, y) {
			s.dragging = i
			s.grabDX = x - c.Rect.X
			s.grabDY = y - c.Rect.Y
			return
		}
	}
}

func (s *Scene) drag(x, y float64) {
	if s.dragging < 0 {
		return
	}
	c := s.cables[s.dragging]
	c.Rect.X = x - s.grabDX
	c.Rect.Y = y - s.grabDY
}

// drop swaps the dragged wire with the one in the nearest slot
func (s *Scene) drop() {
	if s.dragging < 0 {
		return
	}
	from := s.dragging
	s.dragging = -1

	cx := s.cables[from].Rect.CenterX()
	to, best := from, math.Inf(1)
	for i, slot := range s.slots {
		if d := math.Abs(slot.CenterX() - cx); d < best {
			to, best = i, d
		}
	}
	s.cables[from], s.cables[to] = s.cables[to], s.cables[from]

	for i, c := range s.cables {
		c.Rect = s.slots[i]
	}
	s.checkOrder()
}

// match returns the first reference ordering equal to colors
func (s *Scene) match(colors []string) (string, bool) {
	for _, name := range s.orderNames {
		if slices.Equal(colors, s.cfg.Orderings[name]) {
			return name, true
		}
	}
	return "", false
}

func (s *Scene) checkOrder() {
	if name, ok := s.match(s.Sequence()); ok {
		s.ordered = true
		s.order = name
		s.Env.Logger.Debug("cable ordered", zap.String("scene", s.Name()), zap.String("order", name))
	}
}

// crimp grades the cursor position. A grade pays out and leaves the scene;
// a miss lets the player try again.
func (s *Scene) crimp() *scene.Request {
	if !s.ordered {
		return nil
	}

	q := Grade(s.cursor, s.zones)
	if q == entity.QualityNone {
		s.missed = true
		s.Env.Sounds.Play(audio.CueError)
		return nil
	}

	reward := s.Reward(q)
	p := s.Player()
	p.Inventory.Add(entity.ItemMoney, reward)
	p.Inventory.AddCable(entity.CableRecord{Order: s.order, Quality: q})
	s.Env.Sounds.Play(audio.CueReward)
	s.Env.Logger.Info("cable crimped",
		zap.String("order", s.order),
		zap.Stringer("quality", q),
		zap.Int("reward", reward))

	return scene.Exit()
}

// Reward returns the money granted for quality q
func (s *Scene) Reward(q entity.Quality) int {
	if r, ok := s.cfg.Rewards[q.String()]; ok {
		return r
	}
	return defaultRewards[q]
}

// Update sweeps the cursor across the bar once the wires are ordered
func (s *Scene) Update(dt float64, in system.InputState) *scene.Request {
	s.SetDebug(in)
	if !s.ordered {
		return nil
	}

	s.cursor.X += s.cursorDir * s.cfg.Cursor.Speed * dt
	if lo := s.bar.Left(); s.cursor.X <= lo {
		s.cursor.X = lo
		s.cursorDir = 1
	}
	if hi := s.bar.Right() - s.cursor.W; s.cursor.X >= hi {
		s.cursor.X = hi
		s.cursorDir = -1
	}
	return nil
}

// Sequence returns the wire colors in slot order
func (s *Scene) Sequence() []string {
	seq := make([]string, len(s.cables))
	for i, c := range s.cables {
		seq[i] = c.Color
	}
	return seq
}

// Slots returns the slot rectangles
func (s *Scene) Slots() []entity.Rect { return s.slots }

// Cables returns the wires in slot order
func (s *Scene) Cables() []*Cable { return s.cables }

// Ordered reports whether the wires match a reference ordering
func (s *Scene) Ordered() bool { return s.ordered }

// Order returns the matched reference ordering name
func (s *Scene) Order() string { return s.order }

// Cursor returns the cursor hitbox
func (s *Scene) Cursor() entity.Rect { return s.cursor }

// Zones returns the grading zones
func (s *Scene) Zones() Zones { return s.zones }

// Draw renders wires, then the bar once ordered
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.BgColor)
	for _, sp := range s.Sprites {
		if sp.Image != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(sp.Rect.X, sp.Rect.Y)
			screen.DrawImage(sp.Image, op)
		}
	}

	for _, slot := range s.slots {
		vector.StrokeRect(screen, float32(slot.X), float32(slot.Y), float32(slot.W), float32(slot.H), 2, colorSlot, false)
	}
	for i, c := range s.cables {
		if i != s.dragging {
			drawCable(screen, c)
		}
	}
	if s.dragging >= 0 {
		drawCable(screen, s.cables[s.dragging])
	}

	hintY := s.slots[0].Bottom() + 30
	if !s.ordered {
		ui.DrawCenteredText(screen, "Drag the wires into a standard order (Esc to leave)",
			s.face, float64(s.Env.ScreenW)/2, hintY, colorHint)
		return
	}

	fill := func(r entity.Rect, c color.RGBA) {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
	fill(s.bar, colorBar)
	fill(s.zones.Orange, colorOrange)
	fill(s.zones.Yellow, colorYellow)
	fill(s.zones.Green, colorGreen)
	fill(s.cursor, colorCursor)

	hint := fmt.Sprintf("%s! Press SPACE on green", s.order)
	c := colorHint
	if s.missed {
		hint, c = "Missed, try again", colorMiss
	}
	ui.DrawCenteredText(screen, hint, s.face, float64(s.Env.ScreenW)/2, hintY, c)
}

func drawCable(screen *ebiten.Image, c *Cable) {
	r := c.Rect
	if c.Image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.X, r.Y)
		screen.DrawImage(c.Image, op)
		return
	}

	base, stripe, striped := wirePaint(c.Color)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), base, false)
	if striped {
		vector.DrawFilledRect(screen, float32(r.X+r.W/3), float32(r.Y), float32(r.W/3), float32(r.H), stripe, false)
	}
}
