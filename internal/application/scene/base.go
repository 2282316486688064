package scene

import (
	"fmt"
	"image/color"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/domain/entity"
	"github.com/younwookim/wiretown/internal/infrastructure/assets"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// Layer names with a fixed meaning
const (
	LayerFloor = "floor" // Background
	LayerMain  = "main"  // Buildings and the player
)

// Player size used when the scene names no actor definition
const (
	DefaultPlayerW = 64
	DefaultPlayerH = 128
)

// DefaultSpawnX, DefaultSpawnY is where the player starts without a spawn point
const (
	DefaultSpawnX = 200
	DefaultSpawnY = 200
)

// Base holds the state every scene variant shares
type Base struct {
	name string
	kind Kind

	Def *config.SceneConfig
	Env Env

	Sprites  []*entity.Sprite
	Triggers []entity.Trigger
	Movement *system.MovementSystem
	BgColor  color.RGBA

	player *entity.Player
	debug  bool // Tab held: draw hitboxes
}

// NewBase creates the shared scene state
func NewBase(name string, kind Kind, def *config.SceneConfig, env Env) Base {
	env = env.WithDefaults()
	bg := colorBG
	if c, ok := ParseHexColor(def.BgColor); ok {
		bg = c
	}
	return Base{
		name:     name,
		kind:     kind,
		Def:      def,
		Env:      env,
		Movement: system.NewMovementSystem(nil),
		BgColor:  bg,
	}
}

func (b *Base) Name() string { return b.name }

func (b *Base) Kind() Kind { return b.kind }

// Player returns the hosted player, nil when the scene has none
func (b *Base) Player() *entity.Player { return b.player }

// SetPlayer replaces the hosted player
func (b *Base) SetPlayer(p *entity.Player) { b.player = p }

// OnEnter logs the scene entry
func (b *Base) OnEnter() {
	b.Env.Logger.Debug("scene entered", zap.String("scene", b.name), zap.Stringer("kind", b.kind))
}

// OnExit logs the scene exit
func (b *Base) OnExit() {
	b.Env.Logger.Debug("scene exited", zap.String("scene", b.name), zap.Stringer("kind", b.kind))
}

// Layer returns the render index of a named layer, 0 when undefined
func (b *Base) Layer(name string) int {
	return b.Def.Layers[name]
}

// AddSprite adds a visual to the scene
func (b *Base) AddSprite(s *entity.Sprite) {
	b.Sprites = append(b.Sprites, s)
}

// SetDebug toggles the hitbox overlay from the held Tab key
func (b *Base) SetDebug(in system.InputState) {
	b.debug = in.IsHeld(ebiten.KeyTab)
}

// LoadBackground adds the definition's background image on the floor layer
func (b *Base) LoadBackground() error {
	img, err := b.Env.Images.Image(b.Def.BgImagePath)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if img == nil {
		return nil
	}
	size := img.Bounds()
	b.AddSprite(entity.NewGeneric(0, 0, float64(size.Dx()), float64(size.Dy()), b.Layer(LayerFloor), img))
	return nil
}

// LoadPlayer creates the hosted player centered on (x, y). When the
// definition names an actor, its sheet and tuning are loaded too.
func (b *Base) LoadPlayer(x, y float64) error {
	p := entity.NewPlayer(x, y, DefaultPlayerW, DefaultPlayerH)

	if b.Def.Player != "" {
		cfg, err := b.Env.Loader.LoadActor(b.Def.Player)
		if err != nil {
			return err
		}
		p = entity.NewPlayer(x, y, float64(cfg.FrameWidth), float64(cfg.FrameHeight))
		p.Speed = cfg.Speed
		p.AnimationSpeed = cfg.AnimationSpeed
		p.FrameCounts = cfg.Frames

		anims, err := loadAnimations(b.Env.Images, cfg)
		if err != nil {
			return fmt.Errorf("actor %s: %w", b.Def.Player, err)
		}
		p.Animations = anims
	}

	p.Z = b.Layer(LayerMain)
	b.player = p
	return nil
}

// loadAnimations slices <assets_path>/<status>.png for every status
func loadAnimations(images system.ImageSource, cfg *config.ActorConfig) (map[string][]*ebiten.Image, error) {
	anims := make(map[string][]*ebiten.Image)
	if cfg.AssetsPath == "" {
		return anims, nil
	}
	for _, status := range entity.Statuses {
		img, err := images.Image(path.Join(cfg.AssetsPath, status+".png"))
		if err != nil {
			return nil, err
		}
		if img == nil {
			continue
		}
		anims[status] = assets.Slice(img, cfg.FrameWidth, cfg.FrameHeight)
	}
	return anims, nil
}

// ParseHexColor parses "#rgb" or "#rrggbb"
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, false
		}
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, false
		}
		r, g, b = r*17, g*17, b*17
	default:
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}
