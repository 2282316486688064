package scene

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/wiretown/internal/application/system"
	"github.com/younwookim/wiretown/internal/infrastructure/audio"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// Env holds the collaborators shared by every scene
type Env struct {
	Loader  *config.Loader
	Images  system.ImageSource
	Sounds  audio.Sounds
	Logger  *zap.Logger
	Rand    *rand.Rand
	ScreenW int
	ScreenH int
}

// noImages is used when no image source is configured
type noImages struct{}

func (noImages) Image(string) (*ebiten.Image, error) { return nil, nil }

// WithDefaults fills unset optional collaborators
func (e Env) WithDefaults() Env {
	if e.Images == nil {
		e.Images = noImages{}
	}
	if e.Sounds == nil {
		e.Sounds = audio.Nop{}
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(1))
	}
	if e.ScreenW == 0 {
		e.ScreenW = 1280
	}
	if e.ScreenH == 0 {
		e.ScreenH = 720
	}
	return e
}
