package audio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// Player plays pre-rendered cues on the ebiten audio context
type Player struct {
	ctx    *audio.Context
	pcm    map[Cue][]byte
	logger *zap.Logger
}

// NewPlayer renders every cue once at the given volume
func NewPlayer(ctx *audio.Context, vol float64, seed int64, logger *zap.Logger) (*Player, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Player{
		ctx:    ctx,
		pcm:    make(map[Cue][]byte, len(Cues)),
		logger: logger,
	}
	for _, c := range Cues {
		s, err := Synthesize(c, vol, seed)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %s: %w", c, err)
		}
		p.pcm[c] = Render(s)
	}

	return p, nil
}

// Play starts a cue. Overlapping cues mix.
func (p *Player) Play(c Cue) {
	data, ok := p.pcm[c]
	if !ok {
		p.logger.Warn("unknown sound cue", zap.Stringer("cue", c))
		return
	}
	p.ctx.NewPlayerFromBytes(data).Play()
}
