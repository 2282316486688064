package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate of every rendered cue
const SampleRate = beep.SampleRate(44100)

// ContextRate is SampleRate in the form ebiten's audio context takes
const ContextRate = int(SampleRate)

// noise is a white noise streamer used for the fade whoosh
type noise struct {
	rng *rand.Rand
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: beep.Take(SampleRate.N(duration), s),
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, duration, attack, release time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fHz tone: %w", freq, err)
	}
	return newEnvelope(sine, duration, attack, release), nil
}

// Synthesize builds the streamer of a cue
func Synthesize(c Cue, vol float64, seed int64) (beep.Streamer, error) {
	switch c {
	case CueFade:
		whoosh := newEnvelope(&noise{rng: rand.New(rand.NewSource(seed))},
			250*time.Millisecond, 120*time.Millisecond, 120*time.Millisecond)
		return newVolume(whoosh, vol*0.3), nil

	case CuePickup:
		blip, err := tone(1320, 80*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond)
		if err != nil {
			return nil, err
		}
		return newVolume(blip, vol), nil

	case CueReward:
		n1, err := tone(1046.5, 100*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond)
		if err != nil {
			return nil, err
		}
		n2, err := tone(1568, 220*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond)
		if err != nil {
			return nil, err
		}
		return newVolume(beep.Seq(n1, n2), vol), nil

	case CueError:
		low, err := tone(110, 150*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond)
		if err != nil {
			return nil, err
		}
		high, err := tone(117, 150*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond)
		if err != nil {
			return nil, err
		}
		return newVolume(beep.Mix(newVolume(low, 0.5), newVolume(high, 0.5)), vol), nil

	default:
		return nil, fmt.Errorf("unknown cue %d", c)
	}
}

// Render drains a finite streamer into 16-bit little endian stereo PCM
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
