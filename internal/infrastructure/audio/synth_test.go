package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCue_String(t *testing.T) {
	tests := []struct {
		cue      Cue
		expected string
	}{
		{CueFade, "fade"},
		{CuePickup, "pickup"},
		{CueReward, "reward"},
		{CueError, "error"},
		{Cue(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cue.String())
		})
	}
}

func TestContextRate(t *testing.T) {
	// assert.Equal compares types, so this fails if the rate stops being a plain int
	assert.Equal(t, 44100, ContextRate)
	assert.Equal(t, SampleRate.N(time.Second), ContextRate)
}

func TestSynthesize_RenderLength(t *testing.T) {
	tests := []struct {
		cue      Cue
		duration time.Duration
	}{
		{CueFade, 250 * time.Millisecond},
		{CuePickup, 80 * time.Millisecond},
		{CueReward, 320 * time.Millisecond},
		{CueError, 150 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s, err := Synthesize(tt.cue, 1, 1)
			require.NoError(t, err)

			pcm := Render(s)
			// 2 channels of 2 bytes per frame
			assert.Equal(t, SampleRate.N(tt.duration)*4, len(pcm))
		})
	}
}

func TestSynthesize_Unknown(t *testing.T) {
	_, err := Synthesize(Cue(99), 1, 1)
	assert.Error(t, err)
}

func TestSynthesize_SilentVolume(t *testing.T) {
	s, err := Synthesize(CuePickup, 0, 1)
	require.NoError(t, err)

	pcm := Render(s)
	require.NotEmpty(t, pcm)
	for i := 0; i < len(pcm); i += 2 {
		assert.Zero(t, binary.LittleEndian.Uint16(pcm[i:]))
	}
}

func TestEnvelope_FadesToZero(t *testing.T) {
	s, err := Synthesize(CueFade, 1, 7)
	require.NoError(t, err)

	pcm := Render(s)
	require.GreaterOrEqual(t, len(pcm), 4)

	// First frame is at the start of the attack ramp
	assert.Zero(t, int16(binary.LittleEndian.Uint16(pcm[0:])))
}

func TestToInt16_Clamps(t *testing.T) {
	assert.Equal(t, int16(32767), toInt16(2))
	assert.Equal(t, int16(-32767), toInt16(-2))
	assert.Equal(t, int16(0), toInt16(0))
}
