package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseIdle, "Idle"},
		{PhaseFadingOut, "FadingOut"},
		{PhaseFadingIn, "FadingIn"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Phase(0), PhaseIdle)
	assert.Equal(t, Phase(1), PhaseFadingOut)
	assert.Equal(t, Phase(2), PhaseFadingIn)
}

func TestFade_FullCycle(t *testing.T) {
	for _, step := range []int{1, 8, 15, 100, 255} {
		f := NewFade(step)
		require.True(t, f.Start())
		require.False(t, f.Start())

		boundaries := 0
		prev := f.Intensity()
		for ticks := 0; !f.Idle(); ticks++ {
			require.Less(t, ticks, 1000, "fade never finished")

			phase := f.Phase()
			if f.Tick() {
				boundaries++
				assert.Equal(t, IntensityOpaque, f.Intensity())
				assert.Equal(t, PhaseFadingIn, f.Phase())
			}

			switch phase {
			case PhaseFadingOut:
				assert.Less(t, f.Intensity(), prev)
			case PhaseFadingIn:
				assert.Greater(t, f.Intensity(), prev)
			}
			prev = f.Intensity()
		}

		assert.Equal(t, 1, boundaries, "step %d", step)
		assert.Equal(t, IntensityClear, f.Intensity())
	}
}

func TestFade_TickWhileIdle(t *testing.T) {
	f := NewFade(8)

	assert.False(t, f.Tick())
	assert.Equal(t, PhaseIdle, f.Phase())
	assert.Equal(t, IntensityClear, f.Intensity())
}

func TestFade_TickCount(t *testing.T) {
	f := NewFade(8)
	f.Start()

	ticks := 1
	for !f.Tick() {
		ticks++
	}
	// 255 / 8 rounded up
	assert.Equal(t, 32, ticks)
}

func TestNewFade_ClampsStep(t *testing.T) {
	f := NewFade(0)
	f.Start()
	f.Tick()
	assert.Equal(t, 254, f.Intensity())
}
