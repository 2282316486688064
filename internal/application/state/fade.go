package state

// Overlay intensity bounds. Clear multiplies by white, Opaque by black.
const (
	IntensityClear  = 255
	IntensityOpaque = 0
)

// Fade is the fade-out / fade-in state machine gating scene changes
type Fade struct {
	phase     Phase
	intensity int
	step      int
}

// NewFade creates an idle fade moving step intensity units per tick
func NewFade(step int) *Fade {
	if step < 1 {
		step = 1
	}
	return &Fade{
		phase:     PhaseIdle,
		intensity: IntensityClear,
		step:      step,
	}
}

// Phase returns the current phase
func (f *Fade) Phase() Phase { return f.phase }

// Intensity returns the overlay intensity in [0, 255]
func (f *Fade) Intensity() int { return f.intensity }

// Idle reports whether no transition is running
func (f *Fade) Idle() bool { return f.phase == PhaseIdle }

// Start begins fading out. It returns false when a fade is already running.
func (f *Fade) Start() bool {
	if f.phase != PhaseIdle {
		return false
	}
	f.phase = PhaseFadingOut
	return true
}

// Tick advances the fade by one step. It returns true exactly once per
// transition, on the tick the screen becomes fully opaque.
func (f *Fade) Tick() (boundary bool) {
	switch f.phase {
	case PhaseFadingOut:
		f.intensity = max(f.intensity-f.step, IntensityOpaque)
		if f.intensity == IntensityOpaque {
			f.phase = PhaseFadingIn
			return true
		}
	case PhaseFadingIn:
		f.intensity = min(f.intensity+f.step, IntensityClear)
		if f.intensity == IntensityClear {
			f.phase = PhaseIdle
		}
	}
	return false
}
