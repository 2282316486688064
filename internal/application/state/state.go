package state

// Phase is the scene transition phase
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFadingOut:
		return "FadingOut"
	case PhaseFadingIn:
		return "FadingIn"
	default:
		return "Unknown"
	}
}
