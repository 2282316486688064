package audio

// Cue identifies a short sound effect
type Cue int

const (
	CueFade   Cue = iota // Scene transition starts
	CuePickup            // Item granted by a trigger
	CueReward            // Cable graded
	CueError             // Cable grading missed
)

// Cues lists every cue, in the order they are pre-rendered
var Cues = []Cue{CueFade, CuePickup, CueReward, CueError}

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueFade:
		return "fade"
	case CuePickup:
		return "pickup"
	case CueReward:
		return "reward"
	case CueError:
		return "error"
	default:
		return "unknown"
	}
}

// Sounds plays cues. Scenes and the manager only see this interface.
type Sounds interface {
	Play(c Cue)
}

// Nop is a Sounds that plays nothing
type Nop struct{}

func (Nop) Play(Cue) {}
