package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/wiretown/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input, true
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Scene returns the root scene of the recorded session
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Source feeds a recording to the game loop. Once the frames run out it
// yields empty snapshots and Done reports true.
type Source struct {
	r    *Replayer
	done bool
}

// NewSource wraps r
func NewSource(r *Replayer) *Source {
	return &Source{r: r}
}

// GetInput returns the next recorded snapshot
func (s *Source) GetInput() system.InputState {
	in, ok := s.r.GetInput()
	if !ok {
		s.done = true
	}
	return in
}

// Done reports whether the recording is exhausted
func (s *Source) Done() bool { return s.done }

// CreateTestReplayData creates replay data for testing (cursor resting at cx, cy)
func CreateTestReplayData(frames int, cx, cy int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Scene:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]Frame, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = Frame{
			F:     i,
			Input: system.InputState{CursorX: cx, CursorY: cy},
		}
	}

	return data
}
