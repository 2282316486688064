package replay

import "github.com/younwookim/wiretown/internal/application/system"

// Version of the recording format
const Version = "2.0"

// Frame records the input snapshot of a single tick
type Frame struct {
	F     int               `json:"f"` // Frame number
	Input system.InputState `json:"in"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string  `json:"version"`
	Seed      int64   `json:"seed"`
	Scene     string  `json:"scene"` // Root scene the session started in
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}
