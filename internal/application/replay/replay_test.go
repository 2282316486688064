package replay

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wiretown/internal/application/system"
)

func TestReplayData_JSONMarshal(t *testing.T) {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Scene:     "menu",
		StartTime: "2024-01-01T00:00:00Z",
		Frames: []Frame{
			{F: 0, Input: system.InputState{CursorX: 100, CursorY: 100}},
			{F: 1, Input: system.InputState{
				Events: []system.InputEvent{system.KeyDown(ebiten.KeySpace)},
				Held:   []ebiten.Key{ebiten.KeyD},
			}},
		},
	}

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded ReplayData
	require.NoError(t, json.Unmarshal(jsonData, &decoded))

	assert.Equal(t, data, decoded)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Scene:   "test",
		Frames: []Frame{
			{F: 0, Input: system.InputState{Held: []ebiten.Key{ebiten.KeyA}, CursorX: 100}},
			{F: 1, Input: system.InputState{Events: []system.InputEvent{system.PointerDown(110, 95)}}},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.IsHeld(ebiten.KeyA))
	assert.Equal(t, 100, input.CursorX)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	require.Len(t, input.Events, 1)
	assert.Equal(t, system.EventPointerDown, input.Events[0].Kind)
	assert.False(t, input.IsHeld(ebiten.KeyA))

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Empty(t, input.Events)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_Metadata(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10, 100, 100))

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())
	assert.Equal(t, "test", replayer.Scene())
}

func TestSource_Done(t *testing.T) {
	src := NewSource(NewReplayer(CreateTestReplayData(2, 7, 8)))

	for range 2 {
		in := src.GetInput()
		assert.Equal(t, 7, in.CursorX)
		assert.False(t, src.Done())
	}

	in := src.GetInput()
	assert.Equal(t, system.InputState{}, in)
	assert.True(t, src.Done())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 200, 150)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "test", data.Scene)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, 200, frame.Input.CursorX)
		assert.Equal(t, 150, frame.Input.CursorY)
	}
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder(99, "menu")

	r.RecordFrame(system.InputState{CursorX: 1})
	r.RecordFrame(system.InputState{Events: []system.InputEvent{system.KeyDown(ebiten.KeyEscape)}})
	assert.Equal(t, 2, r.FrameCount())
	assert.Equal(t, []int{0, 1}, []int{r.Data().Frames[0].F, r.Data().Frames[1].F})

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, r.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), loaded.Seed)
	assert.Equal(t, "menu", loaded.Scene)
	assert.Equal(t, r.Data().Frames, loaded.Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder(1, "menu").Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.True(t, errors.Is(err, ErrNoFrames))

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestResolveFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"explicit", "run.json"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, ResolveFilename(tt.in))
		})
	}

	auto := ResolveFilename(AutoFilename)
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, auto)
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, GenerateFilename())
}
