package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"scenes/hub.json": {Data: []byte(`{
			"kind": "MainScene",
			"layers": {"floor": 0, "main": 1},
			"tmx_path": "maps/hub.json",
			"interactive": {
				"door": {"type": "scene", "target": "cable"},
				"coin": {"type": "add", "item": "money", "amount": 5}
			}
		}`)},
		"scenes/cable.json": {Data: []byte(`{
			"kind": "CableScene",
			"cable": {
				"colors": ["orange", "blue"],
				"orderings": {"T568B": ["orange", "blue"]},
				"bar": {"x": 0, "y": 0, "w": 500, "h": 20},
				"zones": {
					"orange": {"x": 50, "y": 0, "w": 400, "h": 20},
					"yellow": {"x": 150, "y": 0, "w": 200, "h": 20},
					"green": {"x": 220, "y": 0, "w": 60, "h": 20}
				},
				"cursor": {"w": 10, "h": 30, "speed": 200}
			}
		}`)},
		"scenes/badorder.json": {Data: []byte(`{
			"kind": "CableScene",
			"cable": {
				"colors": ["orange", "blue"],
				"orderings": {"T568B": ["orange", "orange"]},
				"bar": {"x": 0, "y": 0, "w": 500, "h": 20},
				"zones": {
					"orange": {"x": 50, "y": 0, "w": 400, "h": 20},
					"yellow": {"x": 150, "y": 0, "w": 200, "h": 20},
					"green": {"x": 220, "y": 0, "w": 60, "h": 20}
				},
				"cursor": {"w": 10, "h": 30, "speed": 200}
			}
		}`)},
		"scenes/broken.json":  {Data: []byte(`{"kind": "Castle"}`)},
		"scenes/nomap.json":   {Data: []byte(`{"kind": "PlayableScene"}`)},
		"scenes/notjson.json": {Data: []byte(`{`)},
		"scenes/badtrig.json": {Data: []byte(`{
			"kind": "Menu",
			"interactive": {"x": {"type": "scene"}}
		}`)},
		"maps/hub.json": {Data: []byte(`{
			"width": 2, "height": 2, "tilewidth": 32, "tileheight": 32,
			"layers": [{"name": "walls", "collidable": true, "data": [1, 0, 0, 1]}],
			"objects": [
				{"name": "Player", "class": "Player", "x": 40, "y": 50},
				{"name": "door", "class": "Trigger", "x": 0, "y": 0, "width": 32, "height": 32}
			]
		}`)},
		"maps/short.json": {Data: []byte(`{
			"width": 2, "height": 2, "tilewidth": 32, "tileheight": 32,
			"layers": [{"name": "walls", "data": [1]}]
		}`)},
		"actors/player.json": {Data: []byte(`{
			"assets_path": "graphics/player",
			"frame_width": 64, "frame_height": 128,
			"speed": 300, "animation_speed": 9,
			"frames": {"left_walk": 4}
		}`)},
	}
}

func TestLoader_LoadScene(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadScene("hub")
	require.NoError(t, err)

	assert.Equal(t, KindMainScene, cfg.Kind)
	assert.Equal(t, 1, cfg.Layers["main"])
	assert.Equal(t, "maps/hub.json", cfg.TmxPath)
	assert.Equal(t, "cable", cfg.Interactive["door"].Target)
	assert.Equal(t, 5, cfg.Interactive["coin"].Amount)

	cable, err := loader.LoadScene("cable")
	require.NoError(t, err)
	require.NotNil(t, cable.Cable)
	assert.Equal(t, []string{"orange", "blue"}, cable.Cable.Orderings["T568B"])
}

func TestLoader_LoadScene_Errors(t *testing.T) {
	loader := NewFSLoader(testFS())

	tests := []struct {
		name     string
		scene    string
		notFound bool
	}{
		{"missing", "nowhere", true},
		{"unknown kind", "broken", false},
		{"playable without map", "nomap", false},
		{"malformed json", "notjson", false},
		{"scene trigger without target", "badtrig", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadScene(tt.scene)
			require.Error(t, err)
			assert.Equal(t, tt.notFound, errors.Is(err, ErrSceneNotFound))
		})
	}
}

func TestLoader_SceneExists(t *testing.T) {
	loader := NewFSLoader(testFS())

	assert.True(t, loader.SceneExists("hub"))
	assert.False(t, loader.SceneExists("nowhere"))
	assert.False(t, loader.SceneExists(""))
}

func TestLoader_LoadTileMap(t *testing.T) {
	loader := NewFSLoader(testFS())

	m, err := loader.LoadTileMap("maps/hub.json")
	require.NoError(t, err)
	assert.Equal(t, 32, m.TileWidth)
	require.Len(t, m.Layers, 1)
	assert.True(t, m.Layers[0].Collidable)

	spawn, ok := m.Object("Player", "Player")
	require.True(t, ok)
	assert.Equal(t, 40.0, spawn.X)

	_, ok = m.Object("door", "Building")
	assert.False(t, ok)

	_, err = loader.LoadTileMap("maps/short.json")
	assert.Error(t, err)

	_, err = loader.LoadTileMap("maps/none.json")
	assert.Error(t, err)
}

func TestLoader_LoadActor(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadActor("player")
	require.NoError(t, err)
	assert.Equal(t, "graphics/player", cfg.AssetsPath)
	assert.Equal(t, 300.0, cfg.Speed)
	assert.Equal(t, 4, cfg.Frames["left_walk"])
}

func TestLoader_BundledData(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	for _, name := range []string{"menu", "main_scene", "server_room", "cable"} {
		cfg, err := loader.LoadScene(name)
		require.NoError(t, err, name)
		if cfg.TmxPath != "" {
			_, err := loader.LoadTileMap(cfg.TmxPath)
			require.NoError(t, err, name)
		}
	}

	_, err := loader.LoadActor("player")
	require.NoError(t, err)
}

func validCable() CableConfig {
	return CableConfig{
		Colors:    []string{"orange", "blue", "green"},
		Orderings: map[string][]string{"T568B": {"orange", "blue", "green"}, "T568A": {"green", "blue", "orange"}},
		Bar:       RectConfig{X: 0, Y: 0, W: 500, H: 20},
		Zones: ZonesConfig{
			Orange: RectConfig{X: 50, W: 400, H: 20},
			Yellow: RectConfig{X: 150, W: 200, H: 20},
			Green:  RectConfig{X: 220, W: 60, H: 20},
		},
	}
}

func TestCableConfig_Check(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CableConfig)
		valid  bool
	}{
		{"valid", func(*CableConfig) {}, true},
		{"green touching yellow edges", func(c *CableConfig) { c.Zones.Green = RectConfig{X: 150, W: 200, H: 20} }, true},
		{"ordering too short", func(c *CableConfig) { c.Orderings["T568B"] = []string{"orange", "blue"} }, false},
		{"ordering with duplicate", func(c *CableConfig) { c.Orderings["T568B"] = []string{"orange", "blue", "blue"} }, false},
		{"ordering with unknown color", func(c *CableConfig) { c.Orderings["T568A"] = []string{"green", "blue", "brown"} }, false},
		{"green left of yellow", func(c *CableConfig) { c.Zones.Green.X = 100 }, false},
		{"green past yellow", func(c *CableConfig) { c.Zones.Green.X = 300 }, false},
		{"yellow wider than orange", func(c *CableConfig) { c.Zones.Yellow = RectConfig{X: 40, W: 420, H: 20} }, false},
		{"orange off the bar", func(c *CableConfig) { c.Zones.Orange.X = 120 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCable()
			tt.mutate(&c)

			err := c.Check()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidCable), "got %v", err)
			}
		})
	}
}

func TestLoader_LoadScene_InvalidCable(t *testing.T) {
	loader := NewFSLoader(testFS())

	_, err := loader.LoadScene("badorder")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCable))
	assert.False(t, errors.Is(err, ErrSceneNotFound))
}
