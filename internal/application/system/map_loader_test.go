package system

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wiretown/internal/domain/entity"
	"github.com/younwookim/wiretown/internal/infrastructure/config"
)

// noImages is an ImageSource without any image
type noImages struct{}

func (noImages) Image(string) (*ebiten.Image, error) { return nil, nil }

func createTestMap() *config.TileMap {
	return &config.TileMap{
		Width: 3, Height: 2, TileWidth: 32, TileHeight: 32,
		Layers: []config.TileLayer{
			{Name: "ground", Data: []int{1, 1, 1, 0, 0, 0}},
			{Name: "walls", Collidable: true, Data: []int{0, 0, 2, 2, 0, 0}},
		},
		Objects: []config.MapObject{
			{Name: "server", Class: ClassBuilding, X: 100, Y: 50, Width: 100, Height: 80},
			{Name: "door", Class: ClassTrigger, X: 0, Y: 0, Width: 40, Height: 40},
			{Name: "Player", Class: ClassPlayer, X: 64, Y: 96},
		},
	}
}

func TestBuildObjects(t *testing.T) {
	defs := map[string]config.InteractiveConfig{
		"door": {Type: "scene", Target: "cable"},
	}

	objs, err := BuildObjects(createTestMap(), defs, 1, noImages{})
	require.NoError(t, err)

	require.Len(t, objs.Sprites, 1)
	assert.Equal(t, 1, objs.Sprites[0].Z)
	require.Len(t, objs.Obstacles, 1)
	assert.Equal(t, entity.NewRect(110, 80, 80, 20), objs.Obstacles[0])

	require.Len(t, objs.Triggers, 1)
	trig := objs.Triggers[0]
	assert.Equal(t, "door", trig.Name)
	assert.Equal(t, entity.TriggerEnter, trig.Kind)
	assert.Equal(t, "cable", trig.Target)
	assert.Equal(t, entity.NewRect(0, 0, 40, 40), trig.Rect)
}

func TestBuildObjects_UnknownTrigger(t *testing.T) {
	_, err := BuildObjects(createTestMap(), nil, 1, noImages{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTrigger))
}

func TestSpawn(t *testing.T) {
	x, y, ok := Spawn(createTestMap())
	require.True(t, ok)
	assert.Equal(t, 64.0, x)
	assert.Equal(t, 96.0, y)

	_, _, ok = Spawn(&config.TileMap{})
	assert.False(t, ok)
}

func TestBuildTiles(t *testing.T) {
	layers := map[string]int{"ground": 0, "main": 1}

	sprites, obstacles := BuildTiles(createTestMap(), layers, 1, nil)

	// 3 ground cells + 2 wall cells
	require.Len(t, sprites, 5)
	assert.Equal(t, 0, sprites[0].Z)
	assert.Equal(t, 1, sprites[3].Z)

	// Only the collidable layer blocks
	require.Len(t, obstacles, 2)
	assert.Equal(t, entity.NewRect(64, 0, 32, 32), obstacles[0])
	assert.Equal(t, entity.NewRect(0, 32, 32, 32), obstacles[1])
}

func TestBuildTiles_ResolvesImages(t *testing.T) {
	var gids []int
	lookup := func(gid int) *ebiten.Image {
		gids = append(gids, gid)
		return nil
	}

	BuildTiles(createTestMap(), nil, 1, lookup)
	assert.Equal(t, []int{1, 1, 1, 2, 2}, gids)
}
