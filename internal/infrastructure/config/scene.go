package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidCable is returned when a cable layout cannot be played or graded
var ErrInvalidCable = errors.New("invalid cable layout")

// Scene kinds accepted in SceneConfig.Kind
const (
	KindMainScene     = "MainScene"
	KindPlayableScene = "PlayableScene"
	KindCableScene    = "CableScene"
	KindMenu          = "Menu"
)

// SceneConfig is the root config for scenes/<name>.json
type SceneConfig struct {
	Kind        string                       `json:"kind" validate:"required,oneof=MainScene PlayableScene CableScene Menu"`
	Layers      map[string]int               `json:"layers"`
	BgImagePath string                       `json:"bg_image_path"`
	BgColor     string                       `json:"bg_color" validate:"omitempty,hexcolor"`
	TmxPath     string                       `json:"tmx_path" validate:"required_if=Kind MainScene,required_if=Kind PlayableScene"`
	Player      string                       `json:"player"`
	Spawn       *PositionConfig              `json:"spawn"`
	Interactive map[string]InteractiveConfig `json:"interactive" validate:"dive"`

	// CableScene
	Cable *CableConfig `json:"cable" validate:"required_if=Kind CableScene,omitempty"`

	// Menu
	Buttons    []ButtonConfig    `json:"buttons" validate:"dive"`
	ButtonSize SizeConfig        `json:"button_size"`
	Targets    map[string]string `json:"targets"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SizeConfig struct {
	W float64 `json:"w" validate:"gte=0"`
	H float64 `json:"h" validate:"gte=0"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w" validate:"gt=0"`
	H float64 `json:"h" validate:"gt=0"`
}

// InteractiveConfig describes what a named map trigger does
type InteractiveConfig struct {
	Type   string `json:"type" validate:"required,oneof=scene add exit"`
	Target string `json:"target" validate:"required_if=Type scene"`
	Item   string `json:"item" validate:"required_if=Type add"`
	Amount int    `json:"amount"`
}

// CableConfig holds the minigame layout and rules
type CableConfig struct {
	Colors    []string            `json:"colors" validate:"required,min=2,unique,dive,required"`
	Orderings map[string][]string `json:"orderings" validate:"required,min=1"`
	CableSize SizeConfig          `json:"cable_size"`
	SlotGap   float64             `json:"slot_gap"`
	OriginY   float64             `json:"origin_y"`
	Bar       RectConfig          `json:"bar"`
	Zones     ZonesConfig         `json:"zones"`
	Cursor    CursorConfig        `json:"cursor"`
	Rewards   map[string]int      `json:"rewards"`
	Assets    map[string]string   `json:"assets"`
}

// Check verifies what struct tags cannot: every ordering is a permutation
// of Colors, and green sits inside yellow, yellow inside orange, orange
// inside the bar along the x axis.
func (c *CableConfig) Check() error {
	want := sortedCopy(c.Colors)
	for name, order := range c.Orderings {
		got := sortedCopy(order)
		if len(got) != len(want) {
			return fmt.Errorf("%w: ordering %s has %d colors, want %d", ErrInvalidCable, name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				return fmt.Errorf("%w: ordering %s is not a permutation of colors", ErrInvalidCable, name)
			}
		}
	}

	nested := []struct {
		inner, outer string
		in, out      RectConfig
	}{
		{"green", "yellow", c.Zones.Green, c.Zones.Yellow},
		{"yellow", "orange", c.Zones.Yellow, c.Zones.Orange},
		{"orange", "bar", c.Zones.Orange, c.Bar},
	}
	for _, n := range nested {
		if n.in.X < n.out.X || n.in.X+n.in.W > n.out.X+n.out.W {
			return fmt.Errorf("%w: %s zone is not inside %s", ErrInvalidCable, n.inner, n.outer)
		}
	}
	return nil
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

// ZonesConfig are the nested grading zones on the bar, in screen pixels
type ZonesConfig struct {
	Orange RectConfig `json:"orange"`
	Yellow RectConfig `json:"yellow"`
	Green  RectConfig `json:"green"`
}

type CursorConfig struct {
	W     float64 `json:"w" validate:"gt=0"`
	H     float64 `json:"h" validate:"gt=0"`
	Speed float64 `json:"speed" validate:"gt=0"`
}

// ButtonConfig places one menu button, centered on X, Y
type ButtonConfig struct {
	Label string  `json:"label" validate:"required"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}
