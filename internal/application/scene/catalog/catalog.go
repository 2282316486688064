// Package catalog builds scenes by name from their definition data.
package catalog

import (
	"errors"
	"fmt"

	"github.com/younwookim/wiretown/internal/application/scene"
	"github.com/younwookim/wiretown/internal/application/scene/cable"
	"github.com/younwookim/wiretown/internal/application/scene/hub"
	"github.com/younwookim/wiretown/internal/application/scene/level"
	"github.com/younwookim/wiretown/internal/application/scene/menu"
)

// ErrUnknownKind is returned for a definition whose kind has no scene type
var ErrUnknownKind = errors.New("unknown scene kind")

// Catalog maps scene names to fresh scene instances
type Catalog struct {
	env scene.Env
}

// New creates a catalog sharing env with every scene it builds
func New(env scene.Env) *Catalog {
	return &Catalog{env: env.WithDefaults()}
}

// Has reports whether a definition exists for name
func (c *Catalog) Has(name string) bool {
	return c.env.Loader != nil && c.env.Loader.SceneExists(name)
}

// Build loads the definition of name and constructs a new scene from it.
// Every call returns a fresh instance; scenes keep no state between visits.
func (c *Catalog) Build(name string) (scene.Scene, error) {
	if c.env.Loader == nil {
		return nil, fmt.Errorf("scene %s: no loader configured", name)
	}
	def, err := c.env.Loader.LoadScene(name)
	if err != nil {
		return nil, err
	}

	kind, ok := scene.ParseKind(def.Kind)
	if !ok {
		return nil, fmt.Errorf("scene %s: %w: %q", name, ErrUnknownKind, def.Kind)
	}

	switch kind {
	case scene.KindMainScene:
		return built(hub.New(name, def, c.env))
	case scene.KindPlayableScene:
		return built(level.New(name, def, c.env))
	case scene.KindCableScene:
		return built(cable.New(name, def, c.env))
	case scene.KindMenu:
		return built(menu.New(name, def, c.env))
	}
	return nil, fmt.Errorf("scene %s: %w: %q", name, ErrUnknownKind, def.Kind)
}

// built drops the typed nil a failed constructor returns
func built[S scene.Scene](s S, err error) (scene.Scene, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
