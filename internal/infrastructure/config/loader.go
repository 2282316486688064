package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/go-playground/validator/v10"
)

// ErrSceneNotFound is returned when no definition exists for a scene name
var ErrSceneNotFound = errors.New("scene definition not found")

// Loader loads definition data from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	validate *validator.Validate
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return NewFSLoader(os.DirFS(basePath))
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:     fsys,
		validate: validator.New(),
	}
}

func scenePath(name string) string {
	return path.Join("scenes", name+".json")
}

// SceneExists reports whether a definition exists for name
func (l *Loader) SceneExists(name string) bool {
	if name == "" {
		return false
	}
	_, err := fs.Stat(l.fsys, scenePath(name))
	return err == nil
}

// LoadScene loads scenes/<name>.json
func (l *Loader) LoadScene(name string) (*SceneConfig, error) {
	data, err := fs.ReadFile(l.fsys, scenePath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, ErrSceneNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}

	var cfg SceneConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}
	if err := l.validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", name, err)
	}
	if cfg.Cable != nil {
		if err := cfg.Cable.Check(); err != nil {
			return nil, fmt.Errorf("invalid scene %s: %w", name, err)
		}
	}

	return &cfg, nil
}

// LoadTileMap loads a map JSON file. p is relative to the loader root.
func (l *Loader) LoadTileMap(p string) (*TileMap, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", p, err)
	}

	var m TileMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", p, err)
	}
	if err := l.validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid map %s: %w", p, err)
	}
	for _, layer := range m.Layers {
		if len(layer.Data) != 0 && len(layer.Data) != m.Width*m.Height {
			return nil, fmt.Errorf("invalid map %s: layer %s has %d cells, want %d",
				p, layer.Name, len(layer.Data), m.Width*m.Height)
		}
	}

	return &m, nil
}

// LoadActor loads actors/<name>.json
func (l *Loader) LoadActor(name string) (*ActorConfig, error) {
	p := path.Join("actors", name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read actor %s: %w", name, err)
	}

	var cfg ActorConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse actor %s: %w", name, err)
	}
	if err := l.validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid actor %s: %w", name, err)
	}

	return &cfg, nil
}
