package config

// TileMap is the root config for maps/<name>.json.
// It mirrors the parts of a Tiled export the game uses.
type TileMap struct {
	Width      int             `json:"width" validate:"gte=0"`
	Height     int             `json:"height" validate:"gte=0"`
	TileWidth  int             `json:"tilewidth" validate:"gt=0"`
	TileHeight int             `json:"tileheight" validate:"gt=0"`
	Tilesets   []TilesetConfig `json:"tilesets" validate:"dive"`
	Layers     []TileLayer     `json:"layers" validate:"dive"`
	Objects    []MapObject     `json:"objects" validate:"dive"`
}

type TilesetConfig struct {
	FirstGID int    `json:"firstgid" validate:"gt=0"`
	Image    string `json:"image"`
	Count    int    `json:"tilecount" validate:"gte=0"`
}

// TileLayer is a grid of tile GIDs in row-major order. 0 is an empty cell.
type TileLayer struct {
	Name       string `json:"name" validate:"required"`
	Collidable bool   `json:"collidable"`
	Data       []int  `json:"data"`
}

// MapObject is a placed object. Class is "Building", "Trigger" or "Player".
type MapObject struct {
	Name   string  `json:"name"`
	Class  string  `json:"class"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Image  string  `json:"image"`
}

// Object returns the first object with the given name and class
func (m *TileMap) Object(name, class string) (MapObject, bool) {
	for _, obj := range m.Objects {
		if obj.Name == name && obj.Class == class {
			return obj, true
		}
	}
	return MapObject{}, false
}
