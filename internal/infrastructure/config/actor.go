package config

// ActorConfig is the root config for actors/<name>.json
type ActorConfig struct {
	AssetsPath     string         `json:"assets_path"`
	FrameWidth     int            `json:"frame_width" validate:"gt=0"`
	FrameHeight    int            `json:"frame_height" validate:"gt=0"`
	Speed          float64        `json:"speed" validate:"gt=0"`
	AnimationSpeed float64        `json:"animation_speed" validate:"gte=0"`
	Frames         map[string]int `json:"frames"`
}
