package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Settings is the user-editable config.ini
type Settings struct {
	Display DisplaySettings `mapstructure:"display"`
	Game    GameSettings    `mapstructure:"game"`
	Log     LogSettings     `mapstructure:"log"`
	Audio   AudioSettings   `mapstructure:"audio"`
}

type DisplaySettings struct {
	Width  int     `mapstructure:"width" validate:"gt=0"`
	Height int     `mapstructure:"height" validate:"gt=0"`
	Scale  float64 `mapstructure:"scale" validate:"gt=0"`
	TPS    int     `mapstructure:"tps" validate:"gt=0"`
}

type GameSettings struct {
	StartScene string `mapstructure:"start_scene" validate:"required"`
	FadeStep   int    `mapstructure:"fade_step" validate:"gte=1,lte=255"`
	Seed       int64  `mapstructure:"seed"`
}

type LogSettings struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume" validate:"gte=0,lte=1"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.width", 1280)
	v.SetDefault("display.height", 720)
	v.SetDefault("display.scale", 1.0)
	v.SetDefault("display.tps", 60)
	v.SetDefault("game.start_scene", "menu")
	v.SetDefault("game.fade_step", 8)
	v.SetDefault("game.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
}

// DefaultSettings returns the settings used when config.ini has no value
func DefaultSettings() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	// Defaults always decode
	_ = v.Unmarshal(&s)
	return s
}

// LoadSettings reads the ini file at path, creating it with the defaults
// when it does not exist yet.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
		if err := v.SafeWriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("failed to create settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return &s, nil
}
