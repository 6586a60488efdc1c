// Package config reads the binaries' runtime settings. Library packages
// never touch configuration; everything here is consumed by cmd/ programs
// and handed down as plain values.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the resolved settings for one binary run.
type Config struct {
	LogLevel   string `mapstructure:"logLevel"`
	LogConsole bool   `mapstructure:"logConsole"`

	FrameRate int `mapstructure:"frameRate"`

	World WorldConfig `mapstructure:"world"`
	Run   RunConfig   `mapstructure:"run"`
	Audio AudioConfig `mapstructure:"audio"`
}

// WorldConfig tunes the reference physics world.
type WorldConfig struct {
	Gravity        float64 `mapstructure:"gravity"`
	LinearDamping  float64 `mapstructure:"linearDamping"`
	AngularDamping float64 `mapstructure:"angularDamping"`
	GroundPlane    bool    `mapstructure:"groundPlane"`
}

// RunConfig controls headless execution.
type RunConfig struct {
	Frames int     `mapstructure:"frames"`
	Delta  float64 `mapstructure:"delta"`
}

// AudioConfig controls the sandbox's collision cues.
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load resolves configuration: built-in defaults, then an optional
// kinema.toml in dir, then KINEMA_* environment variables. A missing
// config file is not an error.
func Load(dir string) (Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logConsole", true)

	v.SetDefault("frameRate", 60)

	v.SetDefault("world.gravity", -9.81)
	v.SetDefault("world.linearDamping", 0.5)
	v.SetDefault("world.angularDamping", 1.0)
	v.SetDefault("world.groundPlane", true)

	v.SetDefault("run.frames", 600)
	v.SetDefault("run.delta", 1.0/60.0)

	v.SetDefault("audio.enabled", true)

	v.SetConfigName("kinema")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("KINEMA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
