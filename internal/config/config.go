package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/camadj/internal/camera"
)

const (
	DefaultFocalScreenDistance = 1.0
	DefaultFocalCameraDistance = 2.0
	DefaultScreenSize          = 1.0
	DefaultBoxSize             = 1.0
	DefaultSurfaceWidth        = 800
	DefaultSurfaceHeight       = 600
	DefaultPixelsPerUnit       = 1024.0
)

// ErrNonPositive indicates a size or distance that must be strictly positive.
var ErrNonPositive = errors.New("config: value must be a positive number")

type Config struct {
	Camera camera.Params `yaml:"camera"`
	Render RenderConfig  `yaml:"render"`
}

type RenderConfig struct {
	SurfaceWidth  int     `yaml:"surface_width"`
	SurfaceHeight int     `yaml:"surface_height"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	Workers       int     `yaml:"workers"`
	Border        bool    `yaml:"border"`
}

func DefaultConfig() *Config {
	return &Config{
		Camera: camera.Params{
			FocalScreenDistance: DefaultFocalScreenDistance,
			FocalCameraDistance: DefaultFocalCameraDistance,
			ScreenWidth:         DefaultScreenSize,
			ScreenHeight:        DefaultScreenSize,
			BoxSizeX:            DefaultBoxSize,
			BoxSizeY:            DefaultBoxSize,
			BoxSizeZ:            DefaultBoxSize,
		},
		Render: RenderConfig{
			SurfaceWidth:  DefaultSurfaceWidth,
			SurfaceHeight: DefaultSurfaceHeight,
			PixelsPerUnit: DefaultPixelsPerUnit,
			Workers:       1,
			Border:        true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults, so omitted keys keep their
// default values.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects non-positive sizes and distances. Angles are free.
func (c *Config) Validate() error {
	p := c.Camera
	checks := []struct {
		name  string
		value float64
	}{
		{"screen_width", p.ScreenWidth},
		{"screen_height", p.ScreenHeight},
		{"focal_screen_distance", p.FocalScreenDistance},
		{"focal_camera_distance", p.FocalCameraDistance},
		{"box_size_x", p.BoxSizeX},
		{"box_size_y", p.BoxSizeY},
		{"box_size_z", p.BoxSizeZ},
		{"surface_width", float64(c.Render.SurfaceWidth)},
		{"surface_height", float64(c.Render.SurfaceHeight)},
		{"pixels_per_unit", c.Render.PixelsPerUnit},
	}
	for _, chk := range checks {
		if !IsPositive(chk.value) {
			return fmt.Errorf("%s = %v: %w", chk.name, chk.value, ErrNonPositive)
		}
	}
	return nil
}

// IsPositive reports whether v is a number greater than zero.
func IsPositive(v float64) bool {
	return v > 0 && v == v
}

// Env holds defaults taken from CAMADJ_* environment variables.
type Env struct {
	Config   string `envconfig:"CONFIG"`
	DataDir  string `envconfig:"DATA" default:".camadj"`
	Workers  int    `envconfig:"WORKERS" default:"1"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("camadj", &env); err != nil {
		return nil, err
	}
	return &env, nil
}
