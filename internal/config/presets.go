package config

import (
	"sort"

	"github.com/san-kum/camadj/internal/camera"
)

func preset(el, az, roll, fsd, fcd float64) camera.Params {
	return camera.Params{
		Elevation: el, Azimuth: az, Roll: roll,
		FocalScreenDistance: fsd, FocalCameraDistance: fcd,
		ScreenWidth: DefaultScreenSize, ScreenHeight: DefaultScreenSize,
		BoxSizeX: DefaultBoxSize, BoxSizeY: DefaultBoxSize, BoxSizeZ: DefaultBoxSize,
	}
}

// Presets are named camera placements around the unit box.
var Presets = map[string]camera.Params{
	"front":  preset(0, 0, 0, 1, 2),
	"top":    preset(90, 0, 0, 1, 2),
	"side":   preset(90, 90, 0, 1, 2),
	"iso":    preset(54.7356, 45, 0, 1.5, 3),
	"tilted": preset(30, 30, 15, 1, 2.5),
	"wide": {
		Elevation: 20, Azimuth: -35,
		FocalScreenDistance: 1, FocalCameraDistance: 3,
		ScreenWidth: 1.6, ScreenHeight: 0.9,
		BoxSizeX: 2, BoxSizeY: 1, BoxSizeZ: 0.5,
	},
}

// GetPreset returns the default config with the named camera placement, or
// nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Camera = p
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
