package config

import "sort"

// Preset is a named Level 1 setup.
type Preset struct {
	Angle       int
	M1          float64
	M2          float64
	Mu          float64
	Description string
}

var presets = map[string]Preset{
	"textbook": {
		Angle: 30, M1: 10, M2: 5, Mu: 0.2,
		Description: "hanging weight equals the slope component",
	},
	"frictionless": {
		Angle: 45, M1: 5, M2: 3.5355, Mu: 0,
		Description: "balanced without any friction",
	},
	"rough": {
		Angle: 37, M1: 20, M2: 5, Mu: 0.8,
		Description: "friction holds a large imbalance",
	},
	"steep": {
		Angle: 60, M1: 10, M2: 2, Mu: 0.1,
		Description: "block slides down the slope",
	},
	"heavy_hanger": {
		Angle: 16, M1: 5, M2: 20, Mu: 0.3,
		Description: "hanging block drags the ramp block up",
	},
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(name string) *Preset {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset into the Level 1 section of cfg.
func (p *Preset) Apply(cfg *Config) {
	cfg.Incline.Angle = p.Angle
	cfg.Incline.M1 = p.M1
	cfg.Incline.M2 = p.M2
	cfg.Incline.Mu = p.Mu
}
