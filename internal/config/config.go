package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/staticsim/internal/equilibrium"
)

const (
	DefaultLang     = "en"
	DefaultTheme    = "cyberpunk"
	DefaultM1       = 5.0
	DefaultM2       = 5.0
	DefaultMu       = 0.2
	DefaultMassMin  = 0.5
	DefaultMassMax  = 100.0
	DefaultMassStep = 0.5
	DefaultMuMax    = 1.0
	DefaultMuStep   = 0.01
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Seed     int64         `yaml:"seed"`
	Lang     string        `yaml:"lang"`
	Theme    string        `yaml:"theme"`
	LogLevel string        `yaml:"log_level"`
	Incline  InclineConfig `yaml:"incline"`
	Seesaw   SeesawConfig  `yaml:"seesaw"`
}

// InclineConfig holds the Level 1 starting inputs and slider ranges.
// Angle 0 means a random angle on every reset.
type InclineConfig struct {
	Angle    int     `yaml:"angle"`
	M1       float64 `yaml:"m1"`
	M2       float64 `yaml:"m2"`
	Mu       float64 `yaml:"mu"`
	MassMin  float64 `yaml:"mass_min"`
	MassMax  float64 `yaml:"mass_max"`
	MassStep float64 `yaml:"mass_step"`
	MuMax    float64 `yaml:"mu_max"`
	MuStep   float64 `yaml:"mu_step"`
}

type SeesawConfig struct {
	ShowAnswer bool `yaml:"show_answer"`
	MaxDraws   int  `yaml:"max_draws"`
}

func DefaultConfig() *Config {
	return &Config{
		Lang:  DefaultLang,
		Theme: DefaultTheme,
		Incline: InclineConfig{
			M1:       DefaultM1,
			M2:       DefaultM2,
			Mu:       DefaultMu,
			MassMin:  DefaultMassMin,
			MassMax:  DefaultMassMax,
			MassStep: DefaultMassStep,
			MuMax:    DefaultMuMax,
			MuStep:   DefaultMuStep,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate reports the first field outside its allowed range.
func (c *Config) Validate() error {
	in := c.Incline
	switch {
	case in.Angle != 0 && !equilibrium.ValidAngle(in.Angle):
		return fmt.Errorf("%w: incline.angle %d", ErrInvalid, in.Angle)
	case in.MassMin <= 0 || in.MassMax <= in.MassMin:
		return fmt.Errorf("%w: incline mass range [%g, %g]", ErrInvalid, in.MassMin, in.MassMax)
	case in.MassStep <= 0 || in.MuStep <= 0:
		return fmt.Errorf("%w: incline slider steps must be positive", ErrInvalid)
	case in.MuMax <= 0:
		return fmt.Errorf("%w: incline.mu_max %g", ErrInvalid, in.MuMax)
	case in.M1 < in.MassMin || in.M1 > in.MassMax:
		return fmt.Errorf("%w: incline.m1 %g", ErrInvalid, in.M1)
	case in.M2 < in.MassMin || in.M2 > in.MassMax:
		return fmt.Errorf("%w: incline.m2 %g", ErrInvalid, in.M2)
	case in.Mu < 0 || in.Mu > in.MuMax:
		return fmt.Errorf("%w: incline.mu %g", ErrInvalid, in.Mu)
	case c.Seesaw.MaxDraws < 0:
		return fmt.Errorf("%w: seesaw.max_draws %d", ErrInvalid, c.Seesaw.MaxDraws)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log level name to a slog level. An empty name parses
// as Info.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, name)
	}
	return lvl, nil
}
