package forcelayout

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultCanvasWidth     = 1000.
	DefaultCanvasHeight    = 1000.
	DefaultCutoffRadius    = 250.
	DefaultNearFieldRadius = 30.
	DefaultEjectFactor     = 6.
	DefaultNearEjectFactor = 5.
	DefaultCondenseFactor  = 3.
	DefaultMaxDeltaX       = 4
	DefaultMaxDeltaY       = 3
)

var validate = validator.New()

type Config struct {
	// size of the canvas; nodes are kept strictly inside (0, width) x (0, height)
	CanvasWidth  float64 `toml:"canvas_width" validate:"gt=0"`
	CanvasHeight float64 `toml:"canvas_height" validate:"gt=0"`

	// pairs at or beyond this distance do not repel each other
	CutoffRadius float64 `toml:"cutoff_radius" validate:"gt=0"`

	// once any pair closer than NearFieldRadius is seen during a step, the
	// rest of that step repels with NearEjectFactor instead of EjectFactor.
	// Like every field, zero means the default.
	NearFieldRadius float64 `toml:"near_field_radius" validate:"gt=0"`
	EjectFactor     float64 `toml:"eject_factor" validate:"gt=0"`
	NearEjectFactor float64 `toml:"near_eject_factor" validate:"gt=0"`

	// attraction multiplier along edges; zero means the default
	CondenseFactor float64 `toml:"condense_factor" validate:"gt=0"`

	// maximum whole-pixel movement of a node per step, per axis
	MaxDeltaX int `toml:"max_delta_x" validate:"gt=0"`
	MaxDeltaY int `toml:"max_delta_y" validate:"gt=0"`
}

// DefaultConfig returns a config with every knob at its default.
func DefaultConfig() *Config {
	return (&Config{}).withDefaults()
}

// withDefaults fills zero-valued fields in place and returns the receiver.
func (c *Config) withDefaults() *Config {
	if c.CanvasWidth == 0. {
		c.CanvasWidth = DefaultCanvasWidth
	}
	if c.CanvasHeight == 0. {
		c.CanvasHeight = DefaultCanvasHeight
	}
	if c.CutoffRadius == 0. {
		c.CutoffRadius = DefaultCutoffRadius
	}
	if c.NearFieldRadius == 0. {
		c.NearFieldRadius = DefaultNearFieldRadius
	}
	if c.EjectFactor == 0. {
		c.EjectFactor = DefaultEjectFactor
	}
	if c.NearEjectFactor == 0. {
		c.NearEjectFactor = DefaultNearEjectFactor
	}
	if c.CondenseFactor == 0. {
		c.CondenseFactor = DefaultCondenseFactor
	}
	if c.MaxDeltaX == 0 {
		c.MaxDeltaX = DefaultMaxDeltaX
	}
	if c.MaxDeltaY == 0 {
		c.MaxDeltaY = DefaultMaxDeltaY
	}
	return c
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s must be %s %s", ErrInvalidConfig, e.Field(), e.Tag(), e.Param())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// a bounce from one wall must not carry a node through the opposite one
	if c.CanvasWidth <= 2*float64(c.MaxDeltaX) {
		return fmt.Errorf("%w: CanvasWidth must exceed twice MaxDeltaX", ErrInvalidConfig)
	}
	if c.CanvasHeight <= 2*float64(c.MaxDeltaY) {
		return fmt.Errorf("%w: CanvasHeight must exceed twice MaxDeltaY", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig decodes a TOML file, fills defaults for anything it leaves out
// and validates the result.
func LoadConfig(path string) (*Config, error) {
	conf := &Config{}
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	conf.withDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
