// Package config loads named shadow presets from YAML.
//
// A preset file looks like:
//
//	device_pixel_ratio: 1
//	shadows:
//	  active:
//	    size: large
//	    strength: 160
//	    color: "#000000"
//	  inactive:
//	    size: medium
//	    strength: 90
//
// Missing files and missing fields fall back to defaults. The package only
// reads; writing settings belongs to the host's configuration dialog.
package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/boxshadow"
)

// EnvConfigFile overrides the preset file location when set.
const EnvConfigFile = "BOXSHADOW_CONFIG"

const (
	// DefaultStrength is the shadow opacity (0-255) used when a preset
	// leaves strength unset.
	DefaultStrength = 128

	// DefaultColor is the shadow colour used when a preset leaves color unset.
	DefaultColor = "#000000"
)

// ErrUnknownPreset is returned by Config.Preset for names not in the file
// or the defaults.
var ErrUnknownPreset = errors.New("config: unknown shadow preset")

// Config represents the preset file.
type Config struct {
	DevicePixelRatio float64           `yaml:"device_pixel_ratio"`
	Shadows          map[string]Preset `yaml:"shadows"`
}

// Preset describes one shadow in decoration terms.
type Preset struct {
	// Size selects radius and offset.
	Size ShadowSize `yaml:"size"`

	// Strength is the shadow opacity, 1-255. 0 means DefaultStrength.
	Strength int `yaml:"strength"`

	// Color is a hex colour; its own alpha is multiplied by Strength.
	Color string `yaml:"color"`

	// Passes is the number of box blur passes; 0 means the library default.
	Passes int `yaml:"passes"`

	// BorderRadius rounds the window corners the shadow follows.
	BorderRadius float64 `yaml:"border_radius"`
}

// Default returns the built-in presets.
func Default() *Config {
	return &Config{
		DevicePixelRatio: 1,
		Shadows: map[string]Preset{
			"active":   {Size: SizeLarge, Strength: 160, Color: DefaultColor},
			"inactive": {Size: SizeMedium, Strength: 96, Color: DefaultColor},
		},
	}
}

// Parse decodes a preset file. Unset fields take their defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Load reads the preset file at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		boxshadow.Logger().Debug("config: no preset file, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the preset file from DefaultPath, or the defaults if
// the path cannot be determined.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		boxshadow.Logger().Warn("config: cannot locate preset file", "err", err)
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns $BOXSHADOW_CONFIG, else
// $XDG_CONFIG_HOME/boxshadow/shadows.yaml, else ~/.config/boxshadow/shadows.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "boxshadow", "shadows.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(home, ".config", "boxshadow", "shadows.yaml"), nil
}

// applyDefaults fills in any missing values.
func (c *Config) applyDefaults() {
	if c.DevicePixelRatio <= 0 {
		c.DevicePixelRatio = 1
	}
	defaults := Default().Shadows
	if c.Shadows == nil {
		c.Shadows = defaults
		return
	}
	for name, p := range defaults {
		if _, ok := c.Shadows[name]; !ok {
			c.Shadows[name] = p
		}
	}
	for name, p := range c.Shadows {
		if p.Size == "" {
			p.Size = SizeMedium
		}
		if p.Strength == 0 {
			p.Strength = DefaultStrength
		}
		if p.Color == "" {
			p.Color = DefaultColor
		}
		c.Shadows[name] = p
	}
}

// Preset returns the named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Shadows[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Spec turns the preset into a shadow for a box of the given logical size.
func (p Preset) Spec(box image.Point, dpr float64) (boxshadow.ShadowSpec, error) {
	c, err := boxshadow.ParseHex(p.Color)
	if err != nil {
		return boxshadow.ShadowSpec{}, fmt.Errorf("config: preset colour: %w", err)
	}
	strength := min(max(p.Strength, 0), 255)
	c.A *= float64(strength) / 255

	params := p.Size.Params()
	return boxshadow.ShadowSpec{
		BoxSize:          box,
		Offset:           params.Offset,
		Radius:           params.Radius,
		Color:            c,
		DevicePixelRatio: dpr,
		BorderRadius:     p.BorderRadius,
		Passes:           p.Passes,
	}, nil
}
