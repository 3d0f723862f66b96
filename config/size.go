package config

import (
	"errors"
	"fmt"
	"image"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSize is returned when a preset names an unsupported shadow size.
var ErrUnknownSize = errors.New("config: unknown shadow size")

// ShadowSize is a named shadow extent.
type ShadowSize string

// Shadow sizes, smallest first.
const (
	SizeNone      ShadowSize = "none"
	SizeSmall     ShadowSize = "small"
	SizeMedium    ShadowSize = "medium"
	SizeLarge     ShadowSize = "large"
	SizeVeryLarge ShadowSize = "verylarge"
)

// SizeParams is the geometry behind a ShadowSize.
type SizeParams struct {
	Radius int
	Offset image.Point
}

var sizeParams = map[ShadowSize]SizeParams{
	SizeNone:      {Radius: 0, Offset: image.Pt(0, 0)},
	SizeSmall:     {Radius: 12, Offset: image.Pt(0, 4)},
	SizeMedium:    {Radius: 24, Offset: image.Pt(0, 6)},
	SizeLarge:     {Radius: 36, Offset: image.Pt(0, 8)},
	SizeVeryLarge: {Radius: 48, Offset: image.Pt(0, 10)},
}

// Params returns radius and offset for s. Unknown sizes map to SizeMedium.
func (s ShadowSize) Params() SizeParams {
	if p, ok := sizeParams[s]; ok {
		return p
	}
	return sizeParams[SizeMedium]
}

// UnmarshalYAML implements yaml.Unmarshaler and rejects unknown sizes.
func (s *ShadowSize) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	size := ShadowSize(name)
	if _, ok := sizeParams[size]; !ok && name != "" {
		return fmt.Errorf("%w %q at line %d", ErrUnknownSize, name, value.Line)
	}
	*s = size
	return nil
}
