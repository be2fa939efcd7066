// seehuhn.de/go/replay - deferred rendering of vector geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/replay"
)

// Config describes the output image and how features are styled.
//
// A style file looks like this:
//
//	width = 800
//	height = 600
//	background = "white"
//
//	[[layer]]
//	match = { natural = "water" }
//	geometry = "polygon"
//	z = -1
//	batch = "fillRing"
//	fill = "#8cbee6"
//
//	[[layer]]
//	match = { highway = "primary" }
//	z = 2
//	stroke = "darkorange"
//	width = 3
//	cap = "round"
//	join = "round"
//
// The first layer which matches a feature is used.  Features which match
// no layer are drawn with a default style for their geometry kind.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Padding    float64 `toml:"padding"`
	Background string  `toml:"background"`
	Layers     []Layer `toml:"layer"`
}

// Layer is a styling rule.
type Layer struct {
	// Match lists property values which a feature must have.  Property
	// values are compared in their fmt.Sprint form.  An empty Match
	// matches every feature.
	Match map[string]string `toml:"match"`

	// Geometry restricts the layer to "line" or "polygon" features.
	Geometry string `toml:"geometry"`

	Z      int     `toml:"z"`
	Batch  *replay.BatchType `toml:"batch"` // nil selects by geometry
	Fill   string            `toml:"fill"`  // colour, empty for no fill
	Stroke string            `toml:"stroke"`
	Width  float64           `toml:"width"` // stroke width in pixels, default 1
	Cap    string            `toml:"cap"`   // butt, round or square
	Join   string            `toml:"join"`  // miter, round or bevel
}

// DefaultConfig returns the configuration used when no style file is
// given.
func DefaultConfig() *Config {
	return &Config{
		Width:      800,
		Height:     600,
		Padding:    16,
		Background: "white",
	}
}

// LoadConfig decodes a TOML style file.  Settings missing from the file
// keep their values from DefaultConfig.  Unknown keys are an error.
func LoadConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("scene: decoding style: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("scene: unknown style keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("scene: invalid image size %dx%d", c.Width, c.Height)
	}
	if c.Padding < 0 || 2*c.Padding >= float64(min(c.Width, c.Height)) {
		return fmt.Errorf("scene: invalid padding %g", c.Padding)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	for i := range c.Layers {
		if _, err := c.Layers[i].compile(); err != nil {
			return fmt.Errorf("scene: layer %d: %w", i+1, err)
		}
	}
	return nil
}

// BackgroundColor returns the parsed background colour, or nil if the
// background is transparent.
func (c *Config) BackgroundColor() color.Color {
	col, _ := ParseColor(c.Background)
	return col
}

// ErrUnknownColor is returned by ParseColor for unrecognised colours.
var ErrUnknownColor = errors.New("unknown colour")

// ParseColor parses a CSS colour name or a hex colour of the form #rgb or
// #rrggbb.  The empty string and "none" give a nil colour.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "none":
		return nil, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

var (
	capNames = map[string]graphics.LineCapStyle{
		"":       graphics.LineCapButt,
		"butt":   graphics.LineCapButt,
		"round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	}
	joinNames = map[string]graphics.LineJoinStyle{
		"":      graphics.LineJoinMiter,
		"miter": graphics.LineJoinMiter,
		"round": graphics.LineJoinRound,
		"bevel": graphics.LineJoinBevel,
	}
)

// style is a compiled layer.
type style struct {
	z        int
	batch    replay.BatchType
	hasBatch bool
	fill     *replay.FillStyle   // never nil
	stroke   *replay.StrokeStyle // never nil
}

func (l *Layer) compile() (*style, error) {
	s := &style{z: l.Z}

	switch l.Geometry {
	case "", "line", "polygon":
	default:
		return nil, fmt.Errorf("invalid geometry %q", l.Geometry)
	}

	if l.Batch != nil {
		s.batch, s.hasBatch = *l.Batch, true
	}

	fill, err := ParseColor(l.Fill)
	if err != nil {
		return nil, err
	}
	s.fill = replay.NoFill()
	if fill != nil {
		s.fill = &replay.FillStyle{Color: fill}
	}

	stroke, err := ParseColor(l.Stroke)
	if err != nil {
		return nil, err
	}
	lc, ok := capNames[l.Cap]
	if !ok {
		return nil, fmt.Errorf("invalid line cap %q", l.Cap)
	}
	join, ok := joinNames[l.Join]
	if !ok {
		return nil, fmt.Errorf("invalid line join %q", l.Join)
	}
	if l.Width < 0 {
		return nil, fmt.Errorf("invalid line width %g", l.Width)
	}
	s.stroke = replay.NoStroke()
	if stroke != nil {
		width := l.Width
		if width == 0 {
			width = 1
		}
		s.stroke = &replay.StrokeStyle{Color: stroke, Width: width, Cap: lc, Join: join}
	}

	return s, nil
}

// matches reports whether the layer applies to f.
func (l *Layer) matches(f *Feature) bool {
	if l.Geometry != "" && l.Geometry != f.Kind.String() {
		return false
	}
	for key, want := range l.Match {
		v, ok := f.Properties[key]
		if !ok || fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}
