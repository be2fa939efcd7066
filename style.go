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

package replay

import (
	"image/color"

	"seehuhn.de/go/pdf/graphics"
)

// FillStyle describes how the interior of rings is painted.
//
// A nil *FillStyle means "no fill style" and is a value of its own: it
// compares equal only to another nil.
type FillStyle struct {
	Color color.Color
}

// StrokeStyle describes how lines and ring outlines are painted.
//
// A nil *StrokeStyle means "no stroke style".
type StrokeStyle struct {
	Color color.Color
	Width float64
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
}

// NoFill returns a fill style which paints nothing.
//
// Unlike nil, which a new batch already holds and so never records, NoFill
// is recorded like any other style and overrides the fill colour a surface
// is left with from earlier drawing.
func NoFill() *FillStyle {
	return &FillStyle{Color: color.Transparent}
}

// NoStroke returns a stroke style which paints nothing.  See [NoFill].
func NoStroke() *StrokeStyle {
	return &StrokeStyle{Color: color.Transparent, Width: 1}
}

// Paints reports whether f paints anything.
func (f *FillStyle) Paints() bool {
	return f != nil && visible(f.Color)
}

// Paints reports whether s paints anything.
func (s *StrokeStyle) Paints() bool {
	return s != nil && s.Width > 0 && visible(s.Color)
}

// Equal reports whether f and other describe the same fill.  Either may be
// nil.
func (f *FillStyle) Equal(other *FillStyle) bool {
	if f == nil || other == nil {
		return f == other
	}
	return sameColor(f.Color, other.Color)
}

// Equal reports whether s and other describe the same stroke.  Either may
// be nil.
func (s *StrokeStyle) Equal(other *StrokeStyle) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Width == other.Width &&
		s.Cap == other.Cap &&
		s.Join == other.Join &&
		sameColor(s.Color, other.Color)
}

// sameColor compares colours by their premultiplied RGBA values, so that
// e.g. color.RGBA and color.NRGBA values for the same opaque colour match.
// A nil colour is treated as transparent.
func sameColor(a, b color.Color) bool {
	if a == nil {
		a = color.Transparent
	}
	if b == nil {
		b = color.Transparent
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// visible reports whether c is not fully transparent.
func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a != 0
}
