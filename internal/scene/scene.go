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

// Package scene loads map features from GeoJSON, styles them according to
// a TOML configuration and records them into a replay.BatchGroup.
package scene

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/replay/geometry"
)

// Kind classifies feature geometry for styling.
type Kind uint8

const (
	KindLine    Kind = iota // LineString and MultiLineString
	KindPolygon             // Polygon and MultiPolygon
)

func (k Kind) String() string {
	if k == KindLine {
		return "line"
	}
	return "polygon"
}

// Feature is a drawable map feature.
type Feature struct {
	Properties map[string]any

	// Geometry is one of geometry.LineString, geometry.MultiLineString,
	// geometry.Polygon or geometry.MultiPolygon.
	Geometry any

	Kind   Kind
	Bounds rect.Rect
}

// Scene is a list of features in world coordinates.
type Scene struct {
	Features []Feature

	// Skipped counts input features which could not be drawn, for example
	// points or features without geometry.
	Skipped int
}

// Bounds returns the bounding box of all features.
func (s *Scene) Bounds() rect.Rect {
	var b rect.Rect
	for i, f := range s.Features {
		if i == 0 {
			b = f.Bounds
			continue
		}
		b = geometry.Union(b, f.Bounds)
	}
	return b
}

// FitTransform returns the transformation which maps the world rectangle
// bounds into a w×h image, leaving padding pixels on every side.  The
// scale is uniform, the content is centred and the y axis is flipped so
// that north points up.
func FitTransform(bounds rect.Rect, w, h, padding float64) matrix.Matrix {
	bw := bounds.URx - bounds.LLx
	bh := bounds.URy - bounds.LLy
	availW := max(w-2*padding, 1)
	availH := max(h-2*padding, 1)

	var scale float64
	switch {
	case bw > 0 && bh > 0:
		scale = min(availW/bw, availH/bh)
	case bw > 0:
		scale = availW / bw
	case bh > 0:
		scale = availH / bh
	default:
		scale = 1
	}

	cx := (bounds.LLx + bounds.URx) / 2
	cy := (bounds.LLy + bounds.URy) / 2
	return matrix.Matrix{
		scale, 0,
		0, -scale,
		w/2 - scale*cx, h/2 + scale*cy,
	}
}

// Zoom returns m followed by a zoom about the device pixel (cx, cy).
func Zoom(m matrix.Matrix, factor, cx, cy float64) matrix.Matrix {
	return matrix.Matrix{
		m[0] * factor, m[1] * factor,
		m[2] * factor, m[3] * factor,
		(m[4]-cx)*factor + cx, (m[5]-cy)*factor + cy,
	}
}
