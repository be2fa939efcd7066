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

// Package geometry provides simple slice-based geometry types which can be
// recorded into a replay.Batch.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// LineString is a polyline.
type LineString []vec.Vec2

// MultiLineString is a list of polylines.
type MultiLineString []LineString

// Ring is a closed polygon boundary, stored without the closing point.
type Ring []vec.Vec2

// Polygon is an outer ring followed by zero or more holes.
type Polygon []Ring

// MultiPolygon is a list of polygons.
type MultiPolygon []Polygon

// Points returns the vertices of the line.
func (l LineString) Points() []vec.Vec2 {
	return l
}

// Lines returns the component lines.
func (m MultiLineString) Lines() [][]vec.Vec2 {
	res := make([][]vec.Vec2, len(m))
	for i, l := range m {
		res[i] = l
	}
	return res
}

// Rings returns the rings of the polygon.
func (p Polygon) Rings() [][]vec.Vec2 {
	res := make([][]vec.Vec2, len(p))
	for i, r := range p {
		res[i] = r
	}
	return res
}

// Polygons returns the rings of every component polygon.
func (m MultiPolygon) Polygons() [][][]vec.Vec2 {
	res := make([][][]vec.Vec2, len(m))
	for i, p := range m {
		res[i] = p.Rings()
	}
	return res
}

// Bounds returns the bounding box of the line.
func (l LineString) Bounds() rect.Rect {
	return bounds(emptyBounds(), l)
}

// Bounds returns the bounding box of all lines.
func (m MultiLineString) Bounds() rect.Rect {
	b := emptyBounds()
	for _, l := range m {
		b = bounds(b, l)
	}
	return b
}

// Bounds returns the bounding box of the polygon.  Only the outer ring
// contributes, since holes lie inside it.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return emptyBounds()
	}
	return bounds(emptyBounds(), p[0])
}

// Bounds returns the bounding box of all polygons.
func (m MultiPolygon) Bounds() rect.Rect {
	b := emptyBounds()
	for _, p := range m {
		if len(p) > 0 {
			b = bounds(b, p[0])
		}
	}
	return b
}

// Union returns the smallest rectangle containing a and b.  Empty
// rectangles, as returned for geometry without points, are ignored.
func Union(a, b rect.Rect) rect.Rect {
	if IsEmpty(a) {
		return b
	}
	if IsEmpty(b) {
		return a
	}
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// IsEmpty reports whether r is the bounding box of an empty point set.
func IsEmpty(r rect.Rect) bool {
	return r.LLx > r.URx || r.LLy > r.URy
}

// emptyBounds returns an inverted rectangle which acts as the identity for
// bounds.
func emptyBounds() rect.Rect {
	return rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
}

func bounds(b rect.Rect, pts []vec.Vec2) rect.Rect {
	for _, p := range pts {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}
