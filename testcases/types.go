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

// Package testcases defines named scenes which exercise batch recording,
// z ordering and the rendering surfaces.
package testcases

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/geometry"
)

// Scene defines a single rendering test.
type Scene struct {
	Name   string        // lowercase a-z and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Layers []Layer       // recorded in order
	CTM    matrix.Matrix // transformation matrix (zero-value means identity)
}

// Layer is a group of shapes recorded into one batch with one style.
type Layer struct {
	Z      int
	Type   replay.BatchType
	Fill   *replay.FillStyle   // nil for no fill
	Stroke *replay.StrokeStyle // nil for no stroke
	Shapes []any               // geometry.LineString, geometry.Polygon, ...
}

// Group records the scene into a new batch group and finishes it.
func (s *Scene) Group() *replay.BatchGroup {
	g := replay.NewBatchGroup()
	for _, l := range s.Layers {
		fill, stroke := l.Fill, l.Stroke
		if fill == nil {
			fill = replay.NoFill()
		}
		if stroke == nil {
			stroke = replay.NoStroke()
		}
		b := g.GetBatch(l.Z, l.Type)
		b.SetFillStrokeStyle(fill, stroke)
		for _, shape := range l.Shapes {
			switch shape := shape.(type) {
			case geometry.LineString:
				b.DrawLineString(shape)
			case geometry.MultiLineString:
				b.DrawMultiLineString(shape)
			case geometry.Polygon:
				b.DrawPolygon(shape)
			case geometry.MultiPolygon:
				b.DrawMultiPolygon(shape)
			default:
				panic(fmt.Sprintf("testcases: unexpected shape %T in %s", shape, s.Name))
			}
		}
	}
	g.Finish()
	return g
}

// Transform returns the scene's CTM, with the zero matrix mapped to the
// identity.
func (s *Scene) Transform() matrix.Matrix {
	if s.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return s.CTM
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rectangle builds a polygon with a single rectangular ring.
func rectangle(x1, y1, x2, y2 float64) geometry.Polygon {
	return geometry.Polygon{{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}}
}

// triangle builds a triangular polygon.
func triangle(x1, y1, x2, y2, x3, y3 float64) geometry.Polygon {
	return geometry.Polygon{{pt(x1, y1), pt(x2, y2), pt(x3, y3)}}
}

// regular returns the n vertices of a regular polygon, starting at the
// top and going clockwise on screen.
func regular(cx, cy, r float64, n int) geometry.Ring {
	ring := make(geometry.Ring, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		ring[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return ring
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) geometry.Polygon {
	corners := regular(cx, cy, r, 5)
	star := make(geometry.Ring, 0, 5)
	for _, i := range []int{0, 2, 4, 1, 3} {
		star = append(star, corners[i])
	}
	return geometry.Polygon{star}
}

// reversed returns a copy of ring with the opposite orientation.
func reversed(ring geometry.Ring) geometry.Ring {
	res := make(geometry.Ring, len(ring))
	for i, p := range ring {
		res[len(ring)-1-i] = p
	}
	return res
}
