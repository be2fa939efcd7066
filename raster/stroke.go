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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a stroked line segment with precomputed direction.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

// Stroke computes the coverage of the outline of p, using Width, Cap,
// Join and MiterLimit.  The emit callback is used as for Fill.
//
// The outline is assembled from one polygon per segment, join and cap.
// All polygons have the same orientation and are filled together with the
// nonzero rule, so that overlaps are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.reset()
	if r.Width <= 0 {
		return
	}

	var cur, start vec.Vec2
	open := false
	drawn := false // a drawing command was seen in the current subpath
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.strokeSubpath(start, open && drawn, false)
			cur = p.Coords[k]
			start = cur
			open, drawn = true, false
			k++
		case path.CmdLineTo:
			r.addSegment(cur, p.Coords[k])
			cur = p.Coords[k]
			drawn = true
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addSegment)
			cur = p.Coords[k+1]
			drawn = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
			cur = p.Coords[k+2]
			drawn = true
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addSegment(cur, start)
			}
			r.strokeSubpath(start, open, true)
			cur = start
			open, drawn = false, false
		}
	}
	r.strokeSubpath(start, open && drawn, false)

	r.scan(NonZero, emit)
}

// addSegment appends the segment from a to b to the current subpath.
// Zero-length segments are dropped.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeSubpath adds the outline of the collected segments to the edge
// list and starts a new subpath.  If the subpath has no segments but
// visible is set, a round cap dot is drawn at start.
func (r *Rasterizer) strokeSubpath(start vec.Vec2, visible, closed bool) {
	segs := r.segs
	r.segs = r.segs[:0]

	d := r.Width / 2
	if len(segs) == 0 {
		if visible && r.Cap == graphics.LineCapRound {
			r.addCircle(start, d)
		}
		return
	}

	for i := range segs {
		s := &segs[i]
		r.addPolygon(
			s.A.Add(s.N.Mul(d)),
			s.B.Add(s.N.Mul(d)),
			s.B.Sub(s.N.Mul(d)),
			s.A.Sub(s.N.Mul(d)),
		)
		if i > 0 {
			r.addJoin(s.A, segs[i-1].T, s.T, d)
		}
	}

	first, last := &segs[0], &segs[len(segs)-1]
	if closed {
		r.addJoin(first.A, last.T, first.T, d)
	} else {
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addCap(last.B, last.T, d)
	}
}

// addJoin adds the join geometry at P, where the direction changes from
// T1 to T2.  Only the outer side of the corner needs extra geometry, since
// the segment polygons overlap on the inner side.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	// for a counter-clockwise turn the outer side is -N
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side)
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side)
	outer1 := P.Add(N1.Mul(d))
	outer2 := P.Add(N2.Mul(d))

	switch r.Join {
	case graphics.LineJoinRound:
		r.addCircle(P, d)
	case graphics.LineJoinMiter:
		// the miter length is d / cos(θ/2), where θ is the turning angle
		cosHalf := math.Sqrt((1 + T1.Dot(T2)) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bisector := N1.Add(N2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				tip := P.Add(bisector.Mul(d / (cosHalf * l)))
				r.addPolygon(P, outer1, tip, outer2)
				return
			}
		}
		r.addPolygon(P, outer1, outer2)
	default: // graphics.LineJoinBevel
		r.addPolygon(P, outer1, outer2)
	}
}

// addCap adds the cap at the end point P of an open subpath.  T is the
// unit tangent pointing away from the line.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
		ext := P.Add(T.Mul(d))
		r.addPolygon(P.Add(N), ext.Add(N), ext.Sub(N), P.Sub(N))
	}
}

// addCircle adds a polygon approximating the circle around center.
func (r *Rasterizer) addCircle(center vec.Vec2, radius float64) {
	n := 4
	if radius > r.Flatness {
		// a chord of angle α deviates from the arc by radius*(1-cos(α/2))
		step := 2 * math.Acos(1-r.Flatness/radius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, center.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(radius)))
	}
	r.addPoly()
}

// addPolygon adds the closed polygon with the given vertices.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	r.poly = append(r.poly[:0], pts...)
	r.addPoly()
}

// addPoly adds the edges of r.poly, oriented so that the polygon has
// positive signed area.
func (r *Rasterizer) addPoly() {
	pts := r.poly
	n := len(pts)
	if n < 3 {
		return
	}

	var area float64
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}

	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		if area < 0 {
			a, b = b, a
		}
		r.addEdge(a, b)
	}
}
