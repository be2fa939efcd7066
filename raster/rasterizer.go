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

// Package raster implements a replay.Surface which paints into an
// image.RGBA, together with the anti-aliasing rasterizer behind it.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule selects how the interior of a path is determined.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasterizer converts paths in device coordinates into per-pixel coverage
// values between 0 and 1.  Internal buffers grow as needed and are reused
// between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds the output.  Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve or arc
	// and the line segments used to approximate it.  Must be positive.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments of a subpath meet.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio between miter length and line
	// width before a miter join is converted into a bevel join.
	MiterLimit float64

	cover  []float32 // per-pixel signed coverage change; reused as output
	area   []float32 // per-pixel area inside the pixel column
	edges  []edge
	active []int // indices into edges

	hasBBox        bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64

	segs []segment  // segments of the subpath being stroked
	poly []vec.Vec2 // polygon being assembled by the stroker
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.  The
// stroke parameters are set to a one pixel wide line with butt caps and
// miter joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill computes the coverage of the interior of p.  Open subpaths are
// closed implicitly.  The emit callback receives the coverage of one row
// at a time, starting at column xMin; the slice is only valid during the
// call.
func (r *Rasterizer) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.reset()

	var cur, start vec.Vec2
	open := false
	k := 0 // index into p.Coords
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addEdge(cur, start)
			cur = start
			open = false
		}
	}
	if open {
		r.addEdge(cur, start)
	}

	r.scan(rule, emit)
}

// reset clears the edge list.
func (r *Rasterizer) reset() {
	r.edges = r.edges[:0]
	r.hasBBox = false
}

// addEdge appends the segment from p0 to p1 to the edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if !r.hasBBox {
		r.bbXMin, r.bbXMax = p0.X, p0.X
		r.bbYMin, r.bbYMax = p0.Y, p0.Y
		r.hasBBox = true
	}
	r.bbXMin = min(r.bbXMin, p0.X, p1.X)
	r.bbXMax = max(r.bbXMax, p0.X, p1.X)
	r.bbYMin = min(r.bbYMin, p0.Y, p1.Y)
	r.bbYMax = max(r.bbYMax, p0.Y, p1.Y)
}

// Coverage accumulation:
//
// Each edge crossing a pixel contributes to two per-pixel values:
//
//	cover: the signed vertical extent of the edge within the pixel column
//	area:  cover, weighted by the part of the pixel to the right of the edge
//
// Scanning a row from left to right, the coverage of pixel i is the sum of
// cover over all pixels left of i plus area[i].  Contributions of edges to
// the left of the clip rectangle are folded into the first pixel.

// scan runs the active edge list over all rows of the edge bounding box
// and emits the resulting coverage.
func (r *Rasterizer) scan(rule FillRule, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		rowTop := float64(y)
		rowBottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].top() < rowBottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= rowTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within row y to the cover and
// area buffers, which cover the columns xMin to xMax-1.
func (r *Rasterizer) accumulate(e *edge, y int, xMin, xMax int) {
	top := max(float64(y), e.top())
	bottom := min(float64(y+1), e.bottom())
	if bottom <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	colLeft := int(math.Floor(min(xTop, xBottom)))
	colRight := int(math.Floor(max(xTop, xBottom)))

	if colLeft == colRight {
		r.deposit(colLeft, sign*float32(bottom-top), (xTop+xBottom)/2, xMin, xMax)
		return
	}

	// the edge crosses several pixel columns: split it at column boundaries
	dydx := 1 / e.dxdy
	for col := colLeft; col <= colRight && col < xMax; col++ {
		yLeft := e.y0 + dydx*(float64(col)-e.x0)
		yRight := e.y0 + dydx*(float64(col+1)-e.x0)
		segTop := max(min(yLeft, yRight), top)
		segBottom := min(max(yLeft, yRight), bottom)
		if segBottom <= segTop {
			continue
		}
		xMid := e.x0 + e.dxdy*((segTop+segBottom)/2-e.y0)
		r.deposit(col, sign*float32(segBottom-segTop), xMid, xMin, xMax)
	}
}

// deposit records coverage c for pixel column col, where the edge crosses
// the column at mean horizontal position xMid.
func (r *Rasterizer) deposit(col int, c float32, xMid float64, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		i := col - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(col)))
	}
}

// integrate turns accumulated cover and area values into coverage, in
// place in cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entry, together with its offset.  If all entries are zero, nil
// is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and passes these to emit.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, …, p3 by line
// segments and passes these to emit.  The number of segments follows
// Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is the default approximation tolerance for curves
	// and round joins, in pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF and HTML canvas default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin θ| between two segments
	// which are joined without join geometry.
	collinearityThreshold = 1e-6
)
