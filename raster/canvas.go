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
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas is a drawing surface which paints into an image.RGBA.  It
// implements replay.Surface and replay.LineStyler.
//
// As with an HTML canvas, BeginPath discards the current path, while Fill
// and Stroke leave it in place, so that a path can be filled and then
// stroked.  Colours are composited with the "source over" operator.
type Canvas struct {
	Image *image.RGBA

	// FillRule determines the interior of paths for Fill.
	FillRule FillRule

	r           *Rasterizer
	path        path.Data
	fillColor   color.Color
	strokeColor color.Color
}

// NewCanvas returns a canvas which draws into img.  Fill and stroke colour
// are initially black and the line width is one pixel.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{
		Image:       img,
		r:           NewRasterizer(clip),
		fillColor:   color.Black,
		strokeColor: color.Black,
	}
}

// Clear sets every pixel of the image to c.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo adds a straight segment to (x, y).  Without a current point,
// LineTo acts like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path.Cmds) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.path.LineTo(vec.Vec2{X: x, Y: y})
}

// Fill paints the interior of the current path with the fill colour.
func (c *Canvas) Fill() {
	if emit := c.painter(c.fillColor); emit != nil {
		c.r.Fill(&c.path, c.FillRule, emit)
	}
}

// Stroke paints the outline of the current path with the stroke colour.
func (c *Canvas) Stroke() {
	if emit := c.painter(c.strokeColor); emit != nil {
		c.r.Stroke(&c.path, emit)
	}
}

// SetFillColor sets the colour used by Fill.
func (c *Canvas) SetFillColor(col color.Color) {
	c.fillColor = col
}

// SetStrokeColor sets the colour used by Stroke.
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.strokeColor = col
}

// SetLineWidth sets the stroke width, in pixels.
func (c *Canvas) SetLineWidth(w float64) {
	c.r.Width = w
}

// SetLineCap sets the cap style for open subpaths.
func (c *Canvas) SetLineCap(lc graphics.LineCapStyle) {
	c.r.Cap = lc
}

// SetLineJoin sets the join style.
func (c *Canvas) SetLineJoin(join graphics.LineJoinStyle) {
	c.r.Join = join
}

// painter returns a coverage callback which composites col over the image.
// If col is nil or fully transparent, painter returns nil.
func (c *Canvas) painter(col color.Color) func(y, xMin int, coverage []float32) {
	if col == nil {
		return nil
	}
	sr, sg, sb, sa := col.RGBA()
	if sa == 0 {
		return nil
	}

	const m = 1<<16 - 1
	img := c.Image
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for _, cov := range coverage {
			if cov > 0 {
				ma := uint32(cov * m)
				a := (m - sa*ma/m) * 0x101
				p := img.Pix[off : off+4 : off+4]
				p[0] = uint8((uint32(p[0])*a + sr*ma) / m >> 8)
				p[1] = uint8((uint32(p[1])*a + sg*ma) / m >> 8)
				p[2] = uint8((uint32(p[2])*a + sb*ma) / m >> 8)
				p[3] = uint8((uint32(p[3])*a + sa*ma) / m >> 8)
			}
			off += 4
		}
	}
}
