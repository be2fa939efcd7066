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

// Package pdfcanvas implements a replay.Surface which writes a single page
// PDF file.
//
// The page is a greyscale proof: colours are mapped to their CIE L*
// lightness and painted with DeviceGray.  Fully transparent colours
// suppress painting, all other colours are painted opaque.
package pdfcanvas

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// Canvas draws onto a PDF page.  Coordinates use the image convention:
// the origin is the top-left corner of the page and y grows downwards.
//
// PDF only allows graphics state changes outside of path construction, so
// the canvas keeps the current path itself and writes it to the page when
// Fill or Stroke is called.
type Canvas struct {
	page *document.Page
	path path.Data

	fill, stroke paint
}

type paint struct {
	gray    float64
	visible bool
}

// Create starts a new PDF file with a single page of the given size, in
// PDF points.  The page is filled with white.  The file is complete once
// Close has been called.
func Create(fileName string, width, height float64) (*Canvas, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, width, height)
	page.Fill()
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	c := &Canvas{
		page:   page,
		fill:   paint{visible: true},
		stroke: paint{visible: true},
	}
	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	return c, nil
}

// Close finishes the page and writes the file.
func (c *Canvas) Close() error {
	return c.page.Close()
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

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo adds a straight segment.  Without a current point, LineTo acts
// like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path.Cmds) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.path.LineTo(vec.Vec2{X: x, Y: y})
}

// Fill paints the interior of the current path, using the nonzero winding
// rule.
func (c *Canvas) Fill() {
	if !c.fill.visible || len(c.path.Cmds) == 0 {
		return
	}
	c.writePath()
	c.page.Fill()
}

// Stroke paints the outline of the current path.
func (c *Canvas) Stroke() {
	if !c.stroke.visible || len(c.path.Cmds) == 0 {
		return
	}
	c.writePath()
	c.page.Stroke()
}

// SetFillColor sets the colour used by Fill.
func (c *Canvas) SetFillColor(col color.Color) {
	c.fill = toPaint(col)
	if c.fill.visible {
		c.page.SetFillColor(pdfcolor.DeviceGray(c.fill.gray))
	}
}

// SetStrokeColor sets the colour used by Stroke.
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.stroke = toPaint(col)
	if c.stroke.visible {
		c.page.SetStrokeColor(pdfcolor.DeviceGray(c.stroke.gray))
	}
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float64) {
	c.page.SetLineWidth(w)
}

// SetLineCap sets the cap style for open subpaths.
func (c *Canvas) SetLineCap(lc graphics.LineCapStyle) {
	c.page.SetLineCap(lc)
}

// SetLineJoin sets the join style.
func (c *Canvas) SetLineJoin(join graphics.LineJoinStyle) {
	c.page.SetLineJoin(join)
}

func (c *Canvas) writePath() {
	for cmd, pts := range c.path.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
}

// toPaint maps col to a grey level.  Nil and fully transparent colours are
// invisible.
func toPaint(col color.Color) paint {
	if col == nil {
		return paint{}
	}
	cc, ok := colorful.MakeColor(col)
	if !ok {
		return paint{}
	}
	l, _, _ := cc.Lab()
	return paint{gray: min(max(l, 0), 1), visible: true}
}
