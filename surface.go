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

// Surface is the drawing target a batch is replayed onto.  Coordinates
// passed to the path methods are device coordinates.
//
// The path methods follow the HTML canvas model: BeginPath discards the
// current path, while Fill and Stroke paint it without discarding it.
type Surface interface {
	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill()
	Stroke()

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
}

// LineStyler is implemented by surfaces which support line caps and joins.
// If a surface implements it, stroke styles set these too.
type LineStyler interface {
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)
}
