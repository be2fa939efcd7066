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
	"fmt"
	"image/color"

	"seehuhn.de/go/pdf/graphics"
)

// recorder is a Surface which logs every call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) BeginPath()          { r.add("beginPath") }
func (r *recorder) ClosePath()          { r.add("closePath") }
func (r *recorder) MoveTo(x, y float64) { r.add("moveTo(%g,%g)", x, y) }
func (r *recorder) LineTo(x, y float64) { r.add("lineTo(%g,%g)", x, y) }
func (r *recorder) Fill()               { r.add("fill") }
func (r *recorder) Stroke()             { r.add("stroke") }

func (r *recorder) SetFillColor(c color.Color) { r.add("fillColor=%s", colorString(c)) }
func (r *recorder) SetStrokeColor(c color.Color) {
	r.add("strokeColor=%s", colorString(c))
}
func (r *recorder) SetLineWidth(w float64) { r.add("lineWidth=%g", w) }

// lineRecorder additionally implements LineStyler.
type lineRecorder struct {
	recorder
}

func (r *lineRecorder) SetLineCap(c graphics.LineCapStyle)   { r.add("lineCap=%s", c) }
func (r *lineRecorder) SetLineJoin(j graphics.LineJoinStyle) { r.add("lineJoin=%s", j) }

func colorString(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}
