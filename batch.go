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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// phase is the life-cycle stage of a Batch.
type phase uint8

const (
	phaseRecording phase = iota
	phaseFinished
)

// recordState tracks the path and paint state while a batch is recording.
type recordState struct {
	beginPath     bool // next geometry must start a new path
	fillPending   bool // geometry was added since the last fill
	strokePending bool // geometry was added since the last stroke
	fillStyle     *FillStyle
	strokeStyle   *StrokeStyle
}

// Batch records geometry for one style class and replays it onto a
// [Surface].
//
// A batch starts in the recording phase, where styles and geometry can be
// added.  Finish moves it to the finished phase, after which only Draw may
// be called.  Calling a method in the wrong phase panics.
type Batch struct {
	instructions []Instruction
	coords       []float64 // world coordinates, (x, y) pairs
	pixels       []float64 // device coordinates, reused by Draw

	phase phase
	state recordState
}

// NewBatch returns an empty batch in the recording phase.
func NewBatch() *Batch {
	return &Batch{
		state: recordState{beginPath: true},
	}
}

// SetFillStrokeStyle sets the styles for subsequently added geometry.
//
// Geometry which was added under the previous style is painted before the
// style changes.  Setting a style equal to the current one records
// nothing.  A new batch starts with nil styles, so passing nil there leaves
// the surface's current colour in effect; use [NoFill] or [NoStroke] to
// paint nothing.
func (b *Batch) SetFillStrokeStyle(fill *FillStyle, stroke *StrokeStyle) {
	b.mustRecord()
	if !b.state.fillStyle.Equal(fill) {
		b.flush()
		b.instructions = append(b.instructions, SetFillStyle{Style: fill})
		b.state.fillStyle = fill
	}
	if !b.state.strokeStyle.Equal(stroke) {
		b.flush()
		b.instructions = append(b.instructions, SetStrokeStyle{Style: stroke})
		b.state.strokeStyle = stroke
	}
}

// DrawLineString adds a polyline to the current path.  The line must have
// at least one point.
func (b *Batch) DrawLineString(g LineString) {
	b.mustRecord()
	b.beginPath()
	end := b.appendPoints(g.Points(), false)
	b.instructions = append(b.instructions, MoveToLineTo{End: end})
	b.state.strokePending = true
}

// DrawMultiLineString adds every line of g to the current path.
func (b *Batch) DrawMultiLineString(g MultiLineString) {
	b.mustRecord()
	for _, line := range g.Lines() {
		b.beginPath()
		end := b.appendPoints(line, false)
		b.instructions = append(b.instructions, MoveToLineTo{End: end})
	}
	b.state.strokePending = true
}

// DrawPolygon adds the rings of g to the current path as closed subpaths.
// Every ring must have at least one point.
func (b *Batch) DrawPolygon(g Polygon) {
	b.mustRecord()
	b.appendRings(g.Rings())
	b.state.fillPending = true
	b.state.strokePending = true
}

// DrawMultiPolygon adds the rings of every polygon of g to the current
// path as closed subpaths.
func (b *Batch) DrawMultiPolygon(g MultiPolygon) {
	b.mustRecord()
	for _, rings := range g.Polygons() {
		b.appendRings(rings)
	}
	b.state.fillPending = true
	b.state.strokePending = true
}

// Finish paints any outstanding geometry and ends the recording phase.
func (b *Batch) Finish() {
	b.mustRecord()
	b.flush()
	b.phase = phaseFinished
	b.state = recordState{}

	Logger().Debug("batch finished",
		"instructions", len(b.instructions),
		"points", len(b.coords)/2)
}

// Finished reports whether Finish has been called.
func (b *Batch) Finished() bool {
	return b.phase == phaseFinished
}

// IsEmpty reports whether no geometry has been added to the batch.
func (b *Batch) IsEmpty() bool {
	return len(b.coords) == 0
}

// Instructions returns the recorded instructions.  The caller must not
// modify the returned slice.
func (b *Batch) Instructions() []Instruction {
	return b.instructions
}

// Coordinates returns the recorded world coordinates as flat (x, y) pairs.
// The caller must not modify the returned slice.
func (b *Batch) Coordinates() []float64 {
	return b.coords
}

// Draw replays the batch onto s, mapping every coordinate through m.
// The batch must be finished.
func (b *Batch) Draw(s Surface, m matrix.Matrix) {
	if b.phase != phaseFinished {
		panic("replay: Draw called on unfinished batch")
	}

	b.pixels = TransformCoordinates(b.coords, m, b.pixels)
	pix := b.pixels

	styler, hasLineStyle := s.(LineStyler)

	i := 0 // cursor into pix
	for _, instr := range b.instructions {
		switch instr := instr.(type) {
		case BeginPath:
			s.BeginPath()
		case ClosePath:
			s.ClosePath()
		case FillPath:
			s.Fill()
		case StrokePath:
			s.Stroke()
		case MoveToLineTo:
			s.MoveTo(pix[i], pix[i+1])
			for i += 2; i < instr.End; i += 2 {
				s.LineTo(pix[i], pix[i+1])
			}
		case SetFillStyle:
			if instr.Style == nil {
				s.SetFillColor(color.Transparent)
				continue
			}
			s.SetFillColor(instr.Style.Color)
		case SetStrokeStyle:
			if instr.Style == nil {
				s.SetStrokeColor(color.Transparent)
				continue
			}
			s.SetStrokeColor(instr.Style.Color)
			s.SetLineWidth(instr.Style.Width)
			if hasLineStyle {
				styler.SetLineCap(instr.Style.Cap)
				styler.SetLineJoin(instr.Style.Join)
			}
		default:
			panic(fmt.Sprintf("replay: unexpected instruction %T", instr))
		}
	}
	if i != len(pix) {
		panic(fmt.Sprintf("replay: replay consumed %d of %d coordinates", i, len(pix)))
	}
}

// mustRecord panics unless the batch is in the recording phase.
func (b *Batch) mustRecord() {
	if b.phase != phaseRecording {
		panic("replay: write to finished batch")
	}
}

// beginPath records a BeginPath instruction, unless the current path is
// still open for more geometry.
func (b *Batch) beginPath() {
	if b.state.beginPath {
		b.instructions = append(b.instructions, BeginPath{})
		b.state.beginPath = false
	}
}

// appendRings adds one closed subpath per ring.
func (b *Batch) appendRings(rings [][]vec.Vec2) {
	for _, ring := range rings {
		b.beginPath()
		end := b.appendPoints(ring, true)
		b.instructions = append(b.instructions, MoveToLineTo{End: end}, ClosePath{})
	}
}

// appendPoints appends pts to the coordinate buffer and returns the new
// end offset.  If closed is set, the first point is repeated at the end.
func (b *Batch) appendPoints(pts []vec.Vec2, closed bool) int {
	if len(pts) == 0 {
		panic("replay: geometry without points")
	}
	for _, p := range pts {
		b.coords = append(b.coords, p.X, p.Y)
	}
	if closed {
		b.coords = append(b.coords, pts[0].X, pts[0].Y)
	}
	return len(b.coords)
}

// flush records paint instructions for pending geometry: fill first, then
// stroke.  Afterwards the next geometry starts a new path.  If nothing is
// pending, flush does nothing.
func (b *Batch) flush() {
	if !b.state.fillPending && !b.state.strokePending {
		return
	}
	if b.state.fillPending {
		b.instructions = append(b.instructions, FillPath{})
		b.state.fillPending = false
	}
	if b.state.strokePending {
		b.instructions = append(b.instructions, StrokePath{})
		b.state.strokePending = false
	}
	b.state.beginPath = true
}
