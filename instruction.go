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

import "fmt"

// InstructionType identifies the kind of a recorded [Instruction].
type InstructionType uint8

const (
	InstrBeginPath InstructionType = iota
	InstrClosePath
	InstrFill
	InstrMoveToLineTo
	InstrSetFillStyle
	InstrSetStrokeStyle
	InstrStroke
)

var instructionTypeNames = [...]string{
	InstrBeginPath:      "BeginPath",
	InstrClosePath:      "ClosePath",
	InstrFill:           "Fill",
	InstrMoveToLineTo:   "MoveToLineTo",
	InstrSetFillStyle:   "SetFillStyle",
	InstrSetStrokeStyle: "SetStrokeStyle",
	InstrStroke:         "Stroke",
}

func (t InstructionType) String() string {
	if int(t) < len(instructionTypeNames) {
		return instructionTypeNames[t]
	}
	return fmt.Sprintf("InstructionType(%d)", t)
}

// Instruction is one recorded drawing operation.  The set of instruction
// types is closed: only the types in this file implement the interface.
type Instruction interface {
	Type() InstructionType
	isInstruction()
}

// BeginPath starts a new path on the surface.
type BeginPath struct{}

// ClosePath closes the current subpath.
type ClosePath struct{}

// FillPath fills the current path with the current fill colour.
type FillPath struct{}

// StrokePath strokes the current path with the current stroke settings.
type StrokePath struct{}

// MoveToLineTo adds a polyline subpath.  The polyline starts at the replay
// cursor and ends just before End, an offset into the batch's coordinate
// buffer.
type MoveToLineTo struct {
	End int
}

// SetFillStyle changes the fill colour.  Style is nil for "no fill style".
type SetFillStyle struct {
	Style *FillStyle
}

// SetStrokeStyle changes the stroke settings.  Style is nil for "no stroke
// style".
type SetStrokeStyle struct {
	Style *StrokeStyle
}

func (BeginPath) Type() InstructionType      { return InstrBeginPath }
func (ClosePath) Type() InstructionType      { return InstrClosePath }
func (FillPath) Type() InstructionType       { return InstrFill }
func (StrokePath) Type() InstructionType     { return InstrStroke }
func (MoveToLineTo) Type() InstructionType   { return InstrMoveToLineTo }
func (SetFillStyle) Type() InstructionType   { return InstrSetFillStyle }
func (SetStrokeStyle) Type() InstructionType { return InstrSetStrokeStyle }

func (BeginPath) isInstruction()      {}
func (ClosePath) isInstruction()      {}
func (FillPath) isInstruction()       {}
func (StrokePath) isInstruction()     {}
func (MoveToLineTo) isInstruction()   {}
func (SetFillStyle) isInstruction()   {}
func (SetStrokeStyle) isInstruction() {}
