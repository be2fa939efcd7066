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

package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/replay"
)

var ctmScenes = []Scene{
	{
		Name:   "scale_2x",
		Width:  128,
		Height: 128,
		Layers: []Layer{{
			Type:   replay.FillStrokeRing,
			Fill:   &replay.FillStyle{Color: grey},
			Stroke: thin,
			Shapes: []any{rectangle(0, 0, 20, 20)},
		}},
		CTM: matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillRing,
			Fill:   &replay.FillStyle{Color: grey},
			Shapes: []any{rectangle(0, 0, 80, 80)},
		}},
		CTM: matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		// the stroke width is in device pixels and does not scale
		Name:   "rotate_45deg",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillStrokeRing,
			Fill:   &replay.FillStyle{Color: park},
			Stroke: thin,
			Shapes: []any{rectangle(-10, -10, 10, 10)},
		}},
		CTM: matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "flip_y",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillRing,
			Fill:   &replay.FillStyle{Color: water},
			Shapes: []any{triangle(10, 10, 32, 54, 54, 10)},
		}},
		CTM: matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
}
