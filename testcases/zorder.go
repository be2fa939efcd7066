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
	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/geometry"
)

var zorderScenes = []Scene{
	{
		// the layers are recorded top first
		Name:   "reverse_recording",
		Width:  64,
		Height: 64,
		Layers: []Layer{
			{
				Z:      2,
				Type:   replay.StrokeLine,
				Stroke: &replay.StrokeStyle{Color: road, Width: 4},
				Shapes: []any{geometry.LineString{pt(4, 32), pt(60, 32)}},
			},
			{
				Z:      1,
				Type:   replay.FillRing,
				Fill:   &replay.FillStyle{Color: park},
				Shapes: []any{rectangle(16, 16, 48, 48)},
			},
			{
				Z:      -1,
				Type:   replay.FillRing,
				Fill:   &replay.FillStyle{Color: water},
				Shapes: []any{rectangle(0, 0, 64, 64)},
			},
		},
	},
	{
		// within a z-index, fills are drawn before strokes
		Name:   "batch_type_order",
		Width:  64,
		Height: 64,
		Layers: []Layer{
			{
				Type:   replay.StrokeLine,
				Stroke: &replay.StrokeStyle{Color: road, Width: 6},
				Shapes: []any{geometry.LineString{pt(4, 32), pt(60, 32)}},
			},
			{
				Type:   replay.FillRing,
				Fill:   &replay.FillStyle{Color: park},
				Shapes: []any{rectangle(16, 16, 48, 48)},
			},
		},
	},
}
