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

var multiScenes = []Scene{
	{
		Name:   "multi_line",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.StrokeLine,
			Stroke: &replay.StrokeStyle{Color: road, Width: 2},
			Shapes: []any{geometry.MultiLineString{
				{pt(8, 16), pt(56, 16)},
				{pt(8, 32), pt(56, 32)},
				{pt(8, 48), pt(56, 48)},
			}},
		}},
	},
	{
		Name:   "multi_polygon",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillStrokeRing,
			Fill:   &replay.FillStyle{Color: park},
			Stroke: thin,
			Shapes: []any{geometry.MultiPolygon{
				rectangle(6, 6, 28, 28),
				rectangle(36, 6, 58, 28),
				triangle(6, 58, 32, 34, 58, 58),
			}},
		}},
	},
	{
		Name:   "style_change",
		Width:  64,
		Height: 64,
		Layers: []Layer{
			{
				Type:   replay.FillStrokeRing,
				Fill:   &replay.FillStyle{Color: park},
				Stroke: thin,
				Shapes: []any{rectangle(6, 6, 40, 40)},
			},
			{
				Type:   replay.FillStrokeRing,
				Fill:   &replay.FillStyle{Color: water},
				Stroke: thin,
				Shapes: []any{rectangle(24, 24, 58, 58)},
			},
		},
	},
}
