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
	"seehuhn.de/go/replay/geometry"
)

var precisionScenes = []Scene{
	offsetScene("subpixel_offset_00", 0.0),
	offsetScene("subpixel_offset_25", 0.25),
	offsetScene("subpixel_offset_50", 0.5),
	offsetScene("subpixel_offset_75", 0.75),
	{
		Name:   "thin_line_y_integer",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.StrokeLine,
			Stroke: thin,
			Shapes: []any{geometry.LineString{pt(5, 10), pt(59, 10)}},
		}},
	},
	{
		Name:   "thin_line_y_half",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.StrokeLine,
			Stroke: thin,
			Shapes: []any{geometry.LineString{pt(5, 10.5), pt(59, 10.5)}},
		}},
	},
	{
		// geographic coordinates far from the origin, moved into view
		Name:   "large_coord_centered",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillRing,
			Fill:   &replay.FillStyle{Color: grey},
			Shapes: []any{rectangle(1e6-10, 1e6-10, 1e6+10, 1e6+10)},
		}},
		CTM: matrix.Matrix{1, 0, 0, 1, 32 - 1e6, 32 - 1e6},
	},
}

// offsetScene returns a filled square shifted by a fraction of a pixel.
func offsetScene(name string, offset float64) Scene {
	return Scene{
		Name:   name,
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillRing,
			Fill:   &replay.FillStyle{Color: grey},
			Shapes: []any{rectangle(20+offset, 20+offset, 44+offset, 44+offset)},
		}},
	}
}
