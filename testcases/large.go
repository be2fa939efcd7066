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

// largeScenes contain many features, as found in a map tile.
var largeScenes = []Scene{
	{
		Name:   "grid",
		Width:  512,
		Height: 512,
		Layers: []Layer{{
			Type:   replay.FillStrokeRing,
			Fill:   &replay.FillStyle{Color: park},
			Stroke: thin,
			Shapes: rectangleGrid(16, 16, 512, 512, 4),
		}},
	},
	{
		Name:   "clipped",
		Width:  512,
		Height: 512,
		Layers: []Layer{
			{
				Type:   replay.FillRing,
				Fill:   &replay.FillStyle{Color: water},
				Shapes: []any{rectangle(-100, 100, 612, 400)},
			},
			{
				Z:      1,
				Type:   replay.StrokeLine,
				Stroke: &replay.StrokeStyle{Color: road, Width: 6},
				Shapes: []any{geometry.LineString{pt(-50, -50), pt(600, 600)}},
			},
		},
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) []any {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var res []any
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			res = append(res, rectangle(x1, y1, x2, y2))
		}
	}
	return res
}
