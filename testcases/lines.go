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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/geometry"
)

var lineScenes = []Scene{
	{
		Name:   "hairline",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.StrokeLine,
			Stroke: thin,
			Shapes: []any{geometry.LineString{pt(5, 32), pt(59, 32)}},
		}},
	},
	{
		Name:   "butt_cap",
		Width:  64,
		Height: 64,
		Layers: []Layer{lineLayer(graphics.LineCapButt, graphics.LineJoinMiter)},
	},
	{
		Name:   "round_cap",
		Width:  64,
		Height: 64,
		Layers: []Layer{lineLayer(graphics.LineCapRound, graphics.LineJoinMiter)},
	},
	{
		Name:   "square_cap",
		Width:  64,
		Height: 64,
		Layers: []Layer{lineLayer(graphics.LineCapSquare, graphics.LineJoinMiter)},
	},
	{
		Name:   "round_join",
		Width:  64,
		Height: 64,
		Layers: []Layer{lineLayer(graphics.LineCapButt, graphics.LineJoinRound)},
	},
	{
		Name:   "bevel_join",
		Width:  64,
		Height: 64,
		Layers: []Layer{lineLayer(graphics.LineCapButt, graphics.LineJoinBevel)},
	},
	{
		Name:   "zigzag",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type: replay.StrokeLine,
			Stroke: &replay.StrokeStyle{
				Color: road,
				Width: 3,
				Cap:   graphics.LineCapRound,
				Join:  graphics.LineJoinRound,
			},
			Shapes: []any{geometry.LineString{
				pt(6, 50), pt(16, 14), pt(26, 50), pt(36, 14), pt(46, 50), pt(56, 14),
			}},
		}},
	},
}

// lineLayer returns a wide corner line with the given cap and join.
func lineLayer(lc graphics.LineCapStyle, join graphics.LineJoinStyle) Layer {
	return Layer{
		Type: replay.StrokeLine,
		Stroke: &replay.StrokeStyle{
			Color: road,
			Width: 8,
			Cap:   lc,
			Join:  join,
		},
		Shapes: []any{geometry.LineString{pt(12, 52), pt(32, 14), pt(52, 52)}},
	}
}
