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
	"image/color"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/geometry"
)

var (
	black = color.RGBA{A: 255}
	grey  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	water = color.RGBA{R: 140, G: 190, B: 230, A: 255}
	park  = color.RGBA{R: 150, G: 210, B: 140, A: 255}
	road  = color.RGBA{R: 230, G: 120, B: 40, A: 255}

	thin = &replay.StrokeStyle{Color: black, Width: 1, Join: graphics.LineJoinMiter}
)

var polygonScenes = []Scene{
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillRing,
			Fill:   &replay.FillStyle{Color: grey},
			Shapes: []any{rectangle(10, 10, 54, 54)},
		}},
	},
	{
		Name:   "triangle_outlined",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillStrokeRing,
			Fill:   &replay.FillStyle{Color: park},
			Stroke: thin,
			Shapes: []any{triangle(10, 50, 32, 10, 54, 50)},
		}},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillRing,
			Fill:   &replay.FillStyle{Color: water},
			Shapes: []any{fivePointStar(32, 32, 25)},
		}},
	},
	{
		Name:   "hole",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type:   replay.FillStrokeRing,
			Fill:   &replay.FillStyle{Color: water},
			Stroke: thin,
			Shapes: []any{geometry.Polygon{
				regular(32, 32, 26, 8),
				reversed(regular(32, 32, 12, 8)),
			}},
		}},
	},
	{
		Name:   "ring_outline",
		Width:  64,
		Height: 64,
		Layers: []Layer{{
			Type: replay.StrokeRing,
			Stroke: &replay.StrokeStyle{
				Color: road,
				Width: 4,
				Join:  graphics.LineJoinRound,
			},
			Shapes: []any{geometry.Polygon{regular(32, 32, 22, 6)}},
		}},
	},
	{
		// the fill is removed for the second square only
		Name:   "fill_removed",
		Width:  64,
		Height: 64,
		Layers: []Layer{
			{
				Type:   replay.FillStrokeRing,
				Fill:   &replay.FillStyle{Color: grey},
				Stroke: thin,
				Shapes: []any{rectangle(6, 6, 30, 30)},
			},
			{
				Type:   replay.FillStrokeRing,
				Stroke: thin,
				Shapes: []any{rectangle(34, 34, 58, 58)},
			},
		},
	},
}
