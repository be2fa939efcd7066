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

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/replay"
)

var (
	_ replay.LineString      = LineString(nil)
	_ replay.MultiLineString = MultiLineString(nil)
	_ replay.Polygon         = Polygon(nil)
	_ replay.MultiPolygon    = MultiPolygon(nil)
)

func TestBounds(t *testing.T) {
	l := LineString{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: 4}}
	assert.Equal(t, rect.Rect{LLx: -2, LLy: 3, URx: 4, URy: 5}, l.Bounds())

	p := Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		{{X: 20, Y: 20}, {X: 21, Y: 20}, {X: 21, Y: 21}}, // ignored
	}
	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}, p.Bounds())

	mp := MultiPolygon{p, {{{X: -5, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 1}}}}
	assert.Equal(t, rect.Rect{LLx: -5, LLy: 0, URx: 10, URy: 10}, mp.Bounds())

	assert.True(t, IsEmpty(LineString{}.Bounds()))
	assert.True(t, IsEmpty(MultiLineString{}.Bounds()))
}

func TestUnion(t *testing.T) {
	a := rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	b := rect.Rect{LLx: -1, LLy: 0.5, URx: 0.5, URy: 3}
	assert.Equal(t, rect.Rect{LLx: -1, LLy: 0, URx: 1, URy: 3}, Union(a, b))

	empty := LineString{}.Bounds()
	assert.Equal(t, a, Union(empty, a))
	assert.Equal(t, a, Union(a, empty))
}

func TestRecordIntoBatch(t *testing.T) {
	b := replay.NewBatch()
	b.DrawMultiLineString(MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 2, Y: 0}, {X: 3, Y: 0}},
	})
	b.DrawMultiPolygon(MultiPolygon{{Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}}}})
	b.Finish()

	assert.Len(t, b.Coordinates(), (2+2+4)*2)
}
