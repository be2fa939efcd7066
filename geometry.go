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

import "seehuhn.de/go/geom/vec"

// LineString is a single polyline.
type LineString interface {
	Points() []vec.Vec2
}

// MultiLineString is a list of polylines.
type MultiLineString interface {
	Lines() [][]vec.Vec2
}

// Polygon is a list of rings.  The first ring is the outer boundary, the
// others are holes.  Rings are stored without a closing point; at least one
// point per ring is required.
type Polygon interface {
	Rings() [][]vec.Vec2
}

// MultiPolygon is a list of polygons, each given as a list of rings.
type MultiPolygon interface {
	Polygons() [][][]vec.Vec2
}
