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

import (
	"slices"

	"seehuhn.de/go/geom/matrix"
)

// TransformCoordinates maps the flat (x, y) pairs in src through the affine
// transform m and stores the result in dst, which is grown if needed and
// returned.  The result always has the same length as src.
//
// dst may be the result of a previous call; its contents are overwritten.
func TransformCoordinates(src []float64, m matrix.Matrix, dst []float64) []float64 {
	n := len(src)
	dst = slices.Grow(dst[:0], n)[:n]
	for i := 0; i+1 < n; i += 2 {
		x, y := src[i], src[i+1]
		dst[i] = m[0]*x + m[2]*y + m[4]
		dst[i+1] = m[1]*x + m[3]*y + m[5]
	}
	return dst
}
