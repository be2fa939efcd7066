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

// Package replay records vector geometry as flat drawing instructions and
// replays them onto a drawing surface.
//
// Geometry is recorded into a [Batch], which keeps one flat coordinate
// buffer and a list of instructions. Consecutive geometries drawn with the
// same style share a single path and a single fill/stroke call. Coordinates
// are stored in world space; the world-to-device transform is only applied
// when the batch is drawn, so a finished batch can be redrawn for every
// frame of a pan or zoom without recording the geometry again.
//
// A [BatchGroup] indexes batches by z-index and [BatchType] and draws them
// back to front:
//
//	g := replay.NewBatchGroup()
//	b := g.GetBatch(1, replay.StrokeLine)
//	b.SetFillStrokeStyle(replay.NoFill(), &replay.StrokeStyle{Color: colornames.Red, Width: 2})
//	b.DrawLineString(line)
//	g.Finish()
//	g.Draw(surface, m)
//
// Batches and groups are not safe for concurrent use.
package replay
