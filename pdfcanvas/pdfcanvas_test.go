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

package pdfcanvas

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/geometry"
)

var (
	_ replay.Surface    = (*Canvas)(nil)
	_ replay.LineStyler = (*Canvas)(nil)
)

func TestWriteGroup(t *testing.T) {
	g := replay.NewBatchGroup()
	b := g.GetBatch(0, replay.FillStrokeRing)
	b.SetFillStrokeStyle(
		&replay.FillStyle{Color: color.RGBA{R: 200, G: 100, B: 50, A: 255}},
		&replay.StrokeStyle{Color: color.Black, Width: 2},
	)
	b.DrawPolygon(geometry.Polygon{{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 50, Y: 80}}})
	l := g.GetBatch(1, replay.StrokeLine)
	l.SetFillStrokeStyle(nil, &replay.StrokeStyle{Color: color.Gray{Y: 128}, Width: 1})
	l.DrawLineString(geometry.LineString{{X: 0, Y: 0}, {X: 100, Y: 100}})
	g.Finish()

	fileName := filepath.Join(t.TempDir(), "group.pdf")
	c, err := Create(fileName, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	g.Draw(c, matrix.Identity)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 16)])
	}
}

func TestToPaint(t *testing.T) {
	cases := []struct {
		name    string
		col     color.Color
		gray    float64
		visible bool
	}{
		{"nil", nil, 0, false},
		{"transparent", color.Transparent, 0, false},
		{"black", color.Black, 0, true},
		{"white", color.White, 1, true},
	}
	for _, tc := range cases {
		p := toPaint(tc.col)
		if p.visible != tc.visible {
			t.Errorf("%s: visible = %t, want %t", tc.name, p.visible, tc.visible)
		}
		if math.Abs(p.gray-tc.gray) > 1e-3 {
			t.Errorf("%s: gray = %g, want %g", tc.name, p.gray, tc.gray)
		}
	}

	// lightness increases from dark to light colours
	dark := toPaint(color.RGBA{R: 40, G: 20, B: 80, A: 255})
	light := toPaint(color.RGBA{R: 240, G: 230, B: 200, A: 255})
	if dark.gray >= light.gray {
		t.Errorf("gray levels %g and %g are not ordered", dark.gray, light.gray)
	}
}

func TestEmptyPathIsIgnored(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "empty.pdf")
	c, err := Create(fileName, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	c.BeginPath()
	c.Fill()
	c.Stroke()
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
