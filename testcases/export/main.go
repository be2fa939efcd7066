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

// Command export renders every scene to PNG and PDF, and writes a JSON
// manifest listing the recorded instructions.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/pdfcanvas"
	"seehuhn.de/go/replay/raster"
	"seehuhn.de/go/replay/testcases"
)

const outDir = "testdata/out"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			g := sc.Group()

			if err := writePNG(&sc, g, filepath.Join(outDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePDF(&sc, g, filepath.Join(outDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.Scenes = append(out.Scenes, toJSON(name, &sc, g))
		}
	}

	f, err := os.Create(filepath.Join(outDir, "scenes.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writePNG(sc *testcases.Scene, g *replay.BatchGroup, fileName string) (err error) {
	c := raster.NewCanvas(image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height)))
	c.Clear(color.White)
	g.Draw(c, sc.Transform())

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, c.Image)
}

func writePDF(sc *testcases.Scene, g *replay.BatchGroup, fileName string) error {
	c, err := pdfcanvas.Create(fileName, float64(sc.Width), float64(sc.Height))
	if err != nil {
		return err
	}
	g.Draw(c, sc.Transform())
	return c.Close()
}

type jsonScene struct {
	Name    string      `json:"name"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Batches []jsonBatch `json:"batches"`
}

type jsonBatch struct {
	Z            int              `json:"z"`
	Type         replay.BatchType `json:"type"`
	Instructions []string         `json:"instructions"`
	Coordinates  int              `json:"coordinates"`
}

func toJSON(name string, sc *testcases.Scene, g *replay.BatchGroup) jsonScene {
	js := jsonScene{
		Name:   name,
		Width:  sc.Width,
		Height: sc.Height,
	}
	for _, z := range g.ZIndices() {
		for bt, b := range g.Batches(z) {
			jb := jsonBatch{
				Z:           z,
				Type:        bt,
				Coordinates: len(b.Coordinates()),
			}
			for _, instr := range b.Instructions() {
				jb.Instructions = append(jb.Instructions, instr.Type().String())
			}
			js.Batches = append(js.Batches, jb)
		}
	}
	return js
}
