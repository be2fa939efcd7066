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

package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/replay"
)

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"kind": "lake"},
     "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [10, 0], [10, 8], [0, 8], [0, 0]]]}},
    {"type": "Feature", "properties": {"kind": "road"},
     "geometry": {"type": "LineString", "coordinates": [[0, 4], [10, 5]]}}
  ]
}`

const testStyle = `
width = 64
height = 48
padding = 4
background = "white"

[[layer]]
match = { kind = "lake" }
fill = "lightblue"

[[layer]]
match = { kind = "road" }
z = 1
stroke = "#c04000"
width = 3
`

func writeTestFiles(t *testing.T) (dir, input, style string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "map.geojson")
	style = filepath.Join(dir, "style.toml")
	require.NoError(t, os.WriteFile(input, []byte(testGeoJSON), 0o644))
	require.NoError(t, os.WriteFile(style, []byte(testStyle), 0o644))
	return dir, input, style
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { replay.SetLogger(nil) })

	var logBuf bytes.Buffer
	root := newRootCmd(&logBuf)
	root.SetArgs(args)
	root.SetOut(&logBuf)
	root.SetErr(&logBuf)
	err := root.ExecuteContext(context.Background())
	return logBuf.String(), err
}

func decodePNG(t *testing.T, fileName string) image.Image {
	t.Helper()
	f, err := os.Open(fileName)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestRenderPNG(t *testing.T) {
	dir, input, style := writeTestFiles(t)
	out := filepath.Join(dir, "out.png")

	logs, err := runCLI(t, "render", "--style", style, "--out", out, input)
	require.NoError(t, err)
	assert.Contains(t, logs, "Loaded 2 features")

	img := decodePNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())

	// the lake fills the centre of the image, the corner stays white
	r, g, b, _ := img.At(16, 12).RGBA()
	assert.Equal(t, [3]uint32{0xadad, 0xd8d8, 0xe6e6}, [3]uint32{r, g, b}, "lightblue")
	r, g, b, _ = img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestRenderDefaultOutput(t *testing.T) {
	dir, input, _ := writeTestFiles(t)

	_, err := runCLI(t, "render", input)
	require.NoError(t, err)

	img := decodePNG(t, filepath.Join(dir, "map.png"))
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
}

func TestRenderFramesAndPDF(t *testing.T) {
	dir, input, style := writeTestFiles(t)
	out := filepath.Join(dir, "frame.png")
	pdfOut := filepath.Join(dir, "map.pdf")

	_, err := runCLI(t, "render", "-v", "--style", style, "--out", out,
		"--frames", "3", "--zoom", "4", "--pdf", pdfOut, input)
	require.NoError(t, err)

	for _, name := range []string{"frame-0.png", "frame-1.png", "frame-2.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(pdfOut)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderVerboseLogsBatches(t *testing.T) {
	dir, input, style := writeTestFiles(t)

	logs, err := runCLI(t, "render", "--verbose", "--style", style,
		"--out", filepath.Join(dir, "out.png"), input)
	require.NoError(t, err)
	assert.Contains(t, logs, "batch finished")
	assert.Contains(t, logs, "batch group drawn")
}

func TestRenderErrors(t *testing.T) {
	dir, input, _ := writeTestFiles(t)
	badStyle := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badStyle, []byte(`width = "wide"`), 0o644))

	cases := []struct {
		name string
		args []string
	}{
		{"missing input", []string{"render", filepath.Join(dir, "nope.geojson")}},
		{"no argument", []string{"render"}},
		{"bad zoom", []string{"render", "--zoom", "0", input}},
		{"bad frames", []string{"render", "--frames", "0", input}},
		{"bad style", []string{"render", "--style", badStyle, input}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input string
		i, frames     int
		want          string
	}{
		{"", "data/town.geojson", 0, 1, "data/town.png"},
		{"map.png", "town.geojson", 0, 1, "map.png"},
		{"map.png", "town.geojson", 2, 5, "map-2.png"},
		{"", "town.json", 1, 3, "town-1.png"},
	}
	for _, tt := range tests {
		got := outputPath(tt.output, tt.input, tt.i, tt.frames)
		if got != filepath.FromSlash(tt.want) && got != tt.want {
			t.Errorf("outputPath(%q, %q, %d, %d) = %q, want %q",
				tt.output, tt.input, tt.i, tt.frames, got, tt.want)
		}
	}
}

func TestFrameZoom(t *testing.T) {
	o := &renderOpts{zoom: 8, frames: 4}
	for i, want := range []float64{1, 2, 4, 8} {
		if got := o.frameZoom(i); math.Abs(got-want) > 1e-9 {
			t.Errorf("frameZoom(%d) = %g, want %g", i, got, want)
		}
	}

	single := &renderOpts{zoom: 3, frames: 1}
	if got := single.frameZoom(0); got != 3 {
		t.Errorf("frameZoom(0) = %g, want 3", got)
	}
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3")
	t.Cleanup(func() { SetVersion("devel") })

	var buf bytes.Buffer
	root := newRootCmd(&buf)
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())
	assert.True(t, strings.Contains(buf.String(), "v1.2.3"), buf.String())
}
