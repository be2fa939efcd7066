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

package scene

import (
	"image/color"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/geometry"
)

func loadTown(t *testing.T) (*Scene, *Config) {
	t.Helper()
	data, err := os.ReadFile("testdata/town.geojson")
	require.NoError(t, err)
	s, err := LoadGeoJSON(data)
	require.NoError(t, err)

	style, err := os.ReadFile("testdata/town.toml")
	require.NoError(t, err)
	cfg, err := LoadConfig(style)
	require.NoError(t, err)
	return s, cfg
}

func TestLoadGeoJSON(t *testing.T) {
	s, _ := loadTown(t)

	require.Len(t, s.Features, 4)
	assert.Equal(t, 2, s.Skipped, "point and degenerate line")

	water := s.Features[0]
	assert.Equal(t, KindPolygon, water.Kind)
	poly, ok := water.Geometry.(geometry.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 2)
	assert.Len(t, poly[0], 4, "closing position is dropped")
	assert.Equal(t, "water", water.Properties["natural"])

	assert.IsType(t, geometry.MultiPolygon{}, s.Features[1].Geometry)
	assert.IsType(t, geometry.LineString{}, s.Features[2].Geometry)
	assert.IsType(t, geometry.MultiLineString{}, s.Features[3].Geometry)
	assert.Equal(t, KindLine, s.Features[3].Kind)

	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}, s.Bounds())
}

func TestLoadGeoJSONErrors(t *testing.T) {
	_, err := LoadGeoJSON([]byte(`{"type": "FeatureCollection", "features": [`))
	assert.Error(t, err)

	_, err = LoadGeoJSON([]byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}}
	]}`))
	assert.ErrorIs(t, err, ErrNoFeatures)
}

func TestLoadConfig(t *testing.T) {
	_, cfg := loadTown(t)

	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
	assert.Equal(t, 10.0, cfg.Padding)
	require.Len(t, cfg.Layers, 3)
	assert.Equal(t, "water", cfg.Layers[0].Match["natural"])
	assert.Nil(t, cfg.Layers[0].Batch)
	require.NotNil(t, cfg.Layers[1].Batch)
	assert.Equal(t, replay.FillRing, *cfg.Layers[1].Batch)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 240, A: 255}, cfg.BackgroundColor())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`height = 300`))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, "white", cfg.Background)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"syntax", `width = `},
		{"unknown key", `colour = "red"`},
		{"unknown layer key", "[[layer]]\nfil = \"red\""},
		{"size", `width = 0`},
		{"padding", "width = 100\nheight = 100\npadding = 60"},
		{"background", `background = "plaid"`},
		{"batch", "[[layer]]\nbatch = \"hexagon\""},
		{"colour", "[[layer]]\nfill = \"#12\""},
		{"cap", "[[layer]]\nstroke = \"red\"\ncap = \"pointy\""},
		{"join", "[[layer]]\nstroke = \"red\"\njoin = \"pointy\""},
		{"width", "[[layer]]\nstroke = \"red\"\nwidth = -1"},
		{"geometry", "[[layer]]\ngeometry = \"point\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tc.toml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigBatchType(t *testing.T) {
	_, err := LoadConfig([]byte("[[layer]]\nbatch = \"hexagon\""))
	assert.ErrorContains(t, err, replay.ErrUnknownBatchType.Error())
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
	}{
		{"", nil},
		{"none", nil},
		{"red", color.RGBA{R: 255, A: 255}},
		{" SteelBlue ", color.RGBA{R: 70, G: 130, B: 180, A: 255}},
		{"#102030", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseColor("blurple")
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestLayerCompile(t *testing.T) {
	l := Layer{Stroke: "black", Cap: "square", Join: "bevel"}
	st, err := l.compile()
	require.NoError(t, err)
	require.NotNil(t, st.fill)
	assert.False(t, st.fill.Paints(), "no fill colour")
	require.NotNil(t, st.stroke)
	assert.Equal(t, 1.0, st.stroke.Width, "default width")
	assert.Equal(t, graphics.LineCapSquare, st.stroke.Cap)
	assert.Equal(t, graphics.LineJoinBevel, st.stroke.Join)
	assert.Equal(t, replay.StrokeRing, st.batchFor(KindPolygon))
	assert.Equal(t, replay.StrokeLine, st.batchFor(KindLine))
}

func TestLayerMatches(t *testing.T) {
	f := &Feature{
		Kind:       KindLine,
		Properties: map[string]any{"highway": "primary", "lanes": 2.0},
	}
	assert.True(t, (&Layer{}).matches(f))
	assert.True(t, (&Layer{Match: map[string]string{"highway": "primary"}}).matches(f))
	assert.True(t, (&Layer{Match: map[string]string{"lanes": "2"}}).matches(f))
	assert.False(t, (&Layer{Match: map[string]string{"highway": "footway"}}).matches(f))
	assert.False(t, (&Layer{Match: map[string]string{"name": ""}}).matches(f))
	assert.False(t, (&Layer{Geometry: "polygon"}).matches(f))
}

func TestBuild(t *testing.T) {
	s, cfg := loadTown(t)
	g, err := Build(s, cfg)
	require.NoError(t, err)

	assert.Equal(t, []int{-1, 0, 2}, g.ZIndices())

	types := func(z int) []replay.BatchType {
		var res []replay.BatchType
		for bt, b := range g.Batches(z) {
			assert.True(t, b.Finished())
			res = append(res, bt)
		}
		return res
	}
	assert.Equal(t, []replay.BatchType{replay.FillStrokeRing}, types(-1), "water")
	assert.Equal(t, []replay.BatchType{replay.FillRing, replay.StrokeLine}, types(0), "park and footway")
	assert.Equal(t, []replay.BatchType{replay.StrokeLine}, types(2), "primary road")

	// the road batch sets its style once, before the geometry
	var road *replay.Batch
	for _, b := range g.Batches(2) {
		road = b
	}
	instr := road.Instructions()
	require.Greater(t, len(instr), 2)
	require.Equal(t, replay.InstrSetFillStyle, instr[0].Type())
	assert.False(t, instr[0].(replay.SetFillStyle).Style.Paints(), "road fill")
	require.Equal(t, replay.InstrSetStrokeStyle, instr[1].Type())
	stroke := instr[1].(replay.SetStrokeStyle).Style
	assert.Equal(t, 4.0, stroke.Width)
	assert.Equal(t, graphics.LineCapRound, stroke.Cap)
	assert.Equal(t, replay.InstrStroke, instr[len(instr)-1].Type())

	// the park has no stroke colour and must not inherit one
	var park *replay.Batch
	for bt, b := range g.Batches(0) {
		if bt == replay.FillRing {
			park = b
		}
	}
	require.NotNil(t, park)
	instr = park.Instructions()
	require.Greater(t, len(instr), 2)
	require.Equal(t, replay.InstrSetFillStyle, instr[0].Type())
	assert.True(t, instr[0].(replay.SetFillStyle).Style.Paints(), "park fill")
	require.Equal(t, replay.InstrSetStrokeStyle, instr[1].Type())
	assert.False(t, instr[1].(replay.SetStrokeStyle).Style.Paints(), "park stroke")
}

func TestBuildDefaults(t *testing.T) {
	s, _ := loadTown(t)
	g, err := Build(s, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []int{replay.DefaultZIndex}, g.ZIndices())
	var types []replay.BatchType
	for bt := range g.Batches(replay.DefaultZIndex) {
		types = append(types, bt)
	}
	assert.Equal(t, []replay.BatchType{replay.FillStrokeRing, replay.StrokeLine}, types)
}

func TestFitTransform(t *testing.T) {
	bounds := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}
	m := FitTransform(bounds, 220, 120, 10)

	apply := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
	}
	// both directions allow a scale of 2
	assert.InDelta(t, 10, apply(vec.Vec2{X: 0, Y: 0}).X, 1e-9)
	assert.InDelta(t, 210, apply(vec.Vec2{X: 100, Y: 0}).X, 1e-9)
	// y is flipped and the content centred vertically
	assert.InDelta(t, 110, apply(vec.Vec2{X: 0, Y: 0}).Y, 1e-9)
	assert.InDelta(t, 10, apply(vec.Vec2{X: 0, Y: 50}).Y, 1e-9)

	// a single point is centred
	m = FitTransform(rect.Rect{LLx: 5, LLy: 5, URx: 5, URy: 5}, 100, 100, 0)
	assert.Equal(t, matrix.Matrix{1, 0, 0, -1, 45, 55}, m)
}

func TestZoom(t *testing.T) {
	m := Zoom(matrix.Identity, 2, 50, 50)
	assert.Equal(t, matrix.Matrix{2, 0, 0, 2, -50, -50}, m)

	// the zoom centre is a fixed point
	m = Zoom(matrix.Matrix{3, 0, 0, -3, 7, 90}, 1.5, 20, 30)
	p := vec.Vec2{X: (20 - 7) / 3.0, Y: (30 - 90) / -3.0}
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	assert.InDelta(t, 20, x, 1e-9)
	assert.InDelta(t, 30, y, 1e-9)
}
