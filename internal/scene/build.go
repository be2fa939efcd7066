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
	"fmt"
	"image/color"

	"seehuhn.de/go/replay"
)

// default styles for features which match no layer
var (
	defaultLine = &style{
		batch:    replay.StrokeLine,
		hasBatch: true,
		fill:     replay.NoFill(),
		stroke:   &replay.StrokeStyle{Color: color.Black, Width: 1},
	}
	defaultPolygon = &style{
		batch:    replay.FillStrokeRing,
		hasBatch: true,
		fill:     &replay.FillStyle{Color: color.RGBA{R: 200, G: 200, B: 200, A: 255}},
		stroke:   &replay.StrokeStyle{Color: color.Black, Width: 1},
	}
)

// Build styles the features of s according to cfg and records them into a
// new batch group.  The returned group is finished and ready to draw.
func Build(s *Scene, cfg *Config) (*replay.BatchGroup, error) {
	styles := make([]*style, len(cfg.Layers))
	for i := range cfg.Layers {
		st, err := cfg.Layers[i].compile()
		if err != nil {
			return nil, fmt.Errorf("scene: layer %d: %w", i+1, err)
		}
		styles[i] = st
	}

	g := replay.NewBatchGroup()
	for i := range s.Features {
		f := &s.Features[i]
		st := pickStyle(cfg.Layers, styles, f)

		b := g.GetBatch(st.z, st.batchFor(f.Kind))
		b.SetFillStrokeStyle(st.fill, st.stroke)
		switch geom := f.Geometry.(type) {
		case replay.MultiPolygon:
			b.DrawMultiPolygon(geom)
		case replay.Polygon:
			b.DrawPolygon(geom)
		case replay.MultiLineString:
			b.DrawMultiLineString(geom)
		case replay.LineString:
			b.DrawLineString(geom)
		default:
			return nil, fmt.Errorf("scene: feature %d has unsupported geometry %T", i, f.Geometry)
		}
	}
	g.Finish()

	replay.Logger().Debug("scene recorded",
		"features", len(s.Features),
		"levels", len(g.ZIndices()))
	return g, nil
}

func pickStyle(layers []Layer, styles []*style, f *Feature) *style {
	for i := range layers {
		if layers[i].matches(f) {
			return styles[i]
		}
	}
	if f.Kind == KindLine {
		return defaultLine
	}
	return defaultPolygon
}

// batchFor returns the batch type used for features of kind k.
func (s *style) batchFor(k Kind) replay.BatchType {
	switch {
	case s.hasBatch:
		return s.batch
	case k == KindLine:
		return replay.StrokeLine
	case s.fill.Paints() && s.stroke.Paints():
		return replay.FillStrokeRing
	case s.fill.Paints():
		return replay.FillRing
	default:
		return replay.StrokeRing
	}
}
