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
	"errors"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/replay/geometry"
)

// ErrNoFeatures is returned by LoadGeoJSON if the input contains no
// drawable feature.
var ErrNoFeatures = errors.New("scene: no drawable features")

// LoadGeoJSON reads a GeoJSON FeatureCollection.  LineString,
// MultiLineString, Polygon and MultiPolygon features are kept; other
// features, and features with degenerate geometry, are counted in
// Scene.Skipped.
func LoadGeoJSON(data []byte) (*Scene, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("scene: decoding GeoJSON: %w", err)
	}

	s := &Scene{}
	for _, f := range fc.Features {
		feature, ok := convertFeature(f)
		if !ok {
			s.Skipped++
			continue
		}
		s.Features = append(s.Features, feature)
	}
	if len(s.Features) == 0 {
		return nil, ErrNoFeatures
	}
	return s, nil
}

func convertFeature(f *geojson.Feature) (Feature, bool) {
	if f == nil || f.Geometry == nil {
		return Feature{}, false
	}
	res := Feature{Properties: f.Properties}

	g := f.Geometry
	switch g.Type {
	case geojson.GeometryLineString:
		line := toLine(g.LineString)
		if line == nil {
			return Feature{}, false
		}
		res.Geometry, res.Kind, res.Bounds = line, KindLine, line.Bounds()
	case geojson.GeometryMultiLineString:
		var lines geometry.MultiLineString
		for _, coords := range g.MultiLineString {
			if line := toLine(coords); line != nil {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			return Feature{}, false
		}
		res.Geometry, res.Kind, res.Bounds = lines, KindLine, lines.Bounds()
	case geojson.GeometryPolygon:
		poly := toPolygon(g.Polygon)
		if poly == nil {
			return Feature{}, false
		}
		res.Geometry, res.Kind, res.Bounds = poly, KindPolygon, poly.Bounds()
	case geojson.GeometryMultiPolygon:
		var polys geometry.MultiPolygon
		for _, rings := range g.MultiPolygon {
			if poly := toPolygon(rings); poly != nil {
				polys = append(polys, poly)
			}
		}
		if len(polys) == 0 {
			return Feature{}, false
		}
		res.Geometry, res.Kind, res.Bounds = polys, KindPolygon, polys.Bounds()
	default:
		return Feature{}, false
	}
	return res, true
}

// toLine converts GeoJSON positions to a line.  It returns nil if fewer
// than two valid positions remain.
func toLine(coords [][]float64) geometry.LineString {
	line := toPoints(coords)
	if len(line) < 2 {
		return nil
	}
	return line
}

// toPolygon converts GeoJSON rings to a polygon.  The closing position of
// each ring is dropped.  Rings with fewer than three distinct positions
// are ignored; if the outer ring is ignored, toPolygon returns nil.
func toPolygon(rings [][][]float64) geometry.Polygon {
	var poly geometry.Polygon
	for i, coords := range rings {
		ring := geometry.Ring(toPoints(coords))
		if n := len(ring); n > 1 && ring[0] == ring[n-1] {
			ring = ring[:n-1]
		}
		if len(ring) < 3 {
			if i == 0 {
				return nil
			}
			continue
		}
		poly = append(poly, ring)
	}
	return poly
}

func toPoints(coords [][]float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		pts = append(pts, vec.Vec2{X: c[0], Y: c[1]})
	}
	return pts
}
