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
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/replay"
	"seehuhn.de/go/replay/internal/scene"
	"seehuhn.de/go/replay/pdfcanvas"
	"seehuhn.de/go/replay/raster"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	style  string  // TOML style file
	output string  // PNG output path
	pdf    string  // optional PDF output path
	zoom   float64 // zoom factor about the image centre
	frames int     // number of PNG frames, zooming from 1 to zoom
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		zoom:   1,
		frames: 1,
	}

	cmd := &cobra.Command{
		Use:   "render [flags] input.geojson",
		Short: "Render a GeoJSON feature collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "TOML style file")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "PNG output file (default: input name with .png)")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "also write a greyscale PDF proof")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", opts.zoom, "zoom factor about the image centre")
	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "number of frames zooming from 1 to --zoom")

	return cmd
}

func (o *renderOpts) validate() error {
	if !(o.zoom > 0) || math.IsInf(o.zoom, 0) {
		return fmt.Errorf("invalid zoom factor %g", o.zoom)
	}
	if o.frames < 1 {
		return fmt.Errorf("invalid number of frames %d", o.frames)
	}
	return nil
}

// frameZoom returns the zoom factor of frame i.  The zoom grows
// geometrically from 1 in the first frame to zoom in the last frame.
func (o *renderOpts) frameZoom(i int) float64 {
	if o.frames == 1 {
		return o.zoom
	}
	return math.Pow(o.zoom, float64(i)/float64(o.frames-1))
}

// outputPath derives the PNG path for frame i.
func outputPath(output, input string, i, frames int) string {
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	if frames == 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(output, ext), i, ext)
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	sc, err := scene.LoadGeoJSON(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	logger.Infof("Loaded %d features (%d skipped)", len(sc.Features), sc.Skipped)

	cfg := scene.DefaultConfig()
	if opts.style != "" {
		styleData, err := os.ReadFile(opts.style)
		if err != nil {
			return err
		}
		cfg, err = scene.LoadConfig(styleData)
		if err != nil {
			return fmt.Errorf("%s: %w", opts.style, err)
		}
	}

	prog := newProgress(logger)
	g, err := scene.Build(sc, cfg)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Recorded %d z-levels", len(g.ZIndices())))

	w, h := float64(cfg.Width), float64(cfg.Height)
	base := scene.FitTransform(sc.Bounds(), w, h, cfg.Padding)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	canvas := raster.NewCanvas(img)
	for i := range opts.frames {
		m := scene.Zoom(base, opts.frameZoom(i), w/2, h/2)

		prog := newProgress(logger)
		if bg := cfg.BackgroundColor(); bg != nil {
			canvas.Clear(bg)
		} else {
			clear(img.Pix)
		}
		g.Draw(canvas, m)

		out := outputPath(opts.output, input, i, opts.frames)
		if err := writePNG(out, img); err != nil {
			return err
		}
		prog.done("Wrote " + out)
	}

	if opts.pdf != "" {
		prog := newProgress(logger)
		m := scene.Zoom(base, opts.frameZoom(0), w/2, h/2)
		if err := writePDF(opts.pdf, g, m, w, h); err != nil {
			return err
		}
		prog.done("Wrote " + opts.pdf)
	}
	return nil
}

func writePNG(fileName string, img image.Image) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func writePDF(fileName string, g *replay.BatchGroup, m matrix.Matrix, w, h float64) error {
	c, err := pdfcanvas.Create(fileName, w, h)
	if err != nil {
		return err
	}
	g.Draw(c, m)
	return c.Close()
}
