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
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/replay"
)

var version = "devel"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the maprender command line interface with the given
// arguments.
func Execute(args []string) error {
	root := newRootCmd(os.Stderr)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "maprender",
		Short:        "Render GeoJSON map features to PNG and PDF",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)
			replay.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("maprender %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())

	return root
}
