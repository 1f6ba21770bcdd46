/*
 * cmd_plot.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"
	"github.com/rmera/gogauss/chemplot"
	"github.com/rmera/gogauss/gausslog"
	"github.com/rmera/gogauss/qm"
	"github.com/spf13/cobra"
)

func newPlotCommand(g *globals) *cobra.Command {
	var out, title string
	cmd := &cobra.Command{
		Use:   "plot [flags] output.txt",
		Short: "Plot the convergence of a geometry optimization",
		Long: `Plot the four convergence criteria of a Gaussian geometry optimization,
read from its transcript, against the optimization step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			L, err := gausslog.ParseFile(args[0], g.cfg.Method)
			if err != nil {
				return err
			}
			if L.Trajectory == nil {
				return fmt.Errorf("no geometry optimization in %s", args[0])
			}
			if title == "" {
				title = args[0]
			}
			if err := chemplot.ConvergencePlot(L.Trajectory, title, out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), qm.Summary(L.Trajectory, 0))
			return qm.ConvergenceReport(cmd.OutOrStdout(), L.Trajectory)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "convergence.png", "plot file; the extension selects the format")
	cmd.Flags().StringVar(&title, "title", "", "plot title (default: the transcript name)")
	return cmd
}
