/*
 * convergence.go, part of gogauss.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chemplot

import (
	"fmt"
	"math"
	"strings"

	"github.com/rmera/gogauss/gausslog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Floor is the smallest value plotted. Smaller values (including zeros)
// are plotted as Floor, since the y axis is logarithmic.
const Floor = 1e-12

func log10(v float64) float64 {
	if v < Floor || math.IsNaN(v) {
		v = Floor
	}
	return math.Log10(v)
}

// ConvergencePoints returns the log10 of the values of criterion c, one
// point per optimization step, starting at step 1.
func ConvergencePoints(T *gausslog.Trajectory, c gausslog.Criterion) plotter.XYs {
	series := T.Series(c)
	pts := make(plotter.XYs, len(series))
	for i, v := range series {
		pts[i].X = float64(i + 1)
		pts[i].Y = log10(v)
	}
	return pts
}

// ConvergencePlot plots the four convergence criteria of an optimization
// against the step number, in log10 scale, with their thresholds as dashed
// lines of the same color. The plot is saved to plotname, whose extension
// (.png, .svg, .pdf...) selects the format. If it has no extension, .png is
// added.
func ConvergencePlot(T *gausslog.Trajectory, title, plotname string) error {
	if T == nil || T.Steps == 0 {
		return fmt.Errorf("ConvergencePlot: no optimization steps to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "log10(value)"
	p.X.Min = 1
	p.X.Max = math.Max(2, float64(T.Steps))
	p.Add(plotter.NewGrid())
	for i, c := range gausslog.Criteria {
		pts := ConvergencePoints(T, c)
		if len(pts) == 0 {
			continue
		}
		l, s, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("ConvergencePlot: %s: %w", c, err)
		}
		col := plotutil.Color(i)
		l.LineStyle.Color = col
		l.LineStyle.Width = vg.Points(1.5)
		s.GlyphStyle.Color = col
		s.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(l, s)
		p.Legend.Add(c.String(), l, s)
		if !T.HasThr[c] {
			continue
		}
		y := log10(T.Thresholds[c])
		thr, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: y}, {X: p.X.Max, Y: y}})
		if err != nil {
			return fmt.Errorf("ConvergencePlot: %s threshold: %w", c, err)
		}
		thr.LineStyle.Color = col
		thr.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(thr)
	}
	p.Legend.Top = true
	if !strings.Contains(plotname[strings.LastIndex(plotname, "/")+1:], ".") {
		plotname += ".png"
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotname); err != nil {
		return fmt.Errorf("ConvergencePlot: %w", err)
	}
	return nil
}
