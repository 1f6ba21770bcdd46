/*
 * report.go, part of gogauss.
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

package qm

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/gausslog"
)

//Table writes a simple text table with a header line, aligned on the
//displayed width of each cell, so labels such as "E(α-homo)" line up.
//right selects, per column, right alignment.
func Table(w io.Writer, header []string, rows [][]string, right []bool) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i := 0; i < len(r) && i < len(widths); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(r[i]))
		}
	}
	line := func(cells []string) string {
		out := make([]string, len(widths))
		for i := range widths {
			c := ""
			if i < len(cells) {
				c = cells[i]
			}
			if i < len(right) && right[i] {
				out[i] = runewidth.FillLeft(c, widths[i])
			} else {
				out[i] = runewidth.FillRight(c, widths[i])
			}
		}
		return strings.TrimRight(strings.Join(out, "  "), " ")
	}
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	text := []string{line(header), strings.Join(rule, "  ")}
	for _, r := range rows {
		text = append(text, line(r))
	}
	_, err := io.WriteString(w, strings.Join(text, "\n")+"\n")
	return err
}

//ConvergenceReport writes the values of the four convergence criteria at
//each step of an optimization, followed by a "-" row and the thresholds,
//under a centered "Convergence" title.
func ConvergenceReport(w io.Writer, T *gausslog.Trajectory) error {
	header := make([]string, 4)
	right := []bool{true, true, true, true}
	rows := make([][]string, 0, T.Steps+2)
	for i, c := range gausslog.Criteria {
		header[i] = c.String()
	}
	n := 0
	for _, c := range gausslog.Criteria {
		n = max(n, len(T.Series(c)))
	}
	for step := 0; step < n; step++ {
		row := make([]string, 4)
		for i, c := range gausslog.Criteria {
			if s := T.Series(c); step < len(s) {
				row[i] = fmt.Sprintf("%.6f", s[step])
			}
		}
		rows = append(rows, row)
	}
	rows = append(rows, []string{"-", "-", "-", "-"})
	thr := make([]string, 4)
	for i, c := range gausslog.Criteria {
		if T.HasThr[c] {
			thr[i] = fmt.Sprintf("%.6f", T.Thresholds[c])
		}
	}
	rows = append(rows, thr)
	var b strings.Builder
	if err := Table(&b, header, rows, right); err != nil {
		return err
	}
	width := runewidth.StringWidth(strings.SplitN(b.String(), "\n", 2)[0])
	title := "Convergence"
	pad := max(0, (width-len(title))/2)
	_, err := fmt.Fprintf(w, "%s%s\n%s", strings.Repeat(" ", pad), title, b.String())
	return err
}

//Summary returns a one-paragraph description of the optimization in T,
//as in "The geometry optimization converged in 5 steps.".
func Summary(T *gausslog.Trajectory, nsteps int) string {
	if nsteps <= 0 {
		nsteps = T.Steps
	}
	if T.Converged {
		return fmt.Sprintf("The geometry optimization converged in %d steps.", nsteps)
	}
	return fmt.Sprintf("Warning: The geometry optimization did not converge in %d steps.", nsteps)
}

//PropertyTable writes the scalar entries of rec whose keys are in keys,
//in that order, with their values. Missing keys are skipped.
func PropertyTable(w io.Writer, rec gauss.Record, keys []string) error {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		v, ok := rec.Get(k)
		if !ok || v.Kind().IsSequence() {
			continue
		}
		val := v.String()
		if r, ok := v.AsReal(); ok && v.Kind() == gauss.KindReal {
			val = fmt.Sprintf("%.6f", r)
		}
		rows = append(rows, []string{k, val})
	}
	return Table(w, []string{"Property", "Value"}, rows, []bool{false, true})
}
