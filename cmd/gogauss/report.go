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

package main

import (
	"fmt"
	"io"
	"strings"

	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/normalize"
	"github.com/rmera/gogauss/qm"
)

var frontierKeys = []string{"homo-1", "homo", "lumo", "lumo+1", "gap"}

// reportKeys returns the keys of rec shown in the property table.
func reportKeys(rec gauss.Record) []string {
	keys := []string{"Total Energy", "nsteps", "G version", "G revision"}
	for _, prefix := range []string{"", normalize.SpinLabels[0] + "-", normalize.SpinLabels[1] + "-"} {
		for _, f := range frontierKeys {
			keys = append(keys, "E("+prefix+f+")")
		}
	}
	keys = append(keys, "dipole_moment_magnitude")
	keys = append(keys, normalize.TimingKeys...)
	for _, k := range rec.Keys() {
		if strings.HasPrefix(k, "Composite/") && k != "Composite/summary" {
			keys = append(keys, k)
		}
	}
	return keys
}

// printResult writes a human-readable report of R to w.
func printResult(w io.Writer, R *qm.Result) error {
	status := "ended normally"
	if !R.Success {
		status = "did NOT end normally"
	}
	fmt.Fprintf(w, "%s: %s calculation %s\n", R.Dir, R.Model, status)
	if e, ok := R.Energy(); ok {
		fmt.Fprintf(w, "Energy: %.8f hartree\n", e)
	}
	if R.Log != nil && R.Log.Trajectory != nil {
		nsteps, _ := R.Record.Int("nsteps")
		fmt.Fprintln(w, qm.Summary(R.Log.Trajectory, nsteps))
		if !R.Log.Trajectory.Converged {
			if err := qm.ConvergenceReport(w, R.Log.Trajectory); err != nil {
				return err
			}
		}
	}
	if R.Log != nil && R.Log.Composite != nil {
		fmt.Fprintln(w, R.Log.Composite.Summary)
	}
	fmt.Fprintln(w)
	return qm.PropertyTable(w, R.Record, reportKeys(R.Record))
}
