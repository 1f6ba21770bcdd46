/*
 * trajectory.go, part of gogauss.
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

package gausslog

import (
	"log/slog"
	"strconv"
	"strings"

	gauss "github.com/rmera/gogauss"
)

// ConvergenceHeader is the header of the table Gaussian prints after each
// optimization step.
const ConvergenceHeader = "         Item               Value     Threshold  Converged?"

// Criterion is one of the four quantities in the convergence table.
type Criterion int

const (
	MaxForce Criterion = iota
	RMSForce
	MaxDisplacement
	RMSDisplacement
)

// Criteria lists the criteria in the order Gaussian prints them.
var Criteria = [4]Criterion{MaxForce, RMSForce, MaxDisplacement, RMSDisplacement}

var criterionNames = [4]string{"Maximum Force", "RMS Force", "Maximum Displacement", "RMS Displacement"}

// String returns the name used both in the table and in record keys.
func (C Criterion) String() string { return criterionNames[C] }

// Trajectory is the history of the convergence criteria over the steps of
// a geometry optimization.
type Trajectory struct {
	Values     [4][]float64 //indexed by Criterion, one value per step
	Thresholds [4]float64
	HasThr     [4]bool
	//Converged is the convergence of the last step only.
	Converged bool
	Steps     int
	//Skipped counts table rows that did not match the expected criterion
	//and were not recorded.
	Skipped int
}

// Series returns the values of criterion C, in step order.
func (T *Trajectory) Series(C Criterion) []float64 { return T.Values[C] }

// Last returns the value of criterion C at the last step where it was read.
func (T *Trajectory) Last(C Criterion) (float64, bool) {
	v := T.Values[C]
	if len(v) == 0 {
		return 0, false
	}
	return v[len(v)-1], true
}

// Consistent returns true if the four series have one value per step.
func (T *Trajectory) Consistent() bool {
	for _, v := range T.Values {
		if len(v) != T.Steps {
			return false
		}
	}
	return true
}

// parseTrajectory returns nil if no convergence table is found.
func parseTrajectory(lines []string) *Trajectory {
	var T *Trajectory
	cur := gauss.NewLines(lines)
	for {
		line, ok := cur.Next()
		if !ok {
			break
		}
		if line != ConvergenceHeader {
			continue
		}
		if T == nil {
			T = new(Trajectory)
		}
		T.Steps++
		T.Converged = true
		for _, c := range Criteria {
			//a table cut short by the end of the transcript, or by the
			//next table, is not converged.
			row, ok := cur.Peek()
			if !ok || row == ConvergenceHeader {
				T.Skipped++
				T.Converged = false
				continue
			}
			cur.Next()
			value, thr, conv, ok := readRow(row, c)
			if !ok {
				T.Skipped++
				slog.Debug("convergence table row skipped", "step", T.Steps, "expected", c.String(), "line", cur.Pos())
				continue
			}
			T.Values[c] = append(T.Values[c], value)
			T.Thresholds[c] = thr
			T.HasThr[c] = true
			if !conv {
				T.Converged = false
			}
		}
	}
	return T
}

// readRow reads a row like
//
//	Maximum Force            0.000144     0.000450     YES
func readRow(row string, C Criterion) (value, threshold float64, converged, ok bool) {
	f := strings.Fields(row)
	if len(f) != 5 || f[0]+" "+f[1] != C.String() {
		return 0, 0, false, false
	}
	var err error
	if value, err = strconv.ParseFloat(f[2], 64); err != nil {
		return 0, 0, false, false
	}
	if threshold, err = strconv.ParseFloat(f[3], 64); err != nil {
		return 0, 0, false, false
	}
	return value, threshold, f[4] == "YES", true
}

func (T *Trajectory) addTo(rec gauss.Record) {
	rec.Set("Geometry Optimization Converged", gauss.Bool(T.Converged))
	for _, c := range Criteria {
		name := c.String()
		if T.HasThr[c] {
			rec.Set(name+" Threshold", gauss.Real(T.Thresholds[c]))
		}
		if last, ok := T.Last(c); ok {
			rec.Set(name, gauss.Real(last))
		}
		rec.Set(name+" Trajectory", gauss.Reals(append([]float64(nil), T.Values[c]...)))
	}
}
