/*
 * gausslog.go, part of gogauss.
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

//Package gausslog extracts results from the transcript (log) Gaussian
//writes to standard output: whether the run terminated normally, the
//program version, the convergence history of geometry optimizations and
//the summaries printed by the CBS and Gn composite methods.
//
//Except for the termination check, every part is optional. A missing
//block only means the run did not produce it.
package gausslog

import (
	"log/slog"
	"strings"

	gauss "github.com/rmera/gogauss"
)

// NormalTermination is the marker Gaussian prints in the last line of a
// successful run.
const NormalTermination = "Normal termination"

var con = strings.Contains
var trim = strings.TrimSpace

// Log holds what was extracted from one transcript. Nil fields were not
// found.
type Log struct {
	Success    bool
	Version    *Version
	Trajectory *Trajectory
	Composite  *Composite
}

// ParseFile reads (possibly compressed) transcript name and parses it. method
// is the method requested for the calculation, which decides what composite
// block, if any, is looked for.
func ParseFile(name, method string) (*Log, error) {
	lines, err := gauss.ReadLines(name)
	if err != nil {
		return nil, gauss.Decorate(err, "gausslog.ParseFile")
	}
	L, err := Parse(lines, method)
	if err != nil {
		return nil, gauss.SetFileName(gauss.Decorate(err, "gausslog.ParseFile"), name)
	}
	return L, nil
}

// Parse extracts the results from the lines of a transcript. It only fails
// if there is nothing to parse.
func Parse(lines []string, method string) (*Log, error) {
	last := ""
	for i := len(lines) - 1; i >= 0; i-- {
		if trim(lines[i]) != "" {
			last = lines[i]
			break
		}
	}
	if last == "" {
		return nil, gauss.NewError(gauss.ErrMalformedLog, "log", "", "empty transcript", nil, "gausslog.Parse")
	}
	L := &Log{Success: con(last, NormalTermination)}
	var err error
	L.Version, err = parseVersion(lines)
	if err != nil {
		slog.Warn("could not read the Gaussian citation", "error", err)
	}
	L.Trajectory = parseTrajectory(lines)
	if L.Trajectory != nil && !L.Trajectory.Consistent() {
		slog.Warn("optimization trajectories have different lengths", "steps", L.Trajectory.Steps, "skipped", L.Trajectory.Skipped)
	}
	switch {
	case IsCBS(method):
		L.Composite = parseCBS(lines, method)
	case IsGn(method):
		L.Composite = parseGn(lines, method)
	}
	return L, nil
}

// Record returns the extracted data as a flat record.
func (L *Log) Record() gauss.Record {
	rec := gauss.NewRecord()
	rec.Set("success", gauss.Bool(L.Success))
	if L.Version != nil {
		L.Version.addTo(rec)
	}
	if L.Trajectory != nil {
		L.Trajectory.addTo(rec)
	}
	if L.Composite != nil {
		L.Composite.addTo(rec)
	}
	return rec
}

// TailBlock finds the last line containing anchor and returns it together
// with the lines preceding it, collected backward until stop returns true
// for a line. The stop line is included only if inclusive is true. If no
// line stops the scan, the block extends to the first line. The block is
// returned in file order. The boolean is false if anchor was not found.
func TailBlock(lines []string, anchor string, stop func(string) bool, inclusive bool) ([]string, bool) {
	end := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if con(lines[i], anchor) {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, false
	}
	start := 0
	for i := end - 1; i >= 0; i-- {
		if stop(lines[i]) {
			start = i + 1
			if inclusive {
				start = i
			}
			break
		}
	}
	block := make([]string, end-start+1)
	copy(block, lines[start:end+1])
	return block, true
}
