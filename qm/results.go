/*
 * results.go, part of gogauss.
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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/chemjson"
	"github.com/rmera/gogauss/fchk"
	"github.com/rmera/gogauss/gausslog"
	"github.com/rmera/gogauss/normalize"
)

//Result is the post-processed outcome of a calculation.
type Result struct {
	Dir     string
	Record  gauss.Record
	Success bool
	Model   string
	Log     *gausslog.Log //nil if there was no transcript
}

//Energy returns the total energy, or if there is none, the last SCF
//energy.
func (R *Result) Energy() (float64, bool) {
	if e, ok := R.Record.Real("Total Energy"); ok {
		return e, true
	}
	if es, ok := R.Record.Reals("scfenergies"); ok && len(es) > 0 {
		return es[len(es)-1], true
	}
	return 0, false
}

//Results collects the results of the calculation in dir, run with the
//given method. The data dumped by an external log reader (ccdata.json) is
//normalized first, then the formatted checkpoint and the transcript are
//parsed, in that order, each one overwriting keys of the previous ones.
//Missing files are skipped. An empty transcript is an ErrMalformedLog
//error, returned together with what was read from the other files.
//If the calculation ended normally, the success marker is written in dir,
//so the calculation is not run again.
func Results(dir, method string) (*Result, error) {
	errid := "Results"
	R := &Result{Dir: dir, Record: gauss.NewRecord()}
	if name, err := gauss.FindFile(dir, DataFile); err == nil {
		data, err := chemjson.ReadData(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errid, err)
		}
		R.Record.Merge(normalize.Normalize(data))
	} else {
		slog.Debug("no log reader data", "dir", dir)
	}
	if name, err := gauss.FindFile(dir, FchkFile); err == nil {
		rec, err := fchk.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errid, err)
		}
		R.Record.Merge(rec)
	} else {
		slog.Warn("no formatted checkpoint", "dir", dir)
	}
	if name, err := gauss.FindFile(dir, OutputFile); err == nil {
		L, err := gausslog.ParseFile(name, method)
		switch {
		case errors.Is(err, gauss.ErrMalformedLog):
			//the transcript exists but is unusable: the data read so far
			//is returned with the error.
			R.Model = Model(R.Record)
			return R, gauss.Decorate(err, errid)
		case err != nil:
			return nil, fmt.Errorf("%s: %w", errid, err)
		default:
			R.Log = L
			R.Success = L.Success
			R.Record.Merge(L.Record())
		}
	} else {
		slog.Warn("no transcript", "dir", dir)
	}
	if geoms, ok := R.Record.Ints("Optimization Number of geometries"); ok && len(geoms) > 0 {
		R.Record.Set("nsteps", gauss.Int(geoms[0]))
	}
	R.Model = Model(R.Record)
	slog.Info("results", "dir", dir, "model", R.Model, "success", R.Success, "keys", len(R.Record))
	slog.Debug("data keys", "keys", strings.Join(R.Record.Keys(), "\n"))
	if R.Success {
		if err := os.WriteFile(filepath.Join(dir, SuccessFile), []byte("success"), 0o644); err != nil {
			return R, fmt.Errorf("%s: Couldn't write the success marker: %w", errid, err)
		}
	}
	return R, nil
}

//Model returns the model chemistry of the results in rec: the composite
//model if there is one, otherwise "<last method>/<functional>/<basis>"
//from the log reader data. If that is missing, it is built from the
//method and basis in the checkpoint.
func Model(rec gauss.Record) string {
	if m, ok := rec.String("Composite/model"); ok {
		return m
	}
	method, _ := rec.String("method")
	methods, ok := rec.Strings("metadata/methods")
	basis, ok2 := rec.String("metadata/basis_set")
	if ok && ok2 && len(methods) > 0 {
		return methods[len(methods)-1] + "/" + method + "/" + basis
	}
	if b, ok := rec.String("basis"); ok && method != "" {
		return method + "/" + b
	}
	return method
}
