/*
 * cmd_parse.go, part of gogauss.
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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/rmera/gogauss/chemjson"
	"github.com/rmera/gogauss/qm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ResultsFile is the file where parse --save writes the results of each
// directory.
const ResultsFile = "results.json"

type parseOptions struct {
	method  string
	workers int
	json    bool
	save    bool
}

func newParseCommand(g *globals) *cobra.Command {
	o := new(parseOptions)
	cmd := &cobra.Command{
		Use:   "parse [flags] dir...",
		Short: "Collect the results of finished Gaussian calculations",
		Long: `Collect the results of the Gaussian calculations in one or more
directories, without running anything. Each directory is expected to hold
the transcript (output.txt) and the formatted checkpoint (gaussian.fchk),
possibly gzip- or zstd-compressed, and optionally the JSON dump of an
external log reader (ccdata.json).

Directories are processed in parallel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return parseE(cmd, g, o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.method, "method", "", "method of the calculations; selects the composite (CBS-*, Gn) block to read (default from config)")
	f.IntVarP(&o.workers, "workers", "j", 0, "directories processed at the same time (default from config, or one per CPU)")
	f.BoolVar(&o.json, "json", false, "write the results as JSON instead of a report")
	f.BoolVar(&o.save, "save", false, "also write the results of each directory to "+ResultsFile+" in it")
	return cmd
}

// dirSize returns the total size of the regular files in dir.
func dirSize(dir string) (int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	var size int64
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return 0, err
		}
		size += info.Size()
	}
	return size, nil
}

// saveResults writes R as JSON to ResultsFile in its directory.
func saveResults(R *qm.Result) error {
	f, err := os.Create(filepath.Join(R.Dir, ResultsFile))
	if err != nil {
		return err
	}
	info := &chemjson.Info{Directory: R.Dir, Success: R.Success, Model: R.Model, Results: R.Record}
	if err := info.Send(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseE(cmd *cobra.Command, g *globals, o *parseOptions, dirs []string) error {
	method := o.method
	if method == "" {
		method = g.cfg.Method
	}
	workers := o.workers
	if workers <= 0 {
		workers = g.cfg.Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]*qm.Result, len(dirs))
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, dir := range dirs {
		i, dir := i, dir // per-iteration copies (go directive < 1.22)
		eg.Go(func() error {
			size, err := dirSize(dir)
			if err != nil {
				return fmt.Errorf("%s: %w", dir, err)
			}
			slog.Info("parsing", "dir", dir, "size", humanize.Bytes(uint64(size)))
			R, err := qm.Results(dir, method)
			if err != nil {
				return fmt.Errorf("%s: %w", dir, err)
			}
			if o.save {
				if err := saveResults(R); err != nil {
					return fmt.Errorf("%s: %w", dir, err)
				}
			}
			results[i] = R
			return nil
		})
	}
	err := eg.Wait()
	var failed error
	for _, R := range results {
		if R == nil {
			continue
		}
		if err := output(cmd, R, o.json); err != nil {
			return err
		}
		if !R.Success {
			failed = errors.Join(failed, fmt.Errorf("calculation in %s: %w", R.Dir, qm.ErrProbableProblem))
		}
	}
	if err != nil {
		return err
	}
	return failed
}
