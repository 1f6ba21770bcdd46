/*
 * cmd_run.go, part of gogauss.
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
	"log/slog"
	"path/filepath"
	"strings"

	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/chemjson"
	"github.com/rmera/gogauss/chemplot"
	"github.com/rmera/gogauss/gausslog"
	"github.com/rmera/gogauss/qm"
	"github.com/spf13/cobra"
)

type runOptions struct {
	dir      string
	title    string
	charge   int
	multi    int
	calc     qm.Calc
	keywords string
	ncores   int
	cubes    bool
	json     bool
	plot     string
}

func newRunCommand(g *globals) *cobra.Command {
	o := new(runOptions)
	o.calc.SetDefaults()
	cmd := &cobra.Command{
		Use:   "run [flags] molecule.xyz",
		Short: "Run a Gaussian calculation on a molecule",
		Long: `Run a Gaussian calculation on the molecule in an XYZ file (it may be
gzip- or zstd-compressed), then collect and report the results.

If the work directory already holds a calculation that ended normally,
Gaussian is not run again, and only the results are collected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runE(cmd, g, o, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.dir, "dir", "d", ".", "work directory")
	f.StringVar(&o.title, "title", "", "title of the calculation (default: from the XYZ file)")
	f.IntVarP(&o.charge, "charge", "c", 0, "total charge")
	f.IntVarP(&o.multi, "multiplicity", "m", 1, "spin multiplicity")
	f.StringVar(&o.calc.Method, "method", "", "method, or composite model such as CBS-QB3 or G4 (default from config)")
	f.StringVar(&o.calc.Basis, "basis", "", "basis set (default from config)")
	f.StringVar(&o.calc.Memory, "memory", "", "memory for Gaussian, as in \"4 GB\" (default from config)")
	f.IntVar(&o.ncores, "ncores", 0, "number of cores (default from config)")
	f.StringVar(&o.keywords, "keywords", "", "other route-line keywords, separated by spaces")
	f.BoolVar(&o.calc.Optimize, "opt", false, "optimize the geometry")
	f.StringVar(&o.calc.Opt.Convergence, "convergence", o.calc.Opt.Convergence, "optimization convergence: default, loose, tight or very tight")
	f.StringVar(&o.calc.Opt.MaxCycles, "max-cycles", o.calc.Opt.MaxCycles, "maximum optimization steps: default, a number, or an expression such as 6*nAtoms")
	f.StringVar(&o.calc.Opt.RecalcHessian, "recalc-hessian", o.calc.Opt.RecalcHessian, "never, every step, at beginning, HF at beginning, or every N steps")
	f.StringVar(&o.calc.Opt.Coordinates, "coordinates", o.calc.Opt.Coordinates, "redundant, cartesian, or GIC")
	f.BoolVar(&o.cubes, "compress-cubes", false, "gzip the cube files left in the work directory")
	f.BoolVar(&o.json, "json", false, "write the results as JSON instead of a report")
	f.StringVar(&o.plot, "plot", "", "save a plot of the optimization convergence to this file")
	return cmd
}

func runE(cmd *cobra.Command, g *globals, o *runOptions, xyz string) error {
	mol, err := gauss.XYZFileRead(xyz)
	if err != nil {
		return err
	}
	mol.Charge = o.charge
	mol.Multi = o.multi
	if mol.Name == "" {
		mol.Name = strings.TrimSuffix(filepath.Base(xyz), filepath.Ext(xyz))
	}
	Q := o.calc
	applyConfig(&Q, g.cfg)
	Q.Others = strings.Fields(o.keywords)
	H := g.cfg.Handle(o.dir)
	if o.ncores > 0 {
		H.SetnCPU(o.ncores)
	}
	H.SetName(o.title)
	if H.Done() {
		H.SetMethod(Q.Method)
	} else {
		if err := H.BuildInput(mol, &Q); err != nil {
			return err
		}
		if err := H.Run(cmd.Context()); err != nil {
			return err
		}
	}
	R, err := H.Results()
	if err != nil {
		return err
	}
	if o.cubes {
		n, err := qm.CompressCubes(o.dir)
		if err != nil {
			return err
		}
		slog.Info("compressed cube files", "dir", o.dir, "files", n)
	}
	if o.plot != "" && R.Log != nil && R.Log.Trajectory != nil {
		if err := chemplot.ConvergencePlot(R.Log.Trajectory, R.Model+" optimization", o.plot); err != nil {
			return err
		}
	}
	if err := output(cmd, R, o.json); err != nil {
		return err
	}
	if !R.Success {
		return fmt.Errorf("calculation in %s: %w", o.dir, qm.ErrProbableProblem)
	}
	return nil
}

// applyConfig fills the method and basis of Q not given as flags with the
// configured ones. Composite methods take no basis.
func applyConfig(Q *qm.Calc, cfg *Config) {
	if Q.Method == "" {
		Q.Method = cfg.Method
	}
	if Q.Basis == "" && !gausslog.IsCBS(Q.Method) && !gausslog.IsGn(Q.Method) {
		Q.Basis = cfg.Basis
	}
}

// output writes R to the command's output, as JSON or as a report.
func output(cmd *cobra.Command, R *qm.Result, json bool) error {
	if !json {
		return printResult(cmd.OutOrStdout(), R)
	}
	info := &chemjson.Info{Directory: R.Dir, Success: R.Success, Model: R.Model, Results: R.Record}
	return info.Send(cmd.OutOrStdout())
}
