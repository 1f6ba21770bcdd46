/*
 * gaussian.go, part of gogauss.
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

package qm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/fchk"
	"github.com/rmera/gogauss/gausslog"
	"github.com/rmera/gogauss/units"
)

//Names of the files in a Gaussian work directory.
const (
	InputFile      = "input.dat"
	OutputFile     = "output.txt"
	CheckpointFile = "gaussian.chk"
	FchkFile       = "gaussian.fchk"
	DataFile       = "ccdata.json" //dump of an external log reader, optional
	SuccessFile    = "success.dat"
)

//MinMemory is the least memory given to Gaussian.
const MinMemory = "800 MB"

//Note that the default methods and basis are NOT considered part of the API,
//so they can always change.
type GaussianHandle struct {
	defmethod   string
	defbasis    string
	command     string
	path        string
	formchk     string
	root        string //g09root
	environment string //file sourced before running Gaussian
	workdir     string
	name        string
	method      string
	memory      string
	nCPU        int
}

func NewGaussianHandle() *GaussianHandle {
	run := new(GaussianHandle)
	run.SetDefaults()
	return run
}

//GaussianHandle methods

//Sets defaults for Gaussian calculation. Default is a single-point at
//B3LYP/6-31G(d), with all the available CPUs, in the current directory.
//The command is g16, in the PATH.
func (O *GaussianHandle) SetDefaults() {
	O.defmethod = "B3LYP"
	O.defbasis = "6-31G(d)"
	O.command = "g16"
	O.formchk = "formchk"
	O.workdir = "."
	O.nCPU = runtime.NumCPU()
}

//Sets the number of CPU to be used. Values < 1 or larger than
//the number of CPUs in the system are clamped.
func (O *GaussianHandle) SetnCPU(cpu int) {
	O.nCPU = min(max(cpu, 1), runtime.NumCPU())
}

//SetName sets the title of the calculation.
func (O *GaussianHandle) SetName(name string) {
	O.name = name
}

//SetCommand sets the name of the Gaussian executable, and
//optionally the directory where it is.
func (O *GaussianHandle) SetCommand(exe string, path ...string) {
	O.command = exe
	if len(path) > 0 {
		O.path = path[0]
	}
}

//SetFormchk sets the command used to format the checkpoint file.
func (O *GaussianHandle) SetFormchk(cmd string) {
	O.formchk = cmd
}

//SetRoot sets the g09root variable for the Gaussian process.
func (O *GaussianHandle) SetRoot(root string) {
	O.root = root
}

//SetEnvironment sets a file to be sourced before running Gaussian.
func (O *GaussianHandle) SetEnvironment(file string) {
	O.environment = file
}

//SetWorkDir sets the directory where the calculation is run and its files
//written. It is created by BuildInput if needed.
func (O *GaussianHandle) SetWorkDir(dir string) {
	O.workdir = dir
}

func (O *GaussianHandle) WorkDir() string {
	return O.workdir
}

//SetMethod sets the method used to interpret the output, for handles
//that only collect results.
func (O *GaussianHandle) SetMethod(method string) {
	O.method = method
}

//SetMemory sets the default memory, as a human readable amount ("4 GB").
func (O *GaussianHandle) SetMemory(mem string) {
	O.memory = mem
}

//memory returns the %Mem value for the requested amount.
func (O *GaussianHandle) memoryLine(requested string) (string, error) {
	errid := "GaussianHandle/memoryLine"
	switch requested {
	case "", "all", "available":
		requested = O.memory
	}
	floor, _ := units.Dehumanize(MinMemory, "B")
	mem := floor
	switch requested {
	case "", "all", "available":
	default:
		m, err := units.Dehumanize(requested, "B")
		if err != nil {
			return "", gauss.Decorate(err, errid)
		}
		mem = max(m, floor)
	}
	//Gaussian allows no decimal points.
	ret, err := units.Humanize(float64(mem), "B", 1000)
	return ret, gauss.Decorate(err, errid)
}

//BuildInput builds an input for Gaussian based int the data in mol and Q.
//It writes it to the work directory, and returns only error.
func (O *GaussianHandle) BuildInput(mol *gauss.Molecule, Q *Calc) error {
	errid := "GaussianHandle/BuildInput"
	if mol == nil || mol.Len() == 0 {
		return fmt.Errorf("%s: no molecule given: %w", errid, gauss.ErrInvalidArgument)
	}
	if Q.Method == "" {
		slog.Info("no method assigned for Gaussian calculation, will use the default", "method", O.defmethod, "basis", O.defbasis)
		Q.Method = O.defmethod
		if Q.Basis == "" {
			Q.Basis = O.defbasis
		}
	}
	O.method = Q.Method
	keywords, err := RouteKeywords(Q, mol.Len())
	if err != nil {
		return fmt.Errorf("%s: %w", errid, err)
	}
	mem, err := O.memoryLine(Q.Memory)
	if err != nil {
		return fmt.Errorf("%s: %w", errid, err)
	}
	title := O.name
	if title == "" {
		title = mol.Name
	}
	if title == "" {
		title = "gogauss"
	}
	if err := os.MkdirAll(O.workdir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", errid, err)
	}
	var b bytes.Buffer
	if err := writeInput(&b, mol, keywords, mem, O.nCPU, title); err != nil {
		return fmt.Errorf("%s: %w", errid, err)
	}
	slog.Debug("Gaussian input", "file", InputFile, "content", b.String())
	if err := os.WriteFile(filepath.Join(O.workdir, InputFile), b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%s: Couldn't write input file: %w", errid, err)
	}
	return nil
}

func writeInput(w io.Writer, mol *gauss.Molecule, keywords []string, mem string, ncpu int, title string) error {
	lines := []string{
		"%Chk=gaussian",
		"%Mem=" + mem,
		fmt.Sprintf("%%NProcShared=%d", ncpu),
		"# " + strings.Join(keywords, " "),
		" ",
		title,
		" ",
		fmt.Sprintf("%d    %d", mol.Charge, mol.Multi),
	}
	for i, s := range mol.Symbols {
		x, y, z := mol.Coord(i)
		lines = append(lines, fmt.Sprintf("%-2s   %10.6f %10.6f %10.6f", s, x, y, z))
	}
	lines = append(lines, " ")
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

//Command returns the shell command used to run Gaussian and format the
//checkpoint file.
func (O *GaussianHandle) Command() string {
	exe := O.command
	if O.path != "" {
		exe = O.path + "/" + exe
	}
	cmd := exe
	if O.environment != "" {
		cmd = fmt.Sprintf(". %s ; %s", O.environment, exe)
	}
	return fmt.Sprintf("%s < %s > %s ; %s %s", cmd, InputFile, OutputFile, O.formchk, CheckpointFile)
}

//Done returns true if a previous run in the work directory ended normally.
func (O *GaussianHandle) Done() bool {
	_, err := os.Stat(filepath.Join(O.workdir, SuccessFile))
	return err == nil
}

//Run runs Gaussian in the work directory, and then formchk. It blocks until
//both end or ctx is cancelled. If a previous run in the directory ended
//normally, it does nothing. Only one run per directory should be active at
//any time.
func (O *GaussianHandle) Run(ctx context.Context) error {
	errid := "GaussianHandle/Run"
	if O.Done() {
		slog.Info("calculation already done, will not run it again", "dir", O.workdir)
		return nil
	}
	command := exec.CommandContext(ctx, "sh", "-c", O.Command())
	command.Dir = O.workdir
	//children of the shell may keep the output pipes open after a cancellation
	command.WaitDelay = 5 * time.Second
	command.Env = os.Environ()
	if O.root != "" {
		command.Env = append(command.Env, "g09root="+O.root)
	}
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	slog.Info("running Gaussian", "dir", O.workdir, "cpus", O.nCPU, "command", O.Command())
	err := command.Run()
	if stdout.Len() > 0 {
		slog.Debug("Gaussian stdout", "dir", O.workdir, "stdout", stdout.String())
	}
	if stderr.Len() > 0 {
		slog.Warn("Gaussian stderr", "dir", O.workdir, "stderr", stderr.String())
	}
	if err != nil {
		if ctxerr := ctx.Err(); ctxerr != nil {
			return fmt.Errorf("%s: %w", errid, errors.Join(ctxerr, err))
		}
		return fmt.Errorf("%s: There was an error running Gaussian: %w", errid, err)
	}
	return nil
}

//Results post-processes the calculation in the work directory. See the
//Results function.
func (O *GaussianHandle) Results() (*Result, error) {
	return Results(O.workdir, O.method)
}

//Gets the energy of a previous Gaussian calculation, in hartree. For
//composite methods this is the free energy of the composite model.
//Returns error if problem, and also if the energy returned that is product of an
//abnormally-terminated calculation. (in this case error is ErrProbableProblem)
func (O *GaussianHandle) Energy() (float64, error) {
	errid := "GaussianHandle/Energy"
	R, err := O.Results()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errid, err)
	}
	energy, ok := R.Energy()
	if !ok {
		return 0, fmt.Errorf("%s: Output does not contain energy", errid)
	}
	if !R.Success {
		return energy, fmt.Errorf("%s: %w", errid, ErrProbableProblem)
	}
	return energy, nil
}

/*Reads the latest geometry from the formatted checkpoint. Returns the
  geometry or error. Returns the geometry AND error if the geometry read
  is not the product of a correctly ended calculation. In this case
  the error is ErrProbableProblem*/
func (O *GaussianHandle) OptimizedGeometry() (*gauss.Molecule, error) {
	errid := "GaussianHandle/OptimizedGeometry"
	name, err := gauss.FindFile(O.workdir, FchkFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errid, err)
	}
	rec, err := fchk.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errid, err)
	}
	mol, err := fchk.OptimizedGeometry(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errid, err)
	}
	if O.name != "" {
		mol.Name = O.name
	}
	if !O.Done() && !O.normalTermination() {
		return mol, fmt.Errorf("%s: %w", errid, ErrProbableProblem)
	}
	return mol, nil
}

//normalTermination checks the transcript in the work directory.
func (O *GaussianHandle) normalTermination() bool {
	name, err := gauss.FindFile(O.workdir, OutputFile)
	if err != nil {
		return false
	}
	L, err := gausslog.ParseFile(name, O.method)
	return err == nil && L.Success
}
