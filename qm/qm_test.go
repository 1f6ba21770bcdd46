/*
 * qm_test.go, part of gogauss.
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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/gausslog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func water(Te *testing.T) *gauss.Molecule {
	mol, err := gauss.NewMolecule([]string{"O", "H", "H"}, []float64{0, 0, 0, 0, 0, 0.96, 0.93, 0, -0.24})
	require.NoError(Te, err)
	mol.Name = "water"
	return mol
}

func TestOptKeywords(Te *testing.T) {
	calc := new(Calc)
	calc.SetDefaults()
	kw, err := OptKeywords(calc.Opt, 3)
	require.NoError(Te, err)
	assert.Equal(Te, "Opt=Redundant", kw)

	kw, err = OptKeywords(OptOptions{Convergence: "tight", MaxCycles: "6*nAtoms", RecalcHessian: "every step", Coordinates: "cartesian"}, 3)
	require.NoError(Te, err)
	assert.Equal(Te, "Opt=(Tight,MaxCycles=18,CalcAll,Cartesian)", kw)

	kw, err = OptKeywords(OptOptions{Convergence: "very tight", MaxCycles: "50", RecalcHessian: "5", Coordinates: "generalized internal (GIC)"}, 3)
	require.NoError(Te, err)
	assert.Equal(Te, "Opt=(VeryTight,MaxCycles=50,RecalcFC=5,GIC)", kw)

	kw, err = OptKeywords(OptOptions{RecalcHessian: "HF at beginning"}, 3)
	require.NoError(Te, err)
	assert.Equal(Te, "Opt=(CalcHFFC,Redundant)", kw)

	for _, bad := range []OptOptions{
		{Coordinates: "spherical"},
		{Convergence: "sloppy"},
		{MaxCycles: "2.5*nAtoms"},
		{MaxCycles: "lots"},
		{RecalcHessian: "sometimes"},
	} {
		_, err := OptKeywords(bad, 3)
		require.Error(Te, err, "%+v", bad)
		assert.True(Te, errors.Is(err, gauss.ErrInvalidArgument), "%+v", bad)
	}
}

func TestRouteKeywords(Te *testing.T) {
	kw, err := RouteKeywords(&Calc{Method: "CBS-QB3", Basis: "6-31G(d)"}, 3)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"CBS-QB3"}, kw)
	calc := &Calc{Method: "B3LYP", Basis: "def2-SVP", Optimize: true, Others: []string{"Freq"}}
	calc.SetDefaults()
	kw, err = RouteKeywords(calc, 3)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"B3LYP/def2-SVP", "Opt=Redundant", "Freq"}, kw)
}

func TestBuildInput(Te *testing.T) {
	dir := filepath.Join(Te.TempDir(), "calc")
	g := NewGaussianHandle()
	g.SetWorkDir(dir)
	g.SetnCPU(1)
	calc := &Calc{Method: "HF", Basis: "STO-3G", Memory: "2 GB"}
	require.NoError(Te, g.BuildInput(water(Te), calc))
	b, err := os.ReadFile(filepath.Join(dir, InputFile))
	require.NoError(Te, err)
	lines := strings.Split(string(b), "\n")
	assert.Equal(Te, "%Chk=gaussian", lines[0])
	assert.Equal(Te, "%Mem=2000MB", lines[1])
	assert.Equal(Te, "%NProcShared=1", lines[2])
	assert.Equal(Te, "# HF/STO-3G", lines[3])
	assert.Equal(Te, " ", lines[4])
	assert.Equal(Te, "water", lines[5])
	assert.Equal(Te, "0    1", lines[7])
	assert.Equal(Te, "H      0.000000   0.000000   0.960000", lines[9])
	assert.Equal(Te, " ", lines[11])

	//memory floor, and default method
	calc = &Calc{Memory: "100 MB"}
	g.SetName("small")
	require.NoError(Te, g.BuildInput(water(Te), calc))
	b, err = os.ReadFile(filepath.Join(dir, InputFile))
	require.NoError(Te, err)
	assert.Contains(Te, string(b), "%Mem=800MB\n")
	assert.Contains(Te, string(b), "# B3LYP/6-31G(d)\n")
	assert.Contains(Te, string(b), "\nsmall\n")

	assert.Error(Te, g.BuildInput(nil, calc))
	assert.Error(Te, g.BuildInput(water(Te), &Calc{Method: "HF", Memory: "much"}))
}

func TestCommand(Te *testing.T) {
	g := NewGaussianHandle()
	assert.Equal(Te, "g16 < input.dat > output.txt ; formchk gaussian.chk", g.Command())
	g.SetCommand("g09", "/opt/g09")
	g.SetEnvironment("/opt/g09/bsd/g09.profile")
	assert.Equal(Te, ". /opt/g09/bsd/g09.profile ; /opt/g09/g09 < input.dat > output.txt ; formchk gaussian.chk", g.Command())
}

func TestRun(Te *testing.T) {
	dir := Te.TempDir()
	g := NewGaussianHandle()
	g.SetWorkDir(dir)
	g.SetCommand("cat")
	g.SetFormchk("true")
	require.NoError(Te, g.BuildInput(water(Te), &Calc{Method: "HF", Basis: "STO-3G"}))
	require.NoError(Te, g.Run(context.Background()))
	in, err := os.ReadFile(filepath.Join(dir, InputFile))
	require.NoError(Te, err)
	out, err := os.ReadFile(filepath.Join(dir, OutputFile))
	require.NoError(Te, err)
	assert.Equal(Te, in, out)

	g.SetCommand("false ;")
	assert.NoError(Te, g.Run(context.Background()), "formchk ends the shell")
	g.SetFormchk("false")
	assert.Error(Te, g.Run(context.Background()))

	//nothing runs once the calculation is marked as done
	require.NoError(Te, os.WriteFile(filepath.Join(dir, SuccessFile), []byte("success"), 0o644))
	assert.True(Te, g.Done())
	assert.NoError(Te, g.Run(context.Background()))
}

func TestRunCancel(Te *testing.T) {
	dir := Te.TempDir()
	g := NewGaussianHandle()
	g.SetWorkDir(dir)
	g.SetCommand("sleep 1 ;")
	g.SetFormchk("true")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := g.Run(ctx)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, context.DeadlineExceeded))
}

func fchkText() string {
	lines := []string{
		"water",
		fmt.Sprintf("%-10s%-30s%-30s", "FOpt", "RHF", "STO-3G"),
		fmt.Sprintf("%-40s   %c     %12d", "Charge", 'I', 0),
		fmt.Sprintf("%-40s   %c     %12d", "Multiplicity", 'I', 1),
		fmt.Sprintf("%-40s   %c     %22.15E", "Total Energy", 'R', -74.9659),
		fmt.Sprintf("%-40s   %c   N=%12d", "Optimization Number of geometries", 'I', 1),
		fmt.Sprintf("%12d", 3),
		fmt.Sprintf("%-40s   %c   N=%12d", "Atomic numbers", 'I', 3),
		fmt.Sprintf("%12d%12d%12d", 8, 1, 1),
		fmt.Sprintf("%-40s   %c   N=%12d", "Current cartesian coordinates", 'R', 9),
		fmt.Sprintf("%16.8E%16.8E%16.8E%16.8E%16.8E", 0.0, 0.0, 0.0, 0.0, 0.0),
		fmt.Sprintf("%16.8E%16.8E%16.8E%16.8E", 1.8, 1.7, 0.0, -0.5),
	}
	return strings.Join(lines, "\n") + "\n"
}

func outputText(end string) string {
	var lines []string
	for _, mark := range []string{"NO", "YES"} {
		lines = append(lines, gausslog.ConvergenceHeader)
		lines = append(lines,
			fmt.Sprintf(" Maximum Force            0.000100     0.000450     %s", mark),
			fmt.Sprintf(" RMS Force                0.000050     0.000300     %s", mark),
			fmt.Sprintf(" Maximum Displacement     0.001000     0.001800     %s", mark),
			fmt.Sprintf(" RMS Displacement         0.000500     0.001200     %s", mark))
	}
	lines = append(lines, end)
	return strings.Join(lines, "\n") + "\n"
}

const ccdata = `{"method": "from the reader", "homos": [4], "moenergies": [[-20.2, -1.2, -0.6, -0.4, -0.3, 0.5, 0.6]],
"metadata": {"methods": ["HF"], "basis_set": "STO-3G", "symmetry_detected": "C2V", "cpu_time": ["0:00:01.500000", "0:00:00.500000"]},
"moments": [[0, 0, 0], [0, 3, 4]], "scfenergies": [-2040.0]}`

func writeCalc(Te *testing.T, end string) string {
	dir := Te.TempDir()
	require.NoError(Te, os.WriteFile(filepath.Join(dir, FchkFile), []byte(fchkText()), 0o644))
	require.NoError(Te, os.WriteFile(filepath.Join(dir, OutputFile), []byte(outputText(end)), 0o644))
	require.NoError(Te, os.WriteFile(filepath.Join(dir, DataFile), []byte(ccdata), 0o644))
	return dir
}

func TestResults(Te *testing.T) {
	dir := writeCalc(Te, " Normal termination of Gaussian 16 at Sun Oct 18.")
	R, err := Results(dir, "HF")
	require.NoError(Te, err)
	assert.True(Te, R.Success)
	assert.Equal(Te, "HF/RHF/STO-3G", R.Model)
	m, _ := R.Record.String("method")
	assert.Equal(Te, "RHF", m, "the checkpoint overwrites the log reader data")
	e, ok := R.Energy()
	assert.True(Te, ok)
	assert.Equal(Te, -74.9659, e)
	n, _ := R.Record.Int("nsteps")
	assert.Equal(Te, 3, n)
	gap, _ := R.Record.Real("E(gap)")
	assert.InDelta(Te, 0.8, gap, 1e-12)
	cpu, _ := R.Record.String("metadata/cpu_time")
	assert.Equal(Te, "2", cpu)
	conv, _ := R.Record.Bool("Geometry Optimization Converged")
	assert.True(Te, conv)
	dip, _ := R.Record.Real("dipole_moment_magnitude")
	assert.InDelta(Te, 5.0, dip, 1e-12)
	_, err = os.Stat(filepath.Join(dir, SuccessFile))
	assert.NoError(Te, err)

	g := NewGaussianHandle()
	g.SetWorkDir(dir)
	g.SetMethod("HF")
	energy, err := g.Energy()
	require.NoError(Te, err)
	assert.Equal(Te, -74.9659, energy)
	mol, err := g.OptimizedGeometry()
	require.NoError(Te, err)
	assert.Equal(Te, 3, mol.Len())
	x, _, _ := mol.Coord(2)
	assert.InDelta(Te, 1.7*gauss.Bohr2A, x, 1e-7)
}

func TestResultsFailed(Te *testing.T) {
	dir := writeCalc(Te, " Error termination via Lnk1e in l103.exe")
	g := NewGaussianHandle()
	g.SetWorkDir(dir)
	R, err := g.Results()
	require.NoError(Te, err)
	assert.False(Te, R.Success)
	require.NotNil(Te, R.Log)
	_, err = os.Stat(filepath.Join(dir, SuccessFile))
	assert.True(Te, os.IsNotExist(err))
	energy, err := g.Energy()
	assert.True(Te, errors.Is(err, ErrProbableProblem))
	assert.Equal(Te, -74.9659, energy)
	mol, err := g.OptimizedGeometry()
	assert.True(Te, errors.Is(err, ErrProbableProblem))
	assert.NotNil(Te, mol)

	//no files at all: an empty record
	R, err = Results(Te.TempDir(), "HF")
	require.NoError(Te, err)
	assert.False(Te, R.Success)
	assert.Empty(Te, R.Record)
}

func TestResultsEmptyTranscript(Te *testing.T) {
	dir := writeCalc(Te, "")
	require.NoError(Te, os.WriteFile(filepath.Join(dir, OutputFile), []byte("\n\n"), 0o644))
	R, err := Results(dir, "HF")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, gauss.ErrMalformedLog))
	require.NotNil(Te, R, "the data from the other files is kept")
	assert.False(Te, R.Success)
	assert.Equal(Te, "HF/RHF/STO-3G", R.Model)
	e, _ := R.Record.Real("Total Energy")
	assert.Equal(Te, -74.9659, e)
	_, err = os.Stat(filepath.Join(dir, SuccessFile))
	assert.True(Te, os.IsNotExist(err))

	g := NewGaussianHandle()
	g.SetWorkDir(dir)
	_, err = g.Energy()
	assert.True(Te, errors.Is(err, gauss.ErrMalformedLog))
}

func TestModel(Te *testing.T) {
	assert.Equal(Te, "CBS-4", Model(gauss.Record{"Composite/model": gauss.String("CBS-4"), "method": gauss.String("x")}))
	assert.Equal(Te, "RB3LYP/6-31G(d)", Model(gauss.Record{"method": gauss.String("RB3LYP"), "basis": gauss.String("6-31G(d)")}))
}

func TestReports(Te *testing.T) {
	T := &gausslog.Trajectory{Steps: 2}
	for i, c := range gausslog.Criteria {
		T.Values[c] = []float64{0.1, 0.01}
		T.Thresholds[c] = 0.001 * float64(i+1)
		T.HasThr[c] = true
	}
	var b bytes.Buffer
	require.NoError(Te, ConvergenceReport(&b, T))
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(Te, lines, 7)
	assert.Equal(Te, "Convergence", strings.TrimSpace(lines[0]))
	assert.Contains(Te, lines[1], "Maximum Displacement")
	assert.Contains(Te, lines[6], "0.004000")
	assert.Equal(Te, "The geometry optimization converged in 2 steps.", Summary(&gausslog.Trajectory{Steps: 2, Converged: true}, 0))
	assert.Equal(Te, "Warning: The geometry optimization did not converge in 7 steps.", Summary(T, 7))

	b.Reset()
	rec := gauss.Record{"E(α-homo)": gauss.Real(-0.5), "N(α-homo)": gauss.Int(5)}
	require.NoError(Te, PropertyTable(&b, rec, []string{"E(α-homo)", "N(α-homo)", "E(α-lumo)"}))
	lines = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(Te, lines, 4)
	assert.Equal(Te, "E(α-homo)  -0.500000", lines[2])
	assert.Equal(Te, "N(α-homo)          5", lines[3])
}

func TestCompressCubes(Te *testing.T) {
	dir := Te.TempDir()
	for _, n := range []string{"homo.cube", "lumo.cube", "notes.txt"} {
		require.NoError(Te, os.WriteFile(filepath.Join(dir, n), []byte("cube data\n"), 0o644))
	}
	n, err := CompressCubes(dir)
	require.NoError(Te, err)
	assert.Equal(Te, 2, n)
	lines, err := gauss.ReadLines(filepath.Join(dir, "homo.cube.gz"))
	require.NoError(Te, err)
	assert.Equal(Te, []string{"cube data"}, lines)
	_, err = os.Stat(filepath.Join(dir, "homo.cube"))
	assert.True(Te, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(Te, err)
}
