/*
 * gausslog_test.go, part of gogauss.
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gauss "github.com/rmera/gogauss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var citation = []string{
	" Cite this work as:",
	" Gaussian 09, Revision E.01,",
	" M. J. Frisch, G. W. Trucks, H. B. Schlegel, G. E. Scuseria,",
	"",
	" ******************************************",
	" Gaussian 09:  EM64M-G09RevE.01 30-Nov-2015",
	"                 2-Apr-2021",
	" ******************************************",
}

var cbsBlock = []string{
	" Complete Basis Set (CBS) Extrapolation:",
	" M. R. Nyden and G. A. Petersson, JCP 75, 1843 (1981)",
	" G. A. Petersson and M. A. Al-Laham, JCP 94, 6081 (1991)",
	"",
	" Temperature=               298.150000 Pressure=                       1.000000",
	" E(ZPE)=                      0.050496 E(Thermal)=                     0.053508",
	" E(SCF)=                    -78.059017 DE(MP2)=                       -0.281841",
	" DE(CBS)=                    -0.071189 DE(MP34)=                      -0.024136",
	" DE(Int)=                     0.021229 DE(Empirical)=                 -0.075463",
	" CBS-4 (0 K)=               -78.439921 CBS-4 Energy=                 -78.436908",
	" CBS-4 Enthalpy=            -78.435964 CBS-4 Free Energy=            -78.460753",
}

var g4Block = []string{
	"",
	" Temperature=              298.150000 Pressure=                      1.000000",
	" E(ZPE)=                     0.050251 E(Thermal)=                    0.053306",
	" E(CCSD(T))=               -78.321715 E(Empiric)=                   -0.041682",
	" DE(Plus)=                  -0.005930 DE(2DF)=                      -0.076980",
	" E(Delta-G3XP)=             -0.117567 DE(HF)=                       -0.008255",
	" G4(0 K)=                  -78.521880 G4 Energy=                   -78.518825",
	" G4 Enthalpy=              -78.517880 G4 Free Energy=              -78.542752",
	"",
}

func table(vals [4]float64, marks [4]string) []string {
	ret := []string{ConvergenceHeader}
	thr := [4]float64{0.00045, 0.0003, 0.0018, 0.0012}
	for i, c := range Criteria {
		ret = append(ret, fmt.Sprintf(" %-20s %12.6f %12.6f     %s", c.String(), vals[i], thr[i], marks[i]))
	}
	return ret
}

func optLog(lastRMSForce string) []string {
	lines := append([]string{" Entering Gaussian System"}, citation...)
	lines = append(lines, table([4]float64{0.02, 0.01, 0.1, 0.05}, [4]string{"NO", "NO", "NO", "NO"})...)
	lines = append(lines, " Predicted change in Energy=-1.0D-03")
	lines = append(lines, table([4]float64{0.002, 0.001, 0.01, 0.005}, [4]string{"NO", "NO", "NO", "NO"})...)
	lines = append(lines, table([4]float64{0.0001, 0.00005, 0.001, 0.0005}, [4]string{"YES", lastRMSForce, "YES", "YES"})...)
	lines = append(lines, " Normal termination of Gaussian 09 at Fri Apr  2 10:00:00 2021.")
	return lines
}

func TestTermination(Te *testing.T) {
	L, err := Parse(optLog("YES"), "B3LYP")
	require.NoError(Te, err)
	assert.True(Te, L.Success)

	lines := optLog("YES")
	lines = append(lines, " Error termination via Lnk1e")
	L, err = Parse(lines, "B3LYP")
	require.NoError(Te, err)
	assert.False(Te, L.Success)

	_, err = Parse(nil, "B3LYP")
	assert.True(Te, errors.Is(err, gauss.ErrMalformedLog))
	_, err = Parse([]string{"", "  "}, "B3LYP")
	assert.True(Te, errors.Is(err, gauss.ErrMalformedLog))
}

func TestVersion(Te *testing.T) {
	L, err := Parse(optLog("YES"), "B3LYP")
	require.NoError(Te, err)
	require.NotNil(Te, L.Version)
	assert.Equal(Te, "G09", L.Version.Version)
	assert.Equal(Te, "E.01", L.Version.Revision)
	assert.Equal(Te, "Nov", L.Version.Month)
	assert.Equal(Te, "2015", L.Version.Year)
	rec := L.Record()
	v, _ := rec.String("G version")
	assert.Equal(Te, "G09", v)

	//a broken version line is not an error
	lines := optLog("YES")
	lines[6] = " Gaussian 09 something"
	L, err = Parse(lines, "B3LYP")
	require.NoError(Te, err)
	assert.Nil(Te, L.Version)
	assert.False(Te, L.Record().Has("G version"))
}

func TestTrajectory(Te *testing.T) {
	L, err := Parse(optLog("YES"), "B3LYP")
	require.NoError(Te, err)
	T := L.Trajectory
	require.NotNil(Te, T)
	assert.Equal(Te, 3, T.Steps)
	assert.True(Te, T.Converged)
	assert.True(Te, T.Consistent())
	assert.Zero(Te, T.Skipped)
	for _, c := range Criteria {
		assert.Len(Te, T.Series(c), 3)
	}
	assert.Equal(Te, []float64{0.02, 0.002, 0.0001}, T.Series(MaxForce))

	L, err = Parse(optLog("NO"), "B3LYP")
	require.NoError(Te, err)
	assert.False(Te, L.Trajectory.Converged)
	for _, c := range Criteria {
		assert.Len(Te, L.Trajectory.Series(c), 3)
	}
	rec := L.Record()
	conv, ok := rec.Bool("Geometry Optimization Converged")
	assert.True(Te, ok)
	assert.False(Te, conv)
	last, _ := rec.Real("RMS Force")
	assert.Equal(Te, 0.00005, last)
	thr, _ := rec.Real("Maximum Displacement Threshold")
	assert.Equal(Te, 0.0018, thr)
	traj, _ := rec.Reals("RMS Displacement Trajectory")
	assert.Len(Te, traj, 3)
}

func TestTrajectorySkippedRows(Te *testing.T) {
	lines := optLog("YES")
	for i, l := range lines {
		if strings.HasPrefix(l, " RMS Force") {
			lines[i] = " Predicted change in Energy=-1.0D-03"
			break
		}
	}
	L, err := Parse(lines, "B3LYP")
	require.NoError(Te, err)
	assert.Equal(Te, 1, L.Trajectory.Skipped)
	assert.False(Te, L.Trajectory.Consistent())
	assert.Len(Te, L.Trajectory.Series(RMSForce), 2)
	assert.Len(Te, L.Trajectory.Series(MaxForce), 3)
}

func TestTrajectoryCutShort(Te *testing.T) {
	lines := table([4]float64{0.02, 0.01, 0.1, 0.05}, [4]string{"NO", "NO", "NO", "NO"})
	last := table([4]float64{0.0001, 0.00005, 0.001, 0.0005}, [4]string{"YES", "YES", "YES", "YES"})
	lines = append(lines, last[:2]...) //the run was killed here
	L, err := Parse(lines, "B3LYP")
	require.NoError(Te, err)
	assert.False(Te, L.Success)
	T := L.Trajectory
	require.NotNil(Te, T)
	assert.Equal(Te, 2, T.Steps)
	assert.Equal(Te, 3, T.Skipped)
	assert.False(Te, T.Converged)
	assert.False(Te, T.Consistent())
	conv, ok := L.Record().Bool("Geometry Optimization Converged")
	assert.True(Te, ok)
	assert.False(Te, conv)

	//a table followed right away by the next one
	lines = append(table([4]float64{0.02, 0.01, 0.1, 0.05}, [4]string{"YES", "YES", "NO", "NO"})[:2], last...)
	L, err = Parse(lines, "B3LYP")
	require.NoError(Te, err)
	assert.Equal(Te, 2, L.Trajectory.Steps)
	assert.Equal(Te, 3, L.Trajectory.Skipped)
	assert.True(Te, L.Trajectory.Converged, "the header of the next table is not read as a row")
	assert.Len(Te, L.Trajectory.Series(RMSDisplacement), 1)
}

func TestNoTrajectory(Te *testing.T) {
	L, err := Parse([]string{" SCF Done", " Normal termination of Gaussian 16"}, "HF")
	require.NoError(Te, err)
	assert.Nil(Te, L.Trajectory)
	assert.Nil(Te, L.Composite)
	assert.False(Te, L.Record().Has("Geometry Optimization Converged"))
}

func compositeLog() []string {
	lines := append([]string{" Entering Gaussian System"}, g4Block...)
	lines = append(lines, " Some text between blocks")
	lines = append(lines, cbsBlock...)
	lines = append(lines, "", " Normal termination of Gaussian 16")
	return lines
}

func TestCBS(Te *testing.T) {
	L, err := Parse(compositeLog(), "CBS-4")
	require.NoError(Te, err)
	C := L.Composite
	require.NotNil(Te, C)
	assert.Equal(Te, "CBS", C.Family)
	assert.Equal(Te, "CBS-4", C.Model)
	assert.Equal(Te, []string{
		"M. R. Nyden and G. A. Petersson, JCP 75, 1843 (1981)",
		"G. A. Petersson and M. A. Al-Laham, JCP 94, 6081 (1991)",
	}, C.Citations)
	rec := L.Record()
	for key, want := range map[string]float64{
		"Composite/Temperature":   298.15,
		"Composite/DE(CBS)":       -0.071189,
		"Composite/DE(Empirical)": -0.075463,
		"Composite/(0 K)":         -78.439921,
		"Composite/Energy":        -78.436908,
		"Composite/Enthalpy":      -78.435964,
		"Composite/Free Energy":   -78.460753,
		"Total Energy":            -78.460753,
	} {
		got, ok := rec.Real(key)
		assert.True(Te, ok, key)
		assert.Equal(Te, want, got, key)
	}
	assert.False(Te, rec.Has("Composite/E(CCSD(T))"))
	assert.False(Te, rec.Has("Composite/E(empirical)"))
	summary, _ := rec.String("Composite/summary")
	assert.True(Te, strings.HasPrefix(summary, " Complete Basis Set"))

	//CBS-4M prints CBS-4
	L, err = Parse(compositeLog(), "CBS-4M")
	require.NoError(Te, err)
	require.NotNil(Te, L.Composite)
	assert.Equal(Te, "CBS-4", L.Composite.Model)
}

func TestGn(Te *testing.T) {
	L, err := Parse(compositeLog(), "G4")
	require.NoError(Te, err)
	C := L.Composite
	require.NotNil(Te, C)
	assert.Equal(Te, "Gn", C.Family)
	assert.Nil(Te, C.Citations)
	rec := L.Record()
	for key, want := range map[string]float64{
		"Composite/E(CCSD(T))":    -78.321715,
		"Composite/E(empirical)":  -0.041682,
		"Composite/E(Delta-G3XP)": -0.117567,
		"Composite/(0 K)":         -78.52188,
		"Composite/Free Energy":   -78.542752,
		"Total Energy":            -78.542752,
	} {
		got, ok := rec.Real(key)
		assert.True(Te, ok, key)
		assert.Equal(Te, want, got, key)
	}
	assert.False(Te, rec.Has("Composite/DE(CBS)"))
	assert.False(Te, rec.Has("citations"))
	summary, _ := rec.String("Composite/summary")
	assert.True(Te, strings.HasPrefix(summary, strings.Repeat(" ", 20)+"G4 composite method extrapolation\n\n Temperature="))

	L, err = Parse(compositeLog(), "B3LYP")
	require.NoError(Te, err)
	assert.Nil(Te, L.Composite)
}

func TestTailBlock(Te *testing.T) {
	lines := []string{"a", "stop", "b", "anchor", "c", "anchor 2", "d"}
	isStop := func(s string) bool { return s == "stop" }
	block, ok := TailBlock(lines, "anchor", isStop, true)
	require.True(Te, ok)
	assert.Equal(Te, []string{"stop", "b", "anchor", "c", "anchor 2"}, block)
	block, _ = TailBlock(lines, "anchor", isStop, false)
	assert.Equal(Te, []string{"b", "anchor", "c", "anchor 2"}, block)
	block, _ = TailBlock(lines, "b", func(string) bool { return false }, false)
	assert.Equal(Te, []string{"a", "stop", "b"}, block)
	_, ok = TailBlock(lines, "nothere", isStop, true)
	assert.False(Te, ok)
}

func TestParseFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "output.txt")
	require.NoError(Te, os.WriteFile(name, []byte(strings.Join(optLog("YES"), "\n")+"\n"), 0o644))
	L, err := ParseFile(name, "B3LYP")
	require.NoError(Te, err)
	assert.True(Te, L.Success)
	_, err = ParseFile(filepath.Join(Te.TempDir(), "nothere.txt"), "B3LYP")
	assert.True(Te, errors.Is(err, gauss.ErrMissingFile))
}
