/*
 * molecule.go, part of gogauss.
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

package gauss

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Bohr2A converts bohr to angstrom.
const Bohr2A = 0.529177210903

// Molecule is the minimal structure needed to write a Gaussian input
// deck or to return an optimized geometry.
type Molecule struct {
	Name    string
	Charge  int
	Multi   int
	Symbols []string
	Coords  *mat.Dense //natoms x 3, in angstrom
}

// NewMolecule builds a molecule with the given symbols and coordinates
// (one row of 3 values per atom). Charge is 0 and multiplicity 1.
func NewMolecule(symbols []string, coords []float64) (*Molecule, error) {
	if len(coords) != 3*len(symbols) {
		return nil, NewError(ErrInvalidArgument, "", "", fmt.Sprintf("%d atoms but %d coordinates", len(symbols), len(coords)), nil, "NewMolecule")
	}
	M := &Molecule{Symbols: symbols, Multi: 1}
	if len(symbols) > 0 {
		M.Coords = mat.NewDense(len(symbols), 3, coords)
	}
	return M, nil
}

func (M *Molecule) Len() int { return len(M.Symbols) }

// Coord returns the coordinates of atom i.
func (M *Molecule) Coord(i int) (x, y, z float64) {
	return M.Coords.At(i, 0), M.Coords.At(i, 1), M.Coords.At(i, 2)
}

// XYZFileRead reads the first frame of an xyz file (possibly compressed).
func XYZFileRead(name string) (*Molecule, error) {
	r, err := OpenFile(name)
	if err != nil {
		return nil, Decorate(err, "XYZFileRead")
	}
	defer r.Close()
	mol, err := XYZRead(r)
	if err != nil {
		return nil, SetFileName(Decorate(err, "XYZFileRead"), name)
	}
	return mol, nil
}

// XYZRead reads one xyz frame from r. The comment line becomes the name
// of the molecule.
func XYZRead(r io.Reader) (*Molecule, error) {
	errid := "XYZRead"
	bad := func(msg string, err error) error {
		return NewError(ErrInvalidArgument, "xyz", "", msg, err, errid)
	}
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, bad("empty file", sc.Err())
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, bad("number of atoms", err)
	}
	if !sc.Scan() {
		return nil, bad("missing comment line", sc.Err())
	}
	name := strings.TrimSpace(sc.Text())
	symbols := make([]string, 0, natoms)
	coords := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		if !sc.Scan() {
			return nil, bad(fmt.Sprintf("expected %d atoms, found %d", natoms, i), sc.Err())
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			return nil, bad(fmt.Sprintf("atom line %d ill formed", i+1), nil)
		}
		symbols = append(symbols, fields[0])
		for _, f := range fields[1:4] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, bad(fmt.Sprintf("atom line %d", i+1), err)
			}
			coords = append(coords, c)
		}
	}
	mol, err := NewMolecule(symbols, coords)
	if err != nil {
		return nil, Decorate(err, errid)
	}
	mol.Name = name
	return mol, nil
}

// XYZWrite writes the molecule in xyz format to w.
func XYZWrite(w io.Writer, M *Molecule) error {
	if _, err := fmt.Fprintf(w, "%d\n%s\n", M.Len(), M.Name); err != nil {
		return err
	}
	for i, s := range M.Symbols {
		x, y, z := M.Coord(i)
		if _, err := fmt.Fprintf(w, "%-2s  %12.6f %12.6f %12.6f\n", s, x, y, z); err != nil {
			return err
		}
	}
	return nil
}

var elementSymbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
}

// Symbol returns the element symbol for atomic number z, or an error if
// z is out of the supported range (1-86).
func Symbol(z int) (string, error) {
	if z < 1 || z >= len(elementSymbols) {
		return "", NewError(ErrInvalidArgument, "", "", fmt.Sprintf("atomic number %d", z), nil, "Symbol")
	}
	return elementSymbols[z], nil
}

// AtomicNumber returns the atomic number for symbol, or 0 if unknown.
func AtomicNumber(symbol string) int {
	for i, s := range elementSymbols {
		if i > 0 && strings.EqualFold(s, symbol) {
			return i
		}
	}
	return 0
}
