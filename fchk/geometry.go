/*
 * geometry.go, part of gogauss.
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

package fchk

import (
	"fmt"

	gauss "github.com/rmera/gogauss"
)

// OptimizedGeometry builds a molecule from the "Atomic numbers" and
// "Current cartesian coordinates" arrays of a parsed checkpoint. The
// coordinates are converted from bohr to angstrom. Charge and multiplicity
// are taken from the record when present.
func OptimizedGeometry(rec gauss.Record) (*gauss.Molecule, error) {
	errid := "fchk.OptimizedGeometry"
	zs, ok := rec.Ints("Atomic numbers")
	if !ok {
		return nil, gauss.NewError(gauss.ErrMalformedCheckpoint, "fchk", "", "no atomic numbers", nil, errid)
	}
	coords, ok := rec.Reals("Current cartesian coordinates")
	if !ok || len(coords) != 3*len(zs) {
		return nil, gauss.NewError(gauss.ErrMalformedCheckpoint, "fchk", "", fmt.Sprintf("%d atoms but no matching cartesian coordinates", len(zs)), nil, errid)
	}
	symbols := make([]string, len(zs))
	for i, z := range zs {
		s, err := gauss.Symbol(z)
		if err != nil {
			return nil, gauss.Decorate(err, errid)
		}
		symbols[i] = s
	}
	ang := make([]float64, len(coords))
	copy(ang, coords)
	mol, err := gauss.NewMolecule(symbols, ang)
	if err != nil {
		return nil, gauss.Decorate(err, errid)
	}
	if mol.Coords != nil {
		mol.Coords.Scale(gauss.Bohr2A, mol.Coords)
	}
	if q, ok := rec.Int("Charge"); ok {
		mol.Charge = q
	}
	if m, ok := rec.Int("Multiplicity"); ok {
		mol.Multi = m
	}
	mol.Name, _ = rec.String("calculation")
	return mol, nil
}
