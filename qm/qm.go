/*
 * qm.go, part of gogauss.
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
	"context"
	"errors"

	gauss "github.com/rmera/gogauss"
)

//ErrProbableProblem is returned, together with the data, when data is read
//from a calculation that did not end normally.
var ErrProbableProblem = errors.New("probable problem in calculation")

//This allows to set QM calculations using different programs.
type Handle interface {

	//Sets the name for the job, used as the title of the
	//calculation.
	SetName(name string)

	//BuildInput builds an input for the QM program based int the data in
	//mol and Q. returns only error.
	BuildInput(mol *gauss.Molecule, Q *Calc) error

	//Run runs the QM program for a calculation previously set.
	//It blocks until the program ends or ctx is cancelled.
	Run(ctx context.Context) error

	//Energy gets the last energy for a  calculation by parsing the
	//QM program's output file. Return error if fail. Also returns
	//ErrProbableProblem if there is a energy but the calculation didnt
	//end properly.
	Energy() (float64, error)

	//OptimizedGeometry reads the optimized geometry from a calculation
	//output. Returns error if fail. Returns ErrProbableProblem
	//if there is a geometry but the calculation didnt
	//end properly
	OptimizedGeometry() (*gauss.Molecule, error)
}

//Calc describes a calculation.
type Calc struct {
	Method   string
	Basis    string
	Optimize bool
	Opt      OptOptions
	Others   []string //other keywords for the route line
	//Memory is a human-readable amount, such as "2 GB". Empty, "all"
	//and "available" use the handle's default.
	Memory string
}

//OptOptions are the options of a geometry optimization. The zero value
//gives Gaussian's defaults in redundant coordinates.
type OptOptions struct {
	Convergence   string //default, loose, tight, very tight
	MaxCycles     string //default, an integer, or an expression such as 6*nAtoms
	RecalcHessian string //never, every step, at beginning, HF at beginning, or an integer
	Coordinates   string //redundant, cartesian, or generalized internal (GIC)
}

func (Q *Calc) SetDefaults() {
	Q.Opt = OptOptions{Convergence: "default", MaxCycles: "default", RecalcHessian: "never", Coordinates: "redundant"}
}
