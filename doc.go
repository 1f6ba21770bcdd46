/*
 * doc.go, part of gogauss.
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

/*Package gauss is the main package of the goGauss library. It provides the
result record shared by the rest of the library, a minimal molecule
structure, compressed-file helpers and the error types.


	**goGauss Capabilities**

    Parses Gaussian formatted checkpoint (fchk) files into a flat record
	(package fchk).

    Parses Gaussian logs: termination, program version, geometry
	optimization convergence and CBS/Gn composite-method summaries
	(package gausslog).

    Normalizes the nested data produced by external log readers, adding
	frontier-orbital and multipole quantities (package normalize).

    Parses and formats human-readable memory sizes (package units).

    Builds input decks for, runs, and collects results from Gaussian
	(package qm).

    Plots the convergence of geometry optimizations (package chemplot).

The command gogauss exposes all of the above from the command line.

*/
package gauss
