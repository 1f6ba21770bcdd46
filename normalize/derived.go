/*
 * derived.go, part of gogauss.
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

package normalize

import (
	"log/slog"
	"unicode/utf8"

	gauss "github.com/rmera/gogauss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"
)

// SpinLabels are the labels used in frontier-orbital keys for the two spin
// channels of open-shell systems.
var SpinLabels = [2]string{"α", "β"}

// Frontier adds the HOMO/LUMO fields derived from "homos", "moenergies"
// and, if present, "mosyms". For closed-shell systems (one HOMO index) the
// keys are "E(homo)", "E(lumo)", "E(gap)" and so on. For open-shell ones
// (two indexes) each key carries the spin label, as in "E(α-homo)". Fields
// that would fall outside the orbital arrays are not written.
func Frontier(rec gauss.Record) {
	homos, ok := rec.Ints("homos")
	if !ok || !rec.Has("moenergies") {
		return
	}
	energies, _ := rec.Get("moenergies")
	syms, hasSyms := rec.Get("mosyms")
	if len(homos) == 2 {
		for i, letter := range SpinLabels {
			frontierChannel(rec, i, homos[i], letter+"-", energies, syms, hasSyms)
		}
		return
	}
	if len(homos) != 1 {
		slog.Warn("unexpected number of HOMO indexes", "homos", homos)
		return
	}
	frontierChannel(rec, 0, homos[0], "", energies, syms, hasSyms)
}

// channel returns row i of v, which is a list of sequences, one per spin
// channel.
func channel(v gauss.Value, i int) (gauss.Value, bool) {
	if v.Kind() != gauss.KindList {
		return gauss.Value{}, false
	}
	return v.Index(i)
}

func frontierChannel(rec gauss.Record, i, homo int, prefix string, energies, syms gauss.Value, hasSyms bool) {
	row, ok := channel(energies, i)
	var Es []float64
	if ok {
		Es, ok = row.AsReals()
	}
	if !ok {
		slog.Warn("no orbital energies for spin channel", "channel", i)
		return
	}
	if homo < 0 || homo >= len(Es) {
		slog.Debug("HOMO index out of range", "channel", i, "homo", homo, "orbitals", len(Es))
		return
	}
	rec.Set("N("+prefix+"homo)", gauss.Int(homo+1))
	rec.Set("E("+prefix+"homo)", gauss.Real(Es[homo]))
	if homo > 0 {
		rec.Set("E("+prefix+"homo-1)", gauss.Real(Es[homo-1]))
	}
	if homo+1 < len(Es) {
		rec.Set("E("+prefix+"lumo)", gauss.Real(Es[homo+1]))
		rec.Set("E("+prefix+"gap)", gauss.Real(Es[homo+1]-Es[homo]))
	} else {
		slog.Debug("no LUMO", "channel", i, "homo", homo, "orbitals", len(Es))
	}
	if homo+2 < len(Es) {
		rec.Set("E("+prefix+"lumo+1)", gauss.Real(Es[homo+2]))
	}
	if !hasSyms {
		return
	}
	row, ok = channel(syms, i)
	var labels []string
	if ok {
		labels, ok = row.AsStrings()
	}
	if !ok || homo >= len(labels) {
		slog.Debug("no orbital symmetries for spin channel", "channel", i)
		return
	}
	rec.Set("Sym("+prefix+"homo)", gauss.String(labels[homo]))
	if homo > 0 {
		rec.Set("Sym("+prefix+"homo-1)", gauss.String(labels[homo-1]))
	}
	if homo+1 < len(labels) {
		rec.Set("Sym("+prefix+"lumo)", gauss.String(labels[homo+1]))
	}
	if homo+2 < len(labels) {
		rec.Set("Sym("+prefix+"lumo+1)", gauss.String(labels[homo+2]))
	}
}

// MomentNames are the record keys for the elements of "moments", by rank.
// Element 0 is the reference point.
var MomentNames = []string{"multipole_reference", "dipole_moment", "quadrupole_moment", "octapole_moment", "hexadecapole_moment"}

// Moments splits "moments" into one field per rank, adds the dipole
// magnitude as "dipole_moment_magnitude", and removes "moments".
func Moments(rec gauss.Record) {
	v, ok := rec.Get("moments")
	if !ok {
		return
	}
	if v.Kind() != gauss.KindList || v.Len() < 2 {
		slog.Warn("moments have an unexpected shape", "kind", v.Kind().String(), "len", v.Len())
		return
	}
	for i := 0; i < v.Len() && i < len(MomentNames); i++ {
		m, _ := v.Index(i)
		rec.Set(MomentNames[i], m)
	}
	dipole, _ := v.Index(1)
	if d, ok := dipole.AsReals(); ok {
		rec.Set("dipole_moment_magnitude", gauss.Real(floats.Norm(d, 2)))
	} else {
		slog.Warn("dipole moment is not a vector", "kind", dipole.Kind().String())
	}
	rec.Delete("moments")
}

// CapitalizeKeys are the descriptive fields whose values are capitalized.
var CapitalizeKeys = []string{"metadata/symmetry_detected", "metadata/symmetry_used"}

// Capitalize upper-cases the first letter and lower-cases the rest of the
// values of the CapitalizeKeys, as in "C2V" -> "C2v".
func Capitalize(rec gauss.Record) {
	for _, key := range CapitalizeKeys {
		s, ok := rec.String(key)
		if !ok {
			continue
		}
		rec.Set(key, gauss.String(capitalize(s)))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	//Casers are stateful, so they are not shared.
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
