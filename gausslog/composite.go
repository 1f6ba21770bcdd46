/*
 * composite.go, part of gogauss.
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
	"log/slog"
	"strconv"
	"strings"

	gauss "github.com/rmera/gogauss"
)

// Composite is the energy summary printed at the end of a composite-method
// calculation.
type Composite struct {
	Family    string //"CBS" or "Gn"
	Model     string
	Energies  []Energy //in the order printed
	Citations []string
	Summary   string
}

// Energy is one component of a composite summary, in hartree, except for
// temperature and pressure.
type Energy struct {
	Name  string
	Value float64
}

// Get returns the value of the component called name.
func (C *Composite) Get(name string) (float64, bool) {
	for _, e := range C.Energies {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

// CBSModels maps the method names a user may request to the model name
// Gaussian prints in the CBS summary.
var CBSModels = map[string]string{
	"CBS-4M":   "CBS-4",
	"CBS-4":    "CBS-4",
	"CBS-QB3":  "CBS-QB3",
	"CBS-APNO": "CBS-APNO",
}

// IsCBS returns true if method belongs to the CBS family.
func IsCBS(method string) bool {
	return strings.HasPrefix(method, "CBS-")
}

// IsGn returns true if method belongs to the G1-G4 family.
func IsGn(method string) bool {
	if len(method) < 2 {
		return false
	}
	switch method[:2] {
	case "G1", "G2", "G3", "G4":
		return true
	}
	return false
}

// CBS block:
//
//	Complete Basis Set (CBS) Extrapolation:
//	M. R. Nyden and G. A. Petersson, JCP 75, 1843 (1981)
//	...
//
//	Temperature=               298.150000 Pressure=                       1.000000
//	E(ZPE)=                      0.050496 E(Thermal)=                     0.053508
//	...
//	CBS-4 Enthalpy=            -78.435964 CBS-4 Free Energy=            -78.460753
func parseCBS(lines []string, method string) *Composite {
	model, ok := CBSModels[method]
	if !ok {
		model = method
	}
	block, ok := TailBlock(lines, model+" Enthalpy=", func(s string) bool { return con(s, "Complete Basis Set") }, true)
	if !ok {
		return nil
	}
	C := &Composite{Family: "CBS", Model: model, Summary: strings.Join(block, "\n")}
	cur := gauss.NewLines(block)
	cur.Next() //header
	for {
		line, ok := cur.Next()
		if !ok || trim(line) == "" {
			break
		}
		C.Citations = append(C.Citations, trim(line))
	}
	for {
		line, ok := cur.Next()
		if !ok {
			break
		}
		C.readPairs(line, 40, 37, nil)
	}
	return C
}

// Gn block, which has no header:
//
//	Temperature=              298.150000 Pressure=                      1.000000
//	E(ZPE)=                     0.050251 E(Thermal)=                    0.053306
//	...
//	G4 Enthalpy=              -78.517880 G4 Free Energy=              -78.542752
func parseGn(lines []string, method string) *Composite {
	model := method[:2]
	block, ok := TailBlock(lines, model+" Enthalpy=", func(s string) bool { return trim(s) == "" }, false)
	if !ok {
		return nil
	}
	C := &Composite{Family: "Gn", Model: model}
	C.Summary = strings.Repeat(" ", 20) + model + " composite method extrapolation\n\n" + strings.Join(block, "\n")
	for _, line := range block {
		C.readPairs(line, 36, 36, gnSynonyms)
	}
	return C
}

var gnSynonyms = map[string]string{"E(Empiric)": "E(empirical)"}

// readPairs reads the key=value pairs of a summary line. Lines longer than
// maxlen hold two pairs, in [0:split] and [split+1:]. The model name is
// removed from keys that start with it.
func (C *Composite) readPairs(line string, maxlen, split int, synonyms map[string]string) {
	line = trim(line)
	parts := []string{line}
	if len(line) > maxlen {
		parts = []string{line[:split], line[split+1:]}
	}
	for _, p := range parts {
		key, val, found := strings.Cut(p, "=")
		if !found {
			continue
		}
		key = trim(key)
		v, err := strconv.ParseFloat(trim(val), 64)
		if err != nil {
			slog.Warn("unreadable composite energy", "model", C.Model, "key", key, "value", trim(val))
			continue
		}
		if strings.HasPrefix(key, C.Model) {
			key = trim(strings.TrimPrefix(key, C.Model))
		} else if syn, ok := synonyms[key]; ok {
			key = syn
		}
		C.Energies = append(C.Energies, Energy{Name: key, Value: v})
	}
}

func (C *Composite) addTo(rec gauss.Record) {
	if C.Citations != nil {
		rec.Set("citations", gauss.Strings(C.Citations))
	}
	for _, e := range C.Energies {
		rec.Set("Composite/"+e.Name, gauss.Real(e.Value))
	}
	rec.Set("Composite/model", gauss.String(C.Model))
	rec.Set("Composite/summary", gauss.String(C.Summary))
	if g, ok := C.Get("Free Energy"); ok {
		rec.Set("Total Energy", gauss.Real(g))
	} else {
		slog.Warn("composite summary without free energy", "model", C.Model)
	}
}
