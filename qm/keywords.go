/*
 * keywords.go, part of gogauss.
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

package qm

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/gausslog"
)

var optConvergence = map[string]string{
	"":           "",
	"default":    "",
	"loose":      "Loose",
	"tight":      "Tight",
	"very tight": "VeryTight",
}

func badOption(errid, msg string) error {
	return gauss.NewError(gauss.ErrInvalidArgument, "gaussian", "", msg, nil, errid)
}

//OptKeywords returns the Opt keyword for the route line of an optimization
//of a system with natoms atoms, as in "Opt=(Tight,MaxCycles=18,Redundant)".
//It returns an empty string if no option is needed.
func OptKeywords(O OptOptions, natoms int) (string, error) {
	errid := "OptKeywords"
	sub := make([]string, 0, 4)
	conv, ok := optConvergence[strings.ToLower(O.Convergence)]
	if !ok {
		return "", badOption(errid, fmt.Sprintf("unknown geometry convergence %q", O.Convergence))
	}
	if conv != "" {
		sub = append(sub, conv)
	}
	if O.MaxCycles != "" && O.MaxCycles != "default" {
		n, err := maxCycles(O.MaxCycles, natoms)
		if err != nil {
			return "", gauss.Decorate(err, errid)
		}
		sub = append(sub, fmt.Sprintf("MaxCycles=%d", n))
	}
	switch h := O.RecalcHessian; h {
	case "every step":
		sub = append(sub, "CalcAll")
	case "at beginning":
		sub = append(sub, "CalcFC")
	case "HF at beginning":
		sub = append(sub, "CalcHFFC")
	case "never", "":
	default:
		if _, err := strconv.Atoi(h); err != nil {
			return "", badOption(errid, fmt.Sprintf("unknown Hessian recalculation %q", h))
		}
		sub = append(sub, "RecalcFC="+h)
	}
	switch c := O.Coordinates; {
	case strings.Contains(c, "GIC"):
		sub = append(sub, "GIC")
	case c == "redundant" || c == "":
		sub = append(sub, "Redundant")
	case c == "cartesian":
		sub = append(sub, "Cartesian")
	default:
		return "", badOption(errid, fmt.Sprintf("don't recognize optimization coordinates %q", c))
	}
	switch len(sub) {
	case 0:
		return "", nil
	case 1:
		return "Opt=" + sub[0], nil
	}
	return "Opt=(" + strings.Join(sub, ",") + ")", nil
}

//maxCycles evaluates expressions like "6*nAtoms" or "100".
func maxCycles(expr string, natoms int) (int, error) {
	errid := "maxCycles"
	e := strings.ReplaceAll(expr, "nAtoms", strconv.Itoa(natoms))
	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, e)
	if err != nil || tv.Value == nil {
		return 0, gauss.NewError(gauss.ErrInvalidArgument, "gaussian", "", fmt.Sprintf("can't evaluate max geometry steps %q", expr), err, errid)
	}
	v := constant.ToInt(tv.Value)
	if v.Kind() != constant.Int {
		return 0, badOption(errid, fmt.Sprintf("max geometry steps %q is not an integer", expr))
	}
	n, exact := constant.Int64Val(v)
	if !exact || n < 1 {
		return 0, badOption(errid, fmt.Sprintf("max geometry steps %q is not a positive integer", expr))
	}
	return int(n), nil
}

//RouteKeywords assembles the keywords of the route line for Q. Composite
//methods (CBS and Gn families) take no basis set.
func RouteKeywords(Q *Calc, natoms int) ([]string, error) {
	var kw []string
	method := Q.Method
	if Q.Basis != "" && !gausslog.IsCBS(method) && !gausslog.IsGn(method) {
		method += "/" + Q.Basis
	}
	kw = append(kw, method)
	if Q.Optimize {
		opt, err := OptKeywords(Q.Opt, natoms)
		if err != nil {
			return nil, gauss.Decorate(err, "RouteKeywords")
		}
		if opt == "" {
			opt = "Opt"
		}
		kw = append(kw, opt)
	}
	kw = append(kw, Q.Others...)
	return kw, nil
}
