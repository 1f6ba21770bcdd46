/*
 * units.go, part of gogauss.
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

//Package units converts between byte counts and the human readable
//sizes used in Gaussian input decks and configuration files, such as
//"800 MB" or "2 GiB".
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	gauss "github.com/rmera/gogauss"
)

var siPrefixes = []string{"", "k", "M", "G", "T", "P"}
var binPrefixes = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi"}

var multipliers = map[string]float64{
	"":   1,
	"k":  1e3,
	"M":  1e6,
	"G":  1e9,
	"T":  1e12,
	"P":  1e15,
	"Ki": 1024,
	"Mi": 1024 * 1024,
	"Gi": 1024 * 1024 * 1024,
	"Ti": 1024 * 1024 * 1024 * 1024,
	"Pi": 1024 * 1024 * 1024 * 1024 * 1024,
}

func invalid(errid, msg string) error {
	return gauss.NewError(gauss.ErrInvalidArgument, "units", "", msg, nil, errid)
}

// Humanize scales amount to the first prefix for which the scaled value is
// below 10*base, and returns the truncated integer followed by the prefix
// and the suffix, as in 1253656 -> "1224KiB". base must be 1000 or 1024.
func Humanize(amount float64, suffix string, base int) (string, error) {
	var prefixes []string
	switch base {
	case 1000:
		prefixes = siPrefixes
	case 1024:
		prefixes = binPrefixes
	default:
		return "", invalid("Humanize", fmt.Sprintf("base must be 1000 or 1024, not %d", base))
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return "", invalid("Humanize", fmt.Sprintf("amount %v", amount))
	}
	kilo := float64(base)
	for i, p := range prefixes {
		if amount < 10*kilo || i == len(prefixes)-1 {
			return strconv.FormatInt(int64(amount), 10) + p + suffix, nil
		}
		amount /= kilo
	}
	panic("unreachable")
}

// Dehumanize is the inverse of Humanize. text is "<number> <prefix><suffix>",
// for instance "800 MB" or "1.5 GiB", and the number of units is returned,
// truncated. A bare number is returned as it is. The space between the
// number and the unit may be omitted.
func Dehumanize(text, suffix string) (int64, error) {
	errid := "Dehumanize"
	fields := strings.Fields(text)
	var num, unit string
	switch len(fields) {
	case 1:
		num, unit = splitNumber(fields[0])
	case 2:
		num, unit = fields[0], fields[1]
	default:
		return 0, invalid(errid, fmt.Sprintf("can't interpret %q", text))
	}
	amount, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, invalid(errid, fmt.Sprintf("can't interpret %q", text))
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, invalid(errid, fmt.Sprintf("amount in %q must be a finite, non-negative number", text))
	}
	if unit == "" && len(fields) == 1 {
		return int64(amount), nil
	}
	if !strings.HasSuffix(unit, suffix) {
		return 0, invalid(errid, fmt.Sprintf("unit in %q does not end in %q", text, suffix))
	}
	mult, ok := multipliers[strings.TrimSuffix(unit, suffix)]
	if !ok {
		return 0, invalid(errid, fmt.Sprintf("unknown unit %q", unit))
	}
	return int64(amount * mult), nil
}

// splitNumber splits a token like "800MB" in its numeric and unit parts.
func splitNumber(tok string) (string, string) {
	i := strings.IndexFunc(tok, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E')
	})
	if i < 0 {
		return tok, ""
	}
	return tok[:i], tok[i:]
}
