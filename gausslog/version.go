/*
 * version.go, part of gogauss.
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
	"fmt"
	"strings"

	gauss "github.com/rmera/gogauss"
)

// Version is the program version printed in the citation block, as in
//
//	Gaussian 09:  EM64M-G09RevE.01 30-Nov-2015
type Version struct {
	Version  string //"G09"
	Revision string //"E.01"
	Month    string
	Year     string
}

// parseVersion returns nil and no error when there is no citation block.
func parseVersion(lines []string) (*Version, error) {
	cur := gauss.NewLines(lines)
	for {
		line, ok := cur.Next()
		if !ok {
			return nil, nil
		}
		if con(line, "Cite this work") {
			break
		}
	}
	for {
		line, ok := cur.Next()
		if !ok {
			return nil, nil
		}
		if con(line, "**********************") {
			break
		}
	}
	line, ok := cur.Next()
	if !ok || !con(line, "Gaussian") {
		return nil, nil
	}
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("version line %q: expected 4 fields, got %d", trim(line), len(fields))
	}
	date := strings.Split(fields[3], "-")
	if len(date) != 3 {
		return nil, fmt.Errorf("version line %q: can't read date", trim(line))
	}
	_, rev, found := strings.Cut(fields[2], "Rev")
	if !found {
		return nil, fmt.Errorf("version line %q: no revision", trim(line))
	}
	return &Version{
		Version:  "G" + strings.Trim(fields[1], ":"),
		Revision: rev,
		Month:    date[1],
		Year:     date[2],
	}, nil
}

func (V *Version) addTo(rec gauss.Record) {
	rec.Set("G version", gauss.String(V.Version))
	rec.Set("G revision", gauss.String(V.Revision))
	rec.Set("G month", gauss.String(V.Month))
	rec.Set("G year", gauss.String(V.Year))
}

func (V *Version) String() string {
	return fmt.Sprintf("Gaussian %s revision %s (%s %s)", V.Version, V.Revision, V.Month, V.Year)
}
