/*
 * fchk.go, part of gogauss.
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

//Package fchk reads Gaussian formatted checkpoint files into a
//gauss.Record.
package fchk

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	gauss "github.com/rmera/gogauss"
)

// Field layout of the continuation lines, per type code.
type layout struct {
	perLine int
	width   int
}

var layouts = map[byte]layout{
	'I': {6, 12},
	'R': {5, 16},
	'C': {5, 12},
	'H': {9, 8},
	'L': {72, 1},
}

// Fortran drops the E in reals with 3-digit exponents, as in 1.234567-100.
var missingExponent = regexp.MustCompile(`([0-9])-`)

var trim = strings.TrimSpace

// ReadFile parses the formatted checkpoint file name, which may be
// compressed.
func ReadFile(name string) (gauss.Record, error) {
	lines, err := gauss.ReadLines(name)
	if err != nil {
		return nil, gauss.Decorate(err, "fchk.ReadFile")
	}
	rec, err := Parse(lines)
	if err != nil {
		return nil, gauss.SetFileName(gauss.Decorate(err, "fchk.ReadFile"), name)
	}
	return rec, nil
}

// Parse reads the lines of a formatted checkpoint file. The first line
// (title) is ignored, the second gives the calculation, method and basis
// fields. Every other line declares a named scalar, inline, or an array
// that takes up the following lines.
func Parse(lines []string) (gauss.Record, error) {
	errid := "fchk.Parse"
	cur := gauss.NewLines(lines)
	rec := gauss.NewRecord()
	cur.Next() //title, maybe truncated
	line, ok := cur.Next()
	if !ok {
		return nil, malformed(cur.Pos(), "missing type line", nil, errid)
	}
	rec.Set("calculation", gauss.String(trim(readFixedField(line, 0, 10))))
	rec.Set("method", gauss.String(trim(readFixedField(line, 10, 40))))
	rec.Set("basis", gauss.String(trim(readFixedField(line, 40, 70))))
	for {
		line, ok := cur.Next()
		if !ok {
			break
		}
		if trim(line) == "" {
			continue
		}
		if len(line) < 44 {
			return nil, malformed(cur.Pos(), "directory line too short", nil, errid)
		}
		key := trim(line[0:40])
		code := line[43]
		var val gauss.Value
		var err error
		if readFixedField(line, 47, 49) == "N=" {
			val, err = readArray(cur, code, readFixedField(line, 49, 61))
		} else {
			val, err = readScalar(code, line, cur.Pos())
		}
		if err != nil {
			return nil, gauss.Decorate(fmt.Errorf("%w (key %q)", err, key), errid)
		}
		rec.Set(key, val)
	}
	slog.Debug("read formatted checkpoint", "keys", len(rec))
	return rec, nil
}

func malformed(lineno int, msg string, cause error, caller string) error {
	return gauss.NewError(gauss.ErrMalformedCheckpoint, "fchk", "", fmt.Sprintf("line %d: %s", lineno, msg), cause, caller)
}

// readFixedField returns line[start:end], clipped to the length of the line.
func readFixedField(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

// readContinuationBlock collects count raw fields of the given width from
// the lines following the cursor, perLine fields per line. It stops as soon
// as count fields are collected, so the last line may be partial.
func readContinuationBlock(cur *gauss.Lines, count, perLine, width int) ([]string, error) {
	fields := make([]string, 0, count)
	lines, ok := cur.Take((count + perLine - 1) / perLine)
	for _, line := range lines {
		for i := 0; i < perLine && len(fields) < count; i++ {
			fields = append(fields, readFixedField(line, i*width, (i+1)*width))
		}
	}
	if !ok {
		return nil, malformed(cur.Pos(), fmt.Sprintf("expected %d values, file ended after %d", count, len(fields)), nil, "readContinuationBlock")
	}
	return fields, nil
}

func readArray(cur *gauss.Lines, code byte, counttext string) (gauss.Value, error) {
	errid := "readArray"
	lay, ok := layouts[code]
	if !ok {
		return gauss.Value{}, malformed(cur.Pos(), fmt.Sprintf("unknown type code %q", code), nil, errid)
	}
	count, err := strconv.Atoi(trim(counttext))
	if err != nil || count < 0 {
		return gauss.Value{}, malformed(cur.Pos(), fmt.Sprintf("bad element count %q", counttext), err, errid)
	}
	fields, err := readContinuationBlock(cur, count, lay.perLine, lay.width)
	if err != nil {
		return gauss.Value{}, gauss.Decorate(err, errid)
	}
	switch code {
	case 'I':
		ints := make([]int, count)
		for i, f := range fields {
			if ints[i], err = strconv.Atoi(trim(f)); err != nil {
				return gauss.Value{}, malformed(cur.Pos(), fmt.Sprintf("integer %d", i), err, errid)
			}
		}
		return gauss.Ints(ints), nil
	case 'R':
		reals := make([]float64, count)
		for i, f := range fields {
			if reals[i], err = parseReal(f); err != nil {
				return gauss.Value{}, malformed(cur.Pos(), fmt.Sprintf("real %d", i), err, errid)
			}
		}
		return gauss.Reals(reals), nil
	case 'L':
		bools := make([]bool, count)
		for i, f := range fields {
			if f == "" {
				return gauss.Value{}, malformed(cur.Pos(), fmt.Sprintf("logical %d missing", i), nil, errid)
			}
			bools[i] = f == "T"
		}
		return gauss.Bools(bools), nil
	}
	//C and H
	return gauss.String(strings.TrimRight(strings.Join(fields, ""), " ")), nil
}

func readScalar(code byte, line string, lineno int) (gauss.Value, error) {
	errid := "readScalar"
	text := trim(readFixedField(line, 49, len(line)))
	switch code {
	case 'I':
		i, err := strconv.Atoi(text)
		if err != nil {
			return gauss.Value{}, malformed(lineno, "integer", err, errid)
		}
		return gauss.Int(i), nil
	case 'R':
		r, err := parseReal(text)
		if err != nil {
			return gauss.Value{}, malformed(lineno, "real", err, errid)
		}
		return gauss.Real(r), nil
	case 'C', 'H':
		return gauss.String(text), nil
	case 'L':
		return gauss.Bool(readFixedField(line, 49, 50) == "T"), nil
	}
	return gauss.Value{}, malformed(lineno, fmt.Sprintf("unknown type code %q", code), nil, errid)
}

func parseReal(field string) (float64, error) {
	return strconv.ParseFloat(missingExponent.ReplaceAllString(trim(field), "${1}E-"), 64)
}
