/*
 * lines.go, part of gogauss.
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

import "strings"

// SplitLines splits text in lines, accepting both \n and \r\n endings.
// A trailing newline does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	ret := strings.Split(text, "\n")
	for i, l := range ret {
		ret[i] = strings.TrimSuffix(l, "\r")
	}
	return ret
}

// Lines is a cursor over an indexed sequence of lines. Fixed-format readers
// use it to pull one or several lines depending on what a header just said.
type Lines struct {
	lines []string
	pos   int
}

func NewLines(lines []string) *Lines {
	return &Lines{lines: lines}
}

// Next returns the next line and advances the cursor. The boolean is false
// once the lines are exhausted.
func (L *Lines) Next() (string, bool) {
	if L.pos >= len(L.lines) {
		return "", false
	}
	l := L.lines[L.pos]
	L.pos++
	return l, true
}

// Peek returns the next line without advancing.
func (L *Lines) Peek() (string, bool) {
	if L.pos >= len(L.lines) {
		return "", false
	}
	return L.lines[L.pos], true
}

// Take returns the next n lines. If fewer than n remain, it returns what
// there is, and false.
func (L *Lines) Take(n int) ([]string, bool) {
	end := L.pos + n
	ok := true
	if end > len(L.lines) {
		end = len(L.lines)
		ok = false
	}
	ret := L.lines[L.pos:end]
	L.pos = end
	return ret, ok
}

// Pos returns the number of lines consumed so far, which is also the 1-based
// number of the last line returned.
func (L *Lines) Pos() int { return L.pos }

func (L *Lines) Len() int { return len(L.lines) }

func (L *Lines) Done() bool { return L.pos >= len(L.lines) }
