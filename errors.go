/*
 * errors.go, part of gogauss.
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

import (
	"errors"
	"strings"
)

//The error taxonomy. Every *Error unwraps to one of these, so callers
//can use errors.Is.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrMalformedCheckpoint = errors.New("malformed checkpoint")
	ErrMalformedLog        = errors.New("malformed log")
	ErrMissingFile         = errors.New("missing file")
)

// Decorator is implemented by errors that can collect the names of the
// functions they pass through on the way up.
type Decorator interface {
	error
	Decorate(string) []string
}

// Error is the general error type for this library. It carries the kind of
// error (one of the Err* variables), the format and file involved, a
// message, an optional underlying cause, and a decoration slice with the
// calling stack.
type Error struct {
	kind     error
	format   string //"fchk", "log", "units", etc.
	filename string //the input file with problems, or empty string if none.
	message  string
	err      error
	deco     []string
	critical bool
}

// NewError builds a critical *Error. caller is the first decoration.
func NewError(kind error, format, filename, message string, cause error, caller string) *Error {
	E := &Error{kind: kind, format: format, filename: filename, message: message, err: cause, critical: true}
	if caller != "" {
		E.deco = []string{caller}
	}
	return E
}

func (E *Error) Error() string {
	var b strings.Builder
	if E.format != "" {
		b.WriteString(E.format)
		b.WriteString(" ")
	}
	if E.filename != "" {
		b.WriteString("file ")
		b.WriteString(E.filename)
		b.WriteString(" ")
	}
	if b.Len() > 0 {
		b.WriteString("error: ")
	}
	if E.kind != nil {
		b.WriteString(E.kind.Error())
	}
	if E.message != "" {
		b.WriteString(": ")
		b.WriteString(E.message)
	}
	if E.err != nil {
		b.WriteString(": ")
		b.WriteString(E.err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause.
func (E *Error) Unwrap() []error {
	ret := make([]error, 0, 2)
	if E.kind != nil {
		ret = append(ret, E.kind)
	}
	if E.err != nil {
		ret = append(ret, E.err)
	}
	return ret
}

// Decorate adds new information to the error and returns the resulting
// decoration slice. An empty string just returns the current one.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file associated to the error.
func (E *Error) FileName() string { return E.filename }

// Format returns the format of the file associated to the error.
func (E *Error) Format() string { return E.format }

// Critical returns true if the error is critical, false otherwise.
func (E *Error) Critical() bool { return E.critical }

// SetFileName sets the file name in err if err is an *Error that doesn't
// have one yet. It returns err.
func SetFileName(err error, filename string) error {
	var E *Error
	if errors.As(err, &E) && E.filename == "" {
		E.filename = filename
	}
	return err
}

// Decorate adds caller to the decoration slice of err if err (or
// something it wraps) implements Decorator. It returns err unchanged
// otherwise.
func Decorate(err error, caller string) error {
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
