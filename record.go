/*
 * record.go, part of gogauss.
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
	"fmt"
	"sort"
)

// Record is the flat result table of a calculation. Keys coming from
// nested data are joined with a slash, as in "metadata/basis_set".
type Record map[string]Value

func NewRecord() Record {
	return make(Record)
}

func (R Record) Set(key string, v Value) {
	R[key] = v
}

// SetAny converts x with ValueOf and stores it under key.
func (R Record) SetAny(key string, x any) error {
	v, err := ValueOf(x)
	if err != nil {
		return fmt.Errorf("Record.SetAny %q: %w", key, err)
	}
	R[key] = v
	return nil
}

func (R Record) Get(key string) (Value, bool) {
	v, ok := R[key]
	return v, ok
}

func (R Record) Has(key string) bool {
	_, ok := R[key]
	return ok
}

func (R Record) Delete(key string) {
	delete(R, key)
}

// Keys returns the keys of the record, sorted.
func (R Record) Keys() []string {
	keys := make([]string, 0, len(R))
	for k := range R {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies every key of src into R, overwriting keys R already had,
// and returns R.
func (R Record) Merge(src Record) Record {
	for k, v := range src {
		R[k] = v
	}
	return R
}

func (R Record) Real(key string) (float64, bool) {
	v, ok := R[key]
	if !ok {
		return 0, false
	}
	return v.AsReal()
}

func (R Record) Int(key string) (int, bool) {
	v, ok := R[key]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

func (R Record) Bool(key string) (bool, bool) {
	v, ok := R[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

func (R Record) String(key string) (string, bool) {
	v, ok := R[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (R Record) Reals(key string) ([]float64, bool) {
	v, ok := R[key]
	if !ok {
		return nil, false
	}
	return v.AsReals()
}

func (R Record) Ints(key string) ([]int, bool) {
	v, ok := R[key]
	if !ok {
		return nil, false
	}
	return v.AsInts()
}

func (R Record) Strings(key string) ([]string, bool) {
	v, ok := R[key]
	if !ok {
		return nil, false
	}
	return v.AsStrings()
}
