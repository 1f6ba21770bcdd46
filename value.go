/*
 * value.go, part of gogauss.
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

package gauss

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Kind identifies which of the variants a Value holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindReal
	KindBool
	KindString
	KindInts
	KindReals
	KindStrings
	KindBools
	KindList //a sequence of sequences, such as the orbital energies per spin channel
)

var kindNames = [...]string{"invalid", "int", "real", "bool", "string", "[]int", "[]real", "[]string", "[]bool", "list"}

func (K Kind) String() string {
	if K < 0 || int(K) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(K))
	}
	return kindNames[K]
}

// IsSequence returns true for the sequence variants, including KindList.
func (K Kind) IsSequence() bool {
	return K >= KindInts
}

// Value is a closed sum type over the things a result record can hold:
// integers, reals, booleans, strings, sequences of each, and sequences
// of Values. The zero Value is invalid.
type Value struct {
	kind Kind
	i    int
	r    float64
	b    bool
	s    string
	is   []int
	rs   []float64
	ss   []string
	bs   []bool
	l    []Value
}

func Int(i int) Value { return Value{kind: KindInt, i: i} }

func Real(r float64) Value { return Value{kind: KindReal, r: r} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Ints(is []int) Value { return Value{kind: KindInts, is: is} }

func Reals(rs []float64) Value { return Value{kind: KindReals, rs: rs} }

func Strings(ss []string) Value { return Value{kind: KindStrings, ss: ss} }

func Bools(bs []bool) Value { return Value{kind: KindBools, bs: bs} }

func List(l []Value) Value { return Value{kind: KindList, l: l} }

// Kind returns the variant held by V.
func (V Value) Kind() Kind { return V.kind }

// Valid returns false for the zero Value.
func (V Value) Valid() bool { return V.kind != KindInvalid }

func (V Value) AsInt() (int, bool) {
	return V.i, V.kind == KindInt
}

// AsReal returns the value as a float64. Integers are converted.
func (V Value) AsReal() (float64, bool) {
	switch V.kind {
	case KindReal:
		return V.r, true
	case KindInt:
		return float64(V.i), true
	}
	return 0, false
}

func (V Value) AsBool() (bool, bool) {
	return V.b, V.kind == KindBool
}

func (V Value) AsString() (string, bool) {
	return V.s, V.kind == KindString
}

// emptyList is true for a KindList without elements, which can stand
// for an empty sequence of any type.
func (V Value) emptyList() bool {
	return V.kind == KindList && len(V.l) == 0
}

func (V Value) AsInts() ([]int, bool) {
	if V.emptyList() {
		return nil, true
	}
	return V.is, V.kind == KindInts
}

// AsReals returns the sequence as a slice of float64. Integer sequences are
// converted into a new slice.
func (V Value) AsReals() ([]float64, bool) {
	switch {
	case V.kind == KindReals:
		return V.rs, true
	case V.kind == KindInts:
		ret := make([]float64, len(V.is))
		for i, v := range V.is {
			ret[i] = float64(v)
		}
		return ret, true
	case V.emptyList():
		return nil, true
	}
	return nil, false
}

func (V Value) AsStrings() ([]string, bool) {
	if V.emptyList() {
		return nil, true
	}
	return V.ss, V.kind == KindStrings
}

func (V Value) AsBools() ([]bool, bool) {
	if V.emptyList() {
		return nil, true
	}
	return V.bs, V.kind == KindBools
}

func (V Value) AsList() ([]Value, bool) {
	return V.l, V.kind == KindList
}

// Len returns the number of elements of a sequence, or 0 for scalars.
func (V Value) Len() int {
	switch V.kind {
	case KindInts:
		return len(V.is)
	case KindReals:
		return len(V.rs)
	case KindStrings:
		return len(V.ss)
	case KindBools:
		return len(V.bs)
	case KindList:
		return len(V.l)
	}
	return 0
}

// Index returns the i-th element of a sequence as a Value.
func (V Value) Index(i int) (Value, bool) {
	if i < 0 || i >= V.Len() {
		return Value{}, false
	}
	switch V.kind {
	case KindInts:
		return Int(V.is[i]), true
	case KindReals:
		return Real(V.rs[i]), true
	case KindStrings:
		return String(V.ss[i]), true
	case KindBools:
		return Bool(V.bs[i]), true
	}
	return V.l[i], true
}

// Interface returns V as a plain Go value (int, float64, bool, string,
// the corresponding slices, or []any for lists).
func (V Value) Interface() any {
	switch V.kind {
	case KindInt:
		return V.i
	case KindReal:
		return V.r
	case KindBool:
		return V.b
	case KindString:
		return V.s
	case KindInts:
		return V.is
	case KindReals:
		return V.rs
	case KindStrings:
		return V.ss
	case KindBools:
		return V.bs
	case KindList:
		ret := make([]any, len(V.l))
		for i, v := range V.l {
			ret[i] = v.Interface()
		}
		return ret
	}
	return nil
}

func (V Value) String() string {
	return fmt.Sprint(V.Interface())
}

// MarshalJSON encodes the Value as its plain Go counterpart. Non-finite
// reals, which JSON can't represent, are written as null.
func (V Value) MarshalJSON() ([]byte, error) {
	switch V.kind {
	case KindReal:
		if math.IsNaN(V.r) || math.IsInf(V.r, 0) {
			return []byte("null"), nil
		}
	case KindReals:
		out := make([]Value, len(V.rs))
		for i, r := range V.rs {
			out[i] = Real(r)
		}
		return json.Marshal(out)
	case KindList:
		if V.l == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(V.l)
	}
	return json.Marshal(V.Interface())
}

// ValueOf converts a plain Go value into a Value. Numbers given as
// json.Number become integers when they parse as such. Slices are
// converted element-wise: all-integer slices become KindInts, numeric
// slices with at least one real become KindReals, homogeneous string and
// bool slices become KindStrings and KindBools, and anything else (including
// slices of slices) becomes a KindList.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(t), nil
	case int32:
		return Int(int(t)), nil
	case int64:
		return Int(int(t)), nil
	case float32:
		return Real(float64(t)), nil
	case float64:
		return Real(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(int(i)), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("ValueOf: can't parse number %q: %w", t.String(), err)
		}
		return Real(f), nil
	case []int:
		return Ints(append([]int(nil), t...)), nil
	case []float64:
		return Reals(append([]float64(nil), t...)), nil
	case []string:
		return Strings(append([]string(nil), t...)), nil
	case []bool:
		return Bools(append([]bool(nil), t...)), nil
	case []Value:
		return List(append([]Value(nil), t...)), nil
	case []any:
		return sliceOf(t)
	case nil:
		return Value{}, fmt.Errorf("ValueOf: nil value")
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return sliceOf(items)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Int(int(rv.Convert(reflect.TypeOf(int64(0))).Int())), nil
	}
	return Value{}, fmt.Errorf("ValueOf: unsupported type %T", x)
}

func sliceOf(items []any) (Value, error) {
	vals := make([]Value, len(items))
	ints, nums, strs, bools := true, true, true, true
	for i, it := range items {
		v, err := ValueOf(it)
		if err != nil {
			return Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		vals[i] = v
		ints = ints && v.kind == KindInt
		nums = nums && (v.kind == KindInt || v.kind == KindReal)
		strs = strs && v.kind == KindString
		bools = bools && v.kind == KindBool
	}
	if len(vals) == 0 {
		return List(nil), nil
	}
	switch {
	case ints:
		r := make([]int, len(vals))
		for i, v := range vals {
			r[i] = v.i
		}
		return Ints(r), nil
	case nums:
		r := make([]float64, len(vals))
		for i, v := range vals {
			r[i], _ = v.AsReal()
		}
		return Reals(r), nil
	case strs:
		r := make([]string, len(vals))
		for i, v := range vals {
			r[i] = v.s
		}
		return Strings(r), nil
	case bools:
		r := make([]bool, len(vals))
		for i, v := range vals {
			r[i] = v.b
		}
		return Bools(r), nil
	}
	return List(vals), nil
}
