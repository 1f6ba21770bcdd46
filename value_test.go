/*
 * value_test.go, part of gogauss.
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
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConversions(Te *testing.T) {
	v := Int(3)
	r, ok := v.AsReal()
	assert.True(Te, ok)
	assert.Equal(Te, 3.0, r)
	_, ok = v.AsString()
	assert.False(Te, ok)

	rs, ok := Ints([]int{1, 2}).AsReals()
	require.True(Te, ok)
	assert.Equal(Te, []float64{1, 2}, rs)

	s, ok := List(nil).AsStrings()
	assert.True(Te, ok)
	assert.Empty(Te, s)
	assert.True(Te, KindList.IsSequence())
	assert.False(Te, KindReal.IsSequence())
}

func TestValueOf(Te *testing.T) {
	cases := []struct {
		in   any
		kind Kind
	}{
		{1, KindInt},
		{2.5, KindReal},
		{true, KindBool},
		{"x", KindString},
		{[]any{1, 2}, KindInts},
		{[]any{1, 2.5}, KindReals},
		{[]any{"a", "b"}, KindStrings},
		{[]any{[]any{1.0}, []any{2.0}}, KindList},
		{json.Number("7"), KindInt},
		{json.Number("7.5"), KindReal},
		{[]float64{1}, KindReals},
	}
	for _, c := range cases {
		v, err := ValueOf(c.in)
		require.NoError(Te, err)
		assert.Equal(Te, c.kind, v.Kind(), "%v", c.in)
	}
	_, err := ValueOf(map[string]any{})
	assert.Error(Te, err)
}

func TestValueJSON(Te *testing.T) {
	b, err := json.Marshal(map[string]Value{"a": Real(math.NaN()), "b": Ints([]int{1})})
	require.NoError(Te, err)
	assert.JSONEq(Te, `{"a":null,"b":[1]}`, string(b))
}

func TestRecord(Te *testing.T) {
	R := NewRecord()
	R.Set("b", Real(1.5))
	require.NoError(Te, R.SetAny("a", []any{1, 2, 3}))
	assert.Equal(Te, []string{"a", "b"}, R.Keys())
	ints, ok := R.Ints("a")
	assert.True(Te, ok)
	assert.Equal(Te, []int{1, 2, 3}, ints)
	other := Record{"b": String("x")}
	R.Merge(other)
	s, ok := R.String("b")
	assert.True(Te, ok)
	assert.Equal(Te, "x", s)
	R.Delete("a")
	assert.False(Te, R.Has("a"))
}
