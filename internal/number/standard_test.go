// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStandard(t *testing.T) {
	testCases := []struct {
		v      Value
		format string
		want   string
	}{
		// D
		{IntValue(123, 32), "D5", "00123"},
		{IntValue(-123, 32), "D", "-123"},
		{IntValue(0, 32), "D0", "0"},
		{IntValue(math.MinInt64, 64), "D", "-9223372036854775808"},
		{UintValue(math.MaxUint64, 64), "D22", "0018446744073709551615"},
		{Int128Value(math.MaxInt64, math.MaxUint64), "D", "170141183460469231731687303715884105727"},
		{Int128Value(math.MinInt64, 0), "D", "-170141183460469231731687303715884105728"},

		// X
		{IntValue(255, 32), "X", "FF"},
		{IntValue(255, 32), "x4", "00ff"},
		{IntValue(0, 32), "X", "0"},
		{IntValue(-1, 8), "x", "ff"},
		{IntValue(-1, 32), "X", "FFFFFFFF"},
		{IntValue(-1, 64), "X", "FFFFFFFFFFFFFFFF"},
		{IntValue(-2, 16), "X8", "0000FFFE"},
		{Int128Value(math.MaxInt64, math.MaxUint64), "X", "7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
		{Int128Value(-1, math.MaxUint64), "x", "ffffffffffffffffffffffffffffffff"},

		// E
		{FloatValue(12345.6789, 64), "E", "1.234568E+004"},
		{FloatValue(12345.6789, 64), "e2", "1.23e+004"},
		{FloatValue(-0.000123, 64), "E3", "-1.230E-004"},
		{IntValue(0, 32), "E", "0.000000E+000"},
		{IntValue(12345, 32), "E0", "1E+004"},
		{FloatValue(math.MaxFloat64, 64), "E0", "2E+308"},
		{FloatValue(math.MaxFloat64, 64), "E16", "1.7976931348623157E+308"},
		{FloatValue(math.MaxFloat64, 64), "E17", "1.79769313486231570E+308"},

		// F
		{FloatValue(1234.567, 64), "F", "1234.57"},
		{FloatValue(1234.567, 64), "F0", "1235"},
		{FloatValue(-0.001, 64), "F2", "0.00"},
		{IntValue(-42, 32), "F1", "-42.0"},
		{FloatValue(2.5, 64), "F0", "3"},

		// G
		{FloatValue(1.15, 64), "G2", "1.2"},
		{FloatValue(1.15, 64), "G17", "1.1499999999999999"},
		{FloatValue(1.05, 64), "G2", "1.1"},
		{FloatValue(0.0001, 64), "G", "0.0001"},
		{FloatValue(0.00001, 64), "G", "1E-05"},
		{FloatValue(1e14, 64), "G", "100000000000000"},
		{FloatValue(1e15, 64), "G", "1E+15"},
		{FloatValue(1e15, 64), "G16", "1000000000000000"},
		{FloatValue(2.5, 64), "G1", "3"},
		{FloatValue(9.5, 64), "G1", "1E+01"},
		{FloatValue(0.5, 64), "G1", "0.5"},
		{FloatValue(math.Copysign(0, -1), 64), "G", "0"},
		{FloatValue(0.1, 64), "G", "0.1"},
		{FloatValue(-1.5e-10, 64), "g", "-1.5e-10"},
		{FloatValue(123456789, 64), "G0", "123456789"},
		{IntValue(12345, 32), "G", "12345"},
		{IntValue(12345, 32), "G3", "1.23E+04"},
		{IntValue(12345, 32), "g3", "1.23e+04"},
		{UintValue(math.MaxUint64, 64), "G", "18446744073709551615"},

		// N
		{FloatValue(1234567.891, 64), "N", "1,234,567.89"},
		{FloatValue(-1234.5, 64), "N", "-1,234.50"},
		{IntValue(123, 32), "N0", "123"},
		{FloatValue(-0.001, 64), "N", "0.00"},

		// P
		{FloatValue(0.1234, 64), "P", "12.34 %"},
		{FloatValue(-0.5, 64), "P0", "-50 %"},
		{IntValue(12, 32), "P1", "1,200.0 %"},

		// C
		{FloatValue(1234.5, 64), "C", "¤1,234.50"},
		{FloatValue(-1234.5, 64), "C", "(¤1,234.50)"},
		{IntValue(3, 32), "C0", "¤3"},

		// R
		{FloatValue(0.1, 64), "R", "0.1"},
		{FloatValue(1e15, 64), "R", "1E+15"},
		{FloatValue(1.15, 64), "R", "1.15"},
		{FloatValue(math.MaxFloat64, 64), "R", "1.7976931348623157E+308"},
		{FloatValue(math.MaxFloat32, 32), "R", "3.4028235E+38"},
		{FloatValue(-123.25, 64), "r9", "-123.25"},

		// Specials
		{FloatValue(math.NaN(), 64), "N", "NaN"},
		{FloatValue(math.NaN(), 64), "E", "NaN"},
		{FloatValue(math.Inf(1), 64), "C", "Infinity"},
		{FloatValue(math.Inf(-1), 64), "P", "-Infinity"},
		{FloatValue(math.Inf(-1), 64), "R", "-Infinity"},
		{FloatValue(math.Inf(1), 64), "G5", "Infinity"},
	}
	for _, tc := range testCases {
		t.Run(tc.format+"/"+tc.want, func(t *testing.T) {
			got, err := Format(Parse(tc.format), tc.v, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatStandardMaxFloatFixed(t *testing.T) {
	got, err := Format(Parse("F"), FloatValue(math.MaxFloat64, 64), nil)
	require.NoError(t, err)
	want := "179769313486232" + strings.Repeat("0", 294) + ".00"
	assert.Equal(t, want, got)
}

func TestFormatStandardDecimal(t *testing.T) {
	testCases := []struct {
		in, format, want string
	}{
		{"1.50", "G", "1.50"},
		{"-0.0010", "G", "-0.0010"},
		{"123", "G", "123"},
		{"2.25", "F1", "2.3"},
		{"-2.25", "F1", "-2.3"},
		{"1234567.125", "N2", "1,234,567.13"},
		{"0.125", "P1", "12.5 %"},
		{"-0.004", "F2", "0.00"},
		{"123.456", "E2", "1.23E+002"},
		{"123.456", "G4", "123.5"},
	}
	for _, tc := range testCases {
		t.Run(tc.format+"/"+tc.in, func(t *testing.T) {
			got, err := Format(Parse(tc.format), mkDecValue(t, tc.in), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatStandardErrors(t *testing.T) {
	testCases := []struct {
		v      Value
		format string
		err    error
	}{
		{FloatValue(1.5, 64), "D", ErrUnsupportedForType},
		{FloatValue(1.5, 64), "X", ErrUnsupportedForType},
		{FloatValue(math.NaN(), 64), "D", ErrUnsupportedForType},
		{IntValue(1, 32), "R", ErrUnsupportedForType},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			_, err := Format(Parse(tc.format), tc.v, nil)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := Format(Parse("R"), mkDecValue(t, "1.5"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedForType)
	_, err = Format(Parse("D"), mkDecValue(t, "1"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedForType)
}

func TestRoundTrip(t *testing.T) {
	spec := Parse("R")

	check64 := func(x float64) {
		t.Helper()
		s, err := Format(spec, FloatValue(x, 64), nil)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)
		if math.Float64bits(x) != math.Float64bits(y) {
			t.Errorf("R(%b) = %q reads back as %b", x, s, y)
		}
	}
	check32 := func(x float32) {
		t.Helper()
		s, err := Format(spec, FloatValue(float64(x), 32), nil)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(s, 32)
		require.NoError(t, err, s)
		if math.Float32bits(x) != math.Float32bits(float32(y)) {
			t.Errorf("R(%b) = %q reads back as %b", x, s, float32(y))
		}
	}

	for _, x := range []float64{
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		0x1p-1022,
		math.Nextafter(0x1p-1022, 0),
		1,
		0.1,
		1e15,
		1e16,
		123456789012345680,
	} {
		check64(x)
		check64(-x)
	}
	for _, x := range []float32{
		math.SmallestNonzeroFloat32,
		math.MaxFloat32,
		0x1p-126,
		math.Nextafter32(0x1p-126, 0),
		1,
		0.1,
		16777216,
	} {
		check32(x)
		check32(-x)
	}

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20000; i++ {
		x := math.Float64frombits(r.Uint64())
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			continue
		}
		check64(x)
	}
	for i := 0; i < 20000; i++ {
		x := math.Float32frombits(r.Uint32())
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) || x == 0 {
			continue
		}
		check32(x)
	}
}

func TestGroupSizes(t *testing.T) {
	testCases := []struct {
		sizes  []int
		v      Value
		format string
		want   string
	}{
		{[]int{1, 2, 3}, FloatValue(2555666.65, 64), "N", "2,555,66,6.65"},
		{[]int{1, 2}, IntValue(math.MinInt32, 32), "N1", "-2,14,74,83,64,8.0"},
		{[]int{1, 0}, IntValue(math.MinInt32, 32), "N1", "-214748364,8.0"},
		{[]int{9}, IntValue(math.MinInt32, 32), "N1", "-2,147483648.0"},
		{[]int{3, 2}, IntValue(123456789, 32), "N0", "12,34,56,789"},
		{nil, IntValue(123456789, 32), "N0", "123456789"},
		{[]int{0}, IntValue(123456789, 32), "N0", "123456789"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			sym := Invariant()
			sym.NumberGroupSizes = tc.sizes
			got, err := Format(Parse(tc.format), tc.v, sym)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPatterns(t *testing.T) {
	sym := Invariant()
	sym.CurrencySymbol = "$"
	v := FloatValue(-1.5, 64)

	numberWant := []string{"(1.50)", "-1.50", "- 1.50", "1.50-", "1.50 -"}
	for i, want := range numberWant {
		sym.NumberNegativePattern = i
		got, err := Format(Parse("N"), v, sym)
		require.NoError(t, err)
		assert.Equal(t, want, got, "number pattern %d", i)
	}

	currencyPos := []string{"$1.50", "1.50$", "$ 1.50", "1.50 $"}
	for i, want := range currencyPos {
		sym.CurrencyPositivePattern = i
		got, err := Format(Parse("C"), FloatValue(1.5, 64), sym)
		require.NoError(t, err)
		assert.Equal(t, want, got, "currency positive pattern %d", i)
	}

	currencyNeg := []string{
		"($1.50)", "-$1.50", "$-1.50", "$1.50-", "(1.50$)", "-1.50$", "1.50-$", "1.50$-",
		"-1.50 $", "-$ 1.50", "1.50 $-", "$ 1.50-", "$ -1.50", "1.50- $", "($ 1.50)", "(1.50 $)",
	}
	for i, want := range currencyNeg {
		sym.CurrencyNegativePattern = i
		got, err := Format(Parse("C"), v, sym)
		require.NoError(t, err)
		assert.Equal(t, want, got, "currency negative pattern %d", i)
	}

	percentPos := []string{"150.00 %", "150.00%", "%150.00", "% 150.00"}
	for i, want := range percentPos {
		sym.PercentPositivePattern = i
		got, err := Format(Parse("P"), FloatValue(1.5, 64), sym)
		require.NoError(t, err)
		assert.Equal(t, want, got, "percent positive pattern %d", i)
	}

	percentNeg := []string{
		"-150.00 %", "-150.00%", "-%150.00", "%-150.00", "%150.00-", "150.00-%",
		"150.00%-", "-% 150.00", "150.00 %-", "% 150.00-", "% -150.00", "150.00- %",
	}
	for i, want := range percentNeg {
		sym.PercentNegativePattern = i
		got, err := Format(Parse("P"), v, sym)
		require.NoError(t, err)
		assert.Equal(t, want, got, "percent negative pattern %d", i)
	}
}

func TestValidateSymbols(t *testing.T) {
	require.NoError(t, Invariant().Validate())

	for name, mutate := range map[string]func(s *Symbols){
		"number pattern":   func(s *Symbols) { s.NumberNegativePattern = 5 },
		"currency pattern": func(s *Symbols) { s.CurrencyNegativePattern = 16 },
		"percent pattern":  func(s *Symbols) { s.PercentPositivePattern = -1 },
		"digits":           func(s *Symbols) { s.NumberDecimalDigits = -2 },
		"zero size":        func(s *Symbols) { s.NumberGroupSizes = []int{3, 0, 2} },
		"large size":       func(s *Symbols) { s.PercentGroupSizes = []int{10} },
	} {
		t.Run(name, func(t *testing.T) {
			s := Invariant()
			mutate(s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSymbols)
		})
	}
}

func TestFormatRejectsInvalidSymbols(t *testing.T) {
	testCases := []struct {
		format string
		mutate func(s *Symbols)
	}{
		{"N", func(s *Symbols) { s.NumberNegativePattern = 7 }},
		{"C", func(s *Symbols) { s.CurrencyPositivePattern = 4 }},
		{"C", func(s *Symbols) { s.CurrencyNegativePattern = -1 }},
		{"P", func(s *Symbols) { s.PercentNegativePattern = 12 }},
		{"F", func(s *Symbols) { s.NumberDecimalDigits = 100 }},
		{"#,##0", func(s *Symbols) { s.NumberGroupSizes = []int{0, 3} }},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			s := Invariant()
			tc.mutate(s)
			b, err := Append([]byte("x"), Parse(tc.format), IntValue(-1, 32), s)
			assert.ErrorIs(t, err, ErrInvalidSymbols)
			assert.Equal(t, "x", string(b))
		})
	}
}

func TestInvariantIsNotShared(t *testing.T) {
	s := Invariant()
	s.NumberGroupSizes[0] = 2
	s.NegativeSign = "~"
	assert.Equal(t, []int{3}, Invariant().NumberGroupSizes)
	assert.Equal(t, "-", Invariant().NegativeSign)
}
