// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number formats numeric values with standard format strings such as
// "N2" or "X8" and with custom pictures such as "#,##0.00;(#,##0.00)".
//
// Formatting is driven by a set of culture-specific Symbols. A nil *Symbols
// selects the invariant culture; see package culture for others.
//
//	s, err := number.Format(number.Float64(1234.5), "C", nil) // "¤1,234.50"
package number // import "github.com/corefmt/numfmt/number"

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"gopkg.in/inf.v0"

	"github.com/corefmt/numfmt/internal/number"
)

// A Value is a number to be formatted: an integer of up to 128 bits, an
// arbitrary-precision decimal or a binary float.
type Value = number.Value

// Symbols holds the culture-specific strings and layout choices used when
// formatting.
type Symbols = number.Symbols

var (
	// ErrUnsupportedForType is returned when a format letter does not apply
	// to the kind of value, such as D or X for a float or R for an integer.
	ErrUnsupportedForType = number.ErrUnsupportedForType

	// ErrInvalidFormat is returned by package message for a malformed
	// composite format string.
	ErrInvalidFormat = number.ErrInvalidFormat

	// ErrInvalidSymbols is returned when Symbols fail validation.
	ErrInvalidSymbols = number.ErrInvalidSymbols

	// ErrUnsupportedValue is returned by Of for Go values that are not
	// numbers and by ParseDecimal for malformed input.
	ErrUnsupportedValue = errors.New("number: unsupported value")
)

// Invariant returns a copy of the culture-independent symbols.
func Invariant() *Symbols { return number.Invariant() }

// Format returns v formatted according to format using sym. An empty format
// is equivalent to "G".
func Format(v Value, format string, sym *Symbols) (string, error) {
	return number.Format(parse(format), v, sym)
}

// Append appends v formatted according to format to dst. On error dst is
// returned unchanged.
func Append(dst []byte, v Value, format string, sym *Symbols) ([]byte, error) {
	return number.Append(dst, parse(format), v, sym)
}

func Int8(x int8) Value   { return number.IntValue(int64(x), 8) }
func Int16(x int16) Value { return number.IntValue(int64(x), 16) }
func Int32(x int32) Value { return number.IntValue(int64(x), 32) }
func Int64(x int64) Value { return number.IntValue(x, 64) }
func Int(x int) Value     { return number.IntValue(int64(x), strconv.IntSize) }

func Uint8(x uint8) Value   { return number.UintValue(uint64(x), 8) }
func Uint16(x uint16) Value { return number.UintValue(uint64(x), 16) }
func Uint32(x uint32) Value { return number.UintValue(uint64(x), 32) }
func Uint64(x uint64) Value { return number.UintValue(x, 64) }
func Uint(x uint) Value     { return number.UintValue(uint64(x), strconv.IntSize) }

// Int128 returns the signed 128-bit integer with the two's complement bit
// pattern hi<<64 | lo.
func Int128(hi int64, lo uint64) Value { return number.Int128Value(hi, lo) }

// Uint128 returns the unsigned 128-bit integer hi<<64 | lo.
func Uint128(hi, lo uint64) Value { return number.Uint128Value(hi, lo) }

func Float32(x float32) Value { return number.FloatValue(float64(x), 32) }
func Float64(x float64) Value { return number.FloatValue(x, 64) }

// Decimal returns a fixed-point Value. The scale of x is kept, so 1.50
// formats as "1.50" under G.
func Decimal(x *inf.Dec) Value {
	if x == nil {
		return number.DecValue(nil)
	}
	return number.DecValue(new(inf.Dec).Set(x))
}

// ParseDecimal parses a decimal literal such as "-12.340" into a fixed-point
// Value.
func ParseDecimal(s string) (Value, error) {
	x, ok := new(inf.Dec).SetString(s)
	if !ok {
		return Value{}, fmt.Errorf("%w: invalid decimal literal %q", ErrUnsupportedValue, s)
	}
	return number.DecValue(x), nil
}

var (
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	mask64     = new(big.Int).SetUint64(1<<64 - 1)
)

// Of returns the Value for a Go number. It accepts the built-in integer and
// float types, Value, *inf.Dec and *big.Int in the 128-bit range.
func Of(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case int:
		return Int(x), nil
	case int8:
		return Int8(x), nil
	case int16:
		return Int16(x), nil
	case int32:
		return Int32(x), nil
	case int64:
		return Int64(x), nil
	case uint:
		return Uint(x), nil
	case uint8:
		return Uint8(x), nil
	case uint16:
		return Uint16(x), nil
	case uint32:
		return Uint32(x), nil
	case uint64:
		return Uint64(x), nil
	case uintptr:
		return Uint(uint(x)), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float64(x), nil
	case *inf.Dec:
		if x == nil {
			break
		}
		return Decimal(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return ofBigInt(x)
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
}

func ofBigInt(x *big.Int) (Value, error) {
	switch {
	case x.Cmp(minInt128) >= 0 && x.Cmp(maxInt128) <= 0:
		// Two's complement in 128 bits.
		m := new(big.Int).Set(x)
		if m.Sign() < 0 {
			m.Add(m, new(big.Int).Lsh(big.NewInt(1), 128))
		}
		lo := new(big.Int).And(m, mask64).Uint64()
		hi := new(big.Int).Rsh(m, 64).Uint64()
		return Int128(int64(hi), lo), nil
	case x.Sign() > 0 && x.Cmp(maxUint128) <= 0:
		lo := new(big.Int).And(x, mask64).Uint64()
		hi := new(big.Int).Rsh(x, 64).Uint64()
		return Uint128(hi, lo), nil
	}
	return Value{}, fmt.Errorf("%w: %v does not fit in 128 bits", ErrUnsupportedValue, x)
}
