// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"

	"github.com/shogo82148/int128"
	"gopkg.in/inf.v0"
)

// Kind identifies the representation of a Value.
type Kind uint8

const (
	Integer    Kind = iota // exact integer up to 128 bits
	FixedPoint             // exact decimal with a scale
	Binary                 // IEEE-754 binary floating point
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case FixedPoint:
		return "decimal"
	case Binary:
		return "float"
	}
	return "unknown"
}

// A Value is a number to be formatted. The zero Value is the int32 zero.
// A Value is immutable once constructed.
type Value struct {
	kind   Kind
	neg    bool
	signed bool
	size   uint8 // native bit width, 0 means 32

	mag int128.Uint128 // Integer magnitude
	dec *inf.Dec       // FixedPoint value
	f   float64        // Binary value; float32 values are stored exactly
}

// IntValue returns a signed integer Value of the given bit size.
func IntValue(x int64, size int) Value {
	v := Value{kind: Integer, signed: true, size: uint8(size)}
	if x < 0 {
		v.neg = true
		v.mag = int128.Uint128{L: uint64(-x)}
	} else {
		v.mag = int128.Uint128{L: uint64(x)}
	}
	return v
}

// UintValue returns an unsigned integer Value of the given bit size.
func UintValue(x uint64, size int) Value {
	return Value{kind: Integer, size: uint8(size), mag: int128.Uint128{L: x}}
}

// Int128Value returns the signed 128-bit integer hi<<64 | lo.
func Int128Value(hi int64, lo uint64) Value {
	v := Value{kind: Integer, signed: true, size: 128}
	m := int128.Uint128{H: uint64(hi), L: lo}
	if hi < 0 {
		v.neg = true
		m = negate(m)
	}
	v.mag = m
	return v
}

// Uint128Value returns the unsigned 128-bit integer hi<<64 | lo.
func Uint128Value(hi, lo uint64) Value {
	return Value{kind: Integer, size: 128, mag: int128.Uint128{H: hi, L: lo}}
}

// FloatValue returns a binary floating-point Value. Size is 32 or 64; a value
// of size 32 must be exactly representable as a float32.
func FloatValue(x float64, size int) Value {
	if size != 32 {
		size = 64
	}
	return Value{kind: Binary, size: uint8(size), f: x, neg: math.Signbit(x) && !math.IsNaN(x)}
}

// DecValue returns a fixed-point Value. A nil x is zero.
func DecValue(x *inf.Dec) Value {
	if x == nil {
		x = new(inf.Dec)
	}
	return Value{kind: FixedPoint, size: 128, dec: x, neg: x.Sign() < 0}
}

// Kind reports the representation of v.
func (v Value) Kind() Kind { return v.kind }

// Size reports the native bit width of v.
func (v Value) Size() int {
	if v.size == 0 {
		return 32
	}
	return int(v.size)
}

// negate returns the two's complement of m.
func negate(m int128.Uint128) int128.Uint128 {
	return int128.Uint128{H: ^m.H, L: ^m.L}.Add(int128.Uint128{L: 1})
}

// twosComplement returns the bit pattern of an Integer Value in its native
// width.
func (v Value) twosComplement() int128.Uint128 {
	m := v.mag
	if v.neg {
		m = negate(m)
	}
	switch size := v.Size(); {
	case size >= 128:
	case size == 64:
		m.H = 0
	default:
		m.H = 0
		m.L &= 1<<uint(size) - 1
	}
	return m
}

// defaultDigits returns the number of significant digits used by G when no
// precision is given, following the native type.
func (v Value) defaultDigits() int {
	switch v.kind {
	case Binary:
		if v.size == 32 {
			return float32Digits
		}
		return float64Digits
	case FixedPoint:
		return decimalDigits
	}
	switch v.Size() {
	case 8:
		return 3
	case 16:
		return 5
	case 64:
		if v.signed {
			return 19
		}
		return 20
	case 128:
		return 39
	}
	return 10
}
