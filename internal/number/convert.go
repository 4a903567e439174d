// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shogo82148/int128"
	"gopkg.in/inf.v0"
)

// Mode selects how the Digit Generator truncates a value.
type Mode uint8

const (
	Fixed       Mode = iota // Digits counts fraction digits
	Exponential             // Digits counts significant digits
	RoundTrip               // shortest digits that read back to the same float
	Hex                     // base-16 digits of the two's complement bit pattern
)

// Significant digits kept from a binary float before any requested rounding
// is applied. A request for more precision widens the budget by at most
// roundTripExtra digits.
const (
	float64Digits  = 15
	float32Digits  = 7
	decimalDigits  = 29
	roundTripExtra = 2

	// exactDigits is enough digits after the point to print any float64
	// exactly in scientific notation.
	exactDigits = 767

	maxIntDigits = 40
)

// A Request describes the digits asked of the Digit Generator.
type Request struct {
	Mode Mode

	// Digits is the number of fraction digits (Fixed) or significant digits
	// (Exponential) to round to. A negative value leaves the digits as
	// converted.
	Digits int

	// Scale multiplies the value by 10^Scale before rounding.
	Scale int

	// Budget is the number of significant digits kept from a binary float
	// before rounding. Zero selects the default for the float's size and a
	// negative value selects the shortest round-trip digits.
	Budget int
}

// Generate converts v to a sequence of decimal digits as described by r.
// Integer and fixed-point values convert exactly.
func Generate(v Value, r Request) (Decimal, error) {
	var d Decimal
	switch r.Mode {
	case Hex:
		if v.kind != Integer {
			return d, fmt.Errorf("%w: hexadecimal requires an integer, got %v", ErrUnsupportedForType, v.kind)
		}
		d.convertHex(v.twosComplement())
		return d, nil
	case RoundTrip:
		if v.kind != Binary {
			return d, fmt.Errorf("%w: round-trip requires a float, got %v", ErrUnsupportedForType, v.kind)
		}
		d.ConvertFloat(v.f, v.Size(), -1)
		return d, nil
	}

	switch v.kind {
	case Integer:
		d.ConvertInt(v.neg, v.mag)
	case FixedPoint:
		x := v.dec
		if r.Scale != 0 {
			x = new(inf.Dec).SetUnscaledBig(x.UnscaledBig()).SetScale(x.Scale() - inf.Scale(r.Scale))
		}
		if r.Mode == Fixed && r.Digits >= 0 && x.Scale() > inf.Scale(r.Digits) {
			x = new(inf.Dec).Round(x, inf.Scale(r.Digits), inf.RoundHalfUp)
		}
		d.ConvertDec(x)
		if r.Mode == Fixed {
			return d, nil
		}
		r.Scale = 0
	case Binary:
		budget := r.Budget
		if budget == 0 {
			budget = v.defaultDigits()
		}
		d.ConvertFloat(v.f, v.Size(), budget)
	}

	d = d.Shift(r.Scale)
	if r.Digits >= 0 {
		switch r.Mode {
		case Fixed:
			d = d.RoundFraction(r.Digits)
		case Exponential:
			d = d.RoundSignificant(r.Digits)
		}
	}
	return d, nil
}

// ConvertInt converts an integer magnitude and sign to decimals.
func (d *Decimal) ConvertInt(neg bool, x int128.Uint128) {
	*d = Decimal{Neg: neg}
	if x.H == 0 {
		d.fillIntDigits(x.L)
	} else {
		d.fillWideDigits(x)
	}
	d.Exp = int32(len(d.Digits))
	trim(d)
	if len(d.Digits) == 0 {
		d.Neg = false
	}
}

func (d *Decimal) fillIntDigits(x uint64) {
	var buf [maxIntDigits]byte
	i := len(buf)
	for ; x > 0; x /= 10 {
		i--
		buf[i] = byte(x % 10)
	}
	d.Digits = append(d.Digits[:0], buf[i:]...)
}

// fillWideDigits converts x in chunks of 19 decimal digits.
func (d *Decimal) fillWideDigits(x int128.Uint128) {
	const chunk = 1e19
	var buf [maxIntDigits]byte
	i := len(buf)
	ten19 := int128.Uint128{L: chunk}
	for x.H != 0 {
		var r int128.Uint128
		x, r = x.DivMod(ten19)
		lo := r.L
		for j := 0; j < 19; j++ {
			i--
			buf[i] = byte(lo % 10)
			lo /= 10
		}
	}
	for lo := x.L; lo > 0; lo /= 10 {
		i--
		buf[i] = byte(lo % 10)
	}
	d.Digits = append(d.Digits[:0], buf[i:]...)
	d.normalizeLeading()
}

func (d *Decimal) normalizeLeading() {
	b := d.Digits
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	d.Digits = b
}

// ConvertDec converts a fixed-point decimal to decimals.
func (d *Decimal) ConvertDec(x *inf.Dec) {
	*d = Decimal{}
	u := x.UnscaledBig()
	if u.Sign() == 0 {
		return
	}
	d.Neg = u.Sign() < 0
	s := new(big.Int).Abs(u).String()
	d.Digits = make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		d.Digits[i] = s[i] - '0'
	}
	d.Exp = int32(len(s)) - int32(x.Scale())
	trim(d)
}

// ConvertFloat converts a floating point number to decimals. The exact
// binary value is rounded half away from zero to budget significant digits;
// a negative budget yields the shortest digits that parse back to x.
func (d *Decimal) ConvertFloat(x float64, size, budget int) {
	*d = Decimal{}
	if math.IsNaN(x) {
		d.NaN = true
		return
	}
	abs := x
	if x < 0 {
		d.Neg = true
		abs = -x
	}
	if math.IsInf(abs, 1) {
		d.Inf = true
		return
	}
	if abs == 0 {
		d.Neg = false
		return
	}

	var b []byte
	if budget < 0 {
		b = strconv.AppendFloat(make([]byte, 0, 32), abs, 'e', -1, size)
	} else {
		// A float32 widens to float64 exactly, so the exact expansion is the
		// same for both sizes.
		b = strconv.AppendFloat(make([]byte, 0, exactDigits+8), abs, 'e', exactDigits, 64)
	}
	d.parseScientific(b)
	if budget > 0 {
		d.round(budget)
	}
}

// parseScientific reads digits of the form d.ddde±xx as produced by strconv.
func (d *Decimal) parseScientific(b []byte) {
	k := 0
	i := 0
	for ; i < len(b); i++ {
		c := b[i]
		if c == '.' {
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		b[k] = c - '0'
		k++
	}
	exp := 0
	if i < len(b) {
		neg := b[i+1] == '-'
		for i += 2; i < len(b); i++ {
			exp = exp*10 + int(b[i]-'0')
		}
		if neg {
			exp = -exp
		}
	}
	d.Digits = b[:k]
	d.Exp = int32(exp) + 1
	d.normalize()
}

// convertHex sets d to the base-16 digits of x.
func (d *Decimal) convertHex(x int128.Uint128) {
	*d = Decimal{}
	var buf [32]byte
	i := len(buf)
	for _, w := range [2]uint64{x.L, x.H} {
		for j := 0; j < 16; j++ {
			i--
			buf[i] = byte(w & 0xf)
			w >>= 4
		}
	}
	d.Digits = append(d.Digits, buf[:]...)
	d.normalizeLeading()
	d.Exp = int32(len(d.Digits))
}
