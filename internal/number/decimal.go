// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// A Decimal represents a number as a sequence of decimal digits.
// Digits represents a number [0, 1.0), and the absolute value represented by
// Decimal is Digits * 10^Exp. Leading and trailing zeros are omitted, so a
// zero value has no digits.
//
// Examples:
//
//	Number     Decimal
//	12345      Digits: [1, 2, 3, 4, 5], Exp: 5
//	12.345     Digits: [1, 2, 3, 4, 5], Exp: 2
//	12000      Digits: [1, 2],          Exp: 5
//	0.00123    Digits: [1, 2, 3],       Exp: -2
//	0          Digits: [],              Exp: 0
//
// A Decimal produced in Hex mode holds base-16 digits (0-15) and Exp equals
// the number of digits.
type Decimal struct {
	Digits []byte // mantissa digits, big-endian
	Exp    int32  // exponent
	Neg    bool
	Inf    bool // Takes precedence over Digits and Exp.
	NaN    bool // Takes precedence over Inf.
}

// IsZero reports whether d is a finite zero.
func (d *Decimal) IsZero() bool {
	return len(d.Digits) == 0 && !d.Inf && !d.NaN
}

// IsSpecial reports whether d is NaN or infinite.
func (d *Decimal) IsSpecial() bool {
	return d.Inf || d.NaN
}

// clone returns a copy of d that does not share its digit storage.
func (d *Decimal) clone() Decimal {
	c := *d
	c.Digits = append([]byte(nil), d.Digits...)
	return c
}

// normalize strips leading and trailing zeros from d.
func (d *Decimal) normalize() {
	b := d.Digits
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
		d.Exp--
	}
	d.Digits = b
	trim(d)
}

func (x *Decimal) String() string {
	if x.NaN {
		return "NaN"
	}
	var buf []byte
	if x.Neg {
		buf = append(buf, '-')
	}
	if x.Inf {
		buf = append(buf, "Inf"...)
		return string(buf)
	}
	switch {
	case len(x.Digits) == 0:
		buf = append(buf, '0')
	case x.Exp <= 0:
		// 0.00ddd
		buf = append(buf, "0."...)
		buf = appendZeros(buf, -int(x.Exp))
		buf = appendDigits(buf, x.Digits)

	case /* 0 < */ int(x.Exp) < len(x.Digits):
		// dd.ddd
		buf = appendDigits(buf, x.Digits[:x.Exp])
		buf = append(buf, '.')
		buf = appendDigits(buf, x.Digits[x.Exp:])

	default: // len(x.Digits) <= x.Exp
		// ddd00
		buf = appendDigits(buf, x.Digits)
		buf = appendZeros(buf, int(x.Exp)-len(x.Digits))
	}
	return string(buf)
}

func appendDigits(buf []byte, digits []byte) []byte {
	for _, c := range digits {
		buf = append(buf, c+'0')
	}
	return buf
}

// appendZeros appends n 0 digits to buf and returns buf.
func appendZeros(buf []byte, n int) []byte {
	for ; n > 0; n-- {
		buf = append(buf, '0')
	}
	return buf
}

// round rounds d in place half away from zero to n significant digits. A
// zero or negative n rounds at a position left of the first digit.
func (d *Decimal) round(n int) {
	if n >= len(d.Digits) {
		return
	}
	if n < 0 {
		d.Digits = d.Digits[:0]
		d.Exp = 0
		return
	}
	if d.Digits[n] >= 5 {
		d.roundUp(n)
	} else {
		d.roundDown(n)
	}
}

func (x *Decimal) roundUp(n int) {
	// find first digit < 9
	for n > 0 && x.Digits[n-1] >= 9 {
		n--
	}
	if n == 0 {
		// all digits are 9s => round up to 1 and update exponent
		x.Digits[0] = 1 // ok since len(x.Digits) > n
		x.Digits = x.Digits[:1]
		x.Exp++
		return
	}
	x.Digits[n-1]++
	x.Digits = x.Digits[:n]
	// x already trimmed
}

func (x *Decimal) roundDown(n int) {
	x.Digits = x.Digits[:n]
	trim(x)
}

// trim cuts off any trailing zeros from x's mantissa;
// they are meaningless for the value of x.
func trim(x *Decimal) {
	i := len(x.Digits)
	for i > 0 && x.Digits[i-1] == 0 {
		i--
	}
	x.Digits = x.Digits[:i]
	if i == 0 {
		x.Exp = 0
	}
}

// RoundSignificant returns d rounded half away from zero to n significant
// digits.
func (d Decimal) RoundSignificant(n int) Decimal {
	if d.IsSpecial() || n >= len(d.Digits) {
		return d
	}
	c := d.clone()
	c.round(n)
	return c
}

// RoundFraction returns d rounded half away from zero to n digits after the
// decimal point.
func (d Decimal) RoundFraction(n int) Decimal {
	if d.IsSpecial() || len(d.Digits) == 0 {
		return d
	}
	return d.RoundSignificant(int(d.Exp) + n)
}

// Shift multiplies d by 10^n.
func (d Decimal) Shift(n int) Decimal {
	if len(d.Digits) > 0 {
		d.Exp += int32(n)
	}
	return d
}

// intLen returns the number of digits before the decimal point, which is at
// least one.
func (d *Decimal) intLen() int {
	if d.Exp <= 0 {
		return 1
	}
	return int(d.Exp)
}

// appendInt appends the ASCII integer part of d, left padded with zeros to at
// least minDigits digits.
func (d *Decimal) appendInt(dst []byte, minDigits int) []byte {
	n := 0
	if d.Exp > 0 {
		n = int(d.Exp)
	}
	if n < minDigits {
		dst = appendZeros(dst, minDigits-n)
	}
	if n == 0 {
		return dst
	}
	if n <= len(d.Digits) {
		return appendDigits(dst, d.Digits[:n])
	}
	dst = appendDigits(dst, d.Digits)
	return appendZeros(dst, n-len(d.Digits))
}

// appendFrac appends exactly n ASCII fraction digits of d, padding with zeros.
func (d *Decimal) appendFrac(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, d.fracDigit(i)+'0')
	}
	return dst
}

// fracDigit returns the i-th digit after the decimal point.
func (d *Decimal) fracDigit(i int) byte {
	p := int(d.Exp) + i
	if p < 0 || p >= len(d.Digits) {
		return 0
	}
	return d.Digits[p]
}

// numFracDigits returns the number of significant digits after the decimal
// point.
func (d *Decimal) numFracDigits() int {
	if n := len(d.Digits) - int(d.Exp); n > 0 {
		return n
	}
	return 0
}

// isZeroInt reports whether the integer part of d is zero.
func (d *Decimal) isZeroInt() bool {
	return len(d.Digits) == 0 || d.Exp <= 0
}
