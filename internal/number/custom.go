// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"strconv"
	"strings"
)

// FormatCustom appends v rendered with the custom picture spec to dst.
func FormatCustom(dst []byte, spec *Spec, v Value, sym *Symbols) ([]byte, error) {
	d, err := Generate(v, Request{Mode: Exponential, Digits: -1})
	if err != nil {
		return dst, err
	}
	if d.IsSpecial() {
		return appendSpecial(dst, &d, sym), nil
	}

	sec, needSign := spec.Select(d.Neg, d.IsZero())
	if sec.Text == "" {
		if needSign {
			dst = append(dst, sym.NegativeSign...)
		}
		return dst, nil
	}
	d.Neg = false
	d = d.Shift(sec.scale())

	exp := 0
	if sec.UseExponent && sec.HasDigits() {
		if !d.IsZero() {
			d = d.RoundSignificant(sec.IntegerDigits + sec.DecimalDigits)
			exp = int(d.Exp) - sec.IntegerDigits
			d.Exp = int32(sec.IntegerDigits)
		}
	} else {
		d = d.RoundFraction(sec.DecimalDigits)
	}
	if d.IsZero() {
		needSign = false
	}

	var intPart []byte
	if sec.IntegerDigits != 0 || !d.isZeroInt() {
		intPart = d.appendInt(nil, 1)
	}
	fracPart := d.appendFrac(nil, sec.DecimalDigits)
	fracPart = trimZeros(fracPart)
	for len(fracPart) < sec.DecimalDigits-sec.DecimalTailSharps {
		fracPart = append(fracPart, '0')
	}

	var expPart []byte
	if sec.UseExponent {
		if !sec.HasDigits() {
			needSign = false
		}
		intPart = padLeft(intPart, sec.IntegerDigits)
		var digits []byte
		if sec.HasDigits() {
			abs := exp
			if abs < 0 {
				abs = -abs
			}
			digits = strconv.AppendInt(nil, int64(abs), 10)
		}
		digits = padLeft(digits, sec.ExponentDigits-sec.ExponentTailSharps)
		switch {
		case exp < 0:
			expPart = append(expPart, sym.NegativeSign...)
		case sec.ExponentPlus:
			expPart = append(expPart, sym.PositiveSign...)
		}
		expPart = append(expPart, digits...)
	} else {
		intPart = padLeft(intPart, sec.IntegerDigits-sec.IntegerHeadSharps)
		if sec.IntegerDigits == sec.IntegerHeadSharps && isZeros(intPart) {
			intPart = intPart[:0]
		}
	}

	if needSign {
		dst = append(dst, sym.NegativeSign...)
	}
	r := customRenderer{
		sec:  sec,
		sym:  sym,
		ints: intPart,
		frac: fracPart,
		exp:  expPart,
	}
	if sec.UseGroup {
		r.marks = groupMarks(sym.NumberGroupSizes, len(intPart))
	}
	return r.render(dst), nil
}

// customRenderer lays out the digits of one section over its text.
type customRenderer struct {
	sec   *Section
	sym   *Symbols
	ints  []byte // integer digits, already padded
	frac  []byte // fraction digits
	exp   []byte // signed exponent digits
	marks []bool // marks[n] is set if a separator precedes the last n digits
}

func (r *customRenderer) render(dst []byte) []byte {
	sec := r.sec
	text := sec.Text
	integerArea := true
	decimalArea := false
	expWritten := false
	pointSeen := false
	placeholders := 0
	ii, fi := 0, 0
	var literal byte

	for i := 0; i < len(text); i++ {
		c := text[i]
		if literal != 0 {
			if c == literal {
				literal = 0
			} else {
				dst = append(dst, c)
			}
			continue
		}
		switch c {
		case '\\':
			i++
			if i < len(text) {
				dst = append(dst, text[i])
			}
		case '\'', '"':
			literal = c
		case '#', '0':
			switch {
			case integerArea:
				placeholders++
				for sec.IntegerDigits-placeholders+ii < len(r.ints) {
					dst = append(dst, r.ints[ii])
					ii++
					if n := len(r.ints) - ii; n > 0 && r.marks != nil && r.marks[n] {
						dst = append(dst, r.sym.NumberGroupSeparator...)
					}
				}
			case decimalArea:
				if fi < len(r.frac) {
					dst = append(dst, r.frac[fi])
					fi++
				}
			default:
				dst = append(dst, c)
			}
		case 'e', 'E':
			if !sec.UseExponent || expWritten {
				dst = append(dst, c)
				break
			}
			q, ok := exponentEnd(text, i)
			dst = append(dst, c)
			if ok {
				i = q - 1
				integerArea = sec.DecimalPointPos < 0
				decimalArea = !integerArea
				dst = append(dst, r.exp...)
				expWritten = true
			}
		case '.':
			if !pointSeen {
				// Integer digits not claimed by a placeholder belong
				// before the first decimal point.
				for ; ii < len(r.ints); ii++ {
					dst = append(dst, r.ints[ii])
					if n := len(r.ints) - ii - 1; n > 0 && r.marks != nil && r.marks[n] {
						dst = append(dst, r.sym.NumberGroupSeparator...)
					}
				}
				pointSeen = true
			}
			if sec.DecimalPointPos == i && len(r.frac) > 0 {
				dst = append(dst, r.sym.NumberDecimalSeparator...)
			}
			integerArea = false
			decimalArea = true
		case ',':
		case '%':
			dst = append(dst, r.sym.PercentSymbol...)
		default:
			if strings.HasPrefix(text[i:], perMille) {
				dst = append(dst, r.sym.PerMilleSymbol...)
				i += len(perMille) - 1
				break
			}
			dst = append(dst, c)
		}
	}
	return dst
}

// exponentEnd returns the end of the exponent digits that follow the E at
// text[i] and whether they form an exponent: an optional sign followed by
// zeros.
func exponentEnd(text string, i int) (end int, ok bool) {
	zeros := false
	q := i + 1
	for ; q < len(text); q++ {
		c := text[q]
		if c == '0' {
			zeros = true
			continue
		}
		if q == i+1 && (c == '+' || c == '-') {
			continue
		}
		return q, zeros
	}
	return q, true
}

// groupMarks returns for n integer digits which counts of trailing digits are
// preceded by a group separator. Groups are taken from the decimal point
// leftward using sizes in order and repeating the last size; a zero size
// leaves the remaining digits in one group.
func groupMarks(sizes []int, n int) []bool {
	marks := make([]bool, n+1)
	if len(sizes) == 0 {
		return marks
	}
	pos := 0
	for i := 0; ; i++ {
		size := sizes[len(sizes)-1]
		if i < len(sizes) {
			size = sizes[i]
		}
		if size <= 0 {
			break
		}
		pos += size
		if pos >= n {
			break
		}
		marks[pos] = true
	}
	return marks
}

// appendGrouped appends the ASCII digits in digits, separated according to
// sizes.
func appendGrouped(dst, digits []byte, sizes []int, sep string) []byte {
	marks := groupMarks(sizes, len(digits))
	for i, c := range digits {
		dst = append(dst, c)
		if n := len(digits) - i - 1; n > 0 && marks[n] {
			dst = append(dst, sep...)
		}
	}
	return dst
}

func padLeft(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	p := make([]byte, n-len(b), n)
	for i := range p {
		p[i] = '0'
	}
	return append(p, b...)
}

func trimZeros(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == '0' {
		i--
	}
	return b[:i]
}

func isZeros(b []byte) bool {
	for _, c := range b {
		if c != '0' {
			return false
		}
	}
	return true
}

func appendSpecial(dst []byte, d *Decimal, sym *Symbols) []byte {
	switch {
	case d.NaN:
		return append(dst, sym.NaNSymbol...)
	case d.Neg:
		return append(dst, sym.NegativeInfinitySymbol...)
	}
	return append(dst, sym.PositiveInfinitySymbol...)
}
