// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"fmt"
	"strconv"
)

// Layout templates. In a template 'n' stands for the formatted magnitude, '-'
// for the negative sign, '$' for the currency symbol and '%' for the percent
// symbol. Any other byte is copied.
var (
	numberNegativePatterns = []string{
		"(n)", "-n", "- n", "n-", "n -",
	}
	currencyPositivePatterns = []string{
		"$n", "n$", "$ n", "n $",
	}
	currencyNegativePatterns = []string{
		"($n)", "-$n", "$-n", "$n-", "(n$)", "-n$", "n-$", "n$-",
		"-n $", "-$ n", "n $-", "$ n-", "$ -n", "n- $", "($ n)", "(n $)",
	}
	percentPositivePatterns = []string{
		"n %", "n%", "%n", "% n",
	}
	percentNegativePatterns = []string{
		"-n %", "-n%", "-%n", "%-n", "%n-", "n-%",
		"n%-", "-% n", "n %-", "% n-", "% -n", "n- %",
	}
)

const (
	minExpDigitsE = 3
	minExpDigitsG = 2
)

// FormatStandard appends v rendered with the standard format spec to dst.
func FormatStandard(dst []byte, spec *Spec, v Value, sym *Symbols) ([]byte, error) {
	p := spec.Precision
	switch spec.Letter {
	case 'D':
		if v.kind != Integer {
			return dst, fmt.Errorf("%w: D requires an integer, got %v", ErrUnsupportedForType, v.kind)
		}
		d, err := Generate(v, Request{Mode: Fixed, Digits: 0})
		if err != nil {
			return dst, err
		}
		if d.Neg {
			dst = append(dst, sym.NegativeSign...)
		}
		return d.appendInt(dst, max(p, 1)), nil

	case 'X':
		d, err := Generate(v, Request{Mode: Hex})
		if err != nil {
			return dst, err
		}
		return appendHex(dst, &d, p, spec.Upper), nil

	case 'R':
		if v.kind != Binary {
			return dst, fmt.Errorf("%w: R requires a float, got %v", ErrUnsupportedForType, v.kind)
		}
		d, err := Generate(v, Request{Mode: RoundTrip})
		if err != nil {
			return dst, err
		}
		if d.IsSpecial() {
			return appendSpecial(dst, &d, sym), nil
		}
		return appendGeneral(dst, &d, v.defaultDigits(), spec.Upper, sym), nil

	case 'G':
		return formatGeneral(dst, spec, v, sym)

	case 'E':
		if p < 0 {
			p = 6
		}
		d, err := Generate(v, Request{Mode: Exponential, Digits: p + 1, Budget: budget(v, 'E', p)})
		if err != nil {
			return dst, err
		}
		if d.IsSpecial() {
			return appendSpecial(dst, &d, sym), nil
		}
		if d.Neg && !d.IsZero() {
			dst = append(dst, sym.NegativeSign...)
		}
		return appendExponent(dst, &d, p, minExpDigitsE, spec.Upper, sym), nil

	case 'F', 'N', 'P', 'C':
		return formatFixed(dst, spec, v, sym)
	}
	panic("unreachable")
}

// budget returns the significant digits a binary float keeps before it is
// rounded for the given format letter and precision.
func budget(v Value, letter byte, p int) int {
	if v.kind != Binary {
		return 0
	}
	def := v.defaultDigits()
	switch {
	case letter == 'G' && p >= def:
		return min(def+roundTripExtra, p)
	case letter == 'E' && p >= def:
		return min(def+roundTripExtra, p+1)
	}
	return def
}

func formatGeneral(dst []byte, spec *Spec, v Value, sym *Symbols) ([]byte, error) {
	p := spec.Precision
	if p > 0 {
		d, err := Generate(v, Request{Mode: Exponential, Digits: p, Budget: budget(v, 'G', p)})
		if err != nil {
			return dst, err
		}
		if d.IsSpecial() {
			return appendSpecial(dst, &d, sym), nil
		}
		return appendGeneral(dst, &d, p, spec.Upper, sym), nil
	}

	switch v.kind {
	case Binary:
		d, err := Generate(v, Request{Mode: RoundTrip})
		if err != nil {
			return dst, err
		}
		if d.IsSpecial() {
			return appendSpecial(dst, &d, sym), nil
		}
		return appendGeneral(dst, &d, v.defaultDigits(), spec.Upper, sym), nil

	case FixedPoint:
		// The scale of the value is kept, so 1.50 prints as 1.50.
		d, err := Generate(v, Request{Mode: Fixed, Digits: -1})
		if err != nil {
			return dst, err
		}
		if d.Neg {
			dst = append(dst, sym.NegativeSign...)
		}
		dst = d.appendInt(dst, 1)
		if scale := int(v.dec.Scale()); scale > 0 {
			dst = append(dst, sym.NumberDecimalSeparator...)
			dst = d.appendFrac(dst, scale)
		}
		return dst, nil
	}

	d, err := Generate(v, Request{Mode: Fixed, Digits: 0})
	if err != nil {
		return dst, err
	}
	if d.Neg {
		dst = append(dst, sym.NegativeSign...)
	}
	return d.appendInt(dst, 1), nil
}

// appendGeneral appends d in the shorter of fixed-point or scientific
// notation. Scientific notation is used when the decimal exponent is at
// least threshold or less than -4.
func appendGeneral(dst []byte, d *Decimal, threshold int, upper bool, sym *Symbols) []byte {
	if d.IsZero() {
		return append(dst, '0')
	}
	if d.Neg {
		dst = append(dst, sym.NegativeSign...)
	}
	if int(d.Exp) > threshold || d.Exp <= -4 {
		return appendExponent(dst, d, len(d.Digits)-1, minExpDigitsG, upper, sym)
	}
	dst = d.appendInt(dst, 1)
	if n := d.numFracDigits(); n > 0 {
		dst = append(dst, sym.NumberDecimalSeparator...)
		dst = d.appendFrac(dst, n)
	}
	return dst
}

// appendExponent appends the magnitude of d in scientific notation with
// frac digits after the decimal separator and at least expDigits exponent
// digits.
func appendExponent(dst []byte, d *Decimal, frac, expDigits int, upper bool, sym *Symbols) []byte {
	exp := 0
	if d.IsZero() {
		dst = append(dst, '0')
	} else {
		dst = append(dst, d.Digits[0]+'0')
		exp = int(d.Exp) - 1
	}
	if frac > 0 {
		dst = append(dst, sym.NumberDecimalSeparator...)
		for i := 1; i <= frac; i++ {
			c := byte(0)
			if i < len(d.Digits) {
				c = d.Digits[i]
			}
			dst = append(dst, c+'0')
		}
	}
	if upper {
		dst = append(dst, 'E')
	} else {
		dst = append(dst, 'e')
	}
	if exp < 0 {
		dst = append(dst, sym.NegativeSign...)
		exp = -exp
	} else {
		dst = append(dst, sym.PositiveSign...)
	}
	var buf [8]byte
	b := strconv.AppendInt(buf[:0], int64(exp), 10)
	for i := len(b); i < expDigits; i++ {
		dst = append(dst, '0')
	}
	return append(dst, b...)
}

// fixedStyle holds the symbols of one of the fixed-point letters.
type fixedStyle struct {
	digits    int
	decimal   string
	group     string
	sizes     []int
	positive  string
	negative  string
	scale     int
	useGroups bool
}

func styleFor(letter byte, sym *Symbols) fixedStyle {
	switch letter {
	case 'N':
		return fixedStyle{
			digits:    sym.NumberDecimalDigits,
			decimal:   sym.NumberDecimalSeparator,
			group:     sym.NumberGroupSeparator,
			sizes:     sym.NumberGroupSizes,
			positive:  "n",
			negative:  numberNegativePatterns[sym.NumberNegativePattern],
			useGroups: true,
		}
	case 'P':
		return fixedStyle{
			digits:    sym.PercentDecimalDigits,
			decimal:   sym.PercentDecimalSeparator,
			group:     sym.PercentGroupSeparator,
			sizes:     sym.PercentGroupSizes,
			positive:  percentPositivePatterns[sym.PercentPositivePattern],
			negative:  percentNegativePatterns[sym.PercentNegativePattern],
			scale:     2,
			useGroups: true,
		}
	case 'C':
		return fixedStyle{
			digits:    sym.CurrencyDecimalDigits,
			decimal:   sym.CurrencyDecimalSeparator,
			group:     sym.CurrencyGroupSeparator,
			sizes:     sym.CurrencyGroupSizes,
			positive:  currencyPositivePatterns[sym.CurrencyPositivePattern],
			negative:  currencyNegativePatterns[sym.CurrencyNegativePattern],
			useGroups: true,
		}
	}
	return fixedStyle{
		digits:   sym.NumberDecimalDigits,
		decimal:  sym.NumberDecimalSeparator,
		positive: "n",
		negative: "-n",
	}
}

func formatFixed(dst []byte, spec *Spec, v Value, sym *Symbols) ([]byte, error) {
	st := styleFor(spec.Letter, sym)
	p := spec.Precision
	if p < 0 {
		p = st.digits
	}
	d, err := Generate(v, Request{Mode: Fixed, Digits: p, Scale: st.scale, Budget: budget(v, spec.Letter, p)})
	if err != nil {
		return dst, err
	}
	if d.IsSpecial() {
		return appendSpecial(dst, &d, sym), nil
	}

	ints := d.appendInt(nil, 1)
	var num []byte
	if st.useGroups {
		num = appendGrouped(nil, ints, st.sizes, st.group)
	} else {
		num = ints
	}
	if p > 0 {
		num = append(num, st.decimal...)
		num = d.appendFrac(num, p)
	}

	pattern := st.positive
	if d.Neg && !d.IsZero() {
		pattern = st.negative
	}
	return expand(dst, pattern, num, sym), nil
}

// expand appends the layout template pattern with num substituted for 'n'.
func expand(dst []byte, pattern string, num []byte, sym *Symbols) []byte {
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case 'n':
			dst = append(dst, num...)
		case '-':
			dst = append(dst, sym.NegativeSign...)
		case '$':
			dst = append(dst, sym.CurrencySymbol...)
		case '%':
			dst = append(dst, sym.PercentSymbol...)
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"
)

// appendHex appends the base-16 digits of d, left padded with zeros to at
// least minDigits.
func appendHex(dst []byte, d *Decimal, minDigits int, upper bool) []byte {
	digits := lowerHex
	if upper {
		digits = upperHex
	}
	n := max(len(d.Digits), 1)
	for i := n; i < minDigits; i++ {
		dst = append(dst, '0')
	}
	if len(d.Digits) == 0 {
		return append(dst, '0')
	}
	for _, c := range d.Digits {
		dst = append(dst, digits[c])
	}
	return dst
}
