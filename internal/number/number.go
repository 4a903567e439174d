// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number implements the digit generation, format string parsing and
// rendering that underlie the public number package.
package number

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedForType is returned when a standard format requires a
	// kind of value it was not given, such as D or X for a float.
	ErrUnsupportedForType = errors.New("number: format not supported for value type")

	// ErrInvalidFormat is returned for a malformed composite format string.
	// Numeric format strings never fail to parse: anything that is not a
	// standard format is a custom picture.
	ErrInvalidFormat = errors.New("number: invalid format specifier")

	// ErrInvalidSymbols is returned by Symbols.Validate.
	ErrInvalidSymbols = errors.New("number: invalid symbols")
)

// Symbols holds the culture-specific strings and layout choices used to
// render numbers. Symbols are read but never modified while formatting.
type Symbols struct {
	NumberDecimalSeparator string `json:"numberDecimalSeparator"`
	NumberGroupSeparator   string `json:"numberGroupSeparator"`
	NumberGroupSizes       []int  `json:"numberGroupSizes"`
	NumberDecimalDigits    int    `json:"numberDecimalDigits"`
	NumberNegativePattern  int    `json:"numberNegativePattern"`

	CurrencySymbol           string `json:"currencySymbol"`
	CurrencyDecimalSeparator string `json:"currencyDecimalSeparator"`
	CurrencyGroupSeparator   string `json:"currencyGroupSeparator"`
	CurrencyGroupSizes       []int  `json:"currencyGroupSizes"`
	CurrencyDecimalDigits    int    `json:"currencyDecimalDigits"`
	CurrencyPositivePattern  int    `json:"currencyPositivePattern"`
	CurrencyNegativePattern  int    `json:"currencyNegativePattern"`

	PercentSymbol           string `json:"percentSymbol"`
	PerMilleSymbol          string `json:"perMilleSymbol"`
	PercentDecimalSeparator string `json:"percentDecimalSeparator"`
	PercentGroupSeparator   string `json:"percentGroupSeparator"`
	PercentGroupSizes       []int  `json:"percentGroupSizes"`
	PercentDecimalDigits    int    `json:"percentDecimalDigits"`
	PercentPositivePattern  int    `json:"percentPositivePattern"`
	PercentNegativePattern  int    `json:"percentNegativePattern"`

	NegativeSign           string `json:"negativeSign"`
	PositiveSign           string `json:"positiveSign"`
	NaNSymbol              string `json:"nanSymbol"`
	PositiveInfinitySymbol string `json:"positiveInfinitySymbol"`
	NegativeInfinitySymbol string `json:"negativeInfinitySymbol"`
}

var invariant = Symbols{
	NumberDecimalSeparator: ".",
	NumberGroupSeparator:   ",",
	NumberGroupSizes:       []int{3},
	NumberDecimalDigits:    2,
	NumberNegativePattern:  1,

	CurrencySymbol:           "¤",
	CurrencyDecimalSeparator: ".",
	CurrencyGroupSeparator:   ",",
	CurrencyGroupSizes:       []int{3},
	CurrencyDecimalDigits:    2,

	PercentSymbol:           "%",
	PerMilleSymbol:          "‰",
	PercentDecimalSeparator: ".",
	PercentGroupSeparator:   ",",
	PercentGroupSizes:       []int{3},
	PercentDecimalDigits:    2,

	NegativeSign:           "-",
	PositiveSign:           "+",
	NaNSymbol:              "NaN",
	PositiveInfinitySymbol: "Infinity",
	NegativeInfinitySymbol: "-Infinity",
}

// Invariant returns a copy of the culture-independent symbols.
func Invariant() *Symbols {
	return invariant.Clone()
}

// invariantSymbols returns the shared invariant symbols; the result must not
// be modified.
func invariantSymbols() *Symbols {
	return &invariant
}

// Clone returns a deep copy of s.
func (s *Symbols) Clone() *Symbols {
	c := *s
	c.NumberGroupSizes = append([]int(nil), s.NumberGroupSizes...)
	c.CurrencyGroupSizes = append([]int(nil), s.CurrencyGroupSizes...)
	c.PercentGroupSizes = append([]int(nil), s.PercentGroupSizes...)
	return &c
}

// Validate reports whether the pattern indexes, digit counts and group sizes
// of s are in range.
func (s *Symbols) Validate() error {
	check := func(name string, v, max int) error {
		if v < 0 || v > max {
			return fmt.Errorf("%w: %s %d out of range [0, %d]", ErrInvalidSymbols, name, v, max)
		}
		return nil
	}
	for _, c := range [...]struct {
		name   string
		v, max int
	}{
		{"NumberNegativePattern", s.NumberNegativePattern, len(numberNegativePatterns) - 1},
		{"CurrencyPositivePattern", s.CurrencyPositivePattern, len(currencyPositivePatterns) - 1},
		{"CurrencyNegativePattern", s.CurrencyNegativePattern, len(currencyNegativePatterns) - 1},
		{"PercentPositivePattern", s.PercentPositivePattern, len(percentPositivePatterns) - 1},
		{"PercentNegativePattern", s.PercentNegativePattern, len(percentNegativePatterns) - 1},
		{"NumberDecimalDigits", s.NumberDecimalDigits, MaxPrecision},
		{"CurrencyDecimalDigits", s.CurrencyDecimalDigits, MaxPrecision},
		{"PercentDecimalDigits", s.PercentDecimalDigits, MaxPrecision},
	} {
		if err := check(c.name, c.v, c.max); err != nil {
			return err
		}
	}
	for _, g := range [...]struct {
		name  string
		sizes []int
	}{
		{"NumberGroupSizes", s.NumberGroupSizes},
		{"CurrencyGroupSizes", s.CurrencyGroupSizes},
		{"PercentGroupSizes", s.PercentGroupSizes},
	} {
		name, sizes := g.name, g.sizes
		for i, n := range sizes {
			if n < 0 || n > 9 {
				return fmt.Errorf("%w: %s[%d] = %d", ErrInvalidSymbols, name, i, n)
			}
			if n == 0 && i != len(sizes)-1 {
				return fmt.Errorf("%w: %s has a zero size before the last position", ErrInvalidSymbols, name)
			}
		}
	}
	return nil
}
