// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package message

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/corefmt/numfmt/culture"
	"github.com/corefmt/numfmt/number"
)

type stringer string

func (s stringer) String() string { return "<" + string(s) + ">" }

func TestSprintf(t *testing.T) {
	testCases := []struct {
		tag    language.Tag
		format string
		args   []any
		want   string
	}{
		{language.German, "{0,-10}{1,12:C}", []any{"Total", 1234.5}, "Total       1.234,50 €"},
		{language.AmericanEnglish, "{0:N2} items", []any{1234567}, "1,234,567.00 items"},
		{language.AmericanEnglish, "{0:X4}/{0:x}", []any{uint8(255)}, "00FF/ff"},
		{language.AmericanEnglish, "[{0,5}|{0,-5}]", []any{42}, "[   42|42   ]"},
		{language.AmericanEnglish, "{0:P1}", []any{0.256}, "25.6%"},
		{language.German, "{0:#,##0.0}", []any{1234.56}, "1.234,6"},
		{language.German, "{0}", []any{1234.5}, "1234,5"},
		{language.French, "{0,8}", []any{-1.5}, "    -1,5"},
		{language.AmericanEnglish, "{{{0}}}", []any{7}, "{7}"},
		{language.AmericanEnglish, "{0}", []any{nil}, ""},
		{language.AmericanEnglish, "{0}/{1}", []any{true, stringer("x")}, "true/<x>"},
		{language.AmericanEnglish, "{0:N2}", []any{"not a number"}, "not a number"},
		{language.AmericanEnglish, "{0,3}", []any{"€"}, "  €"},
		{language.AmericanEnglish, "{0:E2}", []any{number.Int64(-12345)}, "-1.23E+004"},
		{language.AmericanEnglish, "no items", nil, "no items"},
		{language.AmericanEnglish, "{0:Q}", []any{1}, "Q"},
		{language.Und, "{0:C}", []any{1.5}, "¤1.50"},
	}
	for _, tc := range testCases {
		t.Run(tc.tag.String()+"/"+tc.format, func(t *testing.T) {
			p := MustNewPrinter(tc.tag)
			got, err := p.Sprintf(tc.format, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSprintfErrors(t *testing.T) {
	p := MustNewPrinter(language.AmericanEnglish)
	testCases := []struct {
		format string
		args   []any
		want   error
	}{
		{"{1}", []any{1}, number.ErrInvalidFormat},
		{"{0", []any{1}, number.ErrInvalidFormat},
		{"}", nil, number.ErrInvalidFormat},
		{"{0:D}", []any{1.5}, number.ErrUnsupportedForType},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			_, err := p.Sprintf(tc.format, tc.args...)
			assert.ErrorIs(t, err, tc.want)

			var buf bytes.Buffer
			n, err := p.Fprintf(&buf, tc.format, tc.args...)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, n)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestFprintf(t *testing.T) {
	var buf bytes.Buffer
	p := MustNewPrinter(language.MustParse("en-IN"))
	n, err := p.Fprintf(&buf, "{0:N0}", 123456789)
	require.NoError(t, err)
	assert.Equal(t, "12,34,56,789", buf.String())
	assert.Equal(t, buf.Len(), n)
}

func TestSprint(t *testing.T) {
	p := MustNewPrinter(language.German)
	assert.Equal(t, "1234,5x", p.Sprint(1234.5, "x"))
	assert.Equal(t, "1 2,5\n", p.Sprintln(1, 2.5))
	assert.Equal(t, "[1,5]", p.Sprint(number.NewFormatter(number.Float64(1.5), "[0.0]", p.Symbols())))

	var buf bytes.Buffer
	_, err := p.Fprint(&buf, number.Int(-3))
	require.NoError(t, err)
	assert.Equal(t, "-3", buf.String())

	buf.Reset()
	_, err = p.Fprintln(&buf, "a", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "a 0,5\n", buf.String())
}

func TestOptions(t *testing.T) {
	p, err := NewPrinter(language.German, WithCurrency("JPY"))
	require.NoError(t, err)
	got, err := p.Sprintf("{0:C}", 1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1.235 JPY", got)

	sym := number.Invariant()
	sym.NumberDecimalSeparator = "·"
	p, err = NewPrinter(language.German, WithSymbols(sym))
	require.NoError(t, err)
	sym.NumberDecimalSeparator = "!"
	assert.Equal(t, "1·5", p.Sprint(1.5))
	assert.Equal(t, language.German, p.Language())

	tab, err := culture.Load(strings.NewReader("cultures:\n- tag: de\n  symbols:\n    numberDecimalSeparator: \";\"\n"))
	require.NoError(t, err)
	p, err = NewPrinter(language.MustParse("de-AT"), WithTable(tab))
	require.NoError(t, err)
	assert.Equal(t, "1;5", p.Sprint(1.5))

	bad := number.Invariant()
	bad.CurrencyNegativePattern = 99
	_, err = NewPrinter(language.Und, WithSymbols(bad))
	assert.ErrorIs(t, err, number.ErrInvalidSymbols)

	_, err = NewPrinter(language.Und, WithCurrency("??"))
	assert.Error(t, err)
	assert.Panics(t, func() { MustNewPrinter(language.Und, WithCurrency("??")) })
}

func TestConcurrentUse(t *testing.T) {
	p := MustNewPrinter(language.AmericanEnglish)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s, err := p.Sprintf("{0,8:N1}|{1}", j*1000, "x")
				if assert.NoError(t, err) {
					assert.Len(t, s, strings.Index(s, "|")+2)
				}
			}
		}()
	}
	wg.Wait()
}
