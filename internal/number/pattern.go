// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"strings"

	"github.com/golang/glog"
)

// MaxPrecision is the largest precision a standard format accepts. A format
// whose precision token exceeds it is treated as a custom picture.
const MaxPrecision = 99

const perMille = "‰"

// A Spec is a parsed format string. It is either a standard format, a letter
// with an optional precision, or a custom picture of up to three sections.
// A Spec is immutable and may be shared between goroutines.
type Spec struct {
	// Standard is set for single-letter formats.
	Standard bool
	// Letter is the upper-cased standard format letter.
	Letter byte
	// Upper reports whether the letter was given in upper case.
	Upper bool
	// Precision is the standard precision, or -1 if none was given.
	Precision int

	// Sections holds the custom picture sections. The first is used for
	// positive values, the second for negative values and the third for
	// zero.
	Sections []Section
}

// A Section is one ;-separated part of a custom picture with the result of
// scanning it.
type Section struct {
	Text string

	IntegerDigits     int // number of integer placeholders
	IntegerHeadSharps int // leading # placeholders in the integer part
	DecimalDigits     int // number of fraction placeholders
	DecimalTailSharps int // trailing # placeholders in the fraction
	DecimalPointPos   int // byte offset of the decimal point or -1

	UseGroup     bool
	DividePlaces int // powers of ten removed by trailing commas
	Percents     int
	PerMilles    int

	UseExponent        bool
	ExponentPlus       bool // show the positive sign of the exponent
	ExponentDigits     int
	ExponentTailSharps int
}

// HasDigits reports whether the section contains any integer or fraction
// placeholder.
func (s *Section) HasDigits() bool {
	return s.IntegerDigits > 0 || s.DecimalDigits > 0
}

// scale returns the power of ten applied to a value rendered by s.
func (s *Section) scale() int {
	return 2*s.Percents + 3*s.PerMilles - s.DividePlaces
}

// Parse parses a format string. It never fails: any string that is not a
// standard format is a custom picture.
func Parse(format string) *Spec {
	if format == "" {
		return &Spec{Standard: true, Letter: 'G', Upper: true, Precision: -1}
	}
	if s, ok := parseStandard(format); ok {
		return s
	}
	if c := format[0]; isLetter(c) && len(format) > 1 && isDigit(format[1]) {
		glog.V(2).Infof("number: format %q is not a standard format; rendering as custom picture", format)
	}
	return &Spec{Precision: -1, Sections: splitSections(format)}
}

func isLetter(c byte) bool { return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }

// standardLetters lists the letters of the standard formats.
const standardLetters = "CDEFGNPRX"

func parseStandard(format string) (*Spec, bool) {
	c := format[0]
	if !isLetter(c) || strings.IndexByte(standardLetters, c&^0x20) < 0 {
		return nil, false
	}
	p := -1
	for i := 1; i < len(format); i++ {
		d := format[i]
		if !isDigit(d) {
			return nil, false
		}
		if p < 0 {
			p = 0
		}
		p = p*10 + int(d-'0')
		if p > MaxPrecision {
			return nil, false
		}
	}
	upper := c <= 'Z'
	if !upper {
		c -= 'a' - 'A'
	}
	return &Spec{Standard: true, Letter: c, Upper: upper, Precision: p}, true
}

// splitSections splits a custom picture on unquoted, unescaped semicolons.
// At most three sections are kept.
func splitSections(format string) []Section {
	var texts []string
	last := 0
	quoted := false
	for i := 0; i < len(format) && len(texts) < 3; i++ {
		switch c := format[i]; c {
		case '"', '\'':
			if i == 0 || format[i-1] != '\\' {
				quoted = !quoted
			}
		case ';':
			if !quoted && (i == 0 || format[i-1] != '\\') {
				texts = append(texts, format[last:i])
				last = i + 1
			}
		}
	}
	if len(texts) < 3 {
		texts = append(texts, format[last:])
	}
	sections := make([]Section, len(texts))
	for i, t := range texts {
		sections[i] = parseSection(t)
	}
	return sections
}

// Select returns the section used for a value with the given sign and
// zero-ness, and whether a leading negative sign must still be written.
func (s *Spec) Select(neg, zero bool) (sec *Section, needSign bool) {
	secs := s.Sections
	switch len(secs) {
	case 1:
		return &secs[0], neg
	case 2:
		if !neg || zero {
			return &secs[0], neg
		}
		if secs[1].Text != "" {
			return &secs[1], false
		}
		return &secs[0], neg
	}
	if zero {
		if secs[2].Text == "" {
			return &secs[0], neg
		}
		return &secs[2], neg
	}
	if !neg {
		return &secs[0], false
	}
	if secs[1].Text != "" {
		return &secs[1], false
	}
	return &secs[0], true
}

// parseSection scans a section to count its placeholders and locate the
// decimal point, grouping, scaling and exponent markers.
func parseSection(text string) Section {
	s := Section{Text: text, DecimalPointPos: -1}

	integerArea := true
	decimalArea := false
	exponentArea := false
	sharpContinues := true
	groupSeparators := 0
	var literal byte

	for i := 0; i < len(text); i++ {
		c := text[i]
		if literal != 0 {
			if c == literal {
				literal = 0
			}
			continue
		}
		if exponentArea && c != '0' && c != '#' {
			exponentArea = false
			integerArea = s.DecimalPointPos < 0
			decimalArea = !integerArea
			i--
			continue
		}

		switch c {
		case '\\':
			i++
		case '\'', '"':
			literal = c
		case '#', '0':
			if c == '#' && sharpContinues && integerArea {
				s.IntegerHeadSharps++
			} else if c == '#' && decimalArea {
				s.DecimalTailSharps++
			} else if c == '#' && exponentArea {
				s.ExponentTailSharps++
			}
			if c == '0' {
				sharpContinues = false
				if decimalArea {
					s.DecimalTailSharps = 0
				} else if exponentArea {
					s.ExponentTailSharps = 0
				}
			}
			switch {
			case integerArea:
				s.IntegerDigits++
				if groupSeparators > 0 {
					s.UseGroup = true
				}
				groupSeparators = 0
			case decimalArea:
				s.DecimalDigits++
			case exponentArea:
				s.ExponentDigits++
			}
		case 'e', 'E':
			if s.UseExponent {
				break
			}
			s.UseExponent = true
			integerArea = false
			decimalArea = false
			exponentArea = true
			if i+1 < len(text) {
				switch next := text[i+1]; next {
				case '+', '-':
					s.ExponentPlus = next == '+'
					i++
				case '0', '#':
				default:
					// Not an exponent; the next byte leaves the
					// exponent area and is scanned again.
					s.UseExponent = false
					if s.DecimalPointPos < 0 {
						integerArea = true
					}
				}
			}
		case '.':
			integerArea = false
			decimalArea = true
			exponentArea = false
			if s.DecimalPointPos < 0 {
				s.DecimalPointPos = i
			}
		case '%':
			s.Percents++
		case ',':
			if integerArea && s.IntegerDigits > 0 {
				groupSeparators++
			}
		default:
			if strings.HasPrefix(text[i:], perMille) {
				s.PerMilles++
				i += len(perMille) - 1
			}
		}
	}

	if s.ExponentDigits == 0 {
		s.UseExponent = false
	} else {
		s.IntegerHeadSharps = 0
	}
	if s.DecimalDigits == 0 {
		s.DecimalPointPos = -1
	}
	s.DividePlaces += groupSeparators * 3
	return s
}
