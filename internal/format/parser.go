// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format scans composite format strings such as
// "Total: {0,10:N2} ({1:P0})".
//
// A composite format string is literal text interleaved with format items.
// An item has the form {index[,alignment][:formatString]}. Braces in the
// literal text and in a format string are written doubled, as {{ and }}.
package format

import (
	"fmt"
	"strings"

	"github.com/corefmt/numfmt/internal/number"
)

// Limits on the index and the absolute alignment of an item.
const (
	MaxArgNum    = 1000000
	MaxAlignment = 1000000
)

// Status indicates the result type of a call to Scan.
type Status int

const (
	StatusText Status = iota
	StatusItem
	StatusError
)

// Parser parses a composite format string. The result from the last call to
// Scan is stored in the Parser's fields.
type Parser struct {
	Status Status

	// Text is the literal text of a StatusText token with doubled braces
	// unescaped.
	Text string

	// ArgNum, Alignment and Spec describe a StatusItem token. Alignment is
	// zero if none was given; Spec is the item's format string.
	ArgNum    int
	Alignment int
	Spec      string

	// Err is set when Status is StatusError.
	Err error

	// WrappedErrs lists the indexes of the arguments that are errors and
	// are referenced by an item.
	WrappedErrs []int

	format string
	pos    int
	args   []any
	buf    strings.Builder
}

// Reset initializes a parser to scan format strings for the given args.
func (p *Parser) Reset(args []any) {
	p.args = args
	p.WrappedErrs = p.WrappedErrs[:0]
	p.format = ""
	p.pos = 0
}

// SetFormat sets the format string to scan.
func (p *Parser) SetFormat(format string) {
	p.format = format
	p.pos = 0
	p.Status = StatusText
	p.Err = nil
}

// Arg returns the argument of the last item, or nil if it has none.
func (p *Parser) Arg() any {
	if p.ArgNum < len(p.args) {
		return p.args[p.ArgNum]
	}
	return nil
}

// Scan advances to the next token. It returns false at the end of the format
// string and after an error.
func (p *Parser) Scan() bool {
	if p.Status == StatusError || p.pos >= len(p.format) {
		return false
	}
	p.Text, p.Spec = "", ""
	p.ArgNum, p.Alignment = 0, 0
	if p.format[p.pos] == '{' && !p.at("{{") {
		p.scanItem()
	} else {
		p.scanText()
	}
	return p.Status != StatusError
}

func (p *Parser) at(s string) bool {
	return strings.HasPrefix(p.format[p.pos:], s)
}

func (p *Parser) fail(msg string) {
	p.Status = StatusError
	p.Err = fmt.Errorf("%w: %s at offset %d in %q", number.ErrInvalidFormat, msg, p.pos, p.format)
}

func (p *Parser) scanText() {
	p.Status = StatusText
	p.buf.Reset()
	for p.pos < len(p.format) {
		switch c := p.format[p.pos]; c {
		case '{':
			if !p.at("{{") {
				p.Text = p.buf.String()
				return
			}
			p.buf.WriteByte('{')
			p.pos += 2
		case '}':
			if !p.at("}}") {
				p.fail("unmatched '}'")
				return
			}
			p.buf.WriteByte('}')
			p.pos += 2
		default:
			p.buf.WriteByte(c)
			p.pos++
		}
	}
	p.Text = p.buf.String()
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.format) && p.format[p.pos] == ' ' {
		p.pos++
	}
}

// number scans a non-negative decimal number below max.
func (p *Parser) number(max int) (int, bool) {
	start := p.pos
	n := 0
	for p.pos < len(p.format) && '0' <= p.format[p.pos] && p.format[p.pos] <= '9' {
		n = n*10 + int(p.format[p.pos]-'0')
		p.pos++
		if n >= max {
			return 0, false
		}
	}
	return n, p.pos > start
}

func (p *Parser) scanItem() {
	p.Status = StatusItem
	p.pos++ // {

	p.skipSpace()
	n, ok := p.number(MaxArgNum)
	if !ok {
		p.fail("bad argument index")
		return
	}
	p.ArgNum = n
	p.skipSpace()

	if p.at(",") {
		p.pos++
		p.skipSpace()
		neg := p.at("-")
		if neg {
			p.pos++
		}
		a, ok := p.number(MaxAlignment)
		if !ok {
			p.fail("bad alignment")
			return
		}
		if neg {
			a = -a
		}
		p.Alignment = a
		p.skipSpace()
	}

	if p.at(":") {
		p.pos++
		p.buf.Reset()
		for {
			if p.pos >= len(p.format) {
				p.fail("unterminated format item")
				return
			}
			c := p.format[p.pos]
			if c == '}' && !p.at("}}") {
				break
			}
			if c == '{' && !p.at("{{") {
				p.fail("unexpected '{' in format string")
				return
			}
			if c == '{' || c == '}' {
				p.pos++
			}
			p.buf.WriteByte(c)
			p.pos++
		}
		p.Spec = p.buf.String()
	}

	if !p.at("}") {
		p.fail("expected '}'")
		return
	}
	p.pos++

	if p.ArgNum >= len(p.args) {
		p.fail(fmt.Sprintf("argument index %d out of range", p.ArgNum))
		return
	}
	if _, ok := p.args[p.ArgNum].(error); ok {
		p.WrappedErrs = append(p.WrappedErrs, p.ArgNum)
	}
}
