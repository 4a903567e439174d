// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package message implements culture-aware formatted I/O with functions
// analogous to the print functions of package fmt.
//
// The Sprintf family takes composite format strings in which each item names
// an argument by index and optionally gives an alignment and a numeric format:
//
//	p := message.MustNewPrinter(language.German)
//	s, err := p.Sprintf("{0,-10}{1,12:C}", "Total", 1234.5)
//	// s == "Total       1.234,50 €"
//
// Numeric arguments are formatted with the culture's symbols; other
// arguments are printed as with fmt.Sprint.
package message

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/golang/glog"
	"golang.org/x/text/language"

	"github.com/corefmt/numfmt/culture"
	"github.com/corefmt/numfmt/internal/format"
	"github.com/corefmt/numfmt/number"
)

// A Printer implements culture-specific formatted I/O analogous to the fmt
// package. A Printer does not change after creation and may be used by
// multiple goroutines.
type Printer struct {
	tag language.Tag
	sym *number.Symbols
}

// An Option configures a Printer.
type Option func(*options)

type options struct {
	table    *culture.Table
	sym      *number.Symbols
	currency string
}

// WithTable makes the Printer resolve its culture in t instead of the
// built-in table.
func WithTable(t *culture.Table) Option {
	return func(o *options) { o.table = t }
}

// WithSymbols makes the Printer use a copy of sym instead of the symbols of
// its culture.
func WithSymbols(sym *number.Symbols) Option {
	return func(o *options) { o.sym = sym }
}

// WithCurrency replaces the currency of the Printer's symbols by the
// currency with the given ISO 4217 code.
func WithCurrency(code string) Option {
	return func(o *options) { o.currency = code }
}

// NewPrinter returns a Printer that formats messages tailored to the culture
// best matching t.
func NewPrinter(t language.Tag, opts ...Option) (*Printer, error) {
	var o options
	for _, f := range opts {
		f(&o)
	}
	var sym *number.Symbols
	switch {
	case o.sym != nil:
		sym = o.sym.Clone()
	case o.table != nil:
		sym = o.table.Symbols(t)
	default:
		sym = culture.Lookup(t).Symbols()
	}
	if err := sym.Validate(); err != nil {
		return nil, err
	}
	if o.currency != "" {
		s, err := culture.WithCurrency(sym, o.currency)
		if err != nil {
			return nil, err
		}
		sym = s
	}
	glog.V(2).Infof("message: printer for %s", t)
	return &Printer{tag: t, sym: sym}, nil
}

// MustNewPrinter is like NewPrinter but panics on error.
func MustNewPrinter(t language.Tag, opts ...Option) *Printer {
	p, err := NewPrinter(t, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Language returns the language tag the Printer was created for.
func (p *Printer) Language() language.Tag { return p.tag }

// Symbols returns a copy of the symbols used by p.
func (p *Printer) Symbols() *number.Symbols { return p.sym.Clone() }

// Sprint is like fmt.Sprint, but formats numbers with the culture's symbols.
func (p *Printer) Sprint(a ...any) string {
	return fmt.Sprint(p.bindArgs(a)...)
}

// Fprint is like fmt.Fprint, but formats numbers with the culture's symbols.
func (p *Printer) Fprint(w io.Writer, a ...any) (n int, err error) {
	return fmt.Fprint(w, p.bindArgs(a)...)
}

// Print is like fmt.Print, but formats numbers with the culture's symbols.
func (p *Printer) Print(a ...any) (n int, err error) {
	return fmt.Print(p.bindArgs(a)...)
}

// Sprintln is like fmt.Sprintln, but formats numbers with the culture's
// symbols.
func (p *Printer) Sprintln(a ...any) string {
	return fmt.Sprintln(p.bindArgs(a)...)
}

// Fprintln is like fmt.Fprintln, but formats numbers with the culture's
// symbols.
func (p *Printer) Fprintln(w io.Writer, a ...any) (n int, err error) {
	return fmt.Fprintln(w, p.bindArgs(a)...)
}

// Println is like fmt.Println, but formats numbers with the culture's
// symbols.
func (p *Printer) Println(a ...any) (n int, err error) {
	return fmt.Println(p.bindArgs(a)...)
}

// Sprintf formats according to a composite format string and returns the
// result.
func (p *Printer) Sprintf(format string, a ...any) (string, error) {
	b, _, err := p.render(nil, format, a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Fprintf formats according to a composite format string and writes to w.
// Nothing is written if the format string is invalid.
func (p *Printer) Fprintf(w io.Writer, format string, a ...any) (n int, err error) {
	b, _, err := p.render(nil, format, a)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// Printf formats according to a composite format string and writes to
// standard output.
func (p *Printer) Printf(format string, a ...any) (n int, err error) {
	return p.Fprintf(os.Stdout, format, a...)
}

// Errorf formats according to a composite format string and returns the
// result as an error. Error arguments referenced by an item are wrapped:
// the result implements Unwrap() error if there is one and Unwrap() []error
// if there are several. An invalid format string yields the parse error.
func (p *Printer) Errorf(format string, a ...any) error {
	b, wrapped, err := p.render(nil, format, a)
	if err != nil {
		return err
	}
	s := string(b)
	switch len(wrapped) {
	case 0:
		return &messageError{msg: s}
	case 1:
		return &wrapError{msg: s, err: a[wrapped[0]].(error)}
	}
	slices.Sort(wrapped)
	wrapped = slices.Compact(wrapped)
	errs := make([]error, len(wrapped))
	for i, n := range wrapped {
		errs[i] = a[n].(error)
	}
	if len(errs) == 1 {
		return &wrapError{msg: s, err: errs[0]}
	}
	return &wrapErrors{msg: s, errs: errs}
}

var parserPool = sync.Pool{
	New: func() any { return new(format.Parser) },
}

func (p *Printer) render(dst []byte, fmtStr string, a []any) ([]byte, []int, error) {
	ps := parserPool.Get().(*format.Parser)
	defer parserPool.Put(ps)
	ps.Reset(a)
	ps.SetFormat(fmtStr)
	for ps.Scan() {
		switch ps.Status {
		case format.StatusText:
			dst = append(dst, ps.Text...)
		case format.StatusItem:
			var err error
			dst, err = p.appendItem(dst, ps.Arg(), ps.Spec, ps.Alignment)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	if ps.Err != nil {
		return nil, nil, ps.Err
	}
	return dst, slices.Clone(ps.WrappedErrs), nil
}

func (p *Printer) appendItem(dst []byte, arg any, spec string, align int) ([]byte, error) {
	start := len(dst)
	if arg != nil {
		if v, err := number.Of(arg); err == nil {
			if dst, err = number.Append(dst, v, spec, p.sym); err != nil {
				return nil, err
			}
		} else {
			dst = fmt.Append(dst, arg)
		}
	}
	width := align
	if width < 0 {
		width = -width
	}
	pad := width - utf8.RuneCount(dst[start:])
	if pad <= 0 {
		return dst, nil
	}
	if align < 0 {
		return appendSpaces(dst, pad), nil
	}
	n := len(dst) - start
	dst = appendSpaces(dst, pad)
	copy(dst[start+pad:], dst[start:start+n])
	for i := start; i < start+pad; i++ {
		dst[i] = ' '
	}
	return dst, nil
}

func appendSpaces(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, ' ')
	}
	return dst
}

// bindArgs wraps numeric arguments with a Formatter using the Printer's
// symbols.
func (p *Printer) bindArgs(a []any) []any {
	out := make([]any, len(a))
	for i, x := range a {
		if _, ok := x.(fmt.Formatter); ok {
			out[i] = x
			continue
		}
		if v, err := number.Of(x); err == nil {
			out[i] = number.NewFormatter(v, "", p.sym)
			continue
		}
		out[i] = x
	}
	return out
}

type messageError struct {
	msg string
}

func (e *messageError) Error() string { return e.msg }

type wrapError struct {
	msg string
	err error
}

func (e *wrapError) Error() string { return e.msg }

func (e *wrapError) Unwrap() error { return e.err }

type wrapErrors struct {
	msg  string
	errs []error
}

func (e *wrapErrors) Error() string { return e.msg }

func (e *wrapErrors) Unwrap() []error { return e.errs }
