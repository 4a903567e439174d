// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"fmt"
	"unicode/utf8"
)

// A Formatter binds a Value to a format string and symbols so that it can be
// passed to the print functions of package fmt. It supports the verbs %v and
// %s, the width and the '-' flag.
type Formatter struct {
	v      Value
	format string
	sym    *Symbols
}

// NewFormatter returns a Formatter that renders v according to format.
func NewFormatter(v Value, format string, sym *Symbols) Formatter {
	return Formatter{v: v, format: format, sym: sym}
}

// String returns the formatted value, or an error marker if v cannot be
// formatted.
func (f Formatter) String() string {
	s, err := Format(f.v, f.format, f.sym)
	if err != nil {
		return fmt.Sprintf("%%!(%s=%v)", f.format, err)
	}
	return s
}

// Format implements fmt.Formatter.
func (f Formatter) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
	default:
		fmt.Fprintf(st, "%%!%c(number=%s)", verb, f.String())
		return
	}
	b, err := Append(nil, f.v, f.format, f.sym)
	if err != nil {
		fmt.Fprintf(st, "%%!%c(%s=%v)", verb, f.format, err)
		return
	}
	pad := 0
	if w, ok := st.Width(); ok {
		pad = w - utf8.RuneCount(b)
	}
	if pad > 0 && !st.Flag('-') {
		writePadding(st, pad)
	}
	st.Write(b)
	if pad > 0 && st.Flag('-') {
		writePadding(st, pad)
	}
}

func writePadding(st fmt.State, n int) {
	const spaces = "                "
	for n > len(spaces) {
		fmt.Fprint(st, spaces)
		n -= len(spaces)
	}
	fmt.Fprint(st, spaces[:n])
}
