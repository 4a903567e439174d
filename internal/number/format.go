// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// Append appends v formatted according to spec to dst. A nil sym selects the
// invariant symbols; other symbols must pass Validate.
func Append(dst []byte, spec *Spec, v Value, sym *Symbols) ([]byte, error) {
	if sym == nil {
		sym = invariantSymbols()
	} else if err := sym.Validate(); err != nil {
		return dst, err
	}
	if spec.Standard {
		return FormatStandard(dst, spec, v, sym)
	}
	return FormatCustom(dst, spec, v, sym)
}

// Format returns v formatted according to spec.
func Format(spec *Spec, v Value, sym *Symbols) (string, error) {
	b, err := Append(make([]byte, 0, 32), spec, v, sym)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
