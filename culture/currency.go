// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package culture

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/corefmt/numfmt/number"
)

// setCurrency selects the currency of c from code, or from the region of its
// tag if code is empty. When the currency changes, the currency symbol and
// decimal digits not listed in keys follow the ISO 4217 data.
func (c *Culture) setCurrency(code string, keys map[string]json.RawMessage) error {
	u := c.Currency
	if code != "" {
		var err error
		if u, err = currency.ParseISO(code); err != nil {
			return fmt.Errorf("currency %q: %v", code, err)
		}
	} else if r, conf := c.Tag.Region(); conf == language.Exact {
		if cu, ok := currency.FromRegion(r); ok {
			u = cu
		}
	}
	if u == c.Currency {
		return nil
	}
	c.Currency = u
	if _, ok := keys["currencySymbol"]; !ok {
		c.symbols.CurrencySymbol = u.String()
	}
	if _, ok := keys["currencyDecimalDigits"]; !ok {
		c.symbols.CurrencyDecimalDigits, _ = currency.Standard.Rounding(u)
	}
	return nil
}

// WithCurrency returns a copy of sym that renders amounts in the currency
// with the given ISO 4217 code. The code becomes the currency symbol and the
// currency decimal digits follow the standard rounding of the currency.
func WithCurrency(sym *number.Symbols, code string) (*number.Symbols, error) {
	u, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("culture: currency %q: %w", code, err)
	}
	if sym == nil {
		sym = number.Invariant()
	}
	s := sym.Clone()
	s.CurrencySymbol = u.String()
	s.CurrencyDecimalDigits, _ = currency.Standard.Rounding(u)
	return s, nil
}
