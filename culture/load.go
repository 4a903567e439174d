// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package culture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

// ErrInvalidTable is returned for a culture table that cannot be parsed.
var ErrInvalidTable = errors.New("culture: invalid table")

type tableFile struct {
	Cultures []entry `json:"cultures"`
}

type entry struct {
	Tag      string          `json:"tag"`
	Base     string          `json:"base,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Symbols  json.RawMessage `json:"symbols,omitempty"`
}

// Load reads a culture table in YAML from r. Entries whose symbols fail
// validation are skipped with a warning.
func Load(r io.Reader) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

// LoadFile reads a culture table from the named YAML file.
func LoadFile(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parse(b []byte) (*Table, error) {
	var f tableFile
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	defined := map[string]*Culture{}
	var cultures []*Culture
	for i, e := range f.Cultures {
		c, err := e.resolve(defined)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidTable, i, err)
		}
		if err := c.symbols.Validate(); err != nil {
			glog.Warningf("culture: skipping %s: %v", e.Tag, err)
			continue
		}
		defined[e.Tag] = c
		cultures = append(cultures, c)
	}
	return newTable(cultures), nil
}

// resolve builds the culture of e on top of its base.
func (e *entry) resolve(defined map[string]*Culture) (*Culture, error) {
	tag, err := language.Parse(e.Tag)
	if err != nil {
		return nil, fmt.Errorf("tag %q: %v", e.Tag, err)
	}
	base := invariantCulture
	if e.Base != "" {
		b, ok := defined[e.Base]
		if !ok {
			return nil, fmt.Errorf("%s: base %q is not defined before it", e.Tag, e.Base)
		}
		base = b
	}

	c := &Culture{
		Tag:      tag,
		Currency: base.Currency,
		symbols:  base.symbols.Clone(),
	}
	if len(e.Symbols) > 0 {
		dec := json.NewDecoder(bytes.NewReader(e.Symbols))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c.symbols); err != nil {
			return nil, fmt.Errorf("%s: symbols: %v", e.Tag, err)
		}
	}

	var keys map[string]json.RawMessage
	if len(e.Symbols) > 0 {
		if err := json.Unmarshal(e.Symbols, &keys); err != nil {
			return nil, fmt.Errorf("%s: symbols: %v", e.Tag, err)
		}
	}
	if err := c.setCurrency(e.Currency, keys); err != nil {
		return nil, fmt.Errorf("%s: %v", e.Tag, err)
	}
	return c, nil
}
