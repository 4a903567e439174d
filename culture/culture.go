// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package culture provides the number formatting symbols of cultures
// identified by BCP 47 language tags.
//
// A built-in table covers a set of common cultures. Tables in the same YAML
// format can be loaded with Load and LoadFile:
//
//	cultures:
//	- tag: de
//	  currency: EUR
//	  symbols:
//	    numberDecimalSeparator: ","
//	    numberGroupSeparator: "."
//	- tag: de-CH
//	  base: de
//	  currency: CHF
//	  symbols:
//	    numberDecimalSeparator: "."
//
// An entry starts from the symbols of its base entry, or from the invariant
// symbols if it has none, and overrides only the fields it lists.
package culture // import "github.com/corefmt/numfmt/culture"

import (
	_ "embed"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/corefmt/numfmt/number"
)

// A Culture is a named set of number formatting symbols.
type Culture struct {
	Tag language.Tag

	// Currency is the ISO 4217 currency of the culture, or currency.XXX if
	// it has none.
	Currency currency.Unit

	symbols *number.Symbols
}

// Symbols returns a copy of the culture's symbols.
func (c *Culture) Symbols() *number.Symbols {
	return c.symbols.Clone()
}

// A Table holds cultures and selects one for a language tag. A Table is safe
// for concurrent use.
type Table struct {
	cultures map[language.Tag]*Culture
	tags     []language.Tag
	matcher  language.Matcher
}

func newTable(cultures []*Culture) *Table {
	t := &Table{cultures: make(map[language.Tag]*Culture, len(cultures))}
	for _, c := range cultures {
		if _, dup := t.cultures[c.Tag]; !dup {
			t.tags = append(t.tags, c.Tag)
		}
		t.cultures[c.Tag] = c
	}
	if len(t.tags) > 0 {
		t.matcher = language.NewMatcher(t.tags)
	}
	return t
}

// Tags returns the tags of the cultures in t in the order they were defined.
func (t *Table) Tags() []language.Tag {
	return append([]language.Tag(nil), t.tags...)
}

// Culture returns the culture defined for exactly tag.
func (t *Table) Culture(tag language.Tag) (*Culture, bool) {
	c, ok := t.cultures[tag]
	return c, ok
}

// Lookup returns the culture that best serves tag. It tries tag itself, then
// its parents, then the closest culture with at least high match confidence.
// If none qualifies, Lookup returns the invariant culture.
func (t *Table) Lookup(tag language.Tag) *Culture {
	if c, ok := t.cultures[tag]; ok {
		return c
	}
	for p := tag.Parent(); ; p = p.Parent() {
		if c, ok := t.cultures[p]; ok {
			glog.V(2).Infof("culture: %v served by parent %v", tag, p)
			return c
		}
		if p.IsRoot() {
			break
		}
	}
	if t.matcher != nil {
		_, i, conf := t.matcher.Match(tag)
		if conf >= language.High {
			glog.V(2).Infof("culture: %v matched %v with confidence %v", tag, t.tags[i], conf)
			return t.cultures[t.tags[i]]
		}
	}
	glog.V(2).Infof("culture: no culture for %v; using invariant", tag)
	return invariantCulture
}

// Symbols returns a copy of the symbols of the culture that best serves tag.
func (t *Table) Symbols(tag language.Tag) *number.Symbols {
	return t.Lookup(tag).Symbols()
}

var invariantCulture = &Culture{
	Tag:      language.Und,
	Currency: currency.XXX,
	symbols:  number.Invariant(),
}

// Invariant returns the culture-independent culture.
func Invariant() *Culture { return invariantCulture }

//go:embed cultures.yaml
var builtin []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := parse(builtin)
		if err != nil {
			panic("culture: invalid built-in table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the culture of the built-in table that best serves tag.
func Lookup(tag language.Tag) *Culture {
	return Default().Lookup(tag)
}
