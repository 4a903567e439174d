// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/patrickmn/go-cache"

	"github.com/corefmt/numfmt/internal/number"
)

const (
	// DefaultCacheExpiration is how long a parsed format string is kept
	// after it was last stored.
	DefaultCacheExpiration = 10 * time.Minute

	// NoCacheExpiration keeps parsed format strings until FlushCache.
	NoCacheExpiration = cache.NoExpiration

	cleanupInterval = time.Minute

	// Format strings longer than maxCachedLen are parsed on every call, and
	// no new entries are added while the cache holds maxCachedSpecs.
	maxCachedLen   = 64
	maxCachedSpecs = 4096
)

// specs caches parsed format strings keyed by the format string. Parsing is
// pure, so concurrent misses for the same key only duplicate work.
var specs atomic.Pointer[cache.Cache]

func init() {
	specs.Store(cache.New(DefaultCacheExpiration, cleanupInterval))
}

func parse(format string) *number.Spec {
	c := specs.Load()
	if s, ok := c.Get(format); ok {
		return s.(*number.Spec)
	}
	s := number.Parse(format)
	if len(format) <= maxCachedLen && c.ItemCount() < maxCachedSpecs {
		c.SetDefault(format, s)
	}
	return s
}

// SetCacheExpiration replaces the cache of parsed format strings with an
// empty one whose entries expire after d.
func SetCacheExpiration(d time.Duration) {
	interval := cleanupInterval
	if d == NoCacheExpiration {
		interval = 0
	}
	old := specs.Swap(cache.New(d, interval))
	glog.V(2).Infof("number: format cache reset with expiration %v, dropped %d entries", d, old.ItemCount())
}

// FlushCache removes all parsed format strings from the cache.
func FlushCache() {
	specs.Load().Flush()
}

// CacheLen reports the number of parsed format strings currently cached,
// including expired entries not yet cleaned up.
func CacheLen() int {
	return specs.Load().ItemCount()
}
