// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - staged values of the open transaction
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

// a transaction lives for microseconds, these only bound a leak
// if a caller forgets to commit or abort
const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
