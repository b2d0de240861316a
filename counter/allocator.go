// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
)

// Allocator - a persisted counter handing out sequential IDs
//
// the value starts at zero, the first ID issued is one and IDs are
// never reused; callers must serialise Next and Advance
type Allocator struct {
	pool storage.Handle
	key  []byte
}

// NewAllocator - counter stored under name in the given pool
func NewAllocator(pool storage.Handle, name string) *Allocator {
	return &Allocator{
		pool: pool,
		key:  []byte(name),
	}
}

// Current - the last ID issued, zero if none
func (a *Allocator) Current() uint64 {
	n, _ := a.pool.GetN(a.key)
	return n
}

// Next - the ID the next registration will receive
func (a *Allocator) Next() uint64 {
	return a.Current() + 1
}

// Advance - stage the counter move to id
//
// id must be exactly one more than the value seen through trx
func (a *Allocator) Advance(trx storage.Transaction, id uint64) error {
	current, _ := trx.GetN(a.pool, a.key)
	if current+1 != id {
		return fault.InvalidCount
	}
	trx.PutN(a.pool, a.key, id)
	return nil
}
