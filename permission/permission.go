// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package permission - per asset access flags for principals
//
// key: 8 byte big endian asset ID ++ principal account bytes
// value: a single byte, 0x01 authorized, 0x00 not
package permission

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// stored flag values
const (
	denied     = 0x00
	authorized = 0x01
)

// Store - permission entries
type Store struct {
	pool storage.Handle
}

// New - entries held in pool
func New(pool storage.Handle) *Store {
	return &Store{
		pool: pool,
	}
}

// Key - database key for an (asset, principal) pair
func Key(id uint64, principal *account.Account) []byte {
	principalBytes := principal.Bytes()
	key := make([]byte, 8, 8+len(principalBytes))
	binary.BigEndian.PutUint64(key, id)
	return append(key, principalBytes...)
}

// Grant - stage an entry for a principal
func (s *Store) Grant(trx storage.Transaction, id uint64, principal *account.Account, flag bool) {
	value := []byte{denied}
	if flag {
		value[0] = authorized
	}
	trx.Put(s.pool, Key(id, principal), value)
}

// Get - committed flag for a principal
//
// found is false when no entry exists
func (s *Store) Get(id uint64, principal *account.Account) (bool, bool) {
	value := s.pool.Get(Key(id, principal))
	if nil == value {
		return false, false
	}
	if 1 != len(value) {
		logger.Panicf("permission: id: %d  principal: %s  invalid value: %x", id, principal, value)
	}
	return authorized == value[0], true
}
