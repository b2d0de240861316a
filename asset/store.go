// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// Store - asset records keyed by ID
type Store struct {
	pool    storage.Handle
	testnet bool
}

// NewStore - records held in pool, owners must match the network
func NewStore(pool storage.Handle, testnet bool) *Store {
	return &Store{
		pool:    pool,
		testnet: testnet,
	}
}

// Get - fetch a committed record, nil if absent
//
// an undecodable record is fatal
func (s *Store) Get(id uint64) *Record {
	packed := s.pool.Get(Key(id))
	if nil == packed {
		return nil
	}
	record, _, err := Packed(packed).Unpack(s.testnet)
	if nil != err {
		logger.Panicf("asset: id: %d  unpack error: %s", id, err)
	}
	return record
}

// Exists - check for a committed record
func (s *Store) Exists(id uint64) bool {
	return s.pool.Has(Key(id))
}

// Insert - stage a new record
//
// staged records in the same transaction count as present
func (s *Store) Insert(trx storage.Transaction, id uint64, record *Record) error {
	key := Key(id)
	if trx.Has(s.pool, key) {
		return fault.DuplicateAssetRegistration
	}
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	trx.Put(s.pool, key, packed)
	return nil
}

// Set - stage an overwrite of a record
func (s *Store) Set(trx storage.Transaction, id uint64, record *Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	trx.Put(s.pool, Key(id), packed)
	return nil
}
