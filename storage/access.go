// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/assetregistry/fault"
)

// DataAccess - batched access to the database
//
// Put only stages a value; Get and Has see staged values first.
// The *DB methods bypass the batch completely.
type DataAccess interface {
	Abort()
	Begin() error
	Commit() error
	Get([]byte) ([]byte, error)
	GetFromDB([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	HasInDB([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte)
	PutToDB([]byte, []byte) error
}

// AccessData - the leveldb implementation of DataAccess
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) DataAccess {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

// Begin - start staging
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyInUse
	}

	d.inUse = true
	return nil
}

// Put - stage a value
func (d *AccessData) Put(key []byte, value []byte) {
	stored := append([]byte{}, value...)
	d.cache.Set(string(key), stored)
	d.batch.Put(key, stored)
}

// Commit - write all staged values in one batch
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotInUse
	}

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Abort - discard all staged values
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// Get - staged value, or the database value
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, found := d.cache.Get(string(key))
	if found {
		return val, nil
	}
	return d.GetFromDB(key)
}

// GetFromDB - committed value only
func (d *AccessData) GetFromDB(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

// Has - staged or committed
func (d *AccessData) Has(key []byte) (bool, error) {
	_, found := d.cache.Get(string(key))
	if found {
		return true, nil
	}
	return d.HasInDB(key)
}

// HasInDB - committed only
func (d *AccessData) HasInDB(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

// PutToDB - immediate write, not part of any batch
func (d *AccessData) PutToDB(key []byte, value []byte) error {
	return d.db.Put(key, value, nil)
}

// InUse - a transaction is open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
