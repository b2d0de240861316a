// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing group of writes across pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

// TransactionData - Transaction over a single DataAccess
type TransactionData struct {
	dataAccess DataAccess
}

func newTransaction(dataAccess DataAccess) Transaction {
	return &TransactionData{
		dataAccess: dataAccess,
	}
}

// Begin - open the transaction, error if already open
func (t *TransactionData) Begin() error {
	return t.dataAccess.Begin()
}

// Abort - discard every staged write
func (t *TransactionData) Abort() {
	t.dataAccess.Abort()
}

// Commit - write every staged write atomically
func (t *TransactionData) Commit() error {
	return t.dataAccess.Commit()
}

// Put - stage a key/value pair
func (t *TransactionData) Put(handle Handle, key []byte, value []byte) {
	t.dataAccess.Put(prefixKey(handle.Prefix(), key), value)
}

// PutN - stage an 8 byte big endian value
func (t *TransactionData) PutN(handle Handle, key []byte, value uint64) {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

// Get - read including staged values
func (t *TransactionData) Get(handle Handle, key []byte) []byte {
	value, err := t.dataAccess.Get(prefixKey(handle.Prefix(), key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read an 8 byte big endian value including staged values
func (t *TransactionData) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

// Has - check existence including staged values
func (t *TransactionData) Has(handle Handle, key []byte) bool {
	found, err := t.dataAccess.Has(prefixKey(handle.Prefix(), key))
	logger.PanicIfError("transaction.Has", err)
	return found
}
