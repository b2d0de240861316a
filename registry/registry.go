// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/counter"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/height"
	"github.com/bitmark-inc/assetregistry/permission"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/assetregistry/validate"
	"github.com/bitmark-inc/logger"
)

// name of the ID counter in the counters pool
const assetCounterName = "asset"

// Handles - the pools the registry works on
type Handles struct {
	Assets      storage.Handle
	Permissions storage.Handle
	Counters    storage.Handle
}

// TransactionFunc - source of the write transaction
type TransactionFunc func() (storage.Transaction, error)

// Registry - the asset registry
type Registry struct {
	sync.Mutex // serialises all writers

	log            *logger.L
	testnet        bool
	assets         *asset.Store
	permissions    *permission.Store
	allocator      *counter.Allocator
	marker         height.Marker
	newTransaction TransactionFunc
}

// New - create a registry over the given pools
//
// testnet selects which network owner accounts must belong to
func New(handles Handles, testnet bool, marker height.Marker, newTransaction TransactionFunc) *Registry {
	return &Registry{
		log:            logger.New("registry"),
		testnet:        testnet,
		assets:         asset.NewStore(handles.Assets, testnet),
		permissions:    permission.New(handles.Permissions),
		allocator:      counter.NewAllocator(handles.Counters, assetCounterName),
		marker:         marker,
		newTransaction: newTransaction,
	}
}

// Register - create a new asset owned by the caller
//
// returns the new asset ID
func (r *Registry) Register(caller *account.Account, metadata *asset.Metadata) (uint64, error) {
	if nil == caller || nil == metadata {
		return 0, fault.MissingParameters
	}
	if caller.IsTesting() != r.testnet {
		return 0, fault.WrongNetworkForPublicKey
	}

	r.Lock()
	defer r.Unlock()

	newID := r.allocator.Next()

	err := checkMetadata(metadata)
	if nil != err {
		r.log.Debugf("register: id: %d  rejected: %s", newID, err)
		return 0, err
	}

	record := &asset.Record{
		Metadata:     metadata.Copy(),
		Owner:        caller,
		RegisteredAt: r.marker.Height(),
	}

	err = r.commit(func(trx storage.Transaction) error {
		err := r.assets.Insert(trx, newID, record)
		if nil != err {
			return err
		}
		r.permissions.Grant(trx, newID, caller, true)
		return r.allocator.Advance(trx, newID)
	})
	if nil != err {
		r.log.Warnf("register: id: %d  error: %s", newID, err)
		return 0, err
	}

	r.log.Infof("registered: id: %d  owner: %s  height: %d", newID, caller, record.RegisteredAt)
	return newID, nil
}

// Modify - replace the metadata of an asset owned by the caller
func (r *Registry) Modify(caller *account.Account, id uint64, metadata *asset.Metadata) (bool, error) {
	if nil == caller || nil == metadata {
		return false, fault.MissingParameters
	}

	r.Lock()
	defer r.Unlock()

	record, err := r.owned(caller, id)
	if nil != err {
		return false, err
	}

	err = checkMetadata(metadata)
	if nil != err {
		r.log.Debugf("modify: id: %d  rejected: %s", id, err)
		return false, err
	}

	record.Metadata = metadata.Copy()

	err = r.commit(func(trx storage.Transaction) error {
		return r.assets.Set(trx, id, record)
	})
	if nil != err {
		r.log.Warnf("modify: id: %d  error: %s", id, err)
		return false, err
	}

	r.log.Infof("modified: id: %d", id)
	return true, nil
}

// Transfer - change the owner of an asset owned by the caller
//
// transfer to the caller itself is allowed
func (r *Registry) Transfer(caller *account.Account, id uint64, newOwner *account.Account) (bool, error) {
	if nil == caller || nil == newOwner {
		return false, fault.MissingParameters
	}

	r.Lock()
	defer r.Unlock()

	record, err := r.owned(caller, id)
	if nil != err {
		return false, err
	}

	// a record owned by an account of the other network could not be unpacked
	if newOwner.IsTesting() != r.testnet {
		return false, fault.WrongNetworkForPublicKey
	}

	record.Owner = newOwner

	err = r.commit(func(trx storage.Transaction) error {
		return r.assets.Set(trx, id, record)
	})
	if nil != err {
		r.log.Warnf("transfer: id: %d  error: %s", id, err)
		return false, err
	}

	r.log.Infof("transferred: id: %d  from: %s  to: %s", id, caller, newOwner)
	return true, nil
}

// Get - committed record for an asset
func (r *Registry) Get(id uint64) (*asset.Record, error) {
	record := r.assets.Get(id)
	if nil == record {
		return nil, fault.AssetNotFound
	}
	return record, nil
}

// Permission - stored flag for a principal on an asset
//
// false when the principal has no entry
func (r *Registry) Permission(id uint64, principal *account.Account) (bool, error) {
	if nil == principal {
		return false, fault.MissingParameters
	}
	if !r.assets.Exists(id) {
		return false, fault.AssetNotFound
	}
	flag, _ := r.permissions.Get(id, principal)
	return flag, nil
}

// Count - number of assets registered
func (r *Registry) Count() uint64 {
	return r.allocator.Current()
}

// lookup a record and confirm the caller owns it
func (r *Registry) owned(caller *account.Account, id uint64) (*asset.Record, error) {
	record := r.assets.Get(id)
	if nil == record {
		return nil, fault.AssetNotFound
	}
	if !record.Owner.Equal(caller) {
		return nil, fault.OwnershipVerificationFailed
	}
	return record, nil
}

// run f inside a transaction, commit on success, abort otherwise
func (r *Registry) commit(f func(trx storage.Transaction) error) error {
	trx, err := r.newTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	return trx.Commit()
}

// validate in order: title, size, description, tags
func checkMetadata(metadata *asset.Metadata) error {
	if !validate.Title(metadata.Title) {
		return fault.MalformedAssetData
	}
	if !validate.Size(metadata.Size) {
		return fault.AssetSizeConstraintViolation
	}
	if !validate.Description(metadata.Description) {
		return fault.MalformedAssetData
	}
	if !validate.Tags(metadata.Tags) {
		return fault.MetadataValidationFailure
	}
	return nil
}
