// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/fixtures"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/storage"
)

// a height that only moves when told
type testMarker struct {
	sync.Mutex
	height uint64
}

func (m *testMarker) Height() uint64 {
	m.Lock()
	defer m.Unlock()
	return m.height
}

func (m *testMarker) set(h uint64) {
	m.Lock()
	m.height = h
	m.Unlock()
}

func setupTestRegistry(t *testing.T) (*registry.Registry, *testMarker, string) {
	fixtures.SetupTestLogger()

	directory, err := fixtures.SetupTestStorage()
	if nil != err {
		fixtures.TeardownTestLogger()
		t.Fatalf("storage setup error: %s", err)
	}

	marker := &testMarker{height: 100}
	handles := registry.Handles{
		Assets:      storage.Pool.Assets,
		Permissions: storage.Pool.Permissions,
		Counters:    storage.Pool.Counters,
	}
	r := registry.New(handles, true, marker, storage.NewDBTransaction)
	return r, marker, directory
}

func teardownTestRegistry(directory string) {
	fixtures.TeardownTestStorage(directory)
	fixtures.TeardownTestLogger()
}

func validMetadata() *asset.Metadata {
	return &asset.Metadata{
		Title:       "Photo1",
		Size:        2048,
		Description: "desc",
		Tags:        []string{"art"},
	}
}

func TestScenario(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()
	receiver := fixtures.Receiver.Account()

	id, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")
	assert.Equal(t, uint64(1), id, "wrong first id")

	modified := &asset.Metadata{
		Title:       "Photo1b",
		Size:        4096,
		Description: "desc2",
		Tags:        []string{"art", "new"},
	}
	ok, err := r.Modify(owner, 1, modified)
	assert.Nil(t, err, "modify error")
	assert.True(t, ok, "modify not ok")

	record, err := r.Get(1)
	assert.Nil(t, err, "get error")
	assert.Equal(t, *modified, record.Metadata, "metadata not replaced")
	assert.True(t, owner.Equal(record.Owner), "owner changed by modify")

	ok, err = r.Transfer(owner, 1, receiver)
	assert.Nil(t, err, "transfer error")
	assert.True(t, ok, "transfer not ok")

	ok, err = r.Modify(owner, 1, validMetadata())
	assert.Equal(t, fault.OwnershipVerificationFailed, err, "previous owner modified")
	assert.False(t, ok, "failed modify returned ok")

	record, err = r.Get(1)
	assert.Nil(t, err, "get error")
	assert.True(t, receiver.Equal(record.Owner), "owner not transferred")
	assert.Equal(t, *modified, record.Metadata, "metadata changed by failed modify")
}

func TestRegisterRecord(t *testing.T) {
	r, marker, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()

	marker.set(321)
	id, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")

	marker.set(999)

	record, err := r.Get(id)
	assert.Nil(t, err, "get error")
	assert.True(t, owner.Equal(record.Owner), "owner is not the caller")
	assert.Equal(t, uint64(321), record.RegisteredAt, "wrong registration height")
	assert.Equal(t, *validMetadata(), record.Metadata, "wrong metadata")

	flag, err := r.Permission(id, owner)
	assert.Nil(t, err, "permission error")
	assert.True(t, flag, "registrant not authorized")

	flag, err = r.Permission(id, fixtures.Other.Account())
	assert.Nil(t, err, "permission error")
	assert.False(t, flag, "other principal authorized")

	// registration height survives modify and transfer
	_, err = r.Modify(owner, id, validMetadata())
	assert.Nil(t, err, "modify error")
	_, err = r.Transfer(owner, id, fixtures.Receiver.Account())
	assert.Nil(t, err, "transfer error")

	record, err = r.Get(id)
	assert.Nil(t, err, "get error")
	assert.Equal(t, uint64(321), record.RegisteredAt, "registration height changed")
}

func TestSequentialIDs(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()

	for i := uint64(1); i <= 20; i += 1 {
		before := r.Count()
		id, err := r.Register(owner, validMetadata())
		assert.Nil(t, err, "register error")
		assert.Equal(t, before+1, id, "id is not counter + 1")
		assert.Equal(t, i, id, "wrong id")
		assert.Equal(t, id, r.Count(), "counter not advanced")

		// a rejected registration does not consume an id
		bad := validMetadata()
		bad.Size = 0
		_, err = r.Register(owner, bad)
		assert.Equal(t, fault.AssetSizeConstraintViolation, err, "invalid size accepted")
		assert.Equal(t, id, r.Count(), "rejected registration advanced counter")
	}
}

func TestConcurrentRegister(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	const workers = 8
	const loops = 10

	owner := fixtures.Owner.Account()

	var wg sync.WaitGroup
	var mutex sync.Mutex
	seen := make(map[uint64]bool)

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < loops; j += 1 {
				id, err := r.Register(owner, validMetadata())
				if nil != err {
					t.Errorf("register error: %s", err)
					return
				}
				mutex.Lock()
				seen[id] = true
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*loops), r.Count(), "wrong final count")
	for id := uint64(1); id <= workers*loops; id += 1 {
		assert.True(t, seen[id], "id: %d not issued", id)
	}
}

func TestNotFound(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	callers := []*namedCaller{
		{"owner", fixtures.Owner.Account()},
		{"other", fixtures.Other.Account()},
	}

	for _, c := range callers {
		ok, err := r.Modify(c.account, 42, validMetadata())
		assert.Equal(t, fault.AssetNotFound, err, "%s: modify of missing asset", c.name)
		assert.False(t, ok, "%s: modify returned ok", c.name)

		ok, err = r.Transfer(c.account, 42, fixtures.Receiver.Account())
		assert.Equal(t, fault.AssetNotFound, err, "%s: transfer of missing asset", c.name)
		assert.False(t, ok, "%s: transfer returned ok", c.name)

		// the new owner's network is not looked at before the asset
		ok, err = r.Transfer(c.account, 42, fixtures.LiveKey.Account())
		assert.Equal(t, fault.AssetNotFound, err, "%s: transfer of missing asset to live account", c.name)
		assert.False(t, ok, "%s: transfer to live account returned ok", c.name)
	}

	_, err := r.Get(42)
	assert.Equal(t, fault.AssetNotFound, err, "get of missing asset")

	_, err = r.Permission(42, fixtures.Owner.Account())
	assert.Equal(t, fault.AssetNotFound, err, "permission of missing asset")
}

func TestNotOwner(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()
	other := fixtures.Other.Account()

	id, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")

	changed := validMetadata()
	changed.Title = "stolen"
	ok, err := r.Modify(other, id, changed)
	assert.Equal(t, fault.OwnershipVerificationFailed, err, "non-owner modified")
	assert.False(t, ok, "non-owner modify returned ok")

	ok, err = r.Transfer(other, id, other)
	assert.Equal(t, fault.OwnershipVerificationFailed, err, "non-owner transferred")
	assert.False(t, ok, "non-owner transfer returned ok")

	ok, err = r.Transfer(other, id, fixtures.LiveKey.Account())
	assert.Equal(t, fault.OwnershipVerificationFailed, err, "non-owner transferred to live account")
	assert.False(t, ok, "non-owner transfer to live account returned ok")

	record, err := r.Get(id)
	assert.Nil(t, err, "get error")
	assert.Equal(t, *validMetadata(), record.Metadata, "record changed")
	assert.True(t, owner.Equal(record.Owner), "owner changed")
}

func TestTransferRepeated(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()
	receiver := fixtures.Receiver.Account()

	id, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")

	// self transfer
	ok, err := r.Transfer(owner, id, owner)
	assert.Nil(t, err, "self transfer error")
	assert.True(t, ok, "self transfer not ok")

	ok, err = r.Transfer(owner, id, receiver)
	assert.Nil(t, err, "first transfer error")
	assert.True(t, ok, "first transfer not ok")

	ok, err = r.Transfer(receiver, id, receiver)
	assert.Nil(t, err, "second transfer error")
	assert.True(t, ok, "second transfer not ok")

	record, err := r.Get(id)
	assert.Nil(t, err, "get error")
	assert.True(t, receiver.Equal(record.Owner), "wrong final owner")
}

func TestMissingParameters(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()

	_, err := r.Register(nil, validMetadata())
	assert.Equal(t, fault.MissingParameters, err, "nil caller")
	_, err = r.Register(owner, nil)
	assert.Equal(t, fault.MissingParameters, err, "nil metadata")

	id, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")

	_, err = r.Modify(owner, id, nil)
	assert.Equal(t, fault.MissingParameters, err, "nil metadata")
	_, err = r.Transfer(owner, id, nil)
	assert.Equal(t, fault.MissingParameters, err, "nil new owner")
	_, err = r.Permission(id, nil)
	assert.Equal(t, fault.MissingParameters, err, "nil principal")
}

func TestWrongNetwork(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()
	live := fixtures.LiveKey.Account()

	_, err := r.Register(live, validMetadata())
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live caller on test registry")

	id, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")

	_, err = r.Transfer(owner, id, live)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "transfer to live account")
}

// a failure inside the transaction leaves nothing behind
func TestRegisterAtomic(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()

	// occupy the next id behind the counter's back
	blocker := &asset.Record{
		Metadata:     *validMetadata(),
		Owner:        fixtures.Other.Account(),
		RegisteredAt: 1,
	}
	packed, err := blocker.Pack()
	assert.Nil(t, err, "pack error")
	storage.Pool.Assets.Put(asset.Key(1), packed)

	_, err = r.Register(owner, validMetadata())
	assert.Equal(t, fault.DuplicateAssetRegistration, err, "collision not detected")

	assert.Equal(t, uint64(0), r.Count(), "counter advanced")

	flag, err := r.Permission(1, owner)
	assert.Nil(t, err, "permission error")
	assert.False(t, flag, "permission granted by failed registration")

	record, err := r.Get(1)
	assert.Nil(t, err, "get error")
	assert.True(t, fixtures.Other.Account().Equal(record.Owner), "blocking record overwritten")

	// the transaction was released
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction left open")
	trx.Abort()
}

func TestPersistence(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()
	id, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")

	storage.Finalise()
	err = storage.Initialise(directory+"/test.leveldb", storage.ReadWrite)
	assert.Nil(t, err, "reopen error")

	handles := registry.Handles{
		Assets:      storage.Pool.Assets,
		Permissions: storage.Pool.Permissions,
		Counters:    storage.Pool.Counters,
	}
	reopened := registry.New(handles, true, &testMarker{}, storage.NewDBTransaction)

	assert.Equal(t, uint64(1), reopened.Count(), "counter lost")
	record, err := reopened.Get(id)
	assert.Nil(t, err, "record lost")
	assert.True(t, owner.Equal(record.Owner), "wrong owner after reopen")

	id, err = reopened.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")
	assert.Equal(t, uint64(2), id, "id reused after reopen")
}

type namedCaller struct {
	name    string
	account *account.Account
}

// boundary checks through the registry
func TestRegisterBoundaries(t *testing.T) {
	r, _, directory := setupTestRegistry(t)
	defer teardownTestRegistry(directory)

	owner := fixtures.Owner.Account()

	tenTags := make([]string, 10)
	elevenTags := make([]string, 11)
	for i := range elevenTags {
		elevenTags[i] = "t"
	}
	copy(tenTags, elevenTags)

	existing, err := r.Register(owner, validMetadata())
	assert.Nil(t, err, "register error")

	tests := []struct {
		name   string
		modify func(m *asset.Metadata)
		err    error
	}{
		{"title empty", func(m *asset.Metadata) { m.Title = "" }, fault.MalformedAssetData},
		{"title 1", func(m *asset.Metadata) { m.Title = "x" }, nil},
		{"title 64", func(m *asset.Metadata) { m.Title = strings.Repeat("x", 64) }, nil},
		{"title 65", func(m *asset.Metadata) { m.Title = strings.Repeat("x", 65) }, fault.MalformedAssetData},
		{"description empty", func(m *asset.Metadata) { m.Description = "" }, fault.MalformedAssetData},
		{"description 1", func(m *asset.Metadata) { m.Description = "d" }, nil},
		{"description 128", func(m *asset.Metadata) { m.Description = strings.Repeat("d", 128) }, nil},
		{"description 129", func(m *asset.Metadata) { m.Description = strings.Repeat("d", 129) }, fault.MalformedAssetData},
		{"size 0", func(m *asset.Metadata) { m.Size = 0 }, fault.AssetSizeConstraintViolation},
		{"size 1", func(m *asset.Metadata) { m.Size = 1 }, nil},
		{"size 999999999", func(m *asset.Metadata) { m.Size = 999999999 }, nil},
		{"size 1000000000", func(m *asset.Metadata) { m.Size = 1000000000 }, fault.AssetSizeConstraintViolation},
		{"tags none", func(m *asset.Metadata) { m.Tags = nil }, fault.MetadataValidationFailure},
		{"tags 1", func(m *asset.Metadata) { m.Tags = []string{"t"} }, nil},
		{"tags 10", func(m *asset.Metadata) { m.Tags = tenTags }, nil},
		{"tags 11", func(m *asset.Metadata) { m.Tags = elevenTags }, fault.MetadataValidationFailure},
		{"tag empty", func(m *asset.Metadata) { m.Tags = []string{"a", ""} }, fault.MetadataValidationFailure},
		{"tag 33", func(m *asset.Metadata) { m.Tags = []string{strings.Repeat("t", 33)} }, fault.MetadataValidationFailure},
		{"title before size", func(m *asset.Metadata) { m.Title = ""; m.Size = 0 }, fault.MalformedAssetData},
		{"size before tags", func(m *asset.Metadata) { m.Size = 0; m.Tags = nil }, fault.AssetSizeConstraintViolation},
		{"description before tags", func(m *asset.Metadata) { m.Description = ""; m.Tags = nil }, fault.MalformedAssetData},
	}

	for _, test := range tests {
		m := validMetadata()
		test.modify(m)

		before := r.Count()
		id, err := r.Register(owner, m)
		assert.Equal(t, test.err, err, "%s: wrong error", test.name)
		if nil == test.err {
			assert.Equal(t, before+1, id, "%s: wrong id", test.name)
			continue
		}
		assert.Equal(t, uint64(0), id, "%s: id returned on failure", test.name)
		assert.Equal(t, before, r.Count(), "%s: counter moved on failure", test.name)

		// modify applies the same rules
		ok, err := r.Modify(owner, existing, m)
		assert.Equal(t, test.err, err, "%s: wrong modify error", test.name)
		assert.False(t, ok, "%s: modify returned ok", test.name)

		record, err := r.Get(existing)
		assert.Nil(t, err, "%s: get error", test.name)
		assert.Equal(t, *validMetadata(), record.Metadata, "%s: rejected modify changed the record", test.name)
	}
}
