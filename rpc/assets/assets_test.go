// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/fixtures"
	"github.com/bitmark-inc/assetregistry/rpc/assets"
	"github.com/bitmark-inc/assetregistry/rpc/mocks"
	"github.com/bitmark-inc/assetregistry/rpc/request"
	"github.com/bitmark-inc/logger"
)

func testMetadata() asset.Metadata {
	return asset.Metadata{
		Title:       "Photo1",
		Size:        2048,
		Description: "desc",
		Tags:        []string{"art"},
	}
}

func setupTestAssets(t *testing.T) (*gomock.Controller, *mocks.MockRegistry, *assets.Assets) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)

	a := assets.New(
		logger.New(fixtures.LogCategory),
		r,
		request.NewVerifier(true, request.DefaultWindow),
	)
	return ctl, r, a
}

func teardownTestAssets(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestAssetsRegister(t *testing.T) {
	ctl, r, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	caller := fixtures.Owner.Account()
	metadata := testMetadata()
	timestamp := time.Now().Unix()

	arg := assets.RegisterArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Metadata:  metadata,
		Signature: fixtures.Owner.Sign(request.RegisterMessage(caller, timestamp, &metadata)),
	}

	r.EXPECT().Register(caller, &metadata).Return(uint64(7), nil).Times(1)

	var reply assets.RegisterReply
	err := a.Register(&arg, &reply)
	assert.Nil(t, err, "wrong register")
	assert.Equal(t, uint64(7), reply.Id, "wrong id")

	// the same signed request again
	err = a.Register(&arg, &reply)
	assert.Equal(t, fault.ReplayedRequest, err, "replay accepted")
}

func TestAssetsRegisterBadSignature(t *testing.T) {
	ctl, _, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	caller := fixtures.Owner.Account()
	metadata := testMetadata()
	timestamp := time.Now().Unix()

	arg := assets.RegisterArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Metadata:  metadata,
		Signature: fixtures.Other.Sign(request.RegisterMessage(caller, timestamp, &metadata)),
	}

	var reply assets.RegisterReply
	err := a.Register(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "forged signature accepted")
}

func TestAssetsRegisterExpired(t *testing.T) {
	ctl, _, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	caller := fixtures.Owner.Account()
	metadata := testMetadata()
	timestamp := time.Now().Add(-time.Hour).Unix()

	arg := assets.RegisterArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Metadata:  metadata,
		Signature: fixtures.Owner.Sign(request.RegisterMessage(caller, timestamp, &metadata)),
	}

	var reply assets.RegisterReply
	err := a.Register(&arg, &reply)
	assert.Equal(t, fault.RequestExpired, err, "expired request accepted")
}

func TestAssetsRegisterRegistryError(t *testing.T) {
	ctl, r, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	caller := fixtures.Owner.Account()
	metadata := testMetadata()
	metadata.Size = 0
	timestamp := time.Now().Unix()

	arg := assets.RegisterArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Metadata:  metadata,
		Signature: fixtures.Owner.Sign(request.RegisterMessage(caller, timestamp, &metadata)),
	}

	r.EXPECT().Register(caller, &metadata).Return(uint64(0), fault.AssetSizeConstraintViolation).Times(1)

	var reply assets.RegisterReply
	err := a.Register(&arg, &reply)
	assert.Equal(t, fault.AssetSizeConstraintViolation, err, "wrong error")
}

func TestAssetsModify(t *testing.T) {
	ctl, r, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	caller := fixtures.Owner.Account()
	metadata := testMetadata()
	timestamp := time.Now().Unix()

	arg := assets.ModifyArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Id:        3,
		Metadata:  metadata,
		Signature: fixtures.Owner.Sign(request.ModifyMessage(caller, timestamp, 3, &metadata)),
	}

	r.EXPECT().Modify(caller, uint64(3), &metadata).Return(true, nil).Times(1)

	var reply assets.OkReply
	err := a.Modify(&arg, &reply)
	assert.Nil(t, err, "wrong modify")
	assert.True(t, reply.Ok, "wrong reply")

	// the signature does not cover a different id
	arg.Id = 4
	err = a.Modify(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "id change accepted")
}

func TestAssetsTransfer(t *testing.T) {
	ctl, r, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	caller := fixtures.Owner.Account()
	receiver := fixtures.Receiver.Account()
	timestamp := time.Now().Unix()

	arg := assets.TransferArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Id:        1,
		NewOwner:  receiver,
		Signature: fixtures.Owner.Sign(request.TransferMessage(caller, timestamp, 1, receiver)),
	}

	r.EXPECT().Transfer(caller, uint64(1), receiver).Return(false, fault.OwnershipVerificationFailed).Times(1)

	var reply assets.OkReply
	err := a.Transfer(&arg, &reply)
	assert.Equal(t, fault.OwnershipVerificationFailed, err, "wrong error")
	assert.False(t, reply.Ok, "wrong reply")

	arg.NewOwner = nil
	err = a.Transfer(&arg, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing new owner accepted")
}

func TestAssetsGet(t *testing.T) {
	ctl, r, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	record := &asset.Record{
		Metadata:     testMetadata(),
		Owner:        fixtures.Owner.Account(),
		RegisteredAt: 5,
	}

	r.EXPECT().Get(uint64(1)).Return(record, nil).Times(1)
	r.EXPECT().Get(uint64(2)).Return(nil, fault.AssetNotFound).Times(1)

	arg := assets.GetArguments{Ids: []uint64{1, 2}}
	var reply assets.GetReply

	err := a.Get(&arg, &reply)
	assert.Nil(t, err, "wrong get")
	assert.Equal(t, 1, len(reply.Assets), "wrong asset count")
	assert.Equal(t, uint64(1), reply.Assets[0].Id, "wrong id")
	assert.Equal(t, record, reply.Assets[0].Data, "wrong record")
}

func TestAssetsGetCount(t *testing.T) {
	ctl, _, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	var reply assets.GetReply

	err := a.Get(&assets.GetArguments{}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "empty list accepted")

	err = a.Get(&assets.GetArguments{Ids: make([]uint64, 101)}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversized list accepted")
}

func TestAssetsPermission(t *testing.T) {
	ctl, r, a := setupTestAssets(t)
	defer teardownTestAssets(ctl)

	principal := fixtures.Owner.Account()
	r.EXPECT().Permission(uint64(1), principal).Return(true, nil).Times(1)

	var reply assets.PermissionReply
	err := a.Permission(&assets.PermissionArguments{Id: 1, Principal: principal}, &reply)
	assert.Nil(t, err, "wrong permission")
	assert.True(t, reply.Authorized, "wrong reply")

	err = a.Permission(&assets.PermissionArguments{Id: 1}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing principal accepted")
}
