// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assets - RPC service for registering, changing and reading assets
package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/rpc/ratelimit"
	"github.com/bitmark-inc/assetregistry/rpc/request"
	"github.com/bitmark-inc/logger"
)

// Registry - the operations exposed by this service
type Registry interface {
	Register(caller *account.Account, metadata *asset.Metadata) (uint64, error)
	Modify(caller *account.Account, id uint64, metadata *asset.Metadata) (bool, error)
	Transfer(caller *account.Account, id uint64, newOwner *account.Account) (bool, error)
	Get(id uint64) (*asset.Record, error)
	Permission(id uint64, principal *account.Account) (bool, error)
}

// Assets - type for the RPC
type Assets struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry Registry
	Verifier *request.Verifier
}

const (
	maximumAssets   = 100
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// New - create the service
func New(log *logger.L, registry Registry, verifier *request.Verifier) *Assets {
	return &Assets{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Registry: registry,
		Verifier: verifier,
	}
}

// ---

// RegisterArguments - arguments for RPC request
type RegisterArguments struct {
	Caller    *account.Account  `json:"caller"`
	Timestamp int64             `json:"timestamp"`
	Metadata  asset.Metadata    `json:"metadata"`
	Signature account.Signature `json:"signature"`
}

// RegisterReply - results from RPC request
type RegisterReply struct {
	Id uint64 `json:"id"`
}

// Register - create a new asset owned by the signer
func (assets *Assets) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	log := assets.Log
	log.Infof("Assets.Register: caller: %s  title: %q", arguments.Caller, arguments.Metadata.Title)

	message := request.RegisterMessage(arguments.Caller, arguments.Timestamp, &arguments.Metadata)
	err := assets.Verifier.Verify(arguments.Caller, arguments.Timestamp, message, arguments.Signature)
	if nil != err {
		log.Warnf("Assets.Register: caller: %s  rejected: %s", arguments.Caller, err)
		return err
	}

	id, err := assets.Registry.Register(arguments.Caller, &arguments.Metadata)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// ---

// ModifyArguments - arguments for RPC request
type ModifyArguments struct {
	Caller    *account.Account  `json:"caller"`
	Timestamp int64             `json:"timestamp"`
	Id        uint64            `json:"id"`
	Metadata  asset.Metadata    `json:"metadata"`
	Signature account.Signature `json:"signature"`
}

// OkReply - result of a change
type OkReply struct {
	Ok bool `json:"ok"`
}

// Modify - replace the metadata of an asset owned by the signer
func (assets *Assets) Modify(arguments *ModifyArguments, reply *OkReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	log := assets.Log
	log.Infof("Assets.Modify: caller: %s  id: %d", arguments.Caller, arguments.Id)

	message := request.ModifyMessage(arguments.Caller, arguments.Timestamp, arguments.Id, &arguments.Metadata)
	err := assets.Verifier.Verify(arguments.Caller, arguments.Timestamp, message, arguments.Signature)
	if nil != err {
		log.Warnf("Assets.Modify: caller: %s  rejected: %s", arguments.Caller, err)
		return err
	}

	ok, err := assets.Registry.Modify(arguments.Caller, arguments.Id, &arguments.Metadata)
	if nil != err {
		return err
	}

	reply.Ok = ok
	return nil
}

// ---

// TransferArguments - arguments for RPC request
type TransferArguments struct {
	Caller    *account.Account  `json:"caller"`
	Timestamp int64             `json:"timestamp"`
	Id        uint64            `json:"id"`
	NewOwner  *account.Account  `json:"newOwner"`
	Signature account.Signature `json:"signature"`
}

// Transfer - give an asset owned by the signer to a new owner
func (assets *Assets) Transfer(arguments *TransferArguments, reply *OkReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller || nil == arguments.NewOwner {
		return fault.MissingParameters
	}

	log := assets.Log
	log.Infof("Assets.Transfer: caller: %s  id: %d  to: %s", arguments.Caller, arguments.Id, arguments.NewOwner)

	message := request.TransferMessage(arguments.Caller, arguments.Timestamp, arguments.Id, arguments.NewOwner)
	err := assets.Verifier.Verify(arguments.Caller, arguments.Timestamp, message, arguments.Signature)
	if nil != err {
		log.Warnf("Assets.Transfer: caller: %s  rejected: %s", arguments.Caller, err)
		return err
	}

	ok, err := assets.Registry.Transfer(arguments.Caller, arguments.Id, arguments.NewOwner)
	if nil != err {
		return err
	}

	reply.Ok = ok
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Ids []uint64 `json:"ids"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Assets []Record `json:"assets"`
}

// Record - structure of asset records in the response
type Record struct {
	Id   uint64        `json:"id"`
	Data *asset.Record `json:"data"`
}

// Get - RPC to fetch asset data, missing IDs are omitted
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	count := len(arguments.Ids)
	if err := ratelimit.LimitN(assets.Limiter, count, maximumAssets); nil != err {
		return err
	}

	assets.Log.Infof("Assets.Get: %v", arguments.Ids)

	a := make([]Record, 0, count)
	for _, id := range arguments.Ids {
		record, err := assets.Registry.Get(id)
		if fault.AssetNotFound == err {
			continue
		}
		if nil != err {
			return err
		}
		a = append(a, Record{
			Id:   id,
			Data: record,
		})
	}

	reply.Assets = a
	return nil
}

// ---

// PermissionArguments - arguments for RPC request
type PermissionArguments struct {
	Id        uint64           `json:"id"`
	Principal *account.Account `json:"principal"`
}

// PermissionReply - result from RPC request
type PermissionReply struct {
	Authorized bool `json:"authorized"`
}

// Permission - read the access flag of a principal on an asset
func (assets *Assets) Permission(arguments *PermissionArguments, reply *PermissionReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Principal {
		return fault.MissingParameters
	}

	authorized, err := assets.Registry.Permission(arguments.Id, arguments.Principal)
	if nil != err {
		return err
	}

	reply.Authorized = authorized
	return nil
}
