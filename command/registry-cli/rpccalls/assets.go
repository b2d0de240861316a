// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/rpc/assets"
	"github.com/bitmark-inc/assetregistry/rpc/request"
)

// Register - sign and send a new asset
func (client *Client) Register(key *account.PrivateKey, metadata *asset.Metadata) (*assets.RegisterReply, error) {
	if nil == key || nil == metadata {
		return nil, fault.MissingParameters
	}

	caller := key.Account()
	timestamp := client.now().Unix()
	args := assets.RegisterArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Metadata:  *metadata,
		Signature: key.Sign(request.RegisterMessage(caller, timestamp, metadata)),
	}

	var reply assets.RegisterReply
	if err := client.call("Assets.Register", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Modify - sign and send replacement metadata
func (client *Client) Modify(key *account.PrivateKey, id uint64, metadata *asset.Metadata) (*assets.OkReply, error) {
	if nil == key || nil == metadata {
		return nil, fault.MissingParameters
	}

	caller := key.Account()
	timestamp := client.now().Unix()
	args := assets.ModifyArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Id:        id,
		Metadata:  *metadata,
		Signature: key.Sign(request.ModifyMessage(caller, timestamp, id, metadata)),
	}

	var reply assets.OkReply
	if err := client.call("Assets.Modify", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - sign and send a change of owner
func (client *Client) Transfer(key *account.PrivateKey, id uint64, newOwner *account.Account) (*assets.OkReply, error) {
	if nil == key || nil == newOwner {
		return nil, fault.MissingParameters
	}

	caller := key.Account()
	timestamp := client.now().Unix()
	args := assets.TransferArguments{
		Caller:    caller,
		Timestamp: timestamp,
		Id:        id,
		NewOwner:  newOwner,
		Signature: key.Sign(request.TransferMessage(caller, timestamp, id, newOwner)),
	}

	var reply assets.OkReply
	if err := client.call("Assets.Transfer", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetAssets - fetch a set of assets, missing ones are omitted
func (client *Client) GetAssets(ids []uint64) (*assets.GetReply, error) {
	args := assets.GetArguments{
		Ids: ids,
	}

	var reply assets.GetReply
	if err := client.call("Assets.Get", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Permission - read the access flag of principal on an asset
func (client *Client) Permission(id uint64, principal *account.Account) (*assets.PermissionReply, error) {
	args := assets.PermissionArguments{
		Id:        id,
		Principal: principal,
	}

	var reply assets.PermissionReply
	if err := client.call("Assets.Permission", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
