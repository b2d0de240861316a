// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - signed request messages shared by client and server
//
// each mutating request carries the caller's account, a unix
// timestamp and an ed25519 signature over the packed message built
// here; the server rebuilds the same bytes to verify it
package request

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/util"
)

// MessageTag - type code of a signed message
type MessageTag uint64

// message types
const (
	RegisterTag = MessageTag(iota + 1)
	ModifyTag
	TransferTag
)

// RegisterMessage - bytes signed for a registration
func RegisterMessage(caller *account.Account, timestamp int64, metadata *asset.Metadata) []byte {
	message := header(RegisterTag, caller, timestamp)
	return appendMetadata(message, metadata)
}

// ModifyMessage - bytes signed for a modification
func ModifyMessage(caller *account.Account, timestamp int64, id uint64, metadata *asset.Metadata) []byte {
	message := header(ModifyTag, caller, timestamp)
	message = append(message, util.ToVarint64(id)...)
	return appendMetadata(message, metadata)
}

// TransferMessage - bytes signed for a transfer
func TransferMessage(caller *account.Account, timestamp int64, id uint64, newOwner *account.Account) []byte {
	message := header(TransferTag, caller, timestamp)
	message = append(message, util.ToVarint64(id)...)
	return appendBytes(message, newOwner.Bytes())
}

func header(tag MessageTag, caller *account.Account, timestamp int64) []byte {
	message := util.ToVarint64(uint64(tag))
	message = appendBytes(message, caller.Bytes())
	return append(message, util.ToVarint64(uint64(timestamp))...)
}

func appendMetadata(message []byte, metadata *asset.Metadata) []byte {
	message = appendBytes(message, []byte(metadata.Title))
	message = append(message, util.ToVarint64(metadata.Size)...)
	message = appendBytes(message, []byte(metadata.Description))
	message = append(message, util.ToVarint64(uint64(len(metadata.Tags)))...)
	for _, tag := range metadata.Tags {
		message = appendBytes(message, []byte(tag))
	}
	return message
}

func appendBytes(message []byte, data []byte) []byte {
	message = append(message, util.ToVarint64(uint64(len(data)))...)
	return append(message, data...)
}
