// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetregistry/account"
)

// Metadata - the fields an owner may change
type Metadata struct {
	Title       string   `json:"title"`
	Size        uint64   `json:"size"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Record - a registered asset
//
// RegisteredAt is fixed at registration, Owner changes only on transfer
type Record struct {
	Metadata
	Owner        *account.Account `json:"owner"`
	RegisteredAt uint64           `json:"registeredAt"`
}

// Key - the database key for an asset ID
func Key(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// Copy - a deep copy of the metadata
func (m Metadata) Copy() Metadata {
	m.Tags = append([]string(nil), m.Tags...)
	return m
}
