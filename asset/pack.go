// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/util"
)

// Packed - packed records are just a byte slice
type Packed []byte

// RecordTag - type code for packed records
type RecordTag uint64

// record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = RecordTag(iota)

	AssetTag = RecordTag(iota)

	// this item must be last
	InvalidTag
)

// upper bounds for unpacking
const (
	maxFieldLength = 8192
	maxTagCount    = 1024
)

// Pack - Varint64(tag) followed by the fields in order:
// title, owner, size, registeredAt, description, tag count, tags
func (record *Record) Pack() (Packed, error) {
	if nil == record.Owner {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(AssetTag))
	message = appendString(message, record.Title)
	message = appendAccount(message, record.Owner)
	message = appendUint64(message, record.Size)
	message = appendUint64(message, record.RegisteredAt)
	message = appendString(message, record.Description)
	message = appendUint64(message, uint64(len(record.Tags)))
	for _, tag := range record.Tags {
		message = appendString(message, tag)
	}
	return message, nil
}

// Unpack - turn a byte slice into a record
//
// returns the record and the number of bytes consumed
func (record Packed) Unpack(testnet bool) (r *Record, n int, e error) {

	defer func() {
		if rec := recover(); nil != rec {
			r = nil
			n = 0
			e = fault.NotAssetRecord
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotAssetRecord
	}

	if AssetTag != RecordTag(recordType) {
		return nil, 0, fault.UnknownRecordTag
	}

	result := &Record{}

	// title
	title, titleLength := unpackString(record[n:])
	if 0 == titleLength {
		return nil, 0, fault.NotAssetRecord
	}
	n += titleLength
	result.Title = title

	// owner public key
	ownerLength, ownerOffset := util.ClippedVarint64(record[n:], 1, maxFieldLength)
	if 0 == ownerOffset || n+ownerOffset+ownerLength > len(record) {
		return nil, 0, fault.NotAssetRecord
	}
	n += ownerOffset
	owner, err := account.FromBytes(record[n : n+ownerLength])
	if nil != err {
		return nil, 0, err
	}
	if owner.IsTesting() != testnet {
		return nil, 0, fault.WrongNetworkForPublicKey
	}
	n += ownerLength
	result.Owner = owner

	// size
	size, sizeLength := util.FromVarint64(record[n:])
	if 0 == sizeLength {
		return nil, 0, fault.NotAssetRecord
	}
	n += sizeLength
	result.Size = size

	// registered at
	registeredAt, registeredAtLength := util.FromVarint64(record[n:])
	if 0 == registeredAtLength {
		return nil, 0, fault.NotAssetRecord
	}
	n += registeredAtLength
	result.RegisteredAt = registeredAt

	// description
	description, descriptionLength := unpackString(record[n:])
	if 0 == descriptionLength {
		return nil, 0, fault.NotAssetRecord
	}
	n += descriptionLength
	result.Description = description

	// tags
	tagCount, tagCountLength := util.ClippedVarint64(record[n:], 0, maxTagCount)
	if 0 == tagCountLength {
		return nil, 0, fault.NotAssetRecord
	}
	n += tagCountLength

	result.Tags = make([]string, 0, tagCount)
	for i := 0; i < tagCount; i += 1 {
		tag, tagLength := unpackString(record[n:])
		if 0 == tagLength {
			return nil, 0, fault.NotAssetRecord
		}
		n += tagLength
		result.Tags = append(result.Tags, tag)
	}

	return result, n, nil
}

// read a length prefixed string, returns bytes consumed or zero on error
func unpackString(buffer []byte) (string, int) {
	length, offset := util.ClippedVarint64(buffer, 0, maxFieldLength)
	if 0 == offset || offset+length > len(buffer) {
		return "", 0
	}
	return string(buffer[offset : offset+length]), offset + length
}

// append a single field to a buffer
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

func appendAccount(buffer Packed, acc *account.Account) Packed {
	data := acc.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	return append(buffer, valueBytes...)
}
