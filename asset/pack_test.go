// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/fixtures"
)

func makeRecord() *asset.Record {
	return &asset.Record{
		Metadata: asset.Metadata{
			Title:       "Photo1",
			Size:        2048,
			Description: "a photograph of a cat",
			Tags:        []string{"art", "cat", "日本"},
		},
		Owner:        fixtures.Owner.Account(),
		RegisteredAt: 300,
	}
}

func TestPackUnpack(t *testing.T) {
	record := makeRecord()

	packed, err := record.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, byte(asset.AssetTag), packed[0], "wrong leading tag")

	unpacked, n, err := packed.Unpack(true)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "wrong unpacked length")
	assert.Equal(t, record, unpacked, "records differ")
}

func TestPackNoOwner(t *testing.T) {
	record := makeRecord()
	record.Owner = nil

	_, err := record.Pack()
	assert.Equal(t, fault.MissingParameters, err, "packed without owner")
}

func TestUnpackTruncated(t *testing.T) {
	packed, err := makeRecord().Pack()
	assert.Nil(t, err, "pack error")

	for i := 0; i < len(packed); i += 1 {
		buffer := make([]byte, i)
		copy(buffer, packed[:i])

		_, _, err := asset.Packed(buffer).Unpack(true)
		assert.NotNil(t, err, "truncated at: %d was accepted", i)
	}
}

func TestUnpackUnknownTag(t *testing.T) {
	packed, err := makeRecord().Pack()
	assert.Nil(t, err, "pack error")

	packed[0] = byte(asset.InvalidTag)
	_, _, err = packed.Unpack(true)
	assert.Equal(t, fault.UnknownRecordTag, err, "unknown tag accepted")
}

func TestUnpackWrongNetwork(t *testing.T) {
	packed, err := makeRecord().Pack()
	assert.Nil(t, err, "pack error")

	_, _, err = packed.Unpack(false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "test owner accepted on live network")
}

func TestUnpackEmpty(t *testing.T) {
	_, _, err := asset.Packed{}.Unpack(true)
	assert.Equal(t, fault.NotAssetRecord, err, "empty record accepted")
}

func TestMetadataCopy(t *testing.T) {
	m := makeRecord().Metadata
	c := m.Copy()
	c.Tags[0] = "changed"
	assert.Equal(t, "art", m.Tags[0], "copy shares tags")
}
