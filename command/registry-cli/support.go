// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/command/registry-cli/rpccalls"
)

// open a connection using the global options
func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
}

// the signing key is required for changes
func signingKey(m *metadata) error {
	if nil == m.key {
		return ErrMissingKey
	}
	return nil
}

// asset fields from the command flags
func metadataFromFlags(c *cli.Context) *asset.Metadata {
	return &asset.Metadata{
		Title:       c.String("title"),
		Size:        c.Uint64("size"),
		Description: c.String("description"),
		Tags:        c.StringSlice("tag"),
	}
}

// positive asset identifier from the command flags
func assetId(c *cli.Context) (uint64, error) {
	id := c.Uint64("id")
	if 0 == id {
		return 0, ErrMissingAssetId
	}
	return id, nil
}
