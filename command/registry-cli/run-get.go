// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrMissingAssetId
	}

	ids := make([]uint64, 0, c.NArg())
	for _, s := range c.Args() {
		id, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return err
		}
		ids = append(ids, id)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAssets(ids)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
