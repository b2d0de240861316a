// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := signingKey(m); nil != err {
		return err
	}

	assetMetadata := metadataFromFlags(c)

	if m.verbose {
		fmt.Fprintf(m.e, "title: %q\n", assetMetadata.Title)
		fmt.Fprintf(m.e, "size: %d\n", assetMetadata.Size)
		fmt.Fprintf(m.e, "tags: %q\n", assetMetadata.Tags)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(m.key, assetMetadata)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
