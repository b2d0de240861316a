// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/account"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := signingKey(m); nil != err {
		return err
	}

	id, err := assetId(c)
	if nil != err {
		return err
	}

	to := c.String("receiver")
	if "" == to {
		return ErrMissingReceiver
	}
	receiver, err := account.FromBase58(to)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(m.key, id, receiver)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
