// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/account"
)

func runPermission(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := assetId(c)
	if nil != err {
		return err
	}

	var principal *account.Account
	if s := c.String("principal"); "" != s {
		principal, err = account.FromBase58(s)
		if nil != err {
			return err
		}
	} else if nil != m.key {
		principal = m.key.Account()
	} else {
		return ErrMissingKey
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Permission(id, principal)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
