// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/assetregistry/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidNetwork  = fault.InvalidError("network can only be bitmark/testing/local")
	ErrMissingAssetId  = fault.InvalidError("asset id is required")
	ErrMissingKey      = fault.NotFoundError("private key is required, use --key or REGISTRY_KEY")
	ErrMissingReceiver = fault.InvalidError("receiver account is required")
	ErrWrongNetworkKey = fault.InvalidError("private key is for a different network")
)
